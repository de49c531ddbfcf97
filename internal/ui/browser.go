// Package ui implements the interactive terminal dependency browser.
package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell"
	"github.com/rivo/tview"

	"github.com/Nsfr750/pack/internal/i18n"
	"github.com/Nsfr750/pack/internal/pip"
	"github.com/Nsfr750/pack/internal/resolver"
	"github.com/Nsfr750/pack/internal/utils/logger"
)

// UI constants.
const (
	defaultPadding    = 1
	defaultProportion = 1

	listWidth = 40
)

var log = logger.Logger()

// Browser is the interactive package browser: installed package list,
// per-package detail pane, a requirement input for conflict checks, and
// an output log.
type Browser struct {
	// UI elements
	app        *tview.Application
	flex       *tview.Flex
	pkgList    *tview.List
	detailText *tview.TextView
	reqInput   *tview.InputField
	logText    *tview.TextView

	// Collaborators
	catalog  *i18n.Catalog
	client   *pip.Client
	detector resolver.Detector

	// One operation at a time; the UI blocks further requests until the
	// running one completes.
	busyMu sync.Mutex
	busy   bool

	// installed is replaced wholesale by refreshPackages and read by
	// detail-pane goroutines, which run outside the busy guard.
	installedMu sync.RWMutex
	installed   map[string]string
}

// New creates a Browser. The detector may be nil, which disables
// conflict checking.
func New(catalog *i18n.Catalog, client *pip.Client, detector resolver.Detector) *Browser {
	return &Browser{
		catalog:  catalog,
		client:   client,
		detector: detector,
	}
}

// Run builds the layout and runs the application until the user quits.
func (b *Browser) Run() error {
	b.app = tview.NewApplication()
	b.initElements()
	b.initLayout()
	b.initKeybindings()

	// Logger output is redirected into the log pane while the UI owns
	// the terminal.
	oldOut := logger.ReplaceStderrWriter(tview.ANSIWriter(b.logText))
	defer logger.ReplaceStderrWriter(oldOut)

	go b.refreshPackages()

	return b.app.SetRoot(b.flex, true).SetFocus(b.pkgList).Run()
}

func (b *Browser) initElements() {
	b.pkgList = tview.NewList().
		ShowSecondaryText(false).
		SetChangedFunc(func(index int, name string, secondary string, shortcut rune) {
			go b.showDetails(name)
		})
	b.pkgList.SetBorder(true).SetTitle(" " + b.catalog.T("ui.installed") + " ")

	b.detailText = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetChangedFunc(func() {
			b.app.Draw()
		})
	b.detailText.SetBorder(true).SetTitle(" " + b.catalog.T("ui.details") + " ")
	b.detailText.SetText(b.catalog.T("ui.no_selection"))

	b.reqInput = tview.NewInputField().
		SetLabel(b.catalog.T("ui.requirement") + ": ").
		SetFieldWidth(0).
		SetDoneFunc(func(key tcell.Key) {
			if key != tcell.KeyEnter {
				return
			}
			text := b.reqInput.GetText()
			go b.checkConflicts(text)
		})
	b.reqInput.SetBorder(true).SetTitle(" " + b.catalog.T("ui.check") + " ")

	b.logText = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true).
		SetChangedFunc(func() {
			b.app.Draw()
		})
	b.logText.SetBorder(true).SetTitle(" " + b.catalog.T("ui.output") + " ")
	b.logText.SetBorderPadding(0, 0, defaultPadding, defaultPadding)
}

func (b *Browser) initLayout() {
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.detailText, 0, defaultProportion, false).
		AddItem(b.reqInput, 3, 0, false).
		AddItem(b.logText, 0, defaultProportion, false)

	body := tview.NewFlex().
		AddItem(b.pkgList, listWidth, 0, true).
		AddItem(right, 0, defaultProportion*2, false)

	title := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(b.catalog.T("app.title"))

	b.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(title, 1, 0, false).
		AddItem(body, 0, defaultProportion, true)
}

func (b *Browser) initKeybindings() {
	b.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Plain keys typed into the input field belong to the field.
		if b.app.GetFocus() == b.reqInput && event.Key() == tcell.KeyRune {
			return event
		}
		switch {
		case event.Key() == tcell.KeyCtrlC:
			b.app.Stop()
			return nil
		case event.Key() == tcell.KeyRune && event.Rune() == 'q':
			b.app.Stop()
			return nil
		case event.Key() == tcell.KeyRune && event.Rune() == 'r':
			go b.refreshPackages()
			return nil
		}
		return event
	})
}

// tryBegin claims the single operation slot.
func (b *Browser) tryBegin() bool {
	b.busyMu.Lock()
	defer b.busyMu.Unlock()
	if b.busy {
		return false
	}
	b.busy = true
	return true
}

func (b *Browser) end() {
	b.busyMu.Lock()
	b.busy = false
	b.busyMu.Unlock()
}

func (b *Browser) setInstalled(m map[string]string) {
	b.installedMu.Lock()
	b.installed = m
	b.installedMu.Unlock()
}

// installedVersions returns the current version map. The map is never
// mutated after publication, so readers may use it without further locking.
func (b *Browser) installedVersions() map[string]string {
	b.installedMu.RLock()
	defer b.installedMu.RUnlock()
	return b.installed
}

func (b *Browser) appendLog(msg string) {
	b.app.QueueUpdateDraw(func() {
		fmt.Fprintf(b.logText, "%s\n", msg)
		b.logText.ScrollToEnd()
	})
}

func (b *Browser) refreshPackages() {
	if !b.tryBegin() {
		b.appendLog(b.catalog.T("ui.busy"))
		return
	}
	defer b.end()

	b.appendLog(b.catalog.T("msg.listing"))
	installed, err := b.client.ListInstalled()
	if err != nil {
		b.appendLog(b.catalog.Tf("err.operation_failed", err))
		return
	}
	b.setInstalled(installed)

	names := make([]string, 0, len(installed))
	for name := range installed {
		names = append(names, name)
	}
	sort.Strings(names)

	b.app.QueueUpdateDraw(func() {
		b.pkgList.Clear()
		for _, name := range names {
			b.pkgList.AddItem(name, installed[name], 0, nil)
		}
	})
}

func (b *Browser) showDetails(name string) {
	deps, err := b.client.Dependencies(name)
	if err != nil {
		b.appendLog(b.catalog.Tf("err.operation_failed", err))
		return
	}

	installed := b.installedVersions()

	var sb strings.Builder
	fmt.Fprintf(&sb, "[yellow]%s[-] %s\n\n", name, installed[name])
	if len(deps) == 0 {
		sb.WriteString(b.catalog.T("ui.requires_none"))
	} else {
		for _, dep := range deps {
			version, ok := installed[strings.ToLower(dep.Name)]
			if !ok {
				version = "-"
			}
			fmt.Fprintf(&sb, "  %s (%s)\n", dep.String(), version)
		}
	}

	b.app.QueueUpdateDraw(func() {
		b.detailText.SetText(sb.String())
	})
}

func (b *Browser) checkConflicts(input string) {
	if b.detector == nil {
		return
	}

	// Whitespace separates requirements; commas stay inside multi-specifier
	// strings like "requests>=2.0,<3.0".
	reqs := strings.Fields(input)
	if len(reqs) == 0 {
		return
	}

	if !b.tryBegin() {
		b.appendLog(b.catalog.T("ui.busy"))
		return
	}
	defer b.end()

	b.appendLog(b.catalog.Tf("msg.checking", len(reqs)))
	report, err := b.detector.Check(context.Background(), reqs)
	if err != nil {
		b.appendLog(b.catalog.Tf("err.operation_failed", err))
		return
	}

	switch report.Status {
	case resolver.StatusResolved:
		b.appendLog("[green]" + b.catalog.T("msg.resolved") + "[-]")
	case resolver.StatusConflict:
		for _, c := range report.Conflicts {
			if c.RequiredBy != "" {
				b.appendLog("[red]" + b.catalog.Tf("msg.conflict_edge", c.RequiredBy, c.Package) + "[-]")
			} else {
				b.appendLog("[red]" + b.catalog.Tf("msg.conflict", c.Package) + "[-]")
			}
		}
	default:
		b.appendLog("[orange]" + b.catalog.T("msg.unknown_failure") + "[-]")
	}
}
