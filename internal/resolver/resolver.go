// Package resolver checks whether a set of requirements can be installed
// together, by performing a real resolution in a throwaway virtual
// environment.
package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/Nsfr750/pack/internal/config"
	"github.com/Nsfr750/pack/internal/pip"
	"github.com/Nsfr750/pack/internal/requirement"
	"github.com/Nsfr750/pack/internal/utils/logger"
	"github.com/Nsfr750/pack/internal/utils/security"
	"github.com/Nsfr750/pack/internal/utils/shell"
)

var log = logger.Logger()

// Status classifies the outcome of a resolution attempt.
type Status string

const (
	// StatusResolved means the full set installed cleanly.
	StatusResolved Status = "resolved"
	// StatusConflict means the resolver reported conflicting versions.
	StatusConflict Status = "conflict"
	// StatusUnknown means installation failed for a reason that could not
	// be attributed to a version conflict (network failure, missing
	// package, build error). Callers must not treat this as "no conflicts".
	StatusUnknown Status = "unknown"
)

// Conflict describes one conflicting dependency edge.
type Conflict struct {
	Package    string // the package that could not be installed
	RequiredBy string // "name version" of the requirer, when known
	Detail     string // the raw resolver line this was scraped from
}

// Report is the structured result of a resolution check.
type Report struct {
	Status    Status
	Conflicts []Conflict
	Output    string // full resolver output, for display
}

// Detector checks a requirement set for conflicts. The pip-backed
// implementation below scrapes resolver output; a source with structured
// diagnostics can be substituted without touching callers.
type Detector interface {
	Check(ctx context.Context, requirements []string) (Report, error)
}

// PipDetector resolves requirements by installing them into an ephemeral
// virtual environment.
type PipDetector struct {
	client *pip.Client
}

func NewPipDetector() *PipDetector {
	return &PipDetector{client: pip.NewClient()}
}

var (
	cannotInstallPattern = regexp.MustCompile(`Cannot install (\S+) because these package versions have conflicting dependencies`)
	dependsOnPattern     = regexp.MustCompile(`^\s*(\S+) (\S+) depends on (\S+)`)
)

// Check writes the requirements to a temp file, installs them into a
// fresh uuid-named venv, and classifies the result. The temp file and
// the venv are removed on every exit path.
func (d *PipDetector) Check(ctx context.Context, requirements []string) (Report, error) {
	if len(requirements) == 0 {
		return Report{}, fmt.Errorf("no requirements to check")
	}

	var lines []string
	for _, req := range requirements {
		spec, err := requirement.Parse(req)
		if err != nil {
			return Report{}, fmt.Errorf("invalid requirement %q: %w", req, err)
		}
		lines = append(lines, spec.String())
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	tempRoot, err := config.EnsureTempDir("conflict-check")
	if err != nil {
		return Report{}, fmt.Errorf("preparing temp directory: %w", err)
	}

	id := uuid.New().String()

	reqFile := filepath.Join(tempRoot, "requirements-"+id+".txt")
	if err := security.SafeWriteFile(reqFile, []byte(strings.Join(lines, "\n")+"\n"), 0600, security.RejectSymlinks); err != nil {
		return Report{}, fmt.Errorf("writing requirements file: %w", err)
	}
	defer func() {
		if err := os.Remove(reqFile); err != nil && !os.IsNotExist(err) {
			log.Warnf("Failed to remove requirements file %s: %v", reqFile, err)
		}
	}()

	venvDir := filepath.Join(tempRoot, "venv-"+id)
	// python -m venv can create the directory and then fail (for example
	// when ensurepip is unavailable), so removal is registered before the
	// creation attempt. Removing a nonexistent directory is a no-op.
	defer func() {
		if err := os.RemoveAll(venvDir); err != nil {
			log.Warnf("Failed to remove environment %s: %v", venvDir, err)
		}
	}()
	log.Debugf("Creating throwaway environment at %s", venvDir)
	if err := d.client.CreateVenv(venvDir); err != nil {
		return Report{}, err
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	output, installErr := shell.ExecCmdSilent(
		fmt.Sprintf("%s install -r '%s'", pip.VenvPip(venvDir), reqFile), "", nil)

	if installErr == nil {
		log.Infof("All %d requirements resolved cleanly", len(lines))
		return Report{Status: StatusResolved, Output: output}, nil
	}

	conflicts := scrapeConflicts(output)
	if len(conflicts) == 0 {
		log.Warnf("Resolution failed but no conflict was identified: %v", installErr)
		return Report{Status: StatusUnknown, Output: output}, nil
	}

	return Report{Status: StatusConflict, Conflicts: conflicts, Output: output}, nil
}

// scrapeConflicts extracts conflict edges from resolver output.
func scrapeConflicts(output string) []Conflict {
	var conflicts []Conflict

	if m := cannotInstallPattern.FindStringSubmatch(output); m != nil {
		conflicts = append(conflicts, Conflict{
			Package: strings.TrimRight(m[1], ","),
			Detail:  strings.TrimSpace(m[0]),
		})
	}
	if len(conflicts) == 0 {
		return nil
	}

	// "The conflict is caused by:" is followed by one line per edge:
	//     requester 1.0 depends on dependency>=2
	inCause := false
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "The conflict is caused by:") {
			inCause = true
			continue
		}
		if !inCause {
			continue
		}
		m := dependsOnPattern.FindStringSubmatch(line)
		if m == nil {
			inCause = false
			continue
		}
		pkg := m[3]
		if spec, err := requirement.Parse(m[3]); err == nil {
			pkg = spec.Name
		}
		conflicts = append(conflicts, Conflict{
			Package:    pkg,
			RequiredBy: m[1] + " " + m[2],
			Detail:     strings.TrimSpace(line),
		})
	}

	return conflicts
}
