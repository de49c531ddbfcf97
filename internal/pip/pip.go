// Package pip shells out to a Python interpreter's pip module for
// package queries, installs and project builds.
package pip

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/Nsfr750/pack/internal/config"
	"github.com/Nsfr750/pack/internal/requirement"
	"github.com/Nsfr750/pack/internal/utils/logger"
	"github.com/Nsfr750/pack/internal/utils/shell"
)

var log = logger.Logger()

// packageNamePattern guards names that get interpolated into shell commands.
var packageNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Client runs pip through a specific Python interpreter.
type Client struct {
	Python string
}

// NewClient returns a Client bound to the configured interpreter.
func NewClient() *Client {
	return &Client{Python: config.PythonExecutable()}
}

func (c *Client) pipCmd(args string) string {
	return fmt.Sprintf("%s -m pip %s", c.Python, args)
}

// listEntry matches one element of pip list --format=json output.
type listEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListInstalled returns the installed packages as a map keyed by
// lower-cased name. On failure the returned map is empty, never nil, so
// callers may keep going with partial information.
func (c *Client) ListInstalled() (map[string]string, error) {
	installed := make(map[string]string)

	output, err := shell.ExecCmdSilent(c.pipCmd("list --format=json"), "", nil)
	if err != nil {
		log.Errorf("Failed to list installed packages: %v", err)
		return installed, fmt.Errorf("listing installed packages: %w", err)
	}

	// pip may print warnings before the JSON document.
	start := strings.IndexByte(output, '[')
	if start < 0 {
		log.Errorf("pip list produced no JSON output")
		return installed, fmt.Errorf("pip list produced no JSON output")
	}

	var entries []listEntry
	if err := json.Unmarshal([]byte(output[start:]), &entries); err != nil {
		log.Errorf("Failed to parse pip list output: %v", err)
		return installed, fmt.Errorf("parsing pip list output: %w", err)
	}

	for _, e := range entries {
		installed[strings.ToLower(e.Name)] = e.Version
	}
	return installed, nil
}

// Show returns the raw key/value block printed by pip show for a package.
func (c *Client) Show(name string) (map[string]string, error) {
	if !packageNamePattern.MatchString(name) {
		return nil, fmt.Errorf("invalid package name %q", name)
	}

	output, err := shell.ExecCmdSilent(c.pipCmd("show "+name), "", nil)
	if err != nil {
		return nil, fmt.Errorf("querying package %s: %w", name, err)
	}

	return parseShowOutput(output), nil
}

// parseShowOutput splits "Key: value" lines, folding continuation lines
// into the preceding key until the next "Key:" section.
func parseShowOutput(output string) map[string]string {
	fields := make(map[string]string)
	var lastKey string

	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if found && !strings.HasPrefix(line, " ") && !strings.Contains(key, " ") {
			lastKey = key
			fields[lastKey] = strings.TrimSpace(value)
			continue
		}
		if lastKey != "" {
			fields[lastKey] = strings.TrimSpace(fields[lastKey] + " " + strings.TrimSpace(line))
		}
	}
	return fields
}

// Dependencies returns the direct requirements of an installed package,
// from the Requires field of pip show. Entries that do not parse are
// skipped with a warning.
func (c *Client) Dependencies(name string) ([]requirement.Spec, error) {
	fields, err := c.Show(name)
	if err != nil {
		return nil, err
	}

	specs, errs := requirement.ParseList(fields["Requires"])
	for _, perr := range errs {
		log.Warnf("Skipping malformed dependency of %s: %v", name, perr)
	}
	return specs, nil
}

// InstallOptions control pip install behavior.
type InstallOptions struct {
	Upgrade        bool
	ForceReinstall bool
	NoDeps         bool
	Pre            bool
	IndexURL       string // alternative index, typically a repository auth URL
}

func (o InstallOptions) flags() string {
	var parts []string
	if o.Upgrade {
		parts = append(parts, "--upgrade")
	}
	if o.ForceReinstall {
		parts = append(parts, "--force-reinstall")
	}
	if o.NoDeps {
		parts = append(parts, "--no-deps")
	}
	if o.Pre {
		parts = append(parts, "--pre")
	}
	if o.IndexURL != "" {
		parts = append(parts, "--index-url "+o.IndexURL)
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

// Install installs a requirement (name or full requirement string),
// streaming pip's output.
func (c *Client) Install(req string, opts InstallOptions) error {
	spec, err := requirement.Parse(req)
	if err != nil {
		return fmt.Errorf("invalid requirement: %w", err)
	}

	log.Infof("Installing %s", spec.String())
	if _, err := shell.ExecCmdWithStream(c.pipCmd(fmt.Sprintf("install%s '%s'", opts.flags(), spec.String())), "", nil); err != nil {
		return fmt.Errorf("installing %s: %w", spec.Name, err)
	}
	return nil
}

// InstallRequirements installs from a requirements file.
func (c *Client) InstallRequirements(path string, opts InstallOptions) error {
	log.Infof("Installing requirements from %s", path)
	if _, err := shell.ExecCmdWithStream(c.pipCmd(fmt.Sprintf("install%s -r '%s'", opts.flags(), path)), "", nil); err != nil {
		return fmt.Errorf("installing requirements from %s: %w", path, err)
	}
	return nil
}

// InstallEditable installs a project directory in editable mode.
func (c *Client) InstallEditable(projectDir string) error {
	log.Infof("Installing %s in editable mode", projectDir)
	if _, err := shell.ExecCmdWithStream(c.pipCmd("install -e ."), projectDir, nil); err != nil {
		return fmt.Errorf("editable install of %s: %w", projectDir, err)
	}
	return nil
}

// Uninstall removes an installed package without prompting.
func (c *Client) Uninstall(name string) error {
	if !packageNamePattern.MatchString(name) {
		return fmt.Errorf("invalid package name %q", name)
	}

	log.Infof("Uninstalling %s", name)
	if _, err := shell.ExecCmdWithStream(c.pipCmd("uninstall -y "+name), "", nil); err != nil {
		return fmt.Errorf("uninstalling %s: %w", name, err)
	}
	return nil
}

// Build builds sdist and wheel artifacts for the project. The build
// module is preferred; when it is not installed the legacy setup.py
// path is used instead.
func (c *Client) Build(projectDir string) error {
	log.Infof("Building distribution packages in %s", projectDir)

	output, err := shell.ExecCmdWithStream(fmt.Sprintf("%s -m build", c.Python), projectDir, nil)
	if err == nil {
		return nil
	}
	if !strings.Contains(output, "No module named build") {
		return fmt.Errorf("building project: %w", err)
	}

	log.Warnf("build module not available, falling back to setup.py")
	if _, err := shell.ExecCmdWithStream(fmt.Sprintf("%s setup.py sdist bdist_wheel", c.Python), projectDir, nil); err != nil {
		return fmt.Errorf("building project with setup.py: %w", err)
	}
	return nil
}

// CreateVenv creates a virtual environment at dir.
func (c *Client) CreateVenv(dir string) error {
	if _, err := shell.ExecCmd(fmt.Sprintf("%s -m venv '%s'", c.Python, dir), "", nil); err != nil {
		return fmt.Errorf("creating virtual environment at %s: %w", dir, err)
	}
	return nil
}

// VenvPip returns the pip executable path inside a virtual environment.
func VenvPip(venvDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", "pip.exe")
	}
	return filepath.Join(venvDir, "bin", "pip")
}
