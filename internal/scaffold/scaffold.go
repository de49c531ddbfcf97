// Package scaffold generates new Python project skeletons from named
// templates and reads basic metadata back out of existing projects.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/Nsfr750/pack/internal/utils/logger"
	"github.com/Nsfr750/pack/internal/utils/security"
)

var log = logger.Logger()

var projectNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

// ProjectInfo carries the metadata rendered into a new project.
type ProjectInfo struct {
	Name        string
	Version     string
	Description string
	Author      string
	Email       string
	License     string
}

// ModuleName returns the importable Python module name for the project.
func (p ProjectInfo) ModuleName() string {
	return strings.ToLower(strings.NewReplacer("-", "_", ".", "_").Replace(p.Name))
}

func (p ProjectInfo) withDefaults() ProjectInfo {
	if p.Version == "" {
		p.Version = "0.1.0"
	}
	if p.Description == "" {
		p.Description = "A Python package"
	}
	if p.License == "" {
		p.License = "MIT"
	}
	return p
}

// Templates lists the available template names.
func Templates() []string {
	return []string{"basic", "cli"}
}

// Create generates a project skeleton at dir using the named template.
// The target directory must not already contain a setup.py.
func Create(dir, templateName string, info ProjectInfo) error {
	if !projectNamePattern.MatchString(info.Name) {
		return fmt.Errorf("invalid project name %q", info.Name)
	}

	files, ok := templates[templateName]
	if !ok {
		return fmt.Errorf("unknown template %q (available: %s)", templateName, strings.Join(Templates(), ", "))
	}

	if _, err := os.Stat(filepath.Join(dir, "setup.py")); err == nil {
		return fmt.Errorf("directory %s already contains a project", dir)
	}

	info = info.withDefaults()
	log.Infof("Creating %s project %s at %s", templateName, info.Name, dir)

	for relPath, content := range files {
		target := filepath.Join(dir, renderString(relPath, info))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", target, err)
		}

		rendered, err := renderTemplate(relPath, content, info)
		if err != nil {
			return err
		}
		if err := security.SafeWriteFile(target, []byte(rendered), 0644, security.RejectSymlinks); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
	}

	return nil
}

func renderTemplate(name, content string, info ProjectInfo) (string, error) {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, info); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return b.String(), nil
}

// renderString expands the {{.ModuleName}} placeholder used in paths.
func renderString(path string, info ProjectInfo) string {
	return strings.ReplaceAll(path, "{{.ModuleName}}", info.ModuleName())
}

var setupFieldPatterns = map[string]*regexp.Regexp{
	"name":        regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`),
	"version":     regexp.MustCompile(`version\s*=\s*["']([^"']+)["']`),
	"description": regexp.MustCompile(`description\s*=\s*["']([^"']+)["']`),
	"author":      regexp.MustCompile(`author\s*=\s*["']([^"']+)["']`),
}

// ReadProjectInfo extracts name and version from an existing project's
// setup.py. Extraction is best effort; missing fields stay empty.
func ReadProjectInfo(dir string) (ProjectInfo, error) {
	setupPath := filepath.Join(dir, "setup.py")
	data, err := security.SafeReadFile(setupPath, security.ResolveSymlinks)
	if err != nil {
		return ProjectInfo{}, fmt.Errorf("reading %s: %w", setupPath, err)
	}

	var info ProjectInfo
	content := string(data)
	if m := setupFieldPatterns["name"].FindStringSubmatch(content); m != nil {
		info.Name = m[1]
	}
	if m := setupFieldPatterns["version"].FindStringSubmatch(content); m != nil {
		info.Version = m[1]
	}
	if m := setupFieldPatterns["description"].FindStringSubmatch(content); m != nil {
		info.Description = m[1]
	}
	if m := setupFieldPatterns["author"].FindStringSubmatch(content); m != nil {
		info.Author = m[1]
	}

	if info.Name == "" {
		return info, fmt.Errorf("no project name found in %s", setupPath)
	}
	return info, nil
}
