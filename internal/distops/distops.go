// Package distops works with built distribution artifacts: discovery
// under dist/, metadata inspection, and uploads to a package index.
package distops

import (
	"archive/tar"
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/Nsfr750/pack/internal/repository"
	"github.com/Nsfr750/pack/internal/requirement"
	"github.com/Nsfr750/pack/internal/utils/logger"
	"github.com/Nsfr750/pack/internal/utils/shell"
)

var log = logger.Logger()

// maxMetadataSize bounds how much metadata is read from an archive.
const maxMetadataSize = 1 << 20

// Metadata is the subset of core package metadata shown to users.
type Metadata struct {
	Name         string
	Version      string
	Summary      string
	RequiresDist []requirement.Spec
}

// FindDistFiles returns the wheel and sdist artifacts under dist/ of a
// project directory, sorted by name.
func FindDistFiles(projectDir string) ([]string, error) {
	distDir := filepath.Join(projectDir, "dist")

	var files []string
	for _, pattern := range []string{"*.whl", "*.tar.gz"} {
		matches, err := filepath.Glob(filepath.Join(distDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", distDir, err)
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no distribution files found in %s (run a build first)", distDir)
	}
	sort.Strings(files)
	return files, nil
}

// Inspect reads the core metadata of a wheel or sdist.
func Inspect(path string) (Metadata, error) {
	switch {
	case strings.HasSuffix(path, ".whl"):
		return InspectWheel(path)
	case strings.HasSuffix(path, ".tar.gz"):
		return InspectSdist(path)
	default:
		return Metadata{}, fmt.Errorf("unsupported distribution file %s", path)
	}
}

// InspectWheel reads the METADATA member of a wheel archive.
func InspectWheel(path string) (Metadata, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("opening wheel %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, ".dist-info/METADATA") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Metadata{}, fmt.Errorf("reading METADATA from %s: %w", path, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(io.LimitReader(rc, maxMetadataSize))
		if err != nil {
			return Metadata{}, fmt.Errorf("reading METADATA from %s: %w", path, err)
		}
		return parseMetadataBlock(string(data)), nil
	}

	return Metadata{}, fmt.Errorf("wheel %s has no METADATA member", path)
}

// InspectSdist reads the PKG-INFO member of a source distribution.
func InspectSdist(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("opening sdist %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return Metadata{}, fmt.Errorf("decompressing sdist %s: %w", path, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Metadata{}, fmt.Errorf("reading sdist %s: %w", path, err)
		}

		// The top-level PKG-INFO lives at <name>-<version>/PKG-INFO.
		parts := strings.Split(hdr.Name, "/")
		if len(parts) != 2 || parts[1] != "PKG-INFO" {
			continue
		}

		data, err := io.ReadAll(io.LimitReader(tr, maxMetadataSize))
		if err != nil {
			return Metadata{}, fmt.Errorf("reading PKG-INFO from %s: %w", path, err)
		}
		return parseMetadataBlock(string(data)), nil
	}

	return Metadata{}, fmt.Errorf("sdist %s has no PKG-INFO member", path)
}

// parseMetadataBlock parses the RFC 822 style header block of METADATA
// or PKG-INFO. Parsing stops at the first blank line, where the long
// description body starts.
func parseMetadataBlock(content string) Metadata {
	var md Metadata

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			break
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			md.Name = value
		case "Version":
			md.Version = value
		case "Summary":
			md.Summary = value
		case "Requires-Dist":
			spec, err := requirement.Parse(value)
			if err != nil {
				log.Warnf("Skipping malformed Requires-Dist entry %q: %v", value, err)
				continue
			}
			md.RequiresDist = append(md.RequiresDist, spec)
		}
	}

	return md
}

// Upload pushes the given dist files to a repository with twine.
// Credentials travel via environment variables, never the command line.
func Upload(files []string, repo *repository.Repository) error {
	if len(files) == 0 {
		return fmt.Errorf("no files to upload")
	}

	// Paths and the repository URL end up inside single-quoted shell
	// arguments.
	if strings.ContainsRune(repo.URL, '\'') {
		return fmt.Errorf("invalid repository URL: %q", repo.URL)
	}
	var quoted []string
	for _, f := range files {
		if strings.ContainsRune(f, '\'') {
			return fmt.Errorf("invalid file path: %q", f)
		}
		quoted = append(quoted, "'"+f+"'")
	}

	env := []string{"TWINE_NON_INTERACTIVE=1"}
	if repo.Username != "" {
		env = append(env, "TWINE_USERNAME="+repo.Username)
	}
	if repo.Password != "" {
		env = append(env, "TWINE_PASSWORD="+repo.Password)
	}

	log.Infof("Uploading %d file(s) to %s", len(files), repo.Name)
	cmd := fmt.Sprintf("twine upload --repository-url '%s' %s", repo.URL, strings.Join(quoted, " "))
	if _, err := shell.ExecCmdWithStream(cmd, "", env); err != nil {
		return fmt.Errorf("uploading to %s: %w", repo.Name, err)
	}
	return nil
}
