// Package repository manages the named upload repositories (PyPI and
// private indexes) persisted under the tool's config directory.
package repository

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/muesli/crunchy"

	"github.com/Nsfr750/pack/internal/config"
	"github.com/Nsfr750/pack/internal/config/validate"
	"github.com/Nsfr750/pack/internal/utils/file"
	"github.com/Nsfr750/pack/internal/utils/logger"
	"github.com/Nsfr750/pack/internal/utils/security"
)

var log = logger.Logger()

// PyPIName is the key of the built-in repository, which cannot be removed.
const PyPIName = "pypi"

// pypiUploadURL is the default upload endpoint seeded on first run.
const pypiUploadURL = "https://upload.pypi.org/legacy/"

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Repository is one named package index. The password lives only in
// memory for the current process and is never written to disk.
type Repository struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"-"`
	IsDefault bool   `json:"is_default"`
}

// Manager loads, mutates and persists the repository store.
type Manager struct {
	path  string
	repos map[string]*Repository
}

// NewManager loads the store from <config dir>/repositories.json. A
// missing or unreadable store is replaced by the built-in default;
// corruption is logged, not fatal.
func NewManager() (*Manager, error) {
	path, err := config.RepositoriesPath()
	if err != nil {
		return nil, err
	}
	return NewManagerAtPath(path), nil
}

// NewManagerAtPath loads the store from an explicit file path.
func NewManagerAtPath(path string) *Manager {
	m := &Manager{path: path, repos: make(map[string]*Repository)}
	m.load()
	m.ensurePyPI()
	return m
}

func (m *Manager) load() {
	if !file.Exists(m.path) {
		return
	}

	data, err := security.SafeReadFile(m.path, security.RejectSymlinks)
	if err != nil {
		log.Warnf("Cannot read repository store %s, starting fresh: %v", m.path, err)
		return
	}
	if err := validate.ValidateRepositoriesJSON(data); err != nil {
		log.Warnf("Repository store %s failed validation, starting fresh: %v", m.path, err)
		return
	}
	if err := json.Unmarshal(data, &m.repos); err != nil {
		log.Warnf("Repository store %s is corrupt, starting fresh: %v", m.path, err)
		m.repos = make(map[string]*Repository)
	}
}

// ensurePyPI seeds the built-in repository and repairs the single-default
// invariant.
func (m *Manager) ensurePyPI() {
	if _, ok := m.repos[PyPIName]; !ok {
		m.repos[PyPIName] = &Repository{
			Name:      PyPIName,
			URL:       pypiUploadURL,
			IsDefault: true,
		}
	}

	defaults := 0
	for _, repo := range m.repos {
		if repo.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		for _, repo := range m.repos {
			repo.IsDefault = repo.Name == PyPIName
		}
	}
}

// Save validates and persists the store. Passwords are not part of the
// serialized form.
func (m *Manager) Save() error {
	data, err := json.Marshal(m.repos)
	if err != nil {
		return fmt.Errorf("serializing repository store: %w", err)
	}
	if err := validate.ValidateRepositoriesJSON(data); err != nil {
		return fmt.Errorf("repository store failed validation: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	asMap := make(map[string]interface{}, len(m.repos))
	for name, repo := range m.repos {
		asMap[name] = repo
	}
	if err := file.WriteToJSON(m.path, asMap, 2); err != nil {
		return fmt.Errorf("writing repository store: %w", err)
	}
	return nil
}

// Add registers a new repository. Names must be unique.
func (m *Manager) Add(repo Repository) error {
	if !namePattern.MatchString(repo.Name) {
		return fmt.Errorf("invalid repository name %q", repo.Name)
	}
	if _, exists := m.repos[repo.Name]; exists {
		return fmt.Errorf("repository %q already exists", repo.Name)
	}
	if err := validateURL(repo.URL); err != nil {
		return err
	}

	if repo.Password != "" {
		warnPasswordStrength(repo.Name, repo.Password)
	}

	stored := repo
	m.repos[repo.Name] = &stored
	if stored.IsDefault {
		return m.SetDefault(stored.Name)
	}
	return nil
}

// Remove deletes a repository. The built-in PyPI entry cannot be removed.
func (m *Manager) Remove(name string) error {
	if name == PyPIName {
		return fmt.Errorf("the built-in %s repository cannot be removed", PyPIName)
	}
	repo, ok := m.repos[name]
	if !ok {
		return fmt.Errorf("repository %q does not exist", name)
	}
	delete(m.repos, name)

	// Removing the default falls back to the built-in entry.
	if repo.IsDefault {
		m.repos[PyPIName].IsDefault = true
	}
	return nil
}

// Get returns a repository by name.
func (m *Manager) Get(name string) (*Repository, error) {
	repo, ok := m.repos[name]
	if !ok {
		return nil, fmt.Errorf("repository %q does not exist", name)
	}
	return repo, nil
}

// List returns all repositories sorted by name.
func (m *Manager) List() []*Repository {
	repos := make([]*Repository, 0, len(m.repos))
	for _, repo := range m.repos {
		repos = append(repos, repo)
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].Name < repos[j].Name })
	return repos
}

// SetDefault marks one repository as the default and clears the flag on
// every other entry.
func (m *Manager) SetDefault(name string) error {
	if _, ok := m.repos[name]; !ok {
		return fmt.Errorf("repository %q does not exist", name)
	}
	for _, repo := range m.repos {
		repo.IsDefault = repo.Name == name
	}
	return nil
}

// Default returns the current default repository.
func (m *Manager) Default() *Repository {
	for _, repo := range m.repos {
		if repo.IsDefault {
			return repo
		}
	}
	// ensurePyPI maintains the invariant; this is unreachable in practice.
	return m.repos[PyPIName]
}

// SetCredentials updates a repository's in-memory credentials.
func (m *Manager) SetCredentials(name, username, password string) error {
	repo, ok := m.repos[name]
	if !ok {
		return fmt.Errorf("repository %q does not exist", name)
	}
	repo.Username = username
	repo.Password = password
	if password != "" {
		warnPasswordStrength(name, password)
	}
	return nil
}

// AuthURL returns the repository URL with credentials embedded, for
// tools that take authentication in the URL. Without credentials the
// plain URL is returned.
func (r *Repository) AuthURL() (string, error) {
	if r.Username == "" {
		return r.URL, nil
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return "", fmt.Errorf("invalid repository URL %q: %w", r.URL, err)
	}
	if r.Password != "" {
		u.User = url.UserPassword(r.Username, r.Password)
	} else {
		u.User = url.User(r.Username)
	}
	return u.String(), nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid repository URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("repository URL %q must use http or https", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("repository URL %q has no host", rawURL)
	}
	if u.Scheme == "http" && !strings.HasPrefix(u.Host, "localhost") && !strings.HasPrefix(u.Host, "127.") {
		log.Warnf("Repository URL %s is not using TLS", rawURL)
	}
	return nil
}

// warnPasswordStrength flags weak repository passwords. Weakness is only
// reported, never enforced: private indexes may have their own policies.
func warnPasswordStrength(name, password string) {
	validator := crunchy.NewValidator()
	if err := validator.Check(password); err != nil {
		log.Warnf("Password for repository %s is weak: %v", name, err)
	}
}
