package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Nsfr750/pack/internal/config/validate"
	"github.com/Nsfr750/pack/internal/utils/logger"
	"github.com/Nsfr750/pack/internal/utils/security"
	"github.com/Nsfr750/pack/internal/utils/slice"
	"gopkg.in/yaml.v3"
)

// MaxRecentProjects bounds the recently-used project list.
const MaxRecentProjects = 10

// RepositoriesFile is the name of the repository store inside ConfigDir.
const RepositoriesFile = "repositories.json"

// GlobalConfig holds tool-level configuration parameters
type GlobalConfig struct {
	Python         string   `yaml:"python" json:"python"`                                       // Python executable used for all packaging operations (default: python3)
	ConfigDir      string   `yaml:"config_dir" json:"config_dir"`                               // Directory for the repository store and other state (default: ~/.pack)
	TempDir        string   `yaml:"temp_dir" json:"temp_dir,omitempty"`                         // Directory for ephemeral environments (empty = system default)
	Language       string   `yaml:"language" json:"language,omitempty"`                         // UI language code (en, it)
	RecentProjects []string `yaml:"recent_projects,omitempty" json:"recent_projects,omitempty"` // Recently opened project paths, newest first

	Logging LoggingConfig `yaml:"logging" json:"logging"` // Logging behavior settings
}

// LoggingConfig controls basic logging behavior
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`                   // Log verbosity level: debug, info (default), warn, error
	File  string `yaml:"file,omitempty" json:"file,omitempty"` // Optional log file path for teeing output to disk
}

var (
	globalInstance *GlobalConfig
	globalMutex    sync.RWMutex
	once           sync.Once
)

var log = logger.Logger()

// SetGlobal sets the global config instance (call once at startup in main.go)
func SetGlobal(config *GlobalConfig) {
	globalMutex.Lock()
	defer globalMutex.Unlock()
	globalInstance = config
}

// Global returns the global config instance
func Global() *GlobalConfig {
	once.Do(func() {
		globalMutex.Lock()
		defer globalMutex.Unlock()
		if globalInstance == nil {
			globalInstance = DefaultGlobalConfig()
		}
	})

	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return globalInstance
}

// DefaultGlobalConfig returns a GlobalConfig with sensible defaults
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Python:    "python3",
		ConfigDir: defaultConfigDir(),
		TempDir:   "",
		Language:  "en",

		Logging: LoggingConfig{
			Level: "info",
			File:  "pack.log",
		},
	}
}

func defaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "./.pack"
	}
	return filepath.Join(homeDir, ".pack")
}

// LoadGlobalConfig loads configuration from the specified path
func LoadGlobalConfig(configPath string) (*GlobalConfig, error) {
	// Start with defaults
	config := DefaultGlobalConfig()

	// If no config file specified or doesn't exist, return defaults
	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		if errors.Is(err, os.ErrPermission) {
			log.Warnf("Config file %s is not accessible (%v); using defaults", configPath, err)
			return config, nil
		}
		log.Errorf("Error accessing config file %s: %v", configPath, err)
		return nil, fmt.Errorf("accessing config file %s: %w", configPath, err)
	}

	// Load and merge config file values with symlink protection
	data, err := security.SafeReadFile(configPath, security.RejectSymlinks)
	if err != nil {
		log.Errorf("Error reading config file %s: %v", configPath, err)
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			log.Errorf("Error parsing YAML config: %v", err)
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}

		// Convert to JSON for schema validation
		jsonData, err := json.Marshal(config)
		if err != nil {
			log.Errorf("Error converting config to JSON for validation: %v", err)
			return nil, fmt.Errorf("converting config to JSON for validation: %w", err)
		}

		if err := validate.ValidateConfigJSON(jsonData); err != nil {
			log.Errorf("Schema validation failed: %v", err)
			return nil, fmt.Errorf("schema validation failed: %w", err)
		}

	default:
		log.Errorf("Unsupported config file format: %s", ext)
		return nil, fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml)", ext)
	}

	if err := config.Validate(); err != nil {
		log.Errorf("Config validation failed: %v", err)
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// SaveGlobalConfig saves the configuration to the specified path
func (gc *GlobalConfig) SaveGlobalConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			log.Errorf("Failed to create config directory: %v", err)
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	// Convert to JSON for schema validation before saving
	jsonData, err := json.Marshal(gc)
	if err != nil {
		log.Errorf("Error converting config to JSON for validation: %v", err)
		return fmt.Errorf("converting config to JSON for validation: %w", err)
	}

	if err := validate.ValidateConfigJSON(jsonData); err != nil {
		log.Errorf("Config validation failed before save: %v", err)
		return fmt.Errorf("config validation failed before save: %w", err)
	}

	data, err := yaml.Marshal(gc)
	if err != nil {
		log.Errorf("Error marshaling config to YAML: %v", err)
		return fmt.Errorf("marshaling config to YAML: %w", err)
	}

	if err := security.SafeWriteFile(configPath, data, 0600, security.RejectSymlinks); err != nil {
		log.Errorf("Error writing config file: %v", err)
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// SaveGlobalConfigWithComments saves the configuration with descriptive
// comments. Primarily used by the CLI config init command to create a
// user-friendly starting file.
func (gc *GlobalConfig) SaveGlobalConfigWithComments(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is empty")
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			log.Errorf("Failed to create config directory: %v", err)
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	jsonData, err := json.Marshal(gc)
	if err != nil {
		log.Errorf("Error converting config to JSON for validation: %v", err)
		return fmt.Errorf("converting config to JSON for validation: %w", err)
	}

	if err := validate.ValidateConfigJSON(jsonData); err != nil {
		log.Errorf("Config validation failed before save: %v", err)
		return fmt.Errorf("config validation failed before save: %w", err)
	}

	commented := gc.renderCommentedYAML()

	if err := security.SafeWriteFile(configPath, []byte(commented), 0600, security.RejectSymlinks); err != nil {
		log.Errorf("Error writing config file: %v", err)
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// renderCommentedYAML builds a YAML representation of the config with rich comments.
func (gc *GlobalConfig) renderCommentedYAML() string {
	var b strings.Builder

	b.WriteString("# pack - Global Configuration\n")
	b.WriteString("# This file contains tool-level settings that apply across all projects.\n\n")

	fmt.Fprintf(&b, "python: %q\n", gc.Python)
	b.WriteString("# Python executable used for building, installing and environment creation\n")
	b.WriteString("# May be a bare command (python3) or an absolute interpreter path\n\n")

	fmt.Fprintf(&b, "config_dir: %q\n", gc.ConfigDir)
	b.WriteString("# Directory holding the repository store (repositories.json) and other state\n\n")

	fmt.Fprintf(&b, "temp_dir: %q\n", gc.TempDir)
	b.WriteString("# Directory for ephemeral virtual environments and requirement files\n")
	b.WriteString("# Empty value uses the system default (/tmp on Linux)\n")
	b.WriteString("# Everything created here is removed when the operation finishes\n\n")

	fmt.Fprintf(&b, "language: %q\n", gc.Language)
	b.WriteString("# UI language code; supported: en, it\n\n")

	b.WriteString("# Logging configuration\n")
	b.WriteString("logging:\n")
	fmt.Fprintf(&b, "  level: %q\n", gc.Logging.Level)
	b.WriteString("  # Log verbosity level (default: info)\n")
	b.WriteString("  # - debug: Most verbose, shows every external command\n")
	b.WriteString("  # - info:  Normal output, shows progress and important events\n")
	b.WriteString("  # - warn:  Only warnings and errors\n")
	b.WriteString("  # - error: Only errors, very quiet operation\n")
	if gc.Logging.File != "" {
		fmt.Fprintf(&b, "  file: %q\n", gc.Logging.File)
		b.WriteString("  # Tee logs to this file in addition to stderr\n")
	}

	return b.String()
}

// Validate checks the configuration for consistency and applies constraints
func (gc *GlobalConfig) Validate() error {
	if strings.TrimSpace(gc.Python) == "" {
		log.Errorf("Python executable cannot be empty")
		return fmt.Errorf("python executable cannot be empty")
	}
	if gc.ConfigDir == "" {
		log.Errorf("ConfigDir cannot be empty")
		return fmt.Errorf("ConfigDir cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !slice.Contains(validLevels, gc.Logging.Level) {
		return fmt.Errorf("invalid log level %q, must be one of: %s",
			gc.Logging.Level, strings.Join(validLevels, ", "))
	}

	gc.Logging.File = strings.TrimSpace(gc.Logging.File)

	if gc.Language == "" {
		gc.Language = "en"
	}
	validLanguages := []string{"en", "it"}
	if !slice.Contains(validLanguages, gc.Language) {
		return fmt.Errorf("unsupported language %q, must be one of: %s",
			gc.Language, strings.Join(validLanguages, ", "))
	}

	if len(gc.RecentProjects) > MaxRecentProjects {
		gc.RecentProjects = gc.RecentProjects[:MaxRecentProjects]
	}

	return nil
}

// AddRecentProject moves path to the front of the recently-used list,
// deduplicating and truncating to MaxRecentProjects.
func (gc *GlobalConfig) AddRecentProject(path string) {
	if path == "" {
		return
	}
	gc.RecentProjects = slice.RemoveStringFromSlice(gc.RecentProjects, path)
	gc.RecentProjects = append([]string{path}, gc.RecentProjects...)
	if len(gc.RecentProjects) > MaxRecentProjects {
		gc.RecentProjects = gc.RecentProjects[:MaxRecentProjects]
	}
}

// GetConfigPaths returns the standard configuration file paths to check
func GetConfigPaths() []string {
	homeDir, _ := os.UserHomeDir()

	paths := []string{
		"pack.yml",  // Primary config location (current directory)
		".pack.yml", // Hidden file in current directory
		"pack.yaml",
		".pack.yaml",
	}

	if homeDir != "" {
		paths = append(paths,
			filepath.Join(homeDir, ".pack", "config.yml"),
			filepath.Join(homeDir, ".pack", "config.yaml"),
			filepath.Join(homeDir, ".config", "pack", "config.yml"),
			filepath.Join(homeDir, ".config", "pack", "config.yaml"),
		)
	}

	// System-wide config paths
	paths = append(paths,
		"/etc/pack/config.yml",
		"/etc/pack/config.yaml",
	)

	return paths
}

// FindConfigFile searches for a configuration file in standard locations
func FindConfigFile() string {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Convenience functions that can be used anywhere in the codebase

func PythonExecutable() string {
	return Global().Python
}

func Language() string {
	return Global().Language
}

func ConfigDirPath() (string, error) {
	configDir, err := filepath.Abs(Global().ConfigDir)
	if err != nil {
		log.Errorf("Failed to resolve config directory: %v", err)
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return configDir, nil
}

// RepositoriesPath returns the path of the repository store file.
func RepositoriesPath() (string, error) {
	configDir, err := ConfigDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, RepositoriesFile), nil
}

func TempDir() string {
	tempDir := Global().TempDir
	if tempDir == "" {
		return os.TempDir()
	}
	return tempDir
}

func LogLevel() string {
	return Global().Logging.Level
}

func IsDebugMode() bool {
	return Global().Logging.Level == "debug"
}

// Directory creation helpers

func EnsureConfigDir() error {
	configDir, err := ConfigDirPath()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}
	return ensureDirExists(configDir)
}

func EnsureTempDir(subdir string) (string, error) {
	tempDir := filepath.Join(TempDir(), subdir)
	err := ensureDirExists(tempDir)
	return tempDir, err
}

func ensureDirExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0700)
	}
	return nil
}
