package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nsfr750/pack/internal/config"
)

func TestConfigInit_CreatesCommentedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yml")

	cmd := createConfigCommand()
	cmd.SetArgs([]string{"init", path})
	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("config init failed: %v", err)
		}
	})

	if !strings.Contains(out, "Configuration file created") {
		t.Errorf("unexpected output:\n%s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	for _, want := range []string{"python:", "config_dir:", "logging:"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config file missing %q", want)
		}
	}

	// The generated file must load cleanly.
	if _, err := config.LoadGlobalConfig(path); err != nil {
		t.Errorf("generated config does not load: %v", err)
	}
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yml")
	if err := os.WriteFile(path, []byte("python: python3\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cmd := createConfigCommand()
	cmd.SetArgs([]string{"init", path})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Error("expected refusal to overwrite an existing config file")
	}
}

func TestConfigShow_PrintsSettings(t *testing.T) {
	cfg := config.DefaultGlobalConfig()
	cfg.Python = "python3.12"
	config.SetGlobal(cfg)
	t.Cleanup(func() { config.SetGlobal(config.DefaultGlobalConfig()) })

	cmd := createConfigCommand()
	cmd.SetArgs([]string{"show"})
	out := captureOutput(t, func() {
		_ = cmd.Execute()
	})

	for _, want := range []string{"Python executable: python3.12", "Log level: info", "Language: en"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
