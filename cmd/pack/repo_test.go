package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nsfr750/pack/internal/config"
)

// withTempConfigDir points the global config at a throwaway directory so
// command tests never touch the user's repository store.
func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultGlobalConfig()
	cfg.ConfigDir = dir
	config.SetGlobal(cfg)
	t.Cleanup(func() { config.SetGlobal(config.DefaultGlobalConfig()) })
	return dir
}

func TestRepoAddListRemove_Flow(t *testing.T) {
	dir := withTempConfigDir(t)

	add := createRepoCommand()
	add.SetArgs([]string{"add", "internal", "https://pypi.corp.example.com/", "--username", "ci"})
	out := captureOutput(t, func() {
		if err := add.Execute(); err != nil {
			t.Errorf("repo add failed: %v", err)
		}
	})
	if !strings.Contains(out, "Repository internal added") {
		t.Errorf("unexpected add output:\n%s", out)
	}

	storePath := filepath.Join(dir, "repositories.json")
	list := createRepoCommand()
	list.SetArgs([]string{"list"})
	out = captureOutput(t, func() {
		if err := list.Execute(); err != nil {
			t.Errorf("repo list failed: %v", err)
		}
	})
	for _, want := range []string{"internal", "pypi", "ci"} {
		if !strings.Contains(out, want) {
			t.Errorf("repo list missing %q (store at %s):\n%s", want, storePath, out)
		}
	}

	setDefault := createRepoCommand()
	setDefault.SetArgs([]string{"set-default", "internal"})
	captureOutput(t, func() {
		if err := setDefault.Execute(); err != nil {
			t.Errorf("repo set-default failed: %v", err)
		}
	})

	remove := createRepoCommand()
	remove.SetArgs([]string{"remove", "internal"})
	captureOutput(t, func() {
		if err := remove.Execute(); err != nil {
			t.Errorf("repo remove failed: %v", err)
		}
	})

	// pypi survives and is undeletable.
	removePyPI := createRepoCommand()
	removePyPI.SetArgs([]string{"remove", "pypi"})
	removePyPI.SilenceErrors = true
	removePyPI.SilenceUsage = true
	if err := removePyPI.Execute(); err == nil {
		t.Error("removing the built-in pypi repository should fail")
	}
}
