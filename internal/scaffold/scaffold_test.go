package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateBasicProject(t *testing.T) {
	dir := t.TempDir()
	info := ProjectInfo{
		Name:        "my-package",
		Version:     "1.2.0",
		Description: "Test package",
		Author:      "Dev",
		Email:       "dev@example.com",
	}

	if err := Create(dir, "basic", info); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, rel := range []string{
		"setup.py",
		"README.md",
		"requirements.txt",
		".gitignore",
		"my_package/__init__.py",
		"tests/__init__.py",
		"tests/test_my_package.py",
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}

	setup, err := os.ReadFile(filepath.Join(dir, "setup.py"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`name="my-package"`, `version="1.2.0"`, `author="Dev"`} {
		if !strings.Contains(string(setup), want) {
			t.Errorf("setup.py missing %s", want)
		}
	}
	if strings.Contains(string(setup), "console_scripts") {
		t.Error("basic template should not declare console scripts")
	}
}

func TestCreateCLIProject(t *testing.T) {
	dir := t.TempDir()
	info := ProjectInfo{Name: "mytool", Description: "A CLI"}

	if err := Create(dir, "cli", info); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	setup, err := os.ReadFile(filepath.Join(dir, "setup.py"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(setup), "mytool=mytool.cli:main") {
		t.Errorf("cli template should declare a console script, got:\n%s", setup)
	}
	// Defaults fill missing fields.
	if !strings.Contains(string(setup), `version="0.1.0"`) {
		t.Error("expected default version 0.1.0")
	}

	if _, err := os.Stat(filepath.Join(dir, "mytool", "cli.py")); err != nil {
		t.Errorf("expected cli.py: %v", err)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	if err := Create(dir, "basic", ProjectInfo{Name: "bad name!"}); err == nil {
		t.Error("expected invalid project name to be rejected")
	}
	if err := Create(dir, "fancy", ProjectInfo{Name: "ok"}); err == nil {
		t.Error("expected unknown template to be rejected")
	}
}

func TestCreateRefusesExistingProject(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "setup.py"), []byte("setup()"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Create(dir, "basic", ProjectInfo{Name: "clobber"}); err == nil {
		t.Error("expected refusal to scaffold over an existing project")
	}
}

func TestModuleName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"my-package", "my_package"},
		{"My.Tool", "my_tool"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := (ProjectInfo{Name: tt.in}).ModuleName(); got != tt.want {
			t.Errorf("ModuleName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadProjectInfo(t *testing.T) {
	dir := t.TempDir()
	info := ProjectInfo{Name: "roundtrip", Version: "2.0.1", Description: "Round trip", Author: "Dev"}
	if err := Create(dir, "basic", info); err != nil {
		t.Fatal(err)
	}

	got, err := ReadProjectInfo(dir)
	if err != nil {
		t.Fatalf("ReadProjectInfo failed: %v", err)
	}
	if got.Name != "roundtrip" || got.Version != "2.0.1" || got.Author != "Dev" {
		t.Errorf("unexpected info: %+v", got)
	}
}

func TestReadProjectInfoMissingSetup(t *testing.T) {
	if _, err := ReadProjectInfo(t.TempDir()); err == nil {
		t.Error("expected error for a directory without setup.py")
	}
}

func TestReadProjectInfoNoName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "setup.py"), []byte("from setuptools import setup\nsetup()\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadProjectInfo(dir); err == nil {
		t.Error("expected error when setup.py has no name")
	}
}
