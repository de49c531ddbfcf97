package file

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFromJSONMissingFile(t *testing.T) {
	_, err := ReadFromJSON(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadFromJSONEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := ReadFromJSON(path)
	if err == nil {
		t.Error("expected error for empty file")
	}
}

func TestWriteThenReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.json")
	data := map[string]interface{}{
		"pypi": map[string]interface{}{
			"name": "pypi",
			"url":  "https://pypi.org/simple",
		},
	}

	if err := WriteToJSON(path, data, 2); err != nil {
		t.Fatalf("WriteToJSON failed: %v", err)
	}

	got, err := ReadFromJSON(path)
	if err != nil {
		t.Fatalf("ReadFromJSON failed: %v", err)
	}
	repo, ok := got["pypi"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected pypi entry, got: %v", got)
	}
	if repo["url"] != "https://pypi.org/simple" {
		t.Errorf("unexpected url: %v", repo["url"])
	}
}

func TestAppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	if err := Append("requests>=2.0\n", path); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := Append("flask\n", path); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "requests>=2.0\nflask\n" {
		t.Errorf("unexpected content: %q", data)
	}
}
