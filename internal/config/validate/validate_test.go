package validate

import (
	"strings"
	"testing"
)

func TestValidateConfigJSONAcceptsMinimal(t *testing.T) {
	data := []byte(`{
		"python": "python3",
		"config_dir": "/home/user/.pack",
		"logging": {"level": "info"}
	}`)
	if err := ValidateConfigJSON(data); err != nil {
		t.Errorf("minimal config should validate: %v", err)
	}
}

func TestValidateConfigJSONRejectsBadLevel(t *testing.T) {
	data := []byte(`{
		"python": "python3",
		"config_dir": "/home/user/.pack",
		"logging": {"level": "verbose"}
	}`)
	err := ValidateConfigJSON(data)
	if err == nil {
		t.Fatal("expected validation failure for bad log level")
	}
	if !strings.Contains(err.Error(), "schema validation") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateConfigJSONRejectsUnknownKey(t *testing.T) {
	data := []byte(`{
		"python": "python3",
		"config_dir": "/home/user/.pack",
		"logging": {"level": "info"},
		"workers": 8
	}`)
	if err := ValidateConfigJSON(data); err == nil {
		t.Error("expected validation failure for unknown key")
	}
}

func TestValidateRepositoriesJSON(t *testing.T) {
	good := []byte(`{
		"pypi": {"name": "pypi", "url": "https://pypi.org/simple", "is_default": true},
		"internal": {"name": "internal", "url": "https://pkg.example.com/simple", "username": "ci"}
	}`)
	if err := ValidateRepositoriesJSON(good); err != nil {
		t.Errorf("valid store should pass: %v", err)
	}

	badURL := []byte(`{"x": {"name": "x", "url": "ftp://pkg.example.com"}}`)
	if err := ValidateRepositoriesJSON(badURL); err == nil {
		t.Error("expected validation failure for non-http url")
	}

	missingURL := []byte(`{"x": {"name": "x"}}`)
	if err := ValidateRepositoriesJSON(missingURL); err == nil {
		t.Error("expected validation failure for missing url")
	}
}
