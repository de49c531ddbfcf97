package i18n

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	en := NewCatalog("en")
	if got := en.T("ui.quit"); got != "Quit" {
		t.Errorf("expected Quit, got %q", got)
	}

	it := NewCatalog("it")
	if got := it.T("ui.quit"); got != "Esci" {
		t.Errorf("expected Esci, got %q", got)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	c := NewCatalog("de")
	if c.Language() != DefaultLanguage {
		t.Errorf("expected fallback language, got %q", c.Language())
	}
	if got := c.T("ui.quit"); got != "Quit" {
		t.Errorf("expected English text, got %q", got)
	}
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	c := NewCatalog("it")
	if got := c.T("no.such.key"); got != "no.such.key" {
		t.Errorf("expected the key itself, got %q", got)
	}
}

func TestTf(t *testing.T) {
	c := NewCatalog("en")
	got := c.Tf("msg.installing", "requests")
	if got != "Installing requests..." {
		t.Errorf("unexpected formatted message %q", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "it" {
		t.Errorf("unexpected language list %v", langs)
	}
}

func TestItalianCoversEnglishKeys(t *testing.T) {
	for key := range tables["en"] {
		if _, ok := tables["it"][key]; !ok {
			t.Errorf("italian table missing key %q", key)
		}
	}
}

func TestFormatDirectivesMatch(t *testing.T) {
	// A translated message must keep the same format verbs as the
	// English original, or Tf output would be garbled.
	for key, enMsg := range tables["en"] {
		itMsg, ok := tables["it"][key]
		if !ok {
			continue
		}
		if strings.Count(enMsg, "%") != strings.Count(itMsg, "%") {
			t.Errorf("format verb mismatch for %q: %q vs %q", key, enMsg, itMsg)
		}
	}
}
