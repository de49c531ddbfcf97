// Package i18n provides the user-facing message catalog. Lookups fall
// back to English, then to the key itself, so missing translations never
// break the UI.
package i18n

import (
	"fmt"
	"sort"
)

// DefaultLanguage is the fallback table.
const DefaultLanguage = "en"

// Catalog resolves message keys for one active language. It is an
// explicit value passed to consumers, not process-global state.
type Catalog struct {
	lang string
}

// NewCatalog returns a catalog for the given language code. Unknown
// codes fall back to English.
func NewCatalog(lang string) *Catalog {
	if _, ok := tables[lang]; !ok {
		lang = DefaultLanguage
	}
	return &Catalog{lang: lang}
}

// Language returns the active language code.
func (c *Catalog) Language() string {
	return c.lang
}

// T translates a message key.
func (c *Catalog) T(key string) string {
	if msg, ok := tables[c.lang][key]; ok {
		return msg
	}
	if msg, ok := tables[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Tf translates a message key and formats it with args.
func (c *Catalog) Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(c.T(key), args...)
}

// Languages lists the available language codes, sorted.
func Languages() []string {
	langs := make([]string, 0, len(tables))
	for lang := range tables {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
