// Package i18n holds the static English and Spanish string tables and the lookup
// helpers used to localize forecasts and error messages.
package i18n

import "strings"

// Language is a supported UI language tag
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// DefaultLanguage is used whenever no preference is known
const DefaultLanguage = English

// Languages lists every language with a translation table, default first
var Languages = []Language{English, Spanish}

// Table maps a language to its flat key → string table
type Table map[Language]map[string]string

// Translator resolves translation keys for a language
type Translator interface {
	Translate(key string, lang Language) string
}

// Default is the built-in table
var Default Table = translations

// Translate looks up key in the built-in table
func Translate(key string, lang Language) string {
	return Default.Translate(key, lang)
}

// Translate resolves a dotted key against lang's table. Any miss, including an unknown
// language, a segment below a leaf, or an empty string, yields the key itself.
func (t Table) Translate(key string, lang Language) string {
	strs, ok := t[lang]
	if !ok {
		return key
	}

	segments := strings.Split(key, ".")
	// tables are one level deep, so only single-segment keys can reach a leaf
	if len(segments) != 1 {
		return key
	}

	value, ok := strs[segments[0]]
	if !ok || value == "" {
		return key
	}
	return value
}

// Strings returns a copy of lang's table, or nil when the language is unknown
func (t Table) Strings(lang Language) map[string]string {
	strs, ok := t[lang]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(strs))
	for k, v := range strs {
		out[k] = v
	}
	return out
}

// Supported reports whether lang has a translation table
func (t Table) Supported(lang Language) bool {
	_, ok := t[lang]
	return ok
}

// Ensure Table implements Translator
var _ Translator = Table(nil)
