package i18n

import (
	"golang.org/x/text/language"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Spanish,
})

// Match picks the closest supported language for the given tags or Accept-Language
// header values, falling back to English when nothing is close.
func Match(prefs ...string) Language {
	if len(prefs) == 0 {
		return DefaultLanguage
	}
	_, index := language.MatchStrings(matcher, prefs...)
	if index < 0 || index >= len(Languages) {
		return DefaultLanguage
	}
	return Languages[index]
}

// Parse accepts only exact supported tags
func Parse(tag string) (Language, bool) {
	lang := Language(tag)
	if !Default.Supported(lang) {
		return "", false
	}
	return lang, true
}
