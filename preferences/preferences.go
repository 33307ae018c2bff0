// Package preferences persists the user's language and theme choices.
package preferences

import (
	"context"
	"log"

	"weathermine/i18n"
)

// Theme is a UI color scheme
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// DefaultTheme is used whenever no preference is stored
const DefaultTheme = Light

const (
	languageKey = "language"
	themeKey    = "theme"
)

// ParseTheme accepts only the known themes
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Store is a string key-value store
type Store interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Preferences reads and writes the user's settings. A Preferences without a Store
// always reports the defaults and discards writes.
type Preferences struct {
	store Store
}

// New wraps store; store may be nil
func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// Language returns the stored language, or English
func (p *Preferences) Language(ctx context.Context) i18n.Language {
	if v := p.get(ctx, languageKey); v != "" {
		return i18n.Language(v)
	}
	return i18n.DefaultLanguage
}

// SetLanguage stores lang
func (p *Preferences) SetLanguage(ctx context.Context, lang i18n.Language) error {
	return p.set(ctx, languageKey, string(lang))
}

// Theme returns the stored theme, or light
func (p *Preferences) Theme(ctx context.Context) Theme {
	if v := p.get(ctx, themeKey); v != "" {
		return Theme(v)
	}
	return DefaultTheme
}

// SetTheme stores theme
func (p *Preferences) SetTheme(ctx context.Context, theme Theme) error {
	return p.set(ctx, themeKey, string(theme))
}

func (p *Preferences) get(ctx context.Context, key string) string {
	if p == nil || p.store == nil {
		return ""
	}
	v, ok, err := p.store.Get(ctx, key)
	if err != nil {
		log.Printf("[WARN] read preference %q: %v", key, err)
		return ""
	}
	if !ok {
		return ""
	}
	return v
}

func (p *Preferences) set(ctx context.Context, key, value string) error {
	if p == nil || p.store == nil {
		return nil
	}
	return p.store.Set(ctx, key, value)
}
