package chart

import (
	"fmt"
	"strings"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Theme selects one of the engine's registered themes.
type Theme int

// Themes known to the engine. Default and Dark ship with the engine; the
// others need their theme script loaded before the chart is attached.
const (
	ThemeDefault Theme = iota
	ThemeDark
	ThemeVintage
	ThemeWesteros
	ThemeEssos
	ThemeWonderland
	ThemeWalden
	ThemeChalk
	ThemeInfographic
	ThemeMacarons
	ThemeRoma
	ThemeShine
	ThemePurplePassion
	ThemeHalloween
)

var themeNames = [...]string{
	ThemeDefault:       "",
	ThemeDark:          "dark",
	ThemeVintage:       "vintage",
	ThemeWesteros:      "westeros",
	ThemeEssos:         "essos",
	ThemeWonderland:    "wonderland",
	ThemeWalden:        "walden",
	ThemeChalk:         "chalk",
	ThemeInfographic:   "infographic",
	ThemeMacarons:      "macarons",
	ThemeRoma:          "roma",
	ThemeShine:         "shine",
	ThemePurplePassion: "purple-passion",
	ThemeHalloween:     "halloween",
}

// Themes returns every theme in declaration order.
func Themes() []Theme {
	out := make([]Theme, len(themeNames))
	for i := range themeNames {
		out[i] = Theme(i)
	}
	return out
}

// Name returns the name passed to the engine's init call. The default theme
// has an empty name.
func (t Theme) Name() string {
	if t < 0 || int(t) >= len(themeNames) {
		return ""
	}
	return themeNames[t]
}

// String returns a printable name; the default theme prints as "default".
func (t Theme) String() string {
	switch {
	case t == ThemeDefault:
		return "default"
	case t < 0 || int(t) >= len(themeNames):
		return fmt.Sprintf("Theme(%d)", int(t))
	default:
		return themeNames[t]
	}
}

// Builtin reports whether the engine ships the theme without an extra script.
func (t Theme) Builtin() bool { return t == ThemeDefault || t == ThemeDark }

// ParseTheme resolves a theme name. The empty string and "default" both
// select [ThemeDefault]; matching ignores case.
func ParseTheme(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return ThemeDefault, nil
	}
	for i, n := range themeNames {
		if n == name {
			return Theme(i), nil
		}
	}
	return ThemeDefault, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Theme) UnmarshalText(text []byte) error {
	v, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
