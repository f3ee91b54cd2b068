package models

import "fmt"

// ThemeMode is the persisted colour-scheme preference. It is independent of
// authentication state.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// ParseThemeMode validates a raw persisted or user-supplied value.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch m := ThemeMode(s); m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return m, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q", s)
	}
}
