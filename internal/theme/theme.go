// Package theme resolves and persists the light/dark theme preference.
package theme

import (
	"context"
	"strings"
)

// Mode is a color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Parse converts s to a Mode. Unknown values report false.
func Parse(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// HTMLClass is the class set on the <html> element for this mode.
// Dark is the stylesheet default and needs no class.
func (m Mode) HTMLClass() string {
	if m == Light {
		return "light-theme"
	}
	return ""
}

// Resolve picks the effective mode: a saved preference wins, then the
// client's prefers-color-scheme hint, then fallback.
func Resolve(saved, hint string, fallback Mode) Mode {
	if m, ok := Parse(saved); ok {
		return m
	}
	if m, ok := Parse(hint); ok {
		return m
	}
	if _, ok := Parse(string(fallback)); ok {
		return fallback
	}
	return Dark
}

// Store persists one theme preference per visitor.
type Store interface {
	Get(ctx context.Context, visitorID string) (Mode, bool, error)
	Set(ctx context.Context, visitorID string, m Mode) error
}
