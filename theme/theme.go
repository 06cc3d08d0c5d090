// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: JSON-backed theme store with embedded defaults.
// Usage: Widgets pull default colors from Get() in their constructors.

package theme

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/glintui/glint/color"
)

const themeFileName = "theme.json"

// Theme stores configuration sections as JSON-compatible data.
// Color values are "#rrggbb" strings; durations are integer milliseconds.
type Theme struct {
	sections map[string]map[string]interface{}
}

var (
	mu      sync.RWMutex
	once    sync.Once
	current *Theme
)

// Get returns the active theme, loading the user theme file on first use.
// Values missing from the user file fall back to the embedded defaults.
func Get() *Theme {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active theme. Intended for tests and live reload.
func Set(t *Theme) {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	if t != nil {
		current = t
	}
}

func initStore() {
	t := defaults()
	if path, err := userThemePath(); err == nil {
		if loaded, err := Load(path); err == nil {
			t.merge(loaded)
		} else if !os.IsNotExist(err) {
			log.Printf("theme: ignoring %s: %v", path, err)
		}
	}
	mu.Lock()
	current = t
	mu.Unlock()
}

func userThemePath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "glint", themeFileName), nil
}

// Load reads a theme file from disk.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes theme JSON of the form {"section": {"key": value}}.
func Parse(data []byte) (*Theme, error) {
	var sections map[string]map[string]interface{}
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	return &Theme{sections: sections}, nil
}

// merge overlays o's values onto t, section by section.
func (t *Theme) merge(o *Theme) {
	for name, section := range o.sections {
		dst := t.sections[name]
		if dst == nil {
			dst = make(map[string]interface{}, len(section))
			t.sections[name] = dst
		}
		for k, v := range section {
			dst[k] = v
		}
	}
}

// GetColor resolves a hex color from a section, falling back when the key
// is missing or malformed.
func (t *Theme) GetColor(section, key string, fallback tcell.Color) tcell.Color {
	if s := t.sections[section]; s != nil {
		if v, ok := s[key].(string); ok {
			if c, ok := color.ParseHex(v); ok {
				return c
			}
		}
	}
	return fallback
}

// GetDuration resolves an integer millisecond value from a section.
func (t *Theme) GetDuration(section, key string, fallback time.Duration) time.Duration {
	if s := t.sections[section]; s != nil {
		if v, ok := s[key].(float64); ok && v >= 0 {
			return time.Duration(v) * time.Millisecond
		}
	}
	return fallback
}

func defaults() *Theme {
	t, err := Parse([]byte(defaultTheme))
	if err != nil {
		// The embedded defaults are fixed at build time; a parse
		// failure is a programming error.
		panic(err)
	}
	return t
}

const defaultTheme = `{
  "ui": {
    "surface_bg": "#101014",
    "surface_fg": "#d0d0d0",
    "text_fg": "#d0d0d0",
    "focus_text_fg": "#ffffff",
    "border_fg": "#585858",
    "focus_border_fg": "#87d7ff"
  },
  "button": {
    "fg": "#bcbcbc",
    "bg": "#1c1c1c",
    "focus_fg": "#ffffff",
    "focus_bg": "#444444",
    "duration_ms": 200
  }
}`
