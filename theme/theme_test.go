// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme_test.go
// Summary: Tests for the theme store.

package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

const sample = `{
  "ui": {"text_fg": "#aabbcc"},
  "button": {"duration_ms": 150}
}`

func TestParseAndGetColor(t *testing.T) {
	th, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := th.GetColor("ui", "text_fg", tcell.ColorRed)
	r, g, b := c.RGB()
	if r != 0xaa || g != 0xbb || b != 0xcc {
		t.Fatalf("unexpected color %x,%x,%x", r, g, b)
	}
}

func TestGetColorFallbacks(t *testing.T) {
	th, _ := Parse([]byte(sample))
	if c := th.GetColor("ui", "missing", tcell.ColorRed); c != tcell.ColorRed {
		t.Fatal("missing key should fall back")
	}
	if c := th.GetColor("nope", "text_fg", tcell.ColorRed); c != tcell.ColorRed {
		t.Fatal("missing section should fall back")
	}
	th2, _ := Parse([]byte(`{"ui": {"text_fg": "not-a-color"}}`))
	if c := th2.GetColor("ui", "text_fg", tcell.ColorRed); c != tcell.ColorRed {
		t.Fatal("malformed value should fall back")
	}
}

func TestGetDuration(t *testing.T) {
	th, _ := Parse([]byte(sample))
	if d := th.GetDuration("button", "duration_ms", time.Second); d != 150*time.Millisecond {
		t.Fatalf("unexpected duration %v", d)
	}
	if d := th.GetDuration("button", "missing", time.Second); d != time.Second {
		t.Fatal("missing key should fall back")
	}
}

func TestLoadAndMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	base := defaults()
	base.merge(loaded)
	// Overridden key wins...
	c := base.GetColor("ui", "text_fg", tcell.ColorRed)
	r, g, b := c.RGB()
	if r != 0xaa || g != 0xbb || b != 0xcc {
		t.Fatalf("override lost: %x,%x,%x", r, g, b)
	}
	// ...while untouched defaults survive.
	if c := base.GetColor("ui", "surface_bg", tcell.ColorRed); c == tcell.ColorRed {
		t.Fatal("default keys should survive a merge")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
