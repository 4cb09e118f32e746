package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labelpress/labelpress/config"
)

func TestNewAppLoadsPatternsDir(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "hyph-de.pat.txt")
	if err := os.WriteFile(fn, []byte("1ba\n1be\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.FontDir = t.TempDir()
	cfg.PatternsDir = dir
	a, err := newApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// loaded at startup, not on first use
	if err := os.Remove(fn); err != nil {
		t.Fatal(err)
	}
	l, err := a.breaker.Languages.GetLanguage("de")
	if err != nil {
		t.Fatalf("GetLanguage(de) error: %s", err)
	}
	if l.Name != "de" {
		t.Errorf("l.Name = %q, want de", l.Name)
	}
}

func TestNewAppMissingPatternsDir(t *testing.T) {
	cfg := config.Default()
	cfg.FontDir = t.TempDir()
	cfg.PatternsDir = filepath.Join(t.TempDir(), "none")
	a, err := newApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.breaker.Languages.GetLanguage("ru"); err != nil {
		t.Errorf("GetLanguage(ru) error: %s", err)
	}
}
