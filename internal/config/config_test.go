package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Subtitles.MaxLines != 2 {
		t.Errorf("MaxLines = %d, want 2", cfg.Subtitles.MaxLines)
	}
	if cfg.Subtitles.MaxCharsPerLine != 40 {
		t.Errorf("MaxCharsPerLine = %d, want 40", cfg.Subtitles.MaxCharsPerLine)
	}
	if cfg.Subtitles.MinDuration != 2 {
		t.Errorf("MinDuration = %v, want 2", cfg.Subtitles.MinDuration)
	}
	if cfg.Subtitles.MaxDuration != 5 {
		t.Errorf("MaxDuration = %v, want 5", cfg.Subtitles.MaxDuration)
	}
	if cfg.Subtitles.FrameInterval != 0.042 {
		t.Errorf("FrameInterval = %v, want 0.042", cfg.Subtitles.FrameInterval)
	}
	if cfg.Subtitles.Locale != "de" {
		t.Errorf("Locale = %q, want \"de\"", cfg.Subtitles.Locale)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max_lines", func(c *Config) { c.Subtitles.MaxLines = 0 }},
		{"zero max_chars", func(c *Config) { c.Subtitles.MaxCharsPerLine = 0 }},
		{"negative min_duration", func(c *Config) { c.Subtitles.MinDuration = -1 }},
		{"zero max_duration", func(c *Config) { c.Subtitles.MaxDuration = 0 }},
		{"max below min", func(c *Config) { c.Subtitles.MaxDuration = 1 }},
		{"negative frame_interval", func(c *Config) { c.Subtitles.FrameInterval = -0.1 }},
		{"bad device", func(c *Config) { c.Whisper.Device = "tpu" }},
		{"bad compute type", func(c *Config) { c.Whisper.ComputeType = "int4" }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLocaleLists(t *testing.T) {
	s := Default().Subtitles

	abbr := s.AbbreviationList()
	if len(abbr) == 0 {
		t.Fatal("default de abbreviation list is empty")
	}
	found := false
	for _, a := range abbr {
		if a == " z.B." {
			found = true
		}
	}
	if !found {
		t.Error("de abbreviations should contain \" z.B.\"")
	}

	conj := s.ConjunctionList()
	if len(conj) == 0 || conj[0] != " oder" {
		t.Errorf("de conjunctions should start with \" oder\", got %v", conj)
	}
}

func TestLocaleLists_Override(t *testing.T) {
	s := Default().Subtitles
	s.Locale = "fr"
	s.Abbreviations = map[string][]string{"fr": {" p.ex."}}

	abbr := s.AbbreviationList()
	if len(abbr) != 1 || abbr[0] != " p.ex." {
		t.Errorf("override not used, got %v", abbr)
	}
	// No conjunction override and no built-in list for fr.
	if conj := s.ConjunctionList(); conj != nil {
		t.Errorf("expected nil conjunctions for unknown locale, got %v", conj)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autosub.toml")
	content := `
[subtitles]
max_chars_per_line = 32
locale = "en"

[subtitles.conjunctions]
en = [" or", " and"]

[whisper]
model = "medium"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Subtitles.MaxCharsPerLine != 32 {
		t.Errorf("MaxCharsPerLine = %d, want 32", cfg.Subtitles.MaxCharsPerLine)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Subtitles.MaxLines != 2 {
		t.Errorf("MaxLines = %d, want default 2", cfg.Subtitles.MaxLines)
	}
	if cfg.Whisper.Model != "medium" {
		t.Errorf("Model = %q, want \"medium\"", cfg.Whisper.Model)
	}
	if cfg.Whisper.Device != "cpu" {
		t.Errorf("Device = %q, want default \"cpu\"", cfg.Whisper.Device)
	}
	conj := cfg.Subtitles.ConjunctionList()
	if len(conj) != 2 || conj[0] != " or" {
		t.Errorf("en conjunction override not applied, got %v", conj)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	content := `
[subtitles]
max_lines = 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for max_lines = 0")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
