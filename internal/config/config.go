package config

import "fmt"

// Settings holds all subtitle segmentation and display parameters.
type Settings struct {
	MaxLines        int     `toml:"max_lines"`
	MaxCharsPerLine int     `toml:"max_chars_per_line"`
	MinDuration     float64 `toml:"min_duration"`
	MaxDuration     float64 `toml:"max_duration"`
	FrameInterval   float64 `toml:"frame_interval"`

	// Locale selects the abbreviation and conjunction word lists.
	Locale string `toml:"locale"`

	// Abbreviations and Conjunctions override the built-in per-locale
	// lists. Entries carry the recognizer's leading space (" z.B.").
	Abbreviations map[string][]string `toml:"abbreviations"`
	Conjunctions  map[string][]string `toml:"conjunctions"`

	// CapitalSuffix/CapitalReplacement is the gender-inclusive rewrite
	// applied while joining words ("Innen" -> "*innen").
	CapitalSuffix      string `toml:"capital_suffix"`
	CapitalReplacement string `toml:"capital_replacement"`
}

// Whisper holds the settings passed through to the recognition engine.
type Whisper struct {
	Model       string `toml:"model"`
	Device      string `toml:"device"`
	ComputeType string `toml:"compute_type"`
	Language    string `toml:"language"`
}

// Config holds the full application configuration.
type Config struct {
	Subtitles Settings `toml:"subtitles"`
	Whisper   Whisper  `toml:"whisper"`
}

// Default returns a Config with the reference defaults.
func Default() *Config {
	return &Config{
		Subtitles: Settings{
			MaxLines:           2,
			MaxCharsPerLine:    40,
			MinDuration:        2,
			MaxDuration:        5,
			FrameInterval:      0.042,
			Locale:             "de",
			CapitalSuffix:      "Innen",
			CapitalReplacement: "*innen",
		},
		Whisper: Whisper{
			Model:       "large",
			Device:      "cpu",
			ComputeType: "int8",
		},
	}
}

// Validate checks the configuration for values the pipeline cannot
// work with.
func (c *Config) Validate() error {
	s := c.Subtitles
	if s.MaxLines < 1 {
		return fmt.Errorf("max_lines must be at least 1, got %d", s.MaxLines)
	}
	if s.MaxCharsPerLine < 1 {
		return fmt.Errorf("max_chars_per_line must be at least 1, got %d", s.MaxCharsPerLine)
	}
	if s.MinDuration < 0 {
		return fmt.Errorf("min_duration must not be negative, got %g", s.MinDuration)
	}
	if s.MaxDuration <= 0 {
		return fmt.Errorf("max_duration must be positive, got %g", s.MaxDuration)
	}
	if s.MaxDuration < s.MinDuration {
		return fmt.Errorf("max_duration %g is below min_duration %g", s.MaxDuration, s.MinDuration)
	}
	if s.FrameInterval < 0 {
		return fmt.Errorf("frame_interval must not be negative, got %g", s.FrameInterval)
	}
	switch c.Whisper.Device {
	case "cpu", "cuda":
	default:
		return fmt.Errorf("whisper device must be cpu or cuda, got %q", c.Whisper.Device)
	}
	switch c.Whisper.ComputeType {
	case "int8", "float16", "float32":
	default:
		return fmt.Errorf("whisper compute_type must be int8, float16 or float32, got %q", c.Whisper.ComputeType)
	}
	return nil
}
