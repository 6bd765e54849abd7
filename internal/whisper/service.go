// Package whisper drives the external speech recognition engine as an
// opaque subprocess and parses its word-timestamped output. The engine
// is a black box to the rest of the program; only the word record shape
// crosses the boundary.
package whisper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/HeiCAD/auto-subtitle-generator/internal/pipeline"
)

// Command names for external tools.
const (
	UVXCommand     = "uvx"
	WhisperXModule = "whisperx"
)

// Config captures the recognition settings passed through to WhisperX.
type Config struct {
	// Model is the Whisper model size (tiny, base, small, medium, large).
	Model string
	// Device selects the hardware ("cpu" or "cuda").
	Device string
	// ComputeType is the numerical precision ("int8", "float16", "float32").
	ComputeType string
	// Language is an ISO code, or empty for auto-detection.
	Language string
}

// Service runs WhisperX transcriptions.
type Service struct {
	cfg           Config
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a recognition service with the given configuration.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.cfg.Model
}

func (s *Service) buildArgs(source, outputDir string) []string {
	args := []string{
		WhisperXModule,
		source,
		"--model", s.cfg.Model,
		"--device", s.cfg.Device,
		"--compute_type", s.cfg.ComputeType,
		"--output_format", "json",
		"--output_dir", outputDir,
	}
	if s.cfg.Language != "" && strings.ToLower(s.cfg.Language) != "auto" {
		args = append(args, "--language", s.cfg.Language)
	}
	return args
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Transcribe runs the recognizer on an audio file and returns the
// flattened, ordered word list plus the detected language code. The
// recognizer's JSON output is written to (and read back from)
// outputDir; a failed or partial run surfaces as an error.
func (s *Service) Transcribe(ctx context.Context, source, outputDir string) ([]pipeline.Word, string, error) {
	if source == "" {
		return nil, "", fmt.Errorf("transcribe: source path required")
	}
	if outputDir == "" {
		outputDir = filepath.Dir(source)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("transcribe: ensure output dir: %w", err)
	}

	slog.Debug("launching recognizer",
		"file", filepath.Base(source),
		"model", s.cfg.Model,
		"device", s.cfg.Device)

	if err := s.run(ctx, UVXCommand, s.buildArgs(source, outputDir)...); err != nil {
		return nil, "", fmt.Errorf("whisperx: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	jsonPath := filepath.Join(outputDir, baseName+".json")

	t, err := loadTranscript(jsonPath)
	if err != nil {
		return nil, "", fmt.Errorf("transcribe %s: %w", filepath.Base(source), err)
	}

	return t.FlattenWords(), t.Language, nil
}
