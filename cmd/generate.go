package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/HeiCAD/auto-subtitle-generator/internal/config"
	"github.com/HeiCAD/auto-subtitle-generator/internal/ffmpeg"
	"github.com/HeiCAD/auto-subtitle-generator/internal/worker"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <audio-file-or-folder>",
	Short: "Generate SRT subtitles for one audio file or a folder of .wav files",
	Long: `Generate transcribes an audio file (or every .wav file in a folder)
with Whisper and writes one .srt subtitle file per input into the output
directory, overwriting existing files without confirmation.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	configPath string
	outputDir  string
	jobs       int
	rateLimit  int

	// Recognition flags.
	modelSize   string
	device      string
	computeType string
	language    string

	// Subtitle tuning flags.
	locale        string
	maxLines      int
	maxCharsLine  int
	minDuration   float64
	maxDuration   float64
	frameInterval float64
)

func init() {
	defaults := config.Default()

	generateCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML settings file")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "subtitles", "output folder for .srt files")
	generateCmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of files processed in parallel")
	generateCmd.Flags().IntVar(&rateLimit, "rate-limit", 30, "recognizer launches per minute")

	generateCmd.Flags().StringVar(&modelSize, "model-size", defaults.Whisper.Model, "Whisper model size: tiny, base, small, medium, large")
	generateCmd.Flags().StringVar(&device, "device", defaults.Whisper.Device, "hardware for model execution: cpu or cuda")
	generateCmd.Flags().StringVar(&computeType, "compute-type", defaults.Whisper.ComputeType, "numerical precision: int8, float16, float32")
	generateCmd.Flags().StringVarP(&language, "language", "l", "auto", "spoken language code, or auto")

	generateCmd.Flags().StringVar(&locale, "locale", defaults.Subtitles.Locale, "locale for abbreviation and conjunction lists")
	generateCmd.Flags().IntVar(&maxLines, "max-lines", defaults.Subtitles.MaxLines, "maximum lines per subtitle")
	generateCmd.Flags().IntVar(&maxCharsLine, "max-chars-line", defaults.Subtitles.MaxCharsPerLine, "maximum characters per subtitle line")
	generateCmd.Flags().Float64Var(&minDuration, "min-duration", defaults.Subtitles.MinDuration, "minimum subtitle duration in seconds")
	generateCmd.Flags().Float64Var(&maxDuration, "max-duration", defaults.Subtitles.MaxDuration, "maximum subtitle duration in seconds")
	generateCmd.Flags().Float64Var(&frameInterval, "frame-interval", defaults.Subtitles.FrameInterval, "gap inserted between touching timecodes in seconds")

	rootCmd.AddCommand(generateCmd)
}

// validExts are the input file types generate accepts directly.
var validExts = map[string]bool{
	".wav": true, ".mp3": true, ".m4a": true, ".flac": true,
	".ogg": true, ".aac": true,
	".mp4": true, ".mov": true, ".mkv": true, ".avi": true,
	".flv": true, ".webm": true,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("invalid input path %s: %w", args[0], err)
	}
	if !info.IsDir() {
		ext := strings.ToLower(filepath.Ext(inputPath))
		if !validExts[ext] {
			return fmt.Errorf("unsupported file type: %s", ext)
		}
	}

	inputs, err := worker.DiscoverInputs(inputPath, ".wav")
	if err != nil {
		return err
	}

	for _, in := range inputs {
		if ffmpeg.IsVideoExtension(filepath.Ext(in)) && !ffmpeg.Available() {
			slog.Warn("ffmpeg not found on PATH; video inputs cannot be converted",
				"file", filepath.Base(in))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	results, err := worker.Run(ctx, worker.Options{
		Inputs:          inputs,
		OutputDir:       outputDir,
		Jobs:            jobs,
		RateLimitPerMin: rateLimit,
		Config:          cfg,
	})
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Println(renderResults(results))
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			slog.Error("file failed", "file", filepath.Base(r.Input), "err", r.Err)
		}
	}

	slog.Info("subtitle generation completed",
		"files", len(results),
		"failed", failed,
		"elapsed", time.Since(started).Round(time.Millisecond))

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// resolveConfig loads the TOML settings file (or the defaults) and lets
// explicitly set flags override it.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flagSet := cmd.Flags()
	if flagSet.Changed("model-size") {
		cfg.Whisper.Model = modelSize
	}
	if flagSet.Changed("device") {
		cfg.Whisper.Device = device
	}
	if flagSet.Changed("compute-type") {
		cfg.Whisper.ComputeType = computeType
	}
	if flagSet.Changed("language") {
		cfg.Whisper.Language = language
	}
	if flagSet.Changed("locale") {
		cfg.Subtitles.Locale = locale
	}
	if flagSet.Changed("max-lines") {
		cfg.Subtitles.MaxLines = maxLines
	}
	if flagSet.Changed("max-chars-line") {
		cfg.Subtitles.MaxCharsPerLine = maxCharsLine
	}
	if flagSet.Changed("min-duration") {
		cfg.Subtitles.MinDuration = minDuration
	}
	if flagSet.Changed("max-duration") {
		cfg.Subtitles.MaxDuration = maxDuration
	}
	if flagSet.Changed("frame-interval") {
		cfg.Subtitles.FrameInterval = frameInterval
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// renderResults builds the per-file summary table.
func renderResults(results []worker.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := filepath.Base(r.Output)
		if r.Err != nil {
			status = "FAILED"
		}
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		rows = append(rows, []string{
			filepath.Base(r.Input),
			lang,
			fmt.Sprintf("%d", r.Entries),
			r.Elapsed.Round(time.Millisecond).String(),
			status,
		})
	}
	return renderTable(
		[]string{"File", "Lang", "Entries", "Time", "Output"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	)
}
