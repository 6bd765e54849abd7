package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/HeiCAD/auto-subtitle-generator/internal/config"
	"github.com/HeiCAD/auto-subtitle-generator/internal/ffmpeg"
	"github.com/HeiCAD/auto-subtitle-generator/internal/pipeline"
	"github.com/HeiCAD/auto-subtitle-generator/internal/whisper"
)

// Options configures a generation run.
type Options struct {
	// Inputs are the audio (or video) files to process.
	Inputs []string
	// OutputDir receives one <stem>.srt per input, overwriting silently.
	OutputDir string
	// Jobs is the number of files processed in parallel. Each file's
	// pipeline is fully isolated, so no locking is needed beyond the
	// recognizer launch stagger.
	Jobs int
	// RateLimitPerMin bounds recognizer launches per minute so several
	// whisper processes do not load their models at the same instant.
	RateLimitPerMin int
	Config          *config.Config
}

// Result summarizes one processed file.
type Result struct {
	Input    string
	Output   string
	Entries  int
	Language string
	Elapsed  time.Duration
	Err      error
}

// Run processes all input files and returns one Result per input, in
// input order. Per-file failures are recorded in the Result, not
// returned; the error return covers run-level failures only.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if len(opts.Inputs) == 0 {
		return nil, errors.New("no input files")
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if opts.RateLimitPerMin <= 0 {
		opts.RateLimitPerMin = 30
	}

	if opts.Jobs > 1 && len(opts.Inputs) > 1 {
		return runConcurrent(ctx, opts)
	}
	return runSequential(ctx, opts)
}

// DiscoverInputs resolves a file-or-folder path into the list of audio
// files to process. For a folder, all files with the given extension
// (case-insensitive) are returned in sorted order.
func DiscoverInputs(path, ext string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("invalid input path %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read input folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", ext, path)
	}

	sort.Strings(files)
	return files, nil
}

// processFile runs the full per-file pipeline: optional audio
// extraction, recognition, segmentation, and the SRT write.
func processFile(ctx context.Context, input string, opts Options) Result {
	started := time.Now()
	res := Result{Input: input}

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	res.Output = filepath.Join(opts.OutputDir, stem+".srt")

	slog.Info("extracting subtitles", "file", filepath.Base(input))
	ffmpeg.LogMediaInfo(ctx, input)

	workDir, err := os.MkdirTemp("", "autosub-*")
	if err != nil {
		res.Err = fmt.Errorf("create work dir: %w", err)
		return res
	}
	defer os.RemoveAll(workDir)

	// Video inputs get their audio track extracted first.
	workingPath := input
	if ffmpeg.IsVideoExtension(filepath.Ext(input)) && ffmpeg.Available() {
		workingPath = filepath.Join(workDir, stem+"_audio.wav")
		if err := ffmpeg.ExtractAudio(ctx, input, workingPath); err != nil {
			res.Err = fmt.Errorf("extract audio: %w", err)
			return res
		}
	}

	svc := whisper.NewService(whisper.Config{
		Model:       opts.Config.Whisper.Model,
		Device:      opts.Config.Whisper.Device,
		ComputeType: opts.Config.Whisper.ComputeType,
		Language:    opts.Config.Whisper.Language,
	})

	words, lang, err := svc.Transcribe(ctx, workingPath, workDir)
	if err != nil {
		res.Err = fmt.Errorf("transcribe: %w", err)
		return res
	}
	res.Language = lang

	groups, err := pipeline.Build(words, &opts.Config.Subtitles)
	if err != nil {
		res.Err = fmt.Errorf("segment %s: %w", filepath.Base(input), err)
		return res
	}

	content := pipeline.Render(groups, &opts.Config.Subtitles)
	if err := os.WriteFile(res.Output, []byte(content), 0o644); err != nil {
		res.Err = fmt.Errorf("write SRT file: %w", err)
		return res
	}

	res.Entries = len(groups)
	res.Elapsed = time.Since(started)
	slog.Info("SRT file saved",
		"path", res.Output,
		"entries", res.Entries,
		"elapsed", res.Elapsed.Round(time.Millisecond))
	return res
}
