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

	"github.com/HeiCAD/auto-subtitle-generator/internal/ffmpeg"
	"github.com/HeiCAD/auto-subtitle-generator/internal/worker"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <video-file-or-folder>",
	Short: "Extract WAV audio tracks from video files",
	Long: `Extract pulls the audio track out of one video file (or every .mp4
file in a folder) and saves it as <stem>_audio.wav in the output folder,
ready for subtitle generation. Existing files are overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

var extractOutputDir string

func init() {
	extractCmd.Flags().StringVarP(&extractOutputDir, "output", "o", "audio", "output folder for .wav files")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if !ffmpeg.Available() {
		return fmt.Errorf("ffmpeg not found on PATH")
	}

	inputPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	videos, err := worker.DiscoverInputs(inputPath, ".mp4")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(extractOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	for i, video := range videos {
		slog.Info("processing video",
			"file", fmt.Sprintf("%d/%d", i+1, len(videos)),
			"name", filepath.Base(video))

		stem := strings.TrimSuffix(filepath.Base(video), filepath.Ext(video))
		audioPath := filepath.Join(extractOutputDir, stem+"_audio.wav")

		if err := ffmpeg.ExtractAudio(ctx, video, audioPath); err != nil {
			return fmt.Errorf("extract %s: %w", filepath.Base(video), err)
		}
	}

	slog.Info("audio extraction finished",
		"files", len(videos),
		"elapsed", time.Since(started).Round(time.Millisecond))
	return nil
}
