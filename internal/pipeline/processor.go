package pipeline

import (
	"strings"

	"github.com/HeiCAD/auto-subtitle-generator/internal/config"
)

// Build runs the segmentation stages over a flat word list: sentence
// grouping, duration/length splitting, and overlap correction. The
// returned groups map one-to-one to subtitle entries.
func Build(words []Word, settings *config.Settings) ([]Group, error) {
	if err := ValidateWords(words); err != nil {
		return nil, err
	}

	segmenter := NewSegmenter(settings.AbbreviationList())
	sentences := segmenter.Segment(words)

	splitter := NewSplitter(settings)
	groups := splitter.Apply(sentences)

	CorrectOverlaps(groups, settings.FrameInterval)
	return groups, nil
}

// Render serializes finalized groups into SRT file content.
func Render(groups []Group, settings *config.Settings) string {
	wrapper := NewWrapper(settings.MaxCharsPerLine, settings.CapitalSuffix, settings.CapitalReplacement)
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = WriteSRT(&sb, groups, wrapper)
	return sb.String()
}

// Process runs the full pipeline and returns the SRT content string.
func Process(words []Word, settings *config.Settings) (string, error) {
	groups, err := Build(words, settings)
	if err != nil {
		return "", err
	}
	return Render(groups, settings), nil
}
