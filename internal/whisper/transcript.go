package whisper

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/HeiCAD/auto-subtitle-generator/internal/pipeline"
)

// transcriptWord mirrors one word entry in the WhisperX JSON output.
// Timestamps are pointers because the aligner omits them for tokens it
// cannot place (digits, symbols).
type transcriptWord struct {
	Word  string   `json:"word"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

// transcriptSegment is one upstream segment; the pipeline flattens
// these before resegmenting, so only iteration order matters.
type transcriptSegment struct {
	Start float64          `json:"start"`
	End   float64          `json:"end"`
	Text  string           `json:"text"`
	Words []transcriptWord `json:"words"`
}

// Transcript is the top-level WhisperX JSON structure.
type Transcript struct {
	Segments []transcriptSegment `json:"segments"`
	Language string              `json:"language"`
}

func loadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	return &t, nil
}

// FlattenWords extracts all words from the upstream segments in order.
// Word texts are normalized to the leading-space convention the
// segmentation tables assume, and words the aligner left without
// timestamps inherit the time of the preceding word.
func (t *Transcript) FlattenWords() []pipeline.Word {
	var words []pipeline.Word
	lastEnd := 0.0
	if len(t.Segments) > 0 {
		lastEnd = t.Segments[0].Start
	}

	for _, seg := range t.Segments {
		for _, w := range seg.Words {
			text := w.Word
			if !strings.HasPrefix(text, " ") {
				text = " " + text
			}

			start, end := lastEnd, lastEnd
			if w.Start != nil {
				start = *w.Start
			}
			if w.End != nil {
				end = *w.End
			} else if w.Start != nil {
				end = *w.Start
			}
			lastEnd = end

			words = append(words, pipeline.Word{Text: text, Start: start, End: end})
		}
	}
	return words
}
