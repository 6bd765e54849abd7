package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Word represents a single timestamped token from the speech recognizer.
// Text keeps the recognizer's leading space; the abbreviation and
// conjunction tables match against it verbatim.
type Word struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Group is an ordered, non-empty word sequence forming one sentence
// fragment or one subtitle entry.
type Group []Word

// Start returns the start time of the first word.
func (g Group) Start() float64 {
	return g[0].Start
}

// End returns the end time of the last word.
func (g Group) End() float64 {
	return g[len(g)-1].End
}

// Duration returns the standing time of the group in seconds.
func (g Group) Duration() float64 {
	return g.End() - g.Start()
}

// CharCount returns the total number of characters (runes) across all
// word texts, including their leading spaces.
func (g Group) CharCount() int {
	n := 0
	for _, w := range g {
		n += utf8.RuneCountInString(w.Text)
	}
	return n
}

// ValidateWords checks the recognizer output preconditions: the word
// list must be non-empty and every word must have start <= end.
func ValidateWords(words []Word) error {
	if len(words) == 0 {
		return errors.New("no words to segment: empty recognizer output")
	}
	for i, w := range words {
		if w.End < w.Start {
			return fmt.Errorf("word %d %q: end %.3f before start %.3f",
				i, strings.TrimSpace(w.Text), w.End, w.Start)
		}
	}
	return nil
}
