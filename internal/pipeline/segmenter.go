package pipeline

import (
	"strings"
	"unicode/utf8"
)

// closingPunctuation lists quote and bracket characters stripped from a
// word's end before testing for terminal punctuation.
const closingPunctuation = "”\"'»›)]"

// Segmenter groups a flat word sequence into sentence-like groups.
type Segmenter struct {
	abbreviations map[string]struct{}
}

// NewSegmenter creates a segmenter with the given abbreviation list.
// Abbreviations are matched against the raw word text, leading space
// included (e.g. " z.B.").
func NewSegmenter(abbreviations []string) *Segmenter {
	abbr := make(map[string]struct{}, len(abbreviations))
	for _, a := range abbreviations {
		abbr[a] = struct{}{}
	}
	return &Segmenter{abbreviations: abbr}
}

// endsSentence reports whether a word marks the end of a sentence: its
// text, with trailing closing quotes and brackets removed, must end with
// '.', '!' or '?', and it must not be a configured abbreviation.
func (s *Segmenter) endsSentence(text string) bool {
	if _, ok := s.abbreviations[text]; ok {
		return false
	}
	trimmed := strings.TrimRight(text, closingPunctuation)
	if trimmed == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(trimmed)
	return r == '.' || r == '!' || r == '?'
}

// Segment accumulates words into groups, closing a group after each
// sentence-ending word. A trailing run without terminal punctuation is
// emitted as a final group.
func (s *Segmenter) Segment(words []Word) []Group {
	var groups []Group
	var current Group
	for _, w := range words {
		current = append(current, w)
		if s.endsSentence(w.Text) {
			groups = append(groups, current)
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
