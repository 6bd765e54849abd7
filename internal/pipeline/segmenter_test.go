package pipeline

import (
	"testing"
)

var testAbbreviations = []string{
	" z.B.", " u.a.", " d.h.", " bzw.", " etc.", " usw.",
	" z. B.", " u. a.", " d. h.",
}

func TestSegmenter_SingleSentence(t *testing.T) {
	s := NewSegmenter(testAbbreviations)

	words := []Word{
		{Text: "Hello", Start: 0, End: 0.5},
		{Text: " world.", Start: 0.5, End: 1.0},
	}

	groups := s.Segment(words)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0]) != 2 {
		t.Errorf("group length = %d, want 2", len(groups[0]))
	}
}

func TestSegmenter_SplitsAtTerminalPunctuation(t *testing.T) {
	s := NewSegmenter(testAbbreviations)

	words := []Word{
		{Text: " Erster", Start: 0, End: 0.5},
		{Text: " Satz.", Start: 0.5, End: 1.0},
		{Text: " Zweiter", Start: 1.0, End: 1.5},
		{Text: " Satz!", Start: 1.5, End: 2.0},
		{Text: " Dritter", Start: 2.0, End: 2.5},
		{Text: " Satz?", Start: 2.5, End: 3.0},
	}

	groups := s.Segment(words)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	for i, g := range groups {
		if len(g) != 2 {
			t.Errorf("group %d length = %d, want 2", i, len(g))
		}
	}
}

func TestSegmenter_AbbreviationExemption(t *testing.T) {
	s := NewSegmenter(testAbbreviations)

	words := []Word{
		{Text: " Nehmen", Start: 0, End: 0.3},
		{Text: " wir", Start: 0.3, End: 0.5},
		{Text: " z.B.", Start: 0.5, End: 0.8},
		{Text: " diesen", Start: 0.8, End: 1.1},
		{Text: " Fall.", Start: 1.1, End: 1.5},
	}

	groups := s.Segment(words)
	if len(groups) != 1 {
		t.Fatalf("abbreviation must not end the sentence: expected 1 group, got %d", len(groups))
	}
	if len(groups[0]) != 5 {
		t.Errorf("group length = %d, want 5", len(groups[0]))
	}
}

func TestSegmenter_StripsClosingQuotes(t *testing.T) {
	s := NewSegmenter(testAbbreviations)

	// Period hidden behind a closing quote still ends the sentence.
	words := []Word{
		{Text: " Er", Start: 0, End: 0.3},
		{Text: " sagte", Start: 0.3, End: 0.6},
		{Text: " Hallo.”", Start: 0.6, End: 1.0},
		{Text: " Danach", Start: 1.0, End: 1.4},
		{Text: " ging", Start: 1.4, End: 1.7},
		{Text: " er.", Start: 1.7, End: 2.0},
	}

	groups := s.Segment(words)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0]) != 3 {
		t.Errorf("first group length = %d, want 3", len(groups[0]))
	}
}

func TestSegmenter_TrailingPartialGroup(t *testing.T) {
	s := NewSegmenter(testAbbreviations)

	// No terminal punctuation at all: the remainder is still emitted.
	words := []Word{
		{Text: " kein", Start: 0, End: 0.4},
		{Text: " Satzende", Start: 0.4, End: 0.9},
	}

	groups := s.Segment(words)
	if len(groups) != 1 {
		t.Fatalf("expected trailing partial group, got %d groups", len(groups))
	}
	if len(groups[0]) != 2 {
		t.Errorf("group length = %d, want 2", len(groups[0]))
	}
}

func TestSegmenter_Empty(t *testing.T) {
	s := NewSegmenter(testAbbreviations)
	if groups := s.Segment(nil); groups != nil {
		t.Errorf("expected nil for empty input, got %v", groups)
	}
}
