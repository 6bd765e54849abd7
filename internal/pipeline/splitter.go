package pipeline

import (
	"strings"

	"github.com/HeiCAD/auto-subtitle-generator/internal/config"
)

// splitPunctuation is the candidate cut set scanned for during length
// splitting, and the set that pins a middle word to the first line when
// wrapping.
const splitPunctuation = ".。,，!！?？:：”)]};"

// Splitter recursively subdivides sentence groups that exceed the
// configured display budget.
type Splitter struct {
	conjunctions    map[string]struct{}
	maxLines        int
	maxCharsPerLine int
	minDuration     float64
	maxDuration     float64
}

// NewSplitter creates a splitter from display settings. Conjunctions
// are matched against the raw word text, leading space included
// (e.g. " oder").
func NewSplitter(settings *config.Settings) *Splitter {
	conj := make(map[string]struct{})
	for _, c := range settings.ConjunctionList() {
		conj[c] = struct{}{}
	}
	return &Splitter{
		conjunctions:    conj,
		maxLines:        settings.MaxLines,
		maxCharsPerLine: settings.MaxCharsPerLine,
		minDuration:     settings.MinDuration,
		maxDuration:     settings.MaxDuration,
	}
}

// splittable reports whether a group is both too slow and too long to
// display, and has more than one word. All three must hold: short-but-
// slow and long-but-quick groups are left alone.
func (s *Splitter) splittable(g Group) bool {
	return g.Duration() > s.maxDuration &&
		g.CharCount() > s.maxLines*s.maxCharsPerLine &&
		len(g) > 1
}

// split scans the group word by word and cuts it into two fresh groups
// at the first word satisfying one of the cut rules, checked in this
// order:
//
//  1. the word contains split punctuation and the first part has
//     reached the minimum duration
//  2. the next word is a conjunction and the first part has reached the
//     minimum duration
//  3. the first part has reached the character budget and the minimum
//     duration
//  4. the first part has reached the maximum duration (forced cut)
//  5. the remainder would be shorter than the minimum duration
//  6. the remainder is down to a single word
//
// Rule 6 always fires by the second-to-last word, so split never
// exhausts a group of two or more words.
func (s *Splitter) split(g Group) (Group, Group) {
	budget := s.maxLines * s.maxCharsPerLine
	first := make(Group, 0, len(g))
	for i, w := range g {
		first = append(first, w)
		second := g[i+1:]
		firstDur := first.Duration()
		switch {
		case strings.ContainsAny(w.Text, splitPunctuation) && firstDur >= s.minDuration:
		case i+1 < len(g) && s.isConjunction(g[i+1].Text) && firstDur >= s.minDuration:
		case first.CharCount() >= budget && firstDur >= s.minDuration:
		case firstDur >= s.maxDuration:
		case len(second) > 1 && second.Duration() <= s.minDuration:
		case len(second) == 1:
		default:
			continue
		}
		rest := make(Group, len(second))
		copy(rest, second)
		return first, rest
	}
	return first, nil
}

func (s *Splitter) isConjunction(text string) bool {
	_, ok := s.conjunctions[text]
	return ok
}

// Apply splits every over-budget group until no group is splittable,
// appending each first part and finally the remainder. Word order and
// word membership are preserved across all output groups.
func (s *Splitter) Apply(groups []Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		for s.splittable(g) {
			first, rest := s.split(g)
			out = append(out, first)
			g = rest
		}
		out = append(out, g)
	}
	return out
}
