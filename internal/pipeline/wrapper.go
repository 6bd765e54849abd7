package pipeline

import (
	"strings"
	"unicode/utf8"
)

// Wrapper joins a group's words into display text and reflows it into
// at most two lines.
type Wrapper struct {
	maxCharsPerLine int
	suffix          string
	replacement     string
}

// NewWrapper creates a wrapper. suffix/replacement is the gender-
// inclusive capitalization rewrite applied per word while joining
// (default "Innen" -> "*innen"); an empty suffix disables it.
func NewWrapper(maxCharsPerLine int, suffix, replacement string) *Wrapper {
	return &Wrapper{
		maxCharsPerLine: maxCharsPerLine,
		suffix:          suffix,
		replacement:     replacement,
	}
}

// JoinText concatenates the group's word texts, applying the suffix
// rewrite, and wraps the result.
func (w *Wrapper) JoinText(g Group) string {
	var b strings.Builder
	for _, word := range g {
		text := word.Text
		if w.suffix != "" && strings.HasSuffix(text, w.suffix) {
			text = strings.TrimSuffix(text, w.suffix) + w.replacement
		}
		b.WriteString(text)
	}
	return w.Wrap(b.String())
}

// Wrap returns text unchanged if it fits on one line, otherwise splits
// it into exactly two lines: cut at the midpoint, recombine the word
// fragments adjacent to the cut into a middle word, and attach that
// word to the first line if that yields more balanced lines or if it
// contains punctuation, else to the second line. Line length is never
// re-checked after the split; the character limit is approximate by
// construction.
func (w *Wrapper) Wrap(text string) string {
	runes := []rune(text)
	if len(runes) <= w.maxCharsPerLine {
		return text
	}

	mid := len(runes) / 2
	firstHalf := string(runes[:mid])
	secondHalf := string(runes[mid:])

	// First space in the second half: where the next word begins.
	secondBefore, secondAfter, _ := strings.Cut(secondHalf, " ")

	// Last space in the first half: where the previous word ends.
	var firstBefore, firstAfter string
	if idx := strings.LastIndex(firstHalf, " "); idx >= 0 {
		firstBefore = firstHalf[:idx]
		firstAfter = firstHalf[idx+1:]
	} else {
		firstAfter = firstHalf
	}

	middle := firstAfter + secondBefore

	var firstLine, secondLine string
	if utf8.RuneCountInString(firstBefore) < utf8.RuneCountInString(secondAfter) ||
		strings.ContainsAny(middle, splitPunctuation) {
		firstLine = firstBefore + " " + middle
		secondLine = secondAfter
	} else {
		firstLine = firstBefore
		secondLine = middle + " " + secondAfter
	}

	return firstLine + "\n" + secondLine
}
