package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTimecode converts a non-negative fractional-second offset into
// an SRT timecode HH:MM:SS,mmm. The value is formatted once to three
// decimals and split on the decimal point, so the integer-second fields
// and the millisecond digits can never disagree about rounding.
func FormatTimecode(seconds float64) string {
	fixed := strconv.FormatFloat(seconds, 'f', 3, 64)
	intPart, millis, _ := strings.Cut(fixed, ".")
	total, _ := strconv.ParseInt(intPart, 10, 64)
	h := total / 3600
	m := total % 3600 / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d,%s", h, m, s, millis)
}
