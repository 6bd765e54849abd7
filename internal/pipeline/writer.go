package pipeline

import (
	"fmt"
	"io"
)

// WriteSRT serializes the ordered, finalized groups as sequential SRT
// entries: 1-based index, timecode pair, wrapped text, with a blank
// line between entries and none after the last.
func WriteSRT(w io.Writer, groups []Group, wrapper *Wrapper) error {
	for i, g := range groups {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s",
			i+1, FormatTimecode(g.Start()), FormatTimecode(g.End()), wrapper.JoinText(g))
		if err != nil {
			return err
		}
		if i != len(groups)-1 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
