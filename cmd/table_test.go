package cmd

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/HeiCAD/auto-subtitle-generator/internal/worker"
)

func TestRenderResults(t *testing.T) {
	results := []worker.Result{
		{
			Input:    "/media/lecture01.wav",
			Output:   "subtitles/lecture01.srt",
			Entries:  42,
			Language: "de",
			Elapsed:  3 * time.Second,
		},
		{
			Input: "/media/lecture02.wav",
			Err:   context.DeadlineExceeded,
		},
	}

	out := renderResults(results)
	if !strings.Contains(out, "lecture01.wav") {
		t.Errorf("table should list the input file, got:\n%s", out)
	}
	if !strings.Contains(out, "lecture01.srt") {
		t.Errorf("table should list the output file, got:\n%s", out)
	}
	if !strings.Contains(out, "42") {
		t.Errorf("table should show the entry count, got:\n%s", out)
	}
	if !strings.Contains(out, "FAILED") {
		t.Errorf("table should flag failed files, got:\n%s", out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if out := renderTable(nil, nil, nil); out != "" {
		t.Errorf("expected empty string for no headers, got %q", out)
	}
}
