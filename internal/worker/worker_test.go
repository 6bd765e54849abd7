package worker

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverInputs_SingleFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "talk.wav")
	touch(t, file)

	files, err := DiscoverInputs(file, ".wav")
	if err != nil {
		t.Fatalf("DiscoverInputs: %v", err)
	}
	if len(files) != 1 || files[0] != file {
		t.Errorf("got %v, want [%s]", files, file)
	}
}

func TestDiscoverInputs_Folder(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.wav"))
	touch(t, filepath.Join(dir, "a.WAV"))
	touch(t, filepath.Join(dir, "notes.txt"))
	if err := os.Mkdir(filepath.Join(dir, "sub.wav"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := DiscoverInputs(dir, ".wav")
	if err != nil {
		t.Fatalf("DiscoverInputs: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 wav files, got %v", files)
	}
	// Sorted, case-insensitive extension match, directories skipped.
	if filepath.Base(files[0]) != "a.WAV" || filepath.Base(files[1]) != "b.wav" {
		t.Errorf("unexpected order: %v", files)
	}
}

func TestDiscoverInputs_EmptyFolder(t *testing.T) {
	if _, err := DiscoverInputs(t.TempDir(), ".wav"); err == nil {
		t.Error("expected error for folder without matching files")
	}
}

func TestDiscoverInputs_MissingPath(t *testing.T) {
	if _, err := DiscoverInputs(filepath.Join(t.TempDir(), "nope"), ".wav"); err == nil {
		t.Error("expected error for missing path")
	}
}
