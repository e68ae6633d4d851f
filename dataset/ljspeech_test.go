package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeIndex(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, IndexFile), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return dir
}

func TestLoadLJSpeech(t *testing.T) {
	dir := writeIndex(t, "LJ001-0001|Printing, in the only sense|printing, in the only sense\n"+
		"\n"+
		"LJ001-0002|in being comparatively modern.|in being comparatively modern.\n")

	utts, err := LoadLJSpeech(dir)
	if err != nil {
		t.Fatalf("LoadLJSpeech: %v", err)
	}
	if len(utts) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(utts))
	}
	first := utts[0]
	if first.Index != 1 || first.ID != "LJ001-0001" {
		t.Errorf("unexpected first utterance: %+v", first)
	}
	if first.Text != "printing, in the only sense" {
		t.Errorf("expected normalized transcript, got %q", first.Text)
	}
	if want := filepath.Join(dir, "wavs", "LJ001-0001.wav"); first.WavPath != want {
		t.Errorf("WavPath = %q, want %q", first.WavPath, want)
	}
	if utts[1].Index != 2 {
		t.Errorf("blank lines must not consume an index, got %d", utts[1].Index)
	}
}

func TestLoadLJSpeechMissingIndex(t *testing.T) {
	_, err := LoadLJSpeech(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadLJSpeechMalformed(t *testing.T) {
	dir := writeIndex(t, "LJ001-0001|only two fields\n")
	_, err := LoadLJSpeech(dir)
	if !errors.Is(err, ErrMalformedIndex) {
		t.Fatalf("expected ErrMalformedIndex, got %v", err)
	}
}
