// Package dataset reads corpus layouts into a flat list of utterances.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMalformedIndex is returned when a corpus index line cannot be parsed.
var ErrMalformedIndex = errors.New("malformed corpus index")

// IndexFile is the LJSpeech index inside the corpus root.
const IndexFile = "metadata.csv"

type Utterance struct {
	Index   int // 1-based position in the index
	ID      string
	WavPath string
	Text    string // normalized transcript
}

// LoadLJSpeech reads <inDir>/metadata.csv. Each line is
// id|transcript|normalized_transcript and maps to <inDir>/wavs/<id>.wav.
func LoadLJSpeech(inDir string) ([]Utterance, error) {
	f, err := os.Open(filepath.Join(inDir, IndexFile))
	if err != nil {
		return nil, fmt.Errorf("ljspeech: %w", err)
	}
	defer f.Close()

	var out []Utterance
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		parts := strings.Split(raw, "|")
		if len(parts) < 3 {
			return nil, fmt.Errorf("ljspeech: line %d: %w: want 3 fields, got %d", line, ErrMalformedIndex, len(parts))
		}
		id := strings.TrimSpace(parts[0])
		if id == "" {
			return nil, fmt.Errorf("ljspeech: line %d: %w: empty id", line, ErrMalformedIndex)
		}
		out = append(out, Utterance{
			Index:   len(out) + 1,
			ID:      id,
			WavPath: filepath.Join(inDir, "wavs", id+".wav"),
			Text:    parts[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ljspeech: %w", err)
	}
	return out, nil
}
