package orchestrator

import (
	"strconv"
	"unicode/utf8"
)

// Record is one manifest line. ID is unique within a manifest.
type Record struct {
	ID       string // primary artifact, e.g. ljspeech-spec-00001.npy
	Artifact string // derived artifact, e.g. ljspeech-mel-00001.npy
	Frames   int
	Text     string
	Extra    []string // passed through unchanged
}

// Fields returns the record in manifest column order.
func (r Record) Fields() []string {
	out := make([]string, 0, 4+len(r.Extra))
	out = append(out, r.ID, r.Artifact, strconv.Itoa(r.Frames), r.Text)
	return append(out, r.Extra...)
}

// InputLength is the transcript length in characters.
func (r Record) InputLength() int { return utf8.RuneCountInString(r.Text) }

type Summary struct {
	Utterances      int
	Frames          int
	Hours           float64
	MaxInputLength  int
	MaxOutputLength int
}
