package orchestrator

import (
	"errors"
	"fmt"
	"io"
)

// ErrEmptyManifest is returned when statistics are requested for no records.
var ErrEmptyManifest = errors.New("empty manifest: no utterances to summarize")

// Summarize computes corpus statistics. frameShiftMs converts frames to
// wall-clock time.
func Summarize(records []Record, frameShiftMs float64) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrEmptyManifest
	}
	s := Summary{Utterances: len(records)}
	for _, r := range records {
		s.Frames += r.Frames
		if n := r.InputLength(); n > s.MaxInputLength {
			s.MaxInputLength = n
		}
		if r.Frames > s.MaxOutputLength {
			s.MaxOutputLength = r.Frames
		}
	}
	s.Hours = float64(s.Frames) * frameShiftMs / (3600 * 1000)
	return s, nil
}

// Print writes the summary in the preprocessing log format.
func (s Summary) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Wrote %d utterances, %d frames (%.2f hours)\nMax input length:  %d\nMax output length: %d\n",
		s.Utterances, s.Frames, s.Hours, s.MaxInputLength, s.MaxOutputLength)
	return err
}
