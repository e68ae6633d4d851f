package orchestrator

import (
	"bytes"
	"errors"
	"testing"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{ID: "a", Frames: 100, Text: "hi"},
		{ID: "b", Frames: 200, Text: "hello there"},
		{ID: "c", Frames: 300, Text: "héllo"},
	}
	s, err := Summarize(records, 12.5)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.Utterances != 3 || s.Frames != 600 {
		t.Errorf("got %d utterances / %d frames, want 3 / 600", s.Utterances, s.Frames)
	}
	if want := 600 * 12.5 / 3600000; s.Hours != want {
		t.Errorf("Hours = %v, want %v", s.Hours, want)
	}
	if s.MaxInputLength != 11 {
		t.Errorf("MaxInputLength = %d, want 11", s.MaxInputLength)
	}
	if s.MaxOutputLength != 300 {
		t.Errorf("MaxOutputLength = %d, want 300", s.MaxOutputLength)
	}
}

func TestSummarizeCountsRunes(t *testing.T) {
	s, err := Summarize([]Record{{ID: "a", Frames: 1, Text: "ñandú"}}, 12.5)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.MaxInputLength != 5 {
		t.Errorf("MaxInputLength = %d, want 5 characters", s.MaxInputLength)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil, 12.5); !errors.Is(err, ErrEmptyManifest) {
		t.Fatalf("expected ErrEmptyManifest, got %v", err)
	}
}

func TestSummaryPrint(t *testing.T) {
	s := Summary{Utterances: 13100, Frames: 2160000, Hours: 7.5, MaxInputLength: 187, MaxOutputLength: 870}
	var buf bytes.Buffer
	if err := s.Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "Wrote 13100 utterances, 2160000 frames (7.50 hours)\n" +
		"Max input length:  187\n" +
		"Max output length: 870\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}
