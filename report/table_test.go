package report

import (
	"bytes"
	"strings"
	"testing"
)

// cells returns the trimmed cell values of every "| a | b |" line.
func cells(out string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		parts := strings.Split(strings.Trim(line, "|"), "|")
		row := make([]string, 0, len(parts))
		for _, p := range parts {
			row = append(row, strings.TrimSpace(p))
		}
		rows = append(rows, row)
	}
	return rows
}

func TestRenderTranslationScores(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, TranslationScores); err != nil {
		t.Fatalf("Render: %v", err)
	}
	rows := cells(buf.String())
	want := [][]string{
		{"Language", "Precision", "Recall", "F1-Score"},
		{"Fra-Eng", "0.797", "0.882", "0.837"},
		{"Spa-Eng", "0.889", "0.904", "0.896"},
		{"Deu-Eng", "0.803", "0.987", "0.886"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected header + 3 rows, got %d:\n%s", len(rows), buf.String())
	}
	for i := range want {
		if strings.Join(rows[i], ",") != strings.Join(want[i], ",") {
			t.Errorf("row %d: got %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestRenderIsGrid(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, TranslationScores); err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "+") || !strings.HasPrefix(lines[len(lines)-1], "+") {
		t.Errorf("table should be framed by borders:\n%s", buf.String())
	}
	width := len(lines[0])
	for i, l := range lines {
		if len(l) != width {
			t.Errorf("line %d not column aligned (%d vs %d): %q", i, len(l), width, l)
		}
	}
}
