package orchestrator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	ManifestName = "train.txt"
	fieldSep     = "|"
)

// WriteManifest replaces <outDir>/train.txt with one line per record, in
// the order given, then prints the corpus summary to stdout.
func WriteManifest(records []Record, outDir string, frameShiftMs float64, stdout io.Writer) (Summary, error) {
	var b strings.Builder
	for i, r := range records {
		fields := r.Fields()
		for _, f := range fields {
			if strings.ContainsAny(f, fieldSep+"\n") {
				return Summary{}, fmt.Errorf("record %d (%s): field %q contains a separator or newline", i, r.ID, f)
			}
		}
		b.WriteString(strings.Join(fields, fieldSep))
		b.WriteByte('\n')
	}
	if err := atomicWrite(filepath.Join(outDir, ManifestName), []byte(b.String())); err != nil {
		return Summary{}, err
	}

	s, err := Summarize(records, frameShiftMs)
	if err != nil {
		return Summary{}, err
	}
	return s, s.Print(stdout)
}

// ReadManifest parses a manifest written by WriteManifest.
func ReadManifest(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()

	var out []Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if sc.Text() == "" {
			continue
		}
		parts := strings.Split(sc.Text(), fieldSep)
		if len(parts) < 4 {
			return nil, fmt.Errorf("manifest %s:%d: want at least 4 fields, got %d", path, line, len(parts))
		}
		frames, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("manifest %s:%d: frames: %w", path, line, err)
		}
		r := Record{ID: parts[0], Artifact: parts[1], Frames: frames, Text: parts[3]}
		if len(parts) > 4 {
			r.Extra = parts[4:]
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return out, nil
}

// atomicWrite writes data to path using a temp file + rename so a failed
// run never leaves a truncated manifest behind.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "manifest-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s: %w", path, err)
	}
	return nil
}
