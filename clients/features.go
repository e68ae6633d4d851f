package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// --- Feature extraction (/extract) ---
type AudioParams struct {
	SampleRate    int     `json:"sample_rate"`
	NumMels       int     `json:"num_mels"`
	NumFreq       int     `json:"num_freq"`
	FrameLengthMs float64 `json:"frame_length_ms"`
	FrameShiftMs  float64 `json:"frame_shift_ms"`
	Preemphasis   float64 `json:"preemphasis"`
	MinLevelDB    float64 `json:"min_level_db"`
	RefLevelDB    float64 `json:"ref_level_db"`
}

type ExtractReq struct {
	Index     int         `json:"index"`
	ID        string      `json:"id"`
	WavPath   string      `json:"wav_path"`
	Text      string      `json:"text"`
	OutputDir string      `json:"output_dir"`
	Audio     AudioParams `json:"audio"`
}

// ExtractResp names the artifacts the service wrote under OutputDir.
type ExtractResp struct {
	Spectrogram string   `json:"spectrogram"`
	Mel         string   `json:"mel"`
	Frames      int      `json:"n_frames"`
	Extra       []string `json:"extra,omitempty"`
}

func (h *HTTP) Extract(ctx context.Context, url string, req ExtractReq) (*ExtractResp, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("extract encode: %w", err)
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/extract", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", "application/json")
	if h.RunID != "" {
		r.Header.Set("X-Run-ID", h.RunID)
	}

	resp, err := h.c.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("extract %s: %s", resp.Status, string(body))
	}

	var out ExtractResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("extract decode: %w", err)
	}
	return &out, nil
}
