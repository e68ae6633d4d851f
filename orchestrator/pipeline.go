package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/final-project/speechprep/clients"
	cfg "github.com/final-project/speechprep/config"
	"github.com/final-project/speechprep/dataset"
	"github.com/final-project/speechprep/parallel"
)

// ErrDuplicateID is returned when two transforms produce the same record ID.
var ErrDuplicateID = errors.New("duplicate record id")

// Transform turns one utterance into a manifest record, writing any
// derived artifacts under outDir.
type Transform interface {
	Transform(ctx context.Context, u dataset.Utterance, outDir string) (Record, error)
}

type TransformFunc func(ctx context.Context, u dataset.Utterance, outDir string) (Record, error)

func (f TransformFunc) Transform(ctx context.Context, u dataset.Utterance, outDir string) (Record, error) {
	return f(ctx, u, outDir)
}

type featureTransform struct {
	http  *clients.HTTP
	url   string
	audio clients.AudioParams
}

// NewFeatureTransform delegates spectrogram extraction to the feature service.
func NewFeatureTransform(h *clients.HTTP, url string, a cfg.Audio) Transform {
	return &featureTransform{
		http: h,
		url:  url,
		audio: clients.AudioParams{
			SampleRate:    a.SampleRate,
			NumMels:       a.NumMels,
			NumFreq:       a.NumFreq,
			FrameLengthMs: a.FrameLengthMs,
			FrameShiftMs:  a.FrameShiftMs,
			Preemphasis:   a.Preemphasis,
			MinLevelDB:    a.MinLevelDB,
			RefLevelDB:    a.RefLevelDB,
		},
	}
}

func (t *featureTransform) Transform(ctx context.Context, u dataset.Utterance, outDir string) (Record, error) {
	resp, err := t.http.Extract(ctx, t.url, clients.ExtractReq{
		Index:     u.Index,
		ID:        u.ID,
		WavPath:   u.WavPath,
		Text:      u.Text,
		OutputDir: outDir,
		Audio:     t.audio,
	})
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:       resp.Spectrogram,
		Artifact: resp.Mel,
		Frames:   resp.Frames,
		Text:     u.Text,
		Extra:    resp.Extra,
	}, nil
}

type Builder struct {
	transform Transform
	workers   int
	progress  Progress
	log       *logrus.Entry
}

type BuilderOption func(*Builder)

func WithWorkers(n int) BuilderOption { return func(b *Builder) { b.workers = n } }

func WithProgress(p Progress) BuilderOption {
	return func(b *Builder) {
		if p != nil {
			b.progress = p
		}
	}
}

func WithLogger(l *logrus.Entry) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

func NewBuilder(t Transform, opts ...BuilderOption) *Builder {
	b := &Builder{
		transform: t,
		workers:   1,
		progress:  NoProgress,
		log:       logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build runs the transform over every utterance in inDir and returns the
// records in completion order. Any transform failure aborts the whole
// build; nothing is retried or skipped.
func (b *Builder) Build(ctx context.Context, inDir, outDir string) ([]Record, error) {
	utts, err := dataset.LoadLJSpeech(inDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	log := b.log.WithFields(logrus.Fields{"workers": b.workers, "utterances": len(utts)})
	log.Info("building manifest")

	b.progress.Start(len(utts))
	records, err := parallel.Map(ctx, utts, b.workers, func(ctx context.Context, u dataset.Utterance) (Record, error) {
		r, err := b.transform.Transform(ctx, u, outDir)
		if err != nil {
			if ctx.Err() == nil {
				log.WithField("utterance", u.ID).WithError(err).Error("transform failed")
			}
			return Record{}, fmt.Errorf("transform %s: %w", u.ID, err)
		}
		b.progress.Increment()
		log.WithFields(logrus.Fields{"utterance": u.ID, "frames": r.Frames}).Debug("processed")
		return r, nil
	})
	b.progress.Finish()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	log.WithField("records", len(records)).Info("manifest built")
	return records, nil
}
