package orchestrator

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress observes the build without affecting it. Increment may be
// called from several workers at once.
type Progress interface {
	Start(total int)
	Increment()
	Finish()
}

type noProgress struct{}

func (noProgress) Start(int)  {}
func (noProgress) Increment() {}
func (noProgress) Finish()    {}

// NoProgress discards all progress events.
var NoProgress Progress = noProgress{}

type barProgress struct {
	w    io.Writer
	desc string
	bar  *progressbar.ProgressBar
}

// NewBarProgress renders a terminal progress bar to w.
func NewBarProgress(w io.Writer, description string) Progress {
	return &barProgress{w: w, desc: description}
}

func (p *barProgress) Start(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription(p.desc),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("utt"),
		progressbar.OptionOnCompletion(func() { io.WriteString(p.w, "\n") }),
	)
}

func (p *barProgress) Increment() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *barProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
