package tone

import (
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// Renderer records tones and renders them offline as a mono 16-bit WAV
// stream. Its clock starts at zero and does not advance.
type Renderer struct {
	seq   *sequencer
	end   time.Duration
	count int
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{seq: newSequencer(opts.withDefaults())}
}

func (r *Renderer) Now() time.Duration {
	return 0
}

// ScheduleTone records a tone. Tones must be scheduled in order without
// overlapping.
func (r *Renderer) ScheduleTone(start, duration time.Duration) error {
	if err := checkTone(start, duration, 0); err != nil {
		return err
	}
	if start < r.end {
		return ErrOverlap
	}
	r.seq.add(start, duration, nil)
	r.end = start + duration
	r.count++
	return nil
}

// Len returns the number of recorded tones.
func (r *Renderer) Len() int {
	return r.count
}

func (r *Renderer) Format() beep.Format {
	return beep.Format{
		SampleRate:  r.seq.rate,
		NumChannels: 1,
		Precision:   2,
	}
}

// Samples returns the number of samples Encode writes when padded to end.
func (r *Renderer) Samples(end time.Duration) int {
	return r.seq.rate.N(max(end, r.end))
}

// Encode writes every recorded tone to w, followed by silence up to end.
// The renderer is consumed.
func (r *Renderer) Encode(w io.WriteSeeker, end time.Duration) error {
	return wav.Encode(w, beep.Take(r.Samples(end), r.seq), r.Format())
}
