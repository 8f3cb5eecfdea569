package tone

import (
	"time"

	"github.com/gopxl/beep/v2"
)

type pendingTone struct {
	start int // absolute sample index
	tone  *toneStreamer
	done  func()
}

// sequencer is an endless streamer that mixes tones in at the sample they
// were scheduled for. Its position is the playback clock.
type sequencer struct {
	opts     Options
	rate     beep.SampleRate
	position int
	pending  []*pendingTone
	scratch  [][2]float64
}

func newSequencer(opts Options) *sequencer {
	return &sequencer{
		opts: opts,
		rate: beep.SampleRate(opts.SampleRate),
	}
}

func (q *sequencer) now() time.Duration {
	return q.rate.D(q.position)
}

func (q *sequencer) add(start, duration time.Duration, done func()) {
	q.pending = append(q.pending, &pendingTone{
		start: q.rate.N(start),
		tone:  newTone(q.opts, duration),
		done:  done,
	})
}

// drop discards every tone and returns how many there were.
func (q *sequencer) drop() int {
	n := len(q.pending)
	for _, p := range q.pending {
		if p.done != nil {
			p.done()
		}
	}
	q.pending = nil
	return n
}

func (q *sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		samples[i] = [2]float64{}
	}
	if cap(q.scratch) < len(samples) {
		q.scratch = make([][2]float64, len(samples))
	}

	end := q.position + len(samples)
	kept := q.pending[:0]
	for _, p := range q.pending {
		if p.start >= end {
			kept = append(kept, p)
			continue
		}
		offset := max(p.start-q.position, 0)
		buf := q.scratch[:len(samples)-offset]
		written, more := p.tone.Stream(buf)
		for i := 0; i < written; i++ {
			samples[offset+i][0] += buf[i][0]
			samples[offset+i][1] += buf[i][1]
		}
		if more && p.tone.position < p.tone.samples {
			kept = append(kept, p)
			continue
		}
		if p.done != nil {
			p.done()
		}
	}
	for i := len(kept); i < len(q.pending); i++ {
		q.pending[i] = nil
	}
	q.pending = kept
	q.position = end
	return len(samples), true
}

func (q *sequencer) Err() error {
	return nil
}
