// Package tone realizes Morse tone events: live through the speaker, the
// system beeper or a terminal lamp, and offline as WAV files.
package tone

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gigurra/morsewave/pkg/morse"
	"github.com/gopxl/beep/v2"
)

var (
	ErrAudioUnavailable = errors.New("audio playback is not available in this build")
	ErrInPast           = errors.New("tone starts before the current playback time")
	ErrInvalidOffset    = errors.New("tone offset and duration must not be negative")
	ErrOverlap          = errors.New("tone overlaps a previously scheduled tone")
	ErrClosed           = errors.New("backend is closed")
)

const (
	DefaultFrequency  = 700 // Hz - standard morse tone
	DefaultVolume     = 0.5
	DefaultSampleRate = 44100
)

// Options configure the generated tone.
type Options struct {
	Frequency  float64
	Volume     float64
	SampleRate int
}

func (o Options) withDefaults() Options {
	if o.Frequency <= 0 {
		o.Frequency = DefaultFrequency
	}
	if o.Volume <= 0 || o.Volume > 1 {
		o.Volume = DefaultVolume
	}
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	return o
}

// Player is a backend with a running playback clock.
type Player interface {
	morse.ToneBackend
	// Now returns the current position of the playback clock.
	Now() time.Duration
	// Wait blocks until every scheduled tone has finished or ctx is done.
	Wait(ctx context.Context) error
	// Close drops tones that have not started yet.
	Close() error
}

func checkTone(start, duration, now time.Duration) error {
	if start < 0 || duration < 0 {
		return ErrInvalidOffset
	}
	if start < now {
		return ErrInPast
	}
	return nil
}

// tracker counts outstanding tones and collects asynchronous errors.
type tracker struct {
	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error
}

func (t *tracker) fail(err error) {
	t.mu.Lock()
	t.errs = append(t.errs, err)
	t.mu.Unlock()
}

func (t *tracker) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return errors.Join(t.errs...)
}

type toneStreamer struct {
	samples    int
	position   int
	frequency  float64
	volume     float64
	sampleRate beep.SampleRate
}

func newTone(opts Options, duration time.Duration) *toneStreamer {
	sr := beep.SampleRate(opts.SampleRate)
	return &toneStreamer{
		samples:    sr.N(duration),
		frequency:  opts.Frequency,
		volume:     opts.Volume,
		sampleRate: sr,
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.samples {
			return i, false
		}

		// Generate sine wave with envelope to avoid clicks
		phase := 2 * math.Pi * t.frequency * float64(t.position) / float64(t.sampleRate)
		value := math.Sin(phase)

		// Apply envelope (fade in/out)
		envelope := 1.0
		fadeLen := t.samples / 20 // 5% fade
		if fadeLen < 10 {
			fadeLen = 10
		}
		if t.position < fadeLen {
			envelope = float64(t.position) / float64(fadeLen)
		} else if t.position > t.samples-fadeLen {
			envelope = float64(t.samples-t.position) / float64(fadeLen)
		}

		value *= envelope * t.volume
		samples[i][0] = value
		samples[i][1] = value
		t.position++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error {
	return nil
}
