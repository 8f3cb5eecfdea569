//go:build (linux && cgo) || windows || darwin

package tone

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether speaker playback is supported in this build.
const AudioAvailable = true

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerRate        beep.SampleRate
)

// initSpeaker initializes the speaker once per process. Later calls reuse
// the first sample rate.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerInitialized {
		return speakerRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerInitialized = true
	speakerRate = rate
	slog.Debug("speaker initialized", "sampleRate", int(rate))
	return rate, nil
}

// Speaker plays tones through the default audio device. Tones are mixed in
// ahead of time at the sample they are scheduled for.
type Speaker struct {
	tracker
	seq    *sequencer
	ctrl   *beep.Ctrl
	closed bool
}

func OpenSpeaker(opts Options) (*Speaker, error) {
	opts = opts.withDefaults()
	rate, err := initSpeaker(beep.SampleRate(opts.SampleRate))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}
	opts.SampleRate = int(rate)

	s := &Speaker{seq: newSequencer(opts)}
	s.ctrl = &beep.Ctrl{Streamer: s.seq}
	speaker.Play(s.ctrl)
	return s, nil
}

func (s *Speaker) Now() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	return s.seq.now()
}

func (s *Speaker) ScheduleTone(start, duration time.Duration) error {
	speaker.Lock()
	defer speaker.Unlock()

	if s.closed {
		return ErrClosed
	}
	if err := checkTone(start, duration, s.seq.now()); err != nil {
		return err
	}
	s.wg.Add(1)
	s.seq.add(start, duration, s.wg.Done)
	return nil
}

func (s *Speaker) Wait(ctx context.Context) error {
	return s.wait(ctx)
}

func (s *Speaker) Close() error {
	speaker.Lock()
	defer speaker.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if dropped := s.seq.drop(); dropped > 0 {
		slog.Debug("speaker closed with pending tones", "dropped", dropped)
	}
	s.ctrl.Streamer = nil
	return nil
}
