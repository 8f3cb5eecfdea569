//go:build !((linux && cgo) || windows || darwin)

package tone

import (
	"context"
	"time"
)

// AudioAvailable indicates whether speaker playback is supported in this build.
// Audio requires CGO for native sound libraries on Linux.
const AudioAvailable = false

// Speaker is unavailable without cgo; OpenSpeaker always fails.
type Speaker struct{}

func OpenSpeaker(opts Options) (*Speaker, error) {
	return nil, ErrAudioUnavailable
}

func (s *Speaker) Now() time.Duration { return 0 }

func (s *Speaker) ScheduleTone(start, duration time.Duration) error {
	return ErrAudioUnavailable
}

func (s *Speaker) Wait(ctx context.Context) error { return nil }

func (s *Speaker) Close() error { return nil }
