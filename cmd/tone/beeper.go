package tone

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gen2brain/beeep"
)

var systemBeep = beeep.Beep

// Beeper plays tones on the system beeper.
type Beeper struct {
	*timers
	frequency float64
}

func NewBeeper(opts Options) *Beeper {
	opts = opts.withDefaults()
	return &Beeper{
		timers:    newTimers(),
		frequency: opts.Frequency,
	}
}

func (b *Beeper) ScheduleTone(start, duration time.Duration) error {
	if err := checkTone(start, duration, b.Now()); err != nil {
		return err
	}
	ms := int(duration / time.Millisecond)
	return b.at(start, func() error {
		if err := systemBeep(b.frequency, ms); err != nil {
			slog.Debug("system beep failed", "start", start, "duration", duration, "error", err)
			return fmt.Errorf("beep at %v: %w", start, err)
		}
		return nil
	})
}
