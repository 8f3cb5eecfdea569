package morse

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidSpeed = errors.New("speed must be a positive, finite number of words per minute")

// Element and gap lengths in base units.
const (
	dotUnits     = 1
	dashUnits    = 3
	elementUnits = 1
	letterUnits  = 3
	wordUnits    = 7
)

// ToneBackend realizes tones. Offsets are in the backend's playback clock.
type ToneBackend interface {
	ScheduleTone(start, duration time.Duration) error
}

// ToneEvent is a single tone of a schedule.
type ToneEvent struct {
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
}

// End returns the offset at which the tone stops.
func (e ToneEvent) End() time.Duration {
	return e.Start + e.Duration
}

// Silence is a silent interval between tones.
type Silence struct {
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
}

// Timeline is the result of one scheduling pass.
type Timeline struct {
	Unit   time.Duration `json:"unit"`
	Start  time.Duration `json:"start"`
	End    time.Duration `json:"end"`
	Events []ToneEvent   `json:"events"`
}

// Silences returns the silent intervals before each tone and after the last
// one, up to End.
func (tl Timeline) Silences() []Silence {
	var out []Silence
	cursor := tl.Start
	for _, e := range tl.Events {
		if e.Start > cursor {
			out = append(out, Silence{Start: cursor, Duration: e.Start - cursor})
		}
		cursor = e.End()
	}
	if tl.End > cursor {
		out = append(out, Silence{Start: cursor, Duration: tl.End - cursor})
	}
	return out
}

// Scheduler turns Morse strings into tone events at a given speed. It is not
// safe for concurrent use.
type Scheduler struct {
	wpm  float64
	unit time.Duration
}

// UnitFor returns the duration of one dot at the given speed.
func UnitFor(wpm float64) (time.Duration, error) {
	if wpm <= 0 || math.IsNaN(wpm) || math.IsInf(wpm, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSpeed, wpm)
	}
	return time.Duration(1200 * float64(time.Millisecond) / wpm), nil
}

func NewScheduler(wpm float64) (*Scheduler, error) {
	s := &Scheduler{}
	if err := s.SetSpeed(wpm); err != nil {
		return nil, err
	}
	return s, nil
}

// SetSpeed changes the speed for subsequent scheduling passes. On error the
// previous speed is kept.
func (s *Scheduler) SetSpeed(wpm float64) error {
	unit, err := UnitFor(wpm)
	if err != nil {
		return err
	}
	s.wpm = wpm
	s.unit = unit
	return nil
}

func (s *Scheduler) Speed() float64 {
	return s.wpm
}

func (s *Scheduler) Unit() time.Duration {
	return s.unit
}

// Schedule computes the tone events for morse starting at start. Symbols
// other than dot, dash, space and slash are ignored.
func (s *Scheduler) Schedule(morse string, start time.Duration) Timeline {
	tl := Timeline{Unit: s.unit, Start: start}
	clock := start
	for _, r := range morse {
		switch r {
		case Dot:
			tl.Events = append(tl.Events, ToneEvent{Start: clock, Duration: dotUnits * s.unit})
			clock += (dotUnits + elementUnits) * s.unit
		case Dash:
			tl.Events = append(tl.Events, ToneEvent{Start: clock, Duration: dashUnits * s.unit})
			clock += (dashUnits + elementUnits) * s.unit
		case LetterGap:
			clock += letterUnits * s.unit
		case WordSeparator:
			clock += wordUnits * s.unit
		}
	}
	tl.End = clock
	return tl
}

// Play schedules morse and hands every event to backend in order. It does
// not wait for tones to finish. The first backend error stops the remaining
// events; tones already handed over are left in place.
func (s *Scheduler) Play(backend ToneBackend, morse string, start time.Duration) (Timeline, error) {
	tl := s.Schedule(morse, start)
	for i, e := range tl.Events {
		if err := backend.ScheduleTone(e.Start, e.Duration); err != nil {
			return tl, fmt.Errorf("tone %d of %d at %v: %w", i+1, len(tl.Events), e.Start, err)
		}
	}
	return tl, nil
}
