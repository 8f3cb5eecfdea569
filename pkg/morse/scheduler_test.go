package morse

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

const ms = time.Millisecond

type recordingBackend struct {
	events []ToneEvent
	failAt int // 1-based call that fails, 0 never
	err    error
}

func (b *recordingBackend) ScheduleTone(start, duration time.Duration) error {
	if b.failAt > 0 && len(b.events)+1 == b.failAt {
		return b.err
	}
	b.events = append(b.events, ToneEvent{Start: start, Duration: duration})
	return nil
}

func mustScheduler(t *testing.T, wpm float64) *Scheduler {
	t.Helper()
	s, err := NewScheduler(wpm)
	if err != nil {
		t.Fatalf("NewScheduler(%v): %v", wpm, err)
	}
	return s
}

func TestUnitFor(t *testing.T) {
	tests := []struct {
		wpm      float64
		expected time.Duration
	}{
		{20, 60 * ms},
		{15, 80 * ms},
		{12, 100 * ms},
		{40, 30 * ms},
		{5, 240 * ms},
	}

	for _, tt := range tests {
		unit, err := UnitFor(tt.wpm)
		if err != nil {
			t.Errorf("UnitFor(%v) returned error: %v", tt.wpm, err)
			continue
		}
		if unit != tt.expected {
			t.Errorf("UnitFor(%v) = %v, want %v", tt.wpm, unit, tt.expected)
		}
	}
}

func TestInvalidSpeed(t *testing.T) {
	for _, wpm := range []float64{0, -1, -20, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NewScheduler(wpm); !errors.Is(err, ErrInvalidSpeed) {
			t.Errorf("NewScheduler(%v) error = %v, want ErrInvalidSpeed", wpm, err)
		}
	}

	s := mustScheduler(t, 20)
	if err := s.SetSpeed(0); !errors.Is(err, ErrInvalidSpeed) {
		t.Errorf("SetSpeed(0) error = %v", err)
	}
	if s.Speed() != 20 || s.Unit() != 60*ms {
		t.Errorf("failed SetSpeed changed state: speed %v, unit %v", s.Speed(), s.Unit())
	}
}

func TestSchedule(t *testing.T) {
	tests := []struct {
		morse    string
		start    time.Duration
		events   []ToneEvent
		expected time.Duration // end
	}{
		{".", 0, []ToneEvent{{0, 60 * ms}}, 120 * ms},
		{"-", 0, []ToneEvent{{0, 180 * ms}}, 240 * ms},
		{".-", 0, []ToneEvent{{0, 60 * ms}, {120 * ms, 180 * ms}}, 360 * ms},
		{".", 500 * ms, []ToneEvent{{500 * ms, 60 * ms}}, 620 * ms},
		// E E: dot, letter gap, dot
		{". .", 0, []ToneEvent{{0, 60 * ms}, {300 * ms, 60 * ms}}, 420 * ms},
		// E / E: dot, space, slash, space, dot
		{". / .", 0, []ToneEvent{{0, 60 * ms}, {900 * ms, 60 * ms}}, 1020 * ms},
		{"", 0, nil, 0},
		{"abc", 100 * ms, nil, 100 * ms},
		{".x-", 0, []ToneEvent{{0, 60 * ms}, {120 * ms, 180 * ms}}, 360 * ms},
	}

	s := mustScheduler(t, 20)
	for _, tt := range tests {
		tl := s.Schedule(tt.morse, tt.start)
		if !reflect.DeepEqual(tl.Events, tt.events) {
			t.Errorf("Schedule(%q).Events = %v, want %v", tt.morse, tl.Events, tt.events)
		}
		if tl.End != tt.expected {
			t.Errorf("Schedule(%q).End = %v, want %v", tt.morse, tl.End, tt.expected)
		}
		if tl.Start != tt.start || tl.Unit != 60*ms {
			t.Errorf("Schedule(%q) start/unit = %v/%v", tt.morse, tl.Start, tl.Unit)
		}
	}
}

func TestScheduleIsMonotonic(t *testing.T) {
	s := mustScheduler(t, 18)
	tl := s.Schedule(Encode("the quick brown fox 1234567890"), 0)
	for i := 1; i < len(tl.Events); i++ {
		prev, cur := tl.Events[i-1], tl.Events[i]
		if cur.Start < prev.End()+s.Unit() {
			t.Fatalf("event %d at %v overlaps previous ending %v", i, cur.Start, prev.End())
		}
	}
	if last := tl.Events[len(tl.Events)-1]; tl.End < last.End() {
		t.Errorf("End %v before last tone end %v", tl.End, last.End())
	}
}

func TestSilences(t *testing.T) {
	s := mustScheduler(t, 20)
	tl := s.Schedule(". -", 0)
	expected := []Silence{
		{Start: 60 * ms, Duration: 240 * ms},
		{Start: 480 * ms, Duration: 60 * ms},
	}
	if got := tl.Silences(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Silences() = %v, want %v", got, expected)
	}

	lead := s.Schedule("/ .", 0).Silences()
	if len(lead) == 0 || lead[0].Start != 0 || lead[0].Duration != 600*ms {
		t.Errorf("leading word gap silence = %v", lead)
	}

	if got := s.Schedule("", 0).Silences(); len(got) != 0 {
		t.Errorf("empty schedule silences = %v", got)
	}
}

func TestSetSpeedAffectsOnlyLaterPasses(t *testing.T) {
	s := mustScheduler(t, 20)
	before := s.Schedule("-", 0)

	if err := s.SetSpeed(10); err != nil {
		t.Fatalf("SetSpeed: %v", err)
	}
	after := s.Schedule("-", 0)

	if before.Events[0].Duration != 180*ms {
		t.Errorf("earlier event changed to %v", before.Events[0].Duration)
	}
	if after.Events[0].Duration != 360*ms {
		t.Errorf("later event duration = %v, want 360ms", after.Events[0].Duration)
	}
	if s.Speed() != 10 || s.Unit() != 120*ms {
		t.Errorf("speed/unit = %v/%v", s.Speed(), s.Unit())
	}
}

func TestPlay(t *testing.T) {
	s := mustScheduler(t, 20)
	backend := &recordingBackend{}

	tl, err := s.Play(backend, "... ---", 1000*ms)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !reflect.DeepEqual(backend.events, tl.Events) {
		t.Errorf("backend received %v, want %v", backend.events, tl.Events)
	}
	if len(backend.events) != 6 {
		t.Errorf("backend received %d events, want 6", len(backend.events))
	}
	if backend.events[0].Start != 1000*ms {
		t.Errorf("first event at %v, want 1s", backend.events[0].Start)
	}
}

func TestPlayEmpty(t *testing.T) {
	s := mustScheduler(t, 20)
	backend := &recordingBackend{}
	if _, err := s.Play(backend, "", 0); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(backend.events) != 0 {
		t.Errorf("backend received %d events", len(backend.events))
	}
}

func TestPlayStopsOnBackendError(t *testing.T) {
	errBusy := errors.New("device busy")
	s := mustScheduler(t, 20)
	backend := &recordingBackend{failAt: 3, err: errBusy}

	tl, err := s.Play(backend, "....", 0)
	if !errors.Is(err, errBusy) {
		t.Fatalf("Play error = %v, want wrapped %v", err, errBusy)
	}
	if len(backend.events) != 2 {
		t.Errorf("backend kept %d events, want the 2 realized before the failure", len(backend.events))
	}
	if len(tl.Events) != 4 {
		t.Errorf("timeline has %d events, want 4", len(tl.Events))
	}
}
