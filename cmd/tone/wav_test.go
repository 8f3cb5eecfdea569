package tone

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gigurra/morsewave/pkg/morse"
	"github.com/gopxl/beep/v2/wav"
)

func TestRenderer_ScheduleTone(t *testing.T) {
	r := NewRenderer(testOptions())

	if err := r.ScheduleTone(0, 60*time.Millisecond); err != nil {
		t.Fatalf("ScheduleTone: %v", err)
	}
	if err := r.ScheduleTone(30*time.Millisecond, 60*time.Millisecond); !errors.Is(err, ErrOverlap) {
		t.Errorf("overlapping tone error = %v, want ErrOverlap", err)
	}
	if err := r.ScheduleTone(-time.Millisecond, time.Millisecond); !errors.Is(err, ErrInvalidOffset) {
		t.Errorf("negative tone error = %v, want ErrInvalidOffset", err)
	}
	if err := r.ScheduleTone(60*time.Millisecond, 60*time.Millisecond); err != nil {
		t.Errorf("adjacent tone rejected: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRenderer_Encode(t *testing.T) {
	s, err := morse.NewScheduler(20)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(testOptions())
	tl, err := s.Play(r, morse.Encode("SOS"), 0)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if r.Len() != 9 {
		t.Errorf("Len() = %d, want 9", r.Len())
	}

	path := filepath.Join(t.TempDir(), "sos.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := r.Samples(tl.End)
	if err := r.Encode(f, tl.End); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	streamer, format, err := wav.Decode(in)
	if err != nil {
		t.Fatalf("wav.Decode: %v", err)
	}
	defer streamer.Close()

	if format.NumChannels != 1 || int(format.SampleRate) != 8000 {
		t.Errorf("format = %+v", format)
	}
	if streamer.Len() != expected {
		t.Errorf("decoded %d samples, want %d", streamer.Len(), expected)
	}

	buf := make([][2]float64, expected)
	n := 0
	for n < expected {
		read, ok := streamer.Stream(buf[n:])
		n += read
		if !ok || read == 0 {
			break
		}
	}
	if n != expected {
		t.Fatalf("streamed %d samples, want %d", n, expected)
	}
	unit := format.SampleRate.N(60 * time.Millisecond)
	if m := maxAbs(buf[:unit]); m <= 0.1 {
		t.Errorf("first dot amplitude = %v", m)
	}
	if m := maxAbs(buf[unit+1 : 2*unit-1]); m != 0 {
		t.Errorf("element gap amplitude = %v", m)
	}
}
