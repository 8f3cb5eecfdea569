package tone

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	lampOn  = "●"
	lampOff = "○"
)

// Lamp shows tones as a lamp on a terminal, optionally ringing the bell at
// the start of every tone.
type Lamp struct {
	*timers
	w     io.Writer
	wmu   sync.Mutex
	bell  bool
	onSt  lipgloss.Style
	offSt lipgloss.Style
}

func NewLamp(w io.Writer, bell bool) *Lamp {
	return &Lamp{
		timers: newTimers(),
		w:      w,
		bell:   bell,
		onSt:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		offSt:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (l *Lamp) ScheduleTone(start, duration time.Duration) error {
	if err := checkTone(start, duration, l.Now()); err != nil {
		return err
	}
	if err := l.at(start, l.on); err != nil {
		return err
	}
	return l.at(start+duration, l.off)
}

func (l *Lamp) on() error {
	s := "\r" + l.onSt.Render(lampOn)
	if l.bell {
		s += "\a"
	}
	return l.write(s)
}

func (l *Lamp) off() error {
	return l.write("\r" + l.offSt.Render(lampOff))
}

func (l *Lamp) write(s string) error {
	l.wmu.Lock()
	defer l.wmu.Unlock()
	if _, err := fmt.Fprint(l.w, s); err != nil {
		return fmt.Errorf("lamp: %w", err)
	}
	return nil
}
