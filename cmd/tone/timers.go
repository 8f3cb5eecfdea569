package tone

import (
	"context"
	"sync"
	"time"
)

// timers runs callbacks at offsets of a wall clock that starts when the
// backend is created.
type timers struct {
	tracker
	mu      sync.Mutex
	epoch   time.Time
	pending map[*time.Timer]struct{}
	closed  bool
}

func newTimers() *timers {
	return &timers{
		epoch:   time.Now(),
		pending: make(map[*time.Timer]struct{}),
	}
}

func (t *timers) Now() time.Duration {
	return time.Since(t.epoch)
}

// at arms f to run at offset. Errors returned by f are reported by Wait.
func (t *timers) at(offset time.Duration, f func() error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	t.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(max(offset-t.Now(), 0), func() {
		defer t.wg.Done()
		t.mu.Lock()
		delete(t.pending, timer)
		t.mu.Unlock()
		if err := f(); err != nil {
			t.fail(err)
		}
	})
	t.pending[timer] = struct{}{}
	return nil
}

func (t *timers) Wait(ctx context.Context) error {
	return t.wait(ctx)
}

// Close stops every callback that has not fired yet.
func (t *timers) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	for timer := range t.pending {
		if timer.Stop() {
			t.wg.Done()
		}
		delete(t.pending, timer)
	}
	return nil
}
