// Package loop owns the frame loop: one step per tick until it is stopped.
//
// A Loop can be driven three ways: by a host that calls Tick once per display
// refresh, by Run on a ticker, or by RunN for an exact number of frames.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ErrStopped is returned by Tick and RunN once the loop has been stopped.
var ErrStopped = errors.New("loop stopped")

// Loop runs a step function once per tick.
type Loop struct {
	step func() error

	ticks    atomic.Uint64
	stopOnce sync.Once
	done     chan struct{}
}

func New(step func() error) *Loop {
	return &Loop{step: step, done: make(chan struct{})}
}

// Stop prevents any further step from running. It is safe to call more than
// once and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

// Done is closed when the loop is stopped.
func (l *Loop) Done() <-chan struct{} { return l.done }

func (l *Loop) Stopped() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Ticks is the number of steps run so far.
func (l *Loop) Ticks() uint64 { return l.ticks.Load() }

// Tick runs one step. A failing step stops the loop.
func (l *Loop) Tick() error {
	if l.Stopped() {
		return ErrStopped
	}
	if l.step != nil {
		if err := l.step(); err != nil {
			l.Stop()
			return err
		}
	}
	l.ticks.Add(1)
	return nil
}

// RunN runs exactly n steps unless the loop stops first.
func (l *Loop) RunN(n int) error {
	for i := 0; i < n; i++ {
		if err := l.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Run ticks hz times per second until ctx is done, Stop is called, or a step
// fails. maxTicks > 0 ends the run after that many steps in this call.
//
// Run returns nil when stopped or when maxTicks is reached, ctx.Err() when the
// context ends, and the step error otherwise.
func (l *Loop) Run(ctx context.Context, hz int, maxTicks uint64) error {
	if hz <= 0 {
		return fmt.Errorf("invalid tick rate: %d", hz)
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return fmt.Errorf("invalid tick rate: %d", hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case <-t.C:
			if err := l.Tick(); err != nil {
				if errors.Is(err, ErrStopped) {
					return nil
				}
				return err
			}
			n++
			if maxTicks > 0 && n >= maxTicks {
				return nil
			}
		}
	}
}
