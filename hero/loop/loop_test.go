package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunNExact(t *testing.T) {
	var calls int
	l := New(func() error { calls++; return nil })
	if err := l.RunN(7); err != nil {
		t.Fatalf("RunN: %v", err)
	}
	if calls != 7 || l.Ticks() != 7 {
		t.Fatalf("calls = %d, ticks = %d, want 7", calls, l.Ticks())
	}
}

func TestStopHaltsTicks(t *testing.T) {
	var calls int
	l := New(func() error { calls++; return nil })
	_ = l.RunN(2)
	l.Stop()
	l.Stop()

	if err := l.Tick(); !errors.Is(err, ErrStopped) {
		t.Fatalf("Tick after Stop = %v, want ErrStopped", err)
	}
	if err := l.RunN(5); !errors.Is(err, ErrStopped) {
		t.Fatalf("RunN after Stop = %v, want ErrStopped", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	select {
	case <-l.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}
}

func TestStepErrorStops(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	l := New(func() error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	if err := l.RunN(10); !errors.Is(err, boom) {
		t.Fatalf("RunN = %v, want boom", err)
	}
	if !l.Stopped() {
		t.Fatal("loop not stopped after a failing step")
	}
	if l.Ticks() != 2 {
		t.Fatalf("Ticks() = %d, want 2", l.Ticks())
	}
}

func TestRunMaxTicks(t *testing.T) {
	l := New(nil)
	if err := l.Run(context.Background(), 1000, 5); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Ticks() != 5 {
		t.Fatalf("Ticks() = %d, want 5", l.Ticks())
	}
}

func TestRunContextCancel(t *testing.T) {
	l := New(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Run(ctx, 1000, 0); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run = %v, want DeadlineExceeded", err)
	}
}

func TestRunStopFromAnotherGoroutine(t *testing.T) {
	var l *Loop
	l = New(func() error {
		if l.Ticks() == 3 {
			go l.Stop()
		}
		return nil
	})
	if err := l.Run(context.Background(), 1000, 0); err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if !l.Stopped() {
		t.Fatal("loop not stopped")
	}
}

func TestRunInvalidRate(t *testing.T) {
	if err := New(nil).Run(context.Background(), 0, 1); err == nil {
		t.Fatal("Run(hz=0) = nil, want error")
	}
}
