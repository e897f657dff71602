package hal

import (
	"context"
	"errors"
	"os"

	"particlehero/hero/loop"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int
	Scale   float64
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = defaultWidth, defaultHeight
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	h := newHostHAL(cfg.Width, cfg.Height, cfg.Scale, os.Stdout)
	step, err := newApp(h)
	if err != nil {
		h.logger.WriteLineString("headless: " + err.Error())
		return err
	}

	l := loop.New(step)
	if err := l.Run(ctx, cfg.Hz, cfg.Ticks); err != nil && !errors.Is(err, loop.ErrStopped) {
		return err
	}
	return nil
}
