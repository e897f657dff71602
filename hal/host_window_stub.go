//go:build !cgo

package hal

import "errors"

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

func RunWindow(_ func(HAL) (func() error, error), _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
