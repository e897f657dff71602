package hal

import (
	"errors"
	"image"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrNoSurface is returned when the host has no drawing surface to render to.
var ErrNoSurface = errors.New("no drawing surface")

// Framebuffer is an RGBA pixel buffer in device pixels plus a "present" hook.
//
// It also satisfies drivers.Displayer so tinyfont can draw straight into it.
type Framebuffer interface {
	drivers.Displayer

	Width() int
	Height() int
	// DeviceScale is the device pixel ratio: device pixels per logical pixel.
	DeviceScale() float64
	// Image is the back buffer the renderer draws into.
	Image() *image.RGBA
	// Resize reallocates the back buffer. Contents are cleared.
	Resize(width, height int, scale float64)
	// Present publishes the back buffer to the host.
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// EventKind identifies an input event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventPointerDown
	EventPointerMove
	EventPointerUp
	// EventWheel carries DeltaY in device pixels; positive scrolls down.
	EventWheel
	// EventResize is sent after the framebuffer changed size.
	EventResize
	// EventReset requests the front view preset (double click, double tap, R).
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	case EventWheel:
		return "wheel"
	case EventResize:
		return "resize"
	case EventReset:
		return "reset"
	default:
		return "none"
	}
}

// Event is a pointer, wheel, resize or reset event. Coordinates are in
// device pixels relative to the top-left of the surface.
type Event struct {
	Kind   EventKind
	X, Y   float64
	DeltaY float64
	Width  int
	Height int
}

// Input provides the host's event stream. Events are delivered best-effort;
// a full queue drops new events.
type Input interface {
	Events() <-chan Event
}

// Page is the scrollable page hosting the surface. The surface sits at the top
// of the page; ScrollY > 0 means it is partially scrolled out of view.
type Page interface {
	ScrollY() float64
	ScrollBy(dy float64)
	ScrollTo(y float64)
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Page() Page
}
