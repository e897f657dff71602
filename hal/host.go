package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	defaultWidth  = 960
	defaultHeight = 540
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	input  *hostInput
	page   *hostPage
}

// New returns a host HAL with a default-sized surface logging to stdout.
func New() HAL {
	return newHostHAL(defaultWidth, defaultHeight, 1, os.Stdout)
}

func newHostHAL(width, height int, scale float64, logw io.Writer) *hostHAL {
	fb := newHostFramebuffer(width, height, scale)
	return &hostHAL{
		logger: &hostLogger{w: logw},
		fb:     fb,
		input:  newHostInput(),
		page:   newHostPage(fb),
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) Display() Display {
	if h.fb == nil {
		return nil
	}
	return hostDisplay{fb: h.fb}
}
func (h *hostHAL) Input() Input { return h.input }
func (h *hostHAL) Page() Page   { return h.page }

// resize reallocates the surface and queues a resize event.
func (h *hostHAL) resize(width, height int, scale float64) {
	if width == h.fb.Width() && height == h.fb.Height() && scale == h.fb.DeviceScale() {
		return
	}
	h.fb.Resize(width, height, scale)
	h.page.clamp()
	h.input.push(Event{Kind: EventResize, Width: width, Height: height})
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) setOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w = w
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// Headless is a host HAL without a window. The caller drives it by pushing
// events and reading back the presented frames.
type Headless struct {
	*hostHAL
}

// NewHeadless returns a headless HAL with a width x height device-pixel
// surface at the given device pixel ratio. Logs go to stderr.
func NewHeadless(width, height int, scale float64) *Headless {
	return &Headless{hostHAL: newHostHAL(width, height, scale, os.Stderr)}
}

// SetLogOutput redirects the logger.
func (h *Headless) SetLogOutput(w io.Writer) { h.logger.setOutput(w) }

// Push queues an event. It reports false if the queue is full.
func (h *Headless) Push(ev Event) bool { return h.input.push(ev) }

// Resize changes the surface size and queues a resize event, like a host
// window would.
func (h *Headless) Resize(width, height int, scale float64) { h.resize(width, height, scale) }

// Frame copies the last presented frame into dst, allocating if needed.
func (h *Headless) Frame(dst []byte) []byte { return h.fb.snapshot(dst) }

// Presented is the number of frames presented so far.
func (h *Headless) Presented() uint64 { return h.fb.presented() }
