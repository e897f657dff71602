package hal

import (
	"image"
	"image/color"
	"sync"
)

type hostFramebuffer struct {
	scale float64
	back  *image.RGBA

	mu     sync.Mutex
	front  []byte
	frames uint64
}

func newHostFramebuffer(width, height int, scale float64) *hostFramebuffer {
	f := &hostFramebuffer{}
	f.Resize(width, height, scale)
	return f
}

func (f *hostFramebuffer) Width() int           { return f.back.Rect.Dx() }
func (f *hostFramebuffer) Height() int          { return f.back.Rect.Dy() }
func (f *hostFramebuffer) DeviceScale() float64 { return f.scale }
func (f *hostFramebuffer) Image() *image.RGBA   { return f.back }

func (f *hostFramebuffer) Resize(width, height int, scale float64) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if scale <= 0 {
		scale = 1
	}
	f.scale = scale
	f.back = image.NewRGBA(image.Rect(0, 0, width, height))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.front = make([]byte, len(f.back.Pix))
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.front) != len(f.back.Pix) {
		f.front = make([]byte, len(f.back.Pix))
	}
	copy(f.front, f.back.Pix)
	f.frames++
	return nil
}

// snapshot copies the front buffer into dst.
func (f *hostFramebuffer) snapshot(dst []byte) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(dst) != len(f.front) {
		dst = make([]byte, len(f.front))
	}
	copy(dst, f.front)
	return dst
}

func (f *hostFramebuffer) presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// drivers.Displayer

func (f *hostFramebuffer) Size() (x, y int16) {
	return int16(f.Width()), int16(f.Height())
}

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= f.Width() || iy >= f.Height() {
		return
	}
	f.back.SetRGBA(ix, iy, c)
}

func (f *hostFramebuffer) Display() error { return f.Present() }
