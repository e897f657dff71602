package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RGBACanvas paints into an *image.RGBA with an anti-aliasing path rasterizer.
//
// Each ellipse is rasterized into a scratch coverage mask the size of its
// bounding box, then composited over the clipped box with image/draw.
type RGBACanvas struct {
	img *image.RGBA
	z   vector.Rasterizer
	buf []uint8
}

func NewRGBACanvas(img *image.RGBA) *RGBACanvas {
	return &RGBACanvas{img: img}
}

func (c *RGBACanvas) Image() *image.RGBA { return c.img }

func (c *RGBACanvas) Size() (w, h int) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *RGBACanvas) Clear(col color.RGBA) {
	if c.img == nil {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// ellipseSegments picks a polygon resolution for a radius in pixels.
func ellipseSegments(r float64) int {
	n := int(math.Ceil(r * 2))
	if n < 8 {
		n = 8
	}
	if n > 64 {
		n = 64
	}
	return n
}

func (c *RGBACanvas) scratch(w, h int) *image.Alpha {
	if cap(c.buf) < w*h {
		c.buf = make([]uint8, w*h)
	}
	return &image.Alpha{Pix: c.buf[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}
}

func (c *RGBACanvas) FillEllipse(cx, cy, rx, ry, theta float64, col color.RGBA, alpha float64) {
	if c.img == nil || rx <= 0 || ry <= 0 || alpha <= 0 {
		return
	}
	alpha = math.Min(1, alpha)

	// Axis-aligned bounds of the rotated ellipse.
	cos, sin := math.Cos(theta), math.Sin(theta)
	hw := math.Sqrt(rx*rx*cos*cos + ry*ry*sin*sin)
	hh := math.Sqrt(rx*rx*sin*sin + ry*ry*cos*cos)
	full := image.Rect(
		int(math.Floor(cx-hw)), int(math.Floor(cy-hh)),
		int(math.Ceil(cx+hw)), int(math.Ceil(cy+hh)),
	)
	clip := full.Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}

	w, h := full.Dx(), full.Dy()
	ox, oy := float64(full.Min.X), float64(full.Min.Y)
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Src
	n := ellipseSegments(math.Max(rx, ry))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ex, ey := rx*math.Cos(a), ry*math.Sin(a)
		x := float32(cx + ex*cos - ey*sin - ox)
		y := float32(cy + ex*sin + ey*cos - oy)
		if i == 0 {
			c.z.MoveTo(x, y)
		} else {
			c.z.LineTo(x, y)
		}
	}
	c.z.ClosePath()

	mask := c.scratch(w, h)
	c.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	src := image.NewUniform(color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(math.Round(alpha * float64(col.A)))})
	draw.DrawMask(c.img, clip, src, image.Point{}, mask, clip.Min.Sub(full.Min), draw.Over)
}
