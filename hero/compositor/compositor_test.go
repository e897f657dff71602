package compositor

import (
	"image"
	"image/color"
	"testing"

	"particlehero/hero/particle"
	"particlehero/hero/quarkgl"
)

var (
	red  = color.RGBA{R: 0xFF, A: 0xFF}
	blue = color.RGBA{B: 0xFF, A: 0xFF}
)

func TestSortBackToFrontStable(t *testing.T) {
	rs := []Record{
		{Depth: 10, Theta: 0},
		{Depth: 30, Theta: 1},
		{Depth: 10, Theta: 2},
		{Depth: 20, Theta: 3},
		{Depth: 30, Theta: 4},
	}
	SortBackToFront(rs)

	want := []float64{1, 4, 3, 0, 2}
	for i, r := range rs {
		if r.Theta != want[i] {
			t.Fatalf("order[%d] = record %v, want %v", i, r.Theta, want[i])
		}
	}
}

func TestAddClampsSizeScale(t *testing.T) {
	c := New()
	p := &particle.Particle{Radius: 3, AspectX: 1, AspectY: 1, Alpha: 1}

	c.Add(p, quarkgl.Projection{Scale: 10})
	c.Add(p, quarkgl.Projection{Scale: 0.01})
	c.Add(p, quarkgl.Projection{Scale: 1.5})

	rs := c.Records()
	if len(rs) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(rs))
	}
	if rs[0].Radius != 6 || rs[1].Radius != 1.5 || rs[2].Radius != 4.5 {
		t.Fatalf("radii = %v, %v, %v, want 6, 1.5, 4.5", rs[0].Radius, rs[1].Radius, rs[2].Radius)
	}

	c.Reset()
	if len(c.Records()) != 0 {
		t.Fatalf("Reset kept %d records", len(c.Records()))
	}
}

func TestDrawNearestOnTop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	canvas := NewRGBACanvas(img)

	c := New()
	near := &particle.Particle{Radius: 8, AspectX: 1, AspectY: 1, Alpha: 1, Color: red}
	far := &particle.Particle{Radius: 8, AspectX: 1, AspectY: 1, Alpha: 1, Color: blue}
	// Insert the near one first; the sort must still paint it last.
	c.Add(near, quarkgl.Projection{X: 20, Y: 20, Depth: 100, Scale: 1})
	c.Add(far, quarkgl.Projection{X: 20, Y: 20, Depth: 900, Scale: 1})
	c.Draw(canvas)

	if got := img.RGBAAt(20, 20); got != red {
		t.Fatalf("center = %+v, want %+v", got, red)
	}
	if got := img.RGBAAt(0, 0); got != c.Background {
		t.Fatalf("corner = %+v, want background %+v", got, c.Background)
	}
}

func TestFillEllipseCoverage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	canvas := NewRGBACanvas(img)
	canvas.Clear(color.RGBA{A: 0xFF})

	// A wide ellipse along x.
	canvas.FillEllipse(25, 25, 15, 4, 0, red, 1)
	if got := img.RGBAAt(35, 25); got.R != 0xFF {
		t.Fatalf("inside long axis = %+v, want red", got)
	}
	if got := img.RGBAAt(25, 33); got.R != 0 {
		t.Fatalf("outside short axis = %+v, want black", got)
	}

	// Rotated a quarter turn it stands up.
	canvas.Clear(color.RGBA{A: 0xFF})
	canvas.FillEllipse(25, 25, 15, 4, 1.5707963267948966, red, 1)
	if got := img.RGBAAt(25, 35); got.R != 0xFF {
		t.Fatalf("rotated inside = %+v, want red", got)
	}
	if got := img.RGBAAt(35, 25); got.R != 0 {
		t.Fatalf("rotated outside = %+v, want black", got)
	}
}

func TestFillEllipseAlphaBlends(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	canvas := NewRGBACanvas(img)
	canvas.Clear(color.RGBA{A: 0xFF})
	canvas.FillEllipse(10, 10, 6, 6, 0, red, 0.5)

	got := img.RGBAAt(10, 10)
	if got.R < 0x70 || got.R > 0x90 {
		t.Fatalf("half-alpha red = %+v, want R near 0x80", got)
	}
}

func TestFillEllipseClipsAtEdges(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	canvas := NewRGBACanvas(img)
	canvas.Clear(color.RGBA{A: 0xFF})

	canvas.FillEllipse(0, 0, 6, 6, 0, red, 1)
	canvas.FillEllipse(20, 20, 6, 6, 0, blue, 1)
	canvas.FillEllipse(-100, 50, 6, 6, 0, blue, 1)

	if got := img.RGBAAt(1, 1); got != red {
		t.Fatalf("top-left = %+v, want red", got)
	}
	if got := img.RGBAAt(18, 18); got != blue {
		t.Fatalf("bottom-right = %+v, want blue", got)
	}
	if got := img.RGBAAt(10, 10); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("middle = %+v, want untouched", got)
	}
}

func TestFillEllipseDegenerate(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	canvas := NewRGBACanvas(img)
	canvas.FillEllipse(5, 5, 0, 3, 0, red, 1)
	canvas.FillEllipse(5, 5, 3, 3, 0, red, 0)
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want untouched", i, v)
		}
	}
	if w, h := canvas.Size(); w != 10 || h != 10 {
		t.Fatalf("Size() = %dx%d, want 10x10", w, h)
	}
}
