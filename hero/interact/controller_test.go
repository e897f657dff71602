package interact

import (
	"math"
	"math/rand"
	"testing"

	"particlehero/hero/particle"
	"particlehero/hero/quarkgl"
)

func newTestController() (*Controller, *Scene) {
	var s Scene
	return NewController(DefaultConfig(), &s), &s
}

func TestNewControllerFrontView(t *testing.T) {
	c, s := newTestController()
	if s.RotX != 0 || s.RotY != 0 {
		t.Fatalf("rotation = (%v, %v), want (0, 0)", s.RotX, s.RotY)
	}
	if math.Abs(s.Zoom-1) > 1e-12 {
		t.Fatalf("Zoom = %v, want 1", s.Zoom)
	}
	want := (4.0 - 1.0) / 3.5 * 1000
	if math.Abs(s.AccumulatedScroll-want) > 1e-9 {
		t.Fatalf("AccumulatedScroll = %v, want %v", s.AccumulatedScroll, want)
	}
	if s.Pointer != FarAway {
		t.Fatalf("Pointer = %+v, want FarAway", s.Pointer)
	}
	if c.Dragging() {
		t.Fatal("Dragging() = true before any pointer down")
	}
}

func TestZoomEndpointsAndMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ZoomAt(0); got != cfg.MaxZoom {
		t.Fatalf("ZoomAt(0) = %v, want %v", got, cfg.MaxZoom)
	}
	if got := cfg.ZoomAt(cfg.ScrollZoomRange); got != cfg.MinZoom {
		t.Fatalf("ZoomAt(range) = %v, want %v", got, cfg.MinZoom)
	}
	prev := cfg.ZoomAt(0)
	for s := 1.0; s <= cfg.ScrollZoomRange; s += 7 {
		z := cfg.ZoomAt(s)
		if z > prev {
			t.Fatalf("ZoomAt(%v) = %v > ZoomAt(previous) = %v", s, z, prev)
		}
		prev = z
	}
}

func TestScrollForInvertsZoomAt(t *testing.T) {
	cfg := DefaultConfig()
	for _, z := range []float64{0.5, 1, 2.25, 4} {
		if got := cfg.ZoomAt(cfg.ScrollFor(z)); math.Abs(got-z) > 1e-12 {
			t.Fatalf("ZoomAt(ScrollFor(%v)) = %v", z, got)
		}
	}
}

func TestDragRotatesAndClamps(t *testing.T) {
	c, s := newTestController()
	c.PointerDown(100, 100)
	c.PointerMove(140, 110, 0)
	if math.Abs(s.RotY-0.2) > 1e-12 || math.Abs(s.RotX-0.05) > 1e-12 {
		t.Fatalf("rotation = (%v, %v), want (0.05, 0.2)", s.RotX, s.RotY)
	}

	rng := rand.New(rand.NewSource(3))
	x, y := 140.0, 110.0
	for i := 0; i < 2000; i++ {
		x += (rng.Float64() - 0.5) * 400
		y += (rng.Float64() - 0.3) * 400
		c.PointerMove(x, y, 0)
		if s.RotX < -math.Pi/2 || s.RotX > math.Pi/2 {
			t.Fatalf("RotX = %v escaped [-π/2, π/2] at step %d", s.RotX, i)
		}
	}

	c.PointerMove(0, 1e6, 0)
	if s.RotX != math.Pi/2 {
		t.Fatalf("RotX = %v, want π/2", s.RotX)
	}
	c.PointerMove(-1e6, 1e6, 0)
	if s.RotY > -1000 {
		t.Fatalf("RotY = %v, want unbounded negative", s.RotY)
	}
}

func TestMoveWithoutDragDoesNotRotate(t *testing.T) {
	c, s := newTestController()
	c.PointerDown(0, 0)
	c.PointerUp()
	c.PointerMove(500, 500, 0)
	if s.RotX != 0 || s.RotY != 0 {
		t.Fatalf("rotation = (%v, %v) after move without drag", s.RotX, s.RotY)
	}
	if s.Pointer != (Point{X: 500, Y: 500}) {
		t.Fatalf("Pointer = %+v, want (500, 500)", s.Pointer)
	}
}

func TestPointerFarAwayWhenPageScrolled(t *testing.T) {
	c, s := newTestController()
	c.PointerMove(10, 10, 0)
	c.PointerMove(20, 20, 35)
	if s.Pointer != FarAway {
		t.Fatalf("Pointer = %+v, want FarAway", s.Pointer)
	}
}

func TestWheelAccumulatesAndClamps(t *testing.T) {
	c, s := newTestController()
	s.AccumulatedScroll = 0

	if !c.Wheel(250, 0) {
		t.Fatal("Wheel(250) did not suppress page scroll")
	}
	if s.AccumulatedScroll != 250 {
		t.Fatalf("AccumulatedScroll = %v, want 250", s.AccumulatedScroll)
	}
	if want := 4 - 3.5*0.25; math.Abs(s.Zoom-want) > 1e-12 {
		t.Fatalf("Zoom = %v, want %v", s.Zoom, want)
	}

	c.Wheel(-10000, 0)
	if s.AccumulatedScroll != 0 || s.Zoom != 4 {
		t.Fatalf("after big negative wheel: scroll %v zoom %v, want 0 and 4", s.AccumulatedScroll, s.Zoom)
	}
	c.Wheel(10000, 0)
	if s.AccumulatedScroll != 1000 || s.Zoom != 0.5 {
		t.Fatalf("after big positive wheel: scroll %v zoom %v, want 1000 and 0.5", s.AccumulatedScroll, s.Zoom)
	}
}

func TestWheelEscapeAtMinZoom(t *testing.T) {
	c, s := newTestController()
	c.Wheel(5000, 0)
	if s.Zoom != c.Config().MinZoom {
		t.Fatalf("Zoom = %v, want MinZoom", s.Zoom)
	}
	if c.Wheel(100, 0) {
		t.Fatal("Wheel at MinZoom suppressed page scroll, want passthrough")
	}
	// Scrolling back up is captured again.
	if !c.Wheel(-100, 0) {
		t.Fatal("Wheel(-100) at MinZoom did not suppress page scroll")
	}
}

func TestWheelEscapeAtMaxZoom(t *testing.T) {
	c, s := newTestController()
	c.Wheel(-5000, 0)
	if s.Zoom != c.Config().MaxZoom {
		t.Fatalf("Zoom = %v, want MaxZoom", s.Zoom)
	}
	if c.Wheel(-100, 0) {
		t.Fatal("Wheel up at MaxZoom suppressed page scroll, want passthrough")
	}
}

func TestWheelEscapeThresholdConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EscapeHigh = 0.5
	var s Scene
	c := NewController(cfg, &s)
	s.AccumulatedScroll = 0
	c.Wheel(600, 0)
	if c.Wheel(1, 0) {
		t.Fatal("Wheel past EscapeHigh=0.5 suppressed page scroll")
	}
}

func TestWheelIgnoredWhenPageScrolled(t *testing.T) {
	c, s := newTestController()
	before := *s
	if c.Wheel(300, 1) {
		t.Fatal("Wheel with page scrolled suppressed page scroll")
	}
	if *s != before {
		t.Fatalf("scene changed: %+v, want %+v", *s, before)
	}
}

func TestReset(t *testing.T) {
	c, s := newTestController()
	c.PointerDown(0, 0)
	c.PointerMove(100, 100, 0)
	c.Wheel(-700, 0)
	c.Reset()
	if s.RotX != 0 || s.RotY != 0 || math.Abs(s.Zoom-1) > 1e-12 {
		t.Fatalf("after Reset: rot (%v, %v) zoom %v", s.RotX, s.RotY, s.Zoom)
	}
	if got := c.Config().ZoomAt(s.AccumulatedScroll); got != s.Zoom {
		t.Fatalf("Zoom %v inconsistent with accumulated scroll (%v)", s.Zoom, got)
	}
}

func particleAt(x, y float64) particle.Particle {
	return particle.Particle{Pos: quarkgl.V3(x, y, 0), Target: quarkgl.V3(x, y, 0), Damping: 0.95}
}

func TestRepelPushesAway(t *testing.T) {
	c, s := newTestController()
	cam := quarkgl.Camera{FOV: 1200, BaseZ: 1400}
	p := particleAt(10, 0)
	proj := cam.Project(quarkgl.Rotate(p.Pos, s.RotX, s.RotY), s.Zoom, 0, 0)

	c.PointerMove(proj.X-30, proj.Y, 0)
	if !c.Repel(&p, proj) {
		t.Fatal("Repel() = false inside the radius")
	}
	if p.Vel.X <= 0 || math.Abs(p.Vel.Y) > 1e-12 {
		t.Fatalf("Vel = %+v, want pushed along +X", p.Vel)
	}
	want := (90.0 - 30.0) / 90.0 * 2.0
	if math.Abs(p.Vel.X-want) > 1e-9 {
		t.Fatalf("Vel.X = %v, want %v", p.Vel.X, want)
	}
}

func TestRepelOutsideRadius(t *testing.T) {
	c, s := newTestController()
	cam := quarkgl.Camera{FOV: 1200, BaseZ: 1400}
	p := particleAt(0, 0)
	proj := cam.Project(p.Pos, s.Zoom, 0, 0)
	c.PointerMove(200, 0, 0)
	if c.Repel(&p, proj) {
		t.Fatal("Repel() = true outside the radius")
	}
	if p.Vel != (quarkgl.Vec3{}) {
		t.Fatalf("Vel = %+v, want zero", p.Vel)
	}
}

func TestRepelDisabledWhilePageScrolled(t *testing.T) {
	c, s := newTestController()
	cam := quarkgl.Camera{FOV: 1200, BaseZ: 1400}
	p := particleAt(5, 5)
	proj := cam.Project(p.Pos, s.Zoom, 400, 300)

	// Sweep the pointer across the particle with the page scrolled.
	for x := proj.X - 50; x <= proj.X+50; x += 5 {
		c.PointerMove(x, proj.Y, 120)
		c.Repel(&p, proj)
	}
	if p.Vel != (quarkgl.Vec3{}) {
		t.Fatalf("Vel = %+v, want unchanged", p.Vel)
	}
}

func TestRepelOnPointerIsFinite(t *testing.T) {
	c, s := newTestController()
	p := particleAt(0, 0)
	proj := quarkgl.Projection{X: 50, Y: 50, Depth: 1400, Scale: 0}
	s.Pointer = Point{X: 50, Y: 50}
	if !c.Repel(&p, proj) {
		t.Fatal("Repel() = false at the pointer")
	}
	if math.IsNaN(p.Vel.X) || math.IsNaN(p.Vel.Y) || math.IsNaN(p.Vel.Z) {
		t.Fatalf("Vel = %+v, contains NaN", p.Vel)
	}
}
