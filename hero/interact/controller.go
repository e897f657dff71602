package interact

import (
	"math"

	"particlehero/hero/particle"
	"particlehero/hero/physics"
	"particlehero/hero/quarkgl"
)

// Controller is the pointer/wheel state machine. It owns no state besides the
// drag anchor; everything else lives in the Scene it was given.
type Controller struct {
	cfg   Config
	scene *Scene

	dragging     bool
	lastX, lastY float64
}

// NewController binds a controller to scene and puts the scene in the front
// view preset.
func NewController(cfg Config, scene *Scene) *Controller {
	c := &Controller{cfg: cfg, scene: scene}
	c.Reset()
	scene.Pointer = FarAway
	return c
}

func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) Scene() *Scene  { return c.scene }
func (c *Controller) Dragging() bool { return c.dragging }

// PointerDown starts a drag at (x, y).
func (c *Controller) PointerDown(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// PointerMove rotates the scene while dragging and updates the repulsion
// center. pageScrollY is the page's vertical scroll offset: once the page has
// left the top, the pointer is over content below the surface and repulsion
// is switched off.
func (c *Controller) PointerMove(x, y, pageScrollY float64) {
	s := c.scene
	if c.dragging {
		s.RotY += (x - c.lastX) * c.cfg.DragSensitivity
		s.RotX += (y - c.lastY) * c.cfg.DragSensitivity
		s.RotX = quarkgl.Clamp(s.RotX, -math.Pi/2, math.Pi/2)
		c.lastX, c.lastY = x, y
	}

	if pageScrollY > 0 {
		s.Pointer = FarAway
		return
	}
	s.Pointer = Point{X: x, Y: y}
}

// PointerUp ends a drag.
func (c *Controller) PointerUp() {
	c.dragging = false
}

// Wheel feeds one wheel event with a signed delta (positive scrolls down and
// zooms out). It reports whether the page's default scroll must be suppressed.
//
// With the page scrolled away from the top the event is ignored entirely.
// At the top the delta always moves the zoom; the default scroll is suppressed
// unless the zoom has reached the extreme in the direction of travel, which
// hands the wheel back to the page.
func (c *Controller) Wheel(delta, pageScrollY float64) (preventDefault bool) {
	if pageScrollY > 0 {
		return false
	}

	s := c.scene
	s.AccumulatedScroll = quarkgl.Clamp(s.AccumulatedScroll+delta, 0, c.cfg.ScrollZoomRange)
	s.Zoom = c.cfg.ZoomAt(s.AccumulatedScroll)

	progress := c.cfg.progress(s.AccumulatedScroll)
	switch {
	case delta > 0:
		return progress < c.cfg.EscapeHigh
	case delta < 0:
		return progress > c.cfg.EscapeLow
	}
	return false
}

// Progress is the current scroll progress in [0, 1]: 0 at MaxZoom, 1 at MinZoom.
func (c *Controller) Progress() float64 {
	return c.cfg.progress(c.scene.AccumulatedScroll)
}

// Reset restores the front view: no rotation and the neutral zoom, with the
// accumulated scroll that produces it. Scrolling the page back to the top is
// the caller's job.
func (c *Controller) Reset() {
	s := c.scene
	s.RotX, s.RotY = 0, 0
	s.AccumulatedScroll = c.cfg.ScrollFor(c.cfg.NeutralZoom)
	s.Zoom = c.cfg.ZoomAt(s.AccumulatedScroll)
}

// Repel pushes p away from the pointer if its projection lies within the
// repulsion radius. It reports whether an impulse was applied.
//
// The strength falls off linearly from 1 at the pointer to 0 at the radius.
// The screen-space offset is carried back to object space through the inverse
// scene rotation so the particle flees along the direction the user sees.
func (c *Controller) Repel(p *particle.Particle, proj quarkgl.Projection) bool {
	s := c.scene
	r := c.cfg.RepelRadius
	if r <= 0 {
		return false
	}
	dx := proj.X - s.Pointer.X
	dy := proj.Y - s.Pointer.Y
	dist := math.Hypot(dx, dy)
	if dist >= r {
		return false
	}

	k := (r - dist) / r
	dir := quarkgl.LocalDirection(dx, dy, proj.Scale, s.RotX, s.RotY)
	physics.ApplyImpulse(p, dir.Mul(k*c.cfg.RepelForce))
	return true
}
