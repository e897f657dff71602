package app

import (
	"fmt"
	"math/rand"
	"time"

	"particlehero/hal"
	"particlehero/hero/compositor"
	"particlehero/hero/glyph"
	"particlehero/hero/interact"
	"particlehero/hero/particle"
	"particlehero/hero/physics"
	"particlehero/hero/quarkgl"
)

// App owns the particle field and scene of one surface. One Step renders one
// frame; all methods must be called from the host's update goroutine.
type App struct {
	h   hal.HAL
	cfg Config
	fb  hal.Framebuffer
	tf  glyph.Typeface
	rng *rand.Rand

	text  string
	dirty bool

	mask   *glyph.Mask
	field  *particle.Field
	builtW int
	builtH int

	scene  interact.Scene
	ctl    *interact.Controller
	cam    quarkgl.Camera
	comp   *compositor.Compositor
	canvas *compositor.RGBACanvas

	frames uint64
}

// New initializes the app on h's framebuffer. It returns hal.ErrNoSurface if
// the host has none. The field is built on the first Step.
func New(h hal.HAL, cfg Config) (*App, error) {
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		logLine(h.Logger(), "app: "+hal.ErrNoSurface.Error())
		return nil, hal.ErrNoSurface
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		h:     h,
		cfg:   cfg,
		fb:    fb,
		tf:    glyph.ByName(cfg.Typeface),
		rng:   rand.New(rand.NewSource(seed)),
		text:  cfg.Text,
		dirty: true,
		cam:   cfg.camera(),
		comp:  compositor.New(),
	}
	a.ctl = interact.NewController(cfg.interactConfig(), &a.scene)
	a.logf("app: %dx%d@%.2g seed %d", fb.Width(), fb.Height(), fb.DeviceScale(), seed)
	return a, nil
}

// Factory adapts New to the host runners.
func Factory(cfg Config) func(hal.HAL) (func() error, error) {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}
}

func (a *App) Config() Config         { return a.cfg }
func (a *App) Text() string           { return a.text }
func (a *App) Scene() interact.Scene  { return a.scene }
func (a *App) Field() *particle.Field { return a.field }
func (a *App) Mask() *glyph.Mask      { return a.mask }
func (a *App) Frames() uint64         { return a.frames }

// SetText replaces the displayed text. The field is rebuilt on the next Step.
func (a *App) SetText(s string) {
	if s == a.text {
		return
	}
	a.text = s
	a.dirty = true
}

// Step drains pending input, rebuilds the field if the surface changed,
// advances the simulation one tick and presents the frame.
func (a *App) Step() (err error) {
	defer a.recoverStep(&err)

	a.drainInput()
	if a.dirty || a.fb.Width() != a.builtW || a.fb.Height() != a.builtH {
		a.rebuild()
	}
	a.render()
	a.frames++
	return a.fb.Present()
}

func (a *App) drainInput() {
	in := a.h.Input()
	if in == nil {
		return
	}
	ch := in.Events()
	for {
		select {
		case ev := <-ch:
			a.HandleEvent(ev)
		default:
			return
		}
	}
}

func (a *App) pageScroll() float64 {
	if p := a.h.Page(); p != nil {
		return p.ScrollY()
	}
	return 0
}

// HandleEvent applies one host event to the scene or the page.
func (a *App) HandleEvent(ev hal.Event) {
	switch ev.Kind {
	case hal.EventPointerDown:
		a.ctl.PointerDown(ev.X, ev.Y)
	case hal.EventPointerMove:
		a.ctl.PointerMove(ev.X, ev.Y, a.pageScroll())
	case hal.EventPointerUp:
		a.ctl.PointerUp()
	case hal.EventWheel:
		if !a.ctl.Wheel(ev.DeltaY, a.pageScroll()) {
			if p := a.h.Page(); p != nil {
				p.ScrollBy(ev.DeltaY)
			}
		}
	case hal.EventResize:
		a.dirty = true
	case hal.EventReset:
		a.ctl.Reset()
		if p := a.h.Page(); p != nil {
			p.ScrollTo(0)
		}
		a.logf("app: view reset")
	}
}

// rebuild rasterizes the text at the current surface size and replaces the
// field wholesale. Scene state is kept.
func (a *App) rebuild() {
	w, h := a.fb.Width(), a.fb.Height()
	a.mask = glyph.Rasterize(a.tf, a.text, w, h, a.cfg.glyphOptions())
	a.field = particle.Build(a.mask, a.cfg.buildConfig(a.fb.DeviceScale()), a.rng)
	a.builtW, a.builtH = w, h
	a.dirty = false
	a.canvas = compositor.NewRGBACanvas(a.fb.Image())
	a.logf("app: field %d particles, %dx%d step %d", a.field.Len(), w, h, a.field.Step)
}

func (a *App) render() {
	if a.canvas == nil || a.canvas.Image() != a.fb.Image() {
		a.canvas = compositor.NewRGBACanvas(a.fb.Image())
	}

	s := &a.scene
	rot := quarkgl.Rotation(s.RotX, s.RotY)
	cx, cy := float64(a.builtW)/2, float64(a.builtH)/2

	a.comp.Reset()
	ps := a.field.Particles
	for i := range ps {
		p := &ps[i]
		physics.Integrate(p, a.cfg.SpringDivisor)
		proj := a.cam.Project(rot.MulV3(p.Pos), s.Zoom, cx, cy)
		a.ctl.Repel(p, proj)
		a.comp.Add(p, proj)
	}
	a.comp.Draw(a.canvas)

	if a.cfg.HUD {
		a.drawHUD()
	}
}

func (a *App) logf(format string, args ...any) {
	logLine(a.h.Logger(), fmt.Sprintf(format, args...))
}

func logLine(l hal.Logger, s string) {
	if l != nil {
		l.WriteLineString(s)
	}
}
