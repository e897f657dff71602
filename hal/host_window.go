//go:build cgo

package hal

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"particlehero/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

var pageColor = color.RGBA{R: 0x12, G: 0x10, B: 0x18, A: 0xFF}

// RunWindow starts a resizable desktop window that displays the framebuffer
// and forwards pointer, touch and wheel input. It blocks until the window
// closes.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = defaultWidth, defaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "Particle Hero"
	}

	h := newHostHAL(cfg.Width, cfg.Height, 1, os.Stdout)
	step, err := newApp(h)
	if err != nil {
		h.logger.WriteLineString("window: " + err.Error())
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type hostGame struct {
	h       *hostHAL
	pointer hostPointer
	step    func() error

	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pointer.poll(g.h.input)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.scratch = fb.snapshot(g.scratch)
	g.fbImg.WritePixels(g.scratch)

	// The hero sits at the top of the page and scrolls out with it.
	scroll := math.Round(g.h.page.ScrollY())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -scroll)
	screen.DrawImage(g.fbImg, op)

	if scroll > 0 {
		top := h - int(scroll)
		below := screen.SubImage(image.Rect(0, top, w, h)).(*ebiten.Image)
		below.Fill(pageColor)
		ebitenutil.DebugPrintAt(screen, "scroll up to return to the hero", 16, top+16)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	w := int(math.Ceil(float64(outsideWidth) * scale))
	h := int(math.Ceil(float64(outsideHeight) * scale))
	g.h.resize(w, h, scale)
	return w, h
}
