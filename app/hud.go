package app

import (
	"fmt"
	"image/color"

	"particlehero/internal/buildinfo"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	hudFont  = &proggy.TinySZ8pt7b
	hudColor = color.RGBA{R: 0xB3, G: 0x88, B: 0xFF, A: 0xFF}
)

func (a *App) hudLines() []string {
	s := a.scene
	return []string{
		"particlehero " + buildinfo.Short(),
		fmt.Sprintf("particles %d step %d", a.field.Len(), a.field.Step),
		fmt.Sprintf("zoom %.2fx rot %.2f %.2f", s.Zoom, s.RotX, s.RotY),
		fmt.Sprintf("page %.0f frame %d", a.pageScroll(), a.frames),
	}
}

// drawHUD writes the status lines in the top-left corner of the framebuffer.
func (a *App) drawHUD() {
	lh := int16(hudFont.GetYAdvance())
	if lh <= 0 {
		return
	}
	y := lh
	for _, line := range a.hudLines() {
		tinyfont.WriteLine(a.fb, hudFont, 4, y, line, hudColor)
		y += lh
	}
}
