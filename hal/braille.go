package hal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dots dimmer than this stay off.
const brailleThreshold = 40

// Braille dot positions (col, row) → bit offset.
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type brailleRenderer struct {
	styles map[string]lipgloss.Style
	b      strings.Builder
	run    strings.Builder
}

func newBrailleRenderer() *brailleRenderer {
	return &brailleRenderer{styles: make(map[string]lipgloss.Style)}
}

func (br *brailleRenderer) style(hex string) lipgloss.Style {
	st, ok := br.styles[hex]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		br.styles[hex] = st
	}
	return st
}

// render draws an RGBA frame (w x h pixels) into cols x rows braille cells,
// one cell per 2x4 pixel block. offsetY shifts the frame up by that many
// pixels; rows past the frame are blank.
func (br *brailleRenderer) render(pix []byte, w, h, cols, rows, offsetY int) string {
	br.b.Reset()
	for row := 0; row < rows; row++ {
		if row > 0 {
			br.b.WriteByte('\n')
		}
		runHex := ""
		br.run.Reset()
		for col := 0; col < cols; col++ {
			pattern, hex := brailleCell(pix, w, h, col*2, row*4+offsetY)
			if pattern == 0 {
				hex = ""
			}
			if hex != runHex {
				br.flush(runHex)
				runHex = hex
			}
			br.run.WriteRune(rune(0x2800 + pattern))
		}
		br.flush(runHex)
	}
	return br.b.String()
}

func (br *brailleRenderer) flush(hex string) {
	if br.run.Len() == 0 {
		return
	}
	if hex == "" {
		br.b.WriteString(br.run.String())
	} else {
		br.b.WriteString(br.style(hex).Render(br.run.String()))
	}
	br.run.Reset()
}

// brailleCell returns the dot pattern of the 2x4 block at (x0, y0) and the
// average color of its lit dots.
func brailleCell(pix []byte, w, h, x0, y0 int) (uint, string) {
	var pattern uint
	var sr, sg, sb, n uint32
	for dx := 0; dx < 2; dx++ {
		x := x0 + dx
		if x < 0 || x >= w {
			continue
		}
		for dy := 0; dy < 4; dy++ {
			y := y0 + dy
			if y < 0 || y >= h {
				continue
			}
			i := (y*w + x) * 4
			if i+3 >= len(pix) {
				continue
			}
			r, g, b := pix[i], pix[i+1], pix[i+2]
			if luma(r, g, b) < brailleThreshold {
				continue
			}
			pattern |= 1 << brailleBits[dx][dy]
			sr += uint32(r)
			sg += uint32(g)
			sb += uint32(b)
			n++
		}
	}
	if n == 0 {
		return 0, ""
	}
	r, g, b := quantize(uint8(sr/n), uint8(sg/n), uint8(sb/n))
	return pattern, hexColor(r, g, b)
}
