package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"particlehero/hal"

	"tinygo.org/x/tinyfont"
)

// recoverStep turns a panic inside Step into an error, logs the stack and
// paints it on the framebuffer so a window host shows what went wrong.
func (a *App) recoverStep(err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()

	l := a.h.Logger()
	logLine(l, fmt.Sprintf("app: panic: %v", v))
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		logLine(l, line)
	}

	drawPanic(a.fb, v, stack)
	*err = fmt.Errorf("app: panic: %v", v)
}

func drawPanic(fb hal.Framebuffer, v any, stack []byte) {
	if fb == nil {
		return
	}
	img := fb.Image()
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0xFF, 0xFF, 0xFF, 0xFF
	}

	font := hudFont
	lineH := int16(font.GetYAdvance())
	_, outbox := tinyfont.LineWidth(font, "0")
	charW := int16(outbox)
	if charW <= 0 || lineH <= 0 {
		_ = fb.Present()
		return
	}

	lines := []string{"particlehero panic:", fmt.Sprintf("%v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	fg := color.RGBA{A: 0xFF}
	maxH := int16(fb.Height())
	cols := int16(fb.Width()) / charW
	if cols <= 0 {
		cols = 1
	}

	y := lineH
	for _, line := range lines {
		for len(line) > 0 {
			if y > maxH {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(fb, font, 0, y, chunk, fg)
			y += lineH
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = fb.Present()
}

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
