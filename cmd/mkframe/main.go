// Command mkframe renders the particle hero headless for a number of ticks
// and writes the last frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"particlehero/app"
	"particlehero/hal"
	"particlehero/hero/glyph"
	"particlehero/internal/buildinfo"
)

func main() {
	cfg := app.DefaultConfig()
	cfg.Seed = 1

	outPath := flag.String("out", "frame.png", "Output PNG path.")
	maskPath := flag.String("mask", "", "Also write the glyph mask alpha as a grayscale PNG.")
	width := flag.Int("w", 960, "Surface width in device pixels.")
	height := flag.Int("h", 540, "Surface height in device pixels.")
	dpr := flag.Float64("dpr", 1, "Device pixel ratio.")
	ticks := flag.Int("ticks", 180, "Frames to simulate before writing.")
	wheel := flag.Float64("wheel", 0, "Wheel delta applied before the first frame (positive zooms out).")
	dragX := flag.Float64("drag-x", 0, "Horizontal drag in device pixels applied before the first frame.")
	dragY := flag.Float64("drag-y", 0, "Vertical drag in device pixels applied before the first frame.")
	version := flag.Bool("version", false, "Print the build version and exit.")
	flag.StringVar(&cfg.Text, "text", cfg.Text, "Text to render.")
	flag.StringVar(&cfg.Typeface, "typeface", cfg.Typeface, "Typeface: gobold or proggy.")
	flag.Float64Var(&cfg.DensityScale, "density", cfg.DensityScale, "Sampling density multiplier.")
	flag.Float64Var(&cfg.SizeScale, "size", cfg.SizeScale, "Particle size multiplier.")
	flag.BoolVar(&cfg.Shade, "shade", cfg.Shade, "Darken face-layer particles.")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the status overlay.")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based).")
	flag.Parse()

	if *version {
		fmt.Println("mkframe", buildinfo.Short())
		return
	}
	if *width <= 0 || *height <= 0 || *ticks < 0 {
		fatalf("usage: mkframe [-w 960 -h 540] [-ticks 180] [-out frame.png] [-mask mask.png]")
	}

	h := hal.NewHeadless(*width, *height, *dpr)
	a, err := app.New(h, cfg)
	if err != nil {
		fatalf("init: %v", err)
	}

	if *dragX != 0 || *dragY != 0 {
		cx, cy := float64(*width)/2, float64(*height)/2
		h.Push(hal.Event{Kind: hal.EventPointerDown, X: cx, Y: cy})
		h.Push(hal.Event{Kind: hal.EventPointerMove, X: cx + *dragX, Y: cy + *dragY})
		h.Push(hal.Event{Kind: hal.EventPointerUp, X: cx + *dragX, Y: cy + *dragY})
		// Keep the pointer from repelling the settled text.
		h.Push(hal.Event{Kind: hal.EventPointerMove, X: -9999, Y: -9999})
	}
	if *wheel != 0 {
		h.Push(hal.Event{Kind: hal.EventWheel, DeltaY: *wheel})
	}

	n := *ticks
	if n == 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if err := a.Step(); err != nil {
			fatalf("step %d: %v", i, err)
		}
	}

	frame := &image.RGBA{
		Pix:    h.Frame(nil),
		Stride: *width * 4,
		Rect:   image.Rect(0, 0, *width, *height),
	}
	if err := writePNG(*outPath, frame); err != nil {
		fatalf("write frame: %v", err)
	}
	fmt.Printf("wrote %s: %d particles, %d frames\n", *outPath, a.Field().Len(), a.Frames())

	if *maskPath != "" {
		if err := writePNG(*maskPath, maskImage(a.Mask())); err != nil {
			fatalf("write mask: %v", err)
		}
		fmt.Printf("wrote %s\n", *maskPath)
	}
}

// maskImage converts the glyph mask coverage to a grayscale image.
func maskImage(m *glyph.Mask) *image.Gray {
	if m == nil {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
	img := image.NewGray(image.Rect(0, 0, m.W, m.H))
	copy(img.Pix, m.Alpha)
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
