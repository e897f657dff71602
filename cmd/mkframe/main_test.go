package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"particlehero/hero/glyph"
)

func TestMaskImage(t *testing.T) {
	m := glyph.NewMask(3, 2)
	m.Alpha[4] = 200

	img := maskImage(m)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 3x2", b)
	}
	if got := img.GrayAt(1, 1).Y; got != 200 {
		t.Fatalf("GrayAt(1,1) = %d, want 200", got)
	}
	if got := maskImage(nil).Bounds().Dx(); got != 0 {
		t.Fatalf("nil mask width = %d, want 0", got)
	}
}

func TestWritePNG(t *testing.T) {
	m := glyph.NewMask(4, 4)
	m.Alpha[0] = 0xFF
	path := filepath.Join(t.TempDir(), "mask.png")
	if err := writePNG(path, maskImage(m)); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xFFFF {
		t.Fatalf("pixel (0,0) = %#x, want 0xffff", r)
	}
}
