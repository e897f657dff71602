package glyph

import "testing"

func inkCount(m *Mask, threshold uint8) int {
	n := 0
	for _, a := range m.Alpha {
		if a > threshold {
			n++
		}
	}
	return n
}

func TestGoBoldMeasure(t *testing.T) {
	ot, err := GoBold()
	if err != nil {
		t.Fatalf("GoBold: %v", err)
	}
	m, ok := ot.Measure("AB", 40)
	if !ok {
		t.Fatal("Measure ok = false, want true")
	}
	if m.Width <= 0 || m.Ascent <= 0 {
		t.Fatalf("Measure = %+v, want positive width and ascent", m)
	}
	wide, _ := ot.Measure("ABAB", 40)
	if wide.Width <= m.Width {
		t.Fatalf("longer text not wider: %v <= %v", wide.Width, m.Width)
	}
}

func TestGoBoldRasterize(t *testing.T) {
	m := Rasterize(Default(), "AB", 200, 100, DefaultOptions())
	if inkCount(m, 150) == 0 {
		t.Fatal("no ink above threshold")
	}
	// The text is centered: the outer columns stay empty.
	for y := 0; y < m.H; y++ {
		if m.AlphaAt(0, y) != 0 || m.AlphaAt(m.W-1, y) != 0 {
			t.Fatalf("ink at the surface edge, row %d", y)
		}
	}
}

func TestProggyMeasureAndDraw(t *testing.T) {
	b := Proggy()
	small, ok := b.Measure("AB", 13)
	if !ok {
		t.Fatal("Measure ok = false, want true")
	}
	big, _ := b.Measure("AB", 52)
	if big.Width <= small.Width {
		t.Fatalf("Measure does not scale: %v <= %v", big.Width, small.Width)
	}

	m := Rasterize(b, "AB", 200, 100, DefaultOptions())
	if inkCount(m, 150) == 0 {
		t.Fatal("no ink above threshold")
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("proggy").(*Bitmap); !ok {
		t.Fatalf("ByName(proggy) is not a bitmap typeface")
	}
	if _, ok := ByName("gobold").(*OpenType); !ok {
		t.Fatalf("ByName(gobold) is not an OpenType typeface")
	}
}
