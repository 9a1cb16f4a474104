package render

import (
	"strings"
	"testing"

	"noisefield/internal/field"
)

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0.5},
		{1, 1},
		// 3D/4D tail values clamp to the ends of the ramp.
		{-1.3, 0},
		{1.3, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGrayPaletteMonotonic(t *testing.T) {
	p := GrayPalette{}
	prev := p.Shade(-1).BgR
	for v := -0.9; v <= 1.0; v += 0.1 {
		l := p.Shade(v).BgR
		if l < prev {
			t.Fatalf("gray ramp not monotonic at v=%v: %d < %d", v, l, prev)
		}
		prev = l
	}
}

func TestTerrainPaletteBands(t *testing.T) {
	p := TerrainPalette{}
	tests := []struct {
		v    float64
		want rune
	}{
		{-0.9, '~'}, // deep water
		{-0.3, '~'}, // water
		{-0.1, '.'}, // sand
		{0.0, '.'},  // grass
		{0.3, 'T'},  // forest
		{0.6, '^'},  // rock
		{0.9, '*'},  // snow
		{1.5, '*'},  // above-range samples stay snow
	}
	for _, tt := range tests {
		if got := p.Shade(tt.v).Ch; got != tt.want {
			t.Errorf("Shade(%v).Ch = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPaletteByName(t *testing.T) {
	for _, name := range []string{"gray", "terrain"} {
		p, ok := PaletteByName(name)
		if !ok || p.Name() != name {
			t.Errorf("PaletteByName(%q) = %v, %v", name, p, ok)
		}
	}
	if _, ok := PaletteByName("plasma"); ok {
		t.Error("PaletteByName accepted unknown palette")
	}
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		termW, termH int
		wantW, wantH int
	}{
		{80, 24, 40, 23},
		{81, 24, 40, 23},
		{1, 1, 1, 1}, // never collapses to zero
	}
	for _, tt := range tests {
		w, h := GridSize(tt.termW, tt.termH)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("GridSize(%d, %d) = %d, %d, want %d, %d",
				tt.termW, tt.termH, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestEngineDiffing(t *testing.T) {
	const termW, termH = 20, 6
	g := field.NewGrid(10, 5)
	e := NewEngine(termW, termH)
	pal := GrayPalette{}

	first := e.Render(g, pal, "status", termW, termH)
	if first == "" {
		t.Fatal("first frame emitted nothing")
	}
	if !strings.HasSuffix(first, Reset) {
		t.Error("frame output missing trailing reset")
	}

	// Identical frame: nothing changed, nothing emitted.
	second := e.Render(g, pal, "status", termW, termH)
	if second != "" {
		t.Fatalf("identical frame emitted %d bytes", len(second))
	}

	// One changed sample repaints only that cell's columns.
	g.Values[2*g.Width+3] = 1.0
	third := e.Render(g, pal, "status", termW, termH)
	if third == "" {
		t.Fatal("changed frame emitted nothing")
	}
	if len(third) >= len(first) {
		t.Errorf("single-cell change emitted %d bytes, first frame was %d", len(third), len(first))
	}

	// Resizing forces a full repaint.
	resized := e.Render(g, pal, "status", termW+2, termH)
	if resized == "" {
		t.Fatal("resize frame emitted nothing")
	}
}
