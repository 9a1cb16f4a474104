package render

// A Palette maps a noise sample, nominally in [-1, 1], to a terminal cell.
type Palette interface {
	Shade(v float64) Cell
	Name() string
}

// clamp01 squeezes a sample from [-1, 1] into [0, 1], clamping the rare 3D/4D
// values that land slightly outside.
func clamp01(v float64) float64 {
	v = (v + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GrayPalette renders samples as a plain luminance ramp.
type GrayPalette struct{}

func (GrayPalette) Name() string { return "gray" }

func (GrayPalette) Shade(v float64) Cell {
	l := uint8(clamp01(v) * 255)
	return Cell{Ch: ' ', BgR: l, BgG: l, BgB: l}
}

// terrainBand is one elevation band of the terrain ramp.
type terrainBand struct {
	max    float64
	ch     rune
	fg, bg [3]uint8
}

// terrainBands reads the field as elevation, low to high. Thresholds follow
// the wilderness classifier: water below, a thin sand line at the shore,
// grass and forest through the midrange, rock and snow on top.
var terrainBands = []terrainBand{
	{-0.40, '~', [3]uint8{60, 90, 180}, [3]uint8{20, 40, 120}},    // deep water
	{-0.18, '~', [3]uint8{90, 140, 220}, [3]uint8{40, 80, 170}},   // water
	{-0.08, '.', [3]uint8{200, 180, 120}, [3]uint8{180, 160, 90}}, // sand
	{0.20, '.', [3]uint8{70, 160, 70}, [3]uint8{50, 120, 50}},     // grass
	{0.45, 'T', [3]uint8{30, 110, 40}, [3]uint8{25, 80, 35}},      // forest
	{0.70, '^', [3]uint8{150, 150, 150}, [3]uint8{110, 110, 110}}, // rock
	{2.00, '*', [3]uint8{255, 255, 255}, [3]uint8{220, 220, 230}}, // snow
}

// TerrainPalette renders samples as elevation-banded terrain.
type TerrainPalette struct{}

func (TerrainPalette) Name() string { return "terrain" }

func (TerrainPalette) Shade(v float64) Cell {
	for _, b := range terrainBands {
		if v < b.max {
			return Cell{
				Ch:  b.ch,
				FgR: b.fg[0], FgG: b.fg[1], FgB: b.fg[2],
				BgR: b.bg[0], BgG: b.bg[1], BgB: b.bg[2],
			}
		}
	}
	last := terrainBands[len(terrainBands)-1]
	return Cell{
		Ch:  last.ch,
		FgR: last.fg[0], FgG: last.fg[1], FgB: last.fg[2],
		BgR: last.bg[0], BgG: last.bg[1], BgB: last.bg[2],
	}
}

// PaletteByName looks up a palette for CLI/session switching. Returns false
// for unknown names.
func PaletteByName(name string) (Palette, bool) {
	switch name {
	case "gray":
		return GrayPalette{}, true
	case "terrain":
		return TerrainPalette{}, true
	}
	return nil, false
}
