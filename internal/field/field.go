// Package field samples rectangular windows of the noise field into grids for
// rendering. The noise functions themselves are scalar; this package is just a
// caller that walks a grid, spreading rows across goroutines.
package field

import (
	"fmt"

	"github.com/dgravesa/go-parallel/parallel"

	"noisefield/noise"
)

// Grid is a row-major raster of noise samples.
type Grid struct {
	Width, Height int
	Values        []float64
}

// NewGrid allocates a zeroed grid.
func NewGrid(w, h int) *Grid {
	return &Grid{Width: w, Height: h, Values: make([]float64, w*h)}
}

// At returns the sample at cell (x, y).
func (g *Grid) At(x, y int) float64 {
	return g.Values[y*g.Width+x]
}

// Plane maps grid cells onto a 2D window through the noise field. Dim selects
// which evaluator runs: 1 ignores the vertical axis entirely, 3 and 4 hold the
// extra coordinates fixed at Z and W, which lets a viewer animate by sliding
// the slice offsets.
type Plane struct {
	Dim              int     // noise dimension, 1 to 4
	OriginX, OriginY float64 // world coordinate of cell (0, 0)
	Scale            float64 // world units per grid cell
	Z, W             float64 // slice offsets for 3D/4D
}

// At evaluates the noise field at grid cell (cx, cy).
func (p Plane) At(cx, cy int) float64 {
	x := p.OriginX + float64(cx)*p.Scale
	y := p.OriginY + float64(cy)*p.Scale
	switch p.Dim {
	case 1:
		return noise.Noise1D(x)
	case 2:
		return noise.Noise2D(x, y)
	case 3:
		return noise.Noise3D(x, y, p.Z)
	default:
		return noise.Noise4D(x, y, p.Z, p.W)
	}
}

// Render fills a w×h grid with samples of the plane, one row per parallel
// work item.
func Render(p Plane, w, h int) (*Grid, error) {
	if p.Dim < 1 || p.Dim > 4 {
		return nil, fmt.Errorf("invalid dimension %d (want 1-4)", p.Dim)
	}
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("invalid grid size %dx%d", w, h)
	}
	if p.Scale == 0 {
		return nil, fmt.Errorf("scale must be non-zero")
	}

	g := NewGrid(w, h)
	parallel.For(h, func(y, _ int) {
		row := g.Values[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			row[x] = p.At(x, y)
		}
	})
	return g, nil
}

// Histogram buckets the grid's samples over [-1, 1]. Values outside the range
// (possible in 3D/4D tails) land in the edge buckets.
func Histogram(g *Grid, bins int) []int {
	counts := make([]int, bins)
	for _, v := range g.Values {
		i := int((v + 1) / 2 * float64(bins))
		if i < 0 {
			i = 0
		}
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts
}
