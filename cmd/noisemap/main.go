package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"
	"strings"

	"noisefield/internal/field"
	"noisefield/internal/render"
)

func main() {
	dim := flag.Int("dim", 2, "noise dimension (1-4)")
	size := flag.String("size", "256x256", "output size as WxH")
	scale := flag.Float64("scale", 0.05, "world units per pixel")
	origin := flag.String("origin", "0,0", "world coordinate of the top-left pixel as X,Y")
	slice := flag.String("slice", "0", "slice offsets for 3D/4D as Z or Z,T")
	palette := flag.String("palette", "gray", "palette (gray, terrain)")
	out := flag.String("out", "", "output PNG file (default: ASCII preview to stdout)")
	flag.Parse()

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ox, oy, err := parsePair(*origin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -origin %q: %v\n", *origin, err)
		os.Exit(1)
	}

	z, t, err := parseSlice(*slice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -slice %q: %v\n", *slice, err)
		os.Exit(1)
	}

	pal, ok := render.PaletteByName(*palette)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown palette %q (available: gray, terrain)\n", *palette)
		os.Exit(1)
	}

	plane := field.Plane{
		Dim:     *dim,
		OriginX: ox,
		OriginY: oy,
		Scale:   *scale,
		Z:       z,
		W:       t,
	}

	fmt.Fprintf(os.Stderr, "Sampling %dx%d window of the %dD field (origin %.2f,%.2f scale %g)...\n",
		w, h, *dim, ox, oy, *scale)

	grid, err := field.Render(plane, w, h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		writeASCII(grid, pal)
	} else {
		if err := writePNG(*out, grid, pal); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *out)
	}

	printDistribution(grid)
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width %q", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height %q", parts[1])
	}
	return w, h, nil
}

func parsePair(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected X,Y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseSlice accepts "Z" or "Z,T".
func parseSlice(s string) (float64, float64, error) {
	parts := strings.SplitN(s, ",", 2)
	z, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 1 {
		return z, 0, nil
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return z, t, nil
}

// writeASCII prints the field to stdout using the palette's characters.
func writeASCII(g *field.Grid, pal render.Palette) {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(pal.Shade(g.At(x, y)).Ch)
		}
		sb.WriteByte('\n')
	}
	os.Stdout.WriteString(sb.String())
}

// writePNG encodes the field as a PNG using the palette's background colors.
func writePNG(path string, g *field.Grid, pal render.Palette) error {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := pal.Shade(g.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: c.BgR, G: c.BgG, B: c.BgB, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// printDistribution summarizes the sample distribution on stderr, in the
// spirit of a tile-count report: one bar per value bucket.
func printDistribution(g *field.Grid) {
	const bins = 16
	counts := field.Histogram(g, bins)
	total := len(g.Values)

	fmt.Fprintf(os.Stderr, "\nValue distribution (%d samples):\n", total)
	for i, c := range counts {
		lo := -1 + 2*float64(i)/bins
		hi := lo + 2.0/bins
		pct := float64(c) / float64(total) * 100
		bar := strings.Repeat("#", int(pct/2))
		fmt.Fprintf(os.Stderr, "  [%+.3f, %+.3f) %6.2f%% %s\n", lo, hi, pct, bar)
	}
}
