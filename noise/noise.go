// Package noise computes deterministic gradient (Perlin) noise over 1 to 4
// dimensions. The same coordinate always yields the same value, nearby
// coordinates vary smoothly, and the field repeats every 256 units along each
// axis. All functions are pure and safe for concurrent use; there is no state
// beyond the fixed permutation table.
//
// Values are nominally in [-1, 1]: Noise1D stays within [-0.5, 0.5], Noise2D
// within [-1, 1], and the 3D/4D gradient sets can exceed ±1 by a small margin
// at rare gradient alignments. Outputs are not rescaled.
package noise

import "math"

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3. First and second
// derivatives vanish at t=0 and t=1, which is what keeps cell boundaries
// invisible in the output.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// lattice splits a coordinate into its lattice cell index, masked to 8 bits,
// and the fractional offset into the cell. The mask is why the field has
// period 256. A non-finite coordinate maps to cell 0; its fractional part is
// NaN and propagates through the arithmetic, so no table index can ever fall
// outside [0, 511].
func lattice(c float64) (int, float64) {
	f := math.Floor(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, c - f
	}
	return int(f) & 255, c - f
}

// grad1 picks one of the two 1D gradients (±1) and applies it to the offset.
func grad1(hash int, x float64) float64 {
	if hash&1 != 0 {
		return -x
	}
	return x
}

// grad2 picks one of the four diagonal gradients of the unit square and
// returns its dot product with (x, y).
func grad2(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// grad3 picks one of 12 gradients (the edge midpoints of a cube, folded into
// 16 hash slots) and returns its dot product with (x, y, z). The h==12 and
// h==14 cases reuse x so the 16 slots cover the 12 directions evenly.
func grad3(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// grad4 extends grad3 to the 32 gradient directions of a 4-cube: the low five
// hash bits select three of the four offsets by range, with independent signs.
func grad4(hash int, x, y, z, t float64) float64 {
	h := hash & 31
	u := x
	if h >= 24 {
		u = y
	}
	v := y
	if h >= 16 {
		v = z
	}
	w := z
	if h >= 8 {
		w = t
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	if h&4 != 0 {
		w = -w
	}
	return u + v + w
}

// Noise1D returns the gradient noise value at x.
func Noise1D(x float64) float64 {
	ix, fx := lattice(x)
	u := fade(fx)
	return lerp(u, grad1(perm[ix], fx), grad1(perm[ix+1], fx-1))
}

// Noise2D returns the gradient noise value at (x, y).
func Noise2D(x, y float64) float64 {
	ix, fx := lattice(x)
	iy, fy := lattice(y)

	u := fade(fx)
	v := fade(fy)

	// Hash the four cell corners, reusing the x lookup for both y rows.
	a := perm[ix] + iy
	b := perm[ix+1] + iy

	return lerp(v,
		lerp(u, grad2(perm[a], fx, fy), grad2(perm[b], fx-1, fy)),
		lerp(u, grad2(perm[a+1], fx, fy-1), grad2(perm[b+1], fx-1, fy-1)))
}

// Noise3D returns the gradient noise value at (x, y, z).
func Noise3D(x, y, z float64) float64 {
	ix, fx := lattice(x)
	iy, fy := lattice(y)
	iz, fz := lattice(z)

	u := fade(fx)
	v := fade(fy)
	w := fade(fz)

	// Corner hashes share lookup prefixes: a/b cover the x choice, aa..bb
	// add the y choice, and the z choice is the final +1 at the leaves.
	a := perm[ix] + iy
	b := perm[ix+1] + iy
	aa := perm[a] + iz
	ab := perm[a+1] + iz
	ba := perm[b] + iz
	bb := perm[b+1] + iz

	return lerp(w,
		lerp(v,
			lerp(u, grad3(perm[aa], fx, fy, fz), grad3(perm[ba], fx-1, fy, fz)),
			lerp(u, grad3(perm[ab], fx, fy-1, fz), grad3(perm[bb], fx-1, fy-1, fz))),
		lerp(v,
			lerp(u, grad3(perm[aa+1], fx, fy, fz-1), grad3(perm[ba+1], fx-1, fy, fz-1)),
			lerp(u, grad3(perm[ab+1], fx, fy-1, fz-1), grad3(perm[bb+1], fx-1, fy-1, fz-1))))
}

// Noise4D returns the gradient noise value at (x, y, z, t).
func Noise4D(x, y, z, t float64) float64 {
	ix, fx := lattice(x)
	iy, fy := lattice(y)
	iz, fz := lattice(z)
	it, ft := lattice(t)

	u := fade(fx)
	v := fade(fy)
	w := fade(fz)
	s := fade(ft)

	a := perm[ix] + iy
	b := perm[ix+1] + iy
	aa := perm[a] + iz
	ab := perm[a+1] + iz
	ba := perm[b] + iz
	bb := perm[b+1] + iz
	aaa := perm[aa] + it
	aab := perm[aa+1] + it
	aba := perm[ab] + it
	abb := perm[ab+1] + it
	baa := perm[ba] + it
	bab := perm[ba+1] + it
	bba := perm[bb] + it
	bbb := perm[bb+1] + it

	return lerp(s,
		lerp(w,
			lerp(v,
				lerp(u, grad4(perm[aaa], fx, fy, fz, ft), grad4(perm[baa], fx-1, fy, fz, ft)),
				lerp(u, grad4(perm[aba], fx, fy-1, fz, ft), grad4(perm[bba], fx-1, fy-1, fz, ft))),
			lerp(v,
				lerp(u, grad4(perm[aab], fx, fy, fz-1, ft), grad4(perm[bab], fx-1, fy, fz-1, ft)),
				lerp(u, grad4(perm[abb], fx, fy-1, fz-1, ft), grad4(perm[bbb], fx-1, fy-1, fz-1, ft)))),
		lerp(w,
			lerp(v,
				lerp(u, grad4(perm[aaa+1], fx, fy, fz, ft-1), grad4(perm[baa+1], fx-1, fy, fz, ft-1)),
				lerp(u, grad4(perm[aba+1], fx, fy-1, fz, ft-1), grad4(perm[bba+1], fx-1, fy-1, fz, ft-1))),
			lerp(v,
				lerp(u, grad4(perm[aab+1], fx, fy, fz-1, ft-1), grad4(perm[bab+1], fx-1, fy, fz-1, ft-1)),
				lerp(u, grad4(perm[abb+1], fx, fy-1, fz-1, ft-1), grad4(perm[bbb+1], fx-1, fy-1, fz-1, ft-1)))))
}
