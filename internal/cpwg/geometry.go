package cpwg

import "math"

// Reduce derives the dimensionless ratios of the coplanar cross-section.
// A zero strip width gives R == 1 and is passed through unchanged.
func Reduce(p Params) Geometry {
	a := p.Gap / 2
	b := a + p.Width
	c := b + p.GroundGap
	r := a / b
	k1 := b / c

	return Geometry{
		A:     a,
		B:     b,
		C:     c,
		R:     r,
		K1:    k1,
		Delta: math.Sqrt((1 - r*r) / (1 - k1*k1*r*r)),
	}
}
