package cpwg

import "math"

// Correct computes the backing-plane correction for substrate height h.
//
// The Phi terms are reported as written in the closed form. Ke and Ko come
// from the same expressions rearranged so that each phi_i²-phi_j² is taken as
// a product of a sum and a difference, and the whole fraction is scaled by
// phi^(-3/2). That keeps them finite for ground gaps much wider than h, where
// cosh(πc/2h) alone overflows.
func Correct(g Geometry, d, h float64) Backing {
	xc := math.Pi * g.C / (2 * h)
	xb := math.Pi * g.B / (2 * h)
	xd := math.Pi * d / (4 * h)

	shb := sq(math.Sinh(xb))
	shd := sq(math.Sinh(xd))

	phi1 := 0.5 * sq(math.Cosh(xc))
	phi4 := 0.5 * sq(math.Sinh(xc))

	return Backing{
		Phi1: phi1,
		Phi2: shb - phi1 + 1,
		Phi3: shd - phi1 + 1,
		Phi4: phi4,
		Phi5: shb - phi4,
		Phi6: shd - phi4,
		Ke: backedModulus(
			shb+1, shd+1,
			2*sq(coshRatio(xb, xc)), 2*sq(coshRatio(xd, xc)),
		),
		Ko: backedModulus(
			shb, shd,
			2*sq(sinhRatio(xb, xc)), 2*sq(sinhRatio(xd, xc)),
		),
	}
}

// backedModulus evaluates P·(s3-s2) / (phi3·s2 + phi2·s3), where
// phi2 = α-P, phi3 = β-P, s2 = √(P²-phi2²) and s3 = √(P²-phi3²), given
// u = α/P and v = β/P. Numerator and denominator are divided by P^(3/2).
func backedModulus(alpha, beta, u, v float64) float64 {
	s2 := math.Sqrt(alpha * (2 - u))
	s3 := math.Sqrt(beta * (2 - v))

	return (s3 - s2) / ((v-1)*s2 + (u-1)*s3)
}

// coshRatio returns cosh(x)/cosh(y) without forming either cosh.
func coshRatio(x, y float64) float64 {
	x, y = math.Abs(x), math.Abs(y)
	return math.Exp(x-y) * (1 + math.Exp(-2*x)) / (1 + math.Exp(-2*y))
}

// sinhRatio returns |sinh(x)/sinh(y)| without forming either sinh.
func sinhRatio(x, y float64) float64 {
	x, y = math.Abs(x), math.Abs(y)
	return math.Exp(x-y) * math.Expm1(-2*x) / math.Expm1(-2*y)
}

func sq(x float64) float64 { return x * x }
