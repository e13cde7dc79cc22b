package cpwg

import "math"

const (
	// agmMaxIter bounds the AGM loop; convergence is quadratic and takes
	// fewer than ten rounds for any modulus below 1-1e-15.
	agmMaxIter = 64
	agmTol     = 1e-15
)

// K returns the complete elliptic integral of the first kind for modulus k,
//
//	K(k) = ∫₀^{π/2} dθ / sqrt(1 - k² sin²θ),
//
// evaluated as π / (2·AGM(1, sqrt(1-k²))).
//
// K(±1) is +Inf. |k| > 1 and NaN yield NaN.
func K(k float64) float64 {
	kc2 := 1 - k*k
	switch {
	case math.IsNaN(kc2) || kc2 < 0:
		return math.NaN()
	case kc2 == 0:
		return math.Inf(1)
	}

	a, b := 1.0, math.Sqrt(kc2)
	for i := 0; i < agmMaxIter; i++ {
		if math.Abs(a-b) <= agmTol*a {
			break
		}
		a, b = (a+b)/2, math.Sqrt(a*b)
	}

	return math.Pi / (2 * a)
}

// KPrime returns K evaluated at the complementary modulus sqrt(1-k²).
func KPrime(k float64) float64 {
	return K(math.Sqrt(1 - k*k))
}

// Kokp returns K(k)/K'(k). Kokp(0) is 0 and Kokp(1) is +Inf.
func Kokp(k float64) float64 {
	return K(k) / KPrime(k)
}

// isBad reports NaN or ±Inf.
func isBad(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
