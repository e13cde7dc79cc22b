package cpwg

import "math"

// Eta0 is the free-space wave impedance in ohms, 120π.
const Eta0 = 120 * math.Pi

// Synthesize combines the reduced geometry and corrected moduli into the
// even/odd effective permittivities and the five impedances.
func Synthesize(p Params, g Geometry, bk Backing) Result {
	kEven := Kokp(bk.Ke)
	kOdd := Kokp(bk.Ko)
	kAirEven := Kokp(g.Delta * g.K1)
	kAirOdd := Kokp(g.Delta)

	denEven := 2*kEven + kAirEven
	denOdd := 2*kOdd + kAirOdd

	erEven := (2*p.EpsilonR*kEven + kAirEven) / denEven
	erOdd := (2*p.EpsilonR*kOdd + kAirOdd) / denOdd

	zEven := Eta0 / (math.Sqrt(erEven) * denEven)
	zOdd := Eta0 / (math.Sqrt(erOdd) * denOdd)

	return Result{
		Params:   p,
		Geometry: g,
		Backing:  bk,
		ErEven:   erEven,
		ErOdd:    erOdd,
		ZEven:    zEven,
		ZOdd:     zOdd,
		Z0:       math.Sqrt(zEven * zOdd),
		ZDiff:    2 * zOdd,
		ZComm:    zEven / 2,
	}
}

// Calculate runs the whole pipeline for p. It never fails; geometry outside
// 0 < a < b < c, or a substrate too thin for the closed form, yields NaN or
// Inf in the affected outputs. Strips much wider than the substrate is thick
// (S/h above roughly 100) drive ke and ko to exactly 1 in float64, where
// K/K' diverges and every output becomes NaN.
func Calculate(p Params) Result {
	g := Reduce(p)
	return Synthesize(p, g, Correct(g, p.Gap, p.Height))
}
