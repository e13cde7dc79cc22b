package cpwg

// Params is the immutable input of one evaluation. All lengths share a unit.
type Params struct {
	Gap       float64 // d: space between the two strip conductors
	Width     float64 // S: width of each strip conductor
	GroundGap float64 // W: space between a strip conductor and the coplanar ground
	Thickness float64 // t: metal thickness, carried but not used by any formula
	Height    float64 // h: dielectric thickness
	EpsilonR  float64 // relative permittivity of the dielectric
}

// Geometry holds the dimensionless ratios derived from Params.
type Geometry struct {
	A     float64 // d/2
	B     float64 // d/2 + S
	C     float64 // d/2 + S + W
	R     float64 // a/b
	K1    float64 // b/c
	Delta float64 // sqrt((1-r²)/(1-k1²r²))
}

// Backing holds the intermediate hyperbolic terms of the backing-plane
// correction and the resulting even and odd mode moduli.
type Backing struct {
	Phi1, Phi2, Phi3 float64
	Phi4, Phi5, Phi6 float64
	Ke               float64
	Ko               float64
}

// Result is the full outcome of Calculate. Each derived value is computed once.
type Result struct {
	Params   Params
	Geometry Geometry
	Backing  Backing

	ErEven float64 // even-mode effective permittivity
	ErOdd  float64 // odd-mode effective permittivity
	ZEven  float64 // even-mode impedance, ohms
	ZOdd   float64 // odd-mode impedance, ohms
	Z0     float64 // sqrt(ZEven*ZOdd)
	ZDiff  float64 // differential impedance, 2*ZOdd
	ZComm  float64 // common-mode impedance, ZEven/2
}

// Finite reports whether all seven output values are finite numbers.
func (r Result) Finite() bool {
	for _, v := range r.Outputs() {
		if isBad(v.Value) {
			return false
		}
	}
	return true
}

// Output is one labelled value of a Result.
type Output struct {
	Name  string
	Value float64
}

// Outputs returns the seven reported values in report order.
func (r Result) Outputs() []Output {
	return []Output{
		{"Er_even", r.ErEven},
		{"Er_odd", r.ErOdd},
		{"Zeven", r.ZEven},
		{"Zodd", r.ZOdd},
		{"Z0", r.Z0},
		{"Zdiff", r.ZDiff},
		{"Zcomm", r.ZComm},
	}
}

// Inputs returns the six parameters in command-line order.
func (p Params) Inputs() []Output {
	return []Output{
		{"d", p.Gap},
		{"S", p.Width},
		{"W", p.GroundGap},
		{"t", p.Thickness},
		{"h", p.Height},
		{"epsilon_r", p.EpsilonR},
	}
}
