package cpwg

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFinite indicates an input that is NaN or infinite.
	ErrNotFinite = errors.New("cpwg: parameter must be a finite number")

	// ErrNonPositive indicates a length that is zero or negative.
	ErrNonPositive = errors.New("cpwg: length must be positive")

	// ErrPermittivity indicates a relative permittivity below 1.
	ErrPermittivity = errors.New("cpwg: relative permittivity must be >= 1")
)

// Validate checks that p describes a physically meaningful cross-section.
// Calculate does not call it; it exists for callers that prefer an error to
// a NaN report. Thickness is checked for finiteness only, since no formula
// uses it.
func (p Params) Validate() error {
	for _, in := range p.Inputs() {
		if isBad(in.Value) {
			return fmt.Errorf("%s = %v: %w", in.Name, in.Value, ErrNotFinite)
		}
	}

	lengths := []Output{
		{"d", p.Gap},
		{"S", p.Width},
		{"W", p.GroundGap},
		{"h", p.Height},
	}
	for _, l := range lengths {
		if l.Value <= 0 {
			return fmt.Errorf("%s = %v: %w", l.Name, l.Value, ErrNonPositive)
		}
	}

	if p.EpsilonR < 1 {
		return fmt.Errorf("epsilon_r = %v: %w", p.EpsilonR, ErrPermittivity)
	}

	return nil
}
