// Package cpwg computes the quasi-static parameters of a conductor-backed
// edge-coupled coplanar waveguide pair.
//
// The calculation is a fixed chain of closed-form expressions taken from
// Simons, "Coplanar Waveguide Circuits, Components, and Systems" (2001, ch. 7.4)
// and Wadell, "Transmission Line Design Handbook" (1991, ch. 4.4.3):
//
//  1. Reduce the physical dimensions to dimensionless ratios (Reduce).
//  2. Evaluate complete elliptic integrals of the first kind (K, KPrime, Kokp).
//  3. Correct the moduli for the backing ground plane (Correct).
//  4. Synthesize even/odd permittivities and impedances (Synthesize).
//
// Calculate runs all four stages. Every function in this package is pure and
// safe for concurrent use. Out-of-domain geometry is not rejected: it shows up
// as NaN or Inf in the Result, and callers that want a diagnostic use
// Params.Validate before calling Calculate.
//
// Cross-section, all lengths in the same unit:
//
//	| W |  S  | d |  S  | W |
//	====+-----+   +-----+====   t
//	. . . . . . . . . . . . .   h, Er
//	=========================   backing ground
package cpwg
