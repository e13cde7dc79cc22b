// Package report renders evaluations as text, JSON or HCL.
//
// The text format is the classic seven-line block:
//
//	Er_even = 2.80877
//	Er_odd  = 2.75093
//	Zeven   = 108.083
//	Zodd    = 53.0461
//	Z0      = 75.719
//	Zdiff   = 106.092
//	Zcomm   = 54.0414
//
// JSON and HCL carry inputs and outputs per named line. Neither format has a
// number literal for NaN or infinity, so non-finite values are written as the
// strings "NaN", "+Inf" and "-Inf".
package report
