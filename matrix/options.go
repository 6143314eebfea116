// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options only affect floating-point tolerances (ApproxEqual, Inverse).
// Exact operations (EnginesEqual, arithmetic, Determinant) take none.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultRelativeTolerance is the relative tolerance used by ApproxEqual.
	// Zero means "absolute comparison only".
	DefaultRelativeTolerance = 0.0

	// DefaultPivotTolerance is the magnitude at or below which Inverse treats
	// a pivot as zero. The default is exactly zero: only a true zero pivot
	// reports ErrSingular.
	DefaultPivotTolerance = 0.0
)

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid   = "matrix: WithRelativeTolerance: rtol must be finite, non-negative"
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	relTol   float64 // >= 0; DefaultRelativeTolerance
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithEpsilon sets the absolute tolerance of ApproxEqual.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - float32 data usually wants something around 1e-5; the default targets float64.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelativeTolerance adds a tolerance proportional to |b| in ApproxEqual:
// |a-b| <= eps + rtol*|b|.
func WithRelativeTolerance(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = rtol }
}

// WithPivotTolerance makes Inverse report ErrSingular when the best remaining
// pivot has magnitude <= tol. Panics on negative or non-finite tol.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		relTol:   DefaultRelativeTolerance,
		pivotTol: DefaultPivotTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
