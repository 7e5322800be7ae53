// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction and the
// numeric policy of kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Numeric policy (validateNaNInf) is carried by every *Dense built with
//     the options and preserved by Clone and by kernels that derive a result
//     from a receiver.
//   - Pivoting only affects Inverse. With pivoting disabled (default) the
//     Gauss-Jordan elimination order is exactly row 0, 1, ..., n-1 and the
//     result is bit-for-bit reproducible from the input.
package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the absolute tolerance used by Equal.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultPartialPivoting keeps the classic pivot-free Gauss-Jordan order.
	DefaultPartialPivoting = false

	// DefaultPivotTolerance: a pivot is singular only when it is exactly zero.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps             float64 // >= 0; DefaultEpsilon
	validateNaNInf  bool    // DefaultValidateNaNInf
	partialPivoting bool    // DefaultPartialPivoting
	pivotTol        float64 // >= 0; DefaultPivotTolerance
}

// String renders the effective configuration for diagnostics.
func (o Options) String() string {
	return fmt.Sprintf("eps=%g validateNaNInf=%t partialPivoting=%t pivotTol=%g",
		o.eps, o.validateNaNInf, o.partialPivoting, o.pivotTol)
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the absolute tolerance used by Equal.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (default).
// Set/Apply and builders reject NaN/±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Useful when matrices legitimately carry ±Inf (e.g., sentinel distances).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithPartialPivoting makes Inverse swap in the row with the largest
// |A[k][i]| (k ≥ i) before eliminating column i. This rescues matrices whose
// natural pivots are zero (e.g., [[0,1],[1,0]]) and improves stability.
func WithPartialPivoting() Option {
	return func(o *Options) { o.partialPivoting = true }
}

// WithoutPivoting restores the pivot-free elimination order (default).
func WithoutPivoting() Option {
	return func(o *Options) { o.partialPivoting = false }
}

// WithPivotTolerance treats |pivot| ≤ tol as zero during inversion.
// The default (0) only rejects exact zeros.
//
// Errors:
//   - Panics when tol is negative, NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts (last-writer-wins).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved Equal tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the finite-only policy is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// PartialPivoting reports whether Inverse uses row swaps.
func (o Options) PartialPivoting() bool { return o.partialPivoting }

// PivotTolerance returns the resolved singular-pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:             DefaultEpsilon,
		validateNaNInf:  DefaultValidateNaNInf,
		partialPivoting: DefaultPartialPivoting,
		pivotTol:        DefaultPivotTolerance,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
