// SPDX-License-Identifier: MIT

// Package tridiag: functional configuration for the QR eigensolver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package tridiag

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the deflation threshold: the trailing off-diagonal entry
	// of the active window must satisfy |e| < epsilon before the window shrinks.
	DefaultEpsilon = 1e-6

	// DefaultSpectralShift enables the Wilkinson shift.
	DefaultSpectralShift = true

	// DefaultMaxIterations is the sweep ceiling; 0 means unlimited.
	DefaultMaxIterations = 0

	// DefaultSymmetryTolerance disables the symmetry check in Decompose (< 0).
	DefaultSymmetryTolerance = -1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "tridiag: WithEpsilon: eps must be finite and > 0"
	panicMaxIterationsInvalid = "tridiag: WithMaxIterations: limit must be >= 0"
	panicSymmetryTolInvalid   = "tridiag: WithSymmetryCheck: tol must be finite and >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps          float64     // > 0; DefaultEpsilon
	shift        bool        // DefaultSpectralShift
	maxIter      int         // >= 0; 0 = no ceiling
	symmetryTol  float64     // < 0 disables the check in Decompose
	onSweep      func(Sweep) // optional per-sweep hook
	hasSweepHook bool
}

// WithEpsilon sets the deflation threshold.
//
// Behavior highlights:
//   - Panics on zero, negative, NaN or ±Inf: a zero threshold can never be
//     met by floating-point iteration.
//
// AI-Hints:
//   - 1e-6 mirrors the classic textbook setting; 1e-12 gives eigenvalues to
//     near machine precision at the cost of a few more sweeps per eigenvalue.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSpectralShift toggles the Wilkinson shift.
func WithSpectralShift(enabled bool) Option {
	return func(o *Options) { o.shift = enabled }
}

// WithoutSpectralShift forces μ = 0 on every sweep (linear convergence).
func WithoutSpectralShift() Option { return WithSpectralShift(false) }

// WithMaxIterations caps the total number of QR sweeps; 0 removes the cap.
// Reaching the cap yields ErrNotConverged plus the partial Result.
//
// Notes:
//   - Unshifted QR stalls on matrices with eigenvalues of equal magnitude and
//     opposite sign (e.g. [[0,1],[1,0]]); set a cap when running without shift
//     on untrusted input.
func WithMaxIterations(limit int) Option {
	if limit < 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = limit }
}

// WithSymmetryCheck makes Decompose reject inputs with |A[i,j] − A[j,i]| > tol
// (matrix.ErrAsymmetry). Without it, non-symmetric input is processed as-is
// and the output is meaningless.
func WithSymmetryCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymmetryTolInvalid)
	}

	return func(o *Options) { o.symmetryTol = tol }
}

// WithSweepHook registers fn to be called after every QR sweep.
// A nil fn removes a previously registered hook.
func WithSweepHook(fn func(Sweep)) Option {
	return func(o *Options) {
		o.onSweep = fn
		o.hasSweepHook = fn != nil
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:         DefaultEpsilon,
		shift:       DefaultSpectralShift,
		maxIter:     DefaultMaxIterations,
		symmetryTol: DefaultSymmetryTolerance,
	}
}

// gatherOptions applies user setters on top of defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Epsilon reports the effective deflation threshold.
func (o Options) Epsilon() float64 { return o.eps }

// SpectralShift reports whether the Wilkinson shift is enabled.
func (o Options) SpectralShift() bool { return o.shift }

// MaxIterations reports the sweep ceiling (0 = unlimited).
func (o Options) MaxIterations() int { return o.maxIter }

// NewOptions resolves opts against the defaults; useful for callers that
// want to display the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
