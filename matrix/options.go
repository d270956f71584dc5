// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels. This
// file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts at least one kernel and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Which kernels read which option:
//   - eps: EigenSym (convergence and symmetry), Sqrt (Denman–Beavers stop).
//   - taylorTerms: Exp, Log, Sin, Cos, Tan, Sinh, Cosh, Tanh.
//   - powerIterations: SpectralNorm, Sqrt.
//   - jacobiRotations: EigenSym.
//   - pivoting: Invert, LU, Solve, Power (n < 0), Tan, Tanh, Sqrt.
//   - logger: every iterative kernel, at V(1).
package matrix

import (
	"math"

	"github.com/go-logr/logr"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance for convergence and symmetry checks.
	DefaultEpsilon = 1e-12

	// DefaultTaylorTerms is the number of series terms used by the matrix
	// transcendentals (the k = 0 term included).
	DefaultTaylorTerms = 20

	// DefaultPowerIterations bounds SpectralNorm power iteration and the
	// Denman–Beavers square-root iteration.
	DefaultPowerIterations = 100

	// DefaultJacobiRotations bounds the number of Jacobi rotations in EigenSym.
	DefaultJacobiRotations = 10000

	// DefaultPivoting enables partial pivoting by magnitude in elimination
	// kernels. Without it a zero diagonal pivot is reported as singular.
	DefaultPivoting = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid         = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicTaylorTermsInvalid     = "matrix: WithTaylorTerms: terms must be >= 1"
	panicPowerIterationsInvalid = "matrix: WithPowerIterations: iterations must be >= 1"
	panicJacobiRotationsInvalid = "matrix: WithJacobiRotations: rotations must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps             float64     // >= 0; DefaultEpsilon
	taylorTerms     int         // >= 1; DefaultTaylorTerms
	powerIterations int         // >= 1; DefaultPowerIterations
	jacobiRotations int         // >= 1; DefaultJacobiRotations
	pivoting        bool        // DefaultPivoting
	logger          logr.Logger // logr.Discard() unless set
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by convergence and
// symmetry checks.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithTaylorTerms sets the fixed series order of the matrix transcendentals.
// More terms extend the accurate range to larger spectral radii at O(n³)
// per term.
func WithTaylorTerms(terms int) Option {
	if terms < 1 {
		panic(panicTaylorTermsInvalid)
	}

	return func(o *Options) { o.taylorTerms = terms }
}

// WithPowerIterations bounds SpectralNorm and Sqrt iterations.
func WithPowerIterations(iterations int) Option {
	if iterations < 1 {
		panic(panicPowerIterationsInvalid)
	}

	return func(o *Options) { o.powerIterations = iterations }
}

// WithJacobiRotations bounds the rotations EigenSym may apply before it
// reports ErrEigenFailed.
func WithJacobiRotations(rotations int) Option {
	if rotations < 1 {
		panic(panicJacobiRotationsInvalid)
	}

	return func(o *Options) { o.jacobiRotations = rotations }
}

// WithPivoting toggles partial pivoting in elimination kernels.
//
// Notes:
//   - Disabling it reproduces plain Doolittle elimination: deterministic, but
//     any zero diagonal pivot (e.g. [[0,1],[1,0]]) yields ErrSingular.
func WithPivoting(enabled bool) Option {
	return func(o *Options) { o.pivoting = enabled }
}

// WithLogger routes kernel diagnostics to l. Kernels log at V(1) only.
//
// AI-Hints:
//   - In tests pass testr.New(t) to see iteration traces next to failures.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// ---------- Internal resolution ----------

func defaultOptions() Options {
	return Options{
		eps:             DefaultEpsilon,
		taylorTerms:     DefaultTaylorTerms,
		powerIterations: DefaultPowerIterations,
		jacobiRotations: DefaultJacobiRotations,
		pivoting:        DefaultPivoting,
		logger:          logr.Discard(),
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
