// SPDX-License-Identifier: MIT
// Package matrix: norms, comparisons and NaN/Inf predicates.
//
// Purpose:
//   - Entry-wise and induced norms returned as T (via Algebra.Abs), so
//     exact algebras keep exact norms where the definition allows.
//   - SpectralNorm by power iteration on aᴴa.
//
// Determinism:
//   - Fixed row-major scans; ties between equal magnitudes keep the first.

package matrix

import (
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/transform"
)

// FrobeniusNorm returns sqrt(Σ |a[i,j]|²).
// Complexity: O(r*c).
func FrobeniusNorm[T any](a *Dense[T]) T {
	return transform.NewOps(a.alg).Norm2(a.data.Raw())
}

// maxByMagnitude keeps the candidate of largest magnitude.
func maxByMagnitude[T any](alg scalar.Algebra[T], cands []T) T {
	best, bestMag := alg.Zero(), -1.0
	for _, v := range cands {
		if m := alg.Magnitude(v); m > bestMag {
			best, bestMag = v, m
		}
	}

	return best
}

// OneNorm returns the maximum absolute column sum.
// Complexity: O(r*c).
func OneNorm[T any](a *Dense[T]) T {
	alg, raw := a.alg, a.data.Raw()
	sums := make([]T, a.c)
	for j := range sums {
		acc := alg.Zero()
		for i := 0; i < a.r; i++ {
			acc = alg.Add(acc, alg.Abs(raw[i*a.c+j]))
		}
		sums[j] = acc
	}

	return maxByMagnitude(alg, sums)
}

// InfNorm returns the maximum absolute row sum.
// Complexity: O(r*c).
func InfNorm[T any](a *Dense[T]) T {
	alg, raw := a.alg, a.data.Raw()
	sums := make([]T, a.r)
	for i := range sums {
		acc := alg.Zero()
		for j := 0; j < a.c; j++ {
			acc = alg.Add(acc, alg.Abs(raw[i*a.c+j]))
		}
		sums[i] = acc
	}

	return maxByMagnitude(alg, sums)
}

// SpectralNorm estimates the largest singular value of a.
// Implementation:
//   - Stage 1: B = aᴴa (c×c).
//   - Stage 2: power iteration x ← Bx/‖Bx‖ started from the column of B
//     with the largest norm, tracking the Rayleigh quotient λ = xᴴBx.
//     That column is Bv for a basis vector v, so it has a component along
//     the dominant singular vector whenever v does.
//   - Stage 3: return sqrt(λ).
//
// Behavior highlights:
//   - Stops early once the relative change of λ drops to eps after at
//     least minPowerUpdates updates; otherwise
//     runs the full iteration budget. It never reports non-convergence: the
//     final relative change is logged at V(1).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r·c² + iterations·c²), Space O(c²).
//
// AI-Hints:
//   - When the two largest singular values are close, convergence is slow;
//     raise WithPowerIterations rather than eps.
func SpectralNorm[T any](a *Dense[T], opts ...Option) (T, error) {
	var zero T
	if err := validateNotNil(a); err != nil {
		return zero, matrixErrorf(opSpectralNorm, err)
	}
	o := gatherOptions(opts...)
	alg, n := a.alg, a.c
	if a.r == 0 || n == 0 {
		return alg.Zero(), nil
	}

	ah := Empty(alg)
	if err := ConjTranspose(a, ah); err != nil {
		return zero, matrixErrorf(opSpectralNorm, err)
	}
	b := mulRaw(alg, ah.data.Raw(), n, a.r, a.data.Raw(), n)
	ops := transform.NewOps(alg)

	x, xnorm := largestColumn(alg, b, n)
	if alg.IsZero(xnorm) {
		return alg.Zero(), nil
	}
	x = ops.DivScalar(x, x, xnorm)

	lambda, change := alg.Zero(), 1.0
	iter := 0
	for ; iter < o.powerIterations; iter++ {
		y := mulRaw(alg, b, n, n, x, 1)
		next := alg.Zero()
		for i := range x {
			next = alg.Add(next, alg.Mul(alg.Conj(x[i]), y[i]))
		}
		change = alg.Magnitude(alg.Sub(next, lambda)) / max(alg.Magnitude(next), o.eps)
		lambda = next

		norm := ops.Norm2(y)
		if alg.IsZero(norm) {
			break // x is in the null space; λ = 0 is exact
		}
		x = ops.DivScalar(x, y, norm)
		if change <= o.eps && iter+1 >= minPowerUpdates {
			break
		}
	}
	o.logger.V(1).Info("spectral norm", "iterations", iter, "relativeChange", change)

	return alg.Sqrt(lambda), nil
}

// minPowerUpdates is the number of Rayleigh updates SpectralNorm performs
// before it may stop early.
const minPowerUpdates = 3

// largestColumn copies the column of the n×n row-major b with the largest
// Euclidean norm and returns it with that norm.
func largestColumn[T any](alg scalar.Algebra[T], b []T, n int) ([]T, T) {
	ops := transform.NewOps(alg)
	col := make([]T, n)
	var best []T
	bestNorm := alg.Zero()
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			col[i] = b[i*n+j]
		}
		if nrm := ops.Norm2(col); best == nil || alg.Magnitude(nrm) > alg.Magnitude(bestNorm) {
			best, bestNorm = append(best[:0], col...), nrm
		}
	}

	return best, bestNorm
}

// Equal reports identical shape and elements.
func Equal[T any](a, b *Dense[T]) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}

	return transform.NewOps(a.alg).Equal(a.data.Raw(), b.data.Raw())
}

// AllClose reports identical shape and element-wise closeness within tol
// (relative to max(1, |x|, |y|)). NaN is never close.
func AllClose[T any](a, b *Dense[T], tol float64) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}

	return transform.NewOps(a.alg).Close(a.data.Raw(), b.data.Raw(), tol)
}

// HasNaN reports whether any element is NaN.
func HasNaN[T any](a *Dense[T]) bool { return transform.NewOps(a.alg).HasNaN(a.data.Raw()) }

// HasInf reports whether any element is infinite.
func HasInf[T any](a *Dense[T]) bool { return transform.NewOps(a.alg).HasInf(a.data.Raw()) }
