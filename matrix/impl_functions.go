// SPDX-License-Identifier: MIT
// Package matrix: matrix transcendentals.
//
// Purpose:
//   - Exp, Log and the circular/hyperbolic functions as fixed-order Taylor
//     series of matrix powers, Sqrt by Denman–Beavers iteration.
//
// Notes:
//   - The series order is WithTaylorTerms and is never adapted: accuracy is
//     bounded by truncation and the spectral radius, and slow convergence is
//     not reported as an error. Log expands log(I+X) with X = A − I, which
//     converges only for ρ(X) < 1.
//   - Coefficients are built in T (1/k! as a product of FromInt64), so
//     rational matrices get exact partial sums.

package matrix

import (
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/transform"
)

// series returns Σ_{k=0}^{maxPower} coef(k)·A^k over raw n×n data,
// skipping powers whose coefficient is absent.
func series[T any](alg scalar.Algebra[T], a []T, n, maxPower int, coef func(k int) (T, bool)) (sum []T, last T) {
	ops := transform.NewOps(alg)
	sum = make([]T, n*n)
	for i := range sum {
		sum[i] = alg.Zero()
	}
	last = alg.Zero()
	power := identityRaw(alg, n)
	scratch := make([]T, 0, n*n)
	for k := 0; k <= maxPower; k++ {
		if k > 0 {
			power = mulRaw(alg, power, n, n, a, n)
		}
		c, ok := coef(k)
		if !ok {
			continue
		}
		scratch = ops.MulScalar(scratch, power, c)
		sum, _ = ops.Add(sum, sum, scratch)
		last = ops.MaxAbs(scratch)
	}

	return sum, last
}

// factorials returns 0!..k! in T.
func factorials[T any](alg scalar.Algebra[T], k int) []T {
	out := make([]T, k+1)
	out[0] = alg.One()
	for i := 1; i <= k; i++ {
		out[i] = alg.Mul(out[i-1], alg.FromInt64(int64(i)))
	}

	return out
}

// taylorFunc names one of the supported series.
type taylorFunc int

const (
	seriesExp taylorFunc = iota
	seriesSin
	seriesCos
	seriesSinh
	seriesCosh
	seriesLog
)

var seriesNames = [...]string{"Exp", "Sin", "Cos", "Sinh", "Cosh", "Log"}

// evalSeries evaluates f at the square matrix a with o.taylorTerms terms.
func evalSeries[T any](f taylorFunc, alg scalar.Algebra[T], a []T, n int, o Options) []T {
	terms := o.taylorTerms
	var (
		maxPower int
		coef     func(k int) (T, bool)
	)
	switch f {
	case seriesExp:
		maxPower = terms - 1
		fact := factorials(alg, maxPower)
		coef = func(k int) (T, bool) { return alg.Div(alg.One(), fact[k]), true }
	case seriesSin, seriesSinh:
		maxPower = 2*terms - 1
		fact := factorials(alg, maxPower)
		coef = func(k int) (T, bool) {
			if k%2 == 0 {
				return alg.Zero(), false
			}
			c := alg.Div(alg.One(), fact[k])
			if f == seriesSin && (k/2)%2 == 1 {
				c = alg.Neg(c)
			}
			return c, true
		}
	case seriesCos, seriesCosh:
		maxPower = 2*terms - 2
		fact := factorials(alg, maxPower)
		coef = func(k int) (T, bool) {
			if k%2 == 1 {
				return alg.Zero(), false
			}
			c := alg.Div(alg.One(), fact[k])
			if f == seriesCos && (k/2)%2 == 1 {
				c = alg.Neg(c)
			}
			return c, true
		}
	case seriesLog:
		// log(I+X) = Σ_{k≥1} (−1)^{k+1} X^k / k
		maxPower = terms
		x := make([]T, len(a))
		copy(x, a)
		for i := 0; i < n; i++ {
			x[i*n+i] = alg.Sub(x[i*n+i], alg.One())
		}
		a = x
		coef = func(k int) (T, bool) {
			if k == 0 {
				return alg.Zero(), false
			}
			c := alg.Div(alg.One(), alg.FromInt64(int64(k)))
			if k%2 == 0 {
				c = alg.Neg(c)
			}
			return c, true
		}
	}
	sum, last := series(alg, a, n, maxPower, coef)
	o.logger.V(1).Info("taylor series", "function", seriesNames[f], "terms", terms, "lastTermMaxAbs", alg.Format(last))

	return sum
}

func applySeries[T any](f taylorFunc, a, out *Dense[T], opts []Option) error {
	tag := seriesNames[f]
	if err := validateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := validateOutput(out); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := validateSquare(a); err != nil {
		return matrixErrorf(tag, err)
	}
	res := evalSeries(f, a.alg, a.data.Raw(), a.r, gatherOptions(opts...))
	out.install(a.alg, a.r, a.r, res)

	return nil
}

// Exp sets out = e^a = Σ a^k/k!.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(terms·n³), Space O(n²).
func Exp[T any](a, out *Dense[T], opts ...Option) error { return applySeries(seriesExp, a, out, opts) }

// Log sets out = log(a) via the series of log(I+X), X = a − I.
//
// Notes:
//   - Meaningful only when the spectral radius of a − I is below 1.
func Log[T any](a, out *Dense[T], opts ...Option) error { return applySeries(seriesLog, a, out, opts) }

func Sin[T any](a, out *Dense[T], opts ...Option) error  { return applySeries(seriesSin, a, out, opts) }
func Cos[T any](a, out *Dense[T], opts ...Option) error  { return applySeries(seriesCos, a, out, opts) }
func Sinh[T any](a, out *Dense[T], opts ...Option) error { return applySeries(seriesSinh, a, out, opts) }
func Cosh[T any](a, out *Dense[T], opts ...Option) error { return applySeries(seriesCosh, a, out, opts) }

// ratio sets out = num(a)·den(a)⁻¹.
func ratio[T any](tag string, num, den taylorFunc, a, out *Dense[T], opts []Option) error {
	if err := validateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := validateOutput(out); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := validateSquare(a); err != nil {
		return matrixErrorf(tag, err)
	}
	o := gatherOptions(opts...)
	alg, n, raw := a.alg, a.r, a.data.Raw()
	inv, err := invertRaw(alg, evalSeries(den, alg, raw, n, o), n, o)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	out.install(alg, n, n, mulRaw(alg, evalSeries(num, alg, raw, n, o), n, n, inv, n))

	return nil
}

// Tan sets out = sin(a)·cos(a)⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (cos(a) not invertible).
func Tan[T any](a, out *Dense[T], opts ...Option) error {
	return ratio("Tan", seriesSin, seriesCos, a, out, opts)
}

// Tanh sets out = sinh(a)·cosh(a)⁻¹.
func Tanh[T any](a, out *Dense[T], opts ...Option) error {
	return ratio("Tanh", seriesSinh, seriesCosh, a, out, opts)
}

// Sqrt sets out to the principal square root of a by the Denman–Beavers
// iteration
//
//	Y₀ = A, Z₀ = I
//	Y_{k+1} = (Y_k + Z_k⁻¹)/2,  Z_{k+1} = (Z_k + Y_k⁻¹)/2
//
// where Y → A^{1/2} and Z → A^{-1/2}.
//
// Behavior highlights:
//   - Stops when ‖Y_{k+1} − Y_k‖_F ≤ eps·‖Y_{k+1}‖_F or after
//     WithPowerIterations steps; the last step size is logged at V(1).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (an iterate is not
//     invertible, e.g. a singular a).
//
// Complexity:
//   - Time O(iterations·n³), Space O(n²).
func Sqrt[T any](a, out *Dense[T], opts ...Option) error {
	if err := validateNotNil(a); err != nil {
		return matrixErrorf(opSqrt, err)
	}
	if err := validateOutput(out); err != nil {
		return matrixErrorf(opSqrt, err)
	}
	if err := validateSquare(a); err != nil {
		return matrixErrorf(opSqrt, err)
	}
	o := gatherOptions(opts...)
	alg, n := a.alg, a.r
	ops := transform.NewOps(alg)
	two := alg.FromInt64(2)

	y, z := a.Data(), identityRaw(alg, n)
	step := 0.0
	iter := 0
	for ; iter < o.powerIterations; iter++ {
		yInv, err := invertRaw(alg, y, n, o)
		if err != nil {
			return matrixErrorf(opSqrt, err)
		}
		zInv, err := invertRaw(alg, z, n, o)
		if err != nil {
			return matrixErrorf(opSqrt, err)
		}
		nextY, _ := ops.Add(nil, y, zInv)
		nextY = ops.DivScalar(nextY, nextY, two)
		nextZ, _ := ops.Add(nil, z, yInv)
		z = ops.DivScalar(nextZ, nextZ, two)

		diff, _ := ops.Sub(nil, nextY, y)
		y = nextY
		step = alg.Magnitude(ops.Norm2(diff))
		if step <= o.eps*max(1, alg.Magnitude(ops.Norm2(y))) {
			iter++
			break
		}
	}
	o.logger.V(1).Info("denman-beavers", "iterations", iter, "lastStep", step)
	out.install(alg, n, n, y)

	return nil
}
