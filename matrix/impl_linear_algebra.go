// SPDX-License-Identifier: MIT
// Package matrix provides universal linear-algebra kernels over any scalar
// algebra: products, transpose, trace, determinant, inversion, LU, QR,
// symmetric eigen decomposition and integer powers.
//
// Purpose:
//   - Implement every kernel once over scalar.Algebra[T]; callers choose
//     float32, float64, float16, complex, rational or decimal at
//     construction time.
//
// Notes:
//   - Kernels compute into a fresh slice and install it into the output
//     handle last, so an output aliasing an input is always safe.
//   - Pivot ranking uses Algebra.Magnitude; a pivot is zero when
//     Algebra.IsZero reports so (exact for rationals and decimals).

package matrix

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/tensor"
	"github.com/katalvlaran/lvalg/vector"
)

// ---------- raw kernels (row-major slices) ----------

// mulRaw returns X·Y for X (r×n) and Y (n×c) in a fresh slice.
// Loop order i→k→j keeps both row-major strides sequential; zero X[i,k]
// are skipped.
func mulRaw[T any](alg scalar.Algebra[T], x []T, r, n int, y []T, c int) []T {
	out := make([]T, r*c)
	for i := range out {
		out[i] = alg.Zero()
	}
	var rowX, rowY, rowR int
	for i := 0; i < r; i++ {
		rowX, rowR = i*n, i*c
		for k := 0; k < n; k++ {
			av := x[rowX+k]
			if alg.IsZero(av) {
				continue // skip zero for performance
			}
			rowY = k * c
			for j := 0; j < c; j++ {
				out[rowR+j] = alg.Add(out[rowR+j], alg.Mul(av, y[rowY+j]))
			}
		}
	}

	return out
}

func identityRaw[T any](alg scalar.Algebra[T], n int) []T {
	out := make([]T, n*n)
	for i := range out {
		out[i] = alg.Zero()
	}
	for i := 0; i < n; i++ {
		out[i*n+i] = alg.One()
	}

	return out
}

// pivotRow picks the elimination pivot for column k among rows k..n-1:
// the largest magnitude when pivoting, the diagonal otherwise.
func pivotRow[T any](alg scalar.Algebra[T], a []T, n, k int, pivoting bool) int {
	p := k
	if !pivoting {
		return p
	}
	best := alg.Magnitude(a[k*n+k])
	for i := k + 1; i < n; i++ {
		if m := alg.Magnitude(a[i*n+k]); m > best {
			best, p = m, i
		}
	}

	return p
}

func swapRows[T any](a []T, cols, i, j int) {
	ri, rj := a[i*cols:(i+1)*cols], a[j*cols:(j+1)*cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// luResult is the packed outcome of Gaussian elimination on an n×n matrix:
// multipliers strictly below the diagonal, U on and above it.
type luResult[T any] struct {
	lu    []T
	perm  []int // row i of P·A is row perm[i] of A
	swaps int
	zero  int // first column without a usable pivot, or -1
}

// luFactor eliminates a copy of a and stops at the first column without a
// nonzero pivot.
func luFactor[T any](alg scalar.Algebra[T], a []T, n int, o Options) luResult[T] {
	lu := make([]T, len(a))
	copy(lu, a)
	res := luResult[T]{lu: lu, perm: make([]int, n), zero: -1}
	for i := range res.perm {
		res.perm[i] = i
	}

	for k := 0; k < n; k++ {
		p := pivotRow(alg, lu, n, k, o.pivoting)
		if alg.IsZero(lu[p*n+k]) {
			res.zero = k
			return res
		}
		if p != k {
			swapRows(lu, n, p, k)
			res.perm[p], res.perm[k] = res.perm[k], res.perm[p]
			res.swaps++
			o.logger.V(1).Info("pivot swap", "column", k, "row", p)
		}
		pivot := lu[k*n+k]
		for i := k + 1; i < n; i++ {
			f := alg.Div(lu[i*n+k], pivot)
			lu[i*n+k] = f
			if alg.IsZero(f) {
				continue
			}
			for j := k + 1; j < n; j++ {
				lu[i*n+j] = alg.Sub(lu[i*n+j], alg.Mul(f, lu[k*n+j]))
			}
		}
	}

	return res
}

// ---------- products & structure ----------

// Mul performs matrix multiplication out = a × b.
// Implementation:
//   - Stage 1: Validate handles and inner dimensions (a.Cols == b.Rows).
//   - Stage 2: i→k→j triple loop over row-major storage with zero-skip,
//     into a scratch slice that is installed into out last.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order; accumulation order per element is k ascending.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - out may be a or b: the product never reads from out.
func Mul[T any](a, b, out *Dense[T]) error {
	if err := validateNotNil(a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err := validateOutput(out); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	res := mulRaw(a.alg, a.data.Raw(), a.r, a.c, b.data.Raw(), b.c)
	out.install(a.alg, a.r, b.c, res)

	return nil
}

// MatVec computes y = a·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != a.Cols).
//   - lvalg.ErrForeignGoroutine if y is bound to another goroutine.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T any](a *Dense[T], x, y *vector.Vector[T]) error {
	if err := validateNotNil(a); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if x == nil || y == nil {
		return matrixErrorf(opMatVec, errors.Wrap(ErrNilMatrix, "nil vector"))
	}
	if err := y.Tensor().Storage().CheckOwner(); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	xs := x.Tensor().Storage().Raw()
	if err := validateVecLen(xs, a.c); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	res, err := tensor.FromSlice(a.alg, 1, a.r, mulRaw(a.alg, a.data.Raw(), a.r, a.c, xs, 1))
	if err != nil {
		return matrixErrorf(opMatVec, err)
	}
	y.Tensor().Assign(res)

	return nil
}

func transposeInto[T any](tag string, a, out *Dense[T], f func(T) T) error {
	if err := validateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := validateOutput(out); err != nil {
		return matrixErrorf(tag, err)
	}
	src := a.data.Raw()
	res := make([]T, len(src))
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			res[j*a.r+i] = f(src[i*a.c+j])
		}
	}
	out.install(a.alg, a.c, a.r, res)

	return nil
}

// Transpose sets out = aᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T any](a, out *Dense[T]) error {
	return transposeInto(opTranspose, a, out, func(v T) T { return v })
}

// ConjTranspose sets out = aᴴ, the conjugate transpose.
func ConjTranspose[T any](a, out *Dense[T]) error {
	if a == nil {
		return matrixErrorf(opConjTranspose, ErrNilMatrix)
	}
	return transposeInto(opConjTranspose, a, out, a.alg.Conj)
}

// Trace returns Σ a[i,i] of a square matrix.
func Trace[T any](a *Dense[T]) (T, error) {
	var zero T
	if err := validateNotNil(a); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}
	if err := validateSquare(a); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}
	raw, acc := a.data.Raw(), a.alg.Zero()
	for i := 0; i < a.r; i++ {
		acc = a.alg.Add(acc, raw[i*a.c+i])
	}

	return acc, nil
}

// ---------- elimination ----------

// Determinant returns det(a) by Gaussian elimination with partial pivoting
// by magnitude; each row swap flips the sign.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Notes:
//   - A singular matrix has determinant Zero; that is a value, not an error.
//   - The 0×0 determinant is One (empty product).
//   - Pivoting is always on here; WithPivoting does not apply.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant[T any](a *Dense[T], opts ...Option) (T, error) {
	var zero T
	if err := validateNotNil(a); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if err := validateSquare(a); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	o.pivoting = true
	alg, n := a.alg, a.r

	f := luFactor(alg, a.data.Raw(), n, o)
	if f.zero >= 0 {
		return alg.Zero(), nil
	}
	det := alg.One()
	for i := 0; i < n; i++ {
		det = alg.Mul(det, f.lu[i*n+i])
	}
	if f.swaps%2 == 1 {
		det = alg.Neg(det)
	}

	return det, nil
}

// Invert sets out = a⁻¹ by Gauss–Jordan elimination on [A | I].
// Implementation:
//   - Stage 1: Validate a (not nil, square) and out.
//   - Stage 2: For each column pick a pivot (largest magnitude when
//     pivoting), scale its row to a unit pivot and clear the column in
//     every other row of both halves.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (no nonzero pivot in a column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - For rationals the inverse is exact; check Determinant first if you
//     expect near-singular float input, Invert will not flag it.
func Invert[T any](a, out *Dense[T], opts ...Option) error {
	if err := validateNotNil(a); err != nil {
		return matrixErrorf(opInvert, err)
	}
	if err := validateOutput(out); err != nil {
		return matrixErrorf(opInvert, err)
	}
	if err := validateSquare(a); err != nil {
		return matrixErrorf(opInvert, err)
	}
	inv, err := invertRaw(a.alg, a.data.Raw(), a.r, gatherOptions(opts...))
	if err != nil {
		return matrixErrorf(opInvert, err)
	}
	out.install(a.alg, a.r, a.r, inv)

	return nil
}

func invertRaw[T any](alg scalar.Algebra[T], a []T, n int, o Options) ([]T, error) {
	work := make([]T, len(a))
	copy(work, a)
	inv := identityRaw(alg, n)

	for k := 0; k < n; k++ {
		p := pivotRow(alg, work, n, k, o.pivoting)
		if alg.IsZero(work[p*n+k]) {
			return nil, errors.Wrapf(ErrSingular, "no pivot in column %d", k)
		}
		if p != k {
			swapRows(work, n, p, k)
			swapRows(inv, n, p, k)
			o.logger.V(1).Info("pivot swap", "column", k, "row", p)
		}
		scale := alg.Div(alg.One(), work[k*n+k])
		for j := 0; j < n; j++ {
			work[k*n+j] = alg.Mul(scale, work[k*n+j])
			inv[k*n+j] = alg.Mul(scale, inv[k*n+j])
		}
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			f := work[i*n+k]
			if alg.IsZero(f) {
				continue
			}
			for j := 0; j < n; j++ {
				work[i*n+j] = alg.Sub(work[i*n+j], alg.Mul(f, work[k*n+j]))
				inv[i*n+j] = alg.Sub(inv[i*n+j], alg.Mul(f, inv[k*n+j]))
			}
		}
	}

	return inv, nil
}

// LU computes the factorization P·A = L·U with unit lower-triangular L.
// perm describes P: row i of P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (zero pivot; with pivoting
//     off this includes any zero on the working diagonal).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU[T any](a *Dense[T], opts ...Option) (l, u *Dense[T], perm []int, err error) {
	if err := validateNotNil(a); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	if err := validateSquare(a); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	alg, n := a.alg, a.r
	f := luFactor(alg, a.data.Raw(), n, gatherOptions(opts...))
	if f.zero >= 0 {
		return nil, nil, nil, matrixErrorf(opLU, errors.Wrapf(ErrSingular, "zero pivot in column %d", f.zero))
	}

	lData, uData := identityRaw(alg, n), make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case j < i:
				lData[i*n+j] = f.lu[i*n+j]
				uData[i*n+j] = alg.Zero()
			default:
				uData[i*n+j] = f.lu[i*n+j]
			}
		}
	}
	l, _ = FromSlice(alg, n, n, lData)
	u, _ = FromSlice(alg, n, n, uData)

	return l, u, f.perm, nil
}

// Solve sets x to the solution of a·x = b for square a and any number of
// right-hand sides (the columns of b), by LU with forward and backward
// substitution.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (b.Rows != a.Rows),
//     ErrSingular.
//
// Complexity:
//   - Time O(n³ + n²·m), Space O(n² + n·m).
func Solve[T any](a, b, x *Dense[T], opts ...Option) error {
	if err := validateNotNil(a, b); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := validateOutput(x); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := validateSquare(a); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if b.r != a.r {
		return matrixErrorf(opSolve, errors.Wrapf(ErrDimensionMismatch, "rhs has %d rows, want %d", b.r, a.r))
	}
	alg, n, m := a.alg, a.r, b.c
	f := luFactor(alg, a.data.Raw(), n, gatherOptions(opts...))
	if f.zero >= 0 {
		return matrixErrorf(opSolve, errors.Wrapf(ErrSingular, "zero pivot in column %d", f.zero))
	}

	rhs := b.data.Raw()
	sol := make([]T, n*m)
	for col := 0; col < m; col++ {
		// Forward substitution: L·y = P·b
		for i := 0; i < n; i++ {
			sum := rhs[f.perm[i]*m+col]
			for k := 0; k < i; k++ {
				sum = alg.Sub(sum, alg.Mul(f.lu[i*n+k], sol[k*m+col]))
			}
			sol[i*m+col] = sum
		}
		// Backward substitution: U·x = y
		for i := n - 1; i >= 0; i-- {
			sum := sol[i*m+col]
			for k := i + 1; k < n; k++ {
				sum = alg.Sub(sum, alg.Mul(f.lu[i*n+k], sol[k*m+col]))
			}
			sol[i*m+col] = alg.Div(sum, f.lu[i*n+i])
		}
	}
	x.install(alg, n, m, sol)

	return nil
}

// QR computes a = Q·R by modified Gram–Schmidt for rows ≥ cols: Q (r×c)
// has orthonormal columns under the Hermitian inner product and R (c×c) is
// upper triangular with a real, non-negative diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (rows < cols).
//
// Notes:
//   - A column that is linearly dependent on its predecessors yields a zero
//     column in Q and a zero on R's diagonal; the product still equals a.
//
// Complexity:
//   - Time O(r·c²), Space O(r·c).
func QR[T any](a *Dense[T]) (q, r *Dense[T], err error) {
	if err := validateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if a.r < a.c {
		return nil, nil, matrixErrorf(opQR, errors.Wrapf(ErrDimensionMismatch, "%dx%d has fewer rows than columns", a.r, a.c))
	}
	alg, rows, cols := a.alg, a.r, a.c
	v := a.Data() // working columns, row-major
	qData := make([]T, rows*cols)
	rData := make([]T, cols*cols)
	for i := range rData {
		rData[i] = alg.Zero()
	}

	for j := 0; j < cols; j++ {
		norm := alg.Zero()
		for i := 0; i < rows; i++ {
			norm = alg.Add(norm, scalar.AbsSq(alg, v[i*cols+j]))
		}
		norm = alg.Sqrt(norm)
		rData[j*cols+j] = norm
		if alg.IsZero(norm) {
			for i := 0; i < rows; i++ {
				qData[i*cols+j] = alg.Zero()
			}
			continue
		}
		for i := 0; i < rows; i++ {
			qData[i*cols+j] = alg.Div(v[i*cols+j], norm)
		}
		for k := j + 1; k < cols; k++ {
			dot := alg.Zero()
			for i := 0; i < rows; i++ {
				dot = alg.Add(dot, alg.Mul(alg.Conj(qData[i*cols+j]), v[i*cols+k]))
			}
			rData[j*cols+k] = dot
			for i := 0; i < rows; i++ {
				v[i*cols+k] = alg.Sub(v[i*cols+k], alg.Mul(qData[i*cols+j], dot))
			}
		}
	}
	q, _ = FromSlice(alg, rows, cols, qData)
	r, _ = FromSlice(alg, cols, cols, rData)

	return q, r, nil
}

// ---------- spectral ----------

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi rotations.
// Implementation:
//   - Stage 1: Validate square and symmetric within eps; the algebra must be
//     Ordered (the rotation angle needs a sign).
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply a Jacobi rotation, accumulating it into Q.
//
// Returns:
//   - []T: eigenvalues, the diagonal of the rotated matrix (unsorted).
//   - *Dense[T]: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, lvalg.ErrUnsupported (unordered algebra), ErrNonSquare,
//     ErrAsymmetry, ErrEigenFailed (off-diagonal above eps·max(1,‖A‖_F)
//     after the rotation budget).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(rotations · n²) for the pivot scan, Space O(n²).
func EigenSym[T any](a *Dense[T], opts ...Option) ([]T, *Dense[T], error) {
	if err := validateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	ord, ok := scalar.AsOrdered(a.alg)
	if !ok {
		return nil, nil, unsupportedf(opEigen, "Ordered")
	}
	o := gatherOptions(opts...)
	if err := validateSymmetric(a, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	alg, n := a.alg, a.r
	work := a.Clone()
	A := work.data.Raw()
	Q := identityRaw(alg, n)
	tol := o.eps * max(1, alg.Magnitude(FrobeniusNorm(a)))
	two := alg.FromInt64(2)

	rotations := 0
	for ; rotations < o.jacobiRotations; rotations++ {
		maxOff, p, q := maxOffDiagonal(work)
		if maxOff <= tol {
			break
		}
		app, aqq, apq := A[p*n+p], A[q*n+q], A[p*n+q]

		// θ = (aqq−app)/(2·apq), t = sign(θ)/(|θ|+√(θ²+1))
		theta := alg.Div(alg.Sub(aqq, app), alg.Mul(two, apq))
		t := alg.Div(alg.One(), alg.Add(alg.Abs(theta), alg.Sqrt(alg.Add(alg.Mul(theta, theta), alg.One()))))
		if ord.Less(theta, alg.Zero()) {
			t = alg.Neg(t)
		}
		c := alg.Div(alg.One(), alg.Sqrt(alg.Add(alg.Mul(t, t), alg.One())))
		s := alg.Mul(t, c)

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := A[i*n+p], A[i*n+q]
			newIP := alg.Sub(alg.Mul(c, aip), alg.Mul(s, aiq))
			newIQ := alg.Add(alg.Mul(s, aip), alg.Mul(c, aiq))
			A[i*n+p], A[p*n+i] = newIP, newIP
			A[i*n+q], A[q*n+i] = newIQ, newIQ
		}
		// a'pp = app − t·apq, a'qq = aqq + t·apq
		A[p*n+p] = alg.Sub(app, alg.Mul(t, apq))
		A[q*n+q] = alg.Add(aqq, alg.Mul(t, apq))
		A[p*n+q], A[q*n+p] = alg.Zero(), alg.Zero()

		for i := 0; i < n; i++ {
			qip, qiq := Q[i*n+p], Q[i*n+q]
			Q[i*n+p] = alg.Sub(alg.Mul(c, qip), alg.Mul(s, qiq))
			Q[i*n+q] = alg.Add(alg.Mul(s, qip), alg.Mul(c, qiq))
		}
	}

	maxOff, _, _ := maxOffDiagonal(work)
	o.logger.V(1).Info("jacobi finished", "rotations", rotations, "maxOffDiagonal", maxOff, "tolerance", tol)
	if maxOff > tol {
		return nil, nil, matrixErrorf(opEigen, errors.Wrapf(ErrEigenFailed, "off-diagonal %g after %d rotations", maxOff, rotations))
	}

	eigs := make([]T, n)
	for i := range eigs {
		eigs[i] = A[i*n+i]
	}
	vecs, _ := FromSlice(alg, n, n, Q)

	return eigs, vecs, nil
}

// Power sets out = aⁿ by repeated squaring. n = 0 yields the identity and
// n < 0 raises the inverse to |n|.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (n < 0 only).
//
// Complexity:
//   - Time O(n³·log|n|), Space O(n²).
func Power[T any](n int, a, out *Dense[T], opts ...Option) error {
	if err := validateNotNil(a); err != nil {
		return matrixErrorf(opPower, err)
	}
	if err := validateOutput(out); err != nil {
		return matrixErrorf(opPower, err)
	}
	if err := validateSquare(a); err != nil {
		return matrixErrorf(opPower, err)
	}
	alg, dim := a.alg, a.r
	base := a.Data()
	if n < 0 {
		inv, err := invertRaw(alg, base, dim, gatherOptions(opts...))
		if err != nil {
			return matrixErrorf(opPower, err)
		}
		base, n = inv, -n
	}
	out.install(alg, dim, dim, powRaw(alg, base, dim, n))

	return nil
}

func powRaw[T any](alg scalar.Algebra[T], base []T, dim, n int) []T {
	result := identityRaw(alg, dim)
	for n > 0 {
		if n&1 == 1 {
			result = mulRaw(alg, result, dim, dim, base, dim)
		}
		n >>= 1
		if n > 0 {
			base = mulRaw(alg, base, dim, dim, base, dim)
		}
	}

	return result
}
