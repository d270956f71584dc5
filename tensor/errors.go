// SPDX-License-Identifier: MIT
// Package tensor: sentinel errors.
//
// Every sentinel is marked with the matching lvalg taxonomy error, so a
// caller may match either the narrow tensor error or the taxonomy one:
//
//	errors.Is(err, tensor.ErrSameAxis)         // true
//	errors.Is(err, lvalg.ErrInvalidArgument)   // also true

package tensor

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
)

var (
	// ErrNilTensor reports a nil operand or output handle.
	ErrNilTensor = lvalg.Mark("tensor: nil tensor", lvalg.ErrInvalidArgument)

	// ErrBadShape reports a negative rank or dimension at construction.
	ErrBadShape = lvalg.Mark("tensor: invalid rank or dimension", lvalg.ErrInvalidArgument)

	// ErrNotCartesian reports a ragged shape where every axis must share one dimension.
	ErrNotCartesian = lvalg.Mark("tensor: axes differ in dimension", lvalg.ErrShapeMismatch)

	// ErrSameAxis reports contracting an axis with itself.
	ErrSameAxis = lvalg.Mark("tensor: cannot contract an axis with itself", lvalg.ErrInvalidArgument)

	// ErrSameVariance reports contracting two upper or two lower indices of a
	// non-Cartesian tensor.
	ErrSameVariance = lvalg.Mark("tensor: contraction needs one upper and one lower index", lvalg.ErrInvalidArgument)

	// ErrNoMetric reports raising or lowering an index of a non-Cartesian
	// tensor; no metric is available to do so.
	ErrNoMetric = lvalg.Mark("tensor: no metric to raise or lower a non-Cartesian index", lvalg.ErrInvalidArgument)

	// ErrNegativePower reports Power with n < 0.
	ErrNegativePower = lvalg.Mark("tensor: negative tensor power", lvalg.ErrInvalidArgument)
)

// Operation tags used to prefix wrapped errors.
const (
	opNew       = "New"
	opFromSlice = "FromSlice"
	opParse     = "Parse"
	opAt        = "At"
	opSet       = "Set"
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opOuter     = "OuterProduct"
	opContract  = "Contract"
	opInner     = "InnerProduct"
	opPower     = "Power"
	opTranspose = "Transpose"
	opRaise     = "RaiseIndex"
	opLower     = "LowerIndex"
	opPartial   = "PartialDerivative"
	opComma     = "CommaDerivative"
	opSemicolon = "SemicolonDerivative"
	opBroadcast = "BroadcastTo"
	opApply     = "Apply"
)

// tensorErrorf prefixes err with "tensor.<op>".
func tensorErrorf(op string, err error) error {
	return errors.Wrapf(err, "tensor.%s", op)
}

func unsupportedf(op, capability string) error {
	return errors.Wrapf(lvalg.ErrUnsupported, "tensor.%s: algebra lacks %s", op, capability)
}
