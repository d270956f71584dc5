// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes the resolved options and the panic messages to
// matrix_test without widening the production API.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Eps             float64
	TaylorTerms     int
	PowerIterations int
	JacobiRotations int
	Pivoting        bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{
		Eps:             o.eps,
		TaylorTerms:     o.taylorTerms,
		PowerIterations: o.powerIterations,
		JacobiRotations: o.jacobiRotations,
		Pivoting:        o.pivoting,
	}
}

const (
	PanicEpsilonInvalid_TestOnly         = panicEpsilonInvalid
	PanicTaylorTermsInvalid_TestOnly     = panicTaylorTermsInvalid
	PanicPowerIterationsInvalid_TestOnly = panicPowerIterationsInvalid
	PanicJacobiRotationsInvalid_TestOnly = panicJacobiRotationsInvalid
)
