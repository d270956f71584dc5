// SPDX-License-Identifier: MIT

package scalar

// Decimal expansions shared by the exact/high-precision algebras. The float
// algebras use the math package constants.
const (
	piDigits    = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"
	eDigits     = "2.71828182845904523536028747135266249775724709369995957496696762772407663035354759457138217852516642742"
	gammaDigits = "0.57721566490153286060651209008240243104215933593992359880576723488486772677766467093694706329174674951"
)

// EulerGamma is the Euler–Mascheroni constant γ.
const EulerGamma = 0.57721566490153286060651209008240243104215933593992

// Constants is the per-algebra table of well-known values. It replaces
// per-type global singletons: each algebra computes its table on demand.
type Constants[T any] struct {
	Pi    T
	E     T
	Gamma T
}

// Constanter is implemented by algebras that can represent the table.
type Constanter[T any] interface {
	Constants() Constants[T]
}
