// SPDX-License-Identifier: MIT

package tuple_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/katalvlaran/lvalg/tuple"
)

func ExampleAdd() {
	a, _ := tuple.Parse[float64](scalar.Float64{}, "1:2:3")
	b, _ := tuple.Parse[float64](scalar.Float64{}, "10:20:30")
	out := tuple.Empty[float64](scalar.Float64{})
	if err := tuple.Add(a, b, out); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: 11:22:33
}

// ExampleNewAlgebra solves two rational systems at once by treating pairs
// as scalars.
func ExampleNewAlgebra() {
	pairs, _ := tuple.NewAlgebra[*big.Rat](scalar.Rational{}, 2)
	a, _ := matrix.Parse[*tuple.Tuple[*big.Rat]](pairs, "[[2,1],[1,3:1]]")
	b, _ := matrix.Parse[*tuple.Tuple[*big.Rat]](pairs, "[[3],[5:2]]")
	x := matrix.Empty[*tuple.Tuple[*big.Rat]](pairs)
	if err := matrix.Solve(a, b, x); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x)
	// Output: [[4/5:1],[7/5:1]]
}
