// SPDX-License-Identifier: MIT

package contab_test

import (
	"fmt"

	"github.com/avolokh/crosstab/contab"
)

// ExampleNew cross-tabulates a tiny survey and inspects its margins.
func ExampleNew() {
	tab, err := contab.New(
		[]string{"Private firm", "Self-employed"},
		[]string{"Primary", "Secondary", "Tertiary"},
		[][]float64{
			{30, 50, 40},
			{60, 40, 10},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rowMass, _, _ := contab.Masses(tab)
	fmt.Printf("N=%g\n", tab.GrandTotal())
	fmt.Printf("row masses: %.3f %.3f\n", rowMass[0], rowMass[1])

	// Output:
	// N=230
	// row masses: 0.522 0.478
}

// ExampleChiResiduals flags over- and under-represented cells.
func ExampleChiResiduals() {
	tab, _ := contab.New(
		[]string{"Private firm", "Self-employed"},
		[]string{"Primary", "Tertiary"},
		[][]float64{
			{30, 40},
			{60, 10},
		},
	)

	res, _ := contab.ChiResiduals(tab)
	v, _ := res.At(1, 1) // Self-employed × Tertiary
	if v < 0 {
		fmt.Println("Self-employed × Tertiary is under-represented")
	}

	// Output:
	// Self-employed × Tertiary is under-represented
}
