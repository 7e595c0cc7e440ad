package ca_test

import (
	"fmt"

	"github.com/avolokh/crosstab/ca"
	"github.com/avolokh/crosstab/contab"
)

// ExampleAnalyze maps employment type against education level and checks
// which categories the dominant axis pulls together.
func ExampleAnalyze() {
	tab, err := contab.New(
		[]string{
			"Central/local government",
			"Public sector Edu&Health",
			"State-owned enterprise",
			"Private firm",
			"Self-employed",
		},
		[]string{"Primary", "Secondary", "Tertiary"},
		[][]float64{
			{10, 40, 80},
			{5, 30, 100},
			{40, 60, 20},
			{30, 50, 40},
			{60, 40, 10},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := ca.Analyze(tab)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	first := res.Axes[0]
	fmt.Printf("axes: %d\n", res.Dim())
	fmt.Printf("axis 1 dominates: %v\n", first.Percent > 50)
	// Same-signed coordinates on an axis mean positive association.
	tertiary := first.ColCoords[2]
	publicSector := first.RowCoords[1]
	selfEmployed := first.RowCoords[4]
	fmt.Printf("Tertiary sits with Public sector: %v\n", tertiary*publicSector > 0)
	fmt.Printf("Tertiary sits with Self-employed: %v\n", tertiary*selfEmployed > 0)

	// Output:
	// axes: 2
	// axis 1 dominates: true
	// Tertiary sits with Public sector: true
	// Tertiary sits with Self-employed: false
}
