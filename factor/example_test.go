// SPDX-License-Identifier: MIT

package factor_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvbayes/factor"
)

// ExampleFactor_AddValues initialises a factor over heterogeneous domains
// from rows of "value per scope variable, then number" and reads one entry back.
func ExampleFactor_AddValues() {
	a := factor.MustVariable("A", 1, 2, 3)
	b := factor.MustVariable("B", "a", "b")
	c := factor.MustVariable("C", "heavy", "light")

	f, err := factor.New("F", a, b, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	err = f.AddValues(
		factor.MustRow(1, "a", "heavy", 0.25), factor.MustRow(1, "a", "light", 1.90),
		factor.MustRow(2, "b", "light", 2.25), factor.MustRow(3, "b", "heavy", 0.01),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	x, _ := f.Value(factor.MustValues(2, "b", "light")...)
	fmt.Println(f, x)

	// Output:
	// F(A, B, C) 2.25
}

// ExampleBinding reads a factor at an assignment held in a Binding.
func ExampleBinding() {
	rain := factor.MustVariable("Rain", true, false)
	wet := factor.MustVariable("Wet", true, false)
	f, _ := factor.New("P(Wet|Rain)", wet, rain)
	_ = f.SetTable([]float64{0.9, 0.2, 0.1, 0.8})

	b := factor.NewBinding()
	_ = b.Set(rain, factor.Bool(false))
	_ = b.Set(wet, factor.Bool(true))
	fmt.Println(f.ValueAt(b))

	// Output:
	// 0.2
}

// ExampleFactor_Format prints a table in canonical order.
func ExampleFactor_Format() {
	a := factor.MustVariable("A", 0, 1)
	f, _ := factor.New("P(A)", a)
	_ = f.SetTable([]float64{0.6, 0.4})
	_ = f.Format(os.Stdout)

	// Output:
	// [A = 0] = 0.6
	// [A = 1] = 0.4
}
