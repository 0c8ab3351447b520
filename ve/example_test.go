// SPDX-License-Identifier: MIT

package ve_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/models"
	"github.com/katalvlaran/lvbayes/ve"
)

// ExampleEngine_Query observes A=1 on the chain A → B → C and asks for C.
func ExampleEngine_Query() {
	bn, _ := models.Chain()
	a, _ := bn.Variable("A")
	c, _ := bn.Variable("C")
	obs, _ := ve.Observe(a, factor.Int(1))

	res, err := ve.New().Query(context.Background(), bn, c, ve.Evidence{obs})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	fmt.Printf("P(A=1) = %.2f\n", res.Likelihood)

	// Output:
	// P(C) = [0: 0.42, 1: 0.58]
	// P(A=1) = 0.40
}

// ExampleVE uses the evidence slots on the variables themselves.
func ExampleVE() {
	bn, _ := models.Alarm()
	burglary, _ := bn.Variable("Burglary")
	john, _ := bn.Variable("JohnCalls")
	mary, _ := bn.Variable("MaryCalls")
	_ = john.SetEvidence(factor.Bool(true))
	_ = mary.SetEvidence(factor.Bool(true))

	dist, err := ve.VE(bn, burglary, []*factor.Variable{john, mary}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("P(Burglary=true | John, Mary) = %.4f\n", dist[0])

	// Output:
	// P(Burglary=true | John, Mary) = 0.2842
}
