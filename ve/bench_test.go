// SPDX-License-Identifier: MIT

package ve_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvbayes/ve"
)

func BenchmarkQuery_Alarm(b *testing.B) {
	bn := build(b, "alarm")
	q := variable(b, bn, "Burglary")
	ev := observe(b, bn, "JohnCalls", "true", "MaryCalls", "true")
	e := ve.New()
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := e.Query(ctx, bn, q, ev); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBruteForce_Alarm(b *testing.B) {
	bn := build(b, "alarm")
	q := variable(b, bn, "Burglary")
	ev := observe(b, bn, "JohnCalls", "true", "MaryCalls", "true")
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ve.BruteForce(ctx, bn, q, ev); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQuery_RandomWorkers(b *testing.B) {
	bn := randomNetwork(b, rand.New(rand.NewPCG(1, 2)), 5)
	q := bn.Variables()[0]
	ctx := context.Background()
	for _, tc := range []struct {
		name    string
		workers int
	}{{"seq", 1}, {"par4", 4}} {
		e := ve.New(ve.WithWorkers(tc.workers), ve.WithParallelThreshold(1))
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := e.Query(ctx, bn, q, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
