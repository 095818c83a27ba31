// SPDX-License-Identifier: MIT
package lap_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphalign/lap"
	"github.com/katalvlaran/graphalign/scratch"
)

var sinkRes lap.Result

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{32, 128, 512} {
		cost := randCost(b, rand.New(rand.NewSource(int64(n))), n, 0, 1000)
		b.Run(fmt.Sprintf("n=%d/heap", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := lap.Solve(cost)
				if err != nil {
					b.Fatal(err)
				}
				sinkRes = res
			}
		})
		b.Run(fmt.Sprintf("n=%d/pool", n), func(b *testing.B) {
			b.ReportAllocs()
			pool := scratch.NewPool()
			for i := 0; i < b.N; i++ {
				res, err := lap.Solve(cost, lap.WithAllocator(pool))
				if err != nil {
					b.Fatal(err)
				}
				sinkRes = res
			}
		})
	}
}
