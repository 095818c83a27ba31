// SPDX-License-Identifier: MIT
package score_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphalign/matrix"
	"github.com/katalvlaran/graphalign/permutation"
	"github.com/katalvlaran/graphalign/score"
)

var sinkM *matrix.Dense

func BenchmarkComputeM(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		in := randomInput(b, rand.New(rand.NewSource(int64(n))), n, n)
		in.P = permutation.Identity(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := score.ComputeM(in)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
