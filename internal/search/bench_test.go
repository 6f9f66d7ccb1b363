package search

import (
	"strconv"
	"testing"

	"linsearch/internal/dataset"
)

func BenchmarkLinear(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		data := dataset.Generate(size)
		target := data[size/2]

		b.Run("iterative/"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				LinearIterative(data, target)
			}
		})
		b.Run("recursive/"+strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				LinearRecursive(data, target)
			}
		})
	}
}
