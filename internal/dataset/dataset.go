// Package dataset builds the synthetic video identifier lists that the
// search benchmarks scan.
package dataset

import (
	"math/rand/v2"
	"strconv"
)

// LabelBase offsets every positional index before it is embedded in a label.
const LabelBase = 1000000

// Label returns the identifier synthesized for position i.
func Label(i int) string {
	return "VID_" + strconv.Itoa(LabelBase+i) + "_YouTube"
}

// Generate returns n distinct labels in random order.
//
// Each call shuffles with its own generator, seeded from the runtime's
// global source, so concurrent callers never share mutable state.
func Generate(n int) []string {
	if n <= 0 {
		return []string{}
	}

	videos := make([]string, n)
	for i := range videos {
		videos[i] = Label(i)
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	rng.Shuffle(len(videos), func(i, j int) {
		videos[i], videos[j] = videos[j], videos[i]
	})

	return videos
}
