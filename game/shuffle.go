package game

import "math/rand"

// Shuffle permutes vals in place with an unbiased Fisher-Yates exchange:
// walk from the last index down to 1 and swap with a uniform index in
// [0, i]. Sequences of length 0 or 1 are left untouched.
func Shuffle(r *rand.Rand, vals []int) {
	for i := len(vals) - 1; i >= 1; i-- {
		j := r.Intn(i + 1)
		vals[i], vals[j] = vals[j], vals[i]
	}
}
