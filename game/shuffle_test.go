package game

import (
	"math/rand"
	"testing"
)

func TestShuffleKeepsPermutation(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "empty", n: 0},
		{name: "single", n: 1},
		{name: "small", n: 9},
		{name: "full table", n: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rand.New(rand.NewSource(7))
			vals := make([]int, tt.n)
			for i := range vals {
				vals[i] = i + 1
			}

			Shuffle(r, vals)

			if len(vals) != tt.n {
				t.Fatalf("length changed: got %d want %d", len(vals), tt.n)
			}
			seen := make(map[int]bool, tt.n)
			for _, v := range vals {
				if v < 1 || v > tt.n {
					t.Fatalf("value %d out of range [1, %d]", v, tt.n)
				}
				if seen[v] {
					t.Fatalf("value %d appears more than once", v)
				}
				seen[v] = true
			}
		})
	}
}

func TestShuffleTinySequencesUntouched(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	Shuffle(r, nil)

	one := []int{42}
	Shuffle(r, one)
	if one[0] != 42 {
		t.Fatalf("single-element sequence changed: %v", one)
	}
}

func TestShuffleReorders(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	vals := make([]int, 25)
	for i := range vals {
		vals[i] = i + 1
	}

	Shuffle(r, vals)

	identity := true
	for i, v := range vals {
		if v != i+1 {
			identity = false
			break
		}
	}
	if identity {
		t.Fatal("shuffle left a 25-element sequence in identity order")
	}
}

// Each position should host each value roughly uniformly. With 40000
// trials over 4 elements the expected share is 0.25 with a standard
// deviation near 0.002, so a 0.02 band is far outside noise.
func TestShuffleUniformity(t *testing.T) {
	const (
		n         = 4
		trials    = 40000
		expected  = 1.0 / n
		tolerance = 0.02
	)

	r := rand.New(rand.NewSource(11))
	counts := [n][n]int{}

	for trial := 0; trial < trials; trial++ {
		vals := []int{1, 2, 3, 4}
		Shuffle(r, vals)
		for pos, v := range vals {
			counts[pos][v-1]++
		}
	}

	for pos := 0; pos < n; pos++ {
		for v := 0; v < n; v++ {
			share := float64(counts[pos][v]) / trials
			if share < expected-tolerance || share > expected+tolerance {
				t.Errorf("value %d at position %d: share %.4f outside %.2f±%.2f", v+1, pos, share, expected, tolerance)
			}
		}
	}
}
