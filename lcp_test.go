// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package libsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// naiveLCP computes the LCP array by direct adjacent-suffix comparison,
// an O(n^2)-worst-case reference oracle independent of buildLCP's Φ/PLCP
// algorithm.
func naiveLCP(sa []int32, text []int32) []int32 {
	n := len(text)
	lcp := make([]int32, n)
	for k := 1; k < n; k++ {
		x, y := sa[k-1], sa[k]
		var l int32
		for int(x)+int(l) < n && int(y)+int(l) < n && text[x+l] == text[y+l] {
			l++
		}
		lcp[k] = l
	}
	return lcp
}

func TestBuildLCP(t *testing.T) {
	tests := map[string]struct {
		input []int32
	}{
		"hello":              {input: append([]int32("hello"), 0)},
		"banana":             {input: append([]int32("banana"), 0)},
		"abracadabra":        {input: append([]int32("abracadabra"), 0)},
		"periodic":           {input: append([]int32("abababab"), 0)},
		"same characters":    {input: append([]int32("aaaaaaaaaa"), 0)},
		"two symbols":        {input: []int32{2, 2, 1, 2, 0}},
		"single non-trivial": {input: []int32{5, 0}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var sigma int32
			for _, c := range tc.input {
				if c+1 > sigma {
					sigma = c + 1
				}
			}
			sa := saisDense(tc.input, sigma)
			got := buildLCP(sa, tc.input)
			want := naiveLCP(sa, tc.input)
			assert.Equal(t, want, got)
			assert.Equal(t, int32(0), got[0])
			for k := 1; k < len(got); k++ {
				assert.GreaterOrEqual(t, got[k], int32(0))
				assert.Less(t, got[k], int32(len(tc.input)))
			}
		})
	}
}

func TestBuildLCPShort(t *testing.T) {
	assert.Equal(t, []int32{0}, buildLCP([]int32{0}, []int32{0}))
	assert.Equal(t, []int32{}, buildLCP(nil, nil))
}

func TestBuildLCPStress(t *testing.T) {
	for _, n := range []int{2, 5, 37, 512} {
		text := genRandSentinelText(n)
		var sigma int32
		for _, c := range text {
			if c+1 > sigma {
				sigma = c + 1
			}
		}
		sa := saisDense(text, sigma)
		got := buildLCP(sa, text)
		want := naiveLCP(sa, text)
		assert.Equal(t, want, got, "size %d", n)
	}
}
