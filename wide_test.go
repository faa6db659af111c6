// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package libsa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSAISWideMatchesOracle(t *testing.T) {
	tests := map[string]struct {
		input []int32
	}{
		"sparse alphabet": {input: []int32{1000, -1000, 1000, -1000, 1000, -2000}},
		"unicode-like":    {input: append([]int32("héllo wörld"), -1)},
		"wide repeated":   {input: []int32{70000, 1, 70000, 1, 70000, 0}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := saisWide(tc.input)
			want := makeSA(tc.input)
			assert.Equal(t, want, got)
		})
	}
}

func TestSAISWideStress(t *testing.T) {
	for _, n := range []int{1, 2, 10, 300} {
		text := make([]int32, n+1)
		for i := 0; i < n; i++ {
			text[i] = rand.Int31n(2_000_000) - 1_000_000 + 2 // avoid the sentinel's value
		}
		text[n] = -1_000_001 // strictly smaller than every generated symbol above
		got := saisWide(text)
		want := makeSA(text)
		assert.Equal(t, want, got, "size %d", n)
	}
}

func TestBuildSuffixArrayWide(t *testing.T) {
	input := append([]int32("banana"), -1)
	out := make([]int32, len(input))
	err := BuildSuffixArrayWide(out, input, nil)
	assert.NoError(t, err)
	assert.Equal(t, makeSA(input), out)
}

func TestBuildSuffixArrayWidePreconditionViolated(t *testing.T) {
	input := []int32{1, 2, 2} // last element not strictly smallest
	out := make([]int32, len(input))
	err := BuildSuffixArrayWide(out, input, nil)
	assert.Error(t, err)
	var pe *PreconditionError
	assert.ErrorAs(t, err, &pe)
}

func TestBuildSuffixArrayWideSentinelNotUnique(t *testing.T) {
	input := []int32{9, 8, 7, -5, -5} // index n-2 repeats the sentinel
	out := make([]int32, len(input))
	err := BuildSuffixArrayWide(out, input, nil)
	assert.Error(t, err)
	var pe *PreconditionError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, ReasonSentinelNotUnique, pe.Reason)
	assert.Equal(t, len(input)-2, pe.Index)
}

func TestBuildSuffixArrayWideString(t *testing.T) {
	s := "banana"
	text, sa, err := BuildSuffixArrayWideString(s, nil)
	assert.NoError(t, err)
	assert.Equal(t, makeSA(text), sa)
	assert.Equal(t, int32(len(text)-1), sa[0])
}
