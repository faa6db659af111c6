// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package libsa

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/bits"
	"slices"
)

// bucketRange is the [start, end] span of sa reserved for one symbol's
// suffixes, keyed by symbol value in a map rather than a dense array
// index. A byte alphabet fits in an array of 256 entries (sais.go); an
// arbitrary int32 alphabet (Unicode text, k-mer codes, sensor readings)
// does not, so saisWide buckets by map instead.
type bucketRange struct {
	start, end, size int32
}

// estimateAlphabetSize approximates the number of distinct symbols in text
// with an FNV-hash linear-counting sketch, so buildBucketMap can size its
// map without a full distinct-value pass. The estimate only sizes an
// allocation; every subsequent step computes exact bucket boundaries from
// the real symbols, so under- or over-estimating never affects
// correctness.
func estimateAlphabetSize(text []int32) int {
	n := len(text)
	if n == 0 {
		return 0
	}
	totalBits := uint64(n) * 32
	tmp := make([]uint32, n)

	var buf [4]byte
	h := fnv.New64a()
	for _, c := range text {
		binary.LittleEndian.PutUint32(buf[:], uint32(c))
		h.Reset()
		h.Write(buf[:])
		x := h.Sum64()
		bitIndex := x % totalBits
		slot := bitIndex / 32
		bit := uint32(bitIndex % 32)
		tmp[slot] |= 1 << bit
	}

	var zeroBits int
	for _, w := range tmp {
		zeroBits += bits.OnesCount32(^w)
	}
	if zeroBits == 0 {
		return int(totalBits)
	}
	estimate := -float64(totalBits) * math.Log(float64(zeroBits)/float64(totalBits))
	return int(estimate + 0.5)
}

// buildBucketMap counts occurrences of every distinct symbol in text and
// assigns each a contiguous [start, end] span ordered by ascending symbol
// value, the map equivalent of bucketSizes+bucketHeads/bucketTails.
func buildBucketMap(text []int32) map[int32]*bucketRange {
	estimate := estimateAlphabetSize(text)
	if estimate < 16 {
		estimate = 16
	}
	buckets := make(map[int32]*bucketRange, estimate)
	for _, c := range text {
		b, ok := buckets[c]
		if !ok {
			b = &bucketRange{}
			buckets[c] = b
		}
		b.size++
	}

	keys := make([]int32, 0, len(buckets))
	for c := range buckets {
		keys = append(keys, c)
	}
	slices.Sort(keys)

	var offset int32
	for _, c := range keys {
		b := buckets[c]
		b.start = offset
		offset += b.size
		b.end = offset - 1
	}
	return buckets
}

// resetBucketStarts restores every bucket's start cursor from its fixed
// size and its still-canonical end, called right before a function that
// just used start as a cursor returns, so the next consuming pass sees
// start canonical again.
func resetBucketStarts(buckets map[int32]*bucketRange) {
	for _, b := range buckets {
		b.start = b.end - b.size + 1
	}
}

// resetBucketEnds restores every bucket's end cursor from its fixed size
// and its still-canonical start, called right before a function that just
// used end as a cursor returns, so the next consuming pass sees end
// canonical again.
func resetBucketEnds(buckets map[int32]*bucketRange) {
	for _, b := range buckets {
		b.end = b.start + b.size - 1
	}
}

// insertLMSWide is insertLMS (sais.go) over a map-keyed bucket table. It
// consumes end as a cursor and restores it from the untouched, canonical
// start right before returning, so start and end are both canonical again
// for whichever phase runs next.
func insertLMSWide(text []int32, sa []int32, buckets map[int32]*bucketRange, lms []int32) {
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		b := buckets[text[pos]]
		sa[b.end] = pos
		b.end--
	}
	resetBucketEnds(buckets)
}

// induceLWide is induceL (sais.go) over a map-keyed bucket table. It
// consumes start as a cursor and restores it from the untouched, canonical
// end right before returning.
func induceLWide(text []int32, sa []int32, typ []bool, buckets map[int32]*bucketRange) {
	for k := 0; k < len(sa); k++ {
		pos := sa[k]
		if pos <= 0 {
			continue
		}
		pred := pos - 1
		if typ[pred] {
			continue
		}
		b := buckets[text[pred]]
		sa[b.start] = pred
		b.start++
	}
	resetBucketStarts(buckets)
}

// induceSWide is induceS (sais.go) over a map-keyed bucket table. It
// consumes end as a cursor and restores it from the untouched, canonical
// start right before returning.
func induceSWide(text []int32, sa []int32, typ []bool, buckets map[int32]*bucketRange) {
	for k := len(sa) - 1; k >= 0; k-- {
		pos := sa[k]
		if pos <= 0 {
			continue
		}
		pred := pos - 1
		if !typ[pred] {
			continue
		}
		b := buckets[text[pred]]
		sa[b.end] = pred
		b.end--
	}
	resetBucketEnds(buckets)
}

// saisWide builds the suffix array of an arbitrary int32 string: same
// algorithm as saisDense, but bucketed by map instead of by dense array so
// the alphabet need not be byte-sized. The reduced problem that naming may
// produce is always bounded by the LMS count, never by the original
// alphabet's width, so it recurses into saisDense rather than back into
// itself.
func saisWide(text []int32) []int32 {
	n := len(text)
	sa := make([]int32, n)
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	typ := classify(text)
	lms := lmsPositions(typ)
	buckets := buildBucketMap(text)

	fill(sa, unset)
	insertLMSWide(text, sa, buckets, lms)
	induceLWide(text, sa, typ, buckets)
	induceSWide(text, sa, typ, buckets)
	assertPartialUnique(sa)

	if len(lms) > 1 {
		names, alphaSize := nameLMSSubstrings(text, typ, sa)
		assertf(len(names) == len(lms), "named %d LMS substrings, expected %d", len(names), len(lms))

		var sortedLMS []int32
		if alphaSize == int32(len(lms)) {
			sortedLMS = collectLMSFromSA(sa, typ)
		} else {
			subSA := saisDense(names, alphaSize)
			sortedLMS = make([]int32, len(lms))
			for k, p := range subSA {
				sortedLMS[k] = lms[p]
			}
		}

		fill(sa, unset)
		insertLMSWide(text, sa, buckets, sortedLMS)
	}

	induceLWide(text, sa, typ, buckets)
	induceSWide(text, sa, typ, buckets)
	return sa
}
