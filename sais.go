// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package libsa

// saisDense builds the suffix array of text, an integer string over a
// compact alphabet [0, sigma), using the linear-time SA-IS algorithm: type
// the text, bucket it by symbol, seed the suffix array from the LMS
// positions, induce the L- and S-type positions around that seed, name the
// resulting LMS substrings, and recurse on the reduced problem only when
// naming did not already yield a permutation.
func saisDense(text []int32, sigma int32) []int32 {
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
	sizes := bucketSizes(text, sigma)

	fill(sa, unset)
	insertLMS(text, sa, sizes, lms)
	induceL(text, sa, typ, sizes)
	induceS(text, sa, typ, sizes)
	assertPartialUnique(sa)

	if len(lms) > 1 {
		names, alphaSize := nameLMSSubstrings(text, typ, sa)
		assertf(len(names) == len(lms), "named %d LMS substrings, expected %d", len(names), len(lms))

		var sortedLMS []int32
		if alphaSize == int32(len(lms)) {
			// Every LMS substring got a unique name: the order already found by
			// induction is the sorted order, nothing to resolve recursively.
			sortedLMS = collectLMSFromSA(sa, typ)
		} else {
			subSA := saisDense(names, alphaSize)
			sortedLMS = make([]int32, len(lms))
			for k, p := range subSA {
				sortedLMS[k] = lms[p]
			}
		}

		fill(sa, unset)
		insertLMS(text, sa, sizes, sortedLMS)
	}

	induceL(text, sa, typ, sizes)
	induceS(text, sa, typ, sizes)
	return sa
}

// bucketSizes counts how many positions of text start with each symbol of
// an alphabet of size sigma.
func bucketSizes(text []int32, sigma int32) []int32 {
	sizes := make([]int32, sigma)
	for _, c := range text {
		sizes[c]++
	}
	return sizes
}

// bucketHeads returns a fresh cumulative table where bucketHeads[c] is the
// first suffix-array index reserved for symbol c. Every induction phase
// derives its own copy from sizes so that one phase's cursor movement can
// never leak into another's, per the bucket head/tail discipline.
func bucketHeads(sizes []int32) []int32 {
	heads := make([]int32, len(sizes))
	var sum int32
	for c, n := range sizes {
		heads[c] = sum
		sum += n
	}
	return heads
}

// bucketTails returns a fresh cumulative table where bucketTails[c] is the
// last suffix-array index reserved for symbol c.
func bucketTails(sizes []int32) []int32 {
	tails := make([]int32, len(sizes))
	var sum int32
	for c, n := range sizes {
		sum += n
		tails[c] = sum - 1
	}
	return tails
}

// insertLMS places each position in lms at the tail of its symbol's
// bucket. Scanning lms in reverse while retreating each bucket's tail
// preserves left-to-right order among LMS positions sharing a bucket.
func insertLMS(text []int32, sa []int32, sizes []int32, lms []int32) {
	tails := bucketTails(sizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := text[pos]
		sa[tails[c]] = pos
		tails[c]--
	}
}

// induceL induces L-type positions by scanning sa left to right: whenever
// a placed position's predecessor is L-type, the predecessor is appended
// to the head of its own bucket.
func induceL(text []int32, sa []int32, typ []bool, sizes []int32) {
	heads := bucketHeads(sizes)
	for k := 0; k < len(sa); k++ {
		pos := sa[k]
		if pos <= 0 {
			continue
		}
		pred := pos - 1
		if typ[pred] {
			continue // predecessor is S-type, not this pass's concern
		}
		c := text[pred]
		sa[heads[c]] = pred
		heads[c]++
	}
}

// induceS induces S-type positions by scanning sa right to left: whenever
// a placed position's predecessor is S-type, the predecessor is prepended
// to the tail of its own bucket, overwriting any provisional placement
// left there by insertLMS.
func induceS(text []int32, sa []int32, typ []bool, sizes []int32) {
	tails := bucketTails(sizes)
	for k := len(sa) - 1; k >= 0; k-- {
		pos := sa[k]
		if pos <= 0 {
			continue
		}
		pred := pos - 1
		if !typ[pred] {
			continue // predecessor is L-type, not this pass's concern
		}
		c := text[pred]
		sa[tails[c]] = pred
		tails[c]--
	}
}
