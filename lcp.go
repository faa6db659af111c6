// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package libsa

// buildLCP implements the Φ/PLCP algorithm of Kärkkäinen, Manzini and
// Puglisi ("Permuted Longest-Common-Prefix Array") to derive the LCP array
// from a completed suffix array in linear time: building the naive LCP
// array by direct adjacent-suffix comparison is Θ(n²) in the worst case
// (e.g. highly periodic input), but Φ makes fewer than 2n successful
// character comparisons in total: the running length never exceeds n and,
// because plcp[k+1] >= plcp[k]-1, drops by at most one per position.
//
// Grounded on original_source/libsa.c's libsa_build_lcp; the teacher
// (nkamenev-suffixarr) has no LCP builder at all.
func buildLCP(sa []int32, text []int32) []int32 {
	n := len(text)
	lcp := make([]int32, n)
	if n < 2 {
		return lcp
	}

	// phi[p] is the starting position of the suffix immediately preceding
	// suffix p in SA order. phi[sa[0]] is never read.
	phi := make([]int32, n)
	for k := 1; k < n; k++ {
		phi[sa[k]] = sa[k-1]
	}

	// plcp[p] is the length of the common prefix of suffix p and suffix
	// phi[p]. The running length l drops by at most one between
	// consecutive positions instead of restarting from zero, which is what
	// keeps the whole scan linear.
	plcp := make([]int32, n)
	var l int32
	for k := 0; k < n-1; k++ {
		j := phi[k]
		for int32(k)+l < int32(n) && j+l < int32(n) && text[int32(k)+l] == text[j+l] {
			l++
		}
		plcp[k] = l
		if l > 0 {
			l--
		}
	}

	for k := 1; k < n; k++ {
		lcp[k] = plcp[sa[k]]
	}
	return lcp
}
