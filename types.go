// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package libsa

// unset marks a suffix array slot that has not yet been assigned a
// position. Go has no native tagged union cheap enough for a hot inner
// loop, so -1 plays that role here, the same way the original C source
// used memset(-1) over the result buffer.
const unset = int32(-1)

// classify types every position of text as S-type (true) or L-type
// (false). Suffix k is S-type when it is lexicographically smaller than
// suffix k+1, L-type otherwise. By convention the final position is
// S-type; the scan runs right to left because T[k] depends on T[k+1].
func classify(text []int32) []bool {
	n := len(text)
	typ := make([]bool, n)
	if n == 0 {
		return typ
	}
	typ[n-1] = true
	for k := n - 2; k >= 0; k-- {
		switch {
		case text[k] < text[k+1]:
			typ[k] = true
		case text[k] > text[k+1]:
			typ[k] = false
		default:
			typ[k] = typ[k+1]
		}
	}
	return typ
}

// isLMS reports whether k is a left-most S-type position: an S-type
// position immediately preceded by an L-type position.
func isLMS(typ []bool, k int) bool {
	return k > 0 && typ[k] && !typ[k-1]
}

// lmsPositions collects the LMS positions of typ in left-to-right order
// of occurrence.
func lmsPositions(typ []bool) []int32 {
	var lms []int32
	for k := 1; k < len(typ); k++ {
		if typ[k] && !typ[k-1] {
			lms = append(lms, int32(k))
		}
	}
	return lms
}

// fill sets every entry of sa to v.
func fill(sa []int32, v int32) {
	for i := range sa {
		sa[i] = v
	}
}

// collectLMSFromSA scans a fully populated sa left to right and returns
// the LMS positions in the order they appear. When every LMS substring
// turned out to have a unique name, this order is already the final
// sorted order of the LMS positions (no recursion needed).
func collectLMSFromSA(sa []int32, typ []bool) []int32 {
	out := make([]int32, 0, len(sa))
	for _, pos := range sa {
		if pos > 0 && isLMS(typ, int(pos)) {
			out = append(out, pos)
		}
	}
	return out
}

// lmsSubstringsEqual reports whether the LMS substrings starting at x and
// y are equal: same length, identical symbols, and identical type labels,
// character for character. x and y are always distinct, positive LMS
// positions here, so the loop terminates either on a mismatch or on a
// synchronized boundary (both sides reaching their own next-LMS position
// at the same offset).
func lmsSubstringsEqual(text []int32, typ []bool, x, y int32) bool {
	for {
		if text[x] != text[y] {
			return false
		}
		if typ[x] != typ[y] {
			return false
		}
		// !typ[x] && typ[x+1] means x+1 is the next LMS position, i.e. the
		// inclusive end of the substring that started at the original x.
		if !typ[x] && typ[x+1] && !typ[y] && typ[y+1] {
			return text[x+1] == text[y+1]
		}
		x++
		y++
	}
}

// nameLMSSubstrings names each LMS substring encountered while walking sa
// (a provisionally LMS-sorted suffix array), giving equal LMS substrings
// equal names. Names are gathered in ascending input-position order, the
// same order lmsPositions returns, so names[i] names the substring
// starting at lms[i] for the lms slice computed from the same typ. The
// final position (the sentinel) always names 0, since its LMS substring
// is unique to it and must sort first.
func nameLMSSubstrings(text []int32, typ []bool, sa []int32) (names []int32, alphaSize int32) {
	n := int32(len(text))
	name := make([]int32, n)
	for i := range name {
		name[i] = -1
	}
	name[n-1] = 0
	var cur int32
	prior := int32(-1)
	for _, pos := range sa[1:] {
		if pos <= 0 || !isLMS(typ, int(pos)) {
			continue
		}
		if prior < 0 || !lmsSubstringsEqual(text, typ, prior, pos) {
			cur++
		}
		name[pos] = cur
		prior = pos
	}
	names = make([]int32, 0, len(sa))
	for k := int32(0); k < n; k++ {
		if name[k] >= 0 {
			names = append(names, name[k])
		}
	}
	return names, cur + 1
}
