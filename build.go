// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package libsa

// BuildSuffixArray writes into out the suffix array of input: a
// permutation of 0..len(input) ordering the suffixes of input in
// ascending lexicographic order. input's final byte must be strictly
// smaller than every byte before it (the sentinel precondition); this is
// checked explicitly and reported as a *PreconditionError rather than
// asserted away, per the original spec's own recommendation.
//
// len(out) must equal len(input). If len(input) < 2 there is at most one
// suffix to place and out is written trivially.
func BuildSuffixArray(out []int32, input []byte, opts *Options) error {
	if len(out) != len(input) {
		return &PreconditionError{Reason: ReasonLengthMismatch, Index: -1}
	}
	n := len(input)
	if n == 0 {
		return nil
	}
	if n == 1 {
		out[0] = 0
		return nil
	}
	if err := checkSentinelBytes(input); err != nil {
		return err
	}

	log := resolveLogger(opts)
	var maxSym byte
	for _, b := range input {
		if b > maxSym {
			maxSym = b
		}
	}
	sigma := int32(maxSym) + 1
	text := widenBytes(input)

	log.Logf("BuildSuffixArray: n=%d sigma=%d", n, sigma)
	sa := saisDense(text, sigma)
	copy(out, sa)
	debugCheckSA(out, text)
	return nil
}

// BuildLCP writes into out the LCP array of sa, a suffix array of input as
// produced by BuildSuffixArray: for k >= 1, out[k] is the length of the
// longest common prefix of suffix(sa[k-1]) and suffix(sa[k]). out[0] is
// left zero-valued and unused, per the original spec's data model.
//
// len(out), len(sa) and len(input) must all agree.
func BuildLCP(out []int32, sa []int32, input []byte, opts *Options) error {
	n := len(input)
	if len(out) != n || len(sa) != n {
		return &PreconditionError{Reason: ReasonLengthMismatch, Index: -1}
	}
	if n < 2 {
		return nil
	}

	log := resolveLogger(opts)
	log.Logf("BuildLCP: n=%d", n)
	text := widenBytes(input)
	lcp := buildLCP(sa, text)
	copy(out, lcp)
	return nil
}

// BuildSuffixArrayWide is BuildSuffixArray for symbol streams that are not
// byte-sized: Unicode code points, k-mer codes, or any other bounded
// integer alphabet. It accepts the same sentinel precondition as
// BuildSuffixArray, generalized to int32 symbols.
func BuildSuffixArrayWide(out []int32, input []int32, opts *Options) error {
	if len(out) != len(input) {
		return &PreconditionError{Reason: ReasonLengthMismatch, Index: -1}
	}
	n := len(input)
	if n == 0 {
		return nil
	}
	if n == 1 {
		out[0] = 0
		return nil
	}
	if err := checkSentinelInt32(input); err != nil {
		return err
	}

	log := resolveLogger(opts)
	log.Logf("BuildSuffixArrayWide: n=%d", n)
	sa := saisWide(input)
	copy(out, sa)
	debugCheckSA(out, input)
	return nil
}

// BuildSuffixArrayWideString is a convenience wrapper over
// BuildSuffixArrayWide for Unicode text: it decodes s into runes, appends
// a sentinel strictly smaller than any valid rune, and returns both the
// decoded text and its suffix array.
func BuildSuffixArrayWideString(s string, opts *Options) (text []int32, sa []int32, err error) {
	text = make([]int32, 0, len(s)+1)
	for _, r := range s {
		text = append(text, r)
	}
	text = append(text, -1) // strictly smaller than any valid rune (>= 0)

	sa = make([]int32, len(text))
	if err := BuildSuffixArrayWide(sa, text, opts); err != nil {
		return nil, nil, err
	}
	return text, sa, nil
}

func widenBytes(input []byte) []int32 {
	text := make([]int32, len(input))
	for i, b := range input {
		text[i] = int32(b)
	}
	return text
}

// checkSentinelBytes enforces the original spec's two-part sentinel
// precondition: input[len(input)-1] must be strictly smaller than every
// byte in [0, len(input)-2) (ReasonSentinelNotMinimal), and must be unique
// (ReasonSentinelNotUnique). The minimality loop mirrors
// original_source/libsa.c's last_smallest exactly, including its
// historical gap of not checking the byte immediately preceding the
// sentinel (index len(input)-2); that byte is checked separately below: a
// smaller byte there is reported as ReasonSentinelNotMinimal, an equal one
// as ReasonSentinelNotUnique.
func checkSentinelBytes(input []byte) error {
	n := len(input)
	sentinel := input[n-1]
	for k := 0; k < n-2; k++ {
		if input[k] <= sentinel {
			return &PreconditionError{Reason: ReasonSentinelNotMinimal, Index: k}
		}
	}
	if input[n-2] < sentinel {
		return &PreconditionError{Reason: ReasonSentinelNotMinimal, Index: n - 2}
	}
	if input[n-2] == sentinel {
		return &PreconditionError{Reason: ReasonSentinelNotUnique, Index: n - 2}
	}
	return nil
}

// checkSentinelInt32 is checkSentinelBytes generalized to int32 symbols.
func checkSentinelInt32(input []int32) error {
	n := len(input)
	sentinel := input[n-1]
	for k := 0; k < n-2; k++ {
		if input[k] <= sentinel {
			return &PreconditionError{Reason: ReasonSentinelNotMinimal, Index: k}
		}
	}
	if input[n-2] < sentinel {
		return &PreconditionError{Reason: ReasonSentinelNotMinimal, Index: n - 2}
	}
	if input[n-2] == sentinel {
		return &PreconditionError{Reason: ReasonSentinelNotUnique, Index: n - 2}
	}
	return nil
}
