// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package libsa

// SuffixArray holds a symbol stream alongside its suffix array and LCP
// array, the two derived structures the original spec's §1 purpose names.
//
// The teacher this module adapts (nkamenev-suffixarr) wrapped the same
// fields with a Lookup/LookupTextOrder/LookupSuffix/LookupPrefix family
// and a separate generalized suffix array (GSA) type for multiple
// strings. Neither is reproduced here: the original spec's Non-goals
// explicitly exclude "generalized suffix arrays over multiple strings"
// and "searching or pattern matching on the resulting arrays", so
// SuffixArray is deliberately construction-only.
type SuffixArray struct {
	Text []int32
	SA   []int32
	LCP  []int32
}

// New builds the suffix array and LCP array of text in one call. text's
// final symbol must be strictly smaller than every symbol before it,
// generalized from the original spec's byte-alphabet precondition to an
// arbitrary int32 alphabet via saisWide/buildLCP.
func New(text []int32, opts *Options) (*SuffixArray, error) {
	n := len(text)
	if n >= 2 {
		if err := checkSentinelInt32(text); err != nil {
			return nil, err
		}
	}

	log := resolveLogger(opts)
	log.Logf("New: building suffix array and LCP array for %d symbols", n)

	sa := saisWide(text)
	lcp := make([]int32, n)
	if n >= 2 {
		lcp = buildLCP(sa, text)
	}
	debugCheckSA(sa, text)

	return &SuffixArray{Text: text, SA: sa, LCP: lcp}, nil
}
