// Package dictentry holds the bookkeeping tables behind a SymSpell index:
// the Words table, the below-threshold staging table, and the deletes map
// used to fan a query out to every term that could have produced it.
package dictentry

import "math"

// CountMax is the saturation ceiling for accumulated term counts.
const CountMax = math.MaxInt64

// Table owns the Words, below-threshold, and deletes bookkeeping for one
// SymSpell index. It performs no I/O and knows nothing about lookup; it is
// mutated only by CreateEntry and read by the lookup algorithm in
// pkg/symspell.
type Table struct {
	prefixLength    int
	maxEditDistance int
	countThreshold  int

	words          map[string]int64
	belowThreshold map[string]int64
	deletes        map[string][]string
	maxWordLength  int
}

// New returns an empty Table configured with the index parameters that
// govern delete-variant generation and promotion.
func New(prefixLength, maxEditDistance, countThreshold int) *Table {
	return &Table{
		prefixLength:    prefixLength,
		maxEditDistance: maxEditDistance,
		countThreshold:  countThreshold,
		words:           make(map[string]int64),
		belowThreshold:  make(map[string]int64),
		deletes:         make(map[string][]string),
	}
}

// MaxWordLength returns the greatest length among terms currently in Words.
func (t *Table) MaxWordLength() int {
	return t.maxWordLength
}

// Word reports the count stored for term in Words and whether it is present.
func (t *Table) Word(term string) (int64, bool) {
	c, ok := t.words[term]
	return c, ok
}

// DeleteBucket returns the source terms registered under a delete variant.
func (t *Table) DeleteBucket(variant string) []string {
	return t.deletes[variant]
}

// WordCount returns the number of terms currently in Words.
func (t *Table) WordCount() int {
	return len(t.words)
}

// CreateEntry accumulates count against term, promoting it out of
// below-threshold staging into Words once its cumulative count meets
// countThreshold. It reports whether this call newly promoted the term into
// Words. Non-positive counts are clamped to a no-op when countThreshold is
// positive, matching the reference behavior of rejecting non-contributing
// entries rather than churning the tables.
func (t *Table) CreateEntry(term string, count int64) bool {
	if count <= 0 {
		if t.countThreshold > 0 {
			return false
		}
		count = 0
	}

	if existing, ok := t.belowThreshold[term]; ok {
		total := saturatingAdd(existing, count)
		if total >= int64(t.countThreshold) {
			delete(t.belowThreshold, term)
			return t.promote(term, total)
		}
		t.belowThreshold[term] = total
		return false
	}

	if existing, ok := t.words[term]; ok {
		t.words[term] = saturatingAdd(existing, count)
		return false
	}

	if count < int64(t.countThreshold) {
		t.belowThreshold[term] = count
		return false
	}

	return t.promote(term, count)
}

func (t *Table) promote(term string, count int64) bool {
	t.words[term] = count
	termRunes := []rune(term)
	if len(termRunes) > t.maxWordLength {
		t.maxWordLength = len(termRunes)
	}

	prefixRunes := termRunes
	if len(prefixRunes) > t.prefixLength {
		prefixRunes = prefixRunes[:t.prefixLength]
	}
	for _, variant := range Edits(string(prefixRunes), t.maxEditDistance) {
		// Edits only sees the prefix; the empty variant belongs to terms
		// that are themselves no longer than maxEditDistance.
		if variant == "" && len(termRunes) > t.maxEditDistance {
			continue
		}
		t.deletes[variant] = append(t.deletes[variant], term)
	}
	return true
}

func saturatingAdd(a, b int64) int64 {
	if a > CountMax-b {
		return CountMax
	}
	return a + b
}

// Edits enumerates the distinct strings obtainable by deleting up to
// maxEditDistance characters from term, one at a time, including term
// itself and, when |term| <= maxEditDistance, the empty string. Deletion
// operates on runes so multi-byte characters are removed whole, keeping the
// index-build side in agreement with the rune-based query side in
// pkg/symspell.
func Edits(term string, maxEditDistance int) []string {
	seen := map[string]struct{}{term: {}}
	result := []string{term}
	edits([]rune(term), 0, maxEditDistance, seen, &result)
	if len([]rune(term)) <= maxEditDistance {
		if _, ok := seen[""]; !ok {
			result = append(result, "")
		}
	}
	return result
}

func edits(word []rune, editDistance, maxEditDistance int, seen map[string]struct{}, result *[]string) {
	editDistance++
	if len(word) <= 1 {
		return
	}
	for i := 0; i < len(word); i++ {
		deleted := make([]rune, 0, len(word)-1)
		deleted = append(deleted, word[:i]...)
		deleted = append(deleted, word[i+1:]...)
		deletedStr := string(deleted)
		if _, ok := seen[deletedStr]; !ok {
			seen[deletedStr] = struct{}{}
			*result = append(*result, deletedStr)
			if editDistance < maxEditDistance {
				edits(deleted, editDistance, maxEditDistance, seen, result)
			}
		}
	}
}
