// Package keyboard scores substitutions by their physical distance on a
// QWERTY layout, so a lookup can prefer corrections that plausibly came
// from a mistyped adjacent key over ones that don't.
package keyboard

import (
	"math"
	"unicode"
)

var rows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var keyPos = func() map[rune][2]int {
	m := make(map[rune][2]int)
	for r, row := range rows {
		for c, ch := range row {
			m[ch] = [2]int{r, c}
		}
	}
	return m
}()

// Distance returns the Euclidean distance between a and b's positions on
// the layout, or 2.5 if either rune isn't on it.
func Distance(a, b rune) float64 {
	a = unicode.ToLower(a)
	b = unicode.ToLower(b)
	pa, oka := keyPos[a]
	pb, okb := keyPos[b]
	if !oka || !okb {
		return 2.5
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return math.Sqrt(dr*dr + dc*dc)
}

// SubstitutionCost buckets Distance into a cost, with nearSub as the cost
// of a substitution between adjacent keys.
func SubstitutionCost(a, b rune, nearSub float64) float64 {
	d := Distance(a, b)
	switch {
	case d <= 1.0:
		return nearSub
	case d <= 1.5:
		return 0.8
	case d <= 2.2:
		return 1.2
	default:
		return 1.8
	}
}

// IsOneAdjacentSwap reports whether b is a's runes with exactly one pair of
// neighboring characters transposed.
func IsOneAdjacentSwap(a, b string) bool {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) != len(rb) || len(ra) < 2 {
		return false
	}
	diff := -1
	for i := range ra {
		if ra[i] != rb[i] {
			diff = i
			break
		}
	}
	if diff == -1 || diff+1 >= len(ra) {
		return false
	}
	if ra[diff] != rb[diff+1] || ra[diff+1] != rb[diff] {
		return false
	}
	for j := diff + 2; j < len(ra); j++ {
		if ra[j] != rb[j] {
			return false
		}
	}
	return true
}

// AverageSubstitutionCost scores how plausible it is that s2 is a
// keyboard-driven mistype of s1, by summing SubstitutionCost across their
// aligned runes (equal-length prefixes only) and dividing by the count
// compared. Lower is a more plausible fat-finger error.
func AverageSubstitutionCost(s1, s2 string, nearSub float64) float64 {
	r1, r2 := []rune(s1), []rune(s2)
	n := len(r1)
	if len(r2) < n {
		n = len(r2)
	}
	if n == 0 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		if r1[i] != r2[i] {
			total += SubstitutionCost(r1[i], r2[i], nearSub)
		}
	}
	return total / float64(n)
}
