// Package casing implements the word tokenizer and the casing-transfer
// helpers SymSpell uses to preserve the caller's original capitalization
// when returning corrected terms.
package casing

import (
	"regexp"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*`)

var acronymPattern = regexp.MustCompile(`^[A-Z0-9]{2,}$`)

var lowerTransform = cases.Lower(language.Und)

// ParseWords extracts maximal runs of word characters (Unicode letters and
// digits, optionally joined by a single embedded straight or curly
// apostrophe) from text. Underscores and all other separators split tokens.
// When preserveCase is false, text is lowercased first using a
// locale-independent Unicode case fold rather than ASCII-only lowering.
func ParseWords(text string, preserveCase bool) []string {
	if !preserveCase {
		text = lowerTransform.String(text)
	}
	return wordPattern.FindAllString(text, -1)
}

// IsAcronym reports whether word is entirely uppercase letters and digits,
// at least two characters long.
func IsAcronym(word string) bool {
	return acronymPattern.MatchString(word)
}

// TransferCasingMatching copies dst's characters but recases each one to
// match the case of the corresponding position in src. src and dst must
// have equal rune length; extra dst runes beyond len(src) are lowercased.
func TransferCasingMatching(src, dst string) string {
	srcRunes := []rune(src)
	dstRunes := []rune(dst)
	out := make([]rune, len(dstRunes))
	for i, d := range dstRunes {
		if i < len(srcRunes) && unicode.IsUpper(srcRunes[i]) {
			out[i] = unicode.ToUpper(d)
		} else {
			out[i] = unicode.ToLower(d)
		}
	}
	return string(out)
}

// TransferCasingSimilar reapplies src's casing pattern onto dst, which is
// assumed to already be lowercase and only similar (not necessarily equal)
// in length to src. It aligns lower(src) against dst with a longest-common-
// subsequence diff and rebuilds a cased string opcode by opcode.
func TransferCasingSimilar(src, dst string) string {
	srcOrig := []rune(src)
	srcLower := []rune(lowerTransform.String(src))
	dstRunes := []rune(dst)

	ops := diffOps(srcLower, dstRunes)
	var out []rune
	for _, o := range ops {
		switch o.kind {
		case opEqual:
			out = append(out, srcOrig[o.i1:o.i2]...)
		case opDelete:
			// emit nothing
		case opInsert:
			out = append(out, transferInsert(srcOrig, dstRunes[o.j1:o.j2], o.i1)...)
		case opReplace:
			out = append(out, transferReplace(srcOrig[o.i1:o.i2], dstRunes[o.j1:o.j2])...)
		}
	}
	return string(out)
}

func transferInsert(srcOrig []rune, inserted []rune, i1 int) []rune {
	boundaryOK := i1 == 0 || (i1-1 >= 0 && i1-1 < len(srcOrig) && srcOrig[i1-1] == ' ')
	if boundaryOK && i1 < len(srcOrig) && unicode.IsUpper(srcOrig[i1]) {
		return toUpperRunes(inserted)
	}
	if i1-1 >= 0 && i1-1 < len(srcOrig) && unicode.IsUpper(srcOrig[i1-1]) {
		return toUpperRunes(inserted)
	}
	return toLowerRunes(inserted)
}

func transferReplace(srcSpan, dstSpan []rune) []rune {
	if len(srcSpan) == len(dstSpan) {
		return []rune(TransferCasingMatching(string(srcSpan), string(dstSpan)))
	}
	maxLen := len(srcSpan)
	if len(dstSpan) > maxLen {
		maxLen = len(dstSpan)
	}
	out := make([]rune, 0, len(dstSpan))
	lastUpper := false
	for i := 0; i < maxLen; i++ {
		if i < len(srcSpan) {
			lastUpper = unicode.IsUpper(srcSpan[i])
		}
		if i < len(dstSpan) {
			if lastUpper {
				out = append(out, unicode.ToUpper(dstSpan[i]))
			} else {
				out = append(out, unicode.ToLower(dstSpan[i]))
			}
		}
	}
	return out
}

func toUpperRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToUpper(r)
	}
	return out
}

func toLowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// ---- LCS-based diff, yielding difflib-style opcodes over rune ranges ----

type opKind int

const (
	opEqual opKind = iota
	opInsert
	opDelete
	opReplace
)

type op struct {
	kind   opKind
	i1, i2 int // [i1,i2) range into the src sequence
	j1, j2 int // [j1,j2) range into the dst sequence
}

// diffOps aligns a against b via a longest-common-subsequence backtrack and
// groups the result into equal/insert/delete/replace opcodes the way
// Python's difflib.SequenceMatcher.get_opcodes does for character streams.
func diffOps(a, b []rune) []op {
	n, m := len(a), len(b)
	dp := make([][]int32, n+1)
	for i := range dp {
		dp[i] = make([]int32, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	var raw []op
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			raw = append(raw, op{kind: opEqual, i1: i, i2: i + 1, j1: j, j2: j + 1})
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			raw = append(raw, op{kind: opDelete, i1: i, i2: i + 1, j1: j, j2: j})
			i++
		default:
			raw = append(raw, op{kind: opInsert, i1: i, i2: i, j1: j, j2: j + 1})
			j++
		}
	}
	for i < n {
		raw = append(raw, op{kind: opDelete, i1: i, i2: i + 1, j1: j, j2: j})
		i++
	}
	for j < m {
		raw = append(raw, op{kind: opInsert, i1: i, i2: i, j1: j, j2: j + 1})
		j++
	}
	return mergeOps(raw)
}

func mergeOps(raw []op) []op {
	var out []op
	idx := 0
	for idx < len(raw) {
		if raw[idx].kind == opEqual {
			start := idx
			for idx < len(raw) && raw[idx].kind == opEqual {
				idx++
			}
			out = append(out, op{
				kind: opEqual,
				i1:   raw[start].i1, i2: raw[idx-1].i2,
				j1: raw[start].j1, j2: raw[idx-1].j2,
			})
			continue
		}
		start := idx
		hasIns, hasDel := false, false
		for idx < len(raw) && raw[idx].kind != opEqual {
			if raw[idx].kind == opInsert {
				hasIns = true
			} else {
				hasDel = true
			}
			idx++
		}
		end := idx - 1
		grouped := op{
			i1: raw[start].i1, i2: raw[end].i2,
			j1: raw[start].j1, j2: raw[end].j2,
		}
		switch {
		case hasIns && hasDel:
			grouped.kind = opReplace
		case hasIns:
			grouped.kind = opInsert
		default:
			grouped.kind = opDelete
		}
		out = append(out, grouped)
	}
	return out
}
