package symspell

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"symcorrect/internal/casing"
	"symcorrect/internal/keyboard"
	"symcorrect/pkg/verbosity"
)

// ErrEditDistanceTooLarge is returned when a caller requests a per-query
// maxEditDistance beyond the index's configured maximum.
var ErrEditDistanceTooLarge = errors.New("symspell: requested edit distance exceeds index configuration")

// Lookup returns spelling suggestions for input. verbosity controls whether
// one, all tied-for-closest, or every within-bound suggestion is returned.
func (s *SymSpell) Lookup(input string, v verbosity.Verbosity, maxEditDistance int, opts ...LookupOption) ([]Suggestion, error) {
	if maxEditDistance > s.opts.MaxDictionaryEditDistance {
		return nil, fmt.Errorf("%w: requested %d, configured %d", ErrEditDistanceTooLarge, maxEditDistance, s.opts.MaxDictionaryEditDistance)
	}

	var cfg lookupConfig
	for _, o := range opts {
		o.applyLookup(&cfg)
	}

	originalInput := input
	if cfg.transferCasing {
		input = strings.ToLower(input)
	}

	results := s.lookupInternal(input, v, maxEditDistance, cfg.ignoreToken)

	if len(results) == 0 && cfg.includeUnknown {
		results = append(results, Suggestion{Term: input, Distance: maxEditDistance + 1, Count: 0})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		if cfg.keyboardAwareTiebreak {
			return keyboard.AverageSubstitutionCost(originalInput, results[i].Term, 0.6) <
				keyboard.AverageSubstitutionCost(originalInput, results[j].Term, 0.6)
		}
		return false
	})

	if cfg.transferCasing {
		for i := range results {
			results[i].Term = casing.TransferCasingSimilar(originalInput, results[i].Term)
		}
	}

	return results, nil
}

func (s *SymSpell) lookupInternal(input string, v verbosity.Verbosity, maxEditDistance int, ignoreToken func(string) bool) []Suggestion {
	inputRunes := []rune(input)
	inputLen := len(inputRunes)

	var results []Suggestion

	if inputLen-maxEditDistance > s.table.MaxWordLength() {
		return results
	}

	if count, ok := s.table.Word(input); ok {
		results = append(results, Suggestion{Term: input, Distance: 0, Count: count})
		if v != verbosity.All {
			return results
		}
	}

	if ignoreToken != nil && ignoreToken(input) {
		results = append(results, Suggestion{Term: input, Distance: 0, Count: 1})
		if v != verbosity.All {
			return results
		}
	}

	if maxEditDistance == 0 {
		return results
	}

	prefixLength := s.opts.PrefixLength
	inputPrefixLen := inputLen
	inputPrefixRunes := inputRunes
	if inputLen > prefixLength {
		inputPrefixLen = prefixLength
		inputPrefixRunes = inputRunes[:prefixLength]
	}
	inputPrefix := string(inputPrefixRunes)

	queue := []string{inputPrefix}
	consideredDeletes := map[string]struct{}{inputPrefix: {}}
	consideredSuggestions := map[string]struct{}{input: {}}
	maxEditDistance2 := maxEditDistance

	for len(queue) > 0 {
		candidate := queue[0]
		queue = queue[1:]
		candRunes := []rune(candidate)
		candidateLen := len(candRunes)

		lengthDiff := inputPrefixLen - candidateLen
		if lengthDiff > maxEditDistance2 {
			if v == verbosity.All {
				continue
			}
			break
		}

		if bucket := s.table.DeleteBucket(candidate); len(bucket) > 0 {
			for _, suggestion := range bucket {
				if suggestion == input {
					continue
				}
				suggRunes := []rune(suggestion)
				suggestionLen := len(suggRunes)

				if absInt(suggestionLen-inputLen) > maxEditDistance2 {
					continue
				}
				if suggestionLen < candidateLen {
					continue
				}
				if suggestionLen == candidateLen && suggestion != candidate {
					continue
				}
				minPrefixLen := suggestionLen
				if prefixLength < minPrefixLen {
					minPrefixLen = prefixLength
				}
				if minPrefixLen > inputPrefixLen && minPrefixLen-candidateLen > maxEditDistance2 {
					continue
				}

				var dist int
				switch {
				case candidateLen == 0:
					dist = inputLen
					if suggestionLen > dist {
						dist = suggestionLen
					}
					if dist > maxEditDistance2 {
						continue
					}
					if _, seen := consideredSuggestions[suggestion]; seen {
						continue
					}
					consideredSuggestions[suggestion] = struct{}{}

				case suggestionLen == 1:
					if strings.ContainsRune(input, suggRunes[0]) {
						dist = inputLen - 1
					} else {
						dist = inputLen
					}
					if dist > maxEditDistance2 {
						continue
					}
					if _, seen := consideredSuggestions[suggestion]; seen {
						continue
					}
					consideredSuggestions[suggestion] = struct{}{}

				default:
					if prefixLength-maxEditDistance == candidateLen {
						m := inputLen
						if suggestionLen < m {
							m = suggestionLen
						}
						m -= prefixLength
						if suffixMismatch(inputRunes, suggRunes, m) {
							continue
						}
					} else if v != verbosity.All && !deleteInSuggestionPrefix(candRunes, suggRunes, prefixLength) {
						continue
					}
					if _, seen := consideredSuggestions[suggestion]; seen {
						continue
					}
					consideredSuggestions[suggestion] = struct{}{}
					dist = s.kernel.Distance(input, suggestion, maxEditDistance2)
					if dist < 0 {
						continue
					}
				}

				if dist > maxEditDistance2 {
					continue
				}
				count, _ := s.table.Word(suggestion)
				sugg := Suggestion{Term: suggestion, Distance: dist, Count: count}

				switch v {
				case verbosity.Top:
					if len(results) == 0 || dist < results[0].Distance ||
						(dist == results[0].Distance && sugg.Count > results[0].Count) {
						results = []Suggestion{sugg}
						maxEditDistance2 = dist
					}
				case verbosity.Closest:
					if len(results) == 0 || dist < maxEditDistance2 {
						results = []Suggestion{sugg}
					} else if dist == maxEditDistance2 {
						results = append(results, sugg)
					}
					maxEditDistance2 = dist
				case verbosity.All:
					results = append(results, sugg)
				}
			}
		}

		if lengthDiff < maxEditDistance && candidateLen <= prefixLength {
			if v != verbosity.All && lengthDiff >= maxEditDistance2 {
				continue
			}
			for i := 0; i < len(candRunes); i++ {
				deleted := make([]rune, 0, len(candRunes)-1)
				deleted = append(deleted, candRunes[:i]...)
				deleted = append(deleted, candRunes[i+1:]...)
				deletedStr := string(deleted)
				if _, seen := consideredDeletes[deletedStr]; !seen {
					consideredDeletes[deletedStr] = struct{}{}
					queue = append(queue, deletedStr)
				}
			}
		}
	}

	return results
}

// deleteInSuggestionPrefix reports whether every character of candidate
// occurs, in order, within the first prefixLength characters of suggestion.
func deleteInSuggestionPrefix(candidate, suggestion []rune, prefixLength int) bool {
	if len(candidate) == 0 {
		return true
	}
	limit := len(suggestion)
	if limit > prefixLength {
		limit = prefixLength
	}
	j := 0
	for i := 0; i < limit && j < len(candidate); i++ {
		if suggestion[i] == candidate[j] {
			j++
		}
	}
	return j == len(candidate)
}

// suffixMismatch implements the prefix-exhausted suffix guard: it reports
// true (reject the candidate) when the trailing min characters of input and
// suggestion disagree in a way no single adjacent transposition can repair.
func suffixMismatch(input, suggestion []rune, min int) bool {
	n, m := len(input), len(suggestion)
	if min > 1 {
		if n+1-min < 0 || m+1-min < 0 {
			return true
		}
		if string(input[n+1-min:]) != string(suggestion[m+1-min:]) {
			return true
		}
	}
	if min > 0 {
		if n-min < 0 || m-min < 0 {
			return true
		}
		if input[n-min] != suggestion[m-min] {
			if n-min-1 < 0 || m-min-1 < 0 {
				return true
			}
			if input[n-min-1] != suggestion[m-min] || input[n-min] != suggestion[m-min-1] {
				return true
			}
		}
	}
	return false
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
