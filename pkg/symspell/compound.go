package symspell

import (
	"math"
	"strings"

	"symcorrect/internal/casing"
)

// LookupCompound corrects a multi-word phrase by combining adjacent
// misspelled tokens, splitting run-together tokens, and falling back to
// per-token correction, returning a single aggregate Suggestion spanning the
// whole input.
func (s *SymSpell) LookupCompound(input string, maxEditDistance int, opts ...CompoundOption) (*Suggestion, error) {
	var cfg compoundConfig
	for _, o := range opts {
		o.applyCompound(&cfg)
	}

	originalInput := input
	tokens := s.parseWords(input, false)
	var originalTokens []string
	if cfg.ignoreNonWords {
		originalTokens = s.parseWords(input, true)
	}

	var parts []Suggestion
	lastCombi := false

	for i, token := range tokens {
		orig := token
		if i < len(originalTokens) {
			orig = originalTokens[i]
		}
		if cfg.ignoreNonWords && isNonWordToken(orig) {
			parts = append(parts, Suggestion{Term: orig, Distance: 0, Count: 0})
			lastCombi = false
			continue
		}

		best, err := s.Lookup(token, Top, maxEditDistance)
		if err != nil {
			return nil, err
		}

		if i > 0 && !lastCombi && len(parts) > 0 {
			combined := tokens[i-1] + token
			combi, err := s.Lookup(combined, Top, maxEditDistance)
			if err != nil {
				return nil, err
			}
			if len(combi) > 0 {
				best1 := parts[len(parts)-1]
				best2 := bestOrSynthetic(token, best, maxEditDistance)
				distanceSum := best1.Distance + best2.Distance
				combiDist := combi[0].Distance + 1
				if combiDist < distanceSum ||
					(combiDist == distanceSum && float64(combi[0].Count) > float64(best1.Count)/corpusSize*float64(best2.Count)) {
					merged := combi[0]
					merged.Distance = combiDist
					parts[len(parts)-1] = merged
					lastCombi = true
					continue
				}
			}
		}
		lastCombi = false

		best0 := bestOrSynthetic(token, best, maxEditDistance)
		if (len(best) > 0 && best[0].Distance == 0) || len([]rune(token)) == 1 {
			parts = append(parts, best0)
			continue
		}

		splitBest, found := s.bestSplit(token, maxEditDistance, best0, len(best) > 0)
		if found {
			parts = append(parts, splitBest)
		} else {
			parts = append(parts, syntheticSuggestion(token, maxEditDistance))
		}
	}

	aggregateTerm, aggregateCount := assembleCompound(parts)
	aggregateDist := s.kernel.Distance(originalInput, aggregateTerm, len([]rune(originalInput))+len([]rune(aggregateTerm)))
	if aggregateDist < 0 {
		aggregateDist = len([]rune(originalInput))
	}

	if cfg.transferCasing {
		aggregateTerm = casing.TransferCasingSimilar(originalInput, aggregateTerm)
	}

	return &Suggestion{Term: aggregateTerm, Distance: aggregateDist, Count: aggregateCount}, nil
}

func isNonWordToken(token string) bool {
	if token == "" {
		return false
	}
	if casing.IsAcronym(token) {
		return true
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func bestOrSynthetic(token string, best []Suggestion, maxEditDistance int) Suggestion {
	if len(best) > 0 {
		return best[0]
	}
	return syntheticSuggestion(token, maxEditDistance)
}

func syntheticSuggestion(token string, maxEditDistance int) Suggestion {
	return Suggestion{
		Term:     token,
		Distance: maxEditDistance + 1,
		Count:    int64(10 / math.Pow(10, float64(len([]rune(token))))),
	}
}

// bestSplit tries every split point of token, scoring each candidate
// two-word reconstruction by bigram frequency (falling back to a smoothed
// product of unigram probabilities), and returns the best split compared
// against the already-known single-term result.
func (s *SymSpell) bestSplit(token string, maxEditDistance int, singleBest Suggestion, haveSingle bool) (Suggestion, bool) {
	runes := []rune(token)
	var best Suggestion
	found := false
	if haveSingle {
		best = singleBest
		found = true
	}

	for j := 1; j < len(runes); j++ {
		part1 := string(runes[:j])
		part2 := string(runes[j:])

		s1, err := s.Lookup(part1, Top, maxEditDistance)
		if err != nil || len(s1) == 0 {
			continue
		}
		s2, err := s.Lookup(part2, Top, maxEditDistance)
		if err != nil || len(s2) == 0 {
			continue
		}

		candidateTerm := s1[0].Term + " " + s2[0].Term
		maxBound := len(runes) + len(s1[0].Term) + len(s2[0].Term) + 1
		dist := s.kernel.Distance(token, candidateTerm, maxBound)
		if dist < 0 {
			dist = maxEditDistance + 1
		}
		if found && dist > best.Distance {
			continue
		}

		var count int64
		if bigramCount, ok := s.bigrams[candidateTerm]; ok {
			count = bigramCount
			if s1[0].Term+s2[0].Term == token {
				boosted := s1[0].Count
				if s2[0].Count > boosted {
					boosted = s2[0].Count
				}
				boosted += 2
				if boosted > count {
					count = boosted
				}
			}
		} else {
			product := float64(s1[0].Count) / corpusSize * float64(s2[0].Count)
			count = s.bigramCountMin
			if int64(product) < count {
				count = int64(product)
			}
		}

		candidate := Suggestion{Term: candidateTerm, Distance: dist, Count: count}
		if !found || dist < best.Distance || (dist == best.Distance && count > best.Count) {
			best = candidate
			found = true
		}
	}

	return best, found
}

func assembleCompound(parts []Suggestion) (string, int64) {
	terms := make([]string, len(parts))
	logProb := 0.0
	for i, p := range parts {
		terms[i] = p.Term
		logProb += math.Log10(float64(p.Count) / corpusSize)
	}
	count := int64(math.Floor(corpusSize * math.Pow(10, logProb)))
	return strings.Join(terms, " "), count
}
