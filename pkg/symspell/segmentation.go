package symspell

import (
	"math"
	"strings"
)

type composition struct {
	segmented   string
	corrected   string
	distanceSum int
	probLogSum  float64
}

// WordSegmentation splits a run-together string (optionally with stray
// internal whitespace) into its most probable sequence of dictionary words,
// correcting each part along the way. It uses a circular buffer of
// compositions sized to min(maxSegmentationWordLength, |input|) rather than
// a full O(n^2) table.
func (s *SymSpell) WordSegmentation(input string, opts ...SegmentationOption) (SegmentationResult, error) {
	cfg := segmentationConfig{
		maxEditDistance:           s.opts.MaxDictionaryEditDistance,
		maxSegmentationWordLength: s.table.MaxWordLength(),
	}
	for _, o := range opts {
		o.applySegmentation(&cfg)
	}
	if cfg.maxSegmentationWordLength <= 0 {
		cfg.maxSegmentationWordLength = 20
	}

	var lookupOpts []LookupOption
	if cfg.ignoreToken != nil {
		lookupOpts = append(lookupOpts, WithIgnoreToken(cfg.ignoreToken))
	}

	inputRunes := []rune(input)
	n := len(inputRunes)

	arraySize := cfg.maxSegmentationWordLength
	if n < arraySize {
		arraySize = n
	}
	if arraySize <= 0 {
		return SegmentationResult{}, nil
	}

	compositions := make([]composition, arraySize)
	circularIndex := -1

	for j := 0; j < n; j++ {
		maxI := n - j
		if maxI > cfg.maxSegmentationWordLength {
			maxI = cfg.maxSegmentationWordLength
		}

		for i := 1; i <= maxI; i++ {
			part := string(inputRunes[j : j+i])
			separatorLength := 1
			if strings.HasPrefix(part, " ") {
				part = part[1:]
				separatorLength = 0
			}
			topEd := len([]rune(part))
			stripped := strings.ReplaceAll(part, " ", "")
			topEd -= len([]rune(stripped))
			part = stripped

			var topResult string
			var topProbabilityLog float64

			results, err := s.Lookup(part, Top, cfg.maxEditDistance, lookupOpts...)
			if err != nil {
				return SegmentationResult{}, err
			}
			if len(results) > 0 {
				topResult = results[0].Term
				topEd += results[0].Distance
				topProbabilityLog = math.Log10(float64(results[0].Count) / corpusSize)
			} else {
				topResult = part
				topEd += len([]rune(part))
				topProbabilityLog = math.Log10(10.0 / (corpusSize * math.Pow(10, float64(len([]rune(part))))))
			}

			destinationIndex := mod(i+circularIndex, arraySize)

			if j == 0 {
				compositions[destinationIndex] = composition{
					segmented:   part,
					corrected:   topResult,
					distanceSum: topEd,
					probLogSum:  topProbabilityLog,
				}
				continue
			}

			base := compositions[mod(circularIndex, arraySize)]
			combinedDist := base.distanceSum + separatorLength + topEd
			combinedProb := base.probLogSum + topProbabilityLog
			cur := compositions[destinationIndex]

			replace := i == cfg.maxSegmentationWordLength ||
				((combinedDist == cur.distanceSum || combinedDist+separatorLength == cur.distanceSum) && combinedProb > cur.probLogSum) ||
				combinedDist < cur.distanceSum

			if replace {
				// A whitespace-only span leaves an empty part; it adds no word
				// and therefore no separating space.
				segmented := base.segmented
				if part != "" {
					segmented += " " + part
				}
				corrected := base.corrected
				if topResult != "" {
					corrected += " " + topResult
				}
				compositions[destinationIndex] = composition{
					segmented:   segmented,
					corrected:   corrected,
					distanceSum: combinedDist,
					probLogSum:  combinedProb,
				}
			}
		}

		circularIndex++
		if circularIndex == arraySize {
			circularIndex = 0
		}
	}

	final := compositions[mod(circularIndex, arraySize)]
	return SegmentationResult{
		SegmentedString:   final.segmented,
		CorrectedString:   final.corrected,
		DistanceSum:       final.distanceSum,
		ProbabilityLogSum: final.probLogSum,
	}, nil
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
