package symspell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"symcorrect/internal/casing"
	"symcorrect/internal/dictentry"
	"symcorrect/internal/distance"
	"symcorrect/pkg/options"
)

// corpusSize is the reference corpus normalization constant used to convert
// raw counts into probabilities for compound scoring and segmentation.
const corpusSize = 1_024_908_267_229

// SymSpell is a Symmetric Delete spelling correction index. A zero-value
// SymSpell is not usable; construct one with New.
type SymSpell struct {
	opts options.SymspellOptions

	table   *dictentry.Table
	kernel  *distance.Kernel
	bigrams map[string]int64

	bigramCountMin int64
}

// New builds an empty index configured by opts, defaulting to
// options.DefaultOptions when none are supplied.
func New(opts ...options.Options) *SymSpell {
	cfg := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&cfg)
	}
	return &SymSpell{
		opts:    cfg,
		table:   dictentry.New(cfg.PrefixLength, cfg.MaxDictionaryEditDistance, cfg.CountThreshold),
		kernel:  distance.NewKernel(),
		bigrams: make(map[string]int64),
	}
}

// MaxDictionaryEditDistance returns the index's configured edit-distance
// ceiling; per-call maxEditDistance arguments must not exceed it.
func (s *SymSpell) MaxDictionaryEditDistance() int {
	return s.opts.MaxDictionaryEditDistance
}

// CreateDictionaryEntry accumulates count against term, returning true iff
// this call newly promoted term into the queryable Words table.
func (s *SymSpell) CreateDictionaryEntry(term string, count int64) bool {
	return s.table.CreateEntry(term, count)
}

// LoadDictionary reads (term, count) rows from source, one per line, split
// on separator. Lines with fewer than max(termIndex,countIndex)+1 fields, or
// an unparseable count, are skipped. Returns false if no line loaded
// successfully.
func (s *SymSpell) LoadDictionary(source io.Reader, termIndex, countIndex int, separator string) (bool, error) {
	scanner := bufio.NewScanner(source)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	minFields := termIndex
	if countIndex > minFields {
		minFields = countIndex
	}
	minFields++

	loaded := false
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), separator)
		if len(fields) < minFields {
			continue
		}
		count, err := strconv.ParseInt(fields[countIndex], 10, 64)
		if err != nil {
			continue
		}
		s.CreateDictionaryEntry(fields[termIndex], count)
		loaded = true
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("symspell: loading dictionary: %w", err)
	}
	return loaded, nil
}

// LoadBigramDictionary reads bigram rows from source. When separator is a
// single space, each line must yield at least 3 fields and the bigram key is
// fields[termIndex]+" "+fields[termIndex+1]; otherwise each line must yield
// at least 2 fields and the key is fields[termIndex] alone. Either way the
// count is read from fields[countIndex]; lines where that field is missing
// or unparseable are skipped.
func (s *SymSpell) LoadBigramDictionary(source io.Reader, termIndex, countIndex int, separator string) (bool, error) {
	scanner := bufio.NewScanner(source)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	twoWord := separator == " "
	loaded := false
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), separator)
		var key string
		var countField int
		if twoWord {
			if len(fields) < 3 {
				continue
			}
			key = fields[termIndex] + " " + fields[termIndex+1]
			countField = countIndex
		} else {
			if len(fields) < 2 {
				continue
			}
			key = fields[termIndex]
			countField = countIndex
		}
		if countField >= len(fields) {
			continue
		}
		count, err := strconv.ParseInt(fields[countField], 10, 64)
		if err != nil {
			continue
		}
		s.bigrams[key] = count
		if s.bigramCountMin == 0 || count < s.bigramCountMin {
			s.bigramCountMin = count
		}
		loaded = true
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("symspell: loading bigram dictionary: %w", err)
	}
	return loaded, nil
}

func (s *SymSpell) parseWords(text string, preserveCase bool) []string {
	return casing.ParseWords(text, preserveCase)
}
