// Package symspell implements the Symmetric Delete spelling correction
// index: single-term lookup, compound (multi-word) lookup, and word
// segmentation, all built on a shared delete-variant index.
package symspell

import "symcorrect/pkg/verbosity"

// Suggestion is one candidate correction: a term with its edit distance from
// the query and its dictionary count.
type Suggestion struct {
	Term     string
	Distance int
	Count    int64
}

// SegmentationResult holds the four output fields of WordSegmentation.
type SegmentationResult struct {
	SegmentedString   string
	CorrectedString   string
	DistanceSum       int
	ProbabilityLogSum float64
}

// LookupOption configures a single Lookup call.
type LookupOption interface {
	applyLookup(*lookupConfig)
}

type lookupConfig struct {
	includeUnknown        bool
	ignoreToken           func(string) bool
	transferCasing        bool
	keyboardAwareTiebreak bool
}

type lookupOptionFunc func(*lookupConfig)

func (f lookupOptionFunc) applyLookup(c *lookupConfig) { f(c) }

// WithIncludeUnknown appends a synthetic zero-count suggestion at
// distance+1 when a Lookup call would otherwise return no results.
func WithIncludeUnknown() LookupOption {
	return lookupOptionFunc(func(c *lookupConfig) { c.includeUnknown = true })
}

// WithIgnoreToken supplies a predicate that, when it matches the input,
// causes Lookup to record the input itself as an exact-match suggestion of
// count 1 even if it is absent from the dictionary.
func WithIgnoreToken(pred func(string) bool) LookupOption {
	return lookupOptionFunc(func(c *lookupConfig) { c.ignoreToken = pred })
}

// WithTransferCasing lowercases the input for matching, then re-applies the
// casing pattern of the original input onto every returned term.
func WithTransferCasing() LookupOption {
	return lookupOptionFunc(func(c *lookupConfig) { c.transferCasing = true })
}

// WithKeyboardAwareTiebreak breaks ties between suggestions of equal
// distance and count by preferring the one whose edit looks like a
// plausible adjacent-key mistype of input, per internal/keyboard.
func WithKeyboardAwareTiebreak() LookupOption {
	return lookupOptionFunc(func(c *lookupConfig) { c.keyboardAwareTiebreak = true })
}

// CompoundOption configures a single LookupCompound call.
type CompoundOption interface {
	applyCompound(*compoundConfig)
}

type compoundConfig struct {
	ignoreNonWords bool
	transferCasing bool
}

type compoundOptionFunc func(*compoundConfig)

func (f compoundOptionFunc) applyCompound(c *compoundConfig) { f(c) }

// WithIgnoreNonWords passes numeric tokens and all-caps acronyms through
// unchanged instead of trying to correct them.
func WithIgnoreNonWords() CompoundOption {
	return compoundOptionFunc(func(c *compoundConfig) { c.ignoreNonWords = true })
}

// WithCompoundTransferCasing re-applies the original input's casing pattern
// onto the aggregate corrected phrase.
func WithCompoundTransferCasing() CompoundOption {
	return compoundOptionFunc(func(c *compoundConfig) { c.transferCasing = true })
}

// SegmentationOption configures a single WordSegmentation call.
type SegmentationOption interface {
	applySegmentation(*segmentationConfig)
}

type segmentationConfig struct {
	maxEditDistance           int
	maxSegmentationWordLength int
	ignoreToken               func(string) bool
}

type segmentationOptionFunc func(*segmentationConfig)

func (f segmentationOptionFunc) applySegmentation(c *segmentationConfig) { f(c) }

// WithSegmentationEditDistance bounds per-part correction distance during
// segmentation. Defaults to the engine's configured maximum.
func WithSegmentationEditDistance(maxEditDistance int) SegmentationOption {
	return segmentationOptionFunc(func(c *segmentationConfig) { c.maxEditDistance = maxEditDistance })
}

// WithMaxSegmentationWordLength bounds how long a single segmented part may
// be. Defaults to the engine's maxWordLength.
func WithMaxSegmentationWordLength(n int) SegmentationOption {
	return segmentationOptionFunc(func(c *segmentationConfig) { c.maxSegmentationWordLength = n })
}

// WithSegmentationIgnoreToken forwards a predicate to the per-part Lookup
// calls segmentation performs internally.
func WithSegmentationIgnoreToken(pred func(string) bool) SegmentationOption {
	return segmentationOptionFunc(func(c *segmentationConfig) { c.ignoreToken = pred })
}

// Verbosity re-exports the verbosity type under this package so callers
// of Lookup do not need a second import for the common case.
type Verbosity = verbosity.Verbosity

const (
	Top     = verbosity.Top
	Closest = verbosity.Closest
	All     = verbosity.All
)
