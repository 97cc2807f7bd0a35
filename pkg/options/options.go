// Package options provides the functional-options constructors accepted by
// symspell.New.
package options

// DefaultOptions mirrors the reference SymSpell defaults: two-edit
// tolerance, a seven-character prefix index, and no below-threshold
// staging.
var DefaultOptions = SymspellOptions{
	MaxDictionaryEditDistance: 2,
	PrefixLength:              7,
	CountThreshold:            1,
}

// SymspellOptions holds the index-level parameters an engine is built with.
// These are fixed for the lifetime of the index; per-call behavior (verbosity,
// casing transfer, ignore predicates) is configured separately on each
// Lookup/LookupCompound/WordSegmentation call.
type SymspellOptions struct {
	MaxDictionaryEditDistance int
	PrefixLength              int
	CountThreshold            int
}

// Options applies one setting to a SymspellOptions being built up by New.
type Options interface {
	Apply(options *SymspellOptions)
}

// FuncConfig adapts a plain function to the Options interface.
type FuncConfig struct {
	ops func(options *SymspellOptions)
}

func (w FuncConfig) Apply(conf *SymspellOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SymspellOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// WithMaxDictionaryEditDistance bounds the largest edit distance any lookup
// against this index may request.
func WithMaxDictionaryEditDistance(maxDictionaryEditDistance int) Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.MaxDictionaryEditDistance = maxDictionaryEditDistance
	})
}

// WithPrefixLength sets how many leading characters of each term take part
// in delete-variant generation.
func WithPrefixLength(prefixLength int) Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.PrefixLength = prefixLength
	})
}

// WithCountThreshold sets the minimum accumulated count a term needs before
// it is promoted out of below-threshold staging and becomes queryable.
func WithCountThreshold(countThreshold int) Options {
	return NewFuncOption(func(options *SymspellOptions) {
		options.CountThreshold = countThreshold
	})
}
