// Package convert transliterates Finglish (Persian written in Latin letters)
// into Persian script.
//
// A word is split into every plausible sequence of letter clusters, each
// sequence is mapped through the beginning/middle/ending tables, and the
// resulting spellings are ranked by how often they occur in a Persian corpus.
// Phrases are converted word by word and the per-word candidates are
// combined into ranked full-phrase candidates.
//
// A Converter only reads its *dictionary.Data, so one Converter can be used
// from many goroutines at once.
package convert

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bastiangx/finglish/pkg/dictionary"
)

// Candidate is one Persian rendering of a word.
type Candidate struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// PhraseCandidate is one Persian rendering of a whole phrase. Its confidence
// is the product of the confidences of the words it is built from.
type PhraseCandidate struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Transliterator is implemented by Converter and WordCache.
type Transliterator interface {
	// Word returns at most Cutoff ranked candidates for a single word.
	Word(word string, opts ...Option) []Candidate

	// Phrase returns every ranked candidate for a phrase.
	Phrase(phrase string, opts ...Option) []PhraseCandidate

	// Stats returns sizes of the loaded data.
	Stats() map[string]int
}

// WordLister is implemented by transliterators that can list the corpus
// words they rank against.
type WordLister interface {
	KnownWords(prefix string, limit int) []dictionary.Entry
	MaxCount() int
}

var (
	_ WordLister = (*Converter)(nil)
	_ WordLister = (*WordCache)(nil)
)

// Options tune a conversion.
type Options struct {
	// MaxWordSize is the longest word, in characters, that gets converted.
	// Longer words are passed through unchanged.
	MaxWordSize int
	// Cutoff is how many candidates are kept per word.
	Cutoff int
}

// DefaultOptions are used when a Converter is built without options.
var DefaultOptions = Options{
	MaxWordSize: 15,
	Cutoff:      3,
}

// Option overrides one field of Options.
type Option func(*Options)

// WithMaxWordSize sets Options.MaxWordSize.
func WithMaxWordSize(n int) Option {
	return func(o *Options) { o.MaxWordSize = n }
}

// WithCutoff sets Options.Cutoff.
func WithCutoff(n int) Option {
	return func(o *Options) { o.Cutoff = n }
}

// Converter turns Finglish words and phrases into ranked Persian candidates.
type Converter struct {
	data *dictionary.Data
	opts Options
}

var _ Transliterator = (*Converter)(nil)

// ErrNoData is returned by New when data is nil.
var ErrNoData = errors.New("convert: no conversion data")

// New creates a Converter over data. opts change the defaults used by every
// call; each call may override them again.
func New(data *dictionary.Data, opts ...Option) (*Converter, error) {
	if data == nil {
		return nil, ErrNoData
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	c := &Converter{data: data, opts: DefaultOptions}
	c.opts = c.options(opts)
	return c, nil
}

// Options returns the defaults this converter applies.
func (c *Converter) Options() Options {
	return c.opts
}

func (c *Converter) options(opts []Option) Options {
	o := c.opts
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Top returns the n best phrase candidates of t; n <= 0 returns them all.
func Top(t Transliterator, phrase string, n int, opts ...Option) []PhraseCandidate {
	results := t.Phrase(phrase, opts...)
	if n > 0 && len(results) > n {
		return results[:n]
	}
	return results
}

// Stats returns the sizes of the loaded tables, frequency index and dictionary.
func (c *Converter) Stats() map[string]int {
	return map[string]int{
		"beginningClusters": c.data.Tables.For(dictionary.Beginning).Len(),
		"middleClusters":    c.data.Tables.For(dictionary.Middle).Len(),
		"endingClusters":    c.data.Tables.For(dictionary.Ending).Len(),
		"frequencyWords":    c.data.Frequencies.Len(),
		"maxFrequency":      c.data.Frequencies.MaxCount(),
		"dictionaryEntries": c.data.Dictionary.Len(),
		"maxWordSize":       c.opts.MaxWordSize,
		"cutoff":            c.opts.Cutoff,
	}
}

// KnownWords lists corpus words starting with a Persian prefix, most
// frequent first; limit <= 0 lists them all.
func (c *Converter) KnownWords(prefix string, limit int) []dictionary.Entry {
	return c.data.Frequencies.WithPrefix(prefix, limit)
}

// MaxCount returns the count of the most frequent corpus word.
func (c *Converter) MaxCount() int {
	return c.data.Frequencies.MaxCount()
}

// sortCandidates orders by confidence, highest first. Equal confidences keep
// their generation order.
func sortCandidates(cs []Candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].Confidence > cs[j].Confidence
	})
}

func sortPhraseCandidates(cs []PhraseCandidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].Confidence > cs[j].Confidence
	})
}

// eachCombination calls fn once per element of the Cartesian product of
// lists, the first list varying slowest. fn is never called when a list is
// empty and is called once with an empty combo when lists is empty.
// The combo slice is reused between calls.
func eachCombination[T any](lists [][]T, fn func(combo []T)) {
	for _, l := range lists {
		if len(l) == 0 {
			return
		}
	}

	idx := make([]int, len(lists))
	combo := make([]T, len(lists))
	for {
		for i, j := range idx {
			combo[i] = lists[i][j]
		}
		fn(combo)

		k := len(idx) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(lists[k]) {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return
		}
	}
}
