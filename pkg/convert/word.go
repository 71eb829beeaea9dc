package convert

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/finglish/pkg/dictionary"
)

// Word converts a single Finglish word.
//
// An exact dictionary hit on the word as typed wins with confidence 1.
// An empty word has no candidates. A word longer than MaxWordSize is
// returned unchanged with confidence 1. Anything else is lowercased,
// clustered and mapped; all candidates of all variations are ranked and the
// best Cutoff are returned. A variation with a cluster missing from its
// table contributes the original word with confidence 0.
func (c *Converter) Word(word string, opts ...Option) []Candidate {
	return c.word(word, c.options(opts))
}

func (c *Converter) word(word string, o Options) []Candidate {
	if tr, ok := c.data.Dictionary.Lookup(word); ok && tr != "" {
		return []Candidate{{Text: tr, Confidence: 1}}
	}
	if word == "" {
		return nil
	}
	if utf8.RuneCountInString(word) > o.MaxWordSize {
		return []Candidate{{Text: word, Confidence: 1}}
	}
	if o.Cutoff <= 0 {
		return nil
	}

	var results []Candidate
	for _, v := range Variations(strings.ToLower(word)) {
		results = append(results, c.mapVariation(v, word)...)
	}

	sortCandidates(results)
	if len(results) > o.Cutoff {
		results = results[:o.Cutoff]
	}
	return results
}

// mapVariation renders one clustering of a word. Every combination of the
// clusters' forms is scored by corpus count, relative to the most frequent
// combination; unseen spellings score 0.
func (c *Converter) mapVariation(v Variation, original string) []Candidate {
	n := len(v)
	options := make([][]dictionary.Form, n)
	for i, cl := range v {
		forms, ok := c.data.Tables.For(dictionary.PositionOf(i, n)).Lookup(cl.Text)
		if !ok {
			return []Candidate{{Text: original, Confidence: 0}}
		}
		options[i] = forms
	}

	var (
		words    []string
		counts   []int
		maxCount int
		b        strings.Builder
	)
	eachCombination(options, func(combo []dictionary.Form) {
		b.Reset()
		for _, f := range combo {
			b.WriteString(f.String())
		}
		w := b.String()
		count := c.data.Frequencies.Count(w)
		if count > maxCount {
			maxCount = count
		}
		words = append(words, w)
		counts = append(counts, count)
	})

	if len(words) == 0 {
		return []Candidate{{Text: v.Text(), Confidence: 1}}
	}

	candidates := make([]Candidate, len(words))
	for i, w := range words {
		candidates[i] = Candidate{Text: w}
		if counts[i] != 0 {
			candidates[i].Confidence = float64(counts[i]) / float64(maxCount)
		}
	}
	return candidates
}
