package convert

import (
	"strings"

	"github.com/bastiangx/finglish/internal/utils"
)

// Tokenize splits a phrase on spaces and common punctuation, dropping empty
// pieces.
func Tokenize(phrase string) []string {
	return strings.FieldsFunc(phrase, utils.IsSeparator)
}

// Phrase converts every word of phrase and combines the per-word candidates.
// Each result joins one candidate per word with single spaces; its
// confidence is the product of the word confidences. Results are ordered by
// confidence, highest first, and are not truncated.
//
// A phrase with no words has no candidates. So does a phrase in which any
// word has no candidates: that word empties the whole product rather than
// being skipped.
func (c *Converter) Phrase(phrase string, opts ...Option) []PhraseCandidate {
	o := c.options(opts)
	return assemble(Tokenize(phrase), func(token string) []Candidate {
		return c.word(token, o)
	})
}

func assemble(tokens []string, resolve func(token string) []Candidate) []PhraseCandidate {
	if len(tokens) == 0 {
		return nil
	}

	perToken := make([][]Candidate, len(tokens))
	for i, token := range tokens {
		perToken[i] = resolve(token)
		if len(perToken[i]) == 0 {
			return nil
		}
	}

	var results []PhraseCandidate
	words := make([]string, len(tokens))
	eachCombination(perToken, func(combo []Candidate) {
		confidence := 1.0
		for i, cand := range combo {
			words[i] = cand.Text
			confidence *= cand.Confidence
		}
		results = append(results, PhraseCandidate{
			Text:       strings.Join(words, " "),
			Confidence: confidence,
		})
	})

	sortPhraseCandidates(results)
	return results
}
