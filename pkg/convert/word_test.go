package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/finglish/pkg/dictionary"
)

func TestNew(t *testing.T) {
	t.Run("Nil data", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Incomplete data", func(t *testing.T) {
		_, err := New(&dictionary.Data{})
		assert.ErrorIs(t, err, dictionary.ErrIncompleteData)
	})

	t.Run("Options override defaults", func(t *testing.T) {
		c := newTestConverter(t, WithCutoff(7), WithMaxWordSize(4))
		assert.Equal(t, Options{MaxWordSize: 4, Cutoff: 7}, c.Options())
	})

	t.Run("Defaults", func(t *testing.T) {
		c := newTestConverter(t)
		assert.Equal(t, DefaultOptions, c.Options())
	})
}

func TestWord(t *testing.T) {
	c := newTestConverter(t)

	testCases := []struct {
		word        string
		opts        []Option
		expected    []Candidate
		description string
	}{
		{
			word:        "merci",
			expected:    []Candidate{{Text: "مرسی", Confidence: 1}},
			description: "Dictionary hit wins",
		},
		{
			word:        "salam",
			expected:    []Candidate{{"سلام", 1}, {"سالم", 0.5}, {"سلم", 0}},
			description: "Ranked by frequency and cut to three",
		},
		{
			word:        "salam",
			opts:        []Option{WithCutoff(1)},
			expected:    []Candidate{{"سلام", 1}},
			description: "Per-call cutoff",
		},
		{
			word:        "SaLaM",
			expected:    []Candidate{{"سلام", 1}, {"سالم", 0.5}, {"سلم", 0}},
			description: "Mapping ignores case",
		},
		{
			word:        "123",
			expected:    []Candidate{{"123", 0}},
			description: "Unmapped characters return the word with zero confidence",
		},
		{
			word:        "Merci",
			expected:    []Candidate{{"Merci", 0}},
			description: "Dictionary is case sensitive and the typed word is kept",
		},
		{
			word:        "hi",
			expected:    []Candidate{{"hi", 0}},
			description: "Empty translation is not a dictionary hit",
		},
		{
			word:        "salamati",
			opts:        []Option{WithMaxWordSize(5)},
			expected:    []Candidate{{"salamati", 1}},
			description: "Long word passes through",
		},
		{
			word:        "sqm",
			expected:    []Candidate{{"sqm", 1}},
			description: "Cluster without forms yields the cluster text",
		},
		{
			word:        "doost",
			expected:    []Candidate{{"دوست", 1}, {"دوسط", 0}},
			description: "Long vowel maps through its canonical cluster",
		},
		{
			word:        "",
			expected:    nil,
			description: "Empty word",
		},
		{
			word:        "salam",
			opts:        []Option{WithCutoff(0)},
			expected:    nil,
			description: "Zero cutoff",
		},
		{
			word:        "merci",
			opts:        []Option{WithCutoff(0)},
			expected:    []Candidate{{"مرسی", 1}},
			description: "Dictionary ignores cutoff",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := c.Word(tc.word, tc.opts...)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestWordKhan(t *testing.T) {
	c := newTestConverter(t, WithCutoff(10))

	got := c.Word("khan")
	require.NotEmpty(t, got)
	assert.Equal(t, Candidate{Text: "خان", Confidence: 1}, got[0])

	// kha|n gives خوان and خان, kh|a|n gives خن and خان, k|h|a|n gives
	// two spellings missing from the frequency list.
	texts := make([]string, len(got))
	for i, cand := range got {
		texts[i] = cand.Text
	}
	assert.Equal(t, []string{"خان", "خان", "خوان", "خن", "کهن", "کهان"}, texts)
}

func TestWordOrdering(t *testing.T) {
	c := newTestConverter(t, WithCutoff(100))

	for _, word := range []string{"salam", "khan", "shab", "doost", "man"} {
		t.Run(word, func(t *testing.T) {
			got := c.Word(word)
			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].Confidence, got[i].Confidence)
			}
			for _, cand := range got {
				assert.GreaterOrEqual(t, cand.Confidence, 0.0)
				assert.LessOrEqual(t, cand.Confidence, 1.0)
			}
		})
	}
}

func TestMapVariation(t *testing.T) {
	c := newTestConverter(t)

	testCases := []struct {
		variation   Variation
		original    string
		expected    []Candidate
		description string
	}{
		{
			variation: Variation{{"s", "s"}, {"a", "a"}, {"l", "l"}, {"a", "a"}, {"m", "m"}},
			original:  "salam",
			expected: []Candidate{
				{"سلم", 0}, {"سلام", 1}, {"سالم", 0.5}, {"سالام", 0},
				{"صلم", 0}, {"صلام", 0}, {"صالم", 0}, {"صالام", 0},
			},
			description: "Every combination in product order",
		},
		{
			variation:   Variation{{"z", "z"}, {"a", "a"}},
			original:    "Za",
			expected:    []Candidate{{"Za", 0}},
			description: "Missing cluster falls back to the original",
		},
		{
			variation:   Variation{{"m", "m"}, {"a", "a"}, {"m", "m"}},
			original:    "mam",
			expected:    []Candidate{{"مم", 0}, {"مام", 0}},
			description: "Unseen spellings score zero",
		},
		{
			variation:   Variation{{"s", "s"}, {"q", "q"}, {"m", "m"}},
			original:    "sqm",
			expected:    []Candidate{{"sqm", 1}},
			description: "Empty form list",
		},
		{
			variation:   Variation{{"m", "m"}},
			original:    "m",
			expected:    []Candidate{{"م", 0}},
			description: "Single cluster uses the beginning table",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.mapVariation(tc.variation, tc.original))
		})
	}
}

func TestEachCombination(t *testing.T) {
	t.Run("First list varies slowest", func(t *testing.T) {
		var got [][]int
		eachCombination([][]int{{1, 2}, {3, 4, 5}}, func(combo []int) {
			got = append(got, append([]int(nil), combo...))
		})
		assert.Equal(t, [][]int{{1, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 4}, {2, 5}}, got)
	})

	t.Run("Empty list", func(t *testing.T) {
		calls := 0
		eachCombination([][]int{{1}, {}, {2}}, func([]int) { calls++ })
		assert.Zero(t, calls)
	})

	t.Run("No lists", func(t *testing.T) {
		calls := 0
		eachCombination([][]int{}, func(combo []int) {
			calls++
			assert.Empty(t, combo)
		})
		assert.Equal(t, 1, calls)
	})
}

func TestStats(t *testing.T) {
	c := newTestConverter(t)
	stats := c.Stats()

	assert.Equal(t, 9, stats["beginningClusters"])
	assert.Equal(t, 8, stats["middleClusters"])
	assert.Equal(t, 6, stats["endingClusters"])
	assert.Equal(t, 6, stats["frequencyWords"])
	assert.Equal(t, 200, stats["maxFrequency"])
	assert.Equal(t, 2, stats["dictionaryEntries"])
	assert.Equal(t, 15, stats["maxWordSize"])
	assert.Equal(t, 3, stats["cutoff"])
}

func TestKnownWords(t *testing.T) {
	c := newTestConverter(t)

	got := c.KnownWords("س", 0)
	assert.Equal(t, []dictionary.Entry{{Word: "سلام", Count: 100}, {Word: "سالم", Count: 50}}, got)
	assert.Len(t, c.KnownWords("س", 1), 1)
	assert.Empty(t, c.KnownWords("ژ", 0))
	assert.Equal(t, 200, c.MaxCount())
}

func TestWordOddInput(t *testing.T) {
	c := newTestConverter(t)
	for _, word := range []string{"'", "''", "a'a'", "\t", "ß", "سلام"} {
		got := c.Word(word)
		require.NotEmpty(t, got, word)
		assert.Equal(t, Candidate{Text: word, Confidence: 0}, got[0], word)
	}
}

func BenchmarkWord(b *testing.B) {
	c := newTestConverter(b)
	words := []string{"salam", "khan", "doost", "merci", "shab"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, w := range words {
			_ = c.Word(w)
		}
	}
}
