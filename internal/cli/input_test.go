package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/finglish/pkg/convert"
	"github.com/bastiangx/finglish/pkg/dictionary"
)

func init() {
	log.SetLevel(log.FatalLevel)
}

type stubConverter struct {
	calls []string
}

func (s *stubConverter) Word(word string, _ ...convert.Option) []convert.Candidate {
	return nil
}

func (s *stubConverter) Phrase(phrase string, _ ...convert.Option) []convert.PhraseCandidate {
	s.calls = append(s.calls, phrase)
	switch phrase {
	case "salam man":
		return []convert.PhraseCandidate{
			{Text: "سلام من", Confidence: 1},
			{Text: "سالم من", Confidence: 0.5},
			{Text: "سلم من", Confidence: 0},
		}
	case "merci":
		return []convert.PhraseCandidate{{Text: "مرسی", Confidence: 1}}
	}
	return nil
}

func (s *stubConverter) Stats() map[string]int {
	return map[string]int{"frequencyWords": 12345, "cutoff": 3}
}

type listingConverter struct {
	*stubConverter
}

func (listingConverter) KnownWords(prefix string, limit int) []dictionary.Entry {
	return []dictionary.Entry{{Word: prefix + "ب", Count: 1900}}
}

func (listingConverter) MaxCount() int { return 1900 }

func TestInputHandlerSingleLine(t *testing.T) {
	testCases := []struct {
		input       string
		limit       int
		expected    string
		description string
	}{
		{
			input:       "salam man\n",
			limit:       10,
			expected:    Prompt + "1.0 سلام من\n0.5 سالم من\n0.0 سلم من\n",
			description: "All candidates",
		},
		{
			input:       "salam man\n",
			limit:       2,
			expected:    Prompt + "1.0 سلام من\n0.5 سالم من\n",
			description: "Limited",
		},
		{
			input:       "salam man",
			limit:       0,
			expected:    Prompt + "1.0 سلام من\n0.5 سالم من\n0.0 سلم من\n",
			description: "No trailing newline and no limit",
		},
		{
			input:       "unknown\n",
			limit:       10,
			expected:    Prompt,
			description: "No candidates prints nothing",
		},
		{
			input:       "merci\nsalam man\n",
			limit:       10,
			expected:    Prompt + "1.0 مرسی\n",
			description: "Only the first line is read",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var out bytes.Buffer
			h := NewInputHandler(&stubConverter{}, strings.NewReader(tc.input), &out, tc.limit, false)
			require.NoError(t, h.Start())
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestInputHandlerEmptyInput(t *testing.T) {
	stub := &stubConverter{}
	var out bytes.Buffer
	h := NewInputHandler(stub, strings.NewReader(""), &out, 10, false)

	require.NoError(t, h.Start())
	assert.Equal(t, Prompt, out.String())
	assert.Equal(t, []string{""}, stub.calls)
}

func TestInputHandlerInteractive(t *testing.T) {
	stub := &stubConverter{}
	var out bytes.Buffer
	input := "merci\n\nsalam man\r\n"
	h := NewInputHandler(stub, strings.NewReader(input), &out, 1, true)

	require.NoError(t, h.Start())
	assert.Equal(t, []string{"merci", "salam man"}, stub.calls)
	assert.Equal(t,
		Prompt+"1.0 مرسی\n"+Prompt+Prompt+"1.0 سلام من\n"+Prompt,
		out.String())
}

func TestInputHandlerStats(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandler(&stubConverter{}, strings.NewReader(":stats\n"), &out, 10, true)

	require.NoError(t, h.Start())
	assert.Contains(t, out.String(), "cutoff")
	assert.Contains(t, out.String(), "12,345")
	assert.Less(t, strings.Index(out.String(), "cutoff"), strings.Index(out.String(), "frequencyWords"))
}

func TestInputHandlerWords(t *testing.T) {
	t.Run("Supported", func(t *testing.T) {
		var out bytes.Buffer
		h := NewInputHandler(listingConverter{&stubConverter{}}, strings.NewReader(":words خو\n"), &out, 10, true)

		require.NoError(t, h.Start())
		assert.Contains(t, out.String(), "خوب")
		assert.Contains(t, out.String(), "1,900")
	})

	t.Run("Unsupported", func(t *testing.T) {
		stub := &stubConverter{}
		var out bytes.Buffer
		h := NewInputHandler(stub, strings.NewReader(":words خو\n:words\n"), &out, 10, true)

		require.NoError(t, h.Start())
		assert.Equal(t, Prompt+Prompt+Prompt, out.String())
		assert.Empty(t, stub.calls)
	})

	t.Run("Not a command outside interactive mode", func(t *testing.T) {
		stub := &stubConverter{}
		var out bytes.Buffer
		h := NewInputHandler(stub, strings.NewReader(":stats\n"), &out, 10, false)

		require.NoError(t, h.Start())
		assert.Equal(t, []string{":stats"}, stub.calls)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestInputHandlerWriteError(t *testing.T) {
	h := NewInputHandler(&stubConverter{}, strings.NewReader("merci\n"), failingWriter{}, 10, false)
	assert.Error(t, h.Start())
}
