package convert

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/finglish/pkg/dictionary"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

// testData is a tiny hand-built data set. Expected results in the tests
// below are worked out from these tables by hand.
func testData() *dictionary.Data {
	return &dictionary.Data{
		Tables: dictionary.Tables{
			dictionary.NewTable(map[string][]string{
				"s":   {"س", "ص"},
				"m":   {"م"},
				"d":   {"د"},
				"kh":  {"خ"},
				"kha": {"خوا", "خا"},
				"k":   {"ک"},
				"a":   {"ا", "آ"},
				"b":   {"ب"},
				"sh":  {"ش"},
			}),
			dictionary.NewTable(map[string][]string{
				"a": {"nothing", "ا"},
				"l": {"ل"},
				"u": {"و"},
				"o": {"nothing", "و"},
				"s": {"س"},
				"h": {"ه"},
				"n": {"ن"},
				"q": {},
			}),
			dictionary.NewTable(map[string][]string{
				"m": {"م"},
				"t": {"ت", "ط"},
				"n": {"ن"},
				"e": {"ه", "nothing"},
				"a": {"ا", "ه"},
				"b": {"ب"},
			}),
		},
		Frequencies: dictionary.NewFrequencyIndex(map[string]int{
			"سلام": 100,
			"سالم": 50,
			"من":   200,
			"دوست": 80,
			"خان":  30,
			"شب":   40,
		}),
		Dictionary: dictionary.NewDictionary(map[string]string{
			"merci": "مرسی",
			"hi":    "",
		}),
	}
}

func newTestConverter(t testing.TB, opts ...Option) *Converter {
	t.Helper()
	c, err := New(testData(), opts...)
	require.NoError(t, err)
	return c
}
