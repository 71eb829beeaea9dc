package convert

import "strings"

// Cluster is one transliteration unit of a word. Text is the key looked up
// in the position tables; Source is the part of the word it was read from.
// The two differ only for canonical groups such as "aa" -> "A".
type Cluster struct {
	Text   string
	Source string
}

// Variation is one way of splitting a word into clusters.
type Variation []Cluster

// Text joins the cluster keys.
func (v Variation) Text() string {
	var b strings.Builder
	for _, c := range v {
		b.WriteString(c.Text)
	}
	return b.String()
}

// Source joins the consumed input; it always equals the segmented word.
func (v Variation) Source() string {
	var b strings.Builder
	for _, c := range v {
		b.WriteString(c.Source)
	}
	return b.String()
}

// Keys returns the cluster keys in order.
func (v Variation) Keys() []string {
	keys := make([]string, len(v))
	for i, c := range v {
		keys[i] = c.Text
	}
	return keys
}

func (v Variation) String() string {
	return strings.Join(v.Keys(), "|")
}

var (
	// long vowel spellings and the single key each collapses to
	longVowels = map[string]string{
		"aa": "A",
		"ee": "i",
		"oo": "u",
		"ou": "u",
	}
	digraphs = map[string]bool{
		"kh": true, "gh": true, "ch": true, "sh": true, "zh": true,
	}
	apostropheVowels = map[string]bool{
		"a'": true, "e'": true, "o'": true, "i'": true, "u'": true, "A'": true,
	}
)

// Variations lists every plausible clustering of a lowercased word.
// Digraphs and "kha" branch into their single-letter readings; long vowels,
// vowel+apostrophe pairs and doubled letters are read one way only.
// The order of the result follows the branch order and is stable.
func Variations(word string) []Variation {
	if word == "" {
		return nil
	}
	return variations([]rune(word))
}

func variations(w []rune) []Variation {
	switch len(w) {
	case 0:
		return []Variation{{}}
	case 1:
		return []Variation{{same(w)}}
	}

	if v, ok := wholeWord(w); ok {
		return v
	}

	pair := string(w[:2])
	switch {
	case longVowels[pair] != "":
		return prepend(variations(w[2:]), Cluster{Text: longVowels[pair], Source: pair})
	case len(w) >= 3 && string(w[:3]) == "kha":
		rest := variations(w[3:])
		out := prepend(rest, Cluster{Text: "kha", Source: "kha"})
		out = append(out, prepend(rest, same(w[:2]), same(w[2:3]))...)
		return append(out, prepend(rest, same(w[:1]), same(w[1:2]), same(w[2:3]))...)
	case digraphs[pair]:
		out := prepend(variations(w[2:]), same(w[:2]))
		return append(out, prepend(variations(w[1:]), same(w[:1]))...)
	case apostropheVowels[pair]:
		return prepend(variations(w[2:]), same(w[:2]))
	case w[0] == w[1]:
		return prepend(variations(w[2:]), Cluster{Text: string(w[:1]), Source: pair})
	default:
		return prepend(variations(w[1:]), same(w[:1]))
	}
}

// wholeWord handles the words that are a single special group on their own.
func wholeWord(w []rune) ([]Variation, bool) {
	word := string(w)
	switch {
	case word == "aa" || word == "ee" || word == "oo" || word == "ou":
		return []Variation{{{Text: longVowels[word], Source: word}}}, true
	case word == "ei":
		return []Variation{{same(w)}}, true
	case word == "kha":
		return []Variation{
			{same(w)},
			{same(w[:2]), same(w[2:])},
		}, true
	case digraphs[word], apostropheVowels[word]:
		return []Variation{{same(w)}}, true
	case len(w) == 2 && w[0] == w[1]:
		return []Variation{{{Text: string(w[:1]), Source: word}}}, true
	}
	return nil, false
}

func same(r []rune) Cluster {
	s := string(r)
	return Cluster{Text: s, Source: s}
}

// prepend returns a copy of every tail with head in front.
func prepend(tails []Variation, head ...Cluster) []Variation {
	out := make([]Variation, 0, len(tails))
	for _, tail := range tails {
		v := make(Variation, 0, len(head)+len(tail))
		v = append(v, head...)
		v = append(v, tail...)
		out = append(out, v)
	}
	return out
}
