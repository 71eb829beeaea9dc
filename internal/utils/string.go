package utils

import (
	"strconv"
	"strings"
)

// IsSeparator reports whether r splits a phrase into words: the space and
// the punctuation - _ ~ ! @ # % $ ^ & * ( ) [ ] { } / : ; " | , . ? and `.
// Other whitespace such as tabs stays inside a word.
func IsSeparator(r rune) bool {
	switch r {
	case ' ', '-', '_', '~', '!', '@', '#', '%', '$', '^', '&', '*',
		'(', ')', '[', ']', '{', '}', '/', ':', ';', '"', '|', ',', '.', '?', '`':
		return true
	}
	return false
}

// FormatConfidence prints a confidence the way a float is usually shown in
// result listings: shortest form, always with a decimal point ("1.0", "0.25").
func FormatConfidence(c float64) string {
	s := strconv.FormatFloat(c, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := strconv.Itoa(n)
	if n < 1000 {
		return str
	}

	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
