// Package dictionary holds the read-only data the converter works from:
// the three position tables, the Persian word frequency index and the
// exact-match Finglish dictionary, plus the loaders for their text formats.
//
// Every type here is built once by a loader (or a New* constructor) and is
// never mutated afterwards, so a *Data can be shared by any number of
// goroutines without locking.
package dictionary

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Position is the place of a cluster inside a word.
type Position int

const (
	Beginning Position = iota
	Middle
	Ending
)

func (p Position) String() string {
	switch p {
	case Beginning:
		return "beginning"
	case Middle:
		return "middle"
	case Ending:
		return "ending"
	}
	return "unknown"
}

// PositionOf returns the position of cluster i in a word of n clusters.
// The first cluster is checked before the last one, so a single-cluster
// word uses the Beginning table.
func PositionOf(i, n int) Position {
	switch {
	case i == 0:
		return Beginning
	case i == n-1:
		return Ending
	default:
		return Middle
	}
}

// nothingForm is the table spelling of a cluster that renders as "".
const nothingForm = "nothing"

// Form is one Persian rendering of a cluster.
type Form struct {
	Text  string
	Empty bool
}

// ParseForm turns a table token into a Form.
func ParseForm(s string) Form {
	if s == nothingForm {
		return Form{Empty: true}
	}
	return Form{Text: s}
}

// String returns the text the form contributes to a word.
func (f Form) String() string {
	if f.Empty {
		return ""
	}
	return f.Text
}

// Table maps a Latin cluster to its ordered Persian forms for one position.
type Table struct {
	forms map[string][]Form
}

// NewTable builds a table from raw table tokens. Forms keep their order and
// duplicates are not removed.
func NewTable(entries map[string][]string) *Table {
	t := &Table{forms: make(map[string][]Form, len(entries))}
	for cluster, tokens := range entries {
		t.set(cluster, tokens)
	}
	return t
}

func (t *Table) set(cluster string, tokens []string) {
	forms := make([]Form, len(tokens))
	for i, tok := range tokens {
		forms[i] = ParseForm(tok)
	}
	t.forms[cluster] = forms
}

// Lookup returns a copy of the forms of cluster.
func (t *Table) Lookup(cluster string) ([]Form, bool) {
	if t == nil {
		return nil, false
	}
	forms, ok := t.forms[cluster]
	if !ok {
		return nil, false
	}
	return slices.Clone(forms), true
}

// Len returns the number of clusters in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.forms)
}

// Clusters returns the known clusters in sorted order.
func (t *Table) Clusters() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.forms))
}

// Tables groups the three position tables, indexed by Position.
type Tables [3]*Table

// For returns the table used for clusters at position p.
func (ts Tables) For(p Position) *Table {
	if p < Beginning || p > Ending {
		return nil
	}
	return ts[p]
}

// Dictionary maps an exact Finglish word, case-sensitive, to its Persian
// translation.
type Dictionary struct {
	entries map[string]string
}

// NewDictionary copies entries into a new Dictionary.
func NewDictionary(entries map[string]string) *Dictionary {
	return &Dictionary{entries: maps.Clone(entries)}
}

// Lookup returns the translation of word.
func (d *Dictionary) Lookup(word string) (string, bool) {
	if d == nil {
		return "", false
	}
	tr, ok := d.entries[word]
	return tr, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Data is everything a converter needs, loaded once at startup.
type Data struct {
	Tables      Tables
	Frequencies *FrequencyIndex
	Dictionary  *Dictionary
}

// ErrIncompleteData is returned by Validate when a part of Data is missing.
var ErrIncompleteData = errors.New("incomplete conversion data")

// Validate reports whether every table and index is present.
func (d *Data) Validate() error {
	if d == nil {
		return ErrIncompleteData
	}
	for p, t := range d.Tables {
		if t == nil {
			return fmt.Errorf("%w: missing %s table", ErrIncompleteData, Position(p))
		}
	}
	if d.Frequencies == nil {
		return fmt.Errorf("%w: missing frequency index", ErrIncompleteData)
	}
	if d.Dictionary == nil {
		return fmt.Errorf("%w: missing dictionary", ErrIncompleteData)
	}
	return nil
}
