package dictionary

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is a Persian word and its corpus count.
type Entry struct {
	Word  string
	Count int
}

// FrequencyIndex holds corpus counts for Persian words.
// Words that were never seen have count 0.
type FrequencyIndex struct {
	trie     *patricia.Trie
	size     int
	maxCount int
}

// NewFrequencyIndex builds an index from a word -> count map.
func NewFrequencyIndex(counts map[string]int) *FrequencyIndex {
	fi := newFrequencyIndex()
	for word, count := range counts {
		fi.add(word, count)
	}
	fi.seal()
	return fi
}

func newFrequencyIndex() *FrequencyIndex {
	return &FrequencyIndex{trie: patricia.NewTrie()}
}

// add records count for word; a repeated word keeps the last count.
func (fi *FrequencyIndex) add(word string, count int) {
	key := patricia.Prefix(word)
	if fi.trie.Insert(key, count) {
		fi.size++
		return
	}
	fi.trie.Set(key, count)
}

// seal computes the cached maximum once all words are in.
func (fi *FrequencyIndex) seal() {
	fi.maxCount = 0
	err := fi.trie.Visit(func(_ patricia.Prefix, item patricia.Item) error {
		if count := item.(int); count > fi.maxCount {
			fi.maxCount = count
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting frequency trie: %v", err)
	}
}

// Count returns how often word occurs in the corpus.
func (fi *FrequencyIndex) Count(word string) int {
	if fi == nil || word == "" {
		return 0
	}
	item := fi.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0
	}
	return item.(int)
}

// Len returns the number of distinct words.
func (fi *FrequencyIndex) Len() int {
	if fi == nil {
		return 0
	}
	return fi.size
}

// MaxCount returns the highest count in the index.
func (fi *FrequencyIndex) MaxCount() int {
	if fi == nil {
		return 0
	}
	return fi.maxCount
}

// WithPrefix lists known words starting with prefix, most frequent first.
// A limit <= 0 returns every match.
func (fi *FrequencyIndex) WithPrefix(prefix string, limit int) []Entry {
	if fi == nil {
		return nil
	}

	var entries []Entry
	err := fi.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		entries = append(entries, Entry{Word: string(p), Count: item.(int)})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting frequency subtree: %v", err)
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Word < entries[j].Word
		}
		return entries[i].Count > entries[j].Count
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
