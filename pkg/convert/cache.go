package convert

import (
	"math"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/finglish/pkg/dictionary"
)

type cacheKey struct {
	word        string
	maxWordSize int
	cutoff      int
}

// WordCache memoizes Converter.Word for long-running processes such as the
// IPC server. It keeps at most maxWords results and evicts the least
// recently used one when full. Phrase reuses the cached words.
type WordCache struct {
	converter  *Converter
	words      map[cacheKey][]Candidate
	accessTime map[cacheKey]int64
	clock      int64
	hits       int64
	misses     int64
	maxWords   int
	mu         sync.Mutex
}

var _ Transliterator = (*WordCache)(nil)

// NewWordCache wraps converter with a cache of maxWords entries.
func NewWordCache(converter *Converter, maxWords int) *WordCache {
	return &WordCache{
		converter:  converter,
		words:      make(map[cacheKey][]Candidate, maxWords),
		accessTime: make(map[cacheKey]int64, maxWords),
		maxWords:   maxWords,
	}
}

// Word returns the converter's candidates for word, from the cache when
// possible. The returned slice is the caller's to keep.
func (wc *WordCache) Word(word string, opts ...Option) []Candidate {
	return wc.word(word, wc.converter.options(opts))
}

func (wc *WordCache) word(word string, o Options) []Candidate {
	key := cacheKey{word: word, maxWordSize: o.MaxWordSize, cutoff: o.Cutoff}

	wc.mu.Lock()
	if cached, ok := wc.words[key]; ok {
		wc.hits++
		wc.markAccessed(key)
		wc.mu.Unlock()
		return slices.Clone(cached)
	}
	wc.misses++
	wc.mu.Unlock()

	result := wc.converter.word(word, o)

	wc.mu.Lock()
	defer wc.mu.Unlock()
	if wc.maxWords <= 0 {
		return result
	}
	if _, ok := wc.words[key]; !ok && len(wc.words) >= wc.maxWords {
		wc.evictLRU()
	}
	wc.words[key] = slices.Clone(result)
	wc.markAccessed(key)
	return result
}

// Phrase converts a phrase like Converter.Phrase, resolving words through
// the cache.
func (wc *WordCache) Phrase(phrase string, opts ...Option) []PhraseCandidate {
	o := wc.converter.options(opts)
	return assemble(Tokenize(phrase), func(token string) []Candidate {
		return wc.word(token, o)
	})
}

// Stats adds cache counters to the converter stats.
func (wc *WordCache) Stats() map[string]int {
	stats := wc.converter.Stats()

	wc.mu.Lock()
	defer wc.mu.Unlock()
	stats["cacheWords"] = len(wc.words)
	stats["maxCacheWords"] = wc.maxWords
	stats["cacheHits"] = int(wc.hits)
	stats["cacheMisses"] = int(wc.misses)
	return stats
}

// KnownWords is not cached.
func (wc *WordCache) KnownWords(prefix string, limit int) []dictionary.Entry {
	return wc.converter.KnownWords(prefix, limit)
}

// MaxCount returns the count of the most frequent corpus word.
func (wc *WordCache) MaxCount() int {
	return wc.converter.MaxCount()
}

func (wc *WordCache) markAccessed(key cacheKey) {
	wc.clock++
	wc.accessTime[key] = wc.clock
}

func (wc *WordCache) evictLRU() {
	var oldest cacheKey
	oldestTime := int64(math.MaxInt64)
	found := false

	for key, t := range wc.accessTime {
		if t < oldestTime {
			oldestTime = t
			oldest = key
			found = true
		}
	}

	if found {
		delete(wc.words, oldest)
		delete(wc.accessTime, oldest)
		log.Debugf("Evicted word '%s' from cache", oldest.word)
	}
}
