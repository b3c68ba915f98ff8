package vocab

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/rbset"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Entry is a word together with the number of its occurences.
type Entry struct {
	Word    string
	Count   int
	byWord  rbset.Node[Entry] // membership in the vocabulary
	byCount rbset.Node[Entry] // membership in temporary rankings
}

func compareWords(a, b *Entry) int {
	return strings.Compare(a.Word, b.Word)
}

// compareRank orders by descending count, then alphabetically.
func compareRank(a, b *Entry) int {
	switch {
	case a.Count > b.Count:
		return -1
	case a.Count < b.Count:
		return 1
	}
	return compareWords(a, b)
}

func wordLink(e *Entry) *rbset.Node[Entry] { return &e.byWord }
func rankLink(e *Entry) *rbset.Node[Entry] { return &e.byCount }

// WordCount is a snapshot of an entry.
type WordCount struct {
	Word  string
	Count int
}

// Vocabulary is a set of words with their frequencies.
type Vocabulary struct {
	mx    sync.Mutex
	words *rbset.Set[Entry]
	total int
}

// New creates an empty vocabulary.
func New() *Vocabulary {
	return &Vocabulary{
		words: rbset.New(compareWords, wordLink),
	}
}

// Add counts an occurence of word and returns its count so far.
// Empty words are ignored.
func (v *Vocabulary) Add(word string) int {
	if word == "" {
		return 0
	}
	v.mx.Lock()
	defer v.mx.Unlock()
	return v.add(word)
}

func (v *Vocabulary) add(word string) int {
	v.total++
	found, where := v.words.Find(&Entry{Word: word})
	if found != nil {
		found.Count++
		return found.Count
	}
	v.words.Insert(&Entry{Word: word, Count: 1}, where)
	return 1
}

var setupGraphemes sync.Once

// AddText breaks a text into words and adds them. Words are found at line
// break opportunities (UAX #14), stripped of surrounding punctuation and
// lower-cased. AddText returns the number of words added.
func (v *Vocabulary) AddText(r io.Reader) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	v.mx.Lock()
	defer v.mx.Unlock()
	cnt := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		for _, w := range strings.FieldsFunc(frag, isSeparator) {
			if w = normalize(w); w != "" {
				v.add(w)
				cnt++
			}
		}
	}
	tracer().Debugf("vocab: added %d words, %d distinct so far", cnt, v.words.Count())
	return cnt
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '-' || r == '/' || r == '—' || r == '–'
}

func normalize(w string) string {
	w = strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return strings.ToLower(w)
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	v.mx.Lock()
	defer v.mx.Unlock()
	return v.words.Count()
}

// Total returns the number of words added, including repetitions.
func (v *Vocabulary) Total() int {
	v.mx.Lock()
	defer v.mx.Unlock()
	return v.total
}

// Lookup returns the count of word.
func (v *Vocabulary) Lookup(word string) (int, bool) {
	v.mx.Lock()
	defer v.mx.Unlock()
	found, _ := v.words.Find(&Entry{Word: word})
	if found == nil {
		return 0, false
	}
	return found.Count, true
}

// Each calls fn for every word in alphabetical order, until fn returns false.
// fn must not call methods of v.
func (v *Vocabulary) Each(fn func(word string, count int) bool) {
	v.mx.Lock()
	defer v.mx.Unlock()
	v.words.Ascend(func(e *Entry) bool {
		return fn(e.Word, e.Count)
	})
}

// Reverse calls fn for every word in reverse alphabetical order, until fn
// returns false. fn must not call methods of v.
func (v *Vocabulary) Reverse(fn func(word string, count int) bool) {
	v.mx.Lock()
	defer v.mx.Unlock()
	v.words.Descend(func(e *Entry) bool {
		return fn(e.Word, e.Count)
	})
}

// Range calls fn for every word w with from ≤ w < to, in alphabetical order,
// until fn returns false. An empty to means no upper bound.
func (v *Vocabulary) Range(from, to string, fn func(word string, count int) bool) {
	v.mx.Lock()
	defer v.mx.Unlock()
	e, where := v.words.Find(&Entry{Word: from})
	if e == nil {
		e = v.words.Nearest(where, rbset.After)
	}
	for ; e != nil; e = v.words.Walk(e, rbset.After) {
		if to != "" && e.Word >= to {
			return
		}
		if !fn(e.Word, e.Count) {
			return
		}
	}
}

// Top returns the n most frequent words, most frequent first. Ties are broken
// alphabetically.
func (v *Vocabulary) Top(n int) []WordCount {
	v.mx.Lock()
	defer v.mx.Unlock()
	ranking := rbset.New(compareRank, rankLink)
	v.words.Ascend(func(e *Entry) bool {
		ranking.Add(e)
		if ranking.Count() > n {
			ranking.Remove(ranking.Last())
		}
		return true
	})
	top := make([]WordCount, 0, ranking.Count())
	for e := ranking.Drain(); e != nil; e = ranking.Drain() {
		top = append(top, WordCount{Word: e.Word, Count: e.Count})
	}
	ranking.Release()
	return top
}

// View calls fn with the underlying set, under the vocabulary's lock. fn must
// not modify the set.
func (v *Vocabulary) View(fn func(words *rbset.Set[Entry])) {
	v.mx.Lock()
	defer v.mx.Unlock()
	fn(v.words)
}

// Clear removes all words, calling fn (if non-nil) for each of them in
// alphabetical order.
func (v *Vocabulary) Clear(fn func(word string, count int)) {
	v.mx.Lock()
	defer v.mx.Unlock()
	for e := v.words.Drain(); e != nil; e = v.words.Drain() {
		if fn != nil {
			fn(e.Word, e.Count)
		}
	}
	v.total = 0
}

// Close clears v and releases its set. v must not be used afterwards.
func (v *Vocabulary) Close() {
	v.Clear(nil)
	v.mx.Lock()
	defer v.mx.Unlock()
	v.words.Release()
}
