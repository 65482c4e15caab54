package sarf

import (
	"sort"

	"github.com/derekparker/trie"
)

// lexicon is a prefix index over all derived words recorded in a RootIndex.
type lexicon struct {
	words *trie.Trie
}

// lexiconEntry is the trie meta data of a word: the sorted roots it has
// been recorded for. Entries are updated in place, every word is added
// to the trie once.
type lexiconEntry struct {
	roots []string
}

func newLexicon() *lexicon {
	return &lexicon{words: trie.New()}
}

func (lx *lexicon) add(word, root string) {
	node, found := lx.words.Find(word)
	if !found {
		lx.words.Add(word, &lexiconEntry{roots: []string{root}})
		return
	}
	entry := node.Meta().(*lexiconEntry)
	i := sort.SearchStrings(entry.roots, root)
	if i < len(entry.roots) && entry.roots[i] == root {
		return
	}
	entry.roots = append(entry.roots, "")
	copy(entry.roots[i+1:], entry.roots[i:])
	entry.roots[i] = root
}

func (lx *lexicon) rootsOf(word string) []string {
	node, found := lx.words.Find(word)
	if !found {
		return nil
	}
	entry := node.Meta().(*lexiconEntry)
	rr := make([]string, len(entry.roots))
	copy(rr, entry.roots)
	return rr
}

func (lx *lexicon) withPrefix(prefix string) []string {
	var words []string
	if prefix == "" {
		words = lx.words.Keys()
	} else if lx.words.HasKeysWithPrefix(prefix) {
		words = lx.words.PrefixSearch(prefix)
	}
	sort.Strings(words)
	return words
}
