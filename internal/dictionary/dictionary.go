// Package dictionary holds the pronunciation dictionary in memory and picks
// one canonical pronunciation per word.
package dictionary

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/internal/phonetic"
)

// Variant is one recorded pronunciation of a word. Index 0 is the base
// form, "(2)" in the source is Index 1, "(3)" is Index 2 and so on.
type Variant struct {
	Index  int
	Tokens []phonetic.CodedToken
}

// String renders the variant tokens the way the source writes them.
func (v Variant) String() string {
	parts := make([]string, len(v.Tokens))
	for i, t := range v.Tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Dictionary maps lowercase words to their variants. It is never modified
// after construction and is safe for concurrent reads.
type Dictionary struct {
	entries map[string][]Variant
}

// New builds a Dictionary. Words are normalized, variants are ordered by
// Index and words without variants are left out.
func New(entries map[string][]Variant) *Dictionary {
	d := &Dictionary{entries: make(map[string][]Variant, len(entries))}
	for word, vs := range entries {
		word = domain.NormalizeText(word)
		if word == "" || len(vs) == 0 {
			continue
		}
		merged := append(d.entries[word], vs...)
		slices.SortStableFunc(merged, func(a, b Variant) int { return a.Index - b.Index })
		d.entries[word] = merged
	}
	return d
}

// Lookup returns the variants of word. The slice must not be modified.
func (d *Dictionary) Lookup(word string) ([]Variant, bool) {
	vs, ok := d.entries[domain.NormalizeText(word)]
	return vs, ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// All iterates over every word and its variants in sorted word order.
func (d *Dictionary) All() iter.Seq2[string, []Variant] {
	return func(yield func(string, []Variant) bool) {
		for _, w := range slices.Sorted(maps.Keys(d.entries)) {
			if !yield(w, d.entries[w]) {
				return
			}
		}
	}
}
