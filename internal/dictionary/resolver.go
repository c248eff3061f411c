package dictionary

import (
	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/internal/phonetic"
)

// criterion counts a realization that makes a variant worse for a Spanish
// reader. Fewer is better.
type criterion struct {
	name  string
	count func(Variant) int
}

// criteria are applied in priority order.
var criteria = []criterion{
	// An HH between vowels is mostly silent ("vehicle").
	{name: "fewest HH", count: countTokens("HH", nil)},
	// Reduced AH0 reads worse than a full vowel ("education").
	{name: "fewest AH0", count: countTokens("AH", unstressed)},
	// An unstressed AO reads worse than the r-colored vowel ("information").
	{name: "fewest AO0", count: countTokens("AO", unstressed)},
}

var unstressed = func(t phonetic.CodedToken) bool { return t.Stress == phonetic.StressNone }

// countTokens counts tokens with the given code that also satisfy match, if set.
func countTokens(code string, match func(phonetic.CodedToken) bool) func(Variant) int {
	return func(v Variant) int {
		n := 0
		for _, t := range v.Tokens {
			if t.Code == code && (match == nil || match(t)) {
				n++
			}
		}
		return n
	}
}

// pinned maps words to the variant Index used regardless of scoring. The
// scoring would pick the emphatic form of these function words.
var pinned = map[string]int{
	"the": 0,
	"a":   0,
}

// Resolution is the variant picked for a word and why.
type Resolution struct {
	Variant Variant
	Reason  string
}

// Resolver picks one canonical variant per word. It has no mutable state.
type Resolver struct {
	pinned map[string]int
}

// NewResolver creates a Resolver with the built-in pinned words.
func NewResolver() *Resolver {
	return &Resolver{pinned: pinned}
}

// Resolve returns the canonical variant of word. It never fails; an empty
// variant list yields the zero Variant.
func (r *Resolver) Resolve(word string, variants []Variant) Variant {
	return r.Explain(word, variants).Variant
}

// Explain is Resolve with the reason for the choice.
func (r *Resolver) Explain(word string, variants []Variant) Resolution {
	switch len(variants) {
	case 0:
		return Resolution{Reason: "no variants"}
	case 1:
		return Resolution{Variant: variants[0], Reason: "single variant"}
	}

	if idx, ok := r.pinned[domain.NormalizeText(word)]; ok {
		for _, v := range variants {
			if v.Index == idx {
				return Resolution{Variant: v, Reason: "pinned"}
			}
		}
	}

	candidates := variants
	for _, c := range criteria {
		candidates = keepLowest(candidates, c.count)
		if len(candidates) == 1 {
			return Resolution{Variant: candidates[0], Reason: c.name}
		}
	}
	return Resolution{Variant: lowestIndex(candidates), Reason: "base variant"}
}

func keepLowest(vs []Variant, count func(Variant) int) []Variant {
	best := -1
	var out []Variant
	for _, v := range vs {
		n := count(v)
		switch {
		case best == -1 || n < best:
			best = n
			out = []Variant{v}
		case n == best:
			out = append(out, v)
		}
	}
	return out
}

func lowestIndex(vs []Variant) Variant {
	best := vs[0]
	for _, v := range vs[1:] {
		if v.Index < best.Index {
			best = v
		}
	}
	return best
}
