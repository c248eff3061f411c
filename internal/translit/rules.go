// Package translit rewrites stressed IPA segments into Spanish graphemes.
package translit

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/jelou/internal/phonetic"
)

// GraphemeRule maps a run of symbols to the letters a Spanish reader
// pronounces the same way.
type GraphemeRule struct {
	Pattern  []phonetic.Symbol
	Grapheme string

	// Initial replaces Grapheme when the match starts the word.
	Initial string
	// BeforeConsonant replaces Grapheme when the match is followed by a
	// consonant or ends the word.
	BeforeConsonant string
}

func (r GraphemeRule) graphemeAt(segs []phonetic.Segment, start, end int) string {
	if start == 0 && r.Initial != "" {
		return r.Initial
	}
	if r.BeforeConsonant != "" && (end == len(segs) || segs[end].Symbol.IsConsonant()) {
		return r.BeforeConsonant
	}
	return r.Grapheme
}

func rule(g string, pattern ...phonetic.Symbol) GraphemeRule {
	return GraphemeRule{Pattern: pattern, Grapheme: g}
}

// Rule tables by category, in the order they are consulted.
var (
	clusterRules = []GraphemeRule{
		rule("ir", phonetic.NearCloseI, phonetic.Schwa, phonetic.R),
		rule("ur", phonetic.NearCloseU, phonetic.Schwa, phonetic.R),
		// The glide after dʒ is already heard in "y".
		rule("y", phonetic.Dezh, phonetic.J),
	}

	diphthongRules = []GraphemeRule{
		rule("au", phonetic.DiphthongAU),
		rule("ai", phonetic.DiphthongAI),
		rule("ei", phonetic.DiphthongEI),
		rule("ou", phonetic.DiphthongOU),
		rule("oi", phonetic.DiphthongOI),
	}

	vowelRules = []GraphemeRule{
		rule("a", phonetic.Schwa),
		rule("a", phonetic.OpenBackA),
		rule("a", phonetic.NearOpenA),
		rule("a", phonetic.OpenMidBack),
		rule("a", phonetic.CardinalA),
		rule("a", phonetic.LongA),
		rule("o", phonetic.OpenO),
		rule("o", phonetic.RoundedA),
		rule("o", phonetic.CardinalO),
		rule("o", phonetic.LongO),
		rule("e", phonetic.OpenE),
		rule("e", phonetic.CardinalE),
		rule("er", phonetic.StressedR),
		rule("er", phonetic.UnstressedR),
		rule("i", phonetic.NearCloseI),
		rule("i", phonetic.CardinalI),
		rule("i", phonetic.LongI),
		rule("u", phonetic.NearCloseU),
		rule("u", phonetic.CardinalU),
		rule("u", phonetic.LongU),
	}

	consonantRules = []GraphemeRule{
		rule("b", phonetic.B),
		rule("d", phonetic.D),
		rule("f", phonetic.F),
		rule("g", phonetic.G),
		rule("j", phonetic.H),
		rule("k", phonetic.K),
		rule("l", phonetic.L),
		rule("m", phonetic.M),
		rule("n", phonetic.N),
		rule("ng", phonetic.Eng),
		rule("p", phonetic.P),
		rule("r", phonetic.R),
		rule("s", phonetic.S),
		rule("sh", phonetic.Esh),
		rule("t", phonetic.T),
		rule("z", phonetic.Theta),
		rule("z", phonetic.Eth),
		rule("v", phonetic.V),
		rule("s", phonetic.Z),
		rule("sh", phonetic.Ezh),
		rule("w", phonetic.W),
		{Pattern: []phonetic.Symbol{phonetic.J}, Grapheme: "i", Initial: "y"},
		rule("ch", phonetic.Tesh),
		{Pattern: []phonetic.Symbol{phonetic.Dezh}, Grapheme: "y", BeforeConsonant: "ch"},
	}
)

// accents moves the stress of a vowel cluster onto the single letter the
// Spanish spelling accents.
var accents = map[string]string{
	"a":  "á",
	"e":  "é",
	"i":  "í",
	"o":  "ó",
	"u":  "ú",
	"ai": "ái",
	"au": "áu",
	"ei": "éi",
	"ou": "óu",
	"oi": "ói",
	"er": "ér",
	"ir": "ír",
	"ur": "úr",
}

// overrides are whole-word spellings used verbatim.
var overrides = map[string]string{
	"monday":    "mándei",
	"tuesday":   "túsdei",
	"wednesday": "wénsdei",
	"thursday":  "zérsdei",
	"friday":    "fráidei",
	"saturday":  "sáterdei",
	"sunday":    "sándei",
	"january":   "yániueri",
	"february":  "fébiueri",
	"march":     "march",
	"april":     "éipril",
	"may":       "méi",
	"june":      "yún",
	"july":      "yulái",
	"august":    "ógast",
	"september": "septémber",
	"october":   "aktóuber",
	"november":  "nouvémber",
	"december":  "disémber",
}

// RuleTableSet is the immutable rule configuration shared by every caller.
type RuleTableSet struct {
	rules       []GraphemeRule
	byFirst     map[phonetic.Symbol][]int
	accents     map[string]string
	corrections []Correction
	overrides   map[string]string
}

// NewRuleTableSet builds the rule tables and checks that every symbol of
// the inventory has a rule and every vowel grapheme can carry an accent.
func NewRuleTableSet() (*RuleTableSet, error) {
	var all []GraphemeRule
	all = append(all, clusterRules...)
	all = append(all, diphthongRules...)
	all = append(all, vowelRules...)
	all = append(all, consonantRules...)

	// Longest pattern first; declaration order breaks ties.
	slices.SortStableFunc(all, func(a, b GraphemeRule) int {
		return len(b.Pattern) - len(a.Pattern)
	})

	ts := &RuleTableSet{
		rules:       all,
		byFirst:     make(map[phonetic.Symbol][]int),
		accents:     accents,
		corrections: defaultCorrections(),
		overrides:   overrides,
	}
	for i, r := range all {
		ts.byFirst[r.Pattern[0]] = append(ts.byFirst[r.Pattern[0]], i)
	}

	if err := ts.validate(); err != nil {
		return nil, fmt.Errorf("translit: rule tables: %w", err)
	}
	return ts, nil
}

func (ts *RuleTableSet) validate() error {
	seen := make(map[string]bool, len(ts.rules))
	for _, r := range ts.rules {
		if len(r.Pattern) == 0 {
			return fmt.Errorf("rule %q has an empty pattern", r.Grapheme)
		}
		key := phonetic.Render(segmentsOf(r.Pattern))
		if seen[key] {
			return fmt.Errorf("pattern %q is declared twice", key)
		}
		seen[key] = true

		if carriesStress(r.Pattern) {
			if _, ok := ts.accents[r.Grapheme]; !ok {
				return fmt.Errorf("grapheme %q of %q has no accented form", r.Grapheme, key)
			}
		}
	}

	if missing := ts.Uncovered(phonetic.Symbols()); len(missing) > 0 {
		return fmt.Errorf("no rule for %d symbols, first %q", len(missing), missing[0])
	}
	return nil
}

// Covers reports whether a single-symbol rule exists for s.
func (ts *RuleTableSet) Covers(s phonetic.Symbol) bool {
	for _, i := range ts.byFirst[s] {
		if len(ts.rules[i].Pattern) == 1 {
			return true
		}
	}
	return false
}

// Uncovered returns the symbols of syms that no rule can consume on its own.
func (ts *RuleTableSet) Uncovered(syms []phonetic.Symbol) []phonetic.Symbol {
	var out []phonetic.Symbol
	for _, s := range syms {
		if !ts.Covers(s) {
			out = append(out, s)
		}
	}
	return out
}

// Override returns the fixed spelling of a whole word, if one exists.
func (ts *RuleTableSet) Override(word string) (string, bool) {
	v, ok := ts.overrides[word]
	return v, ok
}

// Corrections returns the correction pipeline in application order.
func (ts *RuleTableSet) Corrections() []Correction {
	return slices.Clone(ts.corrections)
}

// match returns the first rule matching segs at position i.
func (ts *RuleTableSet) match(segs []phonetic.Segment, i int) (GraphemeRule, bool) {
	for _, ri := range ts.byFirst[segs[i].Symbol] {
		r := ts.rules[ri]
		if i+len(r.Pattern) > len(segs) {
			continue
		}
		ok := true
		for k, s := range r.Pattern {
			if segs[i+k].Symbol != s {
				ok = false
				break
			}
		}
		if ok {
			return r, true
		}
	}
	return GraphemeRule{}, false
}

// carriesStress reports whether a pattern has a nucleus that can be accented.
// Schwa never can.
func carriesStress(pattern []phonetic.Symbol) bool {
	for _, s := range pattern {
		if s.IsVowel() && s != phonetic.Schwa {
			return true
		}
	}
	return false
}

func segmentsOf(syms []phonetic.Symbol) []phonetic.Segment {
	out := make([]phonetic.Segment, len(syms))
	for i, s := range syms {
		out[i] = phonetic.Segment{Symbol: s}
	}
	return out
}
