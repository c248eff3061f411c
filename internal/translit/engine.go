package translit

import (
	"strings"

	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/internal/phonetic"
)

// Result is the outcome of one transliteration.
type Result struct {
	Spanish string
	// Unmapped lists, in order, the IPA text no rule matched. It was copied
	// into Spanish unchanged.
	Unmapped []string
	// Overridden is set when the word's fixed spelling was used.
	Overridden bool
}

// Engine transliterates IPA segments with one immutable RuleTableSet.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	tables *RuleTableSet
}

// NewEngine creates an Engine over the given tables.
func NewEngine(tables *RuleTableSet) *Engine {
	return &Engine{tables: tables}
}

// piece is the grapheme cluster produced by one rule match.
type piece struct {
	text     string
	stressed bool
}

// TransliterateWord is Transliterate for a dictionary word: a whole-word
// override, when present, is returned instead of the rule output.
func (e *Engine) TransliterateWord(word string, segs []phonetic.Segment) Result {
	if v, ok := e.tables.Override(domain.NormalizeText(word)); ok {
		return Result{Spanish: v, Overridden: true}
	}
	return e.Transliterate(segs)
}

// Transliterate rewrites segs into Spanish graphemes: longest-match
// substitution, accent placement, then the correction pipeline.
func (e *Engine) Transliterate(segs []phonetic.Segment) Result {
	pieces, unmapped := e.substitute(segs)
	s := e.placeAccents(pieces)
	for _, c := range e.tables.corrections {
		s = c.Apply(s)
	}
	return Result{Spanish: s, Unmapped: unmapped}
}

func (e *Engine) substitute(segs []phonetic.Segment) ([]piece, []string) {
	var (
		pieces   = make([]piece, 0, len(segs))
		unmapped []string
	)

	for i := 0; i < len(segs); {
		r, ok := e.tables.match(segs, i)
		if !ok {
			text := segs[i].Text()
			pieces = append(pieces, piece{text: text})
			unmapped = append(unmapped, text)
			i++
			continue
		}

		end := i + len(r.Pattern)
		pieces = append(pieces, piece{
			text:     r.graphemeAt(segs, i, end),
			stressed: stressedNucleus(segs[i:end]),
		})
		i = end
	}
	return pieces, unmapped
}

// placeAccents joins the pieces, accenting the first vowel letter of every
// stressed cluster through the accent sub-table.
func (e *Engine) placeAccents(pieces []piece) string {
	var b strings.Builder
	for _, p := range pieces {
		if p.stressed {
			if acc, ok := e.tables.accents[p.text]; ok {
				b.WriteString(acc)
				continue
			}
		}
		b.WriteString(p.text)
	}
	return b.String()
}

// stressedNucleus reports whether a primary-stressed vowel other than schwa
// is part of the match.
func stressedNucleus(segs []phonetic.Segment) bool {
	for _, s := range segs {
		if s.Stress == phonetic.StressPrimary && s.Symbol.IsVowel() && s.Symbol != phonetic.Schwa {
			return true
		}
	}
	return false
}
