// Package notation turns IPA text typed by a user or copied from another
// dictionary into segments the transliteration engine accepts.
package notation

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/internal/phonetic"
)

const maxPasses = 4

// stripped are delimiters, separators and stress marks with no phonemic value.
var stripped = map[rune]bool{
	'/': true,
	'[': true,
	']': true,
	'(': true,
	')': true,
	'.': true,
	'ˈ': true,
	'ˌ': true,
	'\'': true,
	'ˑ': true,
	'‿': true,
}

// Sanitize strips decoration from raw IPA text and tokenizes what is left.
// A length mark attached to a vowel forms a long vowel; a free-standing one
// is dropped. All returned segments are unstressed. It fails with
// domain.ErrMalformedNotation when no known symbol remains.
func Sanitize(raw string) ([]phonetic.Segment, error) {
	text := clean(raw)
	segs := tokenize(text)

	// Dropping a length mark or spelling out an alias can join neighbours
	// into a longer match, so tokenize again until the text is stable.
	for range maxPasses {
		next := phonetic.Render(segs)
		if next == text {
			break
		}
		text = next
		segs = tokenize(text)
	}

	for _, s := range segs {
		if s.Symbol != phonetic.SymbolUnknown {
			return segs, nil
		}
	}
	return nil, fmt.Errorf("notation %q: %w", raw, domain.ErrMalformedNotation)
}

// Parse sanitizes raw and derives stress. Stress marks in the text are not
// used; the last long vowel, the only prominence cue kept, gets primary
// stress.
func Parse(raw string) ([]phonetic.Segment, error) {
	segs, err := Sanitize(raw)
	if err != nil {
		return nil, err
	}
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].Symbol.Class() == phonetic.ClassLongVowel {
			segs[i].Stress = phonetic.StressPrimary
			break
		}
	}
	return segs, nil
}

// Render returns the canonical text of sanitized segments. Sanitizing the
// result yields the same segments again.
func Render(segs []phonetic.Segment) string {
	return phonetic.Render(segs)
}

func clean(raw string) string {
	s := strings.ToLower(norm.NFC.String(raw))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if stripped[r] || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func tokenize(text string) []phonetic.Segment {
	segs := phonetic.Tokenize(text)
	out := segs[:0]
	for _, s := range segs {
		if s.Symbol == phonetic.SymbolUnknown && isLengthMark(s.Raw) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func isLengthMark(s string) bool {
	return s == "ː" || s == ":"
}
