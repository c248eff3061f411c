package phonetic

import "unicode/utf8"

// aliases are alternative spellings found in dictionaries and user input.
// They resolve to the same symbol as the canonical text.
var aliases = map[string]Symbol{
	"ɹ":  R,
	"ɾ":  T,
	"ɡ":  G,
	"ɫ":  L,
	"ɐ":  OpenMidBack,
	"ɜ":  StressedR,
	"ɜː": StressedR,
	"ɜ:": StressedR,
	"əʊ": DiphthongOU,
	"ʧ":  Tesh,
	"ʤ":  Dezh,
	"aː": LongA,
	"ɒː": LongO,
	"i:": LongI,
	"u:": LongU,
	"ɑ:": LongA,
	"ɔ:": LongO,
	"a:": LongA,
}

// spellings holds every text the tokenizer recognizes.
var spellings, maxSpelling = buildSpellings()

func buildSpellings() (map[string]Symbol, int) {
	m := make(map[string]Symbol, int(symbolCount)+len(aliases))
	longest := 0
	for _, s := range Symbols() {
		m[s.String()] = s
		if n := utf8.RuneCountInString(s.String()); n > longest {
			longest = n
		}
	}
	for text, s := range aliases {
		m[text] = s
		if n := utf8.RuneCountInString(text); n > longest {
			longest = n
		}
	}
	return m, longest
}

// Tokenize splits IPA text into segments by longest match, so "aɪ" is one
// diphthong and never "a" followed by "ɪ". Runes that start no known
// spelling become SymbolUnknown segments holding the rune. All segments
// are unstressed.
func Tokenize(text string) []Segment {
	runes := []rune(text)
	segs := make([]Segment, 0, len(runes))

	for i := 0; i < len(runes); {
		matched := false
		for n := min(maxSpelling, len(runes)-i); n > 0; n-- {
			if sym, ok := spellings[string(runes[i:i+n])]; ok {
				segs = append(segs, Segment{Symbol: sym})
				i += n
				matched = true
				break
			}
		}
		if !matched {
			segs = append(segs, Segment{Symbol: SymbolUnknown, Raw: string(runes[i])})
			i++
		}
	}
	return segs
}
