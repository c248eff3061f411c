// Package phonetic holds the closed IPA symbol inventory, the phoneme-code
// table of the pronunciation dictionary and the conversion from coded tokens
// to stressed IPA segments.
package phonetic

// Class groups symbols by how the transliteration treats them.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassVowel
	ClassLongVowel
	ClassDiphthong
	ClassConsonant
	ClassSemivowel
	ClassAffricate
)

func (c Class) String() string {
	switch c {
	case ClassVowel:
		return "vowel"
	case ClassLongVowel:
		return "long vowel"
	case ClassDiphthong:
		return "diphthong"
	case ClassConsonant:
		return "consonant"
	case ClassSemivowel:
		return "semivowel"
	case ClassAffricate:
		return "affricate"
	default:
		return "unknown"
	}
}

// Symbol is one atomic IPA unit. Diphthongs, affricates and long vowels are
// single symbols even though their IPA text spans two runes.
type Symbol uint8

const (
	// SymbolUnknown stands for text no table knows; the segment's Raw holds it.
	SymbolUnknown Symbol = iota

	// Short and r-colored vowels.
	OpenBackA    // ɑ
	NearOpenA    // æ
	OpenMidBack  // ʌ
	Schwa        // ə
	OpenO        // ɔ
	RoundedA     // ɒ
	OpenE        // ɛ
	StressedR    // ɝ
	UnstressedR  // ɚ
	NearCloseI   // ɪ
	NearCloseU   // ʊ
	CardinalA    // a
	CardinalE    // e
	CardinalI    // i
	CardinalO    // o
	CardinalU    // u

	// Long vowels.
	LongI // iː
	LongU // uː
	LongA // ɑː
	LongO // ɔː

	// Diphthongs.
	DiphthongAU // aʊ
	DiphthongAI // aɪ
	DiphthongEI // eɪ
	DiphthongOU // oʊ
	DiphthongOI // ɔɪ

	// Consonants.
	B
	D
	F
	G
	H
	K
	L
	M
	N
	Eng // ŋ
	P
	R
	S
	Esh // ʃ
	T
	Theta // θ
	Eth   // ð
	V
	Z
	Ezh // ʒ

	// Semivowels.
	W
	J // j, the palatal glide

	// Affricates.
	Tesh // tʃ
	Dezh // dʒ

	symbolCount
)

type symbolInfo struct {
	ipa   string
	class Class
}

// symbolTable is indexed by Symbol. The array length ties it to the
// enumeration; TestSymbolTable_Complete checks no entry was left zero.
var symbolTable = [symbolCount]symbolInfo{
	SymbolUnknown: {"", ClassUnknown},

	OpenBackA:   {"ɑ", ClassVowel},
	NearOpenA:   {"æ", ClassVowel},
	OpenMidBack: {"ʌ", ClassVowel},
	Schwa:       {"ə", ClassVowel},
	OpenO:       {"ɔ", ClassVowel},
	RoundedA:    {"ɒ", ClassVowel},
	OpenE:       {"ɛ", ClassVowel},
	StressedR:   {"ɝ", ClassVowel},
	UnstressedR: {"ɚ", ClassVowel},
	NearCloseI:  {"ɪ", ClassVowel},
	NearCloseU:  {"ʊ", ClassVowel},
	CardinalA:   {"a", ClassVowel},
	CardinalE:   {"e", ClassVowel},
	CardinalI:   {"i", ClassVowel},
	CardinalO:   {"o", ClassVowel},
	CardinalU:   {"u", ClassVowel},

	LongI: {"iː", ClassLongVowel},
	LongU: {"uː", ClassLongVowel},
	LongA: {"ɑː", ClassLongVowel},
	LongO: {"ɔː", ClassLongVowel},

	DiphthongAU: {"aʊ", ClassDiphthong},
	DiphthongAI: {"aɪ", ClassDiphthong},
	DiphthongEI: {"eɪ", ClassDiphthong},
	DiphthongOU: {"oʊ", ClassDiphthong},
	DiphthongOI: {"ɔɪ", ClassDiphthong},

	B:     {"b", ClassConsonant},
	D:     {"d", ClassConsonant},
	F:     {"f", ClassConsonant},
	G:     {"g", ClassConsonant},
	H:     {"h", ClassConsonant},
	K:     {"k", ClassConsonant},
	L:     {"l", ClassConsonant},
	M:     {"m", ClassConsonant},
	N:     {"n", ClassConsonant},
	Eng:   {"ŋ", ClassConsonant},
	P:     {"p", ClassConsonant},
	R:     {"r", ClassConsonant},
	S:     {"s", ClassConsonant},
	Esh:   {"ʃ", ClassConsonant},
	T:     {"t", ClassConsonant},
	Theta: {"θ", ClassConsonant},
	Eth:   {"ð", ClassConsonant},
	V:     {"v", ClassConsonant},
	Z:     {"z", ClassConsonant},
	Ezh:   {"ʒ", ClassConsonant},

	W: {"w", ClassSemivowel},
	J: {"j", ClassSemivowel},

	Tesh: {"tʃ", ClassAffricate},
	Dezh: {"dʒ", ClassAffricate},
}

// Symbols returns every known symbol in declaration order, SymbolUnknown excluded.
func Symbols() []Symbol {
	out := make([]Symbol, 0, symbolCount-1)
	for s := SymbolUnknown + 1; s < symbolCount; s++ {
		out = append(out, s)
	}
	return out
}

// String returns the canonical IPA text of the symbol.
func (s Symbol) String() string {
	if s >= symbolCount {
		return ""
	}
	return symbolTable[s].ipa
}

// Class reports the symbol's class.
func (s Symbol) Class() Class {
	if s >= symbolCount {
		return ClassUnknown
	}
	return symbolTable[s].class
}

// IsVowel reports whether the symbol forms a syllable nucleus.
func (s Symbol) IsVowel() bool {
	switch s.Class() {
	case ClassVowel, ClassLongVowel, ClassDiphthong:
		return true
	default:
		return false
	}
}

// IsConsonant reports whether the symbol is a consonant, semivowel or affricate.
func (s Symbol) IsConsonant() bool {
	switch s.Class() {
	case ClassConsonant, ClassSemivowel, ClassAffricate:
		return true
	default:
		return false
	}
}
