package phonetic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/heartmarshall/jelou/internal/domain"
)

// CodedToken is one dictionary phoneme: an ARPAbet code plus the stress
// taken from its trailing digit (0, 1 or 2). Consonants carry no digit and
// get StressNone.
type CodedToken struct {
	Code   string
	Stress Stress
}

// String renders the token the way the dictionary writes it, e.g. "AH0".
func (t CodedToken) String() string {
	sym, known := codeTable[t.Code]
	switch {
	case t.Stress == StressPrimary:
		return t.Code + "1"
	case t.Stress == StressSecondary:
		return t.Code + "2"
	case known && sym.IsVowel():
		return t.Code + "0"
	default:
		return t.Code
	}
}

// codeTable maps ARPAbet codes to IPA symbols.
var codeTable = map[string]Symbol{
	"AA": OpenBackA,
	"AE": NearOpenA,
	"AH": OpenMidBack,
	"AO": OpenO,
	"AW": DiphthongAU,
	"AY": DiphthongAI,
	"EH": OpenE,
	"ER": StressedR,
	"EY": DiphthongEI,
	"IH": NearCloseI,
	"IY": LongI,
	"OW": DiphthongOU,
	"OY": DiphthongOI,
	"UH": NearCloseU,
	"UW": LongU,

	"B":  B,
	"CH": Tesh,
	"D":  D,
	"DH": Eth,
	"F":  F,
	"G":  G,
	"HH": H,
	"JH": Dezh,
	"K":  K,
	"L":  L,
	"M":  M,
	"N":  N,
	"NG": Eng,
	"P":  P,
	"R":  R,
	"S":  S,
	"SH": Esh,
	"T":  T,
	"TH": Theta,
	"V":  V,
	"W":  W,
	"Y":  J,
	"Z":  Z,
	"ZH": Ezh,
}

// Codes returns every code of the table in sorted order.
func Codes() []string {
	out := make([]string, 0, len(codeTable))
	for c := range codeTable {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// LookupCode returns the IPA symbol for an ARPAbet code without stress digit.
func LookupCode(code string) (Symbol, bool) {
	s, ok := codeTable[code]
	return s, ok
}

// ParseToken splits a raw dictionary token like "OW1" into code and stress.
// Only the digits 0, 1 and 2 are stress markers; any other suffix stays part
// of the code, so "AH3" later fails conversion as an unknown code.
func ParseToken(raw string) CodedToken {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return CodedToken{}
	}
	switch raw[len(raw)-1] {
	case '0':
		return CodedToken{Code: raw[:len(raw)-1], Stress: StressNone}
	case '1':
		return CodedToken{Code: raw[:len(raw)-1], Stress: StressPrimary}
	case '2':
		return CodedToken{Code: raw[:len(raw)-1], Stress: StressSecondary}
	default:
		return CodedToken{Code: raw, Stress: StressNone}
	}
}

// ParseTokens parses a whitespace separated phoneme string such as "HH AH0 L OW1".
func ParseTokens(s string) []CodedToken {
	fields := strings.Fields(s)
	out := make([]CodedToken, 0, len(fields))
	for _, f := range fields {
		out = append(out, ParseToken(f))
	}
	return out
}

// Convert maps coded tokens to stressed IPA segments. Secondary stress is
// dropped; when several tokens carry primary stress only the last one keeps
// it. The output has the same length and order as the input.
func Convert(tokens []CodedToken) ([]Segment, error) {
	segs := make([]Segment, len(tokens))
	lastPrimary := -1

	for i, tok := range tokens {
		sym, ok := codeTable[tok.Code]
		if !ok {
			return nil, fmt.Errorf("token %d %q: %w", i, tok.Code, domain.ErrUnknownPhonemeCode)
		}
		segs[i] = Segment{Symbol: sym}
		if tok.Stress == StressPrimary {
			lastPrimary = i
		}
	}

	if lastPrimary >= 0 {
		segs[lastPrimary].Stress = StressPrimary
	}
	return segs, nil
}
