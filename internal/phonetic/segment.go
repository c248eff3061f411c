package phonetic

import "strings"

// Stress is the stress marker carried by a segment.
type Stress uint8

const (
	StressNone Stress = iota
	StressPrimary
	StressSecondary
)

func (s Stress) String() string {
	switch s {
	case StressPrimary:
		return "primary"
	case StressSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// Segment is one IPA unit with its stress. Raw is only set for
// SymbolUnknown and holds the text that could not be recognized.
type Segment struct {
	Symbol Symbol
	Stress Stress
	Raw    string
}

// Text returns the IPA text of the segment.
func (s Segment) Text() string {
	if s.Symbol == SymbolUnknown {
		return s.Raw
	}
	return s.Symbol.String()
}

// Render concatenates the IPA text of segs without stress marks.
func Render(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text())
	}
	return b.String()
}
