package translit

import "strings"

// Correction is one named rewrite over the assembled grapheme string.
type Correction struct {
	Name  string
	apply func(string) string
}

// Apply runs the correction on s.
func (c Correction) Apply(s string) string { return c.apply(s) }

// defaultCorrections lists the stages in the order they run. Each stage
// runs once; a later stage never re-triggers an earlier one.
func defaultCorrections() []Correction {
	return []Correction{
		replaceStage("r-colored-collapse",
			"áiar", "áir",
			"aiar", "air",
			"áuar", "áur",
			"auar", "aur",
			"éar", "ér",
			"ear", "er",
		),
		replaceStage("nasal-stop-degemination",
			"ngk", "nk",
			"ngg", "ng",
		),
		suffixStage("cluster-tail",
			"ksts", "ks",
			"kts", "ks",
			"pts", "ps",
		),
	}
}

// replaceStage rewrites every occurrence of the old/new pairs in a single
// left-to-right pass. Earlier pairs win at the same position.
func replaceStage(name string, oldnew ...string) Correction {
	r := strings.NewReplacer(oldnew...)
	return Correction{Name: name, apply: r.Replace}
}

// suffixStage rewrites the first matching word ending.
func suffixStage(name string, oldnew ...string) Correction {
	return Correction{Name: name, apply: func(s string) string {
		for i := 0; i+1 < len(oldnew); i += 2 {
			if rest, ok := strings.CutSuffix(s, oldnew[i]); ok {
				return rest + oldnew[i+1]
			}
		}
		return s
	}}
}
