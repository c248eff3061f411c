package domain

import "strings"

// NormalizeText prepares a word for dictionary lookup: surrounding whitespace
// is trimmed, letters are lowercased and inner whitespace runs collapse to a
// single space. Apostrophes and hyphens are kept, since dictionary keys such
// as "don't" and "well-known" carry them.
func NormalizeText(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}
