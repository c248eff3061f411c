package pronounce

// WordResult is the outcome of a dictionary word lookup. Found is false, and
// IPA and Spanish are empty, when the word is not in the dictionary.
type WordResult struct {
	Word    string
	IPA     string
	Spanish string
	Found   bool
}

// BatchItem is one position of a batch. Err is set when that word alone
// could not be translated.
type BatchItem struct {
	Result WordResult
	Err    error
}
