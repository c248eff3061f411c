package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/internal/phonetic"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// ParseResult holds the parsed dictionary and parser statistics.
type ParseResult struct {
	Dictionary *Dictionary
	Stats      Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	SkippedLines int
	UniqueWords  int
}

// ParseFile reads a CMU-format dictionary file.
func ParseFile(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads CMU-format lines: "WORD  CODE0 CODE1 ...", where WORD may end
// in "(N)" for an alternate pronunciation. Lines starting with ";;;" are
// comments and a trailing "# ..." is ignored.
func Parse(r io.Reader) (ParseResult, error) {
	var stats Stats
	entries := make(map[string][]Variant)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		stats.TotalLines++
		line := scanner.Text()

		word, v, err := parseLine(line)
		if errors.Is(err, errSkipLine) {
			if strings.HasPrefix(line, ";;;") {
				stats.CommentLines++
			} else if strings.TrimSpace(line) != "" {
				stats.SkippedLines++
			}
			continue
		}

		stats.ParsedLines++
		entries[word] = append(entries[word], v)
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	dict := New(entries)
	stats.UniqueWords = dict.Len()
	return ParseResult{Dictionary: dict, Stats: stats}, nil
}

// parseLine parses a single dictionary line into a word and one variant.
func parseLine(line string) (string, Variant, error) {
	if strings.HasPrefix(line, ";;;") {
		return "", Variant{}, errSkipLine
	}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", Variant{}, errSkipLine
	}

	word, idx := parseWordAndVariant(fields[0])
	if word == "" {
		return "", Variant{}, errSkipLine
	}

	tokens := make([]phonetic.CodedToken, 0, len(fields)-1)
	for _, f := range fields[1:] {
		tokens = append(tokens, phonetic.ParseToken(f))
	}
	return word, Variant{Index: idx, Tokens: tokens}, nil
}

// parseWordAndVariant splits a raw word like "HOUSE(2)" into the normalized
// word and variant index. The base form has index 0, "(2)" maps to 1.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 || !strings.HasSuffix(raw, ")") {
		return domain.NormalizeText(raw), 0
	}

	n, err := strconv.Atoi(raw[idx+1 : len(raw)-1])
	if err != nil || n < 1 {
		return domain.NormalizeText(raw), 0
	}
	return domain.NormalizeText(raw[:idx]), n - 1
}
