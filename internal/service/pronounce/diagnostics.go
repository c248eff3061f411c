package pronounce

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/jelou/internal/dictionary"
	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/internal/phonetic"
)

// Explanation lists every variant of a word and the one the resolver picks.
type Explanation struct {
	Word       string
	Variants   []dictionary.Variant
	Resolution dictionary.Resolution
}

// ExplainWord returns the variants of word with the resolver's choice.
// It returns domain.ErrNotFound when the word is not in the dictionary.
func (s *Service) ExplainWord(ctx context.Context, word string) (Explanation, error) {
	normalized := domain.NormalizeText(word)

	dict, err := s.dict.Dictionary(ctx)
	if err != nil {
		return Explanation{}, fmt.Errorf("explain word: %w", err)
	}

	variants, ok := dict.Lookup(normalized)
	if !ok {
		return Explanation{}, fmt.Errorf("explain word %q: %w", normalized, domain.ErrNotFound)
	}

	return Explanation{
		Word:       normalized,
		Variants:   variants,
		Resolution: s.resolver.Explain(normalized, variants),
	}, nil
}

// CoverageFailure is a dictionary word whose resolved variant cannot be
// transliterated by rules alone.
type CoverageFailure struct {
	Word    string
	Variant string
	// Err is set when the variant holds a code outside the code table.
	Err error
	// Uncovered lists symbols of the variant that no rule consumes.
	Uncovered []phonetic.Symbol
}

// CoverageReport is the outcome of a full dictionary scan.
type CoverageReport struct {
	Words    int
	Failures []CoverageFailure
}

// OK reports whether every scanned word is fully covered.
func (r CoverageReport) OK() bool {
	return len(r.Failures) == 0
}

// CheckCoverage converts the resolved variant of every dictionary word and
// checks that each resulting symbol has a grapheme rule. Words are scanned
// in sorted order, so the report is deterministic.
func (s *Service) CheckCoverage(ctx context.Context) (CoverageReport, error) {
	dict, err := s.dict.Dictionary(ctx)
	if err != nil {
		return CoverageReport{}, fmt.Errorf("check coverage: %w", err)
	}

	start := time.Now()
	var report CoverageReport
	for word, variants := range dict.All() {
		if report.Words%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return report, fmt.Errorf("check coverage: %w", err)
			}
		}
		report.Words++

		variant := s.resolver.Resolve(word, variants)
		segs, err := phonetic.Convert(variant.Tokens)
		if err != nil {
			report.Failures = append(report.Failures, CoverageFailure{
				Word: word, Variant: variant.String(), Err: err,
			})
			continue
		}

		if missing := s.coverage.Uncovered(symbolsOf(segs)); len(missing) > 0 {
			report.Failures = append(report.Failures, CoverageFailure{
				Word: word, Variant: variant.String(), Uncovered: missing,
			})
		}
	}

	s.log.InfoContext(ctx, "coverage scan finished",
		slog.Int("words", report.Words),
		slog.Int("failures", len(report.Failures)),
		slog.Duration("duration", time.Since(start)),
	)
	return report, nil
}

func symbolsOf(segs []phonetic.Segment) []phonetic.Symbol {
	out := make([]phonetic.Symbol, len(segs))
	for i, seg := range segs {
		out[i] = seg.Symbol
	}
	return out
}
