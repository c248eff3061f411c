// Package pronounce is the engine API: it turns a dictionary word or raw
// IPA notation into its Spanish-readable spelling.
package pronounce

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/jelou/internal/config"
	"github.com/heartmarshall/jelou/internal/dictionary"
	"github.com/heartmarshall/jelou/internal/phonetic"
	"github.com/heartmarshall/jelou/internal/translit"
)

// dictionarySource provides the loaded pronunciation dictionary.
type dictionarySource interface {
	Dictionary(ctx context.Context) (*dictionary.Dictionary, error)
}

// variantResolver picks one pronunciation among a word's variants.
type variantResolver interface {
	Resolve(word string, variants []dictionary.Variant) dictionary.Variant
	Explain(word string, variants []dictionary.Variant) dictionary.Resolution
}

// symbolCoverage reports symbols that no grapheme rule consumes.
type symbolCoverage interface {
	Uncovered(syms []phonetic.Symbol) []phonetic.Symbol
}

// transliterator rewrites IPA segments into Spanish graphemes.
type transliterator interface {
	TransliterateWord(word string, segs []phonetic.Segment) translit.Result
	Transliterate(segs []phonetic.Segment) translit.Result
}

// Service implements the pronunciation operations.
type Service struct {
	log      *slog.Logger
	dict     dictionarySource
	resolver variantResolver
	engine   transliterator
	coverage symbolCoverage
	cfg      config.EngineConfig
}

// NewService creates a new pronounce service instance.
func NewService(
	logger *slog.Logger,
	dict dictionarySource,
	resolver variantResolver,
	engine transliterator,
	coverage symbolCoverage,
	cfg config.EngineConfig,
) *Service {
	if cfg.BatchWorkers < 1 {
		cfg.BatchWorkers = 1
	}
	return &Service{
		log:      logger.With("service", "pronounce"),
		dict:     dict,
		resolver: resolver,
		engine:   engine,
		coverage: coverage,
		cfg:      cfg,
	}
}

func (s *Service) logUnmapped(ctx context.Context, input string, res translit.Result) {
	if len(res.Unmapped) == 0 {
		return
	}
	s.log.WarnContext(ctx, "unmapped ipa symbols",
		slog.String("input", input),
		slog.Any("symbols", res.Unmapped),
	)
}
