package pronounce

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/internal/notation"
	"github.com/heartmarshall/jelou/internal/phonetic"
)

// TranslateWord looks the word up in the dictionary and transliterates its
// resolved pronunciation. A missing word is not an error: it yields
// Found=false. Errors are domain.ErrDictionaryUnavailable when the dictionary
// cannot be obtained and domain.ErrUnknownPhonemeCode when the entry carries
// a code outside the code table.
func (s *Service) TranslateWord(ctx context.Context, word string) (WordResult, error) {
	normalized := domain.NormalizeText(word)
	if normalized == "" {
		return WordResult{Word: normalized}, nil
	}

	dict, err := s.dict.Dictionary(ctx)
	if err != nil {
		return WordResult{}, fmt.Errorf("translate word: %w", err)
	}

	variants, ok := dict.Lookup(normalized)
	if !ok {
		s.log.DebugContext(ctx, "word not in dictionary", slog.String("word", normalized))
		return WordResult{Word: normalized}, nil
	}

	variant := s.resolver.Resolve(normalized, variants)
	segs, err := phonetic.Convert(variant.Tokens)
	if err != nil {
		s.log.ErrorContext(ctx, "corrupt dictionary entry",
			slog.String("word", normalized),
			slog.String("variant", variant.String()),
			slog.String("error", err.Error()),
		)
		return WordResult{}, fmt.Errorf("translate word %q: %w", normalized, err)
	}

	res := s.engine.TransliterateWord(normalized, segs)
	s.logUnmapped(ctx, normalized, res)

	return WordResult{
		Word:    normalized,
		IPA:     phonetic.Render(segs),
		Spanish: res.Spanish,
		Found:   true,
	}, nil
}

// TranslateIPA transliterates raw IPA notation, with or without slashes,
// brackets or stress marks. It never consults the dictionary. It fails with
// domain.ErrMalformedNotation only when no IPA symbol can be recognized.
func (s *Service) TranslateIPA(ctx context.Context, raw string) (string, error) {
	segs, err := notation.Parse(raw)
	if err != nil {
		return "", err
	}

	res := s.engine.Transliterate(segs)
	s.logUnmapped(ctx, raw, res)
	return res.Spanish, nil
}
