package pronounce

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/pkg/ctxutil"
)

// BatchTranslate translates every word independently and returns one item
// per input, in input order. A word that fails only marks its own item; the
// batch as a whole fails only when the dictionary is unavailable or ctx ends.
func (s *Service) BatchTranslate(ctx context.Context, words []string) ([]BatchItem, error) {
	items := make([]BatchItem, len(words))
	if len(words) == 0 {
		return items, nil
	}

	ctx, _ = ctxutil.EnsureRequestID(ctx)
	ctx = ctxutil.WithBatchID(ctx, uuid.New())
	start := time.Now()

	// Fetch once up front so an unavailable dictionary fails the batch
	// instead of every item.
	if _, err := s.dict.Dictionary(ctx); err != nil {
		return nil, fmt.Errorf("batch translate: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchWorkers)

	for i, word := range words {
		g.Go(func() error {
			res, err := s.TranslateWord(gctx, word)
			if errors.Is(err, domain.ErrDictionaryUnavailable) {
				return err
			}
			items[i] = BatchItem{Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch translate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch translate: %w", err)
	}

	found, failed := 0, 0
	for _, it := range items {
		switch {
		case it.Err != nil:
			failed++
		case it.Result.Found:
			found++
		}
	}
	s.log.InfoContext(ctx, "batch translated",
		slog.Int("words", len(words)),
		slog.Int("found", found),
		slog.Int("failed", failed),
		slog.Duration("duration", time.Since(start)),
	)

	return items, nil
}
