package cmudict

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/jelou/internal/dictionary"
	"github.com/heartmarshall/jelou/internal/domain"
)

type sourceFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Loader provides the parsed dictionary. The first caller reads the cache
// file, or downloads and writes it when missing; concurrent callers wait
// for that single load. A successful load is kept for the process lifetime.
type Loader struct {
	fetcher   sourceFetcher
	cachePath string
	log       *slog.Logger

	group singleflight.Group
	dict  atomic.Pointer[dictionary.Dictionary]
}

// NewLoader creates a Loader that caches the source at cachePath.
func NewLoader(fetcher sourceFetcher, cachePath string, logger *slog.Logger) *Loader {
	return &Loader{
		fetcher:   fetcher,
		cachePath: cachePath,
		log:       logger.With("adapter", "cmudict_loader"),
	}
}

// Dictionary returns the loaded dictionary, loading it on first use.
// Failing to obtain the source yields domain.ErrDictionaryUnavailable; a
// failed load is not remembered, so a later call tries again.
func (l *Loader) Dictionary(ctx context.Context) (*dictionary.Dictionary, error) {
	if d := l.dict.Load(); d != nil {
		return d, nil
	}
	return l.load(ctx, false)
}

// Refresh downloads the source again, replaces the cache file and swaps
// in the new dictionary.
func (l *Loader) Refresh(ctx context.Context) (*dictionary.Dictionary, error) {
	return l.load(ctx, true)
}

// CachePath returns the path of the cache file.
func (l *Loader) CachePath() string {
	return l.cachePath
}

func (l *Loader) load(ctx context.Context, force bool) (*dictionary.Dictionary, error) {
	key := "load"
	if force {
		key = "refresh"
	}

	// The shared load must not die with the first caller's context.
	loadCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(key, func() (any, error) {
		if !force {
			if d := l.dict.Load(); d != nil {
				return d, nil
			}
		}
		d, err := l.readOrFetch(loadCtx, force)
		if err != nil {
			return nil, err
		}
		l.dict.Store(d)
		return d, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*dictionary.Dictionary), nil
	}
}

func (l *Loader) readOrFetch(ctx context.Context, force bool) (*dictionary.Dictionary, error) {
	if !force {
		res, err := dictionary.ParseFile(l.cachePath)
		switch {
		case err == nil && res.Dictionary.Len() > 0:
			l.logLoaded(ctx, "cache", res.Stats)
			return res.Dictionary, nil
		case err == nil:
			l.log.WarnContext(ctx, "cmudict cache empty, downloading", slog.String("path", l.cachePath))
		case !errors.Is(err, os.ErrNotExist):
			l.log.WarnContext(ctx, "cmudict cache unreadable, downloading",
				slog.String("path", l.cachePath),
				slog.String("error", err.Error()),
			)
		}
	}

	body, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDictionaryUnavailable, err)
	}

	res, err := dictionary.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse download: %w", domain.ErrDictionaryUnavailable, err)
	}
	if res.Dictionary.Len() == 0 {
		return nil, fmt.Errorf("%w: download holds no entries", domain.ErrDictionaryUnavailable)
	}

	if err := writeFileAtomic(l.cachePath, body); err != nil {
		// Keep serving the parsed dictionary.
		l.log.WarnContext(ctx, "cmudict cache write failed",
			slog.String("path", l.cachePath),
			slog.String("error", err.Error()),
		)
	}

	l.logLoaded(ctx, "download", res.Stats)
	return res.Dictionary, nil
}

func (l *Loader) logLoaded(ctx context.Context, source string, stats dictionary.Stats) {
	l.log.InfoContext(ctx, "cmudict loaded",
		slog.String("source", source),
		slog.Int("words", stats.UniqueWords),
		slog.Int("lines", stats.TotalLines),
		slog.Int("skipped", stats.SkippedLines),
	)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place, so readers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename cache file: %w", err)
	}
	return nil
}
