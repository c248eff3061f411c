// Package cmudict acquires the CMU Pronouncing Dictionary: it downloads the
// source file once, keeps it in a local cache file and parses it into a
// read-only dictionary.
package cmudict

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultSourceURL is the upstream cmudict.dict file.
const DefaultSourceURL = "https://raw.githubusercontent.com/cmusphinx/cmudict/master/cmudict.dict"

// maxBodySize bounds the download; the real file is under 4 MiB.
const maxBodySize = 64 << 20

// FetcherConfig holds download settings.
type FetcherConfig struct {
	SourceURL  string
	Timeout    time.Duration
	RetryDelay time.Duration

	// The breaker opens after BreakerFailures consecutive failed downloads
	// and lets a trial request through after BreakerCooldown.
	BreakerFailures uint32
	BreakerCooldown time.Duration
}

// Fetcher downloads the raw dictionary source over HTTP.
type Fetcher struct {
	url        string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	retryDelay time.Duration
	log        *slog.Logger
}

// NewFetcher creates a Fetcher. Zero config values fall back to defaults.
func NewFetcher(cfg FetcherConfig, logger *slog.Logger) *Fetcher {
	if cfg.SourceURL == "" {
		cfg.SourceURL = DefaultSourceURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 3
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = time.Minute
	}

	log := logger.With("adapter", "cmudict")
	failures := cfg.BreakerFailures

	return &Fetcher{
		url:        cfg.SourceURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryDelay: cfg.RetryDelay,
		log:        log,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "cmudict-download",
			MaxRequests: 1,
			Timeout:     cfg.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn("circuit breaker state changed",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		}),
	}
}

// Fetch downloads the dictionary source and returns its content.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	f.log.InfoContext(ctx, "cmudict download", slog.String("url", f.url))

	out, err := f.breaker.Execute(func() (interface{}, error) {
		return f.download(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("cmudict: download suspended: %w", err)
	}
	if err != nil {
		f.log.ErrorContext(ctx, "cmudict download failed", slog.String("error", err.Error()))
		return nil, err
	}

	body := out.([]byte)
	f.log.InfoContext(ctx, "cmudict downloaded", slog.Int("bytes", len(body)))
	return body, nil
}

func (f *Fetcher) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("cmudict: create request: %w", err)
	}

	resp, err := f.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("cmudict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cmudict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("cmudict: read body: %w", err)
	}
	if len(body) == 0 {
		return nil, errors.New("cmudict: empty body")
	}
	return body, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (f *Fetcher) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := f.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	f.log.WarnContext(ctx, "cmudict retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(f.retryDelay):
	}

	return f.httpClient.Do(req)
}
