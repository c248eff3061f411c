package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	if err := c.Engine.validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

func (d *DictionaryConfig) validate() error {
	u, err := url.Parse(d.SourceURL)
	if err != nil {
		return fmt.Errorf("source_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("source_url must be an http(s) URL (got %q)", d.SourceURL)
	}

	path, err := ExpandHome(d.CachePath)
	if err != nil {
		return fmt.Errorf("cache_path: %w", err)
	}
	if path == "" {
		return fmt.Errorf("cache_path is required")
	}
	d.CachePath = path

	if d.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be > 0 (got %v)", d.FetchTimeout)
	}
	if d.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", d.RetryDelay)
	}
	if d.BreakerFailures == 0 {
		return fmt.Errorf("breaker_failures must be > 0")
	}
	if d.BreakerCooldown <= 0 {
		return fmt.Errorf("breaker_cooldown must be > 0 (got %v)", d.BreakerCooldown)
	}
	return nil
}

func (e *EngineConfig) validate() error {
	if e.BatchWorkers < 1 {
		return fmt.Errorf("batch_workers must be >= 1 (got %d)", e.BatchWorkers)
	}
	if e.MaxInputLength < 1 {
		return fmt.Errorf("max_input_length must be >= 1 (got %d)", e.MaxInputLength)
	}
	return nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
