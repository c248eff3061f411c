package config

import "time"

// Config is the root application configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Engine     EngineConfig     `yaml:"engine"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig holds settings for acquiring the pronunciation dictionary.
type DictionaryConfig struct {
	SourceURL       string        `yaml:"source_url"       env:"DICT_SOURCE_URL"       env-default:"https://raw.githubusercontent.com/cmusphinx/cmudict/master/cmudict.dict"`
	CachePath       string        `yaml:"cache_path"       env:"DICT_CACHE_PATH"       env-default:"~/.jelou/cmudict.txt"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout"    env:"DICT_FETCH_TIMEOUT"    env-default:"30s"`
	RetryDelay      time.Duration `yaml:"retry_delay"      env:"DICT_RETRY_DELAY"      env-default:"500ms"`
	BreakerFailures uint32        `yaml:"breaker_failures" env:"DICT_BREAKER_FAILURES" env-default:"3"`
	BreakerCooldown time.Duration `yaml:"breaker_cooldown" env:"DICT_BREAKER_COOLDOWN" env-default:"1m"`
}

// EngineConfig holds transliteration engine settings.
type EngineConfig struct {
	BatchWorkers   int `yaml:"batch_workers"    env:"ENGINE_BATCH_WORKERS"    env-default:"8"`
	MaxInputLength int `yaml:"max_input_length" env:"ENGINE_MAX_INPUT_LENGTH" env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
