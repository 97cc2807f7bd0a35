// Package config loads symcorrect's TOML configuration, with every field
// overridable by an environment variable.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure, mirroring the [index],
// [dictionary], [redis], [postgres], [http], and [log] TOML sections.
type Config struct {
	Index      IndexConfig      `toml:"index"`
	Dictionary DictionaryConfig `toml:"dictionary"`
	Redis      RedisConfig      `toml:"redis"`
	Postgres   PostgresConfig   `toml:"postgres"`
	HTTP       HTTPConfig       `toml:"http"`
	Log        LogConfig        `toml:"log"`
}

type IndexConfig struct {
	MaxEditDistance int `toml:"max_edit_distance"`
	PrefixLength    int `toml:"prefix_length"`
	CountThreshold  int `toml:"count_threshold"`
}

type DictionaryConfig struct {
	Path       string `toml:"path"`
	BigramPath string `toml:"bigram_path"`
	TermIndex  int    `toml:"term_index"`
	CountIndex int    `toml:"count_index"`
	Separator  string `toml:"separator"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type PostgresConfig struct {
	DSN   string `toml:"dsn"`
	Query string `toml:"query"`
}

type HTTPConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() *Config {
	return &Config{
		Index: IndexConfig{
			MaxEditDistance: 2,
			PrefixLength:    7,
			CountThreshold:  1,
		},
		Dictionary: DictionaryConfig{
			Path:       "dictionaries/frequency.txt",
			BigramPath: "dictionaries/bigrams.txt",
			TermIndex:  0,
			CountIndex: 1,
			Separator:  " ",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			DB:   0,
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path as TOML into a fresh default Config, then applies any
// SYMCORRECT_<SECTION>_<FIELD> environment overrides. A missing config file
// is not an error: Load falls back entirely to Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, err
			}
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.Index.MaxEditDistance = getEnvInt("SYMCORRECT_INDEX_MAX_EDIT_DISTANCE", cfg.Index.MaxEditDistance)
	cfg.Index.PrefixLength = getEnvInt("SYMCORRECT_INDEX_PREFIX_LENGTH", cfg.Index.PrefixLength)
	cfg.Index.CountThreshold = getEnvInt("SYMCORRECT_INDEX_COUNT_THRESHOLD", cfg.Index.CountThreshold)

	cfg.Dictionary.Path = getEnvString("SYMCORRECT_DICTIONARY_PATH", cfg.Dictionary.Path)
	cfg.Dictionary.BigramPath = getEnvString("SYMCORRECT_DICTIONARY_BIGRAM_PATH", cfg.Dictionary.BigramPath)
	cfg.Dictionary.TermIndex = getEnvInt("SYMCORRECT_DICTIONARY_TERM_INDEX", cfg.Dictionary.TermIndex)
	cfg.Dictionary.CountIndex = getEnvInt("SYMCORRECT_DICTIONARY_COUNT_INDEX", cfg.Dictionary.CountIndex)
	cfg.Dictionary.Separator = getEnvString("SYMCORRECT_DICTIONARY_SEPARATOR", cfg.Dictionary.Separator)

	cfg.Redis.Addr = getEnvString("SYMCORRECT_REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnvString("SYMCORRECT_REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("SYMCORRECT_REDIS_DB", cfg.Redis.DB)

	cfg.Postgres.DSN = getEnvString("SYMCORRECT_POSTGRES_DSN", cfg.Postgres.DSN)
	cfg.Postgres.Query = getEnvString("SYMCORRECT_POSTGRES_QUERY", cfg.Postgres.Query)

	cfg.HTTP.Addr = getEnvString("SYMCORRECT_HTTP_ADDR", cfg.HTTP.Addr)

	cfg.Log.Level = getEnvString("SYMCORRECT_LOG_LEVEL", cfg.Log.Level)
}

func getEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
