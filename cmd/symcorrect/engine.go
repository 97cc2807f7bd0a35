package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"symcorrect/internal/config"
	"symcorrect/internal/corrlog"
	"symcorrect/internal/customdict"
	"symcorrect/pkg/dictionary"
	"symcorrect/pkg/options"
	"symcorrect/pkg/symspell"
)

var logger = corrlog.New("cli")

// loadConfig loads path, falling back to built-in defaults when empty or
// absent, and wires the resulting log level into corrlog.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	corrlog.SetLevel(cfg.Log.Level)
	return cfg, nil
}

// buildEngine constructs a SymSpell index from cfg's dictionary and bigram
// files, plus any custom words already stored in Redis.
func buildEngine(cfg *config.Config) (*symspell.SymSpell, error) {
	s := symspell.New(
		options.WithMaxDictionaryEditDistance(cfg.Index.MaxEditDistance),
		options.WithPrefixLength(cfg.Index.PrefixLength),
		options.WithCountThreshold(cfg.Index.CountThreshold),
	)

	if cfg.Postgres.DSN != "" {
		if err := loadDictionaryFromPostgres(s, cfg); err != nil {
			return nil, err
		}
	} else if cfg.Dictionary.Path != "" {
		if err := loadDictionaryFile(s, cfg.Dictionary.Path, cfg.Dictionary.TermIndex, cfg.Dictionary.CountIndex, cfg.Dictionary.Separator); err != nil {
			return nil, err
		}
	}
	if cfg.Dictionary.BigramPath != "" {
		if err := loadBigramFile(s, cfg.Dictionary.BigramPath, cfg.Dictionary.TermIndex, cfg.Dictionary.CountIndex, cfg.Dictionary.Separator); err != nil {
			return nil, err
		}
	}

	if store := buildStore(cfg); store != nil {
		words, err := store.All(context.Background())
		if err != nil {
			logger.Warn("loading custom words", "err", err)
		}
		for _, w := range words {
			s.CreateDictionaryEntry(w, customdict.CustomWordCount)
		}
	}

	return s, nil
}

func loadDictionaryFile(s *symspell.SymSpell, path string, termIndex, countIndex int, separator string) error {
	src, err := dictionary.NewTextSource(path, dictionary.DefaultMmapThreshold)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	defer src.Close()

	if _, err := s.LoadDictionary(src, termIndex, countIndex, separator); err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}
	return nil
}

// loadDictionaryFromPostgres opens cfg.Postgres.DSN with lib/pq and streams
// cfg.Postgres.Query's result set as dictionary rows, in place of the flat
// dictionary file.
func loadDictionaryFromPostgres(s *symspell.SymSpell, cfg *config.Config) error {
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("opening postgres: %w", err)
	}
	defer db.Close()

	query := cfg.Postgres.Query
	if query == "" {
		query = "SELECT term, count FROM dictionary_words"
	}

	src, err := dictionary.NewSQLSource(context.Background(), db, cfg.Dictionary.Separator, query)
	if err != nil {
		return fmt.Errorf("loading dictionary from postgres: %w", err)
	}

	if _, err := s.LoadDictionary(src, cfg.Dictionary.TermIndex, cfg.Dictionary.CountIndex, cfg.Dictionary.Separator); err != nil {
		return fmt.Errorf("loading dictionary from postgres: %w", err)
	}
	return nil
}

func loadBigramFile(s *symspell.SymSpell, path string, termIndex, countIndex int, separator string) error {
	src, err := dictionary.NewTextSource(path, dictionary.DefaultMmapThreshold)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("loading bigram dictionary: %w", err)
	}
	defer src.Close()

	if _, err := s.LoadBigramDictionary(src, termIndex, countIndex, separator); err != nil {
		return fmt.Errorf("loading bigram dictionary: %w", err)
	}
	return nil
}

// buildStore returns the Redis-backed custom-word store, or nil if no
// Redis address is configured.
func buildStore(cfg *config.Config) *customdict.Store {
	if cfg.Redis.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return customdict.New(client, "")
}
