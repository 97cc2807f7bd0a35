// Package customdict stores user-managed correction terms in Redis,
// separately from the base dictionary the index is built from.
package customdict

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CustomWordCount is the fixed synthetic count a custom word is injected
// into the index at, high enough to always outrank organically-learned
// corrections of the same edit distance.
const CustomWordCount int64 = 1_000_000_000_000

// Store wraps a Redis client holding the set of custom dictionary words.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store backed by client, keeping its set under key.
func New(client *redis.Client, key string) *Store {
	if key == "" {
		key = "custom_dict"
	}
	return &Store{client: client, key: key}
}

// Add inserts word into the custom dictionary.
func (s *Store) Add(ctx context.Context, word string) error {
	if err := s.client.SAdd(ctx, s.key, word).Err(); err != nil {
		return fmt.Errorf("customdict: add %q: %w", word, err)
	}
	return nil
}

// Remove deletes word from the custom dictionary. It does not retract the
// term from any already-built index; that only happens on the next rebuild.
func (s *Store) Remove(ctx context.Context, word string) error {
	if err := s.client.SRem(ctx, s.key, word).Err(); err != nil {
		return fmt.Errorf("customdict: remove %q: %w", word, err)
	}
	return nil
}

// All returns every word currently stored in the custom dictionary.
func (s *Store) All(ctx context.Context) ([]string, error) {
	words, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("customdict: list words: %w", err)
	}
	return words, nil
}
