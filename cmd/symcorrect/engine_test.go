package main

import (
	"os"
	"path/filepath"
	"testing"

	"symcorrect/internal/config"
	"symcorrect/pkg/verbosity"
)

func TestBuildEngineLoadsFlatFileDictionary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "freq.txt")
	if err := os.WriteFile(path, []byte("pipe 5\npips 10\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := config.Default()
	cfg.Dictionary.Path = path
	cfg.Dictionary.BigramPath = ""
	cfg.Redis.Addr = ""

	engine, err := buildEngine(cfg)
	if err != nil {
		t.Fatalf("buildEngine: %v", err)
	}

	suggestions, err := engine.Lookup("pip", verbosity.All, 1)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2: %+v", len(suggestions), suggestions)
	}
}

func TestBuildStoreReturnsNilWithoutRedisAddr(t *testing.T) {
	cfg := config.Default()
	cfg.Redis.Addr = ""
	if store := buildStore(cfg); store != nil {
		t.Errorf("expected nil store when Redis.Addr is empty")
	}
}
