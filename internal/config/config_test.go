package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	want := Default()
	if cfg.Index != want.Index || cfg.HTTP != want.HTTP {
		t.Errorf("Load(missing) = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadReadsTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symcorrect.toml")
	content := `
[index]
max_edit_distance = 3
prefix_length = 5
count_threshold = 2

[http]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Index.MaxEditDistance != 3 || cfg.Index.PrefixLength != 5 || cfg.Index.CountThreshold != 2 {
		t.Errorf("Index = %+v, want {3 5 2}", cfg.Index)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, ":9090")
	}
}

func TestLoadAppliesEnvOverride(t *testing.T) {
	t.Setenv("SYMCORRECT_HTTP_ADDR", ":7070")
	t.Setenv("SYMCORRECT_INDEX_MAX_EDIT_DISTANCE", "4")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Errorf("HTTP.Addr = %q, want override %q", cfg.HTTP.Addr, ":7070")
	}
	if cfg.Index.MaxEditDistance != 4 {
		t.Errorf("Index.MaxEditDistance = %d, want override 4", cfg.Index.MaxEditDistance)
	}
}
