package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Match.TokenScoreBias != 10 {
		t.Errorf("default token_score_bias = %v, want 10", cfg.Match.TokenScoreBias)
	}
	if cfg.Server.MaxQuery != 60 {
		t.Errorf("default max_query = %d, want 60", cfg.Server.MaxQuery)
	}
	if cfg.Server.DefaultLimit != 24 {
		t.Errorf("default server limit = %d, want 24", cfg.Server.DefaultLimit)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Match.TokenScoreBias != 10 {
		t.Errorf("fresh config bias = %v, want 10", cfg.Match.TokenScoreBias)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Match.TokenScoreBias = 25
	cfg.Server.MaxQuery = 80
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Match.TokenScoreBias != 25 {
		t.Errorf("loaded bias = %v, want 25", loaded.Match.TokenScoreBias)
	}
	if loaded.Server.MaxQuery != 80 {
		t.Errorf("loaded max_query = %d, want 80", loaded.Server.MaxQuery)
	}
}

func TestLoadConfigIntegerBias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[match]\ntoken_score_bias = 15\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Match.TokenScoreBias != 15 {
		t.Errorf("bias = %v, want 15", cfg.Match.TokenScoreBias)
	}
}

// A file with one bad value should keep its good sections and fall back
// to defaults for everything else.
func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[match]\ntoken_score_bias = 30.0\n\n[server]\nmax_query = \"not a number\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Match.TokenScoreBias != 30 {
		t.Errorf("recovered bias = %v, want 30", cfg.Match.TokenScoreBias)
	}
	if cfg.Server.MaxQuery != 60 {
		t.Errorf("bad max_query should fall back to default 60, got %d", cfg.Server.MaxQuery)
	}
}

func TestLoadConfigRejectsNonPositiveBias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[match]\ntoken_score_bias = -5.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Match.TokenScoreBias != 10 {
		t.Errorf("non-positive bias should reset to default, got %v", cfg.Match.TokenScoreBias)
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	bias := 20.0
	maxQuery := 100
	if err := cfg.Update(path, &bias, &maxQuery, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Match.TokenScoreBias != 20 || loaded.Server.MaxQuery != 100 {
		t.Errorf("update not persisted: %+v", loaded)
	}
	if loaded.Server.DefaultLimit != 24 {
		t.Errorf("untouched value changed: %d", loaded.Server.DefaultLimit)
	}
}
