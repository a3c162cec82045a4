package models

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
articles_file: testdata/articles.csv
interactions_file: testdata/interactions.csv
history_db: history.db
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.ArticlesFile != "testdata/articles.csv" {
		t.Errorf("ArticlesFile = %q", config.ArticlesFile)
	}
	if config.InteractionsFile != "testdata/interactions.csv" {
		t.Errorf("InteractionsFile = %q", config.InteractionsFile)
	}
	if config.HistoryDB != "history.db" {
		t.Errorf("HistoryDB = %q", config.HistoryDB)
	}

	// Fields absent from the file keep their defaults
	if config.PlotsDir != DefaultPlotsDir {
		t.Errorf("PlotsDir = %q, want default %q", config.PlotsDir, DefaultPlotsDir)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing file, got nil")
	}

	path := writeConfig(t, "articles_file: [not: valid")
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() expected error for invalid YAML, got nil")
	}
}
