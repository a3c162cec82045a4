// Package models defines configuration and the row/table types shared
// across the analysis pipeline.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default paths match the layout the analysis was originally run against.
const (
	DefaultArticlesFile     = "./articles_community.csv"
	DefaultInteractionsFile = "./user-item-interactions.csv"
	DefaultPlotsDir         = "./plots"
)

// Config holds runtime configuration for an analysis run. Values come
// from an optional YAML file; CLI flags override whatever is set here.
type Config struct {
	ArticlesFile     string `yaml:"articles_file"`
	InteractionsFile string `yaml:"interactions_file"`
	PlotsDir         string `yaml:"plots_dir"`
	HistoryDB        string `yaml:"history_db"`
}

// DefaultConfig returns a config pointing at the default input files.
func DefaultConfig() *Config {
	return &Config{
		ArticlesFile:     DefaultArticlesFile,
		InteractionsFile: DefaultInteractionsFile,
		PlotsDir:         DefaultPlotsDir,
	}
}

// LoadConfig reads a YAML config file. Fields absent from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
