package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds scraper behavior and filter criteria
type Config struct {
	Scraper struct {
		BaseURL               string `yaml:"base_url"`
		UserAgent             string `yaml:"user_agent"`
		DelaySeconds          int    `yaml:"delay_seconds"`
		MaxPagesRead          int    `yaml:"max_pages_read"`
		MaxPagesCurrentlyRead int    `yaml:"max_pages_currently_reading"`
		SQLitePath            string `yaml:"sqlite_path"`
	} `yaml:"scraper"`

	Filters struct {
		MinRating       int     `yaml:"min_rating"`
		MinAvgRating    float64 `yaml:"min_avg_rating"`
		PublishedAfter  int     `yaml:"published_after"`
		PublishedBefore int     `yaml:"published_before"`
	} `yaml:"filters"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Scraper.BaseURL = "https://www.goodreads.com"
	cfg.Scraper.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	cfg.Scraper.DelaySeconds = 1
	cfg.Scraper.MaxPagesRead = 50
	cfg.Scraper.MaxPagesCurrentlyRead = 10
	return cfg
}

// Delay returns the politeness pause between page fetches
func (c *Config) Delay() time.Duration {
	if c.Scraper.DelaySeconds <= 0 {
		return 0
	}
	return time.Duration(c.Scraper.DelaySeconds) * time.Second
}
