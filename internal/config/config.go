package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		File string `yaml:"file"`
	} `yaml:"data"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Crawler struct {
		Enabled bool   `yaml:"enabled"`
		BaseURL string `yaml:"base_url"`
		Zone    string `yaml:"zone"`
		Cron    string `yaml:"cron"`
	} `yaml:"crawler"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults cover everything.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GOLD_DATA_FILE"); v != "" {
		cfg.Data.File = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PNJ_BASE_URL"); v != "" {
		cfg.Crawler.BaseURL = v
	}
	if v := os.Getenv("PNJ_ZONE"); v != "" {
		cfg.Crawler.Zone = v
	}
	if v := os.Getenv("CRAWL_CRON"); v != "" {
		cfg.Crawler.Cron = v
	}
	if v := os.Getenv("CRAWL_ENABLED"); v != "" {
		cfg.Crawler.Enabled = v == "true"
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Data.File == "" {
		cfg.Data.File = "data/gold_price.csv"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Crawler.BaseURL == "" {
		cfg.Crawler.BaseURL = "https://edge-api.pnj.io"
	}
	if cfg.Crawler.Zone == "" {
		cfg.Crawler.Zone = "00"
	}
	if cfg.Crawler.Cron == "" {
		// Quotes land at 20:00 local, the timestamp the table shows.
		cfg.Crawler.Cron = "0 0 20 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/goldboard.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Data.File == "" {
		return fmt.Errorf("data.file is required")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Crawler.Enabled {
		if c.Crawler.BaseURL == "" {
			return fmt.Errorf("crawler.base_url is required when the crawler is enabled")
		}
		if c.Crawler.Cron == "" {
			return fmt.Errorf("crawler.cron is required when the crawler is enabled")
		}
	}
	return nil
}
