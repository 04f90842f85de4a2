package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Analysis struct {
		MinStrokeBars  int    `yaml:"min_stroke_bars"`
		MinZoneStrokes int    `yaml:"min_zone_strokes"`
		MergeRule      string `yaml:"merge_rule"`    // "extremum" or "envelope"
		ZoneStrategy   string `yaml:"zone_strategy"` // "anchor" or "incremental"
	} `yaml:"analysis"`
	Data struct {
		Symbol  string `yaml:"symbol"`
		CSVPath string `yaml:"csv_path"` // empty means the built-in mock series
	} `yaml:"data"`
	Schedule struct {
		WatchCron string `yaml:"watch_cron"` // empty means one-shot mode
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty disables recording
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; a missing .env just logs a note.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, relying on actual environment")
	}

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
	if v := os.Getenv("MIN_STROKE_BARS"); v != "" {
		cfg.Analysis.MinStrokeBars = atoiOr(v, cfg.Analysis.MinStrokeBars)
	}
	if v := os.Getenv("MIN_ZONE_STROKES"); v != "" {
		cfg.Analysis.MinZoneStrokes = atoiOr(v, cfg.Analysis.MinZoneStrokes)
	}
	if v := os.Getenv("MERGE_RULE"); v != "" {
		cfg.Analysis.MergeRule = v
	}
	if v := os.Getenv("ZONE_STRATEGY"); v != "" {
		cfg.Analysis.ZoneStrategy = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.Data.Symbol = v
	}
	if v := os.Getenv("BARS_CSV"); v != "" {
		cfg.Data.CSVPath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Schedule.WatchCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Analysis.MinStrokeBars == 0 {
		cfg.Analysis.MinStrokeBars = 5
	}
	if cfg.Analysis.MinZoneStrokes == 0 {
		cfg.Analysis.MinZoneStrokes = 3
	}
	if cfg.Analysis.MergeRule == "" {
		cfg.Analysis.MergeRule = "extremum"
	}
	if cfg.Analysis.ZoneStrategy == "" {
		cfg.Analysis.ZoneStrategy = "anchor"
	}
	if cfg.Data.Symbol == "" {
		cfg.Data.Symbol = "UNKNOWN"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Analysis.MinStrokeBars < 1 {
		return fmt.Errorf("analysis.min_stroke_bars must be at least 1")
	}
	if c.Analysis.MinZoneStrokes < 1 {
		return fmt.Errorf("analysis.min_zone_strokes must be at least 1")
	}
	switch c.Analysis.MergeRule {
	case "extremum", "envelope":
	default:
		return fmt.Errorf("analysis.merge_rule must be \"extremum\" or \"envelope\", got %q", c.Analysis.MergeRule)
	}
	switch c.Analysis.ZoneStrategy {
	case "anchor", "incremental":
	default:
		return fmt.Errorf("analysis.zone_strategy must be \"anchor\" or \"incremental\", got %q", c.Analysis.ZoneStrategy)
	}
	return nil
}

func atoiOr(s string, fallback int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return fallback
}
