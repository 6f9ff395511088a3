// Package config loads run settings from the environment, with an optional
// .env file for local use.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of both audits. CLI flags may override
// individual fields after Load.
type Config struct {
	// Catalog audit.
	LocalesDir      string   `env:"L10NLINT_LOCALES_DIR" envDefault:"src/locales"`
	ReferenceName   string   `env:"L10NLINT_REFERENCE" envDefault:"en.json"`
	ReportPath      string   `env:"L10NLINT_REPORT" envDefault:"locale_audit.txt"`
	ExcludePrefixes []string `env:"L10NLINT_EXCLUDE_PREFIXES" envSeparator:"," envDefault:"app.,languages."`

	// Hardcoded-string scan.
	ScanRoots      []string `env:"L10NLINT_SCAN_ROOTS" envSeparator:"," envDefault:"src"`
	ScanExtensions []string `env:"L10NLINT_SCAN_EXTENSIONS" envSeparator:"," envDefault:".tsx"`
	ScanReportPath string   `env:"L10NLINT_SCAN_REPORT" envDefault:"hardcoded_audit.txt"`
}

// ScanExcludeDirs are directory names never descended into during a scan.
var ScanExcludeDirs = []string{"node_modules", ".git", "dist", "build"}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; its absence is fine since
// CI and shells set variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		return fmt.Errorf("config: locales directory must not be empty")
	}
	if strings.TrimSpace(c.ReferenceName) == "" {
		return fmt.Errorf("config: reference file name must not be empty")
	}
	if strings.TrimSpace(c.ReportPath) == "" {
		return fmt.Errorf("config: report path must not be empty")
	}
	if strings.TrimSpace(c.ScanReportPath) == "" {
		return fmt.Errorf("config: scan report path must not be empty")
	}
	return nil
}
