// Package config loads atlas configuration from defaults, an optional YAML
// file, ATLAS_-prefixed environment variables, and CLI flags, in ascending
// precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default source and output locations.
const (
	DefaultGeoJSONPath = "data/chicago-community-areas.geojson"
	DefaultHealthCSV   = "data/public-health-statistics-selected-public-health-indicators-by-chicago-community-area-1.csv"
	DefaultOutDir      = "output"
	DefaultMetric      = "Low Birth Weight"
	DefaultTopN        = 10
	DefaultHistBins    = 20
	DefaultHTTPAddr    = ":8080"
)

// Config holds every runtime setting for the atlas commands.
type Config struct {
	GeoJSONPath   string `koanf:"geojson"`
	HealthCSVPath string `koanf:"health_csv"`
	OutDir        string `koanf:"out_dir"`
	Metric        string `koanf:"metric"`
	TopN          int    `koanf:"top_n"`
	HistBins      int    `koanf:"hist_bins"`
	HTTPAddr      string `koanf:"http_addr"`
	LogLevel      string `koanf:"log_level"`
	LogFormat     string `koanf:"log_format"`
	Verbose       bool   `koanf:"verbose"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > atlas.yaml > atlas.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"atlas.yaml", "atlas.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the Config. Precedence (highest to lowest):
// flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"geojson":    DefaultGeoJSONPath,
		"health_csv": DefaultHealthCSV,
		"out_dir":    DefaultOutDir,
		"metric":     DefaultMetric,
		"top_n":      DefaultTopN,
		"hist_bins":  DefaultHistBins,
		"http_addr":  DefaultHTTPAddr,
		"log_level":  "info",
		"log_format": "text",
		"verbose":    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if used := findConfigFile(cfgFile); used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", used, err)
		}
	}

	// ATLAS_OUT_DIR -> out_dir
	if err := k.Load(env.Provider("ATLAS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ATLAS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set.
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Metric) == "" {
		return fmt.Errorf("metric must not be empty (set ATLAS_METRIC or --metric)")
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d (set ATLAS_TOP_N or --top-n)", c.TopN)
	}
	if c.HistBins <= 0 {
		return fmt.Errorf("hist_bins must be positive, got %d (set ATLAS_HIST_BINS or --hist-bins)", c.HistBins)
	}
	return nil
}
