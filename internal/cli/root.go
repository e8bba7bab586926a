// Package cli provides the atlas command-line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/chicago-health-atlas/internal/config"
	"github.com/couchcryptid/chicago-health-atlas/internal/observability"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "atlas",
		Short: "Chicago public-health atlas generator",
		Long: `atlas joins Chicago community-area boundaries with a public-health
indicator table and renders a report set: a choropleth poster, an
interactive Leaflet map, charts, a ranked table, an Excel workbook,
and a narrative page.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if cfg.Verbose {
				cfg.LogLevel = "debug"
			}
			logger = observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default atlas.yaml)")
	pf.String("geojson", config.DefaultGeoJSONPath, "community-area boundary GeoJSON")
	pf.String("health-csv", config.DefaultHealthCSV, "public-health indicator CSV")
	pf.String("out-dir", config.DefaultOutDir, "artifact output directory")
	pf.String("metric", config.DefaultMetric, "indicator column to visualize")
	pf.Int("top-n", config.DefaultTopN, "areas in the ranked bar chart and table")
	pf.Int("hist-bins", config.DefaultHistBins, "histogram bin count")
	pf.String("http-addr", config.DefaultHTTPAddr, "preview server listen address")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text or json)")
	pf.BoolP("verbose", "v", false, "shorthand for --log-level debug")

	rootCmd.AddCommand(newGenerateCmd(), newServeCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the root command and reports whether it succeeded.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", "error", err)
		} else {
			slog.Error("command failed", "error", err)
		}
		return err
	}
	return nil
}
