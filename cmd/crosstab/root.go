package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/avolokh/crosstab/internal/config"
)

var (
	// Global flags (wired to config on load)
	cfgFile     string
	flagAlpha   float64
	flagMaxAxes int
	flagOutDir  string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "crosstab",
	Short: "Contingency-table analysis for categorical survey data",
	Long: `crosstab cross-tabulates two categorical survey variables, tests their
independence (chi-squared) and maps the association structure with
correspondence analysis. Output: a plain-text report, an Excel workbook
and publication-ready figures.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.crosstab/config.yaml)")
	rootCmd.PersistentFlags().Float64Var(&flagAlpha, "alpha", 0, "significance level for the chi-squared verdict (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagMaxAxes, "max-axes", 0, "cap on retained axes (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagOutDir, "output-dir", "", "directory for report artifacts (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{Alpha: 0.05, OutputDir: ".", PlotFormat: "png"}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("alpha") && flagAlpha > 0 {
		cfg.Alpha = flagAlpha
	}
	if f.Changed("max-axes") && flagMaxAxes > 0 {
		cfg.MaxAxes = flagMaxAxes
	}
	if f.Changed("output-dir") && flagOutDir != "" {
		cfg.OutputDir = flagOutDir
	}
}
