// Package config loads and persists the CLI's analysis defaults.
// Precedence: flags (handled by the commands) > env (CROSSTAB_*) >
// config file > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Alpha is the significance level for the chi-squared verdict.
	Alpha float64 `mapstructure:"alpha" yaml:"alpha"`
	// RankTolerance drops axes whose inertia falls below this fraction of
	// the total; 0 keeps the library default.
	RankTolerance float64 `mapstructure:"rank_tolerance" yaml:"rank_tolerance"`
	// MaxAxes caps the retained axes; 0 means all meaningful axes.
	MaxAxes int `mapstructure:"max_axes" yaml:"max_axes"`
	// OutputDir is where reports and figures land by default.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// PlotFormat is the figure file extension: png, svg or pdf.
	PlotFormat string `mapstructure:"plot_format" yaml:"plot_format"`
}

// Load loads configuration from file, env, and defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CROSSTAB")
	v.AutomaticEnv()

	v.SetDefault("alpha", 0.05)
	v.SetDefault("rank_tolerance", 0.0)
	v.SetDefault("max_axes", 0)
	v.SetDefault("output_dir", ".")
	v.SetDefault("plot_format", "png")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".crosstab")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &c, nil
}

// Save writes the given configuration to cfgFile. If cfgFile is empty it
// writes to ~/.crosstab/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".crosstab")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
