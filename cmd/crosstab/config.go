package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/avolokh/crosstab/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set analysis defaults",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			cmd.Println("No config loaded")
			return nil
		}
		cmd.Printf("alpha: %g\n", cfg.Alpha)
		cmd.Printf("rank_tolerance: %g\n", cfg.RankTolerance)
		cmd.Printf("max_axes: %d\n", cfg.MaxAxes)
		cmd.Printf("output_dir: %s\n", cfg.OutputDir)
		cmd.Printf("plot_format: %s\n", cfg.PlotFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "alpha":
			a, err := strconv.ParseFloat(val, 64)
			if err != nil || a <= 0 || a >= 1 {
				return fmt.Errorf("invalid alpha: %s (must lie in (0, 1))", val)
			}
			cfg.Alpha = a
		case "rank_tolerance":
			rt, err := strconv.ParseFloat(val, 64)
			if err != nil || rt < 0 {
				return fmt.Errorf("invalid rank_tolerance: %s", val)
			}
			cfg.RankTolerance = rt
		case "max_axes":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid max_axes: %s", val)
			}
			cfg.MaxAxes = n
		case "output_dir":
			cfg.OutputDir = val
		case "plot_format":
			switch val {
			case "png", "svg", "pdf":
				cfg.PlotFormat = val
			default:
				return fmt.Errorf("invalid plot_format: %s (use png, svg or pdf)", val)
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		cmd.Println("✓ saved")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
