package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avolokh/crosstab/ca"
	"github.com/avolokh/crosstab/contab"
	"github.com/avolokh/crosstab/render"
	"github.com/avolokh/crosstab/report"
	"github.com/avolokh/crosstab/survey"
)

var (
	flagRowVar string
	flagColVar string
	flagRecode string
	flagXLSX   bool
	flagPlots  bool
	flagTitle  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <data.csv>",
	Short: "Cross-tabulate two variables and run the full analysis",
	Long: `Reads a CSV survey export, extracts the --row-var and --col-var columns,
optionally recodes them through a YAML rules file, and produces:

  report.txt         — always, in the output directory
  report.xlsx        — with --xlsx
  row_totals.<fmt>   — with --plots, marginal totals of the row variable
  col_totals.<fmt>   — with --plots, marginal totals of the column variable
  counts.<fmt>       — with --plots, grouped bar chart of observed counts
  biplot.<fmt>       — with --plots, correspondence map of the first two axes

Without --recode every observed label becomes its own category, in order
of first appearance.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&flagRowVar, "row-var", "", "CSV column for the row variable (required)")
	analyzeCmd.Flags().StringVar(&flagColVar, "col-var", "", "CSV column for the column variable (required)")
	analyzeCmd.Flags().StringVar(&flagRecode, "recode", "", "YAML recode rules file")
	analyzeCmd.Flags().BoolVar(&flagXLSX, "xlsx", false, "also write an Excel workbook")
	analyzeCmd.Flags().BoolVar(&flagPlots, "plots", false, "also render the bar chart and biplot")
	analyzeCmd.Flags().StringVar(&flagTitle, "title", "", "figure title (defaults to \"<row-var> x <col-var>\")")
	_ = analyzeCmd.MarkFlagRequired("row-var")
	_ = analyzeCmd.MarkFlagRequired("col-var")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	tab, err := buildTable(args[0])
	if err != nil {
		return err
	}

	var opts []ca.Option
	if cfg.RankTolerance > 0 {
		opts = append(opts, ca.WithRankTolerance(cfg.RankTolerance))
	}
	if cfg.MaxAxes > 0 {
		opts = append(opts, ca.WithMaxAxes(cfg.MaxAxes))
	}

	rep, err := report.Build(tab, cfg.Alpha, opts...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}

	textPath := filepath.Join(cfg.OutputDir, "report.txt")
	tf, err := os.Create(textPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := rep.WriteText(tf); err != nil {
		tf.Close()
		return err
	}
	if err := tf.Close(); err != nil {
		return err
	}
	cmd.Printf("✓ wrote %s\n", textPath)

	if flagXLSX {
		xlsxPath := filepath.Join(cfg.OutputDir, "report.xlsx")
		if err := rep.SaveXLSX(xlsxPath); err != nil {
			return err
		}
		cmd.Printf("✓ wrote %s\n", xlsxPath)
	}

	if flagPlots {
		title := flagTitle
		if title == "" {
			title = fmt.Sprintf("%s x %s", flagRowVar, flagColVar)
		}

		rowsPath := filepath.Join(cfg.OutputDir, "row_totals."+cfg.PlotFormat)
		if err := render.RowTotalsBars(tab, flagRowVar, rowsPath); err != nil {
			return err
		}
		cmd.Printf("✓ wrote %s\n", rowsPath)

		colsPath := filepath.Join(cfg.OutputDir, "col_totals."+cfg.PlotFormat)
		if err := render.ColTotalsBars(tab, flagColVar, colsPath); err != nil {
			return err
		}
		cmd.Printf("✓ wrote %s\n", colsPath)

		barsPath := filepath.Join(cfg.OutputDir, "counts."+cfg.PlotFormat)
		if err := render.MarginalBars(tab, title, barsPath); err != nil {
			return err
		}
		cmd.Printf("✓ wrote %s\n", barsPath)

		biplotPath := filepath.Join(cfg.OutputDir, "biplot."+cfg.PlotFormat)
		if err := render.Biplot(rep.CA, title, biplotPath); err != nil {
			return err
		}
		cmd.Printf("✓ wrote %s\n", biplotPath)
	}

	verdict := "not rejected"
	if rep.Significant() {
		verdict = "REJECTED"
	}
	cmd.Printf("chi2 = %.4f, df = %d, p = %.6g — independence %s at alpha = %g\n",
		rep.Chi.Statistic, rep.Chi.DF, rep.Chi.PValue, verdict, rep.Alpha)
	cmd.Printf("%d axes retained, total inertia = %.6f\n", rep.CA.Dim(), rep.CA.TotalInertia)

	return nil
}

// buildTable runs the ingestion pipeline: CSV → observations → (optional)
// recode → contingency table.
func buildTable(dataPath string) (*contab.Table, error) {
	f, err := os.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("open data: %w", err)
	}
	defer f.Close()

	obs, err := survey.LoadCSV(f, flagRowVar, flagColVar)
	if err != nil {
		return nil, err
	}

	var rowSet, colSet *survey.CategorySet
	if flagRecode != "" {
		doc, err := os.ReadFile(flagRecode)
		if err != nil {
			return nil, fmt.Errorf("read recode rules: %w", err)
		}
		rules, err := survey.ParseRules(doc)
		if err != nil {
			return nil, err
		}
		if obs, err = rules.Apply(obs); err != nil {
			return nil, err
		}
		if rowSet, colSet, err = rules.CategorySets(); err != nil {
			return nil, err
		}
	} else {
		if rowSet, colSet, err = survey.InferCategorySets(obs, flagRowVar, flagColVar); err != nil {
			return nil, err
		}
	}

	return survey.Crosstab(obs, rowSet, colSet)
}
