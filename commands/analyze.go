package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"factoryflow/internal/analyzer"
	"factoryflow/internal/data/loader"
	"factoryflow/internal/data/normalizer"
	"factoryflow/internal/presentation/formatter"
)

var outputFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis pass and print the findings report",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	snap, err := normalizer.Load(loader.NewCSVLoader(cfg.DataDir))
	if err != nil {
		return err
	}
	result := analyzer.Analyze(snap)

	var f formatter.Formatter
	switch outputFormat {
	case "table":
		f = formatter.NewTableFormatter(os.Stdout)
	case "json":
		f = formatter.NewJSONFormatter(os.Stdout)
	case "csv":
		f = formatter.NewCSVFormatter(os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
	return f.Format(result)
}
