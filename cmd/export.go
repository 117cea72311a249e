package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/spendlens/internal/export"

	"github.com/spf13/cobra"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full analysis as JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	result, err := loadData(cmd.Context())
	if err != nil {
		return err
	}

	doc := export.Build(analyze(result), result.Files, appCfg.Mode())

	var w io.Writer = os.Stdout
	if flagExportOutput != "" {
		f, err := os.Create(flagExportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOutput, err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, doc); err != nil {
		return err
	}
	if flagExportOutput != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s (run %s)\n", flagExportOutput, doc.RunID)
	}
	return nil
}
