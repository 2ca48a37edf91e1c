package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crossdeck/crossdeck/pkg/crossdeck"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/output"
)

var (
	extractOutput string
	extractPretty bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [workbook.xlsx]",
	Short: "Extract crosstab tables from a workbook and print JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPretty, "pretty", false, "Pretty-print JSON output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	tables, err := crossdeck.Extract(args[0], crossdeck.DefaultOptions())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(tables, extractPretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
