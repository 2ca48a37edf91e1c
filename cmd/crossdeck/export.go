package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/crossdeck/crossdeck/pkg/crossdeck"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/deck"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
)

var (
	exportOutput     string
	exportSelections string
	exportChart      string
	exportPretty     bool
)

var exportCmd = &cobra.Command{
	Use:   "export [workbook.xlsx]",
	Short: "Render a new deck from a crosstab workbook",
	Long: `Export parses the workbook and renders a fresh deck: a title
slide, then one slide per detected table. Per-table choices (chart
kind, title, base text, question text) come from a YAML selections
file keyed by table title; tables without a selection use defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "report.deck.json", "Output deck path")
	exportCmd.Flags().StringVar(&exportSelections, "selections", "", "YAML selections file keyed by table title")
	exportCmd.Flags().StringVar(&exportChart, "default-chart", "", "Default chart kind for tables without a selection")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", true, "Pretty-print the deck JSON")
}

func runExport(cmd *cobra.Command, args []string) error {
	tables, err := crossdeck.Extract(args[0], crossdeck.DefaultOptions())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	sels := model.SelectionSet{}
	if exportSelections != "" {
		byTitle, err := loadSelections(exportSelections)
		if err != nil {
			return err
		}
		sels = byTitle.ReKeyByID(tables)
	}

	defaultChart := exportChart
	if defaultChart == "" {
		defaultChart = viper.GetString("default_chart")
	}
	kind, err := model.ParseChartKind(defaultChart)
	if err != nil {
		return err
	}
	// Seed every table so the default kind applies uniformly; explicit
	// selections keep their own kind.
	for _, t := range tables {
		sel := sels[t.ID]
		if sel.ChartKind == "" {
			sel.ChartKind = kind
		}
		sels[t.ID] = sel
	}

	doc := deck.Render(tables, sels)
	if err := (deck.JSONStore{Pretty: exportPretty}).Save(doc, exportOutput); err != nil {
		return fmt.Errorf("failed to write deck: %w", err)
	}
	fmt.Printf("rendered %d tables to %s\n", len(tables), exportOutput)
	return nil
}

// loadSelections reads a YAML selections file keyed by table title and
// normalizes the keys.
func loadSelections(path string) (model.SelectionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selections: %w", err)
	}
	var raw map[string]model.Selection
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse selections: %w", err)
	}
	return model.SelectionSet(raw).Normalized(), nil
}
