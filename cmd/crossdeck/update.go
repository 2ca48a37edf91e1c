package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crossdeck/crossdeck/pkg/crossdeck"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/deck"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/merge"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/model"
)

var (
	updateOutput     string
	updateSelections string
	updatePretty     bool
)

var updateCmd = &cobra.Command{
	Use:   "update [deck.json] [workbook.xlsx]",
	Short: "Refresh an existing deck from a fresh crosstab workbook",
	Long: `Update re-reads the deck's shape annotations, matches each
tagged shape to a freshly extracted table by title, and refreshes
chart data, table cells, and base counts. Hand-edited text is
preserved unless the selections file overrides it.

The input deck is never modified; the refreshed deck is written to a
new file.`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateOutput, "output", "o", "", "Output deck path (default: <deck>.updated.deck.json)")
	updateCmd.Flags().StringVar(&updateSelections, "selections", "", "YAML selections file keyed by table title")
	updateCmd.Flags().BoolVar(&updatePretty, "pretty", true, "Pretty-print the deck JSON")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	deckPath, workbookPath := args[0], args[1]

	out := updateOutput
	if out == "" {
		out = strings.TrimSuffix(deckPath, ".deck.json")
		out = strings.TrimSuffix(out, ".json")
		out += ".updated.deck.json"
	}
	if out == deckPath {
		return fmt.Errorf("refusing to overwrite the input deck %s", deckPath)
	}

	store := deck.JSONStore{Pretty: updatePretty}
	doc, err := store.Load(deckPath)
	if err != nil {
		return err
	}

	tables, err := crossdeck.Extract(workbookPath, crossdeck.DefaultOptions())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	sels := model.SelectionSet{}
	if updateSelections != "" {
		if sels, err = loadSelections(updateSelections); err != nil {
			return err
		}
	}

	sum := merge.New(nil).Merge(doc, tables, sels)
	if err := store.Save(doc, out); err != nil {
		return fmt.Errorf("failed to write deck: %w", err)
	}
	fmt.Printf("%s -> %s (%s)\n", deckPath, out, sum)
	return nil
}
