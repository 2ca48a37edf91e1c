package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crossdeck/crossdeck/pkg/crossdeck"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/deck"
	"github.com/crossdeck/crossdeck/pkg/crossdeck/merge"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate [deck.json] [workbook.xlsx]",
	Short: "Check a deck's shape bindings against a workbook without changing it",
	Long: `Validate decodes every shape annotation in the deck and checks it
against freshly extracted tables: which shapes are managed, whether
each table binding still resolves, and whether a chart's column still
exists in its table.

The deck is never modified. Run this before update to see which
bindings have gone stale.`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the report as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	deckPath, workbookPath := args[0], args[1]

	doc, err := deck.JSONStore{}.Load(deckPath)
	if err != nil {
		return err
	}

	tables, err := crossdeck.Extract(workbookPath, crossdeck.DefaultOptions())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	rep := merge.Validate(doc, tables)

	if validateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	for _, s := range rep.Shapes {
		if s.Status == merge.StatusUnmanaged {
			continue
		}
		fmt.Printf("slide %d  %-20s %-14s %s", s.Slide, s.Name, s.Type, s.Status)
		if s.TableTitle != "" {
			fmt.Printf("  -> %q", s.TableTitle)
		}
		if !s.AutoUpdate {
			fmt.Print("  (auto_update off)")
		}
		fmt.Println()
	}
	fmt.Printf("shapes: %d total, %d managed, %d valid, %d invalid\n",
		rep.TotalShapes, rep.ManagedShapes, rep.ValidBindings, rep.InvalidBindings)
	for _, issue := range rep.Issues {
		fmt.Println("issue:", issue)
	}
	return nil
}
