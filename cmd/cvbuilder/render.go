package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/observability"
	"github.com/jmallet/cv-builder/internal/templates"
)

var (
	renderTemplate string
	renderJSON     bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the document to a box tree",
	Long:  `Render the stored document through a template and print the resulting box tree, including every page-break decision.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Template id (defaults to the document's template)")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "Print the box tree as JSON")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	doc, _, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	tpl := templates.Active(doc)
	if renderTemplate != "" {
		var ok bool
		tpl, ok = templates.ByID(renderTemplate)
		if !ok {
			return fmt.Errorf("unknown template: %s", renderTemplate)
		}
	}
	rendered := tpl.Render(doc)
	rendered.Paper = cfg.Paper

	if renderJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rendered)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDocumentSummary(doc)
	printer.PrintBreakPlan(layout.Build(doc))
	printer.PrintRenderSummary(rendered)
	return nil
}
