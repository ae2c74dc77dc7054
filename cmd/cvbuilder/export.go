package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmallet/cv-builder/internal/config"
	"github.com/jmallet/cv-builder/internal/export"
	"github.com/jmallet/cv-builder/internal/templates"
	"github.com/jmallet/cv-builder/internal/types"
)

var (
	exportOutput   string
	exportFormat   string
	exportTemplate string
	exportAll      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the document to HTML or PDF",
	Long:  `Render the stored document and write a print-ready HTML page or a PDF produced by a headless browser. With --all, every template is printed concurrently.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (or directory with --all)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "pdf", "Output format: pdf or html")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Template id (defaults to the document's template)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export one PDF per registered template")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if exportOutput != "" {
		cfg.Output = exportOutput
	}
	doc, _, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	if exportAll {
		return exportAllTemplates(cmd, cfg, doc)
	}

	tpl := templates.Active(doc)
	if exportTemplate != "" {
		var ok bool
		tpl, ok = templates.ByID(exportTemplate)
		if !ok {
			return fmt.Errorf("unknown template: %s", exportTemplate)
		}
	}
	rendered := tpl.Render(doc)
	rendered.Paper = cfg.Paper

	switch strings.ToLower(exportFormat) {
	case "html":
		page, err := export.HTML(rendered)
		if err != nil {
			return err
		}
		return writeOutput(cfg.Output, "cv.html", []byte(page))
	case "pdf":
		pdf, err := export.PDF(cmd.Context(), rendered)
		if err != nil {
			return err
		}
		return writeOutput(cfg.Output, "cv.pdf", pdf)
	default:
		return fmt.Errorf("unknown format: %s (expected pdf or html)", exportFormat)
	}
}

func exportAllTemplates(cmd *cobra.Command, cfg config.Config, doc *types.CVDocument) error {
	dir := cfg.Output
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	results, err := export.AllTemplates(cmd.Context(), doc, cfg.Paper)
	if err != nil {
		return err
	}
	for _, res := range results {
		path := filepath.Join(dir, "cv-"+res.Template+".pdf")
		if err := os.WriteFile(path, res.PDF, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(res.PDF))
	}
	return nil
}

func writeOutput(path, fallback string, data []byte) error {
	if path == "" {
		path = fallback
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
	return nil
}
