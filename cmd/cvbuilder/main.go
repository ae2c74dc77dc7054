// Package main provides the entry point for the CV builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jmallet/cv-builder/internal/config"
	"github.com/jmallet/cv-builder/internal/document"
	"github.com/jmallet/cv-builder/internal/storage"
	"github.com/jmallet/cv-builder/internal/types"
)

var (
	flagConfig   string
	flagDocument string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "cvbuilder",
	Short: "Local CV builder with manual pagination control",
	Long:  "cvbuilder edits a CV document stored as local JSON, renders it through swappable templates and exports print-ready HTML and PDF with explicit page-break control.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDocument, "document", "", "Path to the CV document JSON file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings merges the config file (if given), CLI flags and
// built-in defaults, flags winning over file values.
func loadSettings() (config.Config, error) {
	defaults := config.Config{
		Template: document.DefaultTemplate,
		Paper:    "a4",
		Addr:     "127.0.0.1:8188",
	}

	cfg := config.Config{
		Document: flagDocument,
		Verbose:  flagVerbose,
	}
	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(defaults)

	if cfg.Document == "" {
		path, err := storage.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		cfg.Document = path
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadDocument reads the stored document, falling back to a fresh
// default when none exists yet.
func loadDocument(cfg config.Config) (*types.CVDocument, *storage.Store, error) {
	store := storage.NewStore(cfg.Document)
	doc, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		doc = document.New()
	}
	return doc, store, nil
}
