package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmallet/cv-builder/internal/document"
	"github.com/jmallet/cv-builder/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Repair the stored document in place",
	Long:  `Load the stored document, add any sections introduced since it was written, rebuild the section order, assign missing item ids and write the result back.`,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	store := storage.NewStore(cfg.Document)
	doc, err := store.Load()
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("no document at %s", cfg.Document)
	}

	// Load already migrates; run the pruning step too so stale break
	// flags for deleted items do not linger.
	doc = document.PruneItemPageBreaks(document.EnsureItemIDs(document.Migrate(doc)))
	if err := store.Save(doc); err != nil {
		return err
	}

	fmt.Printf("migrated %s (%d sections)\n", cfg.Document, len(doc.Sections))
	return nil
}
