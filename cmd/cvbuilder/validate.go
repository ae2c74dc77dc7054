package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmallet/cv-builder/internal/document"
	"github.com/jmallet/cv-builder/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a CV document file",
	Long:  `Check a document JSON file against the schema and report every field error. Without an argument the configured document is checked.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		path = cfg.Document
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if _, err := document.ImportJSON(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Printf("%s: invalid\n", path)
			for _, fieldErr := range validationErr.Errors {
				fmt.Printf("  %s: %s\n", fieldErr.Field, fieldErr.Message)
			}
			return fmt.Errorf("%d validation error(s)", len(validationErr.Errors))
		}
		return err
	}

	fmt.Printf("%s: valid\n", path)
	return nil
}
