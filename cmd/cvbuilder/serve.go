package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmallet/cv-builder/internal/server"
	"github.com/jmallet/cv-builder/internal/storage"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local editor API server",
	Long:  `Start an HTTP server that exposes the document, pagination controls, template previews and exports to a local editor UI.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	srv, err := server.New(server.Config{
		Addr:          cfg.Addr,
		Store:         storage.NewStore(cfg.Document),
		AutosaveDelay: cfg.AutosaveDelay(),
		PreviewDelay:  cfg.PreviewDelay(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
