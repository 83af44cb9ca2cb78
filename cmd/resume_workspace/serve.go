package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/config"
	"github.com/jonathan/resume-workspace/internal/server"
	"github.com/jonathan/resume-workspace/internal/store"
	"github.com/jonathan/resume-workspace/internal/types"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, importing, and exporting resume documents.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.MergeEnv()
	if cfg.Port == 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st := store.New()
	if cfg.StateFile != "" {
		if err := loadStateFile(st, cfg.StateFile); err != nil {
			return err
		}
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		AccessHash:  cfg.AccessHash,
	}, st)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadStateFile seeds the store from a workspace-state JSON file.
func loadStateFile(st *store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read state file %s: %w", path, err)
	}
	var state types.WorkspaceState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", path, err)
	}
	if err := st.ReplaceAll(state); err != nil {
		return fmt.Errorf("state file %s: %w", path, err)
	}
	return nil
}
