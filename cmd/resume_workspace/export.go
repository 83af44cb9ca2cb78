package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-workspace/internal/export"
	"github.com/jonathan/resume-workspace/internal/types"
)

var (
	exportState  string
	exportOutDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a workspace state to markdown files",
	Long:  `Read a workspace-state JSON file and write one markdown file per document to the output directory.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportState, "state", "", "Path to workspace-state JSON file (required)")
	exportCmd.Flags().StringVar(&exportOutDir, "out", "out", "Output directory for markdown files")
	_ = exportCmd.MarkFlagRequired("state")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(exportState)
	if err != nil {
		return fmt.Errorf("failed to read state file %s: %w", exportState, err)
	}
	var state types.WorkspaceState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", exportState, err)
	}

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", exportOutDir, err)
	}

	settings := export.DefaultSettings()

	var g errgroup.Group
	for _, doc := range state.Resumes {
		g.Go(func() error {
			md := export.Markdown(doc.Content, settings)
			path := filepath.Join(exportOutDir, markdownFileName(doc.Metadata))
			if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Exported %d document(s) to %s\n", len(state.Resumes), exportOutDir)
	return nil
}

// markdownFileName derives a stable file name from the document title,
// falling back to the id for untitled documents.
func markdownFileName(meta types.ResumeMetadata) string {
	name := strings.TrimSpace(meta.Title)
	if name == "" {
		name = meta.ID
	}
	name = strings.ToLower(name)
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			sb.WriteRune('-')
		}
	}
	out := strings.Trim(sb.String(), "-")
	if out == "" {
		out = meta.ID
	}
	return out + ".md"
}
