package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/schemas"
)

var validateKind string

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an interchange payload against its schema",
	Long:  `Validate a JSON payload file (an import batch or a full workspace state) against the interchange schema.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateKind, "kind", "state", "Payload kind: state or batch")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	switch validateKind {
	case "state":
		err = schemas.ValidateWorkspaceState(payload)
	case "batch":
		err = schemas.ValidateImportBatch(payload)
	default:
		return fmt.Errorf("unknown payload kind %q (want state or batch)", validateKind)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s is a valid %s payload\n", args[0], validateKind)
	return nil
}
