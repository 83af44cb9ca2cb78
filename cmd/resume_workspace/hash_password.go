package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-workspace/internal/config"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash an access password for WORKSPACE_ACCESS_HASH",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(_ *cobra.Command, args []string) error {
	cfg, err := config.NewAccessConfig()
	if err != nil {
		return err
	}
	hash, err := cfg.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
