// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cmd wires the aicatalog command tree: scan, models, regions,
// config and version.
package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aicatalog <command> [options]",
		Short:         "Reports AI model availability across Azure regions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-prompt", false, "Never prompt; fail when a value has no default")
	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from a dotenv file before resolving settings")

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newModelsCommand())
	rootCmd.AddCommand(newRegionsCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
