// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/azure/aicatalog/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information.",
		RunE: func(cmd *cobra.Command, args []string) error {
			color.Cyan("Azure AI Model Catalog Reporter")
			color.White("Version: %s", version.Version)
			color.White("Commit: %s", version.Commit)
			color.White("Build Date: %s", version.BuildDate)
			return nil
		},
	}
}
