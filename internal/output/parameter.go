// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

const (
	outputFlagName               = "output"
	supportedFormatterAnnotation = "github.com/azure/aicatalog/internal/output/supportedOutputFormatters"
)

// AddOutputParam registers the --output/-o flag on cmd and records the
// formats the command supports as a flag annotation, so GetFormatter can
// reject the rest.
func AddOutputParam(cmd *cobra.Command, supportedFormats []Format, defaultFormat Format) *cobra.Command {
	formatNames := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		formatNames[i] = string(f)
	}

	description := fmt.Sprintf("Output format (supported formats are %s)", strings.Join(formatNames, ", "))
	cmd.Flags().StringP(outputFlagName, "o", string(defaultFormat), description)

	// The flag was added on the line above, so annotating it cannot fail.
	_ = cmd.Flags().SetAnnotation(outputFlagName, supportedFormatterAnnotation, formatNames)

	return cmd
}

// GetFormatter builds the formatter the --output flag selects, honoring the
// supported-formats annotation when the command declared one.
func GetFormatter(cmd *cobra.Command) (Formatter, error) {
	outputVal, err := cmd.Flags().GetString(outputFlagName)
	if err != nil {
		return nil, err
	}
	desired := strings.ToLower(strings.TrimSpace(outputVal))

	flag := cmd.Flags().Lookup(outputFlagName)
	supported, hasAnnotation := flag.Annotations[supportedFormatterAnnotation]
	if hasAnnotation && !slices.Contains(supported, desired) {
		return nil, fmt.Errorf("unsupported format '%s'", desired)
	}

	return NewFormatter(desired)
}
