// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package export writes scan results to CSV files for spreadsheet use.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/azure/aicatalog/internal/catalog"
)

var modelHeader = []string{
	"region",
	"provider",
	"model",
	"version",
	"lifecycle",
	"deploymentSkus",
	"maxCapacity",
	"deprecationDate",
}

var summaryHeader = []string{
	"region",
	"provider",
	"totalModels",
	"uniqueModelNames",
	"gaCount",
	"stableCount",
	"previewCount",
	"deploymentTypes",
	"topModel",
}

// WriteModels writes one row per model record across all scanned regions.
// Failed regions contribute no rows.
func WriteModels(w io.Writer, regions []catalog.RegionResult) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(modelHeader); err != nil {
		return err
	}

	for _, region := range regions {
		for _, record := range region.Models {
			maxCapacity := ""
			if record.MaxCapacity != nil {
				maxCapacity = strconv.FormatInt(int64(*record.MaxCapacity), 10)
			}

			row := []string{
				region.Region,
				record.ProviderFormat,
				record.ModelName,
				record.ModelVersion,
				string(record.LifecycleStatus),
				strings.Join(record.DeploymentSkus, ";"),
				maxCapacity,
				record.DeprecationDate,
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteSummaries writes one row per provider summary across all scanned
// regions.
func WriteSummaries(w io.Writer, regions []catalog.RegionResult) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(summaryHeader); err != nil {
		return err
	}

	for _, region := range regions {
		for _, summary := range region.Providers {
			row := []string{
				summary.Region,
				summary.Provider,
				strconv.Itoa(summary.TotalModels),
				strconv.Itoa(summary.UniqueModelNames),
				strconv.Itoa(summary.GACount),
				strconv.Itoa(summary.StableCount),
				strconv.Itoa(summary.PreviewCount),
				strings.Join(summary.DeploymentTypes, ";"),
				summary.TopModel,
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveModels writes the model rows to a new file at path, overwriting any
// existing file.
func SaveModels(path string, regions []catalog.RegionResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer file.Close()

	if err := WriteModels(file, regions); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	return file.Close()
}
