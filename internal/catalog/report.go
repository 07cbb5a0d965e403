// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package catalog

import (
	"slices"
	"time"
)

// ScanReport is the complete result of one multi-region scan.
type ScanReport struct {
	SubscriptionID string         `json:"subscriptionId"`
	Cloud          string         `json:"cloud"`
	GeneratedAt    time.Time      `json:"generatedAt"`
	Regions        []RegionResult `json:"regions"`
	Matrix         Matrix         `json:"matrix"`
}

// RegionResult holds one region's outcome. Error is set when the region's
// fetch failed; Models and Providers stay empty in that case.
type RegionResult struct {
	Region    string            `json:"region"`
	Error     string            `json:"error,omitempty"`
	Models    []ModelRecord     `json:"models"`
	Providers []ProviderSummary `json:"providers"`
}

// Failed reports whether this region's fetch failed.
func (r RegionResult) Failed() bool {
	return r.Error != ""
}

// Matrix is the providers-by-regions pivot of a scan report. Columns follow
// the scanned region order, rows are sorted by provider.
type Matrix struct {
	Regions []string    `json:"regions"`
	Rows    []MatrixRow `json:"rows"`
}

// MatrixRow carries one provider's model count per region, aligned with
// Matrix.Regions.
type MatrixRow struct {
	Provider string `json:"provider"`
	Counts   []int  `json:"counts"`
}

func buildMatrix(report *ScanReport) Matrix {
	counts := make(map[string]map[string]int)
	regions := make([]string, 0, len(report.Regions))

	for _, region := range report.Regions {
		regions = append(regions, region.Region)
		for _, summary := range region.Providers {
			if counts[summary.Provider] == nil {
				counts[summary.Provider] = make(map[string]int)
			}
			counts[summary.Provider][region.Region] = summary.TotalModels
		}
	}

	providers := make([]string, 0, len(counts))
	for provider := range counts {
		providers = append(providers, provider)
	}
	slices.Sort(providers)

	rows := make([]MatrixRow, 0, len(providers))
	for _, provider := range providers {
		row := MatrixRow{Provider: provider, Counts: make([]int, len(regions))}
		for i, region := range regions {
			row.Counts[i] = counts[provider][region]
		}
		rows = append(rows, row)
	}

	return Matrix{Regions: regions, Rows: rows}
}
