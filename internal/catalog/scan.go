// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

// ModelLister is the catalog surface the scanner consumes.
type ModelLister interface {
	Models(ctx context.Context, subscriptionID string, region string, filter Filter) ([]ModelRecord, error)
}

// Scanner walks regions one at a time and assembles a scan report. A failed
// region is recorded in the report and does not stop the remaining regions;
// the scan as a whole fails only when every region failed.
type Scanner struct {
	catalog ModelLister
	clock   clock.Clock
}

// NewScanner creates a scanner over the given catalog. The clock stamps the
// report and exists so tests can pin it.
func NewScanner(catalog ModelLister, clk clock.Clock) *Scanner {
	return &Scanner{
		catalog: catalog,
		clock:   clk,
	}
}

// ScanOptions selects what to scan.
type ScanOptions struct {
	SubscriptionID string
	Cloud          string
	Regions        []string
	Filter         Filter

	// Progress, when set, is called with each region name just before its
	// fetch starts. Display only.
	Progress func(region string)
}

// Scan fetches and aggregates every requested region in order.
func (s *Scanner) Scan(ctx context.Context, options ScanOptions) (*ScanReport, error) {
	report := &ScanReport{
		SubscriptionID: options.SubscriptionID,
		Cloud:          options.Cloud,
		GeneratedAt:    s.clock.Now().UTC(),
		Regions:        make([]RegionResult, 0, len(options.Regions)),
	}

	var scanErrs []error
	for _, region := range options.Regions {
		if options.Progress != nil {
			options.Progress(region)
		}

		models, err := s.catalog.Models(ctx, options.SubscriptionID, region, options.Filter)
		if err != nil {
			log.Printf("scanning %s: %v", region, err)
			scanErrs = append(scanErrs, fmt.Errorf("scanning %s: %w", region, err))
			report.Regions = append(report.Regions, RegionResult{Region: region, Error: err.Error()})
			continue
		}

		report.Regions = append(report.Regions, RegionResult{
			Region:    region,
			Models:    models,
			Providers: Aggregate(models, region),
		})
	}

	if len(scanErrs) > 0 && len(scanErrs) == len(options.Regions) {
		return nil, multierr.Combine(scanErrs...)
	}

	report.Matrix = buildMatrix(report)
	return report, nil
}
