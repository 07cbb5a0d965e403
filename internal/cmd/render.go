// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/azure/aicatalog/internal/catalog"
	"github.com/azure/aicatalog/internal/output"
)

// summaryColumns define the per-region provider summary table.
var summaryColumns = []output.Column{
	{Heading: "Provider", ValueTemplate: "{{.Provider}}"},
	{Heading: "Models", ValueTemplate: "{{.TotalModels}}"},
	{Heading: "Names", ValueTemplate: "{{.UniqueModelNames}}"},
	{Heading: "GA", ValueTemplate: "{{.GACount}}"},
	{Heading: "Stable", ValueTemplate: "{{.StableCount}}"},
	{Heading: "Preview", ValueTemplate: "{{.PreviewCount}}"},
	{Heading: "Deployment Types", ValueTemplate: "{{join .DeploymentTypes \", \"}}"},
	{Heading: "Top Model", ValueTemplate: "{{.TopModel}}"},
}

// modelColumns define the model detail table.
var modelColumns = []output.Column{
	{Heading: "Provider", ValueTemplate: "{{.ProviderFormat}}"},
	{Heading: "Model", ValueTemplate: "{{.ModelName}}"},
	{Heading: "Version", ValueTemplate: "{{.ModelVersion}}"},
	{Heading: "Lifecycle", ValueTemplate: "{{.LifecycleStatus}}"},
	{Heading: "Deployment SKUs", ValueTemplate: "{{join .DeploymentSkus \", \"}}"},
	{Heading: "Deprecation", ValueTemplate: "{{.DeprecationDate}}"},
}

// renderScanReport writes every region's summary table followed by the
// cross-region matrix and the failed-region list.
func renderScanReport(writer io.Writer, report *catalog.ScanReport) error {
	for _, region := range report.Regions {
		fmt.Fprintf(writer, "\n%s\n", output.WithBold("Region: %s", region.Region))

		if region.Failed() {
			fmt.Fprintf(writer, "  %s\n", output.WithErrorFormat("fetch failed: %s", region.Error))
			continue
		}
		if len(region.Providers) == 0 {
			fmt.Fprintf(writer, "  %s\n", output.WithGrayFormat("no models matched the filter"))
			continue
		}

		if err := renderSummaries(writer, region.Providers); err != nil {
			return err
		}
	}

	if len(report.Matrix.Regions) > 1 {
		fmt.Fprintf(writer, "\n%s\n", output.WithBold("Cross-region availability (models per provider)"))
		if err := renderMatrix(writer, report); err != nil {
			return err
		}
	}

	return nil
}

func renderSummaries(writer io.Writer, summaries []catalog.ProviderSummary) error {
	formatter := &output.TableFormatter{}
	return formatter.Format(summaries, writer, output.TableFormatterOptions{
		Columns: summaryColumns,
	})
}

func renderModels(writer io.Writer, records []catalog.ModelRecord) error {
	formatter := &output.TableFormatter{}
	return formatter.Format(records, writer, output.TableFormatterOptions{
		Columns: modelColumns,
	})
}

// renderMatrix writes the providers-by-regions pivot. Cells hold the model
// count, blank for zero, ERR for a region whose fetch failed.
func renderMatrix(writer io.Writer, report *catalog.ScanReport) error {
	failed := make(map[string]bool, len(report.Regions))
	for _, region := range report.Regions {
		failed[region.Region] = region.Failed()
	}

	tabs := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)

	headings := append([]string{"Provider"}, report.Matrix.Regions...)
	if _, err := fmt.Fprintln(tabs, strings.Join(headings, "\t")); err != nil {
		return err
	}

	for _, row := range report.Matrix.Rows {
		cells := make([]string, 0, len(row.Counts)+1)
		cells = append(cells, row.Provider)
		for i, count := range row.Counts {
			switch {
			case failed[report.Matrix.Regions[i]]:
				cells = append(cells, "ERR")
			case count == 0:
				cells = append(cells, "")
			default:
				cells = append(cells, strconv.Itoa(count))
			}
		}
		if _, err := fmt.Fprintln(tabs, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tabs.Flush()
}
