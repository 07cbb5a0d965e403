// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package catalog

import "slices"

// Aggregate groups records by provider and computes one summary per
// provider present, sorted by provider name. Pure: no I/O, no failure
// modes; an empty record set yields an empty summary set.
func Aggregate(records []ModelRecord, region string) []ProviderSummary {
	groups := make(map[string][]ModelRecord)
	for _, record := range records {
		groups[record.ProviderFormat] = append(groups[record.ProviderFormat], record)
	}

	providers := make([]string, 0, len(groups))
	for provider := range groups {
		providers = append(providers, provider)
	}
	slices.Sort(providers)

	summaries := make([]ProviderSummary, 0, len(providers))
	for _, provider := range providers {
		summaries = append(summaries, summarize(provider, region, groups[provider]))
	}
	return summaries
}

func summarize(provider string, region string, records []ModelRecord) ProviderSummary {
	names := make(map[string]struct{})
	skuSet := make(map[string]struct{})

	var gaCount, stableCount, previewCount int
	topModel := ""
	topSkus := -1

	for _, record := range records {
		names[record.ModelName] = struct{}{}
		for _, sku := range record.DeploymentSkus {
			skuSet[sku] = struct{}{}
		}

		switch record.LifecycleStatus {
		case LifecycleGenerallyAvailable:
			gaCount++
		case LifecycleStable:
			stableCount++
		case LifecyclePreview:
			previewCount++
		}

		// Strictly greater keeps the first-seen record on ties.
		if len(record.DeploymentSkus) > topSkus {
			topSkus = len(record.DeploymentSkus)
			topModel = record.ModelName
		}
	}

	deploymentTypes := make([]string, 0, len(skuSet))
	for sku := range skuSet {
		deploymentTypes = append(deploymentTypes, sku)
	}
	slices.Sort(deploymentTypes)

	return ProviderSummary{
		Provider:         provider,
		Region:           region,
		TotalModels:      len(records),
		UniqueModelNames: len(names),
		GACount:          gaCount,
		StableCount:      stableCount,
		PreviewCount:     previewCount,
		DeploymentTypes:  deploymentTypes,
		TopModel:         topModel,
		Models:           records,
	}
}
