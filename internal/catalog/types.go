// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package catalog retrieves and summarizes AI model availability from the
// Azure Cognitive Services model catalog. Records are SDK-agnostic and
// decoupled from armcognitiveservices types.
package catalog

import (
	"fmt"
	"strings"
)

// Lifecycle is the maturity stage of a model version.
type Lifecycle string

const (
	LifecycleGenerallyAvailable Lifecycle = "GenerallyAvailable"
	LifecycleStable             Lifecycle = "Stable"
	LifecyclePreview            Lifecycle = "Preview"
	LifecycleDeprecated         Lifecycle = "Deprecated"
)

// lifecycleNames maps normalized user input to canonical lifecycle values.
var lifecycleNames = map[string]Lifecycle{
	"generallyavailable": LifecycleGenerallyAvailable,
	"ga":                 LifecycleGenerallyAvailable,
	"stable":             LifecycleStable,
	"preview":            LifecyclePreview,
	"deprecated":         LifecycleDeprecated,
}

// ParseLifecycle maps user input to a canonical lifecycle value,
// case-insensitively. "ga" is accepted as shorthand for GenerallyAvailable.
func ParseLifecycle(value string) (Lifecycle, error) {
	if lifecycle, ok := lifecycleNames[strings.ToLower(value)]; ok {
		return lifecycle, nil
	}

	return "", fmt.Errorf(
		"unsupported lifecycle status '%s' (expected one of: %s, %s, %s, %s)",
		value,
		LifecycleGenerallyAvailable, LifecycleStable, LifecyclePreview, LifecycleDeprecated,
	)
}

// ModelRecord is one (provider, model name, version) catalog entry for a
// region. After deduplication the triple uniquely identifies a logical
// entry; raw API pages may repeat it with different SKU sets.
type ModelRecord struct {
	// ProviderFormat is the vendor namespace of the model, e.g. "OpenAI".
	ProviderFormat string `json:"providerFormat"`
	// ModelName is the model name, e.g. "gpt-4o".
	ModelName string `json:"modelName"`
	// ModelVersion is the version string, e.g. "2024-08-06".
	ModelVersion string `json:"modelVersion"`
	// LifecycleStatus is the maturity stage of this model version.
	LifecycleStatus Lifecycle `json:"lifecycleStatus"`
	// MaxCapacity is the largest deployable capacity, when the catalog
	// reports one.
	MaxCapacity *int32 `json:"maxCapacity,omitempty"`
	// DeploymentSkus holds the distinct deployment SKU names offered for
	// this entry, e.g. "Standard", "GlobalStandard", in first-seen order.
	DeploymentSkus []string `json:"deploymentSkus"`
	// Capabilities flags what the model supports, e.g. "chatCompletion".
	Capabilities map[string]bool `json:"capabilities,omitempty"`
	// DeprecationDate is the inference deprecation date, when announced.
	DeprecationDate string `json:"deprecationDate,omitempty"`
}

// ProviderSummary is the aggregate view of one provider's models within one
// region. Computed fresh per scan and never mutated afterwards.
type ProviderSummary struct {
	// Provider is the vendor namespace, e.g. "OpenAI".
	Provider string `json:"provider"`
	// Region is the location code the summary was computed for.
	Region string `json:"region"`
	// TotalModels counts every record, each version separately.
	TotalModels int `json:"totalModels"`
	// UniqueModelNames counts distinct model names.
	UniqueModelNames int `json:"uniqueModelNames"`
	// GACount, StableCount and PreviewCount break records down by
	// lifecycle. Deprecated records contribute only to TotalModels.
	GACount      int `json:"gaCount"`
	StableCount  int `json:"stableCount"`
	PreviewCount int `json:"previewCount"`
	// DeploymentTypes is the sorted union of every record's SKU names.
	DeploymentTypes []string `json:"deploymentTypes"`
	// TopModel is the model name with the widest SKU coverage in the
	// group; the first-seen record wins ties.
	TopModel string `json:"topModel"`

	// Models holds the records this summary was computed from, for
	// drill-down display. Not serialized; the region result already
	// carries the full record list.
	Models []ModelRecord `json:"-"`
}
