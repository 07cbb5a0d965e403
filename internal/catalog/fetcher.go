// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cognitiveservices/armcognitiveservices"

	"github.com/azure/aicatalog/internal/retry"
)

// Service fetches model availability from the Cognitive Services catalog.
type Service struct {
	credential azcore.TokenCredential
	armOptions *arm.ClientOptions
	maxRetries uint64
}

// NewService creates a catalog service. armOptions may carry a custom
// transport and must leave retries to this service; maxRetries bounds the
// additional attempts per page request.
func NewService(credential azcore.TokenCredential, armOptions *arm.ClientOptions, maxRetries uint64) *Service {
	return &Service{
		credential: credential,
		armOptions: armOptions,
		maxRetries: maxRetries,
	}
}

// Models returns the deduplicated, filtered model records for one region.
// Each page request runs under the retry policy; a page that still fails
// after the permitted retries fails the whole region and the error comes
// back exactly as the transport produced it, with any collected pages
// discarded.
func (s *Service) Models(ctx context.Context, subscriptionID string, region string, filter Filter) ([]ModelRecord, error) {
	client, err := armcognitiveservices.NewModelsClient(subscriptionID, s.credential, s.armOptions)
	if err != nil {
		return nil, fmt.Errorf("creating models client: %w", err)
	}

	raw := []*armcognitiveservices.Model{}
	pager := client.NewListPager(region, nil)

	pageNumber := 0
	for pager.More() {
		pageNumber++
		label := fmt.Sprintf("model catalog %s page %d", region, pageNumber)

		page, err := retry.Execute(ctx, label, s.maxRetries,
			func(ctx context.Context) (armcognitiveservices.ModelsClientListResponse, error) {
				return pager.NextPage(ctx)
			})
		if err != nil {
			return nil, err
		}

		raw = append(raw, page.Value...)
	}

	return filter.Apply(dedupe(raw)), nil
}

// dedupe collapses raw entries sharing (format, name, version) into one
// record each, keeping the entry with the most SKUs. Earlier entries win
// ties and keep their position.
func dedupe(models []*armcognitiveservices.Model) []ModelRecord {
	type entryKey struct {
		format  string
		name    string
		version string
	}

	records := make([]ModelRecord, 0, len(models))
	index := make(map[entryKey]int, len(models))

	for _, model := range models {
		record, ok := newModelRecord(model)
		if !ok {
			continue
		}

		key := entryKey{record.ProviderFormat, record.ModelName, record.ModelVersion}
		if at, seen := index[key]; seen {
			if len(record.DeploymentSkus) > len(records[at].DeploymentSkus) {
				records[at] = record
			}
			continue
		}

		index[key] = len(records)
		records = append(records, record)
	}

	return records
}

// newModelRecord converts a raw catalog entry. Entries without a format or
// name are dropped so downstream stages can assume well-formed records.
func newModelRecord(model *armcognitiveservices.Model) (ModelRecord, bool) {
	if model == nil || model.Model == nil {
		return ModelRecord{}, false
	}
	inner := model.Model

	record := ModelRecord{
		ProviderFormat: value(inner.Format),
		ModelName:      value(inner.Name),
		ModelVersion:   value(inner.Version),
	}
	if record.ProviderFormat == "" || record.ModelName == "" {
		return ModelRecord{}, false
	}

	if inner.LifecycleStatus != nil {
		record.LifecycleStatus = Lifecycle(*inner.LifecycleStatus)
	}
	if inner.MaxCapacity != nil {
		capacity := *inner.MaxCapacity
		record.MaxCapacity = &capacity
	}
	if inner.Deprecation != nil {
		record.DeprecationDate = value(inner.Deprecation.Inference)
	}

	seen := make(map[string]struct{}, len(inner.SKUs))
	for _, sku := range inner.SKUs {
		if sku == nil || sku.Name == nil {
			continue
		}
		if _, dup := seen[*sku.Name]; dup {
			continue
		}
		seen[*sku.Name] = struct{}{}
		record.DeploymentSkus = append(record.DeploymentSkus, *sku.Name)
	}

	if len(inner.Capabilities) > 0 {
		record.Capabilities = make(map[string]bool, len(inner.Capabilities))
		for name, flag := range inner.Capabilities {
			enabled, _ := strconv.ParseBool(value(flag))
			record.Capabilities[name] = enabled
		}
	}

	return record, true
}

func value[T any](ptr *T) T {
	var zero T
	if ptr == nil {
		return zero
	}
	return *ptr
}
