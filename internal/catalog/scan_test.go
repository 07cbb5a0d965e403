// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	byRegion map[string][]ModelRecord
	errs     map[string]error
	calls    []string
}

func (f *fakeLister) Models(
	ctx context.Context,
	subscriptionID string,
	region string,
	filter Filter,
) ([]ModelRecord, error) {
	f.calls = append(f.calls, region)
	if err := f.errs[region]; err != nil {
		return nil, err
	}
	return f.byRegion[region], nil
}

func TestScanner_Scan_AggregatesPerRegion(t *testing.T) {
	lister := &fakeLister{
		byRegion: map[string][]ModelRecord{
			"eastus": {
				{ProviderFormat: "OpenAI", ModelName: "gpt-4o", LifecycleStatus: LifecycleGenerallyAvailable, DeploymentSkus: []string{"Standard"}},
				{ProviderFormat: "Meta", ModelName: "Llama-3.3-70B", LifecycleStatus: LifecycleStable},
			},
			"swedencentral": {
				{ProviderFormat: "OpenAI", ModelName: "gpt-4o-mini", LifecycleStatus: LifecyclePreview, DeploymentSkus: []string{"GlobalStandard"}},
			},
		},
	}

	mockClock := clock.NewMock()
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	mockClock.Set(now)

	scanner := NewScanner(lister, mockClock)
	report, err := scanner.Scan(context.Background(), ScanOptions{
		SubscriptionID: "00000000-0000-0000-0000-000000000000",
		Cloud:          "AzureCloud",
		Regions:        []string{"eastus", "swedencentral"},
	})

	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "00000000-0000-0000-0000-000000000000", report.SubscriptionID)
	assert.Equal(t, "AzureCloud", report.Cloud)
	assert.True(t, report.GeneratedAt.Equal(now))
	assert.Equal(t, []string{"eastus", "swedencentral"}, lister.calls)

	require.Len(t, report.Regions, 2)
	eastus := report.Regions[0]
	assert.Equal(t, "eastus", eastus.Region)
	assert.False(t, eastus.Failed())
	assert.Len(t, eastus.Models, 2)
	require.Len(t, eastus.Providers, 2)
	assert.Equal(t, "Meta", eastus.Providers[0].Provider)
	assert.Equal(t, "OpenAI", eastus.Providers[1].Provider)

	require.Len(t, report.Matrix.Rows, 2)
	assert.Equal(t, []string{"eastus", "swedencentral"}, report.Matrix.Regions)
}

func TestScanner_Scan_RegionFailureIsIsolated(t *testing.T) {
	fetchErr := errors.New("RESPONSE 503: service unavailable")
	lister := &fakeLister{
		byRegion: map[string][]ModelRecord{
			"westus": {
				{ProviderFormat: "OpenAI", ModelName: "gpt-4o", LifecycleStatus: LifecycleGenerallyAvailable},
			},
		},
		errs: map[string]error{"eastus": fetchErr},
	}

	scanner := NewScanner(lister, clock.NewMock())
	report, err := scanner.Scan(context.Background(), ScanOptions{
		SubscriptionID: "sub",
		Regions:        []string{"eastus", "westus"},
	})

	require.NoError(t, err)
	require.NotNil(t, report)

	// The failing region did not stop the one after it.
	assert.Equal(t, []string{"eastus", "westus"}, lister.calls)

	require.Len(t, report.Regions, 2)
	failed := report.Regions[0]
	assert.True(t, failed.Failed())
	assert.Equal(t, fetchErr.Error(), failed.Error)
	assert.Empty(t, failed.Models)
	assert.Empty(t, failed.Providers)

	succeeded := report.Regions[1]
	assert.False(t, succeeded.Failed())
	assert.Len(t, succeeded.Models, 1)
}

func TestScanner_Scan_AllRegionsFailed(t *testing.T) {
	lister := &fakeLister{
		errs: map[string]error{
			"eastus": errors.New("throttled"),
			"westus": errors.New("unreachable"),
		},
	}

	scanner := NewScanner(lister, clock.NewMock())
	report, err := scanner.Scan(context.Background(), ScanOptions{
		SubscriptionID: "sub",
		Regions:        []string{"eastus", "westus"},
	})

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "scanning eastus")
	assert.ErrorContains(t, err, "scanning westus")
}

func TestScanner_Scan_NoRegions(t *testing.T) {
	scanner := NewScanner(&fakeLister{}, clock.NewMock())
	report, err := scanner.Scan(context.Background(), ScanOptions{SubscriptionID: "sub"})

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Empty(t, report.Regions)
	assert.Empty(t, report.Matrix.Rows)
}
