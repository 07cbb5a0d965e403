// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azure/aicatalog/internal/mocks"
)

func testArmOptions(client *mocks.MockHttpClient) *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Transport: client,
			Retry:     policy.RetryOptions{MaxRetries: -1},
		},
	}
}

func TestSubscriptionsService_ListLocations_PhysicalOnlySorted(t *testing.T) {
	body := json.RawMessage(`{
		"value": [
			{
				"name": "swedencentral",
				"displayName": "Sweden Central",
				"regionalDisplayName": "(Europe) Sweden Central",
				"metadata": {"regionType": "Physical"}
			},
			{
				"name": "eastus",
				"displayName": "East US",
				"regionalDisplayName": "(US) East US",
				"metadata": {"regionType": "Physical"}
			},
			{
				"name": "global",
				"displayName": "Global",
				"regionalDisplayName": "Global",
				"metadata": {"regionType": "Logical"}
			}
		]
	}`)

	mockHttp := mocks.NewMockHttpClient()
	mockHttp.When(func(request *http.Request) bool {
		return request.Method == http.MethodGet && strings.HasSuffix(request.URL.Path, "/locations")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, body)
	})

	service := NewSubscriptionsService(&mocks.MockCredentials{}, testArmOptions(mockHttp))
	locations, err := service.ListLocations(context.Background(), "sub-1")

	require.NoError(t, err)
	require.Len(t, locations, 2)
	// Logical regions are dropped, the rest sort by regional display name.
	assert.Equal(t, "swedencentral", locations[0].Name)
	assert.Equal(t, "(Europe) Sweden Central", locations[0].RegionalDisplayName)
	assert.Equal(t, "eastus", locations[1].Name)
}

func TestSubscriptionsService_ListSubscriptions_SortedByName(t *testing.T) {
	body := json.RawMessage(`{
		"value": [
			{"subscriptionId": "bbb", "displayName": "Team B"},
			{"subscriptionId": "aaa", "displayName": "Team A"}
		]
	}`)

	mockHttp := mocks.NewMockHttpClient()
	mockHttp.When(func(request *http.Request) bool {
		return request.Method == http.MethodGet && strings.HasSuffix(request.URL.Path, "/subscriptions")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, body)
	})

	service := NewSubscriptionsService(&mocks.MockCredentials{}, testArmOptions(mockHttp))
	subscriptions, err := service.ListSubscriptions(context.Background())

	require.NoError(t, err)
	require.Len(t, subscriptions, 2)
	assert.Equal(t, "aaa", subscriptions[0].Id)
	assert.Equal(t, "Team A", subscriptions[0].Name)
	assert.Equal(t, "bbb", subscriptions[1].Id)
}
