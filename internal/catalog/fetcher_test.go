// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azure/aicatalog/internal/mocks"
)

const nextLinkEastus = "https://management.azure.com/subscriptions/sub-1/providers/" +
	"Microsoft.CognitiveServices/locations/eastus/models?api-version=2025-06-01&$skipToken=page2"

// testArmOptions wires the mock transport in and disables the pipeline's
// own retry policy so attempt counts reflect the catalog retry behavior.
func testArmOptions(client *mocks.MockHttpClient) *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Transport: client,
			Retry:     policy.RetryOptions{MaxRetries: -1},
		},
	}
}

func isModelsPage(request *http.Request, region string) bool {
	return request.Method == http.MethodGet &&
		strings.Contains(request.URL.Path, "/locations/"+region+"/models")
}

func TestService_Models_PaginatesDeduplicatesAndConverts(t *testing.T) {
	pageOne := json.RawMessage(`{
		"value": [
			{
				"kind": "OpenAI",
				"model": {
					"format": "OpenAI",
					"name": "gpt-4o",
					"version": "2024-08-06",
					"lifecycleStatus": "GenerallyAvailable",
					"maxCapacity": 450,
					"skus": [{"name": "Standard"}],
					"capabilities": {"chatCompletion": "true", "fineTune": "false"}
				}
			},
			{
				"kind": "OpenAI",
				"model": {
					"format": "OpenAI",
					"name": "gpt-4o",
					"version": "2024-08-06",
					"lifecycleStatus": "GenerallyAvailable",
					"maxCapacity": 450,
					"skus": [{"name": "Standard"}, {"name": "GlobalStandard"}],
					"capabilities": {"chatCompletion": "true"}
				}
			}
		],
		"nextLink": "` + nextLinkEastus + `"
	}`)

	pageTwo := json.RawMessage(`{
		"value": [
			{
				"kind": "OpenAI",
				"model": {
					"format": "OpenAI",
					"name": "gpt-35-turbo",
					"version": "0613",
					"lifecycleStatus": "Deprecated",
					"skus": [{"name": "Standard"}],
					"deprecation": {"inference": "2025-02-13"}
				}
			}
		]
	}`)

	mockHttp := mocks.NewMockHttpClient()
	pageOneRequests := 0
	pageTwoRequests := 0

	mockHttp.When(func(request *http.Request) bool {
		return isModelsPage(request, "eastus") && !request.URL.Query().Has("$skipToken")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		pageOneRequests++
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, pageOne)
	})

	mockHttp.When(func(request *http.Request) bool {
		return isModelsPage(request, "eastus") && request.URL.Query().Get("$skipToken") == "page2"
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		pageTwoRequests++
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, pageTwo)
	})

	service := NewService(&mocks.MockCredentials{}, testArmOptions(mockHttp), 3)
	records, err := service.Models(context.Background(), "sub-1", "eastus", Filter{})

	require.NoError(t, err)
	require.Equal(t, 1, pageOneRequests)
	require.Equal(t, 1, pageTwoRequests)

	require.Len(t, records, 2)

	gpt4o := records[0]
	assert.Equal(t, "OpenAI", gpt4o.ProviderFormat)
	assert.Equal(t, "gpt-4o", gpt4o.ModelName)
	assert.Equal(t, "2024-08-06", gpt4o.ModelVersion)
	assert.Equal(t, LifecycleGenerallyAvailable, gpt4o.LifecycleStatus)
	// The duplicate with the wider SKU set replaced the first entry.
	assert.Equal(t, []string{"Standard", "GlobalStandard"}, gpt4o.DeploymentSkus)
	require.NotNil(t, gpt4o.MaxCapacity)
	assert.Equal(t, int32(450), *gpt4o.MaxCapacity)
	assert.Equal(t, map[string]bool{"chatCompletion": true}, gpt4o.Capabilities)

	turbo := records[1]
	assert.Equal(t, "gpt-35-turbo", turbo.ModelName)
	assert.Equal(t, LifecycleDeprecated, turbo.LifecycleStatus)
	assert.Equal(t, "2025-02-13", turbo.DeprecationDate)
}

func TestService_Models_AppliesFilter(t *testing.T) {
	page := json.RawMessage(`{
		"value": [
			{"model": {"format": "OpenAI", "name": "gpt-4o", "version": "1", "lifecycleStatus": "GenerallyAvailable"}},
			{"model": {"format": "Meta", "name": "Llama-3.3-70B", "version": "1", "lifecycleStatus": "Stable"}}
		]
	}`)

	mockHttp := mocks.NewMockHttpClient()
	mockHttp.When(func(request *http.Request) bool {
		return isModelsPage(request, "westus")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, page)
	})

	service := NewService(&mocks.MockCredentials{}, testArmOptions(mockHttp), 0)
	records, err := service.Models(context.Background(), "sub-1", "westus", Filter{
		NamePatterns: []string{"gpt-*"},
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "gpt-4o", records[0].ModelName)
}

func TestService_Models_RetriesThrottledPage(t *testing.T) {
	page := json.RawMessage(`{
		"value": [
			{"model": {"format": "OpenAI", "name": "gpt-4o", "version": "1", "lifecycleStatus": "GenerallyAvailable"}}
		]
	}`)

	mockHttp := mocks.NewMockHttpClient()
	requests := 0
	mockHttp.When(func(request *http.Request) bool {
		return isModelsPage(request, "eastus")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		requests++
		if requests <= 2 {
			response, err := mocks.CreateEmptyHttpResponse(request, http.StatusTooManyRequests)
			if err != nil {
				return nil, err
			}
			response.Header.Set("Retry-After", "0")
			return response, nil
		}
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, page)
	})

	service := NewService(&mocks.MockCredentials{}, testArmOptions(mockHttp), 3)
	records, err := service.Models(context.Background(), "sub-1", "eastus", Filter{})

	require.NoError(t, err)
	require.Equal(t, 3, requests)
	require.Len(t, records, 1)
}

func TestService_Models_AbortsRegionAfterExhaustion(t *testing.T) {
	pageOne := json.RawMessage(`{
		"value": [
			{"model": {"format": "OpenAI", "name": "gpt-4o", "version": "1", "lifecycleStatus": "GenerallyAvailable"}}
		],
		"nextLink": "` + nextLinkEastus + `"
	}`)

	mockHttp := mocks.NewMockHttpClient()
	pageTwoRequests := 0

	mockHttp.When(func(request *http.Request) bool {
		return isModelsPage(request, "eastus") && !request.URL.Query().Has("$skipToken")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, pageOne)
	})

	mockHttp.When(func(request *http.Request) bool {
		return isModelsPage(request, "eastus") && request.URL.Query().Has("$skipToken")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		pageTwoRequests++
		response, err := mocks.CreateEmptyHttpResponse(request, http.StatusTooManyRequests)
		if err != nil {
			return nil, err
		}
		response.Header.Set("Retry-After", "0")
		return response, nil
	})

	service := NewService(&mocks.MockCredentials{}, testArmOptions(mockHttp), 1)
	records, err := service.Models(context.Background(), "sub-1", "eastus", Filter{})

	require.Error(t, err)
	// The page collected before the failure is discarded.
	assert.Nil(t, records)
	assert.Equal(t, 2, pageTwoRequests)

	// The transport's error surfaces as-is, not wrapped.
	var respErr *azcore.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusTooManyRequests, respErr.StatusCode)
	assert.Same(t, err, any(respErr))
}

func TestService_Models_PermanentErrorNotRetried(t *testing.T) {
	mockHttp := mocks.NewMockHttpClient()
	requests := 0
	mockHttp.When(func(request *http.Request) bool {
		return isModelsPage(request, "eastus")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		requests++
		return mocks.CreateEmptyHttpResponse(request, http.StatusForbidden)
	})

	service := NewService(&mocks.MockCredentials{}, testArmOptions(mockHttp), 3)
	_, err := service.Models(context.Background(), "sub-1", "eastus", Filter{})

	require.Error(t, err)
	require.Equal(t, 1, requests)

	var respErr *azcore.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusForbidden, respErr.StatusCode)
}

func TestService_Models_EmptyCatalog(t *testing.T) {
	mockHttp := mocks.NewMockHttpClient()
	mockHttp.When(func(request *http.Request) bool {
		return isModelsPage(request, "eastus")
	}).RespondFn(func(request *http.Request) (*http.Response, error) {
		return mocks.CreateHttpResponseWithBody(request, http.StatusOK, json.RawMessage(`{"value": []}`))
	})

	service := NewService(&mocks.MockCredentials{}, testArmOptions(mockHttp), 0)
	records, err := service.Models(context.Background(), "sub-1", "eastus", Filter{})

	require.NoError(t, err)
	assert.Empty(t, records)
}
