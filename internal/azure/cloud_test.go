// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCloudName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty defaults to public", input: "", expected: AzurePublicName},
		{name: "Public", input: "AzureCloud", expected: AzurePublicName},
		{name: "China", input: "AzureChinaCloud", expected: AzureChinaCloudName},
		{name: "Government", input: "AzureUSGovernment", expected: AzureUSGovernmentName},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cloud, err := ParseCloudName(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, cloud.Name)
		})
	}
}

func TestParseCloudName_Unknown(t *testing.T) {
	cloud, err := ParseCloudName("AzureGermanCloud")
	require.Error(t, err)
	assert.Nil(t, cloud)
	assert.ErrorContains(t, err, "AzureGermanCloud")
}

func TestCloud_TokenScope(t *testing.T) {
	assert.Equal(t, "https://management.core.windows.net//.default", AzurePublic().TokenScope())
}
