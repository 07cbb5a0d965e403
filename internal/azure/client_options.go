// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/azure/aicatalog/internal/version"
)

// NewArmClientOptions creates arm.ClientOptions with the standard policies
// for this tool's SDK clients: correlation headers, user agent and the
// selected cloud's endpoints. The pipeline's own retry policy is disabled
// because the catalog layer runs its explicit retry executor around each
// page request; two retry loops stacked on each other would multiply
// attempts.
func NewArmClientOptions(cloud *Cloud) *arm.ClientOptions {
	userAgent := fmt.Sprintf("aicatalog/%s", version.Version)

	return &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Cloud: cloud.Configuration,
			Logging: policy.LogOptions{
				AllowedHeaders: []string{MsCorrelationIdHeader},
			},
			PerCallPolicies: []policy.Policy{
				NewMsCorrelationPolicy(),
				NewUserAgentPolicy(userAgent),
			},
			Retry: policy.RetryOptions{
				MaxRetries: -1,
			},
		},
	}
}
