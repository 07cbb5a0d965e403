// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/google/uuid"
)

// See https://github.com/Azure/azure-resource-manager-rpc/blob/master/v1.0/common-api-details.md#client-request-headers
const MsCorrelationIdHeader = "x-ms-correlation-request-id"

// msCorrelationPolicy sets a fresh Microsoft correlation ID header on every
// outgoing request so server-side logs for one call can be located.
type msCorrelationPolicy struct{}

func (p *msCorrelationPolicy) Do(req *policy.Request) (*http.Response, error) {
	rawRequest := req.Raw()
	rawRequest.Header.Set(MsCorrelationIdHeader, uuid.NewString())

	return req.Next()
}

// NewMsCorrelationPolicy creates a policy that sets Microsoft correlation ID
// headers on HTTP requests. This works for Azure REST APIs and other
// Microsoft-hosted services that do not yet honor distributed tracing.
func NewMsCorrelationPolicy() policy.Policy {
	return &msCorrelationPolicy{}
}

// userAgentPolicy prefixes the SDK user agent with this tool's identity.
type userAgentPolicy struct {
	userAgent string
}

func (p *userAgentPolicy) Do(req *policy.Request) (*http.Response, error) {
	rawRequest := req.Raw()

	current := rawRequest.Header.Get("User-Agent")
	if current == "" {
		rawRequest.Header.Set("User-Agent", p.userAgent)
	} else {
		rawRequest.Header.Set("User-Agent", p.userAgent+" "+current)
	}

	return req.Next()
}

// NewUserAgentPolicy creates a policy that prepends userAgent to the
// User-Agent header of every request.
func NewUserAgentPolicy(userAgent string) policy.Policy {
	return &userAgentPolicy{userAgent: userAgent}
}
