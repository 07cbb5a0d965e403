// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// CredentialOptions configures credential creation and validation.
type CredentialOptions struct {
	// Cloud selects the environment whose ARM scope the credential is
	// validated against.
	Cloud *Cloud
	// TenantID is the Entra tenant to authenticate against, when set.
	TenantID string
	// SubscriptionID is used for error messages only, to help users
	// identify the context.
	SubscriptionID string
}

// NewCredential creates a DefaultAzureCredential for the selected cloud and
// validates it can obtain an ARM token. This catches stale or missing logins
// early with an actionable error instead of failing on the first catalog
// page.
func NewCredential(ctx context.Context, options CredentialOptions) (azcore.TokenCredential, error) {
	cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		ClientOptions: policy.ClientOptions{
			Cloud: options.Cloud.Configuration,
		},
		TenantID:                   options.TenantID,
		AdditionallyAllowedTenants: []string{"*"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	// The token is cached by the SDK, so subsequent calls reuse it.
	_, err = cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{options.Cloud.TokenScope()},
	})
	if err != nil {
		return nil, &AuthError{
			SubscriptionID: options.SubscriptionID,
			Cloud:          options.Cloud.Name,
			Cause:          err,
		}
	}

	return cred, nil
}

// AuthError represents an authentication failure with enough context for a
// helpful error message.
type AuthError struct {
	SubscriptionID string
	Cloud          string
	Cause          error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf(
		"failed to authenticate for subscription '%s' in cloud '%s'.\n"+
			"Suggestion: run `az login` or `azd auth login`, then try again. "+
			"If you recently gained access to this subscription, a fresh login is required",
		e.SubscriptionID,
		e.Cloud)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}
