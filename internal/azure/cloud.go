// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package azure holds the thin Azure plumbing the catalog commands share:
// cloud selection, credential acquisition and the ARM client options.
package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
)

const (
	AzurePublicName       = "AzureCloud"
	AzureChinaCloudName   = "AzureChinaCloud"
	AzureUSGovernmentName = "AzureUSGovernment"
)

// Cloud is the Azure environment a run operates against, resolved once at
// startup and passed explicitly down to every client.
type Cloud struct {
	// Name is the canonical environment name, e.g. "AzureCloud".
	Name string

	// Configuration carries the SDK endpoints and audiences for this
	// environment.
	Configuration cloud.Configuration

	// PortalUrlBase is the base URL for the cloud's portal (e.g.
	// https://portal.azure.com for Azure public cloud).
	PortalUrlBase string
}

// TokenScope is the ARM scope used to request and validate access tokens
// for this cloud.
func (c *Cloud) TokenScope() string {
	return c.Configuration.Services[cloud.ResourceManager].Audience + "/.default"
}

func AzurePublic() *Cloud {
	return &Cloud{
		Name:          AzurePublicName,
		Configuration: cloud.AzurePublic,
		PortalUrlBase: "https://portal.azure.com",
	}
}

func AzureChina() *Cloud {
	return &Cloud{
		Name:          AzureChinaCloudName,
		Configuration: cloud.AzureChina,
		PortalUrlBase: "https://portal.azure.cn",
	}
}

func AzureGovernment() *Cloud {
	return &Cloud{
		Name:          AzureUSGovernmentName,
		Configuration: cloud.AzureGovernment,
		PortalUrlBase: "https://portal.azure.us",
	}
}

// ParseCloudName maps an environment name to its cloud definition. An empty
// name selects Azure public cloud.
func ParseCloudName(name string) (*Cloud, error) {
	switch name {
	case AzurePublicName, "":
		return AzurePublic(), nil
	case AzureChinaCloudName:
		return AzureChina(), nil
	case AzureUSGovernmentName:
		return AzureGovernment(), nil
	}

	return nil, fmt.Errorf(
		"cloud name '%s' not found (expected one of: %s, %s, %s)",
		name, AzurePublicName, AzureChinaCloudName, AzureUSGovernmentName)
}
