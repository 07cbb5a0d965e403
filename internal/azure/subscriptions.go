// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azure

import (
	"context"
	"fmt"
	"sort"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// Subscription is one Azure subscription visible to the signed-in account.
type Subscription struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Location is one physical Azure region available to a subscription.
type Location struct {
	// Name is the location code passed to the catalog API, e.g. "eastus".
	Name string `json:"name"`
	// DisplayName is the human friendly name, e.g. "East US".
	DisplayName string `json:"displayName"`
	// RegionalDisplayName includes the geography grouping, e.g.
	// "(US) East US".
	RegionalDisplayName string `json:"regionalDisplayName"`
}

// SubscriptionsService reads subscription and location metadata from ARM.
type SubscriptionsService struct {
	credential azcore.TokenCredential
	armOptions *arm.ClientOptions
}

func NewSubscriptionsService(credential azcore.TokenCredential, armOptions *arm.ClientOptions) *SubscriptionsService {
	return &SubscriptionsService{
		credential: credential,
		armOptions: armOptions,
	}
}

// ListSubscriptions lists the subscriptions the account can see, sorted by
// display name.
func (s *SubscriptionsService) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	client, err := armsubscriptions.NewClient(s.credential, s.armOptions)
	if err != nil {
		return nil, fmt.Errorf("creating subscriptions client: %w", err)
	}

	subscriptions := []Subscription{}
	pager := client.NewListPager(nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed getting next page of subscriptions: %w", err)
		}

		for _, subscription := range page.SubscriptionListResult.Value {
			if subscription.SubscriptionID == nil {
				continue
			}

			name := ""
			if subscription.DisplayName != nil {
				name = *subscription.DisplayName
			}

			subscriptions = append(subscriptions, Subscription{
				Id:   *subscription.SubscriptionID,
				Name: name,
			})
		}
	}

	sort.Slice(subscriptions, func(i, j int) bool {
		return subscriptions[i].Name < subscriptions[j].Name
	})

	return subscriptions, nil
}

// ListLocations lists the physical locations available to the subscription,
// sorted by regional display name.
func (s *SubscriptionsService) ListLocations(ctx context.Context, subscriptionId string) ([]Location, error) {
	client, err := armsubscriptions.NewClient(s.credential, s.armOptions)
	if err != nil {
		return nil, fmt.Errorf("creating subscriptions client: %w", err)
	}

	locations := []Location{}
	pager := client.NewListLocationsPager(subscriptionId, nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed getting next page of locations: %w", err)
		}

		for _, location := range page.LocationListResult.Value {
			if location.Name == nil || location.Metadata == nil {
				continue
			}

			// Only include physical locations; logical ones cannot host
			// model deployments.
			if location.Metadata.RegionType == nil ||
				*location.Metadata.RegionType != armsubscriptions.RegionTypePhysical {
				continue
			}

			displayName := *location.Name
			if location.DisplayName != nil {
				displayName = *location.DisplayName
			}

			regionalDisplayName := displayName
			if location.RegionalDisplayName != nil {
				regionalDisplayName = *location.RegionalDisplayName
			}

			locations = append(locations, Location{
				Name:                *location.Name,
				DisplayName:         displayName,
				RegionalDisplayName: regionalDisplayName,
			})
		}
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].RegionalDisplayName < locations[j].RegionalDisplayName
	})

	return locations, nil
}
