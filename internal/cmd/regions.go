// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/azure/aicatalog/internal/azure"
	"github.com/azure/aicatalog/internal/output"
)

type regionsFlags struct {
	account accountFlags
}

func newRegionsCommand() *cobra.Command {
	flags := &regionsFlags{}

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the physical regions available to the subscription.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(cmd, flags)
		},
	}

	flags.account.Bind(cmd.Flags())
	output.AddOutputParam(cmd, []output.Format{output.TableFormat, output.JsonFormat}, output.TableFormat)

	return cmd
}

func runRegions(cmd *cobra.Command, flags *regionsFlags) error {
	ctx := cmd.Context()

	env, err := newCommandEnv(cmd, flags.account.cloud)
	if err != nil {
		return err
	}

	formatter, err := output.GetFormatter(cmd)
	if err != nil {
		return err
	}
	writer := output.GetDefaultWriter()

	credential, err := azure.NewCredential(ctx, azure.CredentialOptions{
		Cloud:          env.cloud,
		SubscriptionID: flags.account.subscription,
	})
	if err != nil {
		return err
	}

	armOptions := azure.NewArmClientOptions(env.cloud)
	subscriptions := azure.NewSubscriptionsService(credential, armOptions)

	subscription, err := resolveSubscription(ctx, &flags.account, env, subscriptions)
	if err != nil {
		return err
	}

	locations, err := subscriptions.ListLocations(ctx, subscription)
	if err != nil {
		return err
	}

	switch formatter.Kind() {
	case output.JsonFormat:
		return formatter.Format(locations, writer, nil)
	default:
		return formatter.Format(locations, writer, output.TableFormatterOptions{
			Columns: []output.Column{
				{Heading: "Name", ValueTemplate: "{{.Name}}"},
				{Heading: "Regional Name", ValueTemplate: "{{.RegionalDisplayName}}"},
			},
		})
	}
}
