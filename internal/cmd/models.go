// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/azure/aicatalog/internal/azure"
	"github.com/azure/aicatalog/internal/catalog"
	"github.com/azure/aicatalog/internal/export"
	"github.com/azure/aicatalog/internal/output"
)

type modelsFlags struct {
	account    accountFlags
	filter     filterFlags
	region     string
	maxRetries int
	exportCsv  string
}

func newModelsCommand() *cobra.Command {
	flags := &modelsFlags{}

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the models available in one region.",
		Long: heredoc.Doc(`
			List every model the catalog offers in one region, after
			deduplication and filtering. Without --region the region is
			prompted for.`),
		Example: heredoc.Doc(`
			# GPT models deployable as GlobalStandard in East US
			aicatalog models --region eastus --model 'gpt-*' --deployment-type GlobalStandard`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels(cmd, flags)
		},
	}

	flags.account.Bind(cmd.Flags())
	flags.filter.Bind(cmd.Flags())
	cmd.Flags().StringVarP(&flags.region, "region", "r", "", "Region to list")
	cmd.Flags().IntVar(&flags.maxRetries, "max-retries", defaultMaxRetries,
		"Additional attempts per catalog page request after the first")
	cmd.Flags().StringVar(&flags.exportCsv, "export-csv", "", "Write the model records to a CSV file")
	output.AddOutputParam(cmd, []output.Format{output.TableFormat, output.JsonFormat}, output.TableFormat)

	return cmd
}

func runModels(cmd *cobra.Command, flags *modelsFlags) error {
	ctx := cmd.Context()

	env, err := newCommandEnv(cmd, flags.account.cloud)
	if err != nil {
		return err
	}

	filter, err := flags.filter.Filter()
	if err != nil {
		return err
	}

	maxRetries, err := resolveMaxRetries(cmd, env, flags.maxRetries)
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

	region := flags.region
	if region == "" {
		err = env.asker(&survey.Input{
			Message: "Region to list:",
		}, &region)
		if err != nil {
			return err
		}
	}

	service := catalog.NewService(credential, armOptions, maxRetries)
	records, err := service.Models(ctx, subscription, region, filter)
	if err != nil {
		return fmt.Errorf("listing models in %s: %w", region, err)
	}

	if formatter.Kind() == output.JsonFormat {
		if err := formatter.Format(records, writer, nil); err != nil {
			return err
		}
	} else {
		if len(records) == 0 {
			fmt.Fprintln(writer, output.WithGrayFormat("no models matched the filter in %s", region))
		} else if err := renderModels(writer, records); err != nil {
			return err
		}
	}

	if flags.exportCsv != "" {
		regions := []catalog.RegionResult{{Region: region, Models: records}}
		if err := export.SaveModels(flags.exportCsv, regions); err != nil {
			return err
		}
		fmt.Fprintf(writer, "\n%s\n", output.WithSuccessFormat("Exported model records to %s", flags.exportCsv))
	}

	return nil
}
