// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"

	"github.com/azure/aicatalog/internal/azure"
	"github.com/azure/aicatalog/internal/catalog"
	"github.com/azure/aicatalog/internal/config"
	"github.com/azure/aicatalog/internal/export"
	"github.com/azure/aicatalog/internal/output"
	"github.com/azure/aicatalog/internal/spin"
)

type scanFlags struct {
	account     accountFlags
	filter      filterFlags
	regions     []string
	regionGroup string
	regionsFile string
	maxRetries  int
	exportCsv   string
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan model availability across regions.",
		Long: heredoc.Doc(`
			Scan the model catalog of each requested region, summarize the
			results per provider and show a cross-region availability matrix.

			Regions come from repeated --region flags, a named --region-group
			(built-ins: us, europe, asia, extendable via --regions-file), the
			persisted default, or an interactive selection.

			A region whose fetch fails is reported and skipped; the scan only
			fails when every region failed.`),
		Example: heredoc.Doc(`
			# Scan two regions for OpenAI GPT models that are generally available
			aicatalog scan --region eastus --region swedencentral \
			  --provider OpenAI --model 'gpt-4*' --lifecycle ga

			# Scan the European preset and export the records
			aicatalog scan --region-group europe --export-csv models.csv`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, flags)
		},
	}

	flags.account.Bind(cmd.Flags())
	flags.filter.Bind(cmd.Flags())
	cmd.Flags().StringArrayVarP(&flags.regions, "region", "r", nil, "Region to scan; repeatable")
	cmd.Flags().StringVar(&flags.regionGroup, "region-group", "", "Named region group to scan")
	cmd.Flags().StringVar(&flags.regionsFile, "regions-file", "", "YAML file defining additional region groups")
	cmd.Flags().IntVar(&flags.maxRetries, "max-retries", defaultMaxRetries,
		"Additional attempts per catalog page request after the first")
	cmd.Flags().StringVar(&flags.exportCsv, "export-csv", "", "Write the scanned model records to a CSV file")
	output.AddOutputParam(cmd, []output.Format{output.TableFormat, output.JsonFormat}, output.TableFormat)

	return cmd
}

func runScan(cmd *cobra.Command, flags *scanFlags) error {
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

	regions, err := resolveScanRegions(ctx, flags, env, subscriptions, subscription)
	if err != nil {
		return err
	}

	service := catalog.NewService(credential, armOptions, maxRetries)
	scanner := catalog.NewScanner(service, clock.New())

	options := catalog.ScanOptions{
		SubscriptionID: subscription,
		Cloud:          env.cloud.Name,
		Regions:        regions,
		Filter:         filter,
	}

	var report *catalog.ScanReport
	if env.isTerminal && !env.noPrompt && formatter.Kind() == output.TableFormat {
		spinner := spin.New(fmt.Sprintf("Scanning %d regions...", len(regions)))
		options.Progress = func(region string) {
			spinner.Title(fmt.Sprintf("Scanning %s...", region))
		}
		err = spinner.Run(func() error {
			report, err = scanner.Scan(ctx, options)
			return err
		})
	} else {
		report, err = scanner.Scan(ctx, options)
	}
	if err != nil {
		return err
	}

	if formatter.Kind() == output.JsonFormat {
		if err := formatter.Format(report, writer, nil); err != nil {
			return err
		}
	} else {
		if err := renderScanReport(writer, report); err != nil {
			return err
		}
	}

	if flags.exportCsv != "" {
		if err := export.SaveModels(flags.exportCsv, report.Regions); err != nil {
			return err
		}
		fmt.Fprintf(writer, "\n%s\n", output.WithSuccessFormat("Exported model records to %s", flags.exportCsv))
	}

	if env.isTerminal && !env.noPrompt && formatter.Kind() == output.TableFormat {
		return drillDown(env, report, writer)
	}

	return nil
}

// resolveScanRegions picks the regions to scan: explicit --region flags, a
// named group, the persisted default, then an interactive multi-select over
// the subscription's physical locations.
func resolveScanRegions(
	ctx context.Context,
	flags *scanFlags,
	env *commandEnv,
	subscriptions *azure.SubscriptionsService,
	subscription string,
) ([]string, error) {
	if len(flags.regions) > 0 {
		return flags.regions, nil
	}

	if flags.regionGroup != "" {
		groups, err := config.LoadGroups(flags.regionsFile)
		if err != nil {
			return nil, err
		}
		return groups.Resolve(flags.regionGroup)
	}

	if len(env.config.Regions) > 0 {
		return env.config.Regions, nil
	}

	locations, err := subscriptions.ListLocations(ctx, subscription)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}

	options := make([]string, 0, len(locations))
	for _, location := range locations {
		options = append(options, location.Name)
	}

	selection := []string{}
	err = env.asker(&survey.MultiSelect{
		Message: "Select regions to scan:",
		Options: options,
	}, &selection)
	if err != nil {
		return nil, err
	}
	if len(selection) == 0 {
		return nil, fmt.Errorf("no regions selected: pass --region or run `aicatalog config set regions <list>`")
	}

	return selection, nil
}

// drillDown lets the user inspect one region/provider pair at a time until
// they decline to continue.
func drillDown(env *commandEnv, report *catalog.ScanReport, writer io.Writer) error {
	succeeded := make([]catalog.RegionResult, 0, len(report.Regions))
	for _, region := range report.Regions {
		if !region.Failed() && len(region.Providers) > 0 {
			succeeded = append(succeeded, region)
		}
	}
	if len(succeeded) == 0 {
		return nil
	}

	for {
		explore := false
		err := env.asker(&survey.Confirm{
			Message: "Explore model details?",
			Default: false,
		}, &explore)
		if err != nil || !explore {
			return err
		}

		regionNames := make([]string, 0, len(succeeded))
		for _, region := range succeeded {
			regionNames = append(regionNames, region.Region)
		}

		regionIndex := 0
		err = env.asker(&survey.Select{
			Message: "Select a region:",
			Options: regionNames,
			Default: regionNames[0],
		}, &regionIndex)
		if err != nil {
			return err
		}
		region := succeeded[regionIndex]

		providerNames := make([]string, 0, len(region.Providers))
		for _, summary := range region.Providers {
			providerNames = append(providerNames, summary.Provider)
		}

		providerIndex := 0
		err = env.asker(&survey.Select{
			Message: "Select a provider:",
			Options: providerNames,
			Default: providerNames[0],
		}, &providerIndex)
		if err != nil {
			return err
		}
		summary := region.Providers[providerIndex]

		fmt.Fprintf(writer, "\n%s\n", output.WithBold("%s in %s", summary.Provider, summary.Region))
		if err := renderModels(writer, summary.Models); err != nil {
			return err
		}
		fmt.Fprintln(writer)
	}
}
