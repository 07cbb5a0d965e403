// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/azure/aicatalog/internal/azure"
	"github.com/azure/aicatalog/internal/catalog"
	"github.com/azure/aicatalog/internal/config"
	"github.com/azure/aicatalog/internal/input"
)

const subscriptionEnvVar = "AZURE_SUBSCRIPTION_ID"

const defaultMaxRetries = 3

// commandEnv carries the settings every account-facing command resolves the
// same way: persisted config, the selected cloud and the prompt surface.
type commandEnv struct {
	config     *config.Config
	cloud      *azure.Cloud
	asker      input.Asker
	noPrompt   bool
	isTerminal bool
}

// newCommandEnv loads the optional dotenv file, the persisted config and the
// cloud selection (flag wins over config, empty means Azure public), then
// builds the asker for this run.
func newCommandEnv(cmd *cobra.Command, cloudName string) (*commandEnv, error) {
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file '%s': %w", envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cloudName == "" {
		cloudName = cfg.Cloud
	}
	cloud, err := azure.ParseCloudName(cloudName)
	if err != nil {
		return nil, err
	}

	noPrompt, _ := cmd.Flags().GetBool("no-prompt")
	isTerminal := isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())

	return &commandEnv{
		config:     cfg,
		cloud:      cloud,
		asker:      input.NewAsker(noPrompt, isTerminal, os.Stdout, os.Stdin),
		noPrompt:   noPrompt,
		isTerminal: isTerminal,
	}, nil
}

// accountFlags are the flags shared by every command that talks to ARM.
type accountFlags struct {
	subscription string
	cloud        string
}

func (f *accountFlags) Bind(local *pflag.FlagSet) {
	local.StringVarP(&f.subscription, "subscription", "s", "", "Azure subscription ID")
	local.StringVar(&f.cloud, "cloud", "",
		"Cloud environment (AzureCloud, AzureChinaCloud, AzureUSGovernment)")
}

// resolveSubscription picks the subscription to use: flag, then the
// AZURE_SUBSCRIPTION_ID environment variable, then the persisted default,
// then an interactive selection over the subscriptions the account can see.
func resolveSubscription(
	ctx context.Context,
	flags *accountFlags,
	env *commandEnv,
	subscriptions *azure.SubscriptionsService,
) (string, error) {
	if flags.subscription != "" {
		return flags.subscription, nil
	}
	if fromEnv := os.Getenv(subscriptionEnvVar); fromEnv != "" {
		return fromEnv, nil
	}
	if env.config.Subscription != "" {
		return env.config.Subscription, nil
	}

	available, err := subscriptions.ListSubscriptions(ctx)
	if err != nil {
		return "", fmt.Errorf("listing subscriptions: %w", err)
	}
	if len(available) == 0 {
		return "", fmt.Errorf(
			"no subscription selected: pass --subscription, set %s or run `aicatalog config set subscription <id>`",
			subscriptionEnvVar)
	}

	options := make([]string, 0, len(available))
	for _, subscription := range available {
		options = append(options, fmt.Sprintf("%s (%s)", subscription.Name, subscription.Id))
	}

	index := 0
	err = env.asker(&survey.Select{
		Message: "Select a subscription:",
		Options: options,
		Default: options[0],
	}, &index)
	if err != nil {
		return "", err
	}

	return available[index].Id, nil
}

// filterFlags bind the four catalog filter dimensions.
type filterFlags struct {
	providers       []string
	models          []string
	lifecycles      []string
	deploymentTypes []string
}

func (f *filterFlags) Bind(local *pflag.FlagSet) {
	local.StringSliceVar(&f.providers, "provider", nil,
		"Only include models from these providers (e.g. OpenAI, Meta)")
	local.StringArrayVar(&f.models, "model", nil,
		"Only include model names matching these wildcard patterns ('*' and '?'); repeatable")
	local.StringSliceVar(&f.lifecycles, "lifecycle", nil,
		"Only include models with these lifecycle statuses (ga, stable, preview, deprecated)")
	local.StringSliceVar(&f.deploymentTypes, "deployment-type", nil,
		"Only include models offering one of these deployment SKUs (e.g. Standard, GlobalStandard)")
}

// Filter parses the bound values into a catalog filter.
func (f *filterFlags) Filter() (catalog.Filter, error) {
	filter := catalog.Filter{
		Providers:       f.providers,
		NamePatterns:    f.models,
		DeploymentTypes: f.deploymentTypes,
	}

	for _, value := range f.lifecycles {
		lifecycle, err := catalog.ParseLifecycle(value)
		if err != nil {
			return catalog.Filter{}, err
		}
		filter.Lifecycles = append(filter.Lifecycles, lifecycle)
	}

	return filter, nil
}

// resolveMaxRetries prefers an explicitly set flag, then the persisted
// default, then the built-in default. Negative values are rejected before
// the unsigned conversion; a wrapped negative would be an effectively
// unbounded retry budget.
func resolveMaxRetries(cmd *cobra.Command, env *commandEnv, flagValue int) (uint64, error) {
	if flagValue < 0 {
		return 0, fmt.Errorf("max-retries must be a non-negative integer, got %d", flagValue)
	}

	if !cmd.Flags().Changed("max-retries") && env.config.MaxRetries != nil {
		// config.Set rejects negatives, but the file can be edited by hand.
		if persisted := *env.config.MaxRetries; persisted >= 0 {
			return uint64(persisted), nil
		}
	}
	return uint64(flagValue), nil
}
