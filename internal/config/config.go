// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config persists user defaults (subscription, cloud, regions,
// retry budget) between runs and resolves named region groups.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ConfigDirEnvVar overrides the directory the config file lives in.
const ConfigDirEnvVar = "AICATALOG_CONFIG_DIR"

const configFileName = "config.json"

// Config holds the persisted user defaults. Zero values mean "not set".
type Config struct {
	// Subscription is the default subscription ID.
	Subscription string `json:"subscription,omitempty"`
	// Cloud is the default cloud environment name, e.g. "AzureCloud".
	Cloud string `json:"cloud,omitempty"`
	// Regions is the default region list for scans.
	Regions []string `json:"regions,omitempty"`
	// MaxRetries is the default retry budget per page request.
	MaxRetries *int `json:"maxRetries,omitempty"`
}

// Dir returns the directory holding the config file: ConfigDirEnvVar when
// set, otherwise ~/.aicatalog.
func Dir() (string, error) {
	if dir := os.Getenv(ConfigDirEnvVar); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".aicatalog"), nil
}

// Load reads the persisted config. A missing file yields an empty config,
// not an error.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &config, nil
}

// Save writes the config, creating the config directory when needed.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, configFileName), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Keys lists the settable config keys.
func Keys() []string {
	return []string{"subscription", "cloud", "regions", "max-retries"}
}

// Set assigns one key from its string form. Regions take a comma-separated
// list.
func (c *Config) Set(key string, value string) error {
	switch key {
	case "subscription":
		c.Subscription = value
	case "cloud":
		c.Cloud = value
	case "regions":
		regions := []string{}
		for _, region := range strings.Split(value, ",") {
			if region = strings.TrimSpace(region); region != "" {
				regions = append(regions, region)
			}
		}
		c.Regions = regions
	case "max-retries":
		retries, err := strconv.Atoi(value)
		if err != nil || retries < 0 {
			return fmt.Errorf("max-retries must be a non-negative integer, got '%s'", value)
		}
		c.MaxRetries = &retries
	default:
		return fmt.Errorf("unknown config key '%s' (expected one of: %s)", key, strings.Join(Keys(), ", "))
	}

	return nil
}

// Unset clears one key.
func (c *Config) Unset(key string) error {
	switch key {
	case "subscription":
		c.Subscription = ""
	case "cloud":
		c.Cloud = ""
	case "regions":
		c.Regions = nil
	case "max-retries":
		c.MaxRetries = nil
	default:
		return fmt.Errorf("unknown config key '%s' (expected one of: %s)", key, strings.Join(Keys(), ", "))
	}

	return nil
}
