// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// builtinGroups are the named region presets shipped with the tool.
var builtinGroups = map[string][]string{
	"us": {
		"eastus",
		"eastus2",
		"westus",
		"westus3",
		"southcentralus",
	},
	"europe": {
		"swedencentral",
		"francecentral",
		"westeurope",
		"uksouth",
		"germanywestcentral",
	},
	"asia": {
		"japaneast",
		"southeastasia",
		"australiaeast",
		"koreacentral",
	},
}

// groupsFile is the YAML shape of a --regions-file document.
type groupsFile struct {
	Groups map[string][]string `yaml:"groups"`
}

// RegionGroups resolves named region groups, with user-defined groups
// shadowing built-ins of the same name.
type RegionGroups struct {
	user map[string][]string
}

// LoadGroups parses a regions file. An empty path yields just the
// built-ins.
func LoadGroups(path string) (*RegionGroups, error) {
	groups := &RegionGroups{}
	if path == "" {
		return groups, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading regions file: %w", err)
	}

	var file groupsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing regions file '%s': %w", path, err)
	}

	groups.user = file.Groups
	return groups, nil
}

// Resolve returns the regions of the named group.
func (g *RegionGroups) Resolve(name string) ([]string, error) {
	if regions, ok := g.user[name]; ok {
		return regions, nil
	}
	if regions, ok := builtinGroups[name]; ok {
		return regions, nil
	}

	return nil, fmt.Errorf("unknown region group '%s' (known groups: %s)", name, strings.Join(g.Names(), ", "))
}

// Names lists every known group name, sorted.
func (g *RegionGroups) Names() []string {
	seen := make(map[string]struct{}, len(builtinGroups)+len(g.user))
	for name := range builtinGroups {
		seen[name] = struct{}{}
	}
	for name := range g.user {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
