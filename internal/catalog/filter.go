// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package catalog

import (
	"regexp"
	"slices"
)

// Filter narrows a record set along four independent dimensions. Empty
// dimensions impose no constraint; supplied dimensions must all hold for a
// record to pass.
type Filter struct {
	// Providers is an allow-list matched exactly against ProviderFormat.
	Providers []string
	// NamePatterns holds wildcard patterns ('*' and '?'); a record passes
	// when its name matches any one of them, case-insensitively.
	NamePatterns []string
	// Lifecycles is an allow-list matched exactly against LifecycleStatus.
	Lifecycles []Lifecycle
	// DeploymentTypes passes records whose SKU set intersects it.
	DeploymentTypes []string
}

// IsZero reports whether no dimension is supplied.
func (f Filter) IsZero() bool {
	return len(f.Providers) == 0 &&
		len(f.NamePatterns) == 0 &&
		len(f.Lifecycles) == 0 &&
		len(f.DeploymentTypes) == 0
}

// Apply returns the records satisfying every supplied dimension. With no
// dimensions supplied the input comes back unchanged.
func (f Filter) Apply(records []ModelRecord) []ModelRecord {
	if f.IsZero() {
		return records
	}

	matchers := compileWildcards(f.NamePatterns)

	filtered := make([]ModelRecord, 0, len(records))
	for _, record := range records {
		if f.matches(record, matchers) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func (f Filter) matches(record ModelRecord, matchers []*regexp.Regexp) bool {
	if len(f.Providers) > 0 && !slices.Contains(f.Providers, record.ProviderFormat) {
		return false
	}
	if len(matchers) > 0 && !matchesAny(record.ModelName, matchers) {
		return false
	}
	if len(f.Lifecycles) > 0 && !slices.Contains(f.Lifecycles, record.LifecycleStatus) {
		return false
	}
	if len(f.DeploymentTypes) > 0 && !intersects(record.DeploymentSkus, f.DeploymentTypes) {
		return false
	}
	return true
}

// intersects reports whether the two sets share at least one element.
func intersects(skus []string, allowed []string) bool {
	for _, sku := range skus {
		if slices.Contains(allowed, sku) {
			return true
		}
	}
	return false
}
