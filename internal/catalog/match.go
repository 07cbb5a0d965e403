// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package catalog

import (
	"regexp"
	"strings"
)

// compileWildcard translates a model-name pattern into an anchored,
// case-insensitive regular expression. Only two metacharacters exist: '*'
// matches any run of characters and '?' matches exactly one. Everything
// else is quoted, so compilation cannot fail.
func compileWildcard(pattern string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString("(?i)^")

	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	sb.WriteString("$")
	return regexp.MustCompile(sb.String())
}

// compileWildcards compiles each pattern in order.
func compileWildcards(patterns []string) []*regexp.Regexp {
	matchers := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		matchers = append(matchers, compileWildcard(pattern))
	}
	return matchers
}

// matchesAny reports whether name fully matches at least one pattern.
func matchesAny(name string, matchers []*regexp.Regexp) bool {
	for _, matcher := range matchers {
		if matcher.MatchString(name) {
			return true
		}
	}
	return false
}
