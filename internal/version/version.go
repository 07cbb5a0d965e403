// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package version

var (
	// Populated at build time via ldflags
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
