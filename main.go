// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/azure/aicatalog/internal/cmd"
)

func init() {
	forceColorVal, has := os.LookupEnv("FORCE_COLOR")
	if has && forceColorVal == "1" {
		color.NoColor = false
	}
}

func main() {
	ctx := context.Background()
	rootCmd := cmd.NewRootCommand()

	configureLogger(isDebugEnabled())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func isDebugEnabled() bool {
	debugEnabled := false
	pflag.BoolVar(&debugEnabled, "debug", false, "Enable debug logging")

	// Parse only known top-level flags; cobra owns everything else.
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	_ = pflag.CommandLine.Parse(os.Args[1:])

	return debugEnabled
}

// configureLogger routes the standard logger. With --debug diagnostic lines
// (retry waits, per-region failures) go to stderr; otherwise they are
// discarded. User-facing output never goes through the logger.
func configureLogger(debug bool) {
	var output io.Writer = io.Discard
	if debug {
		output = os.Stderr
	}

	log.SetOutput(output)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetPrefix("[aicatalog] ")
}
