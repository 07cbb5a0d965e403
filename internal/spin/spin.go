// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package spin provides a terminal progress spinner for long-running
// operations like a region scan.
package spin

import (
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
	"github.com/mattn/go-colorable"
	"github.com/theckman/yacspin"
)

// writer is the default output stream for spinners. Tests replace it to
// capture output.
var writer io.Writer = colorable.NewColorableStdout()

// Options configures a spinner. Zero fields fall back to the defaults.
type Options struct {
	Frequency time.Duration
	CharSet   []string
	Writer    io.Writer
}

var defaultOptions = Options{
	Frequency: 200 * time.Millisecond,
	CharSet:   yacspin.CharSets[9],
}

// Spinner is a wrapper around yacspin with a title suffix.
type Spinner struct {
	spinner *yacspin.Spinner
	out     io.Writer
}

// New creates a stopped spinner displaying title. Later options win over
// earlier ones; unset fields use the package defaults.
func New(title string, opts ...Options) *Spinner {
	merged := Options{}
	for i := len(opts) - 1; i >= 0; i-- {
		if err := mergo.Merge(&merged, opts[i]); err != nil {
			panic(err)
		}
	}
	if err := mergo.Merge(&merged, defaultOptions); err != nil {
		panic(err)
	}
	if merged.Writer == nil {
		merged.Writer = writer
	}

	config := yacspin.Config{
		Frequency:       merged.Frequency,
		CharSet:         merged.CharSet,
		Writer:          merged.Writer,
		Suffix:          " " + title,
		SuffixAutoColon: false,
	}

	// The only config error paths are an empty charset and a non-positive
	// frequency, both of which the defaults rule out.
	spinner, err := yacspin.New(config)
	if err != nil {
		panic(err)
	}

	return &Spinner{spinner: spinner, out: merged.Writer}
}

func (s *Spinner) Start() error {
	return s.spinner.Start()
}

func (s *Spinner) Stop() error {
	return s.spinner.Stop()
}

// Title replaces the text shown beside the animation.
func (s *Spinner) Title(title string) {
	s.spinner.Suffix(" " + title)
}

// Println prints a message above the spinner, pausing the animation so the
// line lands intact.
func (s *Spinner) Println(message string) {
	_ = s.spinner.Pause()
	fmt.Fprintln(s.out, message)
	_ = s.spinner.Unpause()
}

// Run spins for the duration of fn, stopping before it returns so the
// caller can print normally again.
func (s *Spinner) Run(fn func() error) error {
	if err := s.Start(); err != nil {
		// A spinner that cannot draw should not block the work itself.
		return fn()
	}
	defer func() { _ = s.Stop() }()

	return fn()
}
