// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

// WithLinkFormat creates string with hyperlink-looking color
func WithLinkFormat(link string, a ...any) string {
	return color.HiCyanString(link, a...)
}

// WithHighLightFormat creates string with highlight-looking color
func WithHighLightFormat(text string, a ...any) string {
	return color.CyanString(text, a...)
}

func WithErrorFormat(text string, a ...any) string {
	return color.RedString(text, a...)
}

func WithWarningFormat(text string, a ...any) string {
	return color.YellowString(text, a...)
}

func WithSuccessFormat(text string, a ...any) string {
	return color.GreenString(text, a...)
}

func WithGrayFormat(text string, a ...any) string {
	return color.HiBlackString(text, a...)
}

func WithBold(text string, a ...any) string {
	return color.New(color.Bold).Sprintf(text, a...)
}

// GetDefaultWriter is stdout with ANSI translation for terminals that need
// it.
func GetDefaultWriter() io.Writer {
	return colorable.NewColorableStdout()
}
