// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package output renders command results as JSON or aligned tables and
// holds the color helpers user-facing text goes through.
package output

import (
	"fmt"
	"io"
)

type Format string

const (
	JsonFormat  Format = "json"
	TableFormat Format = "table"
	NoneFormat  Format = "none"
)

type Formatter interface {
	Kind() Format
	Format(obj any, writer io.Writer, opts any) error
}

func NewFormatter(format string) (Formatter, error) {
	switch format {
	case string(JsonFormat):
		return &JsonFormatter{}, nil
	case string(TableFormat):
		return &TableFormatter{}, nil
	case string(NoneFormat):
		return &NoneFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
}

// NoneFormatter discards the object; commands that already wrote their
// output use it as the fallthrough.
type NoneFormatter struct {
}

func (f *NoneFormatter) Kind() Format {
	return NoneFormat
}

func (f *NoneFormatter) Format(obj any, writer io.Writer, opts any) error {
	return nil
}

var _ Formatter = (*NoneFormatter)(nil)
