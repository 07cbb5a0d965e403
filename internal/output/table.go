// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
	"text/template"
)

// TableFormatter renders a slice (or single value) as an aligned text table
// whose columns are defined by the caller.
type TableFormatter struct {
}

func (f *TableFormatter) Kind() Format {
	return TableFormat
}

// TableFormatterOptions defines the columns of the table.
type TableFormatterOptions struct {
	Columns []Column
}

// Column is one table column: a heading and a text/template expression
// evaluated against each row value.
type Column struct {
	Heading       string
	ValueTemplate string
}

const tableColumnPadding = 2

func (f *TableFormatter) Format(obj any, writer io.Writer, opts any) error {
	options, ok := opts.(TableFormatterOptions)
	if !ok {
		return errors.New("TableFormatter requires TableFormatterOptions")
	}

	if len(options.Columns) == 0 {
		return errors.New("no columns were defined, table format is not supported for this command")
	}

	rows, err := asRows(obj)
	if err != nil {
		return err
	}

	funcs := template.FuncMap{
		"join": strings.Join,
	}

	headings := make([]string, 0, len(options.Columns))
	templates := make([]*template.Template, 0, len(options.Columns))
	for _, column := range options.Columns {
		tmpl, err := template.New(column.Heading).Funcs(funcs).Parse(column.ValueTemplate)
		if err != nil {
			return fmt.Errorf("parsing template for column '%s': %w", column.Heading, err)
		}

		headings = append(headings, column.Heading)
		templates = append(templates, tmpl)
	}

	tabs := tabwriter.NewWriter(writer, 0, 0, tableColumnPadding, ' ', 0)

	if _, err := fmt.Fprintln(tabs, strings.Join(headings, "\t")); err != nil {
		return err
	}

	for _, row := range rows {
		cells := make([]string, 0, len(templates))
		for _, tmpl := range templates {
			var cell strings.Builder
			if err := tmpl.Execute(&cell, row); err != nil {
				return fmt.Errorf("evaluating column template: %w", err)
			}
			cells = append(cells, cell.String())
		}

		if _, err := fmt.Fprintln(tabs, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tabs.Flush()
}

// asRows flattens obj into the table's row values: a slice or array
// contributes each element, anything else is a single row.
func asRows(obj any) ([]any, error) {
	if obj == nil {
		return nil, nil
	}

	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil
		}
		value = value.Elem()
	}

	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		return []any{obj}, nil
	}

	rows := make([]any, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		rows = append(rows, value.Index(i).Interface())
	}
	return rows, nil
}

var _ Formatter = (*TableFormatter)(nil)
