// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableRow struct {
	Name string
	Skus []string
}

func TestTableFormatter_Format(t *testing.T) {
	rows := []tableRow{
		{Name: "gpt-4o", Skus: []string{"Standard", "GlobalStandard"}},
		{Name: "gpt-4o-mini", Skus: []string{"GlobalStandard"}},
	}

	var buf bytes.Buffer
	formatter := &TableFormatter{}
	err := formatter.Format(rows, &buf, TableFormatterOptions{
		Columns: []Column{
			{Heading: "Name", ValueTemplate: "{{.Name}}"},
			{Heading: "SKUs", ValueTemplate: "{{join .Skus \", \"}}"},
		},
	})

	require.NoError(t, err)
	lines := nonEmptyLines(buf.String())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "SKUs")
	assert.Contains(t, lines[1], "gpt-4o")
	assert.Contains(t, lines[1], "Standard, GlobalStandard")
	assert.Contains(t, lines[2], "gpt-4o-mini")
}

func TestTableFormatter_Format_SingleValue(t *testing.T) {
	var buf bytes.Buffer
	formatter := &TableFormatter{}
	err := formatter.Format(tableRow{Name: "gpt-4o"}, &buf, TableFormatterOptions{
		Columns: []Column{
			{Heading: "Name", ValueTemplate: "{{.Name}}"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "gpt-4o")
}

func TestTableFormatter_Format_RequiresColumns(t *testing.T) {
	var buf bytes.Buffer
	formatter := &TableFormatter{}

	err := formatter.Format([]tableRow{}, &buf, nil)
	assert.Error(t, err)

	err = formatter.Format([]tableRow{}, &buf, TableFormatterOptions{})
	assert.Error(t, err)
}

func TestJsonFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := &JsonFormatter{}
	err := formatter.Format(tableRow{Name: "gpt-4o", Skus: []string{"Standard"}}, &buf, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"Name": "gpt-4o", "Skus": ["Standard"]}`, buf.String())
}

func TestNewFormatter(t *testing.T) {
	formatter, err := NewFormatter("json")
	require.NoError(t, err)
	assert.Equal(t, JsonFormat, formatter.Kind())

	formatter, err = NewFormatter("table")
	require.NoError(t, err)
	assert.Equal(t, TableFormat, formatter.Kind())

	_, err = NewFormatter("yaml")
	assert.Error(t, err)
}

func nonEmptyLines(s string) []string {
	lines := []string{}
	for _, line := range bytes.Split([]byte(s), []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}
