// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_NoPrompt_UsesDefaults(t *testing.T) {
	asker := NewAsker(true, false, nil, nil)

	var text string
	err := asker(&survey.Input{Message: "Region:", Default: "eastus"}, &text)
	require.NoError(t, err)
	assert.Equal(t, "eastus", text)

	var choice string
	err = asker(&survey.Select{
		Message: "Cloud:",
		Options: []string{"AzureCloud", "AzureChinaCloud"},
		Default: "AzureCloud",
	}, &choice)
	require.NoError(t, err)
	assert.Equal(t, "AzureCloud", choice)

	var index int
	err = asker(&survey.Select{
		Message: "Cloud:",
		Options: []string{"AzureCloud", "AzureChinaCloud"},
		Default: "AzureChinaCloud",
	}, &index)
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	confirmed := true
	err = asker(&survey.Confirm{Message: "Continue?", Default: false}, &confirmed)
	require.NoError(t, err)
	assert.False(t, confirmed)

	var selection []string
	err = asker(&survey.MultiSelect{
		Message: "Regions:",
		Options: []string{"eastus", "westus"},
		Default: []string{"eastus"},
	}, &selection)
	require.NoError(t, err)
	assert.Equal(t, []string{"eastus"}, selection)
}

func TestAsker_NoPrompt_ErrorsWithoutDefault(t *testing.T) {
	asker := NewAsker(true, false, nil, nil)

	var text string
	err := asker(&survey.Input{Message: "Region:"}, &text)
	assert.Error(t, err)

	var choice string
	err = asker(&survey.Select{Message: "Cloud:", Options: []string{"AzureCloud"}}, &choice)
	assert.Error(t, err)
}

func TestAsker_NonTerminal_ReadsResponse(t *testing.T) {
	var out bytes.Buffer
	asker := NewAsker(false, false, &out, strings.NewReader("westus\n"))

	var text string
	err := asker(&survey.Input{Message: "Region:", Default: "eastus"}, &text)
	require.NoError(t, err)
	assert.Equal(t, "westus", text)
	assert.Contains(t, out.String(), "Region")
}

func TestAsker_NonTerminal_EmptyUsesDefault(t *testing.T) {
	var out bytes.Buffer
	asker := NewAsker(false, false, &out, strings.NewReader("\n"))

	var text string
	err := asker(&survey.Input{Message: "Region:", Default: "eastus"}, &text)
	require.NoError(t, err)
	assert.Equal(t, "eastus", text)
}

func TestAsker_NonTerminal_SelectRejectsUnknownChoice(t *testing.T) {
	var out bytes.Buffer
	asker := NewAsker(false, false, &out, strings.NewReader("notacloud\n"))

	var choice string
	err := asker(&survey.Select{
		Message: "Cloud:",
		Options: []string{"AzureCloud", "AzureChinaCloud"},
	}, &choice)
	assert.ErrorContains(t, err, "not an allowed choice")
}
