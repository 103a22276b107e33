package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsCommandTable(t *testing.T) {
	output, err := executeCommand(newRootCmd(), "options")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.True(t, strings.HasPrefix(lines[0], "FIELD"))
	require.Contains(t, output, "Merriweather")
	require.Contains(t, output, "1394px")

	var defaults int
	for _, line := range lines[1:] {
		if strings.HasSuffix(strings.TrimSpace(line), "*") {
			defaults++
		}
	}
	require.Equal(t, 5, defaults, "one default per field")
}

func TestOptionsCommandSingleField(t *testing.T) {
	output, err := executeCommand(newRootCmd(), "options", "font-size")
	require.NoError(t, err)

	require.Contains(t, output, "25px")
	require.NotContains(t, output, "Merriweather")
}

func TestOptionsCommandUnknownField(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "options", "line_height")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown article field")
}

func TestOptionsCommandJSON(t *testing.T) {
	output, err := executeCommand(newRootCmd(), "options", "--json", "content_width")
	require.NoError(t, err)

	var payload []fieldJSON
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.Len(t, payload, 1)
	require.Equal(t, "content_width", payload[0].Field)
	require.Equal(t, "1394px", payload[0].Default)
	require.Len(t, payload[0].Options, 2)
}

func TestOptionsCommandUsesConfig(t *testing.T) {
	path := writeConfig(t, `options:
  content_width:
    - title: Full
      value: 1600px
defaults:
  content_width: 1600px
`)

	output, err := executeCommand(newRootCmd(), "--config", path, "options", "content_width")
	require.NoError(t, err)
	require.Contains(t, output, "Full")
	require.NotContains(t, output, "Narrow")
}
