package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelai/internal/planner"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "-d", "Atlantis", "-n", "3", "-b", "budget", "--seed", "9")
	require.NoError(t, err)

	var it planner.Itinerary
	require.NoError(t, json.Unmarshal([]byte(out), &it))
	assert.Len(t, it.Days, 3)
	assert.Equal(t, 120, it.EstimatedCost.Total)

	again, err := run(t, "generate", "-d", "Atlantis", "-n", "3", "-b", "budget", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateCommand_Cities(t *testing.T) {
	out, err := run(t, "generate", "-d", "Japan", "-n", "2", "-c", "Tokyo", "-c", "Kyoto", "--compact")
	require.NoError(t, err)
	assert.Contains(t, out, `"city":"Kyoto"`)
}

func TestGenerateCommand_Errors(t *testing.T) {
	_, err := run(t, "generate")
	assert.Error(t, err)

	_, err = run(t, "generate", "-d", "Paris", "-b", "cheap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown budget tier")
}

func TestCitiesCommand(t *testing.T) {
	out, err := run(t, "cities", "--country", "Egypt")
	require.NoError(t, err)
	assert.Equal(t, "Cairo\nAlexandria\nLuxor\nAswan\nHurghada\nSharm El Sheikh\n", out)
}

func TestDestinationsCommand(t *testing.T) {
	out, err := run(t, "destinations")
	require.NoError(t, err)
	assert.Equal(t, "new york\nparis\ntokyo\n", out)
}
