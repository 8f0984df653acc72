package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datecourse/internal/model"
)

const originalYAML = `
id: c1
title: Seongsu afternoon
estimated_cost_min: 30000
estimated_cost_max: 50000
places:
  - place: {id: P1, name: Cafe}
    time_slot: {id: lunch}
    suggested_duration: 60
  - place: {id: P2, name: Gallery}
    time_slot: {id: afternoon}
    suggested_duration: 90
`

const editedJSON = `{
  "id": "c1",
  "places": [
    {"place": {"id": "P1"}, "time_slot": {"id": "lunch"}, "suggested_duration": 60},
    {"place": {"id": "P2"}, "time_slot": {"id": "afternoon"}, "suggested_duration": 120},
    {"place": {"id": "P3"}, "time_slot": {"id": "dinner"}, "suggested_duration": 30}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDiffCmd(t *testing.T) {
	out, err := run(t, "diff", writeFile(t, "a.yaml", originalYAML), writeFile(t, "b.json", editedJSON))
	require.NoError(t, err)

	var d model.CourseDiff
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, []string{"P3"}, d.PlacesAdded)
	assert.Equal(t, model.DurationChange{From: 90, To: 120}, d.TimeAllocationsChanged["P2"])
	assert.Equal(t, model.DurationChange{From: 150, To: 210}, d.TotalDurationChanged)
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, "validate", writeFile(t, "a.yaml", originalYAML))
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_valid": true, "errors": []}`, out)

	single := "places:\n  - place: {id: P1}\n    suggested_duration: 60\n"
	out, err = run(t, "validate", writeFile(t, "s.yaml", single))
	assert.ErrorIs(t, err, errInvalid)
	assert.JSONEq(t, `{"is_valid": false, "errors": ["course needs at least 2 places"]}`, out)
}

func TestSuggestCmd(t *testing.T) {
	out, err := run(t, "suggest", writeFile(t, "a.yaml", originalYAML), "--budget", "40000", "--require", "P1,P9")
	require.NoError(t, err)
	assert.JSONEq(t, `{"suggestions": ["course may exceed budget by up to 10000", "required place P9 is missing"]}`, out)
}

func TestLoadCourse_Missing(t *testing.T) {
	_, err := run(t, "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
