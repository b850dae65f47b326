package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_RequiresFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.ErrorContains(t, err, `required flag(s) "file" not set`)
}

func TestRootCmd_MissingExport(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--file", t.TempDir() + "/missing.json", "--config", t.TempDir()})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.ErrorContains(t, err, "error parsing export")
	assert.Contains(t, out.String(), "Starting import from file")
	assert.NotContains(t, out.String(), "Parsed")
}
