package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRun(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("GREET_NAME", "Alice")

	var out bytes.Buffer
	require.NoError(t, run(&out))

	assert.Equal(t, "Hello, Alice!\n", out.String())
}

func TestRun_DefaultName(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("GREET_NAME", "")

	var out bytes.Buffer
	require.NoError(t, run(&out))

	assert.Equal(t, "Hello, World!\n", out.String())
}

func TestRun_ConfigError(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	var out bytes.Buffer
	err := run(&out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Empty(t, out.String())
}

func TestRun_WriteError(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("GREET_NAME", "Bob")

	err := run(failingWriter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}
