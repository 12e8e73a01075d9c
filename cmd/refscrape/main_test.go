package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main backed by a temporary database.
func newTestMain(t *testing.T) *Main {
	t.Helper()

	m := NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

// runCLI runs the CLI and returns captured stdout.
func runCLI(t *testing.T, m *Main, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestCLI_Map(t *testing.T) {
	t.Parallel()

	t.Run("add then list round-trips a mapping", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		out, err := runCLI(t, m, "map", "add", "mal/anime", "5114", "Fullmetal Alchemist: Brotherhood")
		require.NoError(t, err)
		assert.Contains(t, out, "Mapped mal/anime:5114")

		out, err = runCLI(t, m, "map", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "mal/anime:5114")
		assert.Contains(t, out, "Fullmetal Alchemist: Brotherhood")
	})

	t.Run("list is empty without mappings", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		out, err := runCLI(t, m, "map", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "No mappings found")
	})

	t.Run("duplicate add fails", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		_, err := runCLI(t, m, "map", "add", "mal/anime", "1")
		require.NoError(t, err)

		_, err = runCLI(t, m, "map", "add", "mal/anime", "1")
		require.Error(t, err)
	})
}

func TestCLI_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("resolves a mapped URL", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		_, err := runCLI(t, m, "map", "add", "mal/anime", "5114", "FMA:B")
		require.NoError(t, err)

		out, err := runCLI(t, m, "resolve", "https://myanimelist.net/anime/5114/title")
		require.NoError(t, err)
		assert.Contains(t, out, "mal/anime:5114")
		assert.Contains(t, out, "FMA:B")
	})

	t.Run("reports a miss without failing", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		out, err := runCLI(t, m, "resolve", "https://myanimelist.net/anime/99999/title")
		require.NoError(t, err)
		assert.Contains(t, out, "No mapping found.")
	})
}

func TestCLI_NoCommand(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	_, err := runCLI(t, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
