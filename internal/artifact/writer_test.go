package artifact_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/chicago-health-atlas/internal/artifact"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriter_WriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "latest")
	w := artifact.NewWriter(dir, discardLogger())

	artifacts := []artifact.Artifact{
		{Name: "a.png", Body: []byte{0x89, 'P', 'N', 'G'}},
		{Name: "b.html", Body: []byte("<html></html>")},
	}
	require.NoError(t, w.WriteAll(artifacts))

	got, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, artifacts[0].Body, got)

	got, err = os.ReadFile(filepath.Join(dir, "b.html"))
	require.NoError(t, err)
	assert.Equal(t, artifacts[1].Body, got)
}

func TestWriter_WriteAllOverwrites(t *testing.T) {
	dir := t.TempDir()
	w := artifact.NewWriter(dir, discardLogger())

	require.NoError(t, w.WriteAll([]artifact.Artifact{{Name: "a.txt", Body: []byte("first")}}))
	require.NoError(t, w.WriteAll([]artifact.Artifact{{Name: "a.txt", Body: []byte("second")}}))

	got, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestWriter_DirCreationFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	w := artifact.NewWriter(filepath.Join(blocker, "nested"), discardLogger())
	err := w.WriteAll([]artifact.Artifact{{Name: "a.txt", Body: []byte("x")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output directory")
}
