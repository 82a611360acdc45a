package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBlob(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingFileNotFound", func(t *testing.T) {
		blob := NewFileBlob(filepath.Join(t.TempDir(), "tickets.json"))
		data, found, err := blob.Read(ctx)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, data)
	})

	t.Run("WriteThenRead", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		blob := NewFileBlob(path)

		require.NoError(t, blob.Write(ctx, []byte(`[{"id":"a"}]`)))
		data, found, err := blob.Read(ctx)
		require.NoError(t, err)
		assert.True(t, found)
		assert.JSONEq(t, `[{"id":"a"}]`, string(data))
	})

	t.Run("WriteReplacesContents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		blob := NewFileBlob(path)

		require.NoError(t, blob.Write(ctx, []byte(`["old"]`)))
		require.NoError(t, blob.Write(ctx, []byte(`["new"]`)))

		data, _, err := blob.Read(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, `["new"]`, string(data))
	})

	t.Run("WriteLeavesNoTempFiles", func(t *testing.T) {
		dir := t.TempDir()
		blob := NewFileBlob(filepath.Join(dir, "tickets.json"))
		require.NoError(t, blob.Write(ctx, []byte("[]")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "tickets.json", entries[0].Name())
	})

	t.Run("PingChecksDirectory", func(t *testing.T) {
		blob := NewFileBlob(filepath.Join(t.TempDir(), "tickets.json"))
		assert.NoError(t, blob.Ping(ctx))

		missing := NewFileBlob(filepath.Join(t.TempDir(), "gone", "tickets.json"))
		assert.Error(t, missing.Ping(ctx))
	})
}
