package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleksw/profgen"
	"github.com/aleksw/profgen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *profgen.ProfileRecord {
	return &profgen.ProfileRecord{
		Name:       "Ada Example",
		Headline:   "Engineer",
		ProfileURL: "https://example.com/in/ada/",
		ScrapedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Contact:    profgen.ContactInfo{Email: "ada@example.com"},
	}
}

func TestRawStore(t *testing.T) {
	t.Parallel()

	t.Run("save commit load round trip", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewRawStore(dir)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, testRecord()))

		// Nothing committed yet.
		_, err := os.Stat(store.Path())
		require.True(t, os.IsNotExist(err))

		require.NoError(t, store.Commit())

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Ada Example", loaded.Name)
		assert.Equal(t, "ada@example.com", loaded.Contact.Email)
	})

	t.Run("committed file is owner only", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		store := fs.NewRawStore(dir)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, testRecord()))
		require.NoError(t, store.Commit())

		info, err := os.Stat(store.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		dirInfo, err := os.Stat(dir)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
	})

	t.Run("abort discards the pending write", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewRawStore(dir)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, testRecord()))
		require.NoError(t, store.Abort())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)

		// Abort with nothing pending is a no-op.
		require.NoError(t, store.Abort())
	})

	t.Run("load missing file", func(t *testing.T) {
		t.Parallel()

		store := fs.NewRawStore(t.TempDir())
		_, err := store.Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, profgen.ENOTFOUND, profgen.ErrorCode(err))
	})

	t.Run("load rejects a tampered record", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewRawStore(dir)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, testRecord()))
		require.NoError(t, store.Commit())

		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		var env map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &env))
		env["record"] = json.RawMessage(`{"name":"Mallory"}`)
		tampered, err := json.Marshal(env)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(store.Path(), tampered, 0o600))

		_, err = store.Load(ctx)
		require.Error(t, err)
		assert.Equal(t, profgen.EINVALID, profgen.ErrorCode(err))
		assert.Contains(t, profgen.ErrorMessage(err), "checksum")
	})

	t.Run("load rejects garbage", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewRawStore(dir)
		require.NoError(t, os.WriteFile(store.Path(), []byte("not json"), 0o600))

		_, err := store.Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, profgen.EINVALID, profgen.ErrorCode(err))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewRawStore(dir)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, testRecord()))
		require.NoError(t, store.Commit())
		require.NoError(t, store.Delete())
		require.NoError(t, store.Delete())

		_, err := store.Load(ctx)
		assert.Equal(t, profgen.ENOTFOUND, profgen.ErrorCode(err))
	})

	t.Run("save rejects an invalid record", func(t *testing.T) {
		t.Parallel()

		store := fs.NewRawStore(t.TempDir())
		err := store.Save(context.Background(), &profgen.ProfileRecord{})
		require.Error(t, err)
		assert.Equal(t, profgen.EINVALID, profgen.ErrorCode(err))
	})
}

func TestRecordHash(t *testing.T) {
	t.Parallel()

	h1, err := fs.RecordHash(testRecord())
	require.NoError(t, err)
	require.Len(t, h1, 16)

	h2, err := fs.RecordHash(testRecord())
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	other := testRecord()
	other.Name = "Grace Example"
	h3, err := fs.RecordHash(other)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}
