package blocker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSyncer(t *testing.T) {
	stores := setupTestStores(t, "")

	_, err := NewSyncer(nil, stores.versions, stores.listFile, 0)
	require.ErrorIs(t, err, ErrNilStore)

	_, err = NewSyncer(stores.domains, nil, stores.listFile, 0)
	require.ErrorIs(t, err, ErrNilStore)

	_, err = NewSyncer(stores.domains, stores.versions, "", 0)
	require.ErrorIs(t, err, ErrEmptyListFile)
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	stores := setupTestStores(t, "mailinator.com\n\n  yopmail.com \ntempmail.com\nmailinator.com\n")
	syncer := stores.syncer(t)

	needed, err := syncer.NeedsSync(ctx)
	require.NoError(t, err)
	assert.True(t, needed)

	require.NoError(t, syncer.Sync(ctx))

	list, err := stores.domains.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mailinator.com", "yopmail.com", "tempmail.com"}, list)

	version, err := stores.versions.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, DBVersion, version)

	needed, err = syncer.NeedsSync(ctx)
	require.NoError(t, err)
	assert.False(t, needed)
}

func TestSyncIsIdempotent(t *testing.T) {
	ctx := context.Background()
	stores := setupTestStores(t, "mailinator.com\nyopmail.com\ntempmail.com\n")
	syncer := stores.syncer(t)

	require.NoError(t, syncer.Sync(ctx))

	first, err := stores.domains.List(ctx)
	require.NoError(t, err)

	require.NoError(t, syncer.Sync(ctx))

	second, err := stores.domains.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, first, second)

	count, err := stores.domains.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSyncWithoutListFile(t *testing.T) {
	ctx := context.Background()
	stores := setupTestStores(t, "")

	require.NoError(t, stores.syncer(t).Sync(ctx))

	exists, err := stores.domains.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "no table without a list")

	version, err := stores.versions.Version(ctx)
	require.NoError(t, err)
	assert.Empty(t, version)
}

func TestSyncStoreFailure(t *testing.T) {
	ctx := context.Background()
	stores := setupTestStores(t, "mailinator.com\n")

	sqlDB, err := stores.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	require.Error(t, stores.syncer(t).Sync(ctx))
}
