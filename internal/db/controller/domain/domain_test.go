package domain

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func setupTestRepository(t *testing.T, prefix string) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{TablePrefix: prefix},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo, err := New(db)
	require.NoError(t, err)

	return repo
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestTableLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepository(t, "cf7_")

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.EnsureTable(ctx))
	require.NoError(t, repo.EnsureTable(ctx))

	exists, err = repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, repo.db.Migrator().HasTable("cf7_disposable_domains"))

	require.NoError(t, repo.Drop(ctx))
	require.NoError(t, repo.Drop(ctx))

	exists, err = repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		batches   [][]string
		batchSize int
		expected  []string
	}{
		{
			name:     "nothing to write",
			batches:  [][]string{nil},
			expected: []string{},
		},
		{
			name:      "single batch",
			batches:   [][]string{{"mailinator.com", "yopmail.com"}},
			batchSize: 10,
			expected:  []string{"mailinator.com", "yopmail.com"},
		},
		{
			name:      "several small batches",
			batches:   [][]string{{"a.test", "b.test", "c.test", "d.test", "e.test"}},
			batchSize: 2,
			expected:  []string{"a.test", "b.test", "c.test", "d.test", "e.test"},
		},
		{
			name: "writing twice keeps one row per domain",
			batches: [][]string{
				{"mailinator.com", "yopmail.com"},
				{"mailinator.com", "yopmail.com"},
			},
			expected: []string{"mailinator.com", "yopmail.com"},
		},
		{
			name: "second run adds new domains only",
			batches: [][]string{
				{"mailinator.com"},
				{"mailinator.com", "tempmail.com"},
			},
			expected: []string{"mailinator.com", "tempmail.com"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := setupTestRepository(t, "")
			require.NoError(t, repo.EnsureTable(ctx))

			for _, batch := range tc.batches {
				n, err := repo.Upsert(ctx, batch, tc.batchSize)
				require.NoError(t, err)
				assert.Equal(t, len(batch), n)
			}

			count, err := repo.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tc.expected)), count)

			list, err := repo.List(ctx)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.expected, list)
		})
	}
}

func TestContains(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepository(t, "")

	require.NoError(t, repo.EnsureTable(ctx))
	_, err := repo.Upsert(ctx, []string{"mailinator.com", "disposable.test"}, 0)
	require.NoError(t, err)

	testCases := []struct {
		domain   string
		expected bool
	}{
		{domain: "mailinator.com", expected: true},
		{domain: "disposable.test", expected: true},
		{domain: "gmail.com", expected: false},
		{domain: "Mailinator.com", expected: false},
		{domain: "mailinator", expected: false},
		{domain: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.domain, func(t *testing.T) {
			found, err := repo.Contains(ctx, tc.domain)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func TestContainsWithoutTable(t *testing.T) {
	repo := setupTestRepository(t, "")

	_, err := repo.Contains(context.Background(), "mailinator.com")
	require.Error(t, err)
}
