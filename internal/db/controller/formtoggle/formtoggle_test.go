package formtoggle

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/debcf/disposable-email-blocker/internal/db/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.FormToggle{}))

	store, err := New(db)
	require.NoError(t, err)

	return store
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	require.NoError(t, store.SetToggle(ctx, "42", ValueOn))
	require.NoError(t, store.SetToggle(ctx, "43", ValueOff))

	testCases := []struct {
		name     string
		formID   string
		expected string
	}{
		{name: "enabled form", formID: "42", expected: ValueOn},
		{name: "disabled form", formID: "43", expected: ValueOff},
		{name: "unknown form", formID: "44", expected: ""},
		{name: "empty form id", formID: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := store.Toggle(ctx, tc.formID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestSetToggle(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		formID        string
		values        []string
		expectedError error
		expected      string
	}{
		{
			name:          "empty form id",
			formID:        "",
			values:        []string{ValueOn},
			expectedError: ErrFormIDEmpty,
		},
		{
			name:          "invalid value",
			formID:        "42",
			values:        []string{"yes"},
			expectedError: ErrInvalidToggleValue,
		},
		{
			name:     "switch on",
			formID:   "42",
			values:   []string{ValueOn},
			expected: ValueOn,
		},
		{
			name:     "switch on then off",
			formID:   "42",
			values:   []string{ValueOn, ValueOff},
			expected: ValueOff,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := setupTestStore(t)

			var err error
			for _, v := range tc.values {
				err = store.SetToggle(ctx, tc.formID, v)
			}

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)

			value, err := store.Toggle(ctx, tc.formID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)

			var count int64
			store.db.Model(&models.FormToggle{}).Where(formIDQueryPattern, tc.formID).Count(&count)
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	require.ErrorIs(t, store.Delete(ctx, ""), ErrFormIDEmpty)

	require.NoError(t, store.SetToggle(ctx, "42", ValueOn))
	require.NoError(t, store.Delete(ctx, "42"))

	value, err := store.Toggle(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, value)
}
