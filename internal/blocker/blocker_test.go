package blocker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/debcf/disposable-email-blocker/internal/db/controller/domain"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/formtoggle"
	"github.com/debcf/disposable-email-blocker/internal/db/controller/syncversion"
	"github.com/debcf/disposable-email-blocker/internal/db/models"
)

type testStores struct {
	db       *gorm.DB
	domains  *domain.Repository
	versions *syncversion.Store
	toggles  *formtoggle.Store
	listFile string
}

// setupTestStores opens an in-memory database and writes content as the domain list.
// An empty content leaves the list file missing.
func setupTestStores(t *testing.T, content string) *testStores {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Setting{}, &models.FormToggle{}))

	domains, err := domain.New(db)
	require.NoError(t, err)

	toggles, err := formtoggle.New(db)
	require.NoError(t, err)

	listFile := filepath.Join(t.TempDir(), "domains.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(listFile, []byte(content), 0o600))
	}

	return &testStores{
		db:       db,
		domains:  domains,
		versions: syncversion.New(db),
		toggles:  toggles,
		listFile: listFile,
	}
}

func (s *testStores) syncer(t *testing.T) *Syncer {
	t.Helper()

	syncer, err := NewSyncer(s.domains, s.versions, s.listFile, 2)
	require.NoError(t, err)

	return syncer
}

func (s *testStores) validator(t *testing.T) *Validator {
	t.Helper()

	validator, err := NewValidator(s.toggles, s.domains, s.listFile)
	require.NoError(t, err)

	return validator
}

func (s *testStores) enable(t *testing.T, formID string) {
	t.Helper()

	require.NoError(t, s.toggles.SetToggle(context.Background(), formID, formtoggle.ValueOn))
}
