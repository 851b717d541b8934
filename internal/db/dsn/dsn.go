// Package dsn builds gorm dialectors from the database configuration.
package dsn

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/debcf/disposable-email-blocker/internal/config"
)

// ErrUnknownEngine is returned for a GormEngine without a driver.
var ErrUnknownEngine = errors.New("unknown gorm engine")

// Create builds the mysql Data Source Name from the configuration.
func Create(dbCfg *config.DB) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.Name,
		dbCfg.Extras,
	)
}

// CreatePostgres builds the libpq keyword/value connection string.
func CreatePostgres(dbCfg *config.DB) string {
	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Name,
	)

	if dbCfg.Extras != "" {
		out += " " + dbCfg.Extras
	}

	return out
}

// Open returns the dialector for the configured engine.
// sqlite uses DB.Name as the file path, ":memory:" works for tests.
func Open(dbCfg *config.DB) (gorm.Dialector, error) {
	switch dbCfg.GormEngine {
	case "mysql":
		return gormmysql.Open(Create(dbCfg)), nil
	case "postgres":
		return postgres.Open(CreatePostgres(dbCfg)), nil
	case "sqlite", "":
		return sqlite.Open(dbCfg.Name), nil
	default:
		return nil, errors.Wrap(ErrUnknownEngine, dbCfg.GormEngine)
	}
}
