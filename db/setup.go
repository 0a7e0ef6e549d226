package db

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/colabora-dev/colabora/internal/models"
)

const DefaultSQLitePath = "colabora.sqlite3"

type Config struct {
	// DSN selects Postgres when set. Otherwise SQLitePath (or the default
	// file) selects the embedded store.
	DSN        string
	SQLitePath string
}

// Connect opens the database handle shared by every repository. There is no
// package-level singleton: callers receive the handle and inject it.
func Connect(cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if cfg.DSN != "" {
		dialector = postgres.Open(cfg.DSN)
	} else {
		path := cfg.SQLitePath
		if path == "" {
			path = DefaultSQLitePath
		}
		dialector = sqlite.Open(path)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{})

	if err != nil {
		return nil, err
	}

	if dialector.Name() == "sqlite" {
		// SQLite ships with foreign keys off; the join tables rely on
		// ON DELETE CASCADE. One connection keeps the embedded engine
		// single-writer.
		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	logger.Info("database connection established", zap.String("dialect", dialector.Name()))

	return conn, nil
}

// Migrate creates the schema and indexes once.
func Migrate(conn *gorm.DB) error {
	tables := []interface{}{
		&models.Organization{},
		&models.Hability{},
		&models.User{},
		&models.Project{},
		&models.UserHability{},
		&models.UserProject{},
		&models.ProjectHability{},
	}

	migrator := conn.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := conn.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
