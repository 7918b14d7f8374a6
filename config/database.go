package config

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/foundanand/trackmygov/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// sqlitePragmas turns on foreign keys and waits on a busy database instead
// of failing.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// ConnectDatabase opens the configured database without migrating it.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         NewGormLogger(200 * time.Millisecond),
		TranslateError: true,
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		db, err := gorm.Open(sqlite.Open(SQLiteDSN(cfg.SQLitePath)), gormCfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// One connection serializes writers; SQLite has no row locks.
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), gormCfg)
	}
}

// SQLiteDSN builds a DSN for path, or a private in-memory database when
// path is empty.
func SQLiteDSN(path string) string {
	if path == "" {
		return "file::memory:?" + sqlitePragmas
	}
	return fmt.Sprintf("file:%s?%s", path, sqlitePragmas)
}

// Migrate creates or updates the issue, note and upvote tables.
func Migrate(db *gorm.DB) error {
	for _, model := range models.MigrateModels {
		log.Debugf("migrating table: %T", model)
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}

// InitDB connects and migrates.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := ConnectDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// CloseDB releases the pool behind db.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormLogWriter routes gorm's SQL log through apex/log.
type gormLogWriter struct{}

func (gormLogWriter) Printf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func NewGormLogger(slow time.Duration) gormlogger.Interface {
	return gormlogger.New(gormLogWriter{}, gormlogger.Config{
		SlowThreshold:             slow,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
