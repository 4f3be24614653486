// Package repositories provides the data access layer over the ledger store.
// It owns the gorm connection setup and all query logic against the
// relational schema.
package repositories

import (
	"log"
	"os"
	"time"

	"rebelsrev/internal/config"
	"rebelsrev/internal/migration"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConfig holds database connection pool configuration.
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DBConfigFromEnv builds pool settings from the environment.
func DBConfigFromEnv() DBConfig {
	return DBConfig{
		MaxIdleConns:    config.GetIntEnv("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:    config.GetIntEnv("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetime: config.GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime: config.GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
	}
}

// OpenDB connects to the ledger store and runs pending migrations. Postgres
// is used when DB_HOST is configured; otherwise it falls back to a local
// SQLite file for development. The returned handle is the only shared
// mutable resource in the process and is passed explicitly to every
// component.
func OpenDB(cfg DBConfig) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	var (
		db  *gorm.DB
		err error
	)
	if host := config.GetEnv("DB_HOST", ""); host != "" {
		dsn := "host=" + host +
			" user=" + config.GetEnv("DB_USER", "postgres") +
			" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
			" dbname=" + config.GetEnv("DB_NAME", "rebelsrev") +
			" port=" + config.GetEnv("DB_PORT", "5432") +
			" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	} else {
		path := config.GetEnv("SQLITE_PATH", "rebelsrev.db")
		log.Printf("DB_HOST not set, falling back to sqlite at %s", path)
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs schema migrations against the given handle.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migration.All())
	return m.Migrate()
}

// CloseDB closes the underlying sql.DB of a gorm handle.
func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("failed to get database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close database connection: %v", err)
	}
}
