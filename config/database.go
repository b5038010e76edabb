package config

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB opens the booking database. Postgres when DB_URL is set,
// otherwise a local SQLite file — the deployment this grew out of ran
// on a single SQLite file and small installs still do.
//
// TranslateError is on so the service layer can match
// gorm.ErrDuplicatedKey regardless of which driver is underneath.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}

	if cfg.DBURL != "" {
		return gorm.Open(postgres.Open(cfg.DBURL), gcfg)
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
	if err != nil {
		return nil, err
	}

	// SQLite tolerates one writer at a time; serializing connections
	// avoids spurious "database is locked" errors under concurrent
	// submissions.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
