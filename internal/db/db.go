// Package db opens the profile database with the configured gorm engine.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/go-randomstring/randomstring/internal/config"
	"github.com/go-randomstring/randomstring/internal/db/dsn"
	"github.com/go-randomstring/randomstring/internal/db/models"
)

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.DBEngineMySQL:
		return gormmysql.Open(dsn.Create(cfg)), nil
	case config.DBEnginePostgres:
		return gormpostgres.Open(dsn.Postgres(cfg)), nil
	case config.DBEngineSQLite, "":
		return sqlite.Open(dsn.SQLite(cfg)), nil
	default:
		return nil, errors.Wrapf(config.ErrUnknownDBEngine, "engine %q", cfg.DB.GormEngine)
	}
}

// Open connects to the database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	if cfg.DevMode {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	// an in-memory sqlite database lives only as long as its connection
	if dialector.Name() == config.DBEngineSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to access sql database")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	if err = db.AutoMigrate(&models.Profile{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	log.Debug().Str("engine", dialector.Name()).Msg("database ready")

	return db, nil
}
