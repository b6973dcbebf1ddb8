package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rentledger-backend/internal/config"
	"rentledger-backend/internal/models"
)

// Init opens the Postgres connection and migrates the four collections.
// TranslateError is on so unique-key violations surface as
// gorm.ErrDuplicatedKey and can be mapped to 409 centrally.
func Init(cfg *config.Config) *gorm.DB {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if cfg.GormLogMode {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}

	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.RentLedgerEntry{},
		&models.AdvanceRecord{},
		&models.Expense{},
	); err != nil {
		logrus.WithError(err).Fatal("auto-migration failed")
	}

	logrus.Info("database connected, migration complete")
	return db
}
