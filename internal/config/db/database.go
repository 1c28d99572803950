package db

import (
	"github.com/linskybing/formkit/internal/config"
	"github.com/linskybing/formkit/internal/domain/form"
	"github.com/linskybing/formkit/internal/domain/record"
	"github.com/linskybing/formkit/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// GormConfig is shared by the server, the seed command and the integration
// tests so that duplicate-key errors surface as gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.NewGormLogger(),
	}
}

func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(config.DSN()), GormConfig())
	if err != nil {
		logger.Fatalf("Failed to connect to DB: %v", err)
	}
	logger.Infof("Database connected")
}

// Migrate creates or updates the forms, source_records and source_data tables.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&form.Form{},
		&record.SourceRecord{},
		&record.SourceData{},
	)
}
