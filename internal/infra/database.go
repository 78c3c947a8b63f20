package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DrouetDanilo/Inventia/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// schema. AutoMigrate is enough here: the schema is small and owned by this
// service alone.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.CatalogoProducto{},
		&model.Producto{},
		&model.Venta{},
		&model.Distribuidor{},
		&model.Plan{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
