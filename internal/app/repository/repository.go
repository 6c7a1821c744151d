package repository

import (
	"backend/internal/app/ds"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.Role{},
		&ds.User{},
		&ds.Module{},
		&ds.Permission{},
		&ds.RolePermission{},
		&ds.Client{},
		&ds.Product{},
		&ds.Tax{},
		&ds.Invoice{},
		&ds.InvoiceItem{},
		&ds.Quotation{},
		&ds.QuotationItem{},
		&ds.JobFile{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
