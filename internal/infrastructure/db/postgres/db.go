// Package postgres holds the GORM persistence layer. The *gorm.DB handle
// is constructed once at startup and injected; nothing in this package
// keeps global state.
package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Open(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AccountModel{},
		&ListingModel{},
	)
}
