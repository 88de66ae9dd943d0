package database

import (
	"cadastro/internal/registrants"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&registrants.Registrant{},
	)
}
