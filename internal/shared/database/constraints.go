package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints applies the constraints the application relies on for
// correctness under concurrency. The unique index on email is the last line
// of defense against two registrations racing the same address past the
// pre-insert existence check.
func MigrateConstraints(db *gorm.DB) error {
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_registrants_email
		ON registrants (email);
	`).Error
}
