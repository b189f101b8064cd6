package config

import (
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic("Failed to access database pool")
	}
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Minute)

	DB = db
}

// InstallOverlapGuard adds the commit-time guard against double booking: an
// exclusion constraint over (staff_id, [start_time, end_time)) for rows that
// still count for conflicts. Concurrent conflicting inserts then have exactly
// one winner regardless of application-level checks.
func InstallOverlapGuard() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		panic("Failed to install btree_gist extension: " + err.Error())
	}
	if err := DB.Exec(`ALTER TABLE appointments DROP CONSTRAINT IF EXISTS appointments_no_overlap`).Error; err != nil {
		panic("Failed to reset overlap constraint: " + err.Error())
	}
	if err := DB.Exec(`
		ALTER TABLE appointments
		ADD CONSTRAINT appointments_no_overlap
		EXCLUDE USING gist (
			staff_id WITH =,
			tstzrange(start_time, end_time, '[)') WITH &&
		)
		WHERE (status <> 'cancelled' AND deleted_at IS NULL)
	`).Error; err != nil {
		panic("Failed to install overlap constraint: " + err.Error())
	}
}
