package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/NerdBoi008/care-connect/models"
)

// Migrate applies the schema for the portal's records.
func Migrate(database *gorm.DB) error {
	err := database.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Appointment{},
	)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
