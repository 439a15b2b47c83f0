package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/NerdBoi008/care-connect/utils"
)

// User is the identity record behind a patient login. Exactly one exists per
// email address.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = utils.NewID()
	}
	return nil
}
