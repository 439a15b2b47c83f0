package utils

import "github.com/google/uuid"

// NewID generates a unique identifier for records and uploaded files.
func NewID() string {
	return uuid.New().String()
}
