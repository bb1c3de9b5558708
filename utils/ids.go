package utils

import (
	"github.com/google/uuid"
)

// IDFunc produces a unique identifier for a new record
type IDFunc func() string

// GenerateID returns a new random (version 4) UUID string
func GenerateID() string {
	return uuid.NewString()
}
