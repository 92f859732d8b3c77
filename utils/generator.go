package utils

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns an opaque unique identifier for a stored row.
func NewID() string {
	return uuid.NewString()
}

// Now returns the creation timestamp stamped onto new rows.
func Now() time.Time {
	return time.Now().UTC()
}
