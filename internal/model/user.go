package model

import (
	"time"

	"github.com/google/uuid"
)

// User is created by registration and is immutable afterwards.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	Name           string
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
