package model

import (
	"time"

	"github.com/google/uuid"
)

// Project не хранит список задач: задачи ссылаются на проект через
// Task.ProjectID и выбираются запросом.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	OwnerID     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner User `gorm:"foreignKey:OwnerID"`

	// Строки членства удаляются вместе с проектом.
	Members []User `gorm:"many2many:project_members;constraint:OnDelete:CASCADE"`
}
