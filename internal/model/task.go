package model

import (
	"time"

	"github.com/google/uuid"
)

// Статусы задачи
const (
	StatusNotStarted = "NOT_STARTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Status      string `gorm:"not null;default:'NOT_STARTED';check:status IN ('NOT_STARTED', 'IN_PROGRESS', 'COMPLETED')"`
	DueDate     *time.Time
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Без внешнего ключа: удаление проекта не должно трогать его задачи,
	// они остаются со старым project_id.
	Project  Project `gorm:"foreignKey:ProjectID;constraint:-"`
	Assignee User    `gorm:"foreignKey:AssignedTo"`
}
