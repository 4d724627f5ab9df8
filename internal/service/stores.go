package service

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/google/uuid"
)

// TaskStore owns task records and their lifecycle.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	GetByAssignee(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	AssignUser(ctx context.Context, taskID, userID uuid.UUID) error
	UnassignUser(ctx context.Context, taskID uuid.UUID) error
}

// ProjectStore owns project records and the membership set.
type ProjectStore interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetByIDWithMembers(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetAll(ctx context.Context) ([]model.Project, error)
	AddMember(ctx context.Context, projectID, userID uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserDirectory resolves a user identifier to a user record.
// GetByID returns (nil, nil) when the user does not exist.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

var (
	_ TaskStore     = (*repository.TaskRepository)(nil)
	_ ProjectStore  = (*repository.ProjectRepository)(nil)
	_ UserDirectory = (*repository.UserRepository)(nil)
)
