package service

import (
	"context"
	"time"

	"taskflow/internal/logging"
	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/google/uuid"
)

// CreateTaskInput carries the fields of a task-creation request.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	DueDate     *time.Time
	ProjectID   uuid.UUID
	AssignedTo  *uuid.UUID
}

// UpdateTaskInput carries a partial update: nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *time.Time
	AssignedTo  *uuid.UUID
}

type TaskService struct {
	tasks    TaskStore
	projects ProjectStore
	users    UserDirectory
	logger   logging.Logger
}

func NewTaskService(tasks TaskStore, projects ProjectStore, users UserDirectory, logger logging.Logger) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
		users:    users,
		logger:   logger,
	}
}

// Create persists a new task. The referenced project must exist, on every
// creation path; an initial assignee, when given, must name an existing user.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}

	if in.AssignedTo != nil {
		user, err := s.users.GetByID(ctx, *in.AssignedTo)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, repository.ErrUserNotFound
		}
	}

	status := in.Status
	if status == "" {
		status = model.StatusNotStarted
	}

	task := &model.Task{
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		DueDate:     in.DueDate,
		AssignedTo:  in.AssignedTo,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "task created", "task_id", task.ID.String(), "project_id", in.ProjectID.String())
	return task, nil
}

func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	return s.tasks.GetByProjectID(ctx, projectID)
}

func (s *TaskService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	return s.tasks.GetByAssignee(ctx, userID)
}

// Update merges only the supplied fields into the task and returns the
// updated record.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, in UpdateTaskInput) (*model.Task, error) {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.DueDate != nil {
		updates["due_date"] = *in.DueDate
	}
	if in.AssignedTo != nil {
		user, err := s.users.GetByID(ctx, *in.AssignedTo)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, repository.ErrUserNotFound
		}
		updates["assigned_to"] = *in.AssignedTo
	}

	if len(updates) > 0 {
		if err := s.tasks.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tasks.Delete(ctx, id)
}
