package service

import (
	"context"

	"taskflow/internal/logging"
	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/google/uuid"
)

// CreateProjectInput carries the fields of a project-creation request.
type CreateProjectInput struct {
	Title       string
	Description string
	OwnerID     uuid.UUID
}

// UpdateProjectInput carries a partial update: nil fields are left unchanged.
type UpdateProjectInput struct {
	Title       *string
	Description *string
}

// ProjectDetail is the aggregate view of a project: the record with
// resolved members plus every task referencing it. The two reads are
// independent; Task.ProjectID is the authoritative relation.
type ProjectDetail struct {
	Project model.Project
	Tasks   []model.Task
}

type ProjectService struct {
	projects ProjectStore
	tasks    TaskStore
	users    UserDirectory
	logger   logging.Logger
}

func NewProjectService(projects ProjectStore, tasks TaskStore, users UserDirectory, logger logging.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		tasks:    tasks,
		users:    users,
		logger:   logger,
	}
}

// Create persists a new project. The creator becomes its first member.
func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	project := &model.Project{
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	if err := s.projects.AddMember(ctx, project.ID, in.OwnerID); err != nil {
		// Проект уже сохранен, но остался без участников
		s.logger.Error(ctx, "project created without owner membership",
			"project_id", project.ID.String(),
			"owner_id", in.OwnerID.String(),
			"error", err.Error(),
		)
		return nil, err
	}

	s.logger.Debug(ctx, "project created", "project_id", project.ID.String())
	return project, nil
}

func (s *ProjectService) GetAll(ctx context.Context) ([]model.Project, error) {
	return s.projects.GetAll(ctx)
}

// AddUser adds a user to the project membership set. Adding an existing
// member is a no-op.
func (s *ProjectService) AddUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Project, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, repository.ErrUserNotFound
	}

	if err := s.projects.AddMember(ctx, projectID, userID); err != nil {
		return nil, err
	}

	return s.projects.GetByIDWithMembers(ctx, projectID)
}

// GetWithTasksAndUsers composes the aggregate view: the project with
// members resolved, and all tasks whose project reference matches.
func (s *ProjectService) GetWithTasksAndUsers(ctx context.Context, projectID uuid.UUID) (*ProjectDetail, error) {
	project, err := s.projects.GetByIDWithMembers(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &ProjectDetail{Project: *project, Tasks: tasks}, nil
}

// GetTasks returns the tasks of an existing project.
func (s *ProjectService) GetTasks(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.tasks.GetByProjectID(ctx, projectID)
}

// Update merges only the supplied fields into the project and returns the
// updated record.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}

	if len(updates) > 0 {
		if err := s.projects.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.projects.Delete(ctx, id)
}
