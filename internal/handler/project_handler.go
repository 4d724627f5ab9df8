package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectManager is the project surface consumed by the handler.
type ProjectManager interface {
	Create(ctx context.Context, in service.CreateProjectInput) (*model.Project, error)
	GetAll(ctx context.Context) ([]model.Project, error)
	AddUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Project, error)
	GetWithTasksAndUsers(ctx context.Context, projectID uuid.UUID) (*service.ProjectDetail, error)
	GetTasks(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, in service.UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ ProjectManager = (*service.ProjectService)(nil)

type ProjectHandler struct {
	projects ProjectManager
	tasks    TaskManager
}

func NewProjectHandler(projects ProjectManager, tasks TaskManager) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		tasks:    tasks,
	}
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ProjectTaskRequest — создание задачи внутри проекта; проект берется из URL
type ProjectTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  string     `json:"assigned_to" binding:"omitempty,uuid"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ProjectResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	OwnerID     string         `json:"owner_id"`
	CreatedAt   string         `json:"created_at"`
	Members     []UserResponse `json:"members,omitempty"`
}

// ProjectDetailResponse — агрегированное представление проекта: участники
// и задачи, без какого-либо хранимого списка задач на самом проекте
type ProjectDetailResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	OwnerID     string         `json:"owner_id"`
	CreatedAt   string         `json:"created_at"`
	Users       []UserResponse `json:"users"`
	Tasks       []TaskResponse `json:"tasks"`
}

func newProjectResponse(project *model.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          project.ID.String(),
		Title:       project.Title,
		Description: project.Description,
		OwnerID:     project.OwnerID.String(),
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
	}

	if len(project.Members) > 0 {
		resp.Members = make([]UserResponse, len(project.Members))
		for i, member := range project.Members {
			resp.Members[i] = UserResponse{
				ID:    member.ID.String(),
				Email: member.Email,
				Name:  member.Name,
			}
		}
	}

	return resp
}

// Create создает новый проект для аутентифицированного пользователя
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	ownerID, ok := userID.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, newProjectResponse(project))
}

// GetAll возвращает все проекты
func (h *ProjectHandler) GetAll(c *gin.Context) {
	projects, err := h.projects.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, len(projects))
	for i := range projects {
		response[i] = newProjectResponse(&projects[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByID возвращает проект с участниками и задачами
func (h *ProjectHandler) GetByID(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	detail, err := h.projects.GetWithTasksAndUsers(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	response := ProjectDetailResponse{
		ID:          detail.Project.ID.String(),
		Title:       detail.Project.Title,
		Description: detail.Project.Description,
		OwnerID:     detail.Project.OwnerID.String(),
		CreatedAt:   detail.Project.CreatedAt.Format(time.RFC3339),
		Users:       make([]UserResponse, len(detail.Project.Members)),
		Tasks:       make([]TaskResponse, len(detail.Tasks)),
	}
	for i, member := range detail.Project.Members {
		response.Users[i] = UserResponse{
			ID:    member.ID.String(),
			Email: member.Email,
			Name:  member.Name,
		}
	}
	for i := range detail.Tasks {
		response.Tasks[i] = newTaskResponse(&detail.Tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// AddUser добавляет пользователя в участники проекта
func (h *ProjectHandler) AddUser(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	project, err := h.projects.AddUser(c.Request.Context(), projectID, memberID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add user to project"})
		}
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(project))
}

// CreateTask создает задачу в проекте из URL
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req ProjectTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	in := service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		ProjectID:   projectID,
	}

	if req.AssignedTo != "" {
		assigneeID, err := uuid.Parse(req.AssignedTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
			return
		}
		in.AssignedTo = &assigneeID
	}

	task, err := h.tasks.Create(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		}
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// GetTasks возвращает задачи существующего проекта
func (h *ProjectHandler) GetTasks(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	tasks, err := h.projects.GetTasks(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		}
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// Update обновляет только переданные поля проекта
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), projectID, service.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		}
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(project))
}

// Delete удаляет проект; задачи проекта не затрагиваются
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	if err := h.projects.Delete(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
