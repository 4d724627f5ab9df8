package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskManager is the task lifecycle surface consumed by the handler.
type TaskManager interface {
	Create(ctx context.Context, in service.CreateTaskInput) (*model.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, in service.UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssignmentWorkflow changes the task↔user assignment relation.
type AssignmentWorkflow interface {
	AssignTask(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error)
	UnassignTask(ctx context.Context, taskID uuid.UUID) (*model.Task, error)
}

var (
	_ TaskManager        = (*service.TaskService)(nil)
	_ AssignmentWorkflow = (*service.AssignmentService)(nil)
)

type TaskHandler struct {
	tasks      TaskManager
	assignment AssignmentWorkflow
}

func NewTaskHandler(tasks TaskManager, assignment AssignmentWorkflow) *TaskHandler {
	return &TaskHandler{
		tasks:      tasks,
		assignment: assignment,
	}
}

// CreateTaskRequest представляет запрос на создание задачи
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	DueDate     *time.Time `json:"due_date"`
	ProjectID   string     `json:"project_id" binding:"required,uuid"`
	AssignedTo  string     `json:"assigned_to" binding:"omitempty,uuid"`
}

// UpdateTaskRequest представляет частичное обновление задачи
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  *string    `json:"assigned_to" binding:"omitempty,uuid"`
}

// TaskResponse представляет ответ с данными задачи
type TaskResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssignedTo  *string `json:"assigned_to"`
	DueDate     *string `json:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func newTaskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID.String(),
		ProjectID:   task.ProjectID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}

	if task.AssignedTo != nil {
		assignedTo := task.AssignedTo.String()
		resp.AssignedTo = &assignedTo
	}

	if task.DueDate != nil {
		dueDate := task.DueDate.Format(time.RFC3339)
		resp.DueDate = &dueDate
	}

	return resp
}

// Create создает новую задачу; проект должен существовать
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
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

// GetByID получает задачу по ID
func (h *TaskHandler) GetByID(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.tasks.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// GetByProject получает все задачи проекта
func (h *TaskHandler) GetByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID format"})
		return
	}

	tasks, err := h.tasks.GetByProjectID(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByUser получает все задачи, назначенные пользователю
func (h *TaskHandler) GetByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	tasks, err := h.tasks.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// Update обновляет только переданные поля задачи
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	in := service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	}

	if req.AssignedTo != nil {
		assigneeID, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
			return
		}
		in.AssignedTo = &assigneeID
	}

	task, err := h.tasks.Update(c.Request.Context(), taskID, in)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete удаляет задачу
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// Assign назначает пользователя на задачу
func (h *TaskHandler) Assign(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	task, err := h.assignment.AssignTask(c.Request.Context(), taskID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign user to task"})
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Unassign удаляет назначение пользователя с задачи
func (h *TaskHandler) Unassign(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.assignment.UnassignTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign user from task"})
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}
