package repository_test

import (
	"context"
	"testing"

	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTaskRepository_GetByID_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	projectID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .*`).
		WithArgs(taskID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "title", "status"}).
			AddRow(taskID.String(), projectID.String(), "Test Task", model.StatusNotStarted))

	// Act
	task, err := taskRepo.GetByID(context.Background(), taskID)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, projectID, task.ProjectID)
	assert.Equal(t, model.StatusNotStarted, task.Status)
	assert.Nil(t, task.AssignedTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .*`).
		WithArgs(taskID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	task, err := taskRepo.GetByID(context.Background(), taskID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_AssignUser(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), taskID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := taskRepo.AssignUser(context.Background(), taskID, userID)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_AssignUser_TaskNotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), taskID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := taskRepo.AssignUser(context.Background(), taskID, userID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UnassignUser(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), taskID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := taskRepo.UnassignUser(context.Background(), taskID)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), taskID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Update(context.Background(), taskID, map[string]interface{}{"title": "New title"})

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks"`).
		WithArgs(taskID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Delete(context.Background(), taskID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
