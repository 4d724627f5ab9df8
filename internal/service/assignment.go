package service

import (
	"context"
	"fmt"

	"taskflow/internal/logging"
	"taskflow/internal/model"
	"taskflow/internal/notification"
	"taskflow/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Notification subjects for assignment changes.
const (
	subjectAssigned   = "Task assigned"
	subjectUnassigned = "Task assignment removed"
)

// AssignmentService changes the assignment relation between a task and a
// user and notifies the affected party. The persisted mutation always
// completes before the notification is attempted, and the notification
// outcome never affects the returned value.
type AssignmentService struct {
	tasks         TaskStore
	users         UserDirectory
	publisher     notification.Publisher
	logger        logging.Logger
	fallbackEmail string
}

func NewAssignmentService(
	tasks TaskStore,
	users UserDirectory,
	publisher notification.Publisher,
	logger logging.Logger,
	fallbackEmail string,
) *AssignmentService {
	return &AssignmentService{
		tasks:         tasks,
		users:         users,
		publisher:     publisher,
		logger:        logger,
		fallbackEmail: fallbackEmail,
	}
}

// AssignTask assigns a task to a user, replacing any previous assignee.
func (s *AssignmentService) AssignTask(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error) {
	var (
		task *model.Task
		user *model.User
	)

	// The two lookups are independent reads; run them together and
	// let the first failure cancel the other.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.tasks.GetByID(gctx, taskID)
		if err != nil {
			return err
		}
		task = t
		return nil
	})
	g.Go(func() error {
		u, err := s.users.GetByID(gctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return repository.ErrUserNotFound
		}
		user = u
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.tasks.AssignUser(ctx, taskID, userID); err != nil {
		return nil, err
	}
	task.AssignedTo = &userID

	s.notify(ctx, task, user.Email, subjectAssigned,
		fmt.Sprintf("You have been assigned to task %q.", task.Title))

	return task, nil
}

// UnassignTask clears a task's assignee. Unassigning an already-unassigned
// task is a legal no-op that still emits a notification addressed to the
// configured fallback recipient.
func (s *AssignmentService) UnassignTask(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// Resolve the recipient before the assignment is cleared.
	recipient := s.fallbackEmail
	if task.AssignedTo != nil {
		assignee, err := s.users.GetByID(ctx, *task.AssignedTo)
		if err != nil {
			s.logger.Warn(ctx, "assignee lookup failed, notifying fallback address",
				"task_id", task.ID.String(),
				"user_id", task.AssignedTo.String(),
				"error", err.Error(),
			)
		} else if assignee != nil {
			recipient = assignee.Email
		}
	}

	if err := s.tasks.UnassignUser(ctx, taskID); err != nil {
		return nil, err
	}
	task.AssignedTo = nil

	s.notify(ctx, task, recipient, subjectUnassigned,
		fmt.Sprintf("Your assignment to task %q has been removed.", task.Title))

	return task, nil
}

// notify publishes a best-effort notification. The assignment has already
// been persisted at this point: a publish error is logged with the task id
// and recipient, then dropped.
func (s *AssignmentService) notify(ctx context.Context, task *model.Task, to, subject, body string) {
	msg := notification.Message{To: to, Subject: subject, Body: body}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.logger.Error(ctx, "notification publish failed",
			"task_id", task.ID.String(),
			"recipient", to,
			"error", err.Error(),
		)
	}
}
