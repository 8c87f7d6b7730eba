package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type ChangeTaskStatusCommand struct {
	TaskID     uint
	NewStatus  string
	ChangedBy  uint
	CallerRole string
}

// ChangeTaskStatusUseCase moves a task through its lifecycle. Entering
// InProgress stamps the start date and Done stamps the completion date
// inside the aggregate; assignees are notified when an admin performs
// the change.
type ChangeTaskStatusUseCase struct {
	taskRepo task.TaskRepository
	notifier Notifier
	logger   logger.Interface
}

func NewChangeTaskStatusUseCase(
	taskRepo task.TaskRepository,
	notifier Notifier,
	logger logger.Interface,
) *ChangeTaskStatusUseCase {
	return &ChangeTaskStatusUseCase{
		taskRepo: taskRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *ChangeTaskStatusUseCase) Execute(ctx context.Context, cmd ChangeTaskStatusCommand) error {
	if cmd.TaskID == 0 {
		return errors.NewValidationError("task ID is required")
	}

	status, err := vo.NewTaskStatus(cmd.NewStatus)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	old := t.Status()
	changed, err := t.ChangeStatus(status, cmd.ChangedBy)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if !changed {
		return nil
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist task status change", "error", err, "task_id", cmd.TaskID)
		return err
	}

	// Assignees hear about the move when an admin made it; their own
	// changes need no echo.
	if role, ok := authorization.ParseUserRole(cmd.CallerRole); ok && role == authorization.RoleAdmin {
		uc.notifyAssignees(ctx, t, old, status)
	}

	uc.logger.Infow("task status changed",
		"task_id", cmd.TaskID, "from", old.String(), "to", status.String())
	return nil
}

func (uc *ChangeTaskStatusUseCase) notifyAssignees(ctx context.Context, t *task.Task, from, to vo.TaskStatus) {
	ids := t.AssigneeIDs()
	if len(ids) == 0 {
		return
	}

	taskID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		ids,
		fmt.Sprintf("Task %s moved from %s to %s", t.Number(), from, to),
		&taskID,
		notification.ModelTask,
	)
}
