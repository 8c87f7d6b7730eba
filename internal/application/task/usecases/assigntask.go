package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/task"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type AssignTaskCommand struct {
	TaskID      uint
	AssigneeIDs []uint
	AssignedBy  uint
}

type AssignTaskUseCase struct {
	taskRepo task.TaskRepository
	userRepo user.UserRepository
	notifier Notifier
	logger   logger.Interface
}

func NewAssignTaskUseCase(
	taskRepo task.TaskRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *AssignTaskUseCase {
	return &AssignTaskUseCase{
		taskRepo: taskRepo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute replaces the task's assignee list. Every assignee must be a
// registered user; newly added users are notified.
func (uc *AssignTaskUseCase) Execute(ctx context.Context, cmd AssignTaskCommand) error {
	if cmd.TaskID == 0 {
		return errors.NewValidationError("task ID is required")
	}
	if len(cmd.AssigneeIDs) == 0 {
		return errors.NewValidationError("at least one assignee is required")
	}

	users, err := uc.userRepo.GetByIDs(ctx, cmd.AssigneeIDs)
	if err != nil {
		return err
	}
	if len(users) != len(cmd.AssigneeIDs) {
		return errors.NewValidationError("one or more assignees do not exist")
	}

	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	previous := map[uint]bool{}
	for _, id := range t.AssigneeIDs() {
		previous[id] = true
	}

	t.Assign(cmd.AssigneeIDs, cmd.AssignedBy)

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist task assignment", "error", err, "task_id", cmd.TaskID)
		return err
	}

	var added []uint
	for _, id := range cmd.AssigneeIDs {
		if !previous[id] {
			added = append(added, id)
		}
	}

	taskID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		added,
		fmt.Sprintf("You were assigned to task %s", t.Number()),
		&taskID,
		notification.ModelTask,
	)

	uc.logger.Infow("task assigned", "task_id", cmd.TaskID, "assignees", cmd.AssigneeIDs)
	return nil
}
