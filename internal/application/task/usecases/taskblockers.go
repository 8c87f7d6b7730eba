package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/task"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type ReportTaskBlockerCommand struct {
	TaskID    uint
	Reason    string
	CreatedBy uint
}

// ReportTaskBlockerUseCase records an impediment. The aggregate forces the
// task into Blocked; admins and the other assignees are notified.
type ReportTaskBlockerUseCase struct {
	taskRepo task.TaskRepository
	userRepo user.UserRepository
	notifier Notifier
	logger   logger.Interface
}

func NewReportTaskBlockerUseCase(
	taskRepo task.TaskRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *ReportTaskBlockerUseCase {
	return &ReportTaskBlockerUseCase{
		taskRepo: taskRepo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *ReportTaskBlockerUseCase) Execute(ctx context.Context, cmd ReportTaskBlockerCommand) error {
	if cmd.TaskID == 0 {
		return errors.NewValidationError("task ID is required")
	}

	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	blocker := task.Blocker{Reason: cmd.Reason, CreatedBy: cmd.CreatedBy}
	if err := t.ReportBlocker(blocker); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist task blocker", "error", err, "task_id", cmd.TaskID)
		return err
	}

	recipients := map[uint]bool{}
	for _, id := range t.AssigneeIDs() {
		if id != cmd.CreatedBy {
			recipients[id] = true
		}
	}
	if admins, err := uc.userRepo.ListByRole(ctx, authorization.RoleAdmin); err != nil {
		uc.logger.Errorw("failed to load admins for notification", "error", err)
	} else {
		for _, a := range admins {
			recipients[a.ID()] = true
		}
	}

	ids := make([]uint, 0, len(recipients))
	for id := range recipients {
		ids = append(ids, id)
	}

	taskID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		ids,
		fmt.Sprintf("Task %s is blocked: %s", t.Number(), cmd.Reason),
		&taskID,
		notification.ModelTask,
	)

	uc.logger.Infow("task blocker reported", "task_id", cmd.TaskID)
	return nil
}

type ResolveTaskBlockerCommand struct {
	TaskID       uint
	BlockerIndex int
	Resolution   string
	ResolvedBy   uint
}

// ResolveTaskBlockerUseCase marks a blocker resolved. The task stays in
// Blocked until someone moves it explicitly.
type ResolveTaskBlockerUseCase struct {
	taskRepo task.TaskRepository
	logger   logger.Interface
}

func NewResolveTaskBlockerUseCase(taskRepo task.TaskRepository, logger logger.Interface) *ResolveTaskBlockerUseCase {
	return &ResolveTaskBlockerUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *ResolveTaskBlockerUseCase) Execute(ctx context.Context, cmd ResolveTaskBlockerCommand) error {
	if cmd.TaskID == 0 {
		return errors.NewValidationError("task ID is required")
	}

	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	if err := t.ResolveBlocker(cmd.BlockerIndex, cmd.Resolution, cmd.ResolvedBy); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist blocker resolution", "error", err, "task_id", cmd.TaskID)
		return err
	}

	uc.logger.Infow("task blocker resolved", "task_id", cmd.TaskID, "index", cmd.BlockerIndex)
	return nil
}

type LinkSubtaskCommand struct {
	TaskID    uint
	SubtaskID uint
	LinkedBy  uint
}

type LinkSubtaskUseCase struct {
	taskRepo task.TaskRepository
	logger   logger.Interface
}

func NewLinkSubtaskUseCase(taskRepo task.TaskRepository, logger logger.Interface) *LinkSubtaskUseCase {
	return &LinkSubtaskUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *LinkSubtaskUseCase) Execute(ctx context.Context, cmd LinkSubtaskCommand) error {
	if cmd.TaskID == 0 || cmd.SubtaskID == 0 {
		return errors.NewValidationError("task ID and subtask ID are required")
	}
	if cmd.TaskID == cmd.SubtaskID {
		return errors.NewValidationError("a task cannot be its own subtask")
	}

	// Both ends must exist before linking.
	if _, err := uc.taskRepo.GetByID(ctx, cmd.SubtaskID); err != nil {
		return err
	}
	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	if err := t.LinkSubtask(cmd.SubtaskID, cmd.LinkedBy); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist subtask link", "error", err, "task_id", cmd.TaskID)
		return err
	}

	uc.logger.Infow("subtask linked", "task_id", cmd.TaskID, "subtask_id", cmd.SubtaskID)
	return nil
}
