package usecases

import (
	"context"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/task"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type AddTaskCommentCommand struct {
	TaskID     uint
	AuthorID   uint
	AuthorName string
	Text       string
}

type AddTaskCommentUseCase struct {
	taskRepo task.TaskRepository
	notifier Notifier
	logger   logger.Interface
}

func NewAddTaskCommentUseCase(
	taskRepo task.TaskRepository,
	notifier Notifier,
	logger logger.Interface,
) *AddTaskCommentUseCase {
	return &AddTaskCommentUseCase{
		taskRepo: taskRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *AddTaskCommentUseCase) Execute(ctx context.Context, cmd AddTaskCommentCommand) error {
	if cmd.TaskID == 0 {
		return errors.NewValidationError("task ID is required")
	}

	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	taskID := t.ID()
	resolved := uc.notifier.ResolveMentions(ctx, cmd.Text)

	mentions := make([]task.Mention, len(resolved))
	for i, m := range resolved {
		mentions[i] = task.Mention{UserID: m.UserID, Token: m.Token}
	}

	comment := task.Comment{
		AuthorID:   cmd.AuthorID,
		AuthorName: cmd.AuthorName,
		Text:       cmd.Text,
		Mentions:   mentions,
	}
	if err := t.AddComment(comment); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist task comment", "error", err, "task_id", cmd.TaskID)
		return err
	}

	// Mention notifications go out only after the comment is saved.
	uc.notifier.NotifyMentioned(ctx, resolved, cmd.AuthorName, "task", &taskID, notification.ModelTask)

	uc.logger.Infow("task comment added", "task_id", cmd.TaskID, "mentions", len(mentions))
	return nil
}
