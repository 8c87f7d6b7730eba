package usecases

import (
	"context"

	"deskflow/internal/domain/task"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type AttachTaskFilesCommand struct {
	TaskID uint
	Files  []task.FileRef
}

type AttachTaskFilesUseCase struct {
	taskRepo task.TaskRepository
	logger   logger.Interface
}

func NewAttachTaskFilesUseCase(taskRepo task.TaskRepository, logger logger.Interface) *AttachTaskFilesUseCase {
	return &AttachTaskFilesUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *AttachTaskFilesUseCase) Execute(ctx context.Context, cmd AttachTaskFilesCommand) error {
	if cmd.TaskID == 0 {
		return errors.NewValidationError("task ID is required")
	}
	if len(cmd.Files) == 0 {
		return errors.NewValidationError("at least one file is required")
	}

	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	for _, f := range cmd.Files {
		t.AddAttachment(f)
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist task attachments", "error", err, "task_id", cmd.TaskID)
		return err
	}

	uc.logger.Infow("task attachments uploaded", "task_id", cmd.TaskID, "count", len(cmd.Files))
	return nil
}

type AttachTestTaskFilesCommand struct {
	TestTaskID uint
	Files      []task.FileRef
}

type AttachTestTaskFilesUseCase struct {
	testTaskRepo task.TestTaskRepository
	logger       logger.Interface
}

func NewAttachTestTaskFilesUseCase(testTaskRepo task.TestTaskRepository, logger logger.Interface) *AttachTestTaskFilesUseCase {
	return &AttachTestTaskFilesUseCase{testTaskRepo: testTaskRepo, logger: logger}
}

func (uc *AttachTestTaskFilesUseCase) Execute(ctx context.Context, cmd AttachTestTaskFilesCommand) error {
	if cmd.TestTaskID == 0 {
		return errors.NewValidationError("test task ID is required")
	}
	if len(cmd.Files) == 0 {
		return errors.NewValidationError("at least one file is required")
	}

	t, err := uc.testTaskRepo.GetByID(ctx, cmd.TestTaskID)
	if err != nil {
		return err
	}

	for _, f := range cmd.Files {
		t.AddAttachment(f)
	}

	if err := uc.testTaskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist test task attachments", "error", err, "test_task_id", cmd.TestTaskID)
		return err
	}

	uc.logger.Infow("test task attachments uploaded", "test_task_id", cmd.TestTaskID, "count", len(cmd.Files))
	return nil
}
