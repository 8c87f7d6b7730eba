package usecases

import (
	"context"

	"deskflow/internal/application/task/dto"
	"deskflow/internal/domain/task"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type GetTaskQuery struct {
	TaskID uint
}

type GetTaskUseCase struct {
	taskRepo task.TaskRepository
	logger   logger.Interface
}

func NewGetTaskUseCase(taskRepo task.TaskRepository, logger logger.Interface) *GetTaskUseCase {
	return &GetTaskUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *GetTaskUseCase) Execute(ctx context.Context, query GetTaskQuery) (*dto.TaskDTO, error) {
	if query.TaskID == 0 {
		return nil, errors.NewValidationError("task ID is required")
	}

	t, err := uc.taskRepo.GetByID(ctx, query.TaskID)
	if err != nil {
		return nil, err
	}
	return dto.FromTask(t), nil
}
