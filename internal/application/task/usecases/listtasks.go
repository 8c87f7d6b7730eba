package usecases

import (
	"context"

	"deskflow/internal/application/task/dto"
	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type ListTasksQuery struct {
	Status     string
	AssigneeID uint
	CreatorID  uint
	ParentID   *uint
	Page       int
	PageSize   int
}

type ListTasksResult struct {
	Tasks []*dto.TaskDTO
	Total int64
}

type ListTasksUseCase struct {
	taskRepo task.TaskRepository
	logger   logger.Interface
}

func NewListTasksUseCase(taskRepo task.TaskRepository, logger logger.Interface) *ListTasksUseCase {
	return &ListTasksUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error) {
	filter := task.TaskFilter{
		AssigneeID: query.AssigneeID,
		CreatorID:  query.CreatorID,
		ParentID:   query.ParentID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTaskStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tasks, total, err := uc.taskRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err)
		return nil, err
	}

	dtos := make([]*dto.TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = dto.FromTask(t)
	}
	return &ListTasksResult{Tasks: dtos, Total: total}, nil
}
