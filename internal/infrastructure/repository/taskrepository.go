package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskflow/internal/domain/task"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
	apperrors "deskflow/internal/shared/errors"
)

type TaskRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:     database,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.TaskModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}

	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID uint) (*task.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("task not found")
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TaskRepository) List(ctx context.Context, filter task.TaskFilter) ([]*task.Task, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TaskModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.AssigneeID != 0 {
		query = query.Where("JSON_CONTAINS(assignee_ids, ?)", fmt.Sprintf("%d", filter.AssigneeID))
	}
	if filter.CreatorID != 0 {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize).Offset((filter.Page - 1) * filter.PageSize)
	}

	var taskModels []models.TaskModel
	if err := query.Find(&taskModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*task.Task, len(taskModels))
	for i := range taskModels {
		t, err := r.mapper.ToDomain(&taskModels[i])
		if err != nil {
			return nil, 0, err
		}
		tasks[i] = t
	}

	return tasks, total, nil
}
