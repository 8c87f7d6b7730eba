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

type TestTaskRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTestTaskRepository(database *gorm.DB) *TestTaskRepository {
	return &TestTaskRepository{
		db:     database,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TestTaskRepository) Save(ctx context.Context, t *task.TestTask) error {
	model, err := r.mapper.TestTaskToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save test task: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TestTaskRepository) Update(ctx context.Context, t *task.TestTask) error {
	model, err := r.mapper.TestTaskToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.TestTaskModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update test task: %w", result.Error)
	}

	return nil
}

func (r *TestTaskRepository) GetByID(ctx context.Context, taskID uint) (*task.TestTask, error) {
	var model models.TestTaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("test task not found")
		}
		return nil, fmt.Errorf("failed to find test task: %w", err)
	}

	return r.mapper.TestTaskToDomain(&model)
}

func (r *TestTaskRepository) List(ctx context.Context, filter task.TestTaskFilter) ([]*task.TestTask, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TestTaskModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.AssigneeID != 0 {
		query = query.Where("JSON_CONTAINS(assignee_ids, ?)", fmt.Sprintf("%d", filter.AssigneeID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count test tasks: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize).Offset((filter.Page - 1) * filter.PageSize)
	}

	var taskModels []models.TestTaskModel
	if err := query.Find(&taskModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list test tasks: %w", err)
	}

	tasks := make([]*task.TestTask, len(taskModels))
	for i := range taskModels {
		t, err := r.mapper.TestTaskToDomain(&taskModels[i])
		if err != nil {
			return nil, 0, err
		}
		tasks[i] = t
	}

	return tasks, total, nil
}
