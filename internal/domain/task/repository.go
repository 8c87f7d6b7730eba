package task

import (
	"context"

	vo "deskflow/internal/domain/task/valueobjects"
)

type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, taskID uint) (*Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*Task, int64, error)
}

type TaskFilter struct {
	Status     *vo.TaskStatus
	AssigneeID uint
	CreatorID  uint
	ParentID   *uint
	Page       int
	PageSize   int
}

type TestTaskRepository interface {
	Save(ctx context.Context, task *TestTask) error
	Update(ctx context.Context, task *TestTask) error
	GetByID(ctx context.Context, taskID uint) (*TestTask, error)
	List(ctx context.Context, filter TestTaskFilter) ([]*TestTask, int64, error)
}

type TestTaskFilter struct {
	Status     *vo.TestTaskStatus
	AssigneeID uint
	Page       int
	PageSize   int
}
