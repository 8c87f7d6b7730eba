package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/domain/task"
	"deskflow/internal/shared/errors"
)

func validCreateTaskCommand() CreateTaskCommand {
	return CreateTaskCommand{
		Name:        "Implement export",
		Description: "CSV export of the report view",
		Urgency:     "Medium",
		Priority:    3,
		CreatorID:   5,
		CallerRole:  "projectManager",
	}
}

func TestCreateTask_Success(t *testing.T) {
	var saved *task.Task
	taskRepo := &mockTaskRepo{
		saveFn: func(ctx context.Context, tk *task.Task) error {
			saved = tk
			return tk.SetID(1)
		},
	}
	notifier := &mockNotifier{}

	uc := NewCreateTaskUseCase(taskRepo, &fixedNumberGenerator{number: "TSK_20260901_000001"}, notifier, testLogger())

	cmd := validCreateTaskCommand()
	cmd.AssigneeIDs = []uint{7}
	result, err := uc.Execute(context.Background(), cmd)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), result.TaskID)
	assert.Equal(t, "TSK_20260901_000001", result.Number)
	assert.Equal(t, "ToDo", result.Status)
	assert.Equal(t, []uint{7}, saved.AssigneeIDs())

	if assert.Len(t, notifier.notifications, 1) {
		assert.Equal(t, []uint{7}, notifier.notifications[0].UserIDs)
	}
}

func TestCreateTask_NoAssigneesNoNotification(t *testing.T) {
	taskRepo := &mockTaskRepo{
		saveFn: func(ctx context.Context, tk *task.Task) error { return tk.SetID(1) },
	}
	notifier := &mockNotifier{}

	uc := NewCreateTaskUseCase(taskRepo, &fixedNumberGenerator{number: "N1"}, notifier, testLogger())
	_, err := uc.Execute(context.Background(), validCreateTaskCommand())

	assert.NoError(t, err)
	assert.Empty(t, notifier.notifications)
}

func TestCreateTask_SubtaskLinksToParent(t *testing.T) {
	parent := savedTask(9, nil)
	var nextID uint = 10
	taskRepo := &mockTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.Task, error) {
			assert.Equal(t, uint(9), id)
			return parent, nil
		},
		saveFn: func(ctx context.Context, tk *task.Task) error {
			err := tk.SetID(nextID)
			nextID++
			return err
		},
	}

	uc := NewCreateTaskUseCase(taskRepo, &fixedNumberGenerator{number: "N1"}, &mockNotifier{}, testLogger())

	parentID := uint(9)
	cmd := validCreateTaskCommand()
	cmd.ParentID = &parentID
	result, err := uc.Execute(context.Background(), cmd)

	assert.NoError(t, err)
	assert.Equal(t, []uint{result.TaskID}, parent.SubtaskIDs())
}

func TestCreateTask_MissingParentRejected(t *testing.T) {
	taskRepo := &mockTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.Task, error) {
			return nil, errors.NewNotFoundError("task not found")
		},
	}

	uc := NewCreateTaskUseCase(taskRepo, &fixedNumberGenerator{number: "N1"}, &mockNotifier{}, testLogger())

	parentID := uint(404)
	cmd := validCreateTaskCommand()
	cmd.ParentID = &parentID
	_, err := uc.Execute(context.Background(), cmd)

	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateTask_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateTaskCommand)
		check  func(*testing.T, error)
	}{
		{
			"client may not create tasks",
			func(c *CreateTaskCommand) { c.CallerRole = "client" },
			func(t *testing.T, err error) { assert.True(t, errors.IsForbiddenError(err)) },
		},
		{
			"invalid urgency",
			func(c *CreateTaskCommand) { c.Urgency = "asap" },
			func(t *testing.T, err error) { assert.True(t, errors.IsValidationError(err)) },
		},
		{
			"priority out of range",
			func(c *CreateTaskCommand) { c.Priority = 9 },
			func(t *testing.T, err error) { assert.True(t, errors.IsValidationError(err)) },
		},
		{
			"missing name",
			func(c *CreateTaskCommand) { c.Name = "" },
			func(t *testing.T, err error) { assert.True(t, errors.IsValidationError(err)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateTaskUseCase(&mockTaskRepo{}, &fixedNumberGenerator{number: "N1"}, &mockNotifier{}, testLogger())

			cmd := validCreateTaskCommand()
			tt.mutate(&cmd)
			_, err := uc.Execute(context.Background(), cmd)
			assert.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestCreateTask_SaveFailure(t *testing.T) {
	taskRepo := &mockTaskRepo{
		saveFn: func(ctx context.Context, tk *task.Task) error { return fmt.Errorf("connection reset") },
	}
	uc := NewCreateTaskUseCase(taskRepo, &fixedNumberGenerator{number: "N1"}, &mockNotifier{}, testLogger())

	_, err := uc.Execute(context.Background(), validCreateTaskCommand())
	assert.Error(t, err)
}
