package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/shared/errors"
)

func TestChangeTaskStatus_AdminChangeNotifiesAssignees(t *testing.T) {
	tk := savedTask(1, []uint{7, 8})
	updated := false
	taskRepo := &mockTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.Task, error) { return tk, nil },
		updateFn: func(ctx context.Context, tk *task.Task) error {
			updated = true
			return nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewChangeTaskStatusUseCase(taskRepo, notifier, testLogger())
	err := uc.Execute(context.Background(), ChangeTaskStatusCommand{
		TaskID:     1,
		NewStatus:  "InProgress",
		ChangedBy:  2,
		CallerRole: "admin",
	})

	assert.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, vo.TaskInProgress, tk.Status())
	assert.NotNil(t, tk.StartDate())
	if assert.Len(t, notifier.notifications, 1) {
		assert.Equal(t, []uint{7, 8}, notifier.notifications[0].UserIDs)
		assert.Contains(t, notifier.notifications[0].Message, "moved from ToDo to InProgress")
	}
}

func TestChangeTaskStatus_OwnChangeIsSilent(t *testing.T) {
	tk := savedTask(1, []uint{7, 8})
	taskRepo := &mockTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.Task, error) { return tk, nil },
	}
	notifier := &mockNotifier{}

	uc := NewChangeTaskStatusUseCase(taskRepo, notifier, testLogger())
	err := uc.Execute(context.Background(), ChangeTaskStatusCommand{
		TaskID:     1,
		NewStatus:  "InProgress",
		ChangedBy:  7,
		CallerRole: "developer",
	})

	assert.NoError(t, err)
	assert.Equal(t, vo.TaskInProgress, tk.Status())
	assert.Empty(t, notifier.notifications)
}

func TestChangeTaskStatus_SameStatusIsNoOp(t *testing.T) {
	tk := savedTask(1, []uint{7})
	taskRepo := &mockTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.Task, error) { return tk, nil },
		updateFn: func(ctx context.Context, tk *task.Task) error {
			t.Fatal("unchanged status must not be persisted")
			return nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewChangeTaskStatusUseCase(taskRepo, notifier, testLogger())
	err := uc.Execute(context.Background(), ChangeTaskStatusCommand{
		TaskID:     1,
		NewStatus:  "ToDo",
		ChangedBy:  2,
		CallerRole: "admin",
	})

	assert.NoError(t, err)
	assert.Empty(t, notifier.notifications)
}

func TestChangeTaskStatus_Failures(t *testing.T) {
	tests := []struct {
		name string
		cmd  ChangeTaskStatusCommand
	}{
		{"missing task ID", ChangeTaskStatusCommand{NewStatus: "Done", ChangedBy: 2}},
		{"invalid status", ChangeTaskStatusCommand{TaskID: 1, NewStatus: "Finished", ChangedBy: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewChangeTaskStatusUseCase(&mockTaskRepo{}, &mockNotifier{}, testLogger())
			err := uc.Execute(context.Background(), tc.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
