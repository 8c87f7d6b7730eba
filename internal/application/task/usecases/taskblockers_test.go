package usecases

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
)

func TestReportTaskBlocker_BlocksAndNotifies(t *testing.T) {
	tk := savedTask(1, []uint{7, 8})
	updated := false
	taskRepo := &mockTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.Task, error) { return tk, nil },
		updateFn: func(ctx context.Context, tk *task.Task) error {
			updated = true
			return nil
		},
	}
	userRepo := &mockUserRepo{
		listByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
			assert.Equal(t, authorization.RoleAdmin, role)
			return []*user.User{testUser(1, authorization.RoleAdmin)}, nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewReportTaskBlockerUseCase(taskRepo, userRepo, notifier, testLogger())
	err := uc.Execute(context.Background(), ReportTaskBlockerCommand{
		TaskID:    1,
		Reason:    "API contract missing",
		CreatedBy: 7,
	})

	assert.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, vo.TaskBlocked, tk.Status())

	// The reporter is excluded; the other assignee and the admin are not.
	if assert.Len(t, notifier.notifications, 1) {
		got := append([]uint(nil), notifier.notifications[0].UserIDs...)
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		assert.Equal(t, []uint{1, 8}, got)
	}
}

func TestReportTaskBlocker_EmptyReasonRejected(t *testing.T) {
	tk := savedTask(1, nil)
	taskRepo := &mockTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.Task, error) { return tk, nil },
	}

	uc := NewReportTaskBlockerUseCase(taskRepo, &mockUserRepo{}, &mockNotifier{}, testLogger())
	err := uc.Execute(context.Background(), ReportTaskBlockerCommand{TaskID: 1, CreatedBy: 7})

	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.TaskToDo, tk.Status())
}

func TestResolveTaskBlocker(t *testing.T) {
	tk := savedTask(1, nil)
	assert.NoError(t, tk.ReportBlocker(task.Blocker{Reason: "env down", CreatedBy: 7}))

	taskRepo := &mockTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.Task, error) { return tk, nil },
	}

	uc := NewResolveTaskBlockerUseCase(taskRepo, testLogger())
	err := uc.Execute(context.Background(), ResolveTaskBlockerCommand{
		TaskID:       1,
		BlockerIndex: 0,
		Resolution:   "env restored",
		ResolvedBy:   7,
	})

	assert.NoError(t, err)
	assert.True(t, tk.Blockers()[0].Resolved)
	assert.Equal(t, vo.TaskBlocked, tk.Status(), "resolution does not unblock the task by itself")

	err = uc.Execute(context.Background(), ResolveTaskBlockerCommand{TaskID: 1, BlockerIndex: 0, ResolvedBy: 7})
	assert.True(t, errors.IsValidationError(err), "already resolved")

	err = uc.Execute(context.Background(), ResolveTaskBlockerCommand{TaskID: 1, BlockerIndex: 5, ResolvedBy: 7})
	assert.True(t, errors.IsValidationError(err), "unknown index")
}

func TestLinkSubtask_Validation(t *testing.T) {
	uc := NewLinkSubtaskUseCase(&mockTaskRepo{}, testLogger())

	err := uc.Execute(context.Background(), LinkSubtaskCommand{TaskID: 0, SubtaskID: 2})
	assert.True(t, errors.IsValidationError(err))

	err = uc.Execute(context.Background(), LinkSubtaskCommand{TaskID: 3, SubtaskID: 3})
	assert.True(t, errors.IsValidationError(err), "self link")
}

func TestLinkSubtask_Success(t *testing.T) {
	parent := savedTask(1, nil)
	child := savedTask(2, nil)
	taskRepo := &mockTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.Task, error) {
			if id == 1 {
				return parent, nil
			}
			return child, nil
		},
	}

	uc := NewLinkSubtaskUseCase(taskRepo, testLogger())
	assert.NoError(t, uc.Execute(context.Background(), LinkSubtaskCommand{TaskID: 1, SubtaskID: 2, LinkedBy: 5}))
	assert.Equal(t, []uint{2}, parent.SubtaskIDs())

	err := uc.Execute(context.Background(), LinkSubtaskCommand{TaskID: 1, SubtaskID: 2, LinkedBy: 5})
	assert.True(t, errors.IsValidationError(err), "duplicate link")
}
