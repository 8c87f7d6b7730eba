package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
)

func TestAssignTestTask_Success(t *testing.T) {
	tt := savedTestTask(1, nil)
	updated := false
	repo := &mockTestTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.TestTask, error) { return tt, nil },
		updateFn: func(ctx context.Context, tt *task.TestTask) error {
			updated = true
			return nil
		},
	}
	userRepo := &mockUserRepo{
		getByIDsFn: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			return []*user.User{testUser(7, authorization.RoleTester), testUser(8, authorization.RoleTester)}, nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewAssignTestTaskUseCase(repo, userRepo, notifier, testLogger())
	err := uc.Execute(context.Background(), AssignTestTaskCommand{
		TestTaskID:  1,
		AssigneeIDs: []uint{7, 8},
		AssignedBy:  5,
	})

	assert.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, []uint{7, 8}, tt.AssigneeIDs())
	if assert.Len(t, notifier.notifications, 1) {
		assert.Equal(t, []uint{7, 8}, notifier.notifications[0].UserIDs)
		assert.Contains(t, notifier.notifications[0].Message, "assigned to test task")
	}
}

func TestAssignTestTask_OnlyTestersAccepted(t *testing.T) {
	// Even roles that oversee testing work cannot be put on a test task.
	tests := []struct {
		name string
		role authorization.UserRole
	}{
		{"responsible tester rejected", authorization.RoleResponsibleTester},
		{"admin rejected", authorization.RoleAdmin},
		{"developer rejected", authorization.RoleDeveloper},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockTestTaskRepo{
				getByIDFn: func(ctx context.Context, id uint) (*task.TestTask, error) {
					t.Fatal("test task must not be loaded for an invalid assignee")
					return nil, nil
				},
			}
			userRepo := &mockUserRepo{
				getByIDsFn: func(ctx context.Context, ids []uint) ([]*user.User, error) {
					return []*user.User{testUser(7, tc.role)}, nil
				},
			}
			notifier := &mockNotifier{}

			uc := NewAssignTestTaskUseCase(repo, userRepo, notifier, testLogger())
			err := uc.Execute(context.Background(), AssignTestTaskCommand{
				TestTaskID:  1,
				AssigneeIDs: []uint{7},
				AssignedBy:  5,
			})

			assert.True(t, errors.IsValidationError(err))
			assert.Empty(t, notifier.notifications)
		})
	}
}

func TestAssignTestTask_Failures(t *testing.T) {
	tests := []struct {
		name string
		cmd  AssignTestTaskCommand
	}{
		{"missing test task ID", AssignTestTaskCommand{AssigneeIDs: []uint{7}, AssignedBy: 5}},
		{"empty assignee list", AssignTestTaskCommand{TestTaskID: 1, AssignedBy: 5}},
		{"unknown assignee", AssignTestTaskCommand{TestTaskID: 1, AssigneeIDs: []uint{7, 404}, AssignedBy: 5}},
	}

	userRepo := &mockUserRepo{
		getByIDsFn: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			return []*user.User{testUser(7, authorization.RoleTester)}, nil
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewAssignTestTaskUseCase(&mockTestTaskRepo{}, userRepo, &mockNotifier{}, testLogger())
			err := uc.Execute(context.Background(), tc.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestAssignTestTask_OnlyNewAssigneesNotified(t *testing.T) {
	tt := savedTestTask(1, []uint{7})
	repo := &mockTestTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.TestTask, error) { return tt, nil },
	}
	userRepo := &mockUserRepo{
		getByIDsFn: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			return []*user.User{testUser(7, authorization.RoleTester), testUser(8, authorization.RoleTester)}, nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewAssignTestTaskUseCase(repo, userRepo, notifier, testLogger())
	err := uc.Execute(context.Background(), AssignTestTaskCommand{
		TestTaskID:  1,
		AssigneeIDs: []uint{7, 8},
		AssignedBy:  5,
	})

	assert.NoError(t, err)
	if assert.Len(t, notifier.notifications, 1) {
		assert.Equal(t, []uint{8}, notifier.notifications[0].UserIDs)
	}
}

func TestChangeTestTaskStatus_NotifiesResponsibleTesters(t *testing.T) {
	tt := savedTestTask(1, []uint{7})
	updated := false
	repo := &mockTestTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.TestTask, error) { return tt, nil },
		updateFn: func(ctx context.Context, tt *task.TestTask) error {
			updated = true
			return nil
		},
	}
	userRepo := &mockUserRepo{
		listByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
			assert.Equal(t, authorization.RoleResponsibleTester, role)
			return []*user.User{testUser(3, authorization.RoleResponsibleTester)}, nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewChangeTestTaskStatusUseCase(repo, userRepo, notifier, testLogger())
	err := uc.Execute(context.Background(), ChangeTestTaskStatusCommand{
		TestTaskID: 1,
		NewStatus:  "passed",
		ChangedBy:  7,
	})

	assert.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, vo.TestPassed, tt.Status())
	if assert.Len(t, notifier.notifications, 1) {
		assert.Equal(t, []uint{3}, notifier.notifications[0].UserIDs)
		assert.Contains(t, notifier.notifications[0].Message, "moved from pending to passed")
	}
}

func TestChangeTestTaskStatus_SameStatusIsNoOp(t *testing.T) {
	tt := savedTestTask(1, nil)
	repo := &mockTestTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.TestTask, error) { return tt, nil },
		updateFn: func(ctx context.Context, tt *task.TestTask) error {
			t.Fatal("unchanged status must not be persisted")
			return nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewChangeTestTaskStatusUseCase(repo, &mockUserRepo{}, notifier, testLogger())
	err := uc.Execute(context.Background(), ChangeTestTaskStatusCommand{
		TestTaskID: 1,
		NewStatus:  "pending",
		ChangedBy:  7,
	})

	assert.NoError(t, err)
	assert.Empty(t, notifier.notifications)
}

func TestChangeTestTaskStatus_InvalidStatusRejected(t *testing.T) {
	uc := NewChangeTestTaskStatusUseCase(&mockTestTaskRepo{}, &mockUserRepo{}, &mockNotifier{}, testLogger())
	err := uc.Execute(context.Background(), ChangeTestTaskStatusCommand{
		TestTaskID: 1,
		NewStatus:  "Done",
		ChangedBy:  7,
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestReportTestTaskBlocker_BlocksAndNotifies(t *testing.T) {
	tt := savedTestTask(1, []uint{7})
	updated := false
	repo := &mockTestTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.TestTask, error) { return tt, nil },
		updateFn: func(ctx context.Context, tt *task.TestTask) error {
			updated = true
			return nil
		},
	}
	userRepo := &mockUserRepo{
		listByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
			assert.Equal(t, authorization.RoleResponsibleTester, role)
			return []*user.User{testUser(3, authorization.RoleResponsibleTester)}, nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewReportTestTaskBlockerUseCase(repo, userRepo, notifier, testLogger())
	err := uc.Execute(context.Background(), ReportTestTaskBlockerCommand{
		TestTaskID: 1,
		Reason:     "staging credentials expired",
		CreatedBy:  7,
	})

	assert.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, vo.TestBlocked, tt.Status())
	assert.Len(t, tt.Blockers(), 1)
	if assert.Len(t, notifier.notifications, 1) {
		assert.Equal(t, []uint{3}, notifier.notifications[0].UserIDs)
		assert.Contains(t, notifier.notifications[0].Message, "staging credentials expired")
	}
}

func TestReportTestTaskBlocker_EmptyReasonRejected(t *testing.T) {
	tt := savedTestTask(1, nil)
	repo := &mockTestTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.TestTask, error) { return tt, nil },
	}

	uc := NewReportTestTaskBlockerUseCase(repo, &mockUserRepo{}, &mockNotifier{}, testLogger())
	err := uc.Execute(context.Background(), ReportTestTaskBlockerCommand{TestTaskID: 1, CreatedBy: 7})

	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.TestPending, tt.Status())
}

func TestResolveTestTaskBlocker(t *testing.T) {
	tt := savedTestTask(1, nil)
	assert.NoError(t, tt.ReportBlocker(task.Blocker{Reason: "env down", CreatedBy: 7}))

	repo := &mockTestTaskRepo{
		getByIDFn: func(ctx context.Context, id uint) (*task.TestTask, error) { return tt, nil },
	}

	uc := NewResolveTestTaskBlockerUseCase(repo, testLogger())
	err := uc.Execute(context.Background(), ResolveTestTaskBlockerCommand{
		TestTaskID:   1,
		BlockerIndex: 0,
		Resolution:   "env restored",
		ResolvedBy:   7,
	})

	assert.NoError(t, err)
	blockers := tt.Blockers()
	if assert.Len(t, blockers, 1) {
		assert.Equal(t, "env restored", blockers[0].Resolution)
	}
}
