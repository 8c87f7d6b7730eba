package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	nusecases "deskflow/internal/application/notification/usecases"
	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/task"
	vo "deskflow/internal/domain/task/valueobjects"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTaskRepo struct {
	saveFn    func(ctx context.Context, t *task.Task) error
	updateFn  func(ctx context.Context, t *task.Task) error
	getByIDFn func(ctx context.Context, id uint) (*task.Task, error)
	listFn    func(ctx context.Context, filter task.TaskFilter) ([]*task.Task, int64, error)
}

func (m *mockTaskRepo) Save(ctx context.Context, t *task.Task) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, t)
	}
	return nil
}

func (m *mockTaskRepo) Update(ctx context.Context, t *task.Task) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id uint) (*task.Task, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTaskRepo) List(ctx context.Context, filter task.TaskFilter) ([]*task.Task, int64, error) {
	return m.listFn(ctx, filter)
}

type mockTestTaskRepo struct {
	saveFn    func(ctx context.Context, t *task.TestTask) error
	updateFn  func(ctx context.Context, t *task.TestTask) error
	getByIDFn func(ctx context.Context, id uint) (*task.TestTask, error)
	listFn    func(ctx context.Context, filter task.TestTaskFilter) ([]*task.TestTask, int64, error)
}

func (m *mockTestTaskRepo) Save(ctx context.Context, t *task.TestTask) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, t)
	}
	return nil
}

func (m *mockTestTaskRepo) Update(ctx context.Context, t *task.TestTask) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTestTaskRepo) GetByID(ctx context.Context, id uint) (*task.TestTask, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTestTaskRepo) List(ctx context.Context, filter task.TestTaskFilter) ([]*task.TestTask, int64, error) {
	return m.listFn(ctx, filter)
}

type mockUserRepo struct {
	getByIDFn    func(ctx context.Context, id uint) (*user.User, error)
	getByIDsFn   func(ctx context.Context, ids []uint) ([]*user.User, error)
	listByRoleFn func(ctx context.Context, role authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, userID uint) error  { return nil }

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return m.getByIDsFn(ctx, ids)
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	return m.listByRoleFn(ctx, role)
}

func (m *mockUserRepo) ListAll(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type notifyCall struct {
	UserIDs      []uint
	Message      string
	RelatedID    *uint
	RelatedModel notification.RelatedModel
}

type mockNotifier struct {
	notifications []notifyCall
	mentions      []nusecases.ResolvedMention

	// mentionNotifies records each NotifyMentioned invocation.
	mentionNotifies [][]nusecases.ResolvedMention
}

func (m *mockNotifier) NotifyUsers(ctx context.Context, userIDs []uint, message string, relatedID *uint, relatedModel notification.RelatedModel) {
	m.notifications = append(m.notifications, notifyCall{
		UserIDs:      userIDs,
		Message:      message,
		RelatedID:    relatedID,
		RelatedModel: relatedModel,
	})
}

func (m *mockNotifier) ResolveMentions(ctx context.Context, text string) []nusecases.ResolvedMention {
	return m.mentions
}

func (m *mockNotifier) NotifyMentioned(ctx context.Context, resolved []nusecases.ResolvedMention, authorName, entityType string, relatedID *uint, relatedModel notification.RelatedModel) {
	m.mentionNotifies = append(m.mentionNotifies, resolved)
}

type fixedNumberGenerator struct {
	number string
	err    error
}

func (g *fixedNumberGenerator) Generate(ctx context.Context) (string, error) {
	return g.number, g.err
}

func testUser(id uint, role authorization.UserRole) *user.User {
	u, err := user.ReconstructUser(id, "Test", "User", "user@deskflow.test", "hash", role, nil, false, "en", time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	return u
}

// savedTask builds a persisted-looking task created by user 5.
func savedTask(id uint, assignees []uint) *task.Task {
	t, err := task.NewTask("Implement export", "CSV export", "Medium", 3, 5, nil)
	if err != nil {
		panic(err)
	}
	if err := t.SetID(id); err != nil {
		panic(err)
	}
	if err := t.SetNumber("TSK_20260901_000001"); err != nil {
		panic(err)
	}
	if len(assignees) > 0 {
		t.Assign(assignees, 5)
	}
	return t
}

// savedTestTask builds a persisted-looking test task created by user 5.
func savedTestTask(id uint, assignees []uint) *task.TestTask {
	t, err := task.NewTestTask("Verify export", "Check CSV columns", vo.UrgencyMedium, vo.Priority(3), 5)
	if err != nil {
		panic(err)
	}
	if err := t.SetID(id); err != nil {
		panic(err)
	}
	if err := t.SetNumber("TST_20260901_000001"); err != nil {
		panic(err)
	}
	if len(assignees) > 0 {
		t.Assign(assignees, 5)
	}
	return t
}
