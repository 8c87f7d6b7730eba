package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockNotificationRepo struct {
	bulkCreateFn func(ctx context.Context, notifications []*notification.Notification) error
	listFn       func(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error)
	countFn      func(ctx context.Context, userID uint) (int64, error)
	markReadFn   func(ctx context.Context, userID, notificationID uint) error
	markAllFn    func(ctx context.Context, userID uint) error
}

func (m *mockNotificationRepo) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	return m.bulkCreateFn(ctx, notifications)
}

func (m *mockNotificationRepo) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	return m.listFn(ctx, userID, limit, offset)
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return m.countFn(ctx, userID)
}

func (m *mockNotificationRepo) MarkAsRead(ctx context.Context, userID, notificationID uint) error {
	return m.markReadFn(ctx, userID, notificationID)
}

func (m *mockNotificationRepo) MarkAllAsRead(ctx context.Context, userID uint) error {
	return m.markAllFn(ctx, userID)
}

type mockUserRepo struct {
	listAllFn func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, userID uint) error  { return nil }
func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}
func (m *mockUserRepo) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	return nil, nil
}
func (m *mockUserRepo) ListAll(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	return m.listAllFn(ctx, page, pageSize)
}

type mockCreateNotifications struct {
	commands []CreateNotificationsCommand
	err      error
}

func (m *mockCreateNotifications) Execute(ctx context.Context, cmd CreateNotificationsCommand) error {
	m.commands = append(m.commands, cmd)
	return m.err
}

func testUser(id uint, firstName, lastName string) *user.User {
	u, err := user.ReconstructUser(id, firstName, lastName, "u@deskflow.test", "hash",
		authorization.RoleDeveloper, nil, false, "en", time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	return u
}
