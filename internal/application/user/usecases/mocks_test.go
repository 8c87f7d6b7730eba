package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"deskflow/internal/domain/user"
	"deskflow/internal/infrastructure/auth"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockUserRepo struct {
	saveFn       func(ctx context.Context, u *user.User) error
	updateFn     func(ctx context.Context, u *user.User) error
	deleteFn     func(ctx context.Context, userID uint) error
	getByIDFn    func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
	listAllFn    func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, userID uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFn(ctx, email)
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

// mockHasher treats "hash:<password>" as the stored hash.
type mockHasher struct {
	hashErr error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashErr != nil {
		return "", m.hashErr
	}
	return "hash:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hash:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockTokenService struct {
	generateFn func(userID uint, name string, role authorization.UserRole) (*auth.TokenPair, error)
	verifyFn   func(tokenString string) (*auth.Claims, error)
}

func (m *mockTokenService) Generate(userID uint, name string, role authorization.UserRole) (*auth.TokenPair, error) {
	if m.generateFn != nil {
		return m.generateFn(userID, name, role)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenService) Verify(tokenString string) (*auth.Claims, error) {
	return m.verifyFn(tokenString)
}

func testUser(id uint, email, password string, role authorization.UserRole, suspended bool) *user.User {
	u, err := user.ReconstructUser(id, "Marc", "Petit", email, "hash:"+password, role, nil, suspended, "en", time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	return u
}

type mockDenylist struct {
	revokeFn    func(ctx context.Context, token string, ttl time.Duration) error
	isRevokedFn func(ctx context.Context, token string) (bool, error)
}

func (m *mockDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, token, ttl)
	}
	return nil
}

func (m *mockDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	if m.isRevokedFn != nil {
		return m.isRevokedFn(ctx, token)
	}
	return false, nil
}
