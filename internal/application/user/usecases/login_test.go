package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/domain/user"
	"deskflow/internal/infrastructure/auth"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
)

func TestLogin_Success(t *testing.T) {
	userRepo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "marc@deskflow.test", email)
			return testUser(1, "marc@deskflow.test", "s3cretpass", authorization.RoleClient, false), nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, testLogger())
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "marc@deskflow.test", Password: "s3cretpass"})

	assert.NoError(t, err)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, int64(900), result.ExpiresIn)
	assert.Equal(t, "client", result.User.Role)
}

func TestLogin_Failures(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepo{}, &mockHasher{}, &mockTokenService{}, testLogger())
		_, err := uc.Execute(context.Background(), LoginCommand{Email: "marc@deskflow.test"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown email maps to unauthorized", func(t *testing.T) {
		userRepo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
		}
		uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, testLogger())
		_, err := uc.Execute(context.Background(), LoginCommand{Email: "ghost@deskflow.test", Password: "whatever1"})
		appErr := errors.GetAppError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return testUser(1, email, "s3cretpass", authorization.RoleClient, false), nil
			},
		}
		uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, testLogger())
		_, err := uc.Execute(context.Background(), LoginCommand{Email: "marc@deskflow.test", Password: "wrongpass"})
		appErr := errors.GetAppError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("suspended account", func(t *testing.T) {
		userRepo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return testUser(1, email, "s3cretpass", authorization.RoleClient, true), nil
			},
		}
		uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenService{}, testLogger())
		_, err := uc.Execute(context.Background(), LoginCommand{Email: "marc@deskflow.test", Password: "s3cretpass"})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("token issuance failure", func(t *testing.T) {
		userRepo := &mockUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return testUser(1, email, "s3cretpass", authorization.RoleClient, false), nil
			},
		}
		tokens := &mockTokenService{
			generateFn: func(userID uint, name string, role authorization.UserRole) (*auth.TokenPair, error) {
				return nil, fmt.Errorf("signing key missing")
			},
		}
		uc := NewLoginUseCase(userRepo, &mockHasher{}, tokens, testLogger())
		_, err := uc.Execute(context.Background(), LoginCommand{Email: "marc@deskflow.test", Password: "s3cretpass"})
		assert.Error(t, err)
	})
}

func TestRefreshToken(t *testing.T) {
	activeUser := testUser(1, "marc@deskflow.test", "s3cretpass", authorization.RoleClient, false)

	t.Run("valid refresh token", func(t *testing.T) {
		userRepo := &mockUserRepo{
			getByIDFn: func(ctx context.Context, id uint) (*user.User, error) { return activeUser, nil },
		}
		tokens := &mockTokenService{
			verifyFn: func(tokenString string) (*auth.Claims, error) {
				return &auth.Claims{UserID: 1, TokenType: auth.TokenTypeRefresh}, nil
			},
		}
		uc := NewRefreshTokenUseCase(userRepo, tokens, &mockDenylist{}, testLogger())
		result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh"})
		assert.NoError(t, err)
		assert.Equal(t, "access", result.AccessToken)
	})

	t.Run("access token is refused", func(t *testing.T) {
		tokens := &mockTokenService{
			verifyFn: func(tokenString string) (*auth.Claims, error) {
				return &auth.Claims{UserID: 1, TokenType: auth.TokenTypeAccess}, nil
			},
		}
		uc := NewRefreshTokenUseCase(&mockUserRepo{}, tokens, &mockDenylist{}, testLogger())
		_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "access"})
		appErr := errors.GetAppError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("revoked token is refused", func(t *testing.T) {
		tokens := &mockTokenService{
			verifyFn: func(tokenString string) (*auth.Claims, error) {
				return &auth.Claims{UserID: 1, TokenType: auth.TokenTypeRefresh}, nil
			},
		}
		denylist := &mockDenylist{
			isRevokedFn: func(ctx context.Context, token string) (bool, error) { return true, nil },
		}
		uc := NewRefreshTokenUseCase(&mockUserRepo{}, tokens, denylist, testLogger())
		_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh"})
		appErr := errors.GetAppError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("suspension takes effect on refresh", func(t *testing.T) {
		userRepo := &mockUserRepo{
			getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
				return testUser(1, "marc@deskflow.test", "s3cretpass", authorization.RoleClient, true), nil
			},
		}
		tokens := &mockTokenService{
			verifyFn: func(tokenString string) (*auth.Claims, error) {
				return &auth.Claims{UserID: 1, TokenType: auth.TokenTypeRefresh}, nil
			},
		}
		uc := NewRefreshTokenUseCase(userRepo, tokens, &mockDenylist{}, testLogger())
		_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh"})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("empty token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(&mockUserRepo{}, &mockTokenService{}, &mockDenylist{}, testLogger())
		_, err := uc.Execute(context.Background(), RefreshTokenCommand{})
		assert.True(t, errors.IsValidationError(err))
	})
}
