package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"deskflow/internal/infrastructure/auth"
	"deskflow/internal/shared/errors"
)

func refreshClaims(userID uint, expiry time.Time) *auth.Claims {
	return &auth.Claims{
		UserID:    userID,
		TokenType: auth.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}
}

func TestLogout_RevokesUntilExpiry(t *testing.T) {
	expiry := time.Now().Add(24 * time.Hour)
	tokens := &mockTokenService{
		verifyFn: func(tokenString string) (*auth.Claims, error) {
			return refreshClaims(1, expiry), nil
		},
	}

	var revokedToken string
	var revokedFor time.Duration
	denylist := &mockDenylist{
		revokeFn: func(ctx context.Context, token string, ttl time.Duration) error {
			revokedToken = token
			revokedFor = ttl
			return nil
		},
	}

	uc := NewLogoutUseCase(tokens, denylist, testLogger())
	err := uc.Execute(context.Background(), LogoutCommand{UserID: 1, RefreshToken: "refresh"})

	assert.NoError(t, err)
	assert.Equal(t, "refresh", revokedToken)
	assert.InDelta(t, (24 * time.Hour).Seconds(), revokedFor.Seconds(), 5)
}

func TestLogout_Failures(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewLogoutUseCase(&mockTokenService{}, &mockDenylist{}, testLogger())
		err := uc.Execute(context.Background(), LogoutCommand{UserID: 1})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("access token is refused", func(t *testing.T) {
		tokens := &mockTokenService{
			verifyFn: func(tokenString string) (*auth.Claims, error) {
				return &auth.Claims{UserID: 1, TokenType: auth.TokenTypeAccess}, nil
			},
		}
		uc := NewLogoutUseCase(tokens, &mockDenylist{}, testLogger())
		err := uc.Execute(context.Background(), LogoutCommand{UserID: 1, RefreshToken: "access"})
		appErr := errors.GetAppError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("token of another user", func(t *testing.T) {
		tokens := &mockTokenService{
			verifyFn: func(tokenString string) (*auth.Claims, error) {
				return refreshClaims(2, time.Now().Add(time.Hour)), nil
			},
		}
		uc := NewLogoutUseCase(tokens, &mockDenylist{}, testLogger())
		err := uc.Execute(context.Background(), LogoutCommand{UserID: 1, RefreshToken: "refresh"})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("denylist failure", func(t *testing.T) {
		tokens := &mockTokenService{
			verifyFn: func(tokenString string) (*auth.Claims, error) {
				return refreshClaims(1, time.Now().Add(time.Hour)), nil
			},
		}
		denylist := &mockDenylist{
			revokeFn: func(ctx context.Context, token string, ttl time.Duration) error {
				return assert.AnError
			},
		}
		uc := NewLogoutUseCase(tokens, denylist, testLogger())
		err := uc.Execute(context.Background(), LogoutCommand{UserID: 1, RefreshToken: "refresh"})
		appErr := errors.GetAppError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, 500, appErr.Code)
	})
}
