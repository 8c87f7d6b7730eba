package usecases

import (
	"context"
	"time"

	"deskflow/internal/infrastructure/auth"
	"deskflow/internal/shared/authorization"
)

// PasswordHasher abstracts the bcrypt implementation for testability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenService issues and verifies the JWT pairs used by the auth surface.
type TokenService interface {
	Generate(userID uint, name string, role authorization.UserRole) (*auth.TokenPair, error)
	Verify(tokenString string) (*auth.Claims, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// TokenDenylist holds revoked refresh tokens until they expire on their own.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*UserDTO, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

type SuspendUserExecutor interface {
	Execute(ctx context.Context, cmd SuspendUserCommand) error
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}
