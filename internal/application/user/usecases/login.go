package usecases

import (
	"context"

	"deskflow/internal/domain/user"
	"deskflow/internal/infrastructure/auth"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         UserDTO
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Warnw("login attempt for unknown email", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if u.Suspended() {
		uc.logger.Warnw("login attempt for suspended account", "user_id", u.ID())
		return nil, errors.NewForbiddenError("account is suspended")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.Generate(u.ID(), u.FullName(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())

	return &LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         toUserDTO(u),
	}, nil
}

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo user.UserRepository
	tokens   TokenService
	denylist TokenDenylist
	logger   logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.UserRepository,
	tokens TokenService,
	denylist TokenDenylist,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		denylist: denylist,
		logger:   logger,
	}
}

// Execute exchanges a valid refresh token for a new pair. The user is
// reloaded so a suspension or role change takes effect immediately.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*LoginResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil || claims.TokenType != auth.TokenTypeRefresh {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	revoked, err := uc.denylist.IsRevoked(ctx, cmd.RefreshToken)
	if err != nil {
		uc.logger.Errorw("failed to check token revocation", "error", err)
		return nil, errors.NewInternalError("failed to verify token")
	}
	if revoked {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if u.Suspended() {
		return nil, errors.NewForbiddenError("account is suspended")
	}

	pair, err := uc.tokens.Generate(u.ID(), u.FullName(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return &LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         toUserDTO(u),
	}, nil
}
