package usecases

import (
	"context"
	"time"

	"deskflow/internal/infrastructure/auth"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type LogoutCommand struct {
	UserID       uint
	RefreshToken string
}

type LogoutUseCase struct {
	tokens   TokenService
	denylist TokenDenylist
	logger   logger.Interface
}

func NewLogoutUseCase(tokens TokenService, denylist TokenDenylist, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		tokens:   tokens,
		denylist: denylist,
		logger:   logger,
	}
}

// Execute revokes the refresh token so it can no longer be exchanged. The
// access token stays valid until it expires on its own; the client is
// expected to discard both.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.RefreshToken == "" {
		return errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil || claims.TokenType != auth.TokenTypeRefresh {
		return errors.NewUnauthorizedError("invalid refresh token")
	}
	if claims.UserID != cmd.UserID {
		return errors.NewForbiddenError("token does not belong to the caller")
	}

	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := uc.denylist.Revoke(ctx, cmd.RefreshToken, ttl); err != nil {
		uc.logger.Errorw("failed to revoke refresh token", "error", err, "user_id", cmd.UserID)
		return errors.NewInternalError("failed to log out")
	}

	uc.logger.Infow("user logged out", "user_id", cmd.UserID)
	return nil
}
