package usecases

import (
	"context"

	"deskflow/internal/domain/user"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.UserRepository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	dto := toUserDTO(u)
	return &dto, nil
}

type UpdateProfileCommand struct {
	UserID    uint
	FirstName string
	LastName  string
	Language  string
}

type UpdateProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.UserRepository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.Language); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user profile", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	dto := toUserDTO(u)
	return &dto, nil
}

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if len(cmd.NewPassword) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if err := uc.hasher.Verify(cmd.CurrentPassword, u.PasswordHash()); err != nil {
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to process password")
	}

	if err := u.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist password change", "error", err, "user_id", cmd.UserID)
		return err
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
