package usecases

import (
	"context"

	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type SuspendUserCommand struct {
	UserID    uint
	Suspended bool
}

type SuspendUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewSuspendUserUseCase(userRepo user.UserRepository, logger logger.Interface) *SuspendUserUseCase {
	return &SuspendUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *SuspendUserUseCase) Execute(ctx context.Context, cmd SuspendUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if cmd.Suspended {
		u.Suspend()
	} else {
		u.Unsuspend()
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to persist suspension change", "error", err, "user_id", cmd.UserID)
		return err
	}

	uc.logger.Infow("user suspension changed", "user_id", cmd.UserID, "suspended", cmd.Suspended)
	return nil
}

type ListUsersQuery struct {
	Role     string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	var (
		users []*user.User
		total int64
		err   error
	)

	if query.Role != "" {
		role, ok := authorization.ParseUserRole(query.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role filter")
		}
		users, err = uc.userRepo.ListByRole(ctx, role)
		total = int64(len(users))
	} else {
		users, total, err = uc.userRepo.ListAll(ctx, query.Page, query.PageSize)
	}
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}

	return &ListUsersResult{Users: dtos, Total: total}, nil
}

type DeleteUserCommand struct {
	UserID uint
}

type DeleteUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.UserRepository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", cmd.UserID)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}
