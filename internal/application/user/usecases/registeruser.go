package usecases

import (
	"context"
	"time"

	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type RegisterUserCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	ParentID  *uint
	Language  string
}

type UserDTO struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ParentID  *uint     `json:"parent_id,omitempty"`
	Suspended bool      `json:"suspended"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterUserResult struct {
	User UserDTO
}

type RegisterUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email, "role", cmd.Role)

	role, ok := authorization.ParseUserRole(cmd.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	// Hierarchical roles must report to a parent holding the right role.
	if parentRole, required := role.RequiredParentRole(); required {
		if cmd.ParentID == nil || *cmd.ParentID == 0 {
			return nil, errors.NewValidationError("this role requires a hierarchical parent")
		}
		parent, err := uc.userRepo.GetByID(ctx, *cmd.ParentID)
		if err != nil {
			return nil, errors.NewValidationError("hierarchical parent not found")
		}
		if parent.Role() != parentRole {
			return nil, errors.NewValidationError("hierarchical parent holds the wrong role")
		}
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.FirstName, cmd.LastName, cmd.Email, hash, role, cmd.ParentID, cmd.Language)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err, "email", cmd.Email)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", cmd.Role)

	return &RegisterUserResult{User: toUserDTO(newUser)}, nil
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
		Role:      string(u.Role()),
		ParentID:  u.ParentID(),
		Suspended: u.Suspended(),
		Language:  u.Language(),
		CreatedAt: u.CreatedAt(),
	}
}
