package mappers

import (
	"fmt"

	"deskflow/internal/domain/user"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and
// persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		ParentID:     u.ParentID(),
		Suspended:    u.Suspended(),
		Language:     u.Language(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, ok := authorization.ParseUserRole(model.Role)
	if !ok {
		return nil, fmt.Errorf("unknown role %q on user %d", model.Role, model.ID)
	}

	return user.ReconstructUser(
		model.ID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.PasswordHash,
		role,
		model.ParentID,
		model.Suspended,
		model.Language,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
