package user

import (
	"context"

	"deskflow/internal/shared/authorization"
)

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByIDs(ctx context.Context, userIDs []uint) ([]*User, error)
	ListByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)
	ListAll(ctx context.Context, page, pageSize int) ([]*User, int64, error)
}
