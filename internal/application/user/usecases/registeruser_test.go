package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
)

func TestRegisterUser_Success(t *testing.T) {
	var saved *user.User
	userRepo := &mockUserRepo{
		saveFn: func(ctx context.Context, u *user.User) error {
			saved = u
			return u.SetID(1)
		},
	}

	uc := NewRegisterUserUseCase(userRepo, &mockHasher{}, testLogger())
	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		FirstName: "Lina",
		LastName:  "Torres",
		Email:     "Lina@DeskFlow.test",
		Password:  "s3cretpass",
		Role:      "client",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), result.User.ID)
	assert.Equal(t, "lina@deskflow.test", result.User.Email, "emails are lowercased")
	assert.Equal(t, "hash:s3cretpass", saved.PasswordHash())
	assert.Equal(t, "en", result.User.Language)
}

func TestRegisterUser_HierarchicalParent(t *testing.T) {
	parentID := uint(4)

	t.Run("developer requires a group leader parent", func(t *testing.T) {
		userRepo := &mockUserRepo{
			getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
				assert.Equal(t, parentID, id)
				return testUser(id, "lead@deskflow.test", "x", authorization.RoleGroupLeader, false), nil
			},
			saveFn: func(ctx context.Context, u *user.User) error { return u.SetID(2) },
		}

		uc := NewRegisterUserUseCase(userRepo, &mockHasher{}, testLogger())
		result, err := uc.Execute(context.Background(), RegisterUserCommand{
			FirstName: "Dana",
			LastName:  "Karim",
			Email:     "dana@deskflow.test",
			Password:  "s3cretpass",
			Role:      "developer",
			ParentID:  &parentID,
		})

		assert.NoError(t, err)
		if assert.NotNil(t, result.User.ParentID) {
			assert.Equal(t, parentID, *result.User.ParentID)
		}
	})

	t.Run("missing parent rejected", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&mockUserRepo{}, &mockHasher{}, testLogger())
		_, err := uc.Execute(context.Background(), RegisterUserCommand{
			FirstName: "Dana", LastName: "Karim", Email: "dana@deskflow.test",
			Password: "s3cretpass", Role: "developer",
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("parent with wrong role rejected", func(t *testing.T) {
		userRepo := &mockUserRepo{
			getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
				return testUser(id, "pm@deskflow.test", "x", authorization.RoleProjectManager, false), nil
			},
		}
		uc := NewRegisterUserUseCase(userRepo, &mockHasher{}, testLogger())
		_, err := uc.Execute(context.Background(), RegisterUserCommand{
			FirstName: "Dana", LastName: "Karim", Email: "dana@deskflow.test",
			Password: "s3cretpass", Role: "developer", ParentID: &parentID,
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("client ignores parent requirement", func(t *testing.T) {
		userRepo := &mockUserRepo{
			saveFn: func(ctx context.Context, u *user.User) error { return u.SetID(3) },
		}
		uc := NewRegisterUserUseCase(userRepo, &mockHasher{}, testLogger())
		result, err := uc.Execute(context.Background(), RegisterUserCommand{
			FirstName: "Marc", LastName: "Petit", Email: "marc@deskflow.test",
			Password: "s3cretpass", Role: "client", ParentID: &parentID,
		})
		assert.NoError(t, err)
		assert.Nil(t, result.User.ParentID, "non hierarchical roles drop the parent")
	})
}

func TestRegisterUser_Validation(t *testing.T) {
	uc := NewRegisterUserUseCase(&mockUserRepo{}, &mockHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		FirstName: "A", LastName: "B", Email: "a@b.test", Password: "s3cretpass", Role: "wizard",
	})
	assert.True(t, errors.IsValidationError(err), "unknown role")

	_, err = uc.Execute(context.Background(), RegisterUserCommand{
		FirstName: "A", LastName: "B", Email: "a@b.test", Password: "short", Role: "client",
	})
	assert.True(t, errors.IsValidationError(err), "password too short")

	_, err = uc.Execute(context.Background(), RegisterUserCommand{
		FirstName: "A", LastName: "B", Email: "not-an-email", Password: "s3cretpass", Role: "client",
	})
	assert.True(t, errors.IsValidationError(err), "invalid email")
}

func TestRegisterUser_SaveFailure(t *testing.T) {
	userRepo := &mockUserRepo{
		saveFn: func(ctx context.Context, u *user.User) error {
			return errors.NewConflictError("email already registered")
		},
	}
	uc := NewRegisterUserUseCase(userRepo, &mockHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		FirstName: "A", LastName: "B", Email: "a@b.test", Password: "s3cretpass", Role: "client",
	})
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterUser_HashFailure(t *testing.T) {
	uc := NewRegisterUserUseCase(&mockUserRepo{}, &mockHasher{hashErr: fmt.Errorf("bcrypt cost invalid")}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		FirstName: "A", LastName: "B", Email: "a@b.test", Password: "s3cretpass", Role: "client",
	})
	assert.Error(t, err)
}
