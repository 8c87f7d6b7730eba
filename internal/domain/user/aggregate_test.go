package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/shared/authorization"
)

func TestNewUser_NormalizesNames(t *testing.T) {
	tests := []struct {
		name      string
		first     string
		last      string
		wantFirst string
		wantLast  string
	}{
		{"lowercase input", "marc", "petit", "Marc", "Petit"},
		{"uppercase input", "MARC", "PETIT", "Marc", "Petit"},
		{"surrounding whitespace", "  Ana ", " Ruiz  ", "Ana", "Ruiz"},
		{"compound name", "jean paul", "van der berg", "Jean Paul", "Van Der Berg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.first, tt.last, "u@deskflow.test", "hash", authorization.RoleClient, nil, "en")
			assert.NoError(t, err)
			assert.Equal(t, tt.wantFirst, u.FirstName())
			assert.Equal(t, tt.wantLast, u.LastName())
		})
	}

	t.Run("whitespace only is rejected", func(t *testing.T) {
		_, err := NewUser("   ", "Petit", "u@deskflow.test", "hash", authorization.RoleClient, nil, "en")
		assert.Error(t, err)
	})
}

func TestUpdateProfile_NormalizesNames(t *testing.T) {
	u, err := NewUser("Marc", "Petit", "u@deskflow.test", "hash", authorization.RoleClient, nil, "en")
	assert.NoError(t, err)

	assert.NoError(t, u.UpdateProfile("lina", "TORRES", ""))
	assert.Equal(t, "Lina", u.FirstName())
	assert.Equal(t, "Torres", u.LastName())
	assert.Equal(t, "LinaTorres", u.MentionKey())
}
