package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
)

func TestChangeStatus_Success(t *testing.T) {
	tk := savedTicket(1)
	updated := false
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			assert.Equal(t, uint(1), id)
			return tk, nil
		},
		updateFn: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = true
			return nil
		},
	}
	userRepo := &mockUserRepo{
		listByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
			assert.Equal(t, authorization.RoleAdmin, role)
			return []*user.User{testUser(99, "Rita", "Admin", "rita@deskflow.test", authorization.RoleAdmin)}, nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewChangeStatusUseCase(ticketRepo, userRepo, notifier, testLogger())
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "InProgress", ChangedBy: 5})

	assert.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, "Sent", result.OldStatus)
	assert.Equal(t, "InProgress", result.NewStatus)
	assert.True(t, updated)

	if assert.Len(t, notifier.notifications, 1) {
		assert.Contains(t, notifier.notifications[0].UserIDs, uint(10), "the client is notified")
		assert.Contains(t, notifier.notifications[0].UserIDs, uint(99), "admins are notified")
	}
}

func TestChangeStatus_AdminRecipientsAreDeduplicated(t *testing.T) {
	tk := savedTicket(1)
	// The admin already holds a relationship slot; they appear once.
	tk.AssignRoles(authorization.RoleAdmin, []ticket.SlotAssignment{
		{Slot: authorization.SlotProjectManager, UserID: 99},
	}, 99)

	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepo{
		listByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
			return []*user.User{testUser(99, "Rita", "Admin", "rita@deskflow.test", authorization.RoleAdmin)}, nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewChangeStatusUseCase(ticketRepo, userRepo, notifier, testLogger())
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "Closed", ChangedBy: 99})

	assert.NoError(t, err)
	if assert.Len(t, notifier.notifications, 1) {
		count := 0
		for _, id := range notifier.notifications[0].UserIDs {
			if id == 99 {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestChangeStatus_SameStatusIsNoOp(t *testing.T) {
	tk := savedTicket(1)
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		updateFn: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("no-op status change must not persist")
			return nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewChangeStatusUseCase(ticketRepo, &mockUserRepo{}, notifier, testLogger())
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "Sent", ChangedBy: 5})

	assert.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Empty(t, notifier.notifications)
}

func TestChangeStatus_Failures(t *testing.T) {
	t.Run("zero ticket id", func(t *testing.T) {
		uc := NewChangeStatusUseCase(&mockTicketRepo{}, &mockUserRepo{}, &mockNotifier{}, testLogger())
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{NewStatus: "Sent"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown status value", func(t *testing.T) {
		uc := NewChangeStatusUseCase(&mockTicketRepo{}, &mockUserRepo{}, &mockNotifier{}, testLogger())
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "Archived"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("ticket not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepo{
			getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		uc := NewChangeStatusUseCase(ticketRepo, &mockUserRepo{}, &mockNotifier{}, testLogger())
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 9, NewStatus: "InProgress"})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("update failure surfaces", func(t *testing.T) {
		tk := savedTicket(1)
		ticketRepo := &mockTicketRepo{
			getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			updateFn:  func(ctx context.Context, tk *ticket.Ticket) error { return fmt.Errorf("deadlock") },
		}
		uc := NewChangeStatusUseCase(ticketRepo, &mockUserRepo{}, &mockNotifier{}, testLogger())
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 1, NewStatus: "InProgress"})
		assert.Error(t, err)
	})
}
