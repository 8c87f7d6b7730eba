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

func validCreateTicketCommand() CreateTicketCommand {
	return CreateTicketCommand{
		Title:       "Login page broken",
		Application: "CRM",
		Environment: "production",
		RequestType: "bug",
		Description: "500 on submit",
		Urgency:     "High",
		CallerID:    10,
		CallerRole:  "client",
	}
}

func TestCreateTicket_Success(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepo{
		saveFn: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(1)
		},
	}
	userRepo := &mockUserRepo{
		listByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
			assert.Equal(t, authorization.RoleAgentCommercial, role)
			return []*user.User{testUser(3, "Ana", "Ruiz", "ana@deskflow.test", authorization.RoleAgentCommercial)}, nil
		},
	}
	notifier := &mockNotifier{}
	numbers := &fixedNumberGenerator{number: "TCK_INC_01/09/2026_URG_000042"}

	uc := NewCreateTicketUseCase(ticketRepo, userRepo, numbers, notifier, testLogger())
	result, err := uc.Execute(context.Background(), validCreateTicketCommand())

	assert.NoError(t, err)
	assert.Equal(t, uint(1), result.TicketID)
	assert.Equal(t, "TCK_INC_01/09/2026_URG_000042", result.Number)
	assert.Equal(t, "Sent", result.Status)
	if assert.NotNil(t, saved) {
		assert.Equal(t, uint(10), saved.Assignments().Client)
	}

	// Commercial agents are notified of the new submission.
	if assert.Len(t, notifier.notifications, 1) {
		assert.Equal(t, []uint{3}, notifier.notifications[0].UserIDs)
	}
}

func TestCreateTicket_ClientBinding(t *testing.T) {
	t.Run("client always opens for themself", func(t *testing.T) {
		var saved *ticket.Ticket
		ticketRepo := &mockTicketRepo{
			saveFn: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return tk.SetID(1)
			},
		}
		userRepo := &mockUserRepo{
			listByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
				return nil, nil
			},
		}
		uc := NewCreateTicketUseCase(ticketRepo, userRepo, &fixedNumberGenerator{number: "N1"}, &mockNotifier{}, testLogger())

		cmd := validCreateTicketCommand()
		cmd.ClientID = 99
		_, err := uc.Execute(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, uint(10), saved.Assignments().Client)
	})

	t.Run("agent must name the client", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepo{}, &mockUserRepo{}, &fixedNumberGenerator{number: "N1"}, &mockNotifier{}, testLogger())

		cmd := validCreateTicketCommand()
		cmd.CallerRole = "agentCommercial"
		cmd.CallerID = 5
		cmd.ClientID = 0
		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("agent binds the named client", func(t *testing.T) {
		var saved *ticket.Ticket
		ticketRepo := &mockTicketRepo{
			saveFn: func(ctx context.Context, tk *ticket.Ticket) error {
				saved = tk
				return tk.SetID(1)
			},
		}
		userRepo := &mockUserRepo{
			listByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
				return nil, nil
			},
		}
		uc := NewCreateTicketUseCase(ticketRepo, userRepo, &fixedNumberGenerator{number: "N1"}, &mockNotifier{}, testLogger())

		cmd := validCreateTicketCommand()
		cmd.CallerRole = "agentCommercial"
		cmd.CallerID = 5
		cmd.ClientID = 10
		_, err := uc.Execute(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, uint(10), saved.Assignments().Client)
	})
}

func TestCreateTicket_ContactsWithAccountsAreNotified(t *testing.T) {
	ticketRepo := &mockTicketRepo{
		saveFn: func(ctx context.Context, tk *ticket.Ticket) error { return tk.SetID(1) },
	}
	userRepo := &mockUserRepo{
		listByRoleFn: func(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
			return nil, nil
		},
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == "lina@deskflow.test" {
				return testUser(7, "Lina", "Torres", "lina@deskflow.test", authorization.RoleClient), nil
			}
			return nil, fmt.Errorf("not found")
		},
	}
	notifier := &mockNotifier{}

	uc := NewCreateTicketUseCase(ticketRepo, userRepo, &fixedNumberGenerator{number: "N1"}, notifier, testLogger())

	cmd := validCreateTicketCommand()
	cmd.Contacts = []ticket.Contact{
		{Name: "Lina Torres", Email: "lina@deskflow.test"},
		{Name: "No Account", Email: "ghost@deskflow.test"},
		{Name: "Phone Only", Phone: "0600000000"},
	}
	_, err := uc.Execute(context.Background(), cmd)

	assert.NoError(t, err)
	// Only the contact with a registered account is notified.
	if assert.Len(t, notifier.notifications, 1) {
		assert.Equal(t, []uint{7}, notifier.notifications[0].UserIDs)
		assert.Contains(t, notifier.notifications[0].Message, "added as a contact")
	}
}

func TestCreateTicket_DraftSkipsNotification(t *testing.T) {
	ticketRepo := &mockTicketRepo{
		saveFn: func(ctx context.Context, tk *ticket.Ticket) error { return tk.SetID(1) },
	}
	notifier := &mockNotifier{}

	uc := NewCreateTicketUseCase(ticketRepo, &mockUserRepo{}, &fixedNumberGenerator{number: "N1"}, notifier, testLogger())

	cmd := validCreateTicketCommand()
	cmd.Draft = true
	result, err := uc.Execute(context.Background(), cmd)

	assert.NoError(t, err)
	assert.Equal(t, "Draft", result.Status)
	assert.Empty(t, notifier.notifications)
}

func TestCreateTicket_RoleAndValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateTicketCommand)
		check  func(*testing.T, error)
	}{
		{
			"developer may not open tickets",
			func(c *CreateTicketCommand) { c.CallerRole = "developer" },
			func(t *testing.T, err error) { assert.True(t, errors.IsForbiddenError(err)) },
		},
		{
			"unknown role",
			func(c *CreateTicketCommand) { c.CallerRole = "superuser" },
			func(t *testing.T, err error) { assert.True(t, errors.IsForbiddenError(err)) },
		},
		{
			"invalid urgency",
			func(c *CreateTicketCommand) { c.Urgency = "extreme" },
			func(t *testing.T, err error) { assert.True(t, errors.IsValidationError(err)) },
		},
		{
			"missing title",
			func(c *CreateTicketCommand) { c.Title = "" },
			func(t *testing.T, err error) { assert.True(t, errors.IsValidationError(err)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateTicketUseCase(&mockTicketRepo{}, &mockUserRepo{}, &fixedNumberGenerator{number: "N1"}, &mockNotifier{}, testLogger())

			cmd := validCreateTicketCommand()
			tt.mutate(&cmd)
			_, err := uc.Execute(context.Background(), cmd)
			assert.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestCreateTicket_NumberGenerationFailure(t *testing.T) {
	numbers := &fixedNumberGenerator{err: fmt.Errorf("rng exhausted")}
	uc := NewCreateTicketUseCase(&mockTicketRepo{}, &mockUserRepo{}, numbers, &mockNotifier{}, testLogger())

	_, err := uc.Execute(context.Background(), validCreateTicketCommand())
	assert.Error(t, err)
}

func TestCreateTicket_SaveFailure(t *testing.T) {
	ticketRepo := &mockTicketRepo{
		saveFn: func(ctx context.Context, tk *ticket.Ticket) error { return fmt.Errorf("connection reset") },
	}
	uc := NewCreateTicketUseCase(ticketRepo, &mockUserRepo{}, &fixedNumberGenerator{number: "N1"}, &mockNotifier{}, testLogger())

	_, err := uc.Execute(context.Background(), validCreateTicketCommand())
	assert.Error(t, err)
}
