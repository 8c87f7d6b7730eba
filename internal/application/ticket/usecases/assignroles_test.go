package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
)

func TestAssignRoles_Success(t *testing.T) {
	tk := savedTicket(1)
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(id, "Paul", "Martin", "paul@deskflow.test", authorization.RoleProjectManager), nil
		},
	}
	notifier := &mockNotifier{}

	uc := NewAssignRolesUseCase(ticketRepo, userRepo, notifier, &mockEmailSender{}, testLogger())
	result, err := uc.Execute(context.Background(), AssignRolesCommand{
		TicketID:   1,
		Requests:   []SlotRequest{{Slot: "projectManager", UserID: 20}},
		AssignedBy: 1,
		CallerRole: "admin",
	})

	assert.NoError(t, err)
	assert.Equal(t, []uint{20}, result.AssignedUserIDs)

	if assert.Len(t, notifier.notifications, 1) {
		assert.Equal(t, []uint{20}, notifier.notifications[0].UserIDs)
	}
}

func TestAssignRoles_RoleMismatchRejected(t *testing.T) {
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(id, "Dana", "Karim", "dana@deskflow.test", authorization.RoleDeveloper), nil
		},
	}

	uc := NewAssignRolesUseCase(&mockTicketRepo{}, userRepo, &mockNotifier{}, &mockEmailSender{}, testLogger())
	_, err := uc.Execute(context.Background(), AssignRolesCommand{
		TicketID:   1,
		Requests:   []SlotRequest{{Slot: "projectManager", UserID: 20}},
		AssignedBy: 1,
		CallerRole: "admin",
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestAssignRoles_UnauthorizedSlotsAreSkipped(t *testing.T) {
	tk := savedTicket(1)
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		updateFn: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("nothing applied, nothing to persist")
			return nil
		},
	}
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(id, "Rita", "Sow", "rita@deskflow.test", authorization.RoleResponsibleTester), nil
		},
	}

	uc := NewAssignRolesUseCase(ticketRepo, userRepo, &mockNotifier{}, &mockEmailSender{}, testLogger())
	result, err := uc.Execute(context.Background(), AssignRolesCommand{
		TicketID:   1,
		Requests:   []SlotRequest{{Slot: "responsibleTester", UserID: 30}},
		AssignedBy: 2,
		CallerRole: "agentCommercial",
	})

	assert.NoError(t, err)
	assert.Empty(t, result.AssignedUserIDs)
}

func TestAssignRoles_ClientSlotSendsInvitation(t *testing.T) {
	tk := savedTicket(1)
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(id, "Nora", "Valdez", "nora@deskflow.test", authorization.RoleResponsibleClient), nil
		},
	}
	emails := &mockEmailSender{}

	uc := NewAssignRolesUseCase(ticketRepo, userRepo, &mockNotifier{}, emails, testLogger())
	result, err := uc.Execute(context.Background(), AssignRolesCommand{
		TicketID:   1,
		Requests:   []SlotRequest{{Slot: "responsibleClient", UserID: 40}},
		AssignedBy: 1,
		CallerRole: "admin",
	})

	assert.NoError(t, err)
	assert.Equal(t, []uint{40}, result.AssignedUserIDs)
	assert.Equal(t, []string{"nora@deskflow.test"}, emails.invitations)
}

func TestAssignRoles_Validation(t *testing.T) {
	uc := NewAssignRolesUseCase(&mockTicketRepo{}, &mockUserRepo{}, &mockNotifier{}, &mockEmailSender{}, testLogger())

	_, err := uc.Execute(context.Background(), AssignRolesCommand{Requests: []SlotRequest{{Slot: "projectManager", UserID: 1}}, CallerRole: "admin"})
	assert.True(t, errors.IsValidationError(err), "ticket ID required")

	_, err = uc.Execute(context.Background(), AssignRolesCommand{TicketID: 1, CallerRole: "admin"})
	assert.True(t, errors.IsValidationError(err), "at least one request required")

	_, err = uc.Execute(context.Background(), AssignRolesCommand{
		TicketID:   1,
		Requests:   []SlotRequest{{Slot: "janitor", UserID: 1}},
		CallerRole: "admin",
	})
	assert.True(t, errors.IsValidationError(err), "unknown slot")

	_, err = uc.Execute(context.Background(), AssignRolesCommand{
		TicketID:   1,
		Requests:   []SlotRequest{{Slot: "projectManager", UserID: 1}},
		CallerRole: "wizard",
	})
	assert.True(t, errors.IsForbiddenError(err), "unknown caller role")
}
