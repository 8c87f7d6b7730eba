package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

// SlotRequest pairs a slot name with the user to place in it.
type SlotRequest struct {
	Slot   string
	UserID uint
}

type AssignRolesCommand struct {
	TicketID   uint
	Requests   []SlotRequest
	AssignedBy uint
	CallerRole string
}

type AssignRolesResult struct {
	AssignedUserIDs []uint
	Status          string
}

type AssignRolesUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	notifier   Notifier
	emails     EmailSender
	logger     logger.Interface
}

func NewAssignRolesUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	emails EmailSender,
	logger logger.Interface,
) *AssignRolesUseCase {
	return &AssignRolesUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		emails:     emails,
		logger:     logger,
	}
}

// Execute places users into the ticket's relationship slots. Every target
// user must exist and hold the role the slot expects; slots the caller's
// role may not set are skipped silently by the aggregate.
func (uc *AssignRolesUseCase) Execute(ctx context.Context, cmd AssignRolesCommand) (*AssignRolesResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Requests) == 0 {
		return nil, errors.NewValidationError("at least one assignment is required")
	}

	callerRole, ok := authorization.ParseUserRole(cmd.CallerRole)
	if !ok {
		return nil, errors.NewForbiddenError("unknown caller role")
	}

	requests := make([]ticket.SlotAssignment, 0, len(cmd.Requests))
	for _, req := range cmd.Requests {
		slot, ok := authorization.ParseTicketRoleSlot(req.Slot)
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown role slot: %s", req.Slot))
		}

		target, err := uc.userRepo.GetByID(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		expected, _ := authorization.SlotRole(slot)
		if target.Role() != expected {
			return nil, errors.NewValidationError(
				fmt.Sprintf("user %d does not hold the %s role", req.UserID, expected))
		}

		requests = append(requests, ticket.SlotAssignment{Slot: slot, UserID: req.UserID})
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	assigned := t.AssignRoles(callerRole, requests, cmd.AssignedBy)
	if len(assigned) == 0 {
		return &AssignRolesResult{Status: t.Status().String()}, nil
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist role assignments", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		assigned,
		fmt.Sprintf("You were assigned to ticket %s", t.Number()),
		&ticketID,
		notification.ModelTicket,
	)

	uc.inviteClientContacts(ctx, t, requests, assigned)

	uc.logger.Infow("ticket roles assigned", "ticket_id", cmd.TicketID, "assigned", assigned)

	return &AssignRolesResult{AssignedUserIDs: assigned, Status: t.Status().String()}, nil
}

// inviteClientContacts emails users newly placed in a client-side slot so
// they can follow the ticket. Delivery failures are logged only.
func (uc *AssignRolesUseCase) inviteClientContacts(ctx context.Context, t *ticket.Ticket, requests []ticket.SlotAssignment, assigned []uint) {
	if uc.emails == nil {
		return
	}

	assignedSet := make(map[uint]struct{}, len(assigned))
	for _, id := range assigned {
		assignedSet[id] = struct{}{}
	}

	for _, req := range requests {
		if req.Slot != authorization.SlotClient && req.Slot != authorization.SlotResponsibleClient {
			continue
		}
		if _, ok := assignedSet[req.UserID]; !ok {
			continue
		}

		u, err := uc.userRepo.GetByID(ctx, req.UserID)
		if err != nil {
			continue
		}
		if err := uc.emails.SendContactInvitation(u.Email(), u.FullName(), t.Number()); err != nil {
			uc.logger.Warnw("failed to send contact invitation",
				"error", err, "user_id", req.UserID, "ticket_id", t.ID())
		}
	}
}
