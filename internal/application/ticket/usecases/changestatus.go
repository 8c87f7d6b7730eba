package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	ChangedBy uint
}

type ChangeStatusResult struct {
	OldStatus string
	NewStatus string
	Changed   bool
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Execute moves the ticket to any valid status value. The canonical flow is
// advisory; no adjacency check is applied. Related users are notified when
// the status actually changed.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	status, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	oldStatus := t.Status()
	changed, err := t.ChangeStatus(status, cmd.ChangedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if !changed {
		return &ChangeStatusResult{
			OldStatus: oldStatus.String(),
			NewStatus: status.String(),
			Changed:   false,
		}, nil
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist status change", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	// Every relationship holder plus every admin learns about the move.
	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		uc.recipients(ctx, t),
		fmt.Sprintf("Ticket %s moved from %s to %s", t.Number(), oldStatus, status),
		&ticketID,
		notification.ModelTicket,
	)

	uc.logger.Infow("ticket status changed",
		"ticket_id", cmd.TicketID, "from", oldStatus.String(), "to", status.String())

	return &ChangeStatusResult{
		OldStatus: oldStatus.String(),
		NewStatus: status.String(),
		Changed:   true,
	}, nil
}

func (uc *ChangeStatusUseCase) recipients(ctx context.Context, t *ticket.Ticket) []uint {
	ids := t.Assignments().RelatedUserIDs()
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}

	admins, err := uc.userRepo.ListByRole(ctx, authorization.RoleAdmin)
	if err != nil {
		uc.logger.Errorw("failed to load admins for notification", "error", err, "ticket_id", t.ID())
		return ids
	}
	for _, a := range admins {
		if !seen[a.ID()] {
			seen[a.ID()] = true
			ids = append(ids, a.ID())
		}
	}
	return ids
}
