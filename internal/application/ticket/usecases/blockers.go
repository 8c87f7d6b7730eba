package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type AddBlockerCommand struct {
	TicketID       uint
	InterventionID uint // zero targets the ticket itself
	Reason         string
	CreatedBy      uint
}

type AddBlockerUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewAddBlockerUseCase(
	ticketRepo ticket.TicketRepository,
	notifier Notifier,
	logger logger.Interface,
) *AddBlockerUseCase {
	return &AddBlockerUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AddBlockerUseCase) Execute(ctx context.Context, cmd AddBlockerCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	blocker := ticket.Blocker{Reason: cmd.Reason, CreatedBy: cmd.CreatedBy}
	if err := t.AddBlocker(cmd.InterventionID, blocker); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist blocker", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		t.Assignments().RelatedUserIDs(),
		fmt.Sprintf("Blocker reported on ticket %s: %s", t.Number(), cmd.Reason),
		&ticketID,
		notification.ModelTicket,
	)

	uc.logger.Infow("blocker added", "ticket_id", cmd.TicketID, "intervention_id", cmd.InterventionID)
	return nil
}

type ResolveBlockerCommand struct {
	TicketID       uint
	InterventionID uint // zero targets the ticket itself
	BlockerIndex   int
	Resolution     string
	ResolvedBy     uint
}

type ResolveBlockerUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewResolveBlockerUseCase(
	ticketRepo ticket.TicketRepository,
	notifier Notifier,
	logger logger.Interface,
) *ResolveBlockerUseCase {
	return &ResolveBlockerUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *ResolveBlockerUseCase) Execute(ctx context.Context, cmd ResolveBlockerCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := t.ResolveBlocker(cmd.InterventionID, cmd.BlockerIndex, cmd.Resolution, cmd.ResolvedBy); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist blocker resolution", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		t.Assignments().RelatedUserIDs(),
		fmt.Sprintf("Blocker resolved on ticket %s", t.Number()),
		&ticketID,
		notification.ModelTicket,
	)

	uc.logger.Infow("blocker resolved", "ticket_id", cmd.TicketID, "index", cmd.BlockerIndex)
	return nil
}
