package usecases

import (
	"context"
	"time"

	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type AddInterventionCommand struct {
	TicketID    uint
	Description string
	PerformedBy uint
	StartedAt   time.Time
	Hours       float64
}

type AddInterventionResult struct {
	InterventionID uint
}

type AddInterventionUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewAddInterventionUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *AddInterventionUseCase {
	return &AddInterventionUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *AddInterventionUseCase) Execute(ctx context.Context, cmd AddInterventionCommand) (*AddInterventionResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	id, err := t.AddIntervention(ticket.Intervention{
		Description: cmd.Description,
		PerformedBy: cmd.PerformedBy,
		StartedAt:   cmd.StartedAt,
		Hours:       cmd.Hours,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist intervention", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("intervention recorded", "ticket_id", cmd.TicketID, "intervention_id", id)
	return &AddInterventionResult{InterventionID: id}, nil
}
