package usecases

import (
	"context"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type UpdateFinancialCommand struct {
	TicketID        uint
	FinancialStatus *string
	EstimatedHours  *float64
	ActualHours     *float64
	UpdatedBy       uint
}

type UpdateFinancialUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateFinancialUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UpdateFinancialUseCase {
	return &UpdateFinancialUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *UpdateFinancialUseCase) Execute(ctx context.Context, cmd UpdateFinancialCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.FinancialStatus == nil && cmd.EstimatedHours == nil && cmd.ActualHours == nil {
		return errors.NewValidationError("nothing to update")
	}

	var status *vo.FinancialStatus
	if cmd.FinancialStatus != nil {
		s, err := vo.NewFinancialStatus(*cmd.FinancialStatus)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		status = &s
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if _, err := t.UpdateFinancial(status, cmd.EstimatedHours, cmd.ActualHours, cmd.UpdatedBy); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist financial update", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	uc.logger.Infow("ticket financial fields updated", "ticket_id", cmd.TicketID)
	return nil
}
