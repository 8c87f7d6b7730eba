package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type TransferTicketCommand struct {
	TicketID      uint
	Target        string
	Reason        string
	TransferredBy uint
}

type TransferTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewTransferTicketUseCase(
	ticketRepo ticket.TicketRepository,
	notifier Notifier,
	logger logger.Interface,
) *TransferTicketUseCase {
	return &TransferTicketUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *TransferTicketUseCase) Execute(ctx context.Context, cmd TransferTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := t.Transfer(cmd.Target, cmd.Reason, cmd.TransferredBy); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist transfer", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		t.Assignments().RelatedUserIDs(),
		fmt.Sprintf("Ticket %s was transferred to %s", t.Number(), cmd.Target),
		&ticketID,
		notification.ModelTicket,
	)

	uc.logger.Infow("ticket transferred", "ticket_id", cmd.TicketID, "target", cmd.Target)
	return nil
}
