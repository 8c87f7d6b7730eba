package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type RequestValidationCommand struct {
	TicketID       uint
	InterventionID uint
	RequestedBy    uint
}

// RequestValidationUseCase flags an intervention as awaiting client sign-off
// and notifies the client side of the ticket.
type RequestValidationUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewRequestValidationUseCase(
	ticketRepo ticket.TicketRepository,
	notifier Notifier,
	logger logger.Interface,
) *RequestValidationUseCase {
	return &RequestValidationUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *RequestValidationUseCase) Execute(ctx context.Context, cmd RequestValidationCommand) error {
	if cmd.TicketID == 0 || cmd.InterventionID == 0 {
		return errors.NewValidationError("ticket ID and intervention ID are required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := t.RequestValidation(cmd.InterventionID, cmd.RequestedBy); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist validation request", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	// Only the client-side slots are asked to validate.
	assignments := t.Assignments()
	recipients := []uint{assignments.Client}
	if assignments.ResponsibleClient != nil {
		recipients = append(recipients, *assignments.ResponsibleClient)
	}

	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		recipients,
		fmt.Sprintf("Validation requested on ticket %s", t.Number()),
		&ticketID,
		notification.ModelTicket,
	)

	uc.logger.Infow("validation requested", "ticket_id", cmd.TicketID, "intervention_id", cmd.InterventionID)
	return nil
}

type ValidateInterventionCommand struct {
	TicketID       uint
	InterventionID uint
	Accepted       bool
	Note           string
	ValidatedBy    uint
	CallerRole     string
}

// ValidateInterventionUseCase records the client's verdict. Acceptance moves
// the ticket to client validation; rejection sends it to revision and keeps
// the rejection note on the intervention.
type ValidateInterventionUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewValidateInterventionUseCase(
	ticketRepo ticket.TicketRepository,
	notifier Notifier,
	logger logger.Interface,
) *ValidateInterventionUseCase {
	return &ValidateInterventionUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *ValidateInterventionUseCase) Execute(ctx context.Context, cmd ValidateInterventionCommand) error {
	if cmd.TicketID == 0 || cmd.InterventionID == 0 {
		return errors.NewValidationError("ticket ID and intervention ID are required")
	}
	if !cmd.Accepted && cmd.Note == "" {
		return errors.NewValidationError("a note is required when rejecting an intervention")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := t.ValidateIntervention(cmd.InterventionID, cmd.Accepted, cmd.ValidatedBy, cmd.Note); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist intervention validation", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	verdict := "accepted"
	if !cmd.Accepted {
		verdict = "rejected"
	}

	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		t.Assignments().RelatedUserIDs(),
		fmt.Sprintf("Intervention on ticket %s was %s", t.Number(), verdict),
		&ticketID,
		notification.ModelTicket,
	)

	uc.logger.Infow("intervention validated",
		"ticket_id", cmd.TicketID, "intervention_id", cmd.InterventionID, "accepted", cmd.Accepted)
	return nil
}
