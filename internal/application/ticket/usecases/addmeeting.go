package usecases

import (
	"context"
	"fmt"
	"time"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type AddMeetingCommand struct {
	TicketID    uint
	Subject     string
	ScheduledAt time.Time
	DurationMin int
	Location    string
	CreatedBy   uint
}

type AddMeetingUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewAddMeetingUseCase(
	ticketRepo ticket.TicketRepository,
	notifier Notifier,
	logger logger.Interface,
) *AddMeetingUseCase {
	return &AddMeetingUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AddMeetingUseCase) Execute(ctx context.Context, cmd AddMeetingCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	meeting := ticket.Meeting{
		Subject:     cmd.Subject,
		ScheduledAt: cmd.ScheduledAt,
		DurationMin: cmd.DurationMin,
		Location:    cmd.Location,
		CreatedBy:   cmd.CreatedBy,
	}
	if err := t.AddMeeting(meeting); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist meeting", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		t.Assignments().RelatedUserIDs(),
		fmt.Sprintf("Meeting %q scheduled on ticket %s", cmd.Subject, t.Number()),
		&ticketID,
		notification.ModelTicket,
	)

	uc.logger.Infow("meeting scheduled", "ticket_id", cmd.TicketID, "subject", cmd.Subject)
	return nil
}
