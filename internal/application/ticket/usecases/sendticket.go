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

type SendTicketCommand struct {
	TicketID   uint
	SentBy     uint
	CallerRole string
}

// SendTicketUseCase submits a draft ticket into the qualification queue.
type SendTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewSendTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	notifier Notifier,
	logger logger.Interface,
) *SendTicketUseCase {
	return &SendTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *SendTicketUseCase) Execute(ctx context.Context, cmd SendTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	// Only the creating client (or an admin) may submit a draft.
	role, _ := authorization.ParseUserRole(cmd.CallerRole)
	if !authorization.CanAccessResourceByOwnerID(cmd.SentBy, role, t.Assignments().Client) {
		return errors.NewForbiddenError("only the ticket creator may send it")
	}

	if err := t.Send(cmd.SentBy); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist ticket send", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	agents, err := uc.userRepo.ListByRole(ctx, authorization.RoleAgentCommercial)
	if err != nil {
		uc.logger.Errorw("failed to load commercial agents for notification", "error", err)
	} else {
		ids := make([]uint, 0, len(agents))
		for _, a := range agents {
			ids = append(ids, a.ID())
		}
		ticketID := t.ID()
		uc.notifier.NotifyUsers(ctx,
			ids,
			fmt.Sprintf("New ticket %s awaits qualification", t.Number()),
			&ticketID,
			notification.ModelTicket,
		)
	}

	uc.logger.Infow("ticket sent", "ticket_id", cmd.TicketID, "number", t.Number())
	return nil
}
