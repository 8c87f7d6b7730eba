package usecases

import (
	"context"

	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type UploadAttachmentCommand struct {
	TicketID   uint
	Files      []ticket.FileRef
	UploadedBy uint
	CallerRole string
}

// UploadAttachmentUseCase records already-stored files on the ticket. The
// HTTP layer writes the bytes to disk first and passes the resulting refs.
type UploadAttachmentUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUploadAttachmentUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Files) == 0 {
		return errors.NewValidationError("at least one file is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	role, _ := authorization.ParseUserRole(cmd.CallerRole)
	if !t.CanBeViewedBy(cmd.UploadedBy, role) {
		return errors.NewForbiddenError("no relationship with this ticket")
	}

	for _, f := range cmd.Files {
		t.AddAttachment(f)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist attachments", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	uc.logger.Infow("attachments uploaded", "ticket_id", cmd.TicketID, "count", len(cmd.Files))
	return nil
}
