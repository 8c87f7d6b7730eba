package usecases

import (
	"context"

	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	TicketID   uint
	Path       string
	CallerID   uint
	CallerRole string
}

type DownloadAttachmentResult struct {
	Name         string
	AbsolutePath string
	Size         int64
}

// DownloadAttachmentUseCase resolves an attachment reference to a file on
// disk. Only files recorded on the ticket (directly or on a comment) may be
// downloaded, and only by users with a relationship to the ticket.
type DownloadAttachmentUseCase struct {
	ticketRepo ticket.TicketRepository
	files      FileStore
	logger     logger.Interface
}

func NewDownloadAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	files FileStore,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		ticketRepo: ticketRepo,
		files:      files,
		logger:     logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error) {
	if query.TicketID == 0 || query.Path == "" {
		return nil, errors.NewValidationError("ticket ID and file path are required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	role, _ := authorization.ParseUserRole(query.CallerRole)
	if !t.CanBeViewedBy(query.CallerID, role) {
		return nil, errors.NewForbiddenError("no relationship with this ticket")
	}

	ref, found := findFileRef(t, query.Path)
	if !found {
		return nil, errors.NewNotFoundError("attachment not found on this ticket")
	}

	abs, err := uc.files.AbsolutePath(ref.Path)
	if err != nil {
		uc.logger.Errorw("failed to resolve attachment path", "error", err, "path", ref.Path)
		return nil, errors.NewNotFoundError("attachment file is missing")
	}

	return &DownloadAttachmentResult{Name: ref.Name, AbsolutePath: abs, Size: ref.Size}, nil
}

func findFileRef(t *ticket.Ticket, path string) (ticket.FileRef, bool) {
	for _, f := range t.Attachments() {
		if f.Path == path {
			return f, true
		}
	}
	for _, c := range t.Comments() {
		for _, f := range c.Files {
			if f.Path == path {
				return f, true
			}
		}
	}
	return ticket.FileRef{}, false
}
