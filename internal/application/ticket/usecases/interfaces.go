package usecases

import (
	"context"

	nusecases "deskflow/internal/application/notification/usecases"
	"deskflow/internal/application/ticket/dto"
	"deskflow/internal/domain/notification"
)

// Notifier is the slice of the notification facade the ticket use cases
// depend on. Delivery is best effort; the methods never return errors.
type Notifier interface {
	NotifyUsers(ctx context.Context, userIDs []uint, message string, relatedID *uint, relatedModel notification.RelatedModel)
	ResolveMentions(ctx context.Context, text string) []nusecases.ResolvedMention
	NotifyMentioned(ctx context.Context, resolved []nusecases.ResolvedMention, authorName, entityType string, relatedID *uint, relatedModel notification.RelatedModel)
}

// FileStore resolves stored attachment paths for download.
type FileStore interface {
	AbsolutePath(relPath string) (string, error)
}

// EmailSender delivers the invitation mail sent to client contacts when
// they are placed on a ticket.
type EmailSender interface {
	SendContactInvitation(to, contactName, ticketNumber string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type UpdateFinancialExecutor interface {
	Execute(ctx context.Context, cmd UpdateFinancialCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type AddMeetingExecutor interface {
	Execute(ctx context.Context, cmd AddMeetingCommand) error
}

type AddInterventionExecutor interface {
	Execute(ctx context.Context, cmd AddInterventionCommand) (*AddInterventionResult, error)
}

type RequestValidationExecutor interface {
	Execute(ctx context.Context, cmd RequestValidationCommand) error
}

type ValidateInterventionExecutor interface {
	Execute(ctx context.Context, cmd ValidateInterventionCommand) error
}

type AddBlockerExecutor interface {
	Execute(ctx context.Context, cmd AddBlockerCommand) error
}

type ResolveBlockerExecutor interface {
	Execute(ctx context.Context, cmd ResolveBlockerCommand) error
}

type AssignRolesExecutor interface {
	Execute(ctx context.Context, cmd AssignRolesCommand) (*AssignRolesResult, error)
}

type SendTicketExecutor interface {
	Execute(ctx context.Context, cmd SendTicketCommand) error
}

type TransferTicketExecutor interface {
	Execute(ctx context.Context, cmd TransferTicketCommand) error
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) error
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error)
}
