package usecases

import (
	"context"
	"fmt"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID   uint
	AuthorID   uint
	AuthorName string
	CallerRole string
	Text       string
	Files      []ticket.FileRef
}

type AddCommentResult struct {
	CommentID uint
	Mentions  []uint
}

type AddCommentUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   Notifier
	logger     logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	notifier Notifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Execute appends a comment to the ticket. @mentions in the text are
// resolved to registered users and notified separately from the general
// "new comment" notification sent to the ticket's related users.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	role, _ := authorization.ParseUserRole(cmd.CallerRole)
	if !t.CanBeViewedBy(cmd.AuthorID, role) {
		return nil, errors.NewForbiddenError("no relationship with this ticket")
	}

	ticketID := t.ID()
	resolved := uc.notifier.ResolveMentions(ctx, cmd.Text)

	mentions := make([]ticket.Mention, len(resolved))
	mentionedIDs := make([]uint, len(resolved))
	for i, m := range resolved {
		mentions[i] = ticket.Mention{UserID: m.UserID, Token: m.Token}
		mentionedIDs[i] = m.UserID
	}

	comment := ticket.Comment{
		AuthorID:   cmd.AuthorID,
		AuthorName: cmd.AuthorName,
		Text:       cmd.Text,
		Files:      cmd.Files,
		Mentions:   mentions,
	}
	if err := t.AddComment(comment); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	// Mention notifications go out only after the comment is saved.
	uc.notifier.NotifyMentioned(ctx, resolved, cmd.AuthorName, "ticket", &ticketID, notification.ModelTicket)

	// Related users other than the author get the general notification.
	var recipients []uint
	for _, id := range t.Assignments().RelatedUserIDs() {
		if id != cmd.AuthorID {
			recipients = append(recipients, id)
		}
	}
	uc.notifier.NotifyUsers(ctx,
		recipients,
		fmt.Sprintf("%s commented on ticket %s", cmd.AuthorName, t.Number()),
		&ticketID,
		notification.ModelTicket,
	)

	comments := t.Comments()
	last := comments[len(comments)-1]

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", last.ID, "mentions", len(mentions))

	return &AddCommentResult{CommentID: last.ID, Mentions: mentionedIDs}, nil
}
