package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	nusecases "deskflow/internal/application/notification/usecases"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/shared/errors"
)

func TestAddComment_Success(t *testing.T) {
	tk := savedTicket(1)
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	notifier := &mockNotifier{
		mentions: []nusecases.ResolvedMention{{UserID: 7, Token: "LinaTorres"}},
	}

	uc := NewAddCommentUseCase(ticketRepo, notifier, testLogger())
	result, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID:   1,
		AuthorID:   10,
		AuthorName: "Marc Petit",
		CallerRole: "client",
		Text:       "@LinaTorres can you confirm the fix?",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), result.CommentID)
	assert.Equal(t, []uint{7}, result.Mentions)

	comments := tk.Comments()
	if assert.Len(t, comments, 1) {
		assert.Equal(t, "Marc Petit", comments[0].AuthorName)
		if assert.Len(t, comments[0].Mentions, 1) {
			assert.Equal(t, uint(7), comments[0].Mentions[0].UserID)
		}
	}

	// The author is excluded from the general notification; here the
	// client is the author and the only related user, so nobody is left.
	if assert.Len(t, notifier.notifications, 1) {
		assert.Empty(t, notifier.notifications[0].UserIDs)
	}

	// Mentioned users are notified once the comment is persisted.
	if assert.Len(t, notifier.mentionNotifies, 1) {
		assert.Equal(t, []nusecases.ResolvedMention{{UserID: 7, Token: "LinaTorres"}}, notifier.mentionNotifies[0])
	}
}

func TestAddComment_FailedPersistSendsNothing(t *testing.T) {
	tk := savedTicket(1)
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		updateFn:  func(ctx context.Context, tk *ticket.Ticket) error { return fmt.Errorf("deadlock") },
	}
	notifier := &mockNotifier{
		mentions: []nusecases.ResolvedMention{{UserID: 7, Token: "LinaTorres"}},
	}

	uc := NewAddCommentUseCase(ticketRepo, notifier, testLogger())
	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID:   1,
		AuthorID:   10,
		AuthorName: "Marc Petit",
		CallerRole: "client",
		Text:       "@LinaTorres can you confirm the fix?",
	})

	assert.Error(t, err)
	assert.Empty(t, notifier.mentionNotifies)
	assert.Empty(t, notifier.notifications)
}

func TestAddComment_UnrelatedUserForbidden(t *testing.T) {
	tk := savedTicket(1)
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewAddCommentUseCase(ticketRepo, &mockNotifier{}, testLogger())
	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID:   1,
		AuthorID:   99,
		AuthorName: "Outsider",
		CallerRole: "developer",
		Text:       "hello",
	})

	assert.True(t, errors.IsForbiddenError(err))
	assert.Empty(t, tk.Comments())
}

func TestAddComment_AdminBypassesRelationship(t *testing.T) {
	tk := savedTicket(1)
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewAddCommentUseCase(ticketRepo, &mockNotifier{}, testLogger())
	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID:   1,
		AuthorID:   99,
		AuthorName: "Admin",
		CallerRole: "admin",
		Text:       "escalated",
	})

	assert.NoError(t, err)
	assert.Len(t, tk.Comments(), 1)
}

func TestAddComment_EmptyCommentRejected(t *testing.T) {
	tk := savedTicket(1)
	ticketRepo := &mockTicketRepo{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewAddCommentUseCase(ticketRepo, &mockNotifier{}, testLogger())
	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID:   1,
		AuthorID:   10,
		AuthorName: "Marc Petit",
		CallerRole: "client",
	})

	assert.True(t, errors.IsValidationError(err))
}
