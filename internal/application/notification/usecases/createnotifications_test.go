package usecases

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskflow/internal/domain/notification"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

func TestCreateNotifications_OnePerRecipient(t *testing.T) {
	var created []*notification.Notification
	repo := &mockNotificationRepo{
		bulkCreateFn: func(ctx context.Context, notifications []*notification.Notification) error {
			created = notifications
			return nil
		},
	}
	ticketID := uint(3)

	uc := NewCreateNotificationsUseCase(repo, testLogger())
	err := uc.Execute(context.Background(), CreateNotificationsCommand{
		UserIDs:      []uint{7, 8},
		Message:      "Ticket moved to InProgress",
		RelatedID:    &ticketID,
		RelatedModel: notification.ModelTicket,
	})

	assert.NoError(t, err)
	if assert.Len(t, created, 2) {
		assert.Equal(t, uint(7), created[0].UserID())
		assert.Equal(t, uint(8), created[1].UserID())
		assert.Equal(t, "Ticket moved to InProgress", created[0].Message())
		assert.Equal(t, notification.ModelTicket, created[0].RelatedModel())
	}
}

func TestCreateNotifications_EmptyRecipientsIsNoOp(t *testing.T) {
	repo := &mockNotificationRepo{
		bulkCreateFn: func(ctx context.Context, notifications []*notification.Notification) error {
			t.Fatal("nothing to write")
			return nil
		},
	}

	var logs bytes.Buffer
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(&logs, nil)))

	uc := NewCreateNotificationsUseCase(repo, log)
	assert.NoError(t, uc.Execute(context.Background(), CreateNotificationsCommand{Message: "unused"}))
	assert.Contains(t, logs.String(), "no notification recipients")
}

func TestCreateNotifications_MissingMessage(t *testing.T) {
	uc := NewCreateNotificationsUseCase(&mockNotificationRepo{}, testLogger())
	err := uc.Execute(context.Background(), CreateNotificationsCommand{UserIDs: []uint{1}})
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateNotifications_RepositoryFailure(t *testing.T) {
	repo := &mockNotificationRepo{
		bulkCreateFn: func(ctx context.Context, notifications []*notification.Notification) error {
			return fmt.Errorf("insert failed")
		},
	}

	uc := NewCreateNotificationsUseCase(repo, testLogger())
	err := uc.Execute(context.Background(), CreateNotificationsCommand{UserIDs: []uint{1}, Message: "m"})
	assert.Error(t, err)
}
