package usecases

import (
	"context"

	"deskflow/internal/domain/notification"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type CreateNotificationsCommand struct {
	UserIDs      []uint
	Message      string
	RelatedID    *uint
	RelatedModel notification.RelatedModel
}

type CreateNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewCreateNotificationsUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *CreateNotificationsUseCase {
	return &CreateNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Execute writes one notification per recipient. An empty recipient list is
// a no-op, not an error.
func (uc *CreateNotificationsUseCase) Execute(ctx context.Context, cmd CreateNotificationsCommand) error {
	if len(cmd.UserIDs) == 0 {
		uc.logger.Infow("no notification recipients, skipping", "message", cmd.Message)
		return nil
	}
	if cmd.Message == "" {
		return errors.NewValidationError("notification message is required")
	}

	notifications := make([]*notification.Notification, 0, len(cmd.UserIDs))
	for _, userID := range cmd.UserIDs {
		n, err := notification.NewNotification(userID, cmd.Message, cmd.RelatedID, cmd.RelatedModel)
		if err != nil {
			uc.logger.Errorw("failed to build notification", "error", err, "user_id", userID)
			return errors.NewValidationError(err.Error())
		}
		notifications = append(notifications, n)
	}

	if err := uc.notificationRepo.BulkCreate(ctx, notifications); err != nil {
		uc.logger.Errorw("failed to create notifications", "error", err, "count", len(notifications))
		return err
	}

	return nil
}
