package usecases

import (
	"context"

	"deskflow/internal/domain/notification"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type MarkReadCommand struct {
	UserID         uint
	NotificationID uint
}

type MarkReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}

	if err := uc.notificationRepo.MarkAsRead(ctx, cmd.UserID, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to mark notification as read",
			"error", err, "user_id", cmd.UserID, "notification_id", cmd.NotificationID)
		return err
	}

	return nil
}

type MarkAllReadCommand struct {
	UserID uint
}

type MarkAllReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAllReadUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, cmd MarkAllReadCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.MarkAllAsRead(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "error", err, "user_id", cmd.UserID)
		return err
	}

	return nil
}

type UnreadCountQuery struct {
	UserID uint
}

type UnreadCountUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewUnreadCountUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *UnreadCountUseCase {
	return &UnreadCountUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, query UnreadCountQuery) (int64, error) {
	if query.UserID == 0 {
		return 0, errors.NewValidationError("user ID is required")
	}

	count, err := uc.notificationRepo.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err, "user_id", query.UserID)
		return 0, err
	}

	return count, nil
}
