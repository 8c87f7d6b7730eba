package usecases

import (
	"context"
	"time"

	"deskflow/internal/domain/notification"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID   uint
	Page     int
	PageSize int
}

type NotificationDTO struct {
	ID           uint      `json:"id"`
	Message      string    `json:"message"`
	RelatedID    *uint     `json:"related_id,omitempty"`
	RelatedModel string    `json:"related_model,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListNotificationsResult struct {
	Notifications []NotificationDTO
	Total         int64
}

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	offset := 0
	if query.Page > 1 {
		offset = (query.Page - 1) * query.PageSize
	}

	notifications, total, err := uc.notificationRepo.ListByUserID(ctx, query.UserID, query.PageSize, offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", query.UserID)
		return nil, err
	}

	dtos := make([]NotificationDTO, len(notifications))
	for i, n := range notifications {
		dtos[i] = NotificationDTO{
			ID:           n.ID(),
			Message:      n.Message(),
			RelatedID:    n.RelatedID(),
			RelatedModel: string(n.RelatedModel()),
			Read:         n.IsRead(),
			CreatedAt:    n.CreatedAt(),
		}
	}

	return &ListNotificationsResult{
		Notifications: dtos,
		Total:         total,
	}, nil
}
