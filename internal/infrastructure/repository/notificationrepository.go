package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskflow/internal/domain/notification"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
	apperrors "deskflow/internal/shared/errors"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     database,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) BulkCreate(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*models.NotificationModel, len(notifications))
	for i, n := range notifications {
		notificationModels[i] = r.mapper.ToModel(n)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&notificationModels).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	for i, n := range notifications {
		if err := n.SetID(notificationModels[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.NotificationModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var notificationModels []models.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, len(notificationModels))
	for i := range notificationModels {
		n, err := r.mapper.ToDomain(&notificationModels[i])
		if err != nil {
			return nil, 0, err
		}
		notifications[i] = n
	}

	return notifications, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead scopes the update to the owner so a user cannot mark another
// user's notification.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, userID, notificationID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("notification not found")
	}

	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	return nil
}
