package mappers

import (
	"deskflow/internal/domain/notification"
	"deskflow/internal/infrastructure/persistence/models"
)

// NotificationMapper handles the conversion between Notification domain
// entities and persistence models.
type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:           n.ID(),
		UserID:       n.UserID(),
		Message:      n.Message(),
		RelatedID:    n.RelatedID(),
		RelatedModel: string(n.RelatedModel()),
		IsRead:       n.IsRead(),
		CreatedAt:    n.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.Message,
		model.RelatedID,
		notification.RelatedModel(model.RelatedModel),
		model.IsRead,
		millisToTime(model.CreatedAt),
	)
}
