package models

type NotificationModel struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"not null;index:idx_notifications_user_read"`
	Message      string `gorm:"size:500;not null"`
	RelatedID    *uint  `gorm:"index"`
	RelatedModel string `gorm:"size:30"`
	IsRead       bool   `gorm:"not null;default:false;index:idx_notifications_user_read"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
