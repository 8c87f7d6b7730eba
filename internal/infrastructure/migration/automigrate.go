package migration

import (
	"deskflow/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CompanyModel{},
		&models.TicketModel{},
		&models.TicketCommentModel{},
		&models.TicketActivityModel{},
		&models.TaskModel{},
		&models.TestTaskModel{},
		&models.NotificationModel{},
	}
}
