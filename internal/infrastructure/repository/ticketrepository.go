package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskflow/internal/domain/ticket"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
	apperrors "deskflow/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		if err := t.SetID(model.ID); err != nil {
			return err
		}

		return r.saveChildren(tx, model.ID, t)
	})
}

// Update rewrites the ticket row and replaces the comment and activity
// child rows. Both lists are fully held by the aggregate so a replace keeps
// them consistent.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.TicketModel{}).
			Where("id = ?", model.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update ticket: %w", result.Error)
		}

		if err := tx.Where("ticket_id = ?", model.ID).Delete(&models.TicketCommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear ticket comments: %w", err)
		}
		if err := tx.Where("ticket_id = ?", model.ID).Delete(&models.TicketActivityModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear ticket activities: %w", err)
		}

		return r.saveChildren(tx, model.ID, t)
	})
}

func (r *TicketRepository) saveChildren(tx *gorm.DB, ticketID uint, t *ticket.Ticket) error {
	for _, c := range t.Comments() {
		commentModel, err := r.mapper.CommentToModel(ticketID, c)
		if err != nil {
			return err
		}
		if err := tx.Create(commentModel).Error; err != nil {
			return fmt.Errorf("failed to save ticket comment: %w", err)
		}
	}

	for _, a := range t.Activities() {
		if err := tx.Create(r.mapper.ActivityToModel(ticketID, a)).Error; err != nil {
			return fmt.Errorf("failed to save ticket activity: %w", err)
		}
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.hydrate(tx, &model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.hydrate(tx, &model)
}

func (r *TicketRepository) hydrate(tx *gorm.DB, model *models.TicketModel) (*ticket.Ticket, error) {
	var commentModels []models.TicketCommentModel
	if err := tx.
		Where("ticket_id = ?", model.ID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket comments: %w", err)
	}

	comments := make([]ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	var activityModels []models.TicketActivityModel
	if err := tx.
		Where("ticket_id = ?", model.ID).
		Order("created_at ASC").
		Find(&activityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket activities: %w", err)
	}

	activities := make([]ticket.Activity, 0, len(activityModels))
	for i := range activityModels {
		activities = append(activities, r.mapper.ActivityToDomain(&activityModels[i]))
	}

	return r.mapper.ToDomain(model, comments, activities)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Urgency != nil {
		query = query.Where("urgency = ?", filter.Urgency.String())
	}
	if filter.RelatedUserID != 0 {
		id := filter.RelatedUserID
		query = query.Where(
			"client_id = ? OR responsible_client_id = ? OR agent_commercial_id = ? OR project_manager_id = ? OR group_leader_id = ? OR responsible_tester_id = ?",
			id, id, id, id, id, id,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		// List rows omit the comment and activity child tables.
		t, err := r.mapper.ToDomain(&ticketModels[i], nil, nil)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}
