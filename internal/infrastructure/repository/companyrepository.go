package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"deskflow/internal/domain/company"
	"deskflow/internal/infrastructure/persistence/mappers"
	"deskflow/internal/infrastructure/persistence/models"
	"deskflow/internal/shared/db"
	apperrors "deskflow/internal/shared/errors"
)

type CompanyRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCompanyRepository(database *gorm.DB) *CompanyRepository {
	return &CompanyRepository{
		db:     database,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *CompanyRepository) Save(ctx context.Context, c *company.Company) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return apperrors.NewConflictError("a company with this name already exists")
		}
		return fmt.Errorf("failed to save company: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}

	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, companyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CompanyModel{}, companyID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("company not found")
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID uint) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CompanyRepository) List(ctx context.Context, page, pageSize int) ([]*company.Company, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CompanyModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	query = query.Order("name ASC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var companyModels []models.CompanyModel
	if err := query.Find(&companyModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	companies, err := r.toDomainList(companyModels)
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *CompanyRepository) ListByAgent(ctx context.Context, agentID uint) ([]*company.Company, error) {
	var companyModels []models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("agent_id = ?", agentID).Order("name ASC").Find(&companyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies by agent: %w", err)
	}

	return r.toDomainList(companyModels)
}

func (r *CompanyRepository) toDomainList(companyModels []models.CompanyModel) ([]*company.Company, error) {
	companies := make([]*company.Company, len(companyModels))
	for i := range companyModels {
		c, err := r.mapper.ToDomain(&companyModels[i])
		if err != nil {
			return nil, err
		}
		companies[i] = c
	}
	return companies, nil
}
