package mappers

import (
	"encoding/json"
	"fmt"

	"deskflow/internal/domain/company"
	"deskflow/internal/infrastructure/persistence/models"
)

// CompanyMapper handles the conversion between Company domain entities and
// persistence models. Contacts, availability and documents are stored as
// JSON columns.
type CompanyMapper interface {
	ToModel(c *company.Company) (*models.CompanyModel, error)
	ToDomain(model *models.CompanyModel) (*company.Company, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToModel(c *company.Company) (*models.CompanyModel, error) {
	primary, err := json.Marshal(c.PrimaryContact())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal primary contact: %w", err)
	}

	model := &models.CompanyModel{
		ID:             c.ID(),
		Name:           c.Name(),
		Address:        c.Address(),
		PrimaryContact: string(primary),
		BillingMethod:  string(c.BillingMethod()),
		AgentID:        c.AgentID(),
		CreatedAt:      c.CreatedAt().UnixMilli(),
		UpdatedAt:      c.UpdatedAt().UnixMilli(),
	}

	if sc := c.SecondaryContact(); sc != nil {
		data, err := json.Marshal(sc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal secondary contact: %w", err)
		}
		model.SecondaryContact = string(data)
	}

	if slots := c.Availability(); len(slots) > 0 {
		data, err := json.Marshal(slots)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal availability: %w", err)
		}
		model.Availability = string(data)
	}

	if docs := c.Documents(); len(docs) > 0 {
		data, err := json.Marshal(docs)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal documents: %w", err)
		}
		model.Documents = string(data)
	}

	return model, nil
}

func (m *CompanyMapperImpl) ToDomain(model *models.CompanyModel) (*company.Company, error) {
	var primary company.Contact
	if err := json.Unmarshal([]byte(model.PrimaryContact), &primary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal primary contact (company=%d): %w", model.ID, err)
	}

	var secondary *company.Contact
	if model.SecondaryContact != "" {
		secondary = &company.Contact{}
		if err := json.Unmarshal([]byte(model.SecondaryContact), secondary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal secondary contact (company=%d): %w", model.ID, err)
		}
	}

	var availability []company.AvailabilitySlot
	if model.Availability != "" {
		if err := json.Unmarshal([]byte(model.Availability), &availability); err != nil {
			return nil, fmt.Errorf("failed to unmarshal availability (company=%d): %w", model.ID, err)
		}
	}

	var documents []company.Document
	if model.Documents != "" {
		if err := json.Unmarshal([]byte(model.Documents), &documents); err != nil {
			return nil, fmt.Errorf("failed to unmarshal documents (company=%d): %w", model.ID, err)
		}
	}

	return company.ReconstructCompany(
		model.ID,
		model.Name,
		model.Address,
		primary,
		secondary,
		availability,
		documents,
		company.BillingMethod(model.BillingMethod),
		model.AgentID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
