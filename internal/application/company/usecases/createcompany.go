package usecases

import (
	"context"
	"time"

	"deskflow/internal/domain/company"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type ContactInput struct {
	Name  string
	Email string
	Phone string
}

type AvailabilityInput struct {
	Day   string
	Start string
	End   string
}

type CreateCompanyCommand struct {
	Name             string
	Address          string
	PrimaryContact   ContactInput
	SecondaryContact *ContactInput
	Availability     []AvailabilityInput
	BillingMethod    string
	AgentID          uint
	CallerRole       string
}

type DocumentDTO struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Path       string    `json:"path"`
	UploadedBy uint      `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type CompanyDTO struct {
	ID               uint                `json:"id"`
	Name             string              `json:"name"`
	Address          string              `json:"address"`
	PrimaryContact   ContactInput        `json:"primary_contact"`
	SecondaryContact *ContactInput       `json:"secondary_contact,omitempty"`
	Availability     []AvailabilityInput `json:"availability,omitempty"`
	Documents        []DocumentDTO       `json:"documents,omitempty"`
	BillingMethod    string              `json:"billing_method"`
	AgentID          uint                `json:"agent_id"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func toCompanyDTO(c *company.Company) *CompanyDTO {
	d := &CompanyDTO{
		ID:      c.ID(),
		Name:    c.Name(),
		Address: c.Address(),
		PrimaryContact: ContactInput{
			Name:  c.PrimaryContact().Name,
			Email: c.PrimaryContact().Email,
			Phone: c.PrimaryContact().Phone,
		},
		BillingMethod: string(c.BillingMethod()),
		AgentID:       c.AgentID(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
	if sc := c.SecondaryContact(); sc != nil {
		d.SecondaryContact = &ContactInput{Name: sc.Name, Email: sc.Email, Phone: sc.Phone}
	}
	for _, slot := range c.Availability() {
		d.Availability = append(d.Availability, AvailabilityInput{Day: slot.Day, Start: slot.Start, End: slot.End})
	}
	for _, doc := range c.Documents() {
		d.Documents = append(d.Documents, DocumentDTO{
			Name:       doc.Name,
			Type:       doc.Type,
			Path:       doc.Path,
			UploadedBy: doc.UploadedBy,
			UploadedAt: doc.UploadedAt,
		})
	}
	return d
}

type CreateCompanyUseCase struct {
	companyRepo company.CompanyRepository
	userRepo    user.UserRepository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(
	companyRepo company.CompanyRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*CompanyDTO, error) {
	uc.logger.Infow("executing create company use case", "name", cmd.Name)

	role, ok := authorization.ParseUserRole(cmd.CallerRole)
	if !ok || !authorization.CanManageCompanies(role) {
		return nil, errors.NewForbiddenError("this role may not manage companies")
	}

	// The referenced agent must exist and hold the commercial role.
	agent, err := uc.userRepo.GetByID(ctx, cmd.AgentID)
	if err != nil {
		return nil, err
	}
	if agent.Role() != authorization.RoleAgentCommercial {
		return nil, errors.NewValidationError("the referenced user is not a commercial agent")
	}

	primary := company.Contact{
		Name:  cmd.PrimaryContact.Name,
		Email: cmd.PrimaryContact.Email,
		Phone: cmd.PrimaryContact.Phone,
	}

	c, err := company.NewCompany(cmd.Name, cmd.Address, primary, company.BillingMethod(cmd.BillingMethod), cmd.AgentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.SecondaryContact != nil {
		c.SetSecondaryContact(company.Contact{
			Name:  cmd.SecondaryContact.Name,
			Email: cmd.SecondaryContact.Email,
			Phone: cmd.SecondaryContact.Phone,
		})
	}
	if len(cmd.Availability) > 0 {
		slots := make([]company.AvailabilitySlot, len(cmd.Availability))
		for i, s := range cmd.Availability {
			slots[i] = company.AvailabilitySlot{Day: s.Day, Start: s.Start, End: s.End}
		}
		c.SetAvailability(slots)
	}

	if err := uc.companyRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save company", "error", err)
		return nil, err
	}

	uc.logger.Infow("company created", "company_id", c.ID(), "name", c.Name())
	return toCompanyDTO(c), nil
}
