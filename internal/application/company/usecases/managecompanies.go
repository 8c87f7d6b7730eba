package usecases

import (
	"context"

	"deskflow/internal/domain/company"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type GetCompanyQuery struct {
	CompanyID uint
}

type GetCompanyUseCase struct {
	companyRepo company.CompanyRepository
	logger      logger.Interface
}

func NewGetCompanyUseCase(companyRepo company.CompanyRepository, logger logger.Interface) *GetCompanyUseCase {
	return &GetCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, query GetCompanyQuery) (*CompanyDTO, error) {
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	c, err := uc.companyRepo.GetByID(ctx, query.CompanyID)
	if err != nil {
		return nil, err
	}
	return toCompanyDTO(c), nil
}

type ListCompaniesQuery struct {
	AgentID  uint
	Page     int
	PageSize int
}

type ListCompaniesResult struct {
	Companies []*CompanyDTO
	Total     int64
}

type ListCompaniesUseCase struct {
	companyRepo company.CompanyRepository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.CompanyRepository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, query ListCompaniesQuery) (*ListCompaniesResult, error) {
	if query.AgentID != 0 {
		companies, err := uc.companyRepo.ListByAgent(ctx, query.AgentID)
		if err != nil {
			uc.logger.Errorw("failed to list companies by agent", "error", err)
			return nil, err
		}
		dtos := make([]*CompanyDTO, len(companies))
		for i, c := range companies {
			dtos[i] = toCompanyDTO(c)
		}
		return &ListCompaniesResult{Companies: dtos, Total: int64(len(dtos))}, nil
	}

	companies, total, err := uc.companyRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, err
	}

	dtos := make([]*CompanyDTO, len(companies))
	for i, c := range companies {
		dtos[i] = toCompanyDTO(c)
	}
	return &ListCompaniesResult{Companies: dtos, Total: total}, nil
}

type UpdateCompanyCommand struct {
	CompanyID        uint
	BillingMethod    *string
	SecondaryContact *ContactInput
	Availability     []AvailabilityInput
	CallerRole       string
}

type UpdateCompanyUseCase struct {
	companyRepo company.CompanyRepository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(companyRepo company.CompanyRepository, logger logger.Interface) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*CompanyDTO, error) {
	if cmd.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	role, ok := authorization.ParseUserRole(cmd.CallerRole)
	if !ok || !authorization.CanManageCompanies(role) {
		return nil, errors.NewForbiddenError("this role may not manage companies")
	}

	c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	if cmd.BillingMethod != nil {
		if err := c.ChangeBillingMethod(company.BillingMethod(*cmd.BillingMethod)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.SecondaryContact != nil {
		c.SetSecondaryContact(company.Contact{
			Name:  cmd.SecondaryContact.Name,
			Email: cmd.SecondaryContact.Email,
			Phone: cmd.SecondaryContact.Phone,
		})
	}
	if cmd.Availability != nil {
		slots := make([]company.AvailabilitySlot, len(cmd.Availability))
		for i, s := range cmd.Availability {
			slots[i] = company.AvailabilitySlot{Day: s.Day, Start: s.Start, End: s.End}
		}
		c.SetAvailability(slots)
	}

	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update company", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("company updated", "company_id", cmd.CompanyID)
	return toCompanyDTO(c), nil
}

type UploadDocumentCommand struct {
	CompanyID  uint
	Name       string
	Type       string
	Path       string
	UploadedBy uint
	CallerRole string
}

type UploadDocumentUseCase struct {
	companyRepo company.CompanyRepository
	logger      logger.Interface
}

func NewUploadDocumentUseCase(companyRepo company.CompanyRepository, logger logger.Interface) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *UploadDocumentUseCase) Execute(ctx context.Context, cmd UploadDocumentCommand) error {
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}

	role, ok := authorization.ParseUserRole(cmd.CallerRole)
	if !ok || !authorization.CanManageCompanies(role) {
		return errors.NewForbiddenError("this role may not manage companies")
	}

	c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		return err
	}

	doc := company.Document{
		Name:       cmd.Name,
		Type:       cmd.Type,
		Path:       cmd.Path,
		UploadedBy: cmd.UploadedBy,
	}
	if err := c.AddDocument(doc); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to persist company document", "error", err, "company_id", cmd.CompanyID)
		return err
	}

	uc.logger.Infow("company document uploaded", "company_id", cmd.CompanyID, "name", cmd.Name)
	return nil
}

type RemoveDocumentCommand struct {
	CompanyID  uint
	Path       string
	CallerRole string
}

type RemoveDocumentUseCase struct {
	companyRepo company.CompanyRepository
	logger      logger.Interface
}

func NewRemoveDocumentUseCase(companyRepo company.CompanyRepository, logger logger.Interface) *RemoveDocumentUseCase {
	return &RemoveDocumentUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *RemoveDocumentUseCase) Execute(ctx context.Context, cmd RemoveDocumentCommand) error {
	if cmd.CompanyID == 0 || cmd.Path == "" {
		return errors.NewValidationError("company ID and document path are required")
	}

	role, ok := authorization.ParseUserRole(cmd.CallerRole)
	if !ok || !authorization.CanManageCompanies(role) {
		return errors.NewForbiddenError("this role may not manage companies")
	}

	c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		return err
	}

	if err := c.RemoveDocument(cmd.Path); err != nil {
		return errors.NewNotFoundError(err.Error())
	}

	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to persist document removal", "error", err, "company_id", cmd.CompanyID)
		return err
	}

	uc.logger.Infow("company document removed", "company_id", cmd.CompanyID, "path", cmd.Path)
	return nil
}

type DeleteCompanyCommand struct {
	CompanyID  uint
	CallerRole string
}

type DeleteCompanyUseCase struct {
	companyRepo company.CompanyRepository
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(companyRepo company.CompanyRepository, logger logger.Interface) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, cmd DeleteCompanyCommand) error {
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}

	role, ok := authorization.ParseUserRole(cmd.CallerRole)
	if !ok || !authorization.CanManageCompanies(role) {
		return errors.NewForbiddenError("this role may not manage companies")
	}

	if err := uc.companyRepo.Delete(ctx, cmd.CompanyID); err != nil {
		uc.logger.Errorw("failed to delete company", "error", err, "company_id", cmd.CompanyID)
		return err
	}

	uc.logger.Infow("company deleted", "company_id", cmd.CompanyID)
	return nil
}
