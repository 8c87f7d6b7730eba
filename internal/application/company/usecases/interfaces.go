package usecases

import "context"

type CreateCompanyExecutor interface {
	Execute(ctx context.Context, cmd CreateCompanyCommand) (*CompanyDTO, error)
}

type GetCompanyExecutor interface {
	Execute(ctx context.Context, query GetCompanyQuery) (*CompanyDTO, error)
}

type ListCompaniesExecutor interface {
	Execute(ctx context.Context, query ListCompaniesQuery) (*ListCompaniesResult, error)
}

type UpdateCompanyExecutor interface {
	Execute(ctx context.Context, cmd UpdateCompanyCommand) (*CompanyDTO, error)
}

type UploadDocumentExecutor interface {
	Execute(ctx context.Context, cmd UploadDocumentCommand) error
}

type RemoveDocumentExecutor interface {
	Execute(ctx context.Context, cmd RemoveDocumentCommand) error
}

type DeleteCompanyExecutor interface {
	Execute(ctx context.Context, cmd DeleteCompanyCommand) error
}
