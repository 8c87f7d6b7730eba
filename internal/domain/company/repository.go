package company

import "context"

type CompanyRepository interface {
	Save(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, companyID uint) error
	GetByID(ctx context.Context, companyID uint) (*Company, error)
	List(ctx context.Context, page, pageSize int) ([]*Company, int64, error)
	ListByAgent(ctx context.Context, agentID uint) ([]*Company, error)
}
