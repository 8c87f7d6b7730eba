package ticket

import (
	"context"

	vo "deskflow/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

// TicketFilter narrows List results. RelatedUserID restricts to tickets
// where the user holds any relationship slot; it is ignored when zero
// (admin listing).
type TicketFilter struct {
	Status        *vo.TicketStatus
	Urgency       *vo.Urgency
	RelatedUserID uint
	Page          int
	PageSize      int
}
