package usecases

import (
	"context"

	"deskflow/internal/application/ticket/dto"
	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status     string
	Urgency    string
	CallerID   uint
	CallerRole string
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute lists tickets visible to the caller. Admins see everything;
// everyone else sees only tickets where they hold a relationship slot.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Urgency != "" {
		urgency, err := vo.NewUrgency(query.Urgency)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Urgency = &urgency
	}

	role, _ := authorization.ParseUserRole(query.CallerRole)
	if !role.IsAdmin() {
		filter.RelatedUserID = query.CallerID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	dtos := make([]*dto.TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = dto.FromTicket(t)
	}

	return &ListTicketsResult{Tickets: dtos, Total: total}, nil
}
