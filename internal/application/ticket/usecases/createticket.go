package usecases

import (
	"context"
	"fmt"
	"time"

	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/errors"
	"deskflow/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Application string
	Environment string
	RequestType string
	Description string
	Urgency     string
	Draft       bool
	ClientID    uint
	CallerID    uint
	CallerRole  string
	Links       []string
	Contacts    []ticket.Contact
	Attachments []ticket.FileRef
}

type CreateTicketResult struct {
	TicketID  uint
	Number    string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	numbers    ticket.NumberGenerator
	notifier   Notifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	numbers ticket.NumberGenerator,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		numbers:    numbers,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "client_id", cmd.ClientID)

	role, ok := authorization.ParseUserRole(cmd.CallerRole)
	if !ok || !authorization.CanCreateTicket(role) {
		return nil, errors.NewForbiddenError("this role may not open tickets")
	}

	// Clients always open tickets for themselves; anyone else has to say
	// which client the ticket belongs to.
	clientID := cmd.ClientID
	if role == authorization.RoleClient {
		clientID = cmd.CallerID
	} else if clientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}

	urgency, err := vo.NewUrgency(cmd.Urgency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Application,
		cmd.Environment,
		cmd.RequestType,
		cmd.Description,
		urgency,
		clientID,
		cmd.Draft,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numbers.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	if err := newTicket.SetNumber(number); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	for _, link := range cmd.Links {
		newTicket.AddLink(link)
	}
	for _, contact := range cmd.Contacts {
		newTicket.AddContact(contact)
	}
	for _, file := range cmd.Attachments {
		newTicket.AddAttachment(file)
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// Submitted tickets go straight to the commercial agents' queues.
	if !cmd.Draft {
		uc.notifyAgents(ctx, newTicket)
	}
	uc.notifyContacts(ctx, newTicket)

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "number", newTicket.Number())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Number:    newTicket.Number(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// notifyContacts notifies every ticket contact whose email belongs to a
// registered user. Contacts without an account are skipped here; they get
// an email invitation when a responsible client is assigned.
func (uc *CreateTicketUseCase) notifyContacts(ctx context.Context, t *ticket.Ticket) {
	var ids []uint
	seen := map[uint]bool{}
	for _, contact := range t.Contacts() {
		if contact.Email == "" {
			continue
		}
		u, err := uc.userRepo.GetByEmail(ctx, contact.Email)
		if err != nil {
			continue
		}
		if !seen[u.ID()] {
			seen[u.ID()] = true
			ids = append(ids, u.ID())
		}
	}
	if len(ids) == 0 {
		return
	}

	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		ids,
		fmt.Sprintf("You were added as a contact on ticket %s", t.Number()),
		&ticketID,
		notification.ModelTicket,
	)
}

func (uc *CreateTicketUseCase) notifyAgents(ctx context.Context, t *ticket.Ticket) {
	agents, err := uc.userRepo.ListByRole(ctx, authorization.RoleAgentCommercial)
	if err != nil {
		uc.logger.Errorw("failed to load commercial agents for notification", "error", err)
		return
	}

	ids := make([]uint, 0, len(agents))
	for _, a := range agents {
		ids = append(ids, a.ID())
	}
	if len(ids) == 0 {
		return
	}

	ticketID := t.ID()
	uc.notifier.NotifyUsers(ctx,
		ids,
		fmt.Sprintf("New ticket %s awaits qualification", t.Number()),
		&ticketID,
		notification.ModelTicket,
	)
}
