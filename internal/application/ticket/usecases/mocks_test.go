package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	nusecases "deskflow/internal/application/notification/usecases"
	"deskflow/internal/domain/notification"
	"deskflow/internal/domain/ticket"
	"deskflow/internal/domain/user"
	"deskflow/internal/shared/authorization"
	"deskflow/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTicketRepo struct {
	saveFn        func(ctx context.Context, t *ticket.Ticket) error
	updateFn      func(ctx context.Context, t *ticket.Ticket) error
	getByIDFn     func(ctx context.Context, id uint) (*ticket.Ticket, error)
	getByNumberFn func(ctx context.Context, number string) (*ticket.Ticket, error)
	listFn        func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTicketRepo) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return m.getByNumberFn(ctx, number)
}

func (m *mockTicketRepo) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return m.listFn(ctx, filter)
}

type mockUserRepo struct {
	getByIDFn    func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
	getByIDsFn   func(ctx context.Context, ids []uint) ([]*user.User, error)
	listByRoleFn func(ctx context.Context, role authorization.UserRole) ([]*user.User, error)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, userID uint) error  { return nil }

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return m.getByIDsFn(ctx, ids)
}

func (m *mockUserRepo) ListByRole(ctx context.Context, role authorization.UserRole) ([]*user.User, error) {
	return m.listByRoleFn(ctx, role)
}

func (m *mockUserRepo) ListAll(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

// notifyCall records one NotifyUsers invocation.
type notifyCall struct {
	UserIDs      []uint
	Message      string
	RelatedID    *uint
	RelatedModel notification.RelatedModel
}

type mockNotifier struct {
	notifications []notifyCall
	mentions      []nusecases.ResolvedMention

	// mentionNotifies records each NotifyMentioned invocation.
	mentionNotifies [][]nusecases.ResolvedMention
}

func (m *mockNotifier) NotifyUsers(ctx context.Context, userIDs []uint, message string, relatedID *uint, relatedModel notification.RelatedModel) {
	m.notifications = append(m.notifications, notifyCall{
		UserIDs:      userIDs,
		Message:      message,
		RelatedID:    relatedID,
		RelatedModel: relatedModel,
	})
}

func (m *mockNotifier) ResolveMentions(ctx context.Context, text string) []nusecases.ResolvedMention {
	return m.mentions
}

func (m *mockNotifier) NotifyMentioned(ctx context.Context, resolved []nusecases.ResolvedMention, authorName, entityType string, relatedID *uint, relatedModel notification.RelatedModel) {
	m.mentionNotifies = append(m.mentionNotifies, resolved)
}

type mockEmailSender struct {
	invitations []string
	err         error
}

func (m *mockEmailSender) SendContactInvitation(to, contactName, ticketNumber string) error {
	m.invitations = append(m.invitations, to)
	return m.err
}

type fixedNumberGenerator struct {
	number string
	err    error
}

func (g *fixedNumberGenerator) Generate(ctx context.Context) (string, error) {
	return g.number, g.err
}

// testUser builds a persisted-looking user with the given role.
func testUser(id uint, firstName, lastName, email string, role authorization.UserRole) *user.User {
	u, err := user.ReconstructUser(id, firstName, lastName, email, "hash", role, nil, false, "en", time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	return u
}

// savedTicket builds a persisted-looking ticket owned by client 10.
func savedTicket(id uint) *ticket.Ticket {
	t, err := ticket.NewTicket("Login page broken", "CRM", "production", "bug", "500 on submit", "High", 10, false)
	if err != nil {
		panic(err)
	}
	if err := t.SetID(id); err != nil {
		panic(err)
	}
	if err := t.SetNumber("TCK_INC_01/09/2026_URG_000042"); err != nil {
		panic(err)
	}
	return t
}
