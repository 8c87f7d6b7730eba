package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/shared/authorization"
)

func newTestTicket(t *testing.T, draft bool) *Ticket {
	t.Helper()
	tk, err := NewTicket("Login page broken", "CRM", "production", "bug", "500 on submit", vo.UrgencyHigh, 10, draft)
	if err != nil {
		t.Fatalf("NewTicket() error = %v", err)
	}
	return tk
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		application string
		environment string
		requestType string
		description string
		urgency     vo.Urgency
		clientID    uint
		wantErr     bool
	}{
		{"valid", "Title", "CRM", "prod", "bug", "desc", vo.UrgencyLow, 1, false},
		{"missing title", "", "CRM", "prod", "bug", "desc", vo.UrgencyLow, 1, true},
		{"missing application", "Title", "", "prod", "bug", "desc", vo.UrgencyLow, 1, true},
		{"missing environment", "Title", "CRM", "", "bug", "desc", vo.UrgencyLow, 1, true},
		{"missing request type", "Title", "CRM", "prod", "", "desc", vo.UrgencyLow, 1, true},
		{"missing description", "Title", "CRM", "prod", "bug", "", vo.UrgencyLow, 1, true},
		{"invalid urgency", "Title", "CRM", "prod", "bug", "desc", vo.Urgency("extreme"), 1, true},
		{"zero client", "Title", "CRM", "prod", "bug", "desc", vo.UrgencyLow, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.title, tt.application, tt.environment, tt.requestType, tt.description, tt.urgency, tt.clientID, false)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTicket() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTicket_InitialStatus(t *testing.T) {
	draft := newTestTicket(t, true)
	assert.Equal(t, vo.StatusDraft, draft.Status())

	sent := newTestTicket(t, false)
	assert.Equal(t, vo.StatusSent, sent.Status())

	assert.Equal(t, vo.FinancialToQualify, sent.FinancialStatus())
	assert.Equal(t, uint(10), sent.Assignments().Client)
}

func TestTicket_SetNumber(t *testing.T) {
	tk := newTestTicket(t, false)

	assert.Error(t, tk.SetNumber(""))
	assert.NoError(t, tk.SetNumber("TKT-2026-0001"))
	assert.Equal(t, "TKT-2026-0001", tk.Number())
	assert.Error(t, tk.SetNumber("TKT-2026-0002"), "number is immutable once set")
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk := newTestTicket(t, false)

	changed, err := tk.ChangeStatus(vo.StatusInProgress, 5)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	activities := tk.Activities()
	if assert.Len(t, activities, 1) {
		assert.Equal(t, vo.ActivityStatusChange, activities[0].Type)
		assert.Equal(t, uint(5), activities[0].ActorID)
		assert.Equal(t, vo.StatusSent.String(), activities[0].From)
		assert.Equal(t, vo.StatusInProgress.String(), activities[0].To)
	}

	// Same status is a no-op, not an error.
	changed, err = tk.ChangeStatus(vo.StatusInProgress, 5)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, tk.Activities(), 1)

	_, err = tk.ChangeStatus(vo.TicketStatus("NotAStatus"), 5)
	assert.Error(t, err)
	assert.Equal(t, vo.StatusInProgress, tk.Status())
}

func TestTicket_Send(t *testing.T) {
	draft := newTestTicket(t, true)
	assert.NoError(t, draft.Send(10))
	assert.Equal(t, vo.StatusSent, draft.Status())

	// Sending twice fails: the ticket left Draft.
	assert.Error(t, draft.Send(10))

	sent := newTestTicket(t, false)
	assert.Error(t, sent.Send(10))
}

func TestTicket_UpdateFinancial(t *testing.T) {
	tk := newTestTicket(t, false)

	status := vo.FinancialQuote
	est := 12.5
	changed, err := tk.UpdateFinancial(&status, &est, nil, 3)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, vo.FinancialQuote, tk.FinancialStatus())
	assert.Equal(t, 12.5, tk.EstimatedHours())
	assert.Len(t, tk.Activities(), 1)

	// Hours-only updates do not log an activity.
	actual := 4.0
	changed, err = tk.UpdateFinancial(nil, nil, &actual, 3)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 4.0, tk.ActualHours())
	assert.Len(t, tk.Activities(), 1)

	bad := vo.FinancialStatus("nonsense")
	_, err = tk.UpdateFinancial(&bad, nil, nil, 3)
	assert.Error(t, err)
}

func TestTicket_AddComment(t *testing.T) {
	tk := newTestTicket(t, false)

	assert.Error(t, tk.AddComment(Comment{AuthorID: 1}), "empty comment without files")
	assert.Error(t, tk.AddComment(Comment{Text: "hello"}), "missing author")

	assert.NoError(t, tk.AddComment(Comment{AuthorID: 1, Text: "first"}))
	assert.NoError(t, tk.AddComment(Comment{AuthorID: 2, Files: []FileRef{{Name: "log.txt"}}}))

	comments := tk.Comments()
	if assert.Len(t, comments, 2) {
		assert.Equal(t, uint(1), comments[0].ID)
		assert.Equal(t, uint(2), comments[1].ID)
		assert.False(t, comments[0].CreatedAt.IsZero())
	}

	activities := tk.Activities()
	if assert.Len(t, activities, 2) {
		assert.Equal(t, vo.ActivityCommentAdded, activities[1].Type)
		assert.Equal(t, "log.txt", activities[1].Detail)
	}
}

func TestTicket_Interventions(t *testing.T) {
	tk := newTestTicket(t, false)

	_, err := tk.AddIntervention(Intervention{PerformedBy: 7})
	assert.Error(t, err, "description required")
	_, err = tk.AddIntervention(Intervention{Description: "patched config"})
	assert.Error(t, err, "performer required")

	id, err := tk.AddIntervention(Intervention{Description: "patched config", PerformedBy: 7})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), id)

	assert.NoError(t, tk.RequestValidation(id, 7))
	assert.Error(t, tk.RequestValidation(id, 7), "already requested")
	assert.Error(t, tk.RequestValidation(99, 7), "unknown intervention")

	ivs := tk.Interventions()
	if assert.Len(t, ivs, 1) {
		assert.True(t, ivs[0].ValidationRequested)
	}
}

func TestTicket_ValidateIntervention(t *testing.T) {
	t.Run("accepted moves to client validation", func(t *testing.T) {
		tk := newTestTicket(t, false)
		id, _ := tk.AddIntervention(Intervention{Description: "fix", PerformedBy: 7})

		assert.NoError(t, tk.ValidateIntervention(id, true, 10, ""))
		assert.Equal(t, vo.StatusClientValidation, tk.Status())

		iv := tk.Interventions()[0]
		if assert.NotNil(t, iv.Validated) {
			assert.True(t, *iv.Validated)
		}
		assert.NotNil(t, iv.ValidatedAt)
	})

	t.Run("rejected moves to revision with note", func(t *testing.T) {
		tk := newTestTicket(t, false)
		id, _ := tk.AddIntervention(Intervention{Description: "fix", PerformedBy: 7})

		assert.NoError(t, tk.ValidateIntervention(id, false, 10, "still broken on Safari"))
		assert.Equal(t, vo.StatusRevision, tk.Status())
		assert.Equal(t, "still broken on Safari", tk.Interventions()[0].RejectionNote)
	})

	t.Run("double validation fails", func(t *testing.T) {
		tk := newTestTicket(t, false)
		id, _ := tk.AddIntervention(Intervention{Description: "fix", PerformedBy: 7})

		assert.NoError(t, tk.ValidateIntervention(id, true, 10, ""))
		assert.Error(t, tk.ValidateIntervention(id, false, 10, ""))
	})
}

func TestTicket_Blockers(t *testing.T) {
	tk := newTestTicket(t, false)

	assert.Error(t, tk.AddBlocker(0, Blocker{CreatedBy: 7}), "reason required")

	// Ticket-level blocker.
	assert.NoError(t, tk.AddBlocker(0, Blocker{Reason: "waiting on client VPN access", CreatedBy: 7}))
	assert.Len(t, tk.Blockers(), 1)

	assert.Error(t, tk.ResolveBlocker(0, 5, "done", 7), "index out of range")
	assert.NoError(t, tk.ResolveBlocker(0, 0, "access granted", 4))
	assert.Error(t, tk.ResolveBlocker(0, 0, "again", 4), "already resolved")

	resolved := tk.Blockers()[0]
	assert.True(t, resolved.Resolved)
	assert.Equal(t, "access granted", resolved.Resolution)
	if assert.NotNil(t, resolved.ResolvedBy) {
		assert.Equal(t, uint(4), *resolved.ResolvedBy)
	}

	// Intervention-level blocker.
	id, _ := tk.AddIntervention(Intervention{Description: "migration", PerformedBy: 7})
	assert.NoError(t, tk.AddBlocker(id, Blocker{Reason: "schema locked", CreatedBy: 7}))
	assert.Error(t, tk.AddBlocker(99, Blocker{Reason: "x", CreatedBy: 7}))
	assert.NoError(t, tk.ResolveBlocker(id, 0, "lock released", 7))
	assert.True(t, tk.Interventions()[0].Blockers[0].Resolved)
}

func TestTicket_AssignRoles(t *testing.T) {
	t.Run("admin assigns every slot", func(t *testing.T) {
		tk := newTestTicket(t, false)
		assigned := tk.AssignRoles(authorization.RoleAdmin, []SlotAssignment{
			{Slot: authorization.SlotProjectManager, UserID: 20},
			{Slot: authorization.SlotGroupLeader, UserID: 21},
		}, 1)

		assert.Equal(t, []uint{20, 21}, assigned)
		if assert.NotNil(t, tk.Assignments().ProjectManager) {
			assert.Equal(t, uint(20), *tk.Assignments().ProjectManager)
		}
	})

	t.Run("unauthorized slots are skipped", func(t *testing.T) {
		tk := newTestTicket(t, false)
		assigned := tk.AssignRoles(authorization.RoleAgentCommercial, []SlotAssignment{
			{Slot: authorization.SlotGroupLeader, UserID: 21},
			{Slot: authorization.SlotResponsibleTester, UserID: 30},
		}, 2)

		assert.Equal(t, []uint{21}, assigned)
		assert.Nil(t, tk.Assignments().ResponsibleTester)
	})

	t.Run("roles without assignment rights apply nothing", func(t *testing.T) {
		tk := newTestTicket(t, false)
		assigned := tk.AssignRoles(authorization.RoleDeveloper, []SlotAssignment{
			{Slot: authorization.SlotGroupLeader, UserID: 21},
		}, 3)

		assert.Empty(t, assigned)
		assert.Empty(t, tk.Activities())
	})

	t.Run("reassigning the same user is a no-op", func(t *testing.T) {
		tk := newTestTicket(t, false)
		tk.AssignRoles(authorization.RoleAdmin, []SlotAssignment{{Slot: authorization.SlotProjectManager, UserID: 20}}, 1)
		assigned := tk.AssignRoles(authorization.RoleAdmin, []SlotAssignment{{Slot: authorization.SlotProjectManager, UserID: 20}}, 1)
		assert.Empty(t, assigned)
	})

	t.Run("assignment reactivates an expired ticket", func(t *testing.T) {
		tk := newTestTicket(t, false)
		_, err := tk.ChangeStatus(vo.StatusExpired, 1)
		assert.NoError(t, err)

		tk.AssignRoles(authorization.RoleAdmin, []SlotAssignment{{Slot: authorization.SlotGroupLeader, UserID: 21}}, 1)
		assert.Equal(t, vo.StatusSent, tk.Status())
	})
}

func TestTicket_Transfer(t *testing.T) {
	tk := newTestTicket(t, false)

	assert.Error(t, tk.Transfer("", "no capacity", 1))

	assert.NoError(t, tk.Transfer("infra team", "requires network change", 1))
	assert.Equal(t, vo.StatusTransferred, tk.Status())
	if assert.Len(t, tk.Transfers(), 1) {
		assert.Equal(t, "infra team", tk.Transfers()[0].Target)
	}
	assert.True(t, tk.Status().IsTerminal())
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	tk := newTestTicket(t, false)
	tk.AssignRoles(authorization.RoleAdmin, []SlotAssignment{{Slot: authorization.SlotGroupLeader, UserID: 21}}, 1)

	assert.True(t, tk.CanBeViewedBy(10, authorization.RoleClient), "client slot holder")
	assert.True(t, tk.CanBeViewedBy(21, authorization.RoleGroupLeader), "assigned group leader")
	assert.True(t, tk.CanBeViewedBy(99, authorization.RoleAdmin), "admins always")
	assert.False(t, tk.CanBeViewedBy(99, authorization.RoleDeveloper), "unrelated user")
}

func TestReconstructTicket_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*reconstructArgs)
		wantErr bool
	}{
		{"valid", func(a *reconstructArgs) {}, false},
		{"zero id", func(a *reconstructArgs) { a.id = 0 }, true},
		{"empty number", func(a *reconstructArgs) { a.number = "" }, true},
		{"invalid status", func(a *reconstructArgs) { a.status = "Bogus" }, true},
		{"invalid financial status", func(a *reconstructArgs) { a.financial = "Bogus" }, true},
		{"missing client", func(a *reconstructArgs) { a.client = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := reconstructArgs{id: 1, number: "TKT-2026-0001", status: vo.StatusSent, financial: vo.FinancialToQualify, client: 10}
			tt.mutate(&args)

			_, err := ReconstructTicket(
				args.id, args.number,
				"Title", "CRM", "prod", "bug", "desc",
				vo.UrgencyLow, args.status, args.financial,
				0, 0,
				RoleAssignments{Client: args.client},
				nil, nil, nil, nil, nil, nil, nil, nil, nil,
				time.Now(), time.Now(),
			)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReconstructTicket() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

type reconstructArgs struct {
	id        uint
	number    string
	status    vo.TicketStatus
	financial vo.FinancialStatus
	client    uint
}
