// Package dto holds the response shapes the ticket handlers serialize.
package dto

import (
	"time"

	"deskflow/internal/domain/ticket"
)

type FileRefDTO struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	UploadedBy uint      `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type MentionDTO struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
}

type CommentDTO struct {
	ID         uint         `json:"id"`
	AuthorID   uint         `json:"author_id"`
	AuthorName string       `json:"author_name"`
	Text       string       `json:"text"`
	TextHTML   string       `json:"text_html,omitempty"`
	Files      []FileRefDTO `json:"files,omitempty"`
	Mentions   []MentionDTO `json:"mentions,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

type ActivityDTO struct {
	ID      uint      `json:"id"`
	Type    string    `json:"type"`
	ActorID uint      `json:"actor_id"`
	From    string    `json:"from,omitempty"`
	To      string    `json:"to,omitempty"`
	Detail  string    `json:"detail,omitempty"`
	Date    time.Time `json:"date"`
}

type MeetingDTO struct {
	Subject     string    `json:"subject"`
	ScheduledAt time.Time `json:"scheduled_at"`
	DurationMin int       `json:"duration_min"`
	Location    string    `json:"location,omitempty"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type BlockerDTO struct {
	Reason     string     `json:"reason"`
	CreatedBy  uint       `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	Resolved   bool       `json:"resolved"`
	Resolution string     `json:"resolution,omitempty"`
	ResolvedBy *uint      `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type InterventionDTO struct {
	ID                  uint         `json:"id"`
	Description         string       `json:"description"`
	PerformedBy         uint         `json:"performed_by"`
	StartedAt           time.Time    `json:"started_at"`
	Hours               float64      `json:"hours"`
	Blockers            []BlockerDTO `json:"blockers,omitempty"`
	ValidationRequested bool         `json:"validation_requested"`
	Validated           *bool        `json:"validated,omitempty"`
	ValidatedAt         *time.Time   `json:"validated_at,omitempty"`
	ValidatedBy         *uint        `json:"validated_by,omitempty"`
	RejectionNote       string       `json:"rejection_note,omitempty"`
}

type TransferDTO struct {
	Target        string    `json:"target"`
	Reason        string    `json:"reason,omitempty"`
	TransferredBy uint      `json:"transferred_by"`
	TransferredAt time.Time `json:"transferred_at"`
}

type ContactDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Availability string `json:"availability,omitempty"`
}

type AssignmentsDTO struct {
	Client            uint  `json:"client"`
	ResponsibleClient *uint `json:"responsible_client,omitempty"`
	AgentCommercial   *uint `json:"agent_commercial,omitempty"`
	ProjectManager    *uint `json:"project_manager,omitempty"`
	GroupLeader       *uint `json:"group_leader,omitempty"`
	ResponsibleTester *uint `json:"responsible_tester,omitempty"`
}

type TicketDTO struct {
	ID              uint              `json:"id"`
	Number          string            `json:"number"`
	Title           string            `json:"title"`
	Application     string            `json:"application"`
	Environment     string            `json:"environment"`
	RequestType     string            `json:"request_type"`
	Urgency         string            `json:"urgency"`
	Description     string            `json:"description"`
	Status          string            `json:"status"`
	FinancialStatus string            `json:"financial_status"`
	EstimatedHours  float64           `json:"estimated_hours"`
	ActualHours     float64           `json:"actual_hours"`
	Assignments     AssignmentsDTO    `json:"assignments"`
	Attachments     []FileRefDTO      `json:"attachments,omitempty"`
	Links           []string          `json:"links,omitempty"`
	Contacts        []ContactDTO      `json:"contacts,omitempty"`
	Comments        []CommentDTO      `json:"comments,omitempty"`
	Activities      []ActivityDTO     `json:"activities,omitempty"`
	Meetings        []MeetingDTO      `json:"meetings,omitempty"`
	Interventions   []InterventionDTO `json:"interventions,omitempty"`
	Blockers        []BlockerDTO      `json:"blockers,omitempty"`
	Transfers       []TransferDTO     `json:"transfers,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func fileRefs(files []ticket.FileRef) []FileRefDTO {
	if len(files) == 0 {
		return nil
	}
	out := make([]FileRefDTO, len(files))
	for i, f := range files {
		out[i] = FileRefDTO{
			Name:       f.Name,
			Path:       f.Path,
			Size:       f.Size,
			UploadedBy: f.UploadedBy,
			UploadedAt: f.UploadedAt,
		}
	}
	return out
}

func blockers(list []ticket.Blocker) []BlockerDTO {
	if len(list) == 0 {
		return nil
	}
	out := make([]BlockerDTO, len(list))
	for i, b := range list {
		out[i] = BlockerDTO{
			Reason:     b.Reason,
			CreatedBy:  b.CreatedBy,
			CreatedAt:  b.CreatedAt,
			Resolved:   b.Resolved,
			Resolution: b.Resolution,
			ResolvedBy: b.ResolvedBy,
			ResolvedAt: b.ResolvedAt,
		}
	}
	return out
}

// FromTicket flattens the aggregate into the response shape.
func FromTicket(t *ticket.Ticket) *TicketDTO {
	assignments := t.Assignments()

	dto := &TicketDTO{
		ID:              t.ID(),
		Number:          t.Number(),
		Title:           t.Title(),
		Application:     t.Application(),
		Environment:     t.Environment(),
		RequestType:     t.RequestType(),
		Urgency:         t.Urgency().String(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		FinancialStatus: t.FinancialStatus().String(),
		EstimatedHours:  t.EstimatedHours(),
		ActualHours:     t.ActualHours(),
		Assignments: AssignmentsDTO{
			Client:            assignments.Client,
			ResponsibleClient: assignments.ResponsibleClient,
			AgentCommercial:   assignments.AgentCommercial,
			ProjectManager:    assignments.ProjectManager,
			GroupLeader:       assignments.GroupLeader,
			ResponsibleTester: assignments.ResponsibleTester,
		},
		Attachments: fileRefs(t.Attachments()),
		Links:       t.Links(),
		Blockers:    blockers(t.Blockers()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}

	for _, c := range t.Contacts() {
		dto.Contacts = append(dto.Contacts, ContactDTO{
			Name:         c.Name,
			Email:        c.Email,
			Phone:        c.Phone,
			Availability: c.Availability,
		})
	}

	for _, c := range t.Comments() {
		commentDTO := CommentDTO{
			ID:         c.ID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
			Text:       c.Text,
			Files:      fileRefs(c.Files),
			CreatedAt:  c.CreatedAt,
		}
		for _, m := range c.Mentions {
			commentDTO.Mentions = append(commentDTO.Mentions, MentionDTO{UserID: m.UserID, Token: m.Token})
		}
		dto.Comments = append(dto.Comments, commentDTO)
	}

	for _, a := range t.Activities() {
		dto.Activities = append(dto.Activities, ActivityDTO{
			ID:      a.ID,
			Type:    a.Type.String(),
			ActorID: a.ActorID,
			From:    a.From,
			To:      a.To,
			Detail:  a.Detail,
			Date:    a.Date,
		})
	}

	for _, m := range t.Meetings() {
		dto.Meetings = append(dto.Meetings, MeetingDTO{
			Subject:     m.Subject,
			ScheduledAt: m.ScheduledAt,
			DurationMin: m.DurationMin,
			Location:    m.Location,
			CreatedBy:   m.CreatedBy,
			CreatedAt:   m.CreatedAt,
		})
	}

	for _, iv := range t.Interventions() {
		dto.Interventions = append(dto.Interventions, InterventionDTO{
			ID:                  iv.ID,
			Description:         iv.Description,
			PerformedBy:         iv.PerformedBy,
			StartedAt:           iv.StartedAt,
			Hours:               iv.Hours,
			Blockers:            blockers(iv.Blockers),
			ValidationRequested: iv.ValidationRequested,
			Validated:           iv.Validated,
			ValidatedAt:         iv.ValidatedAt,
			ValidatedBy:         iv.ValidatedBy,
			RejectionNote:       iv.RejectionNote,
		})
	}

	for _, tr := range t.Transfers() {
		dto.Transfers = append(dto.Transfers, TransferDTO{
			Target:        tr.Target,
			Reason:        tr.Reason,
			TransferredBy: tr.TransferredBy,
			TransferredAt: tr.TransferredAt,
		})
	}

	return dto
}
