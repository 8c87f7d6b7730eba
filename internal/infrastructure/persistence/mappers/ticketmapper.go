package mappers

import (
	"encoding/json"
	"fmt"

	"deskflow/internal/domain/ticket"
	vo "deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models. Comments and activities live in child tables and are
// loaded separately by the repository; the smaller sub-lists are JSON
// columns on the ticket row.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToDomain(model *models.TicketModel, comments []ticket.Comment, activities []ticket.Activity) (*ticket.Ticket, error)

	CommentToModel(ticketID uint, c ticket.Comment) (*models.TicketCommentModel, error)
	CommentToDomain(model *models.TicketCommentModel) (ticket.Comment, error)

	ActivityToModel(ticketID uint, a ticket.Activity) *models.TicketActivityModel
	ActivityToDomain(model *models.TicketActivityModel) ticket.Activity
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func marshalList(v any, what string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", what, err)
	}
	return string(data), nil
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	assignments := t.Assignments()

	model := &models.TicketModel{
		ID:                  t.ID(),
		Number:              t.Number(),
		Title:               t.Title(),
		Application:         t.Application(),
		Environment:         t.Environment(),
		RequestType:         t.RequestType(),
		Urgency:             t.Urgency().String(),
		Description:         t.Description(),
		Status:              t.Status().String(),
		FinancialStatus:     t.FinancialStatus().String(),
		EstimatedHours:      t.EstimatedHours(),
		ActualHours:         t.ActualHours(),
		ClientID:            assignments.Client,
		ResponsibleClientID: assignments.ResponsibleClient,
		AgentCommercialID:   assignments.AgentCommercial,
		ProjectManagerID:    assignments.ProjectManager,
		GroupLeaderID:       assignments.GroupLeader,
		ResponsibleTesterID: assignments.ResponsibleTester,
		CreatedAt:           t.CreatedAt().UnixMilli(),
		UpdatedAt:           t.UpdatedAt().UnixMilli(),
	}

	var err error
	if files := t.Attachments(); len(files) > 0 {
		if model.Attachments, err = marshalList(files, "ticket attachments"); err != nil {
			return nil, err
		}
	}
	if links := t.Links(); len(links) > 0 {
		if model.Links, err = marshalList(links, "ticket links"); err != nil {
			return nil, err
		}
	}
	if contacts := t.Contacts(); len(contacts) > 0 {
		if model.Contacts, err = marshalList(contacts, "ticket contacts"); err != nil {
			return nil, err
		}
	}
	if meetings := t.Meetings(); len(meetings) > 0 {
		if model.Meetings, err = marshalList(meetings, "ticket meetings"); err != nil {
			return nil, err
		}
	}
	if interventions := t.Interventions(); len(interventions) > 0 {
		if model.Interventions, err = marshalList(interventions, "ticket interventions"); err != nil {
			return nil, err
		}
	}
	if blockers := t.Blockers(); len(blockers) > 0 {
		if model.Blockers, err = marshalList(blockers, "ticket blockers"); err != nil {
			return nil, err
		}
	}
	if transfers := t.Transfers(); len(transfers) > 0 {
		if model.Transfers, err = marshalList(transfers, "ticket transfers"); err != nil {
			return nil, err
		}
	}

	return model, nil
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, comments []ticket.Comment, activities []ticket.Activity) (*ticket.Ticket, error) {
	var attachments []ticket.FileRef
	if model.Attachments != "" {
		if err := json.Unmarshal([]byte(model.Attachments), &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket attachments (id=%d): %w", model.ID, err)
		}
	}

	var links []string
	if model.Links != "" {
		if err := json.Unmarshal([]byte(model.Links), &links); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket links (id=%d): %w", model.ID, err)
		}
	}

	var contacts []ticket.Contact
	if model.Contacts != "" {
		if err := json.Unmarshal([]byte(model.Contacts), &contacts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket contacts (id=%d): %w", model.ID, err)
		}
	}

	var meetings []ticket.Meeting
	if model.Meetings != "" {
		if err := json.Unmarshal([]byte(model.Meetings), &meetings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket meetings (id=%d): %w", model.ID, err)
		}
	}

	var interventions []ticket.Intervention
	if model.Interventions != "" {
		if err := json.Unmarshal([]byte(model.Interventions), &interventions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket interventions (id=%d): %w", model.ID, err)
		}
	}

	var blockers []ticket.Blocker
	if model.Blockers != "" {
		if err := json.Unmarshal([]byte(model.Blockers), &blockers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket blockers (id=%d): %w", model.ID, err)
		}
	}

	var transfers []ticket.Transfer
	if model.Transfers != "" {
		if err := json.Unmarshal([]byte(model.Transfers), &transfers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket transfers (id=%d): %w", model.ID, err)
		}
	}

	assignments := ticket.RoleAssignments{
		Client:            model.ClientID,
		ResponsibleClient: model.ResponsibleClientID,
		AgentCommercial:   model.AgentCommercialID,
		ProjectManager:    model.ProjectManagerID,
		GroupLeader:       model.GroupLeaderID,
		ResponsibleTester: model.ResponsibleTesterID,
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Application,
		model.Environment,
		model.RequestType,
		model.Description,
		vo.Urgency(model.Urgency),
		vo.TicketStatus(model.Status),
		vo.FinancialStatus(model.FinancialStatus),
		model.EstimatedHours,
		model.ActualHours,
		assignments,
		attachments,
		links,
		contacts,
		comments,
		activities,
		meetings,
		interventions,
		blockers,
		transfers,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(ticketID uint, c ticket.Comment) (*models.TicketCommentModel, error) {
	model := &models.TicketCommentModel{
		TicketID:   ticketID,
		CommentID:  c.ID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt.UnixMilli(),
	}

	if len(c.Files) > 0 {
		data, err := marshalList(c.Files, "comment files")
		if err != nil {
			return nil, err
		}
		model.Files = data
	}
	if len(c.Mentions) > 0 {
		data, err := marshalList(c.Mentions, "comment mentions")
		if err != nil {
			return nil, err
		}
		model.Mentions = data
	}

	return model, nil
}

func (m *TicketMapperImpl) CommentToDomain(model *models.TicketCommentModel) (ticket.Comment, error) {
	c := ticket.Comment{
		ID:         model.CommentID,
		AuthorID:   model.AuthorID,
		AuthorName: model.AuthorName,
		Text:       model.Text,
		CreatedAt:  millisToTime(model.CreatedAt),
	}

	if model.Files != "" {
		if err := json.Unmarshal([]byte(model.Files), &c.Files); err != nil {
			return ticket.Comment{}, fmt.Errorf("failed to unmarshal comment files (id=%d): %w", model.ID, err)
		}
	}
	if model.Mentions != "" {
		if err := json.Unmarshal([]byte(model.Mentions), &c.Mentions); err != nil {
			return ticket.Comment{}, fmt.Errorf("failed to unmarshal comment mentions (id=%d): %w", model.ID, err)
		}
	}

	return c, nil
}

func (m *TicketMapperImpl) ActivityToModel(ticketID uint, a ticket.Activity) *models.TicketActivityModel {
	return &models.TicketActivityModel{
		TicketID:     ticketID,
		ActivityType: a.Type.String(),
		ActorID:      a.ActorID,
		FromValue:    a.From,
		ToValue:      a.To,
		Detail:       a.Detail,
		CreatedAt:    a.Date.UnixMilli(),
	}
}

func (m *TicketMapperImpl) ActivityToDomain(model *models.TicketActivityModel) ticket.Activity {
	return ticket.Activity{
		ID:      model.ID,
		Type:    vo.ActivityType(model.ActivityType),
		ActorID: model.ActorID,
		From:    model.FromValue,
		To:      model.ToValue,
		Detail:  model.Detail,
		Date:    millisToTime(model.CreatedAt),
	}
}
