package dto

import (
	"time"

	"deskflow/internal/domain/task"
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
	Mentions   []MentionDTO `json:"mentions,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
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

type HistoryEntryDTO struct {
	Type    string    `json:"type"`
	ActorID uint      `json:"actor_id"`
	From    string    `json:"from,omitempty"`
	To      string    `json:"to,omitempty"`
	Detail  string    `json:"detail,omitempty"`
	Date    time.Time `json:"date"`
}

type TaskDTO struct {
	ID             uint              `json:"id"`
	Number         string            `json:"number"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	AssigneeIDs    []uint            `json:"assignee_ids"`
	CreatorID      uint              `json:"creator_id"`
	Urgency        string            `json:"urgency"`
	Priority       int               `json:"priority"`
	Status         string            `json:"status"`
	DueDate        *time.Time        `json:"due_date,omitempty"`
	StartDate      *time.Time        `json:"start_date,omitempty"`
	CompletionDate *time.Time        `json:"completion_date,omitempty"`
	EstimatedHours float64           `json:"estimated_hours"`
	ActualHours    float64           `json:"actual_hours"`
	Attachments    []FileRefDTO      `json:"attachments,omitempty"`
	Blockers       []BlockerDTO      `json:"blockers,omitempty"`
	Comments       []CommentDTO      `json:"comments,omitempty"`
	ParentID       *uint             `json:"parent_id,omitempty"`
	SubtaskIDs     []uint            `json:"subtask_ids,omitempty"`
	History        []HistoryEntryDTO `json:"history,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type TestTaskDTO struct {
	ID          uint              `json:"id"`
	Number      string            `json:"number"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	AssigneeIDs []uint            `json:"assignee_ids"`
	CreatorID   uint              `json:"creator_id"`
	Urgency     string            `json:"urgency"`
	Priority    int               `json:"priority"`
	Status      string            `json:"status"`
	DueDate     *time.Time        `json:"due_date,omitempty"`
	Attachments []FileRefDTO      `json:"attachments,omitempty"`
	Blockers    []BlockerDTO      `json:"blockers,omitempty"`
	Comments    []CommentDTO      `json:"comments,omitempty"`
	History     []HistoryEntryDTO `json:"history,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func FromTask(t *task.Task) *TaskDTO {
	return &TaskDTO{
		ID:             t.ID(),
		Number:         t.Number(),
		Name:           t.Name(),
		Description:    t.Description(),
		AssigneeIDs:    t.AssigneeIDs(),
		CreatorID:      t.CreatorID(),
		Urgency:        t.Urgency().String(),
		Priority:       t.Priority().Int(),
		Status:         t.Status().String(),
		DueDate:        t.DueDate(),
		StartDate:      t.StartDate(),
		CompletionDate: t.CompletionDate(),
		EstimatedHours: t.EstimatedHours(),
		ActualHours:    t.ActualHours(),
		Attachments:    fileRefs(t.Attachments()),
		Blockers:       blockers(t.Blockers()),
		Comments:       comments(t.Comments()),
		ParentID:       t.ParentID(),
		SubtaskIDs:     t.SubtaskIDs(),
		History:        history(t.History()),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func FromTestTask(t *task.TestTask) *TestTaskDTO {
	return &TestTaskDTO{
		ID:          t.ID(),
		Number:      t.Number(),
		Title:       t.Title(),
		Description: t.Description(),
		AssigneeIDs: t.AssigneeIDs(),
		CreatorID:   t.CreatorID(),
		Urgency:     t.Urgency().String(),
		Priority:    t.Priority().Int(),
		Status:      t.Status().String(),
		DueDate:     t.DueDate(),
		Attachments: fileRefs(t.Attachments()),
		Blockers:    blockers(t.Blockers()),
		Comments:    comments(t.Comments()),
		History:     history(t.History()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func fileRefs(files []task.FileRef) []FileRefDTO {
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

func blockers(list []task.Blocker) []BlockerDTO {
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

func comments(list []task.Comment) []CommentDTO {
	if len(list) == 0 {
		return nil
	}
	out := make([]CommentDTO, len(list))
	for i, c := range list {
		var mentions []MentionDTO
		for _, m := range c.Mentions {
			mentions = append(mentions, MentionDTO{UserID: m.UserID, Token: m.Token})
		}
		out[i] = CommentDTO{
			ID:         c.ID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
			Text:       c.Text,
			Mentions:   mentions,
			CreatedAt:  c.CreatedAt,
		}
	}
	return out
}

func history(list []task.HistoryEntry) []HistoryEntryDTO {
	if len(list) == 0 {
		return nil
	}
	out := make([]HistoryEntryDTO, len(list))
	for i, h := range list {
		out[i] = HistoryEntryDTO{
			Type:    h.Type,
			ActorID: h.ActorID,
			From:    h.From,
			To:      h.To,
			Detail:  h.Detail,
			Date:    h.Date,
		}
	}
	return out
}
