package task

import "time"

// FileRef points at a stored attachment, path relative to the upload root.
type FileRef struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	UploadedBy uint      `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Mention records a resolved @mention inside a task comment.
type Mention struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
}

type Comment struct {
	ID         uint      `json:"id"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Mentions   []Mention `json:"mentions,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Blocker records an impediment on a task. Adding one forces the task into
// the blocked status; resolving it does not restore the prior status.
type Blocker struct {
	Reason     string     `json:"reason"`
	CreatedBy  uint       `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	Resolved   bool       `json:"resolved"`
	Resolution string     `json:"resolution,omitempty"`
	ResolvedBy *uint      `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// HistoryEntry is an append-only log record mirroring the ticket activity
// log.
type HistoryEntry struct {
	Type    string    `json:"type"`
	ActorID uint      `json:"actor_id"`
	From    string    `json:"from,omitempty"`
	To      string    `json:"to,omitempty"`
	Detail  string    `json:"detail,omitempty"`
	Date    time.Time `json:"date"`
}

const (
	HistoryCreated       = "created"
	HistoryStatusChange  = "status_change"
	HistoryCommentAdded  = "comment_added"
	HistoryBlocked       = "blocked"
	HistoryUnblocked     = "unblocked"
	HistoryAssigned      = "assigned"
	HistorySubtaskLinked = "subtask_linked"
)
