package task

import (
	"fmt"
	"time"

	vo "deskflow/internal/domain/task/valueobjects"
)

// TestTask is the validation-side counterpart of Task, tracked with its
// own smaller status enum.
type TestTask struct {
	id          uint
	number      string
	title       string
	description string
	assigneeIDs []uint
	creatorID   uint
	urgency     vo.Urgency
	priority    vo.Priority
	status      vo.TestTaskStatus
	dueDate     *time.Time
	attachments []FileRef
	blockers    []Blocker
	comments    []Comment
	history     []HistoryEntry
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTestTask(
	title, description string,
	urgency vo.Urgency,
	priority vo.Priority,
	creatorID uint,
) (*TestTask, error) {
	if title == "" {
		return nil, fmt.Errorf("test task title is required")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency: %s", urgency)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("priority must be between 1 and 5")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	t := &TestTask{
		title:       title,
		description: description,
		urgency:     urgency,
		priority:    priority,
		status:      vo.TestPending,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}
	t.recordHistory(HistoryCreated, creatorID, "", "", "")
	return t, nil
}

func ReconstructTestTask(
	id uint,
	number, title, description string,
	assigneeIDs []uint,
	creatorID uint,
	urgency vo.Urgency,
	priority vo.Priority,
	status vo.TestTaskStatus,
	dueDate *time.Time,
	attachments []FileRef,
	blockers []Blocker,
	comments []Comment,
	history []HistoryEntry,
	createdAt, updatedAt time.Time,
) (*TestTask, error) {
	if id == 0 {
		return nil, fmt.Errorf("test task ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("test task number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid test task status: %s", status)
	}

	return &TestTask{
		id:          id,
		number:      number,
		title:       title,
		description: description,
		assigneeIDs: assigneeIDs,
		creatorID:   creatorID,
		urgency:     urgency,
		priority:    priority,
		status:      status,
		dueDate:     dueDate,
		attachments: attachments,
		blockers:    blockers,
		comments:    comments,
		history:     history,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *TestTask) ID() uint                 { return t.id }
func (t *TestTask) Number() string           { return t.number }
func (t *TestTask) Title() string            { return t.title }
func (t *TestTask) Description() string      { return t.description }
func (t *TestTask) AssigneeIDs() []uint      { return append([]uint(nil), t.assigneeIDs...) }
func (t *TestTask) CreatorID() uint          { return t.creatorID }
func (t *TestTask) Urgency() vo.Urgency      { return t.urgency }
func (t *TestTask) Priority() vo.Priority    { return t.priority }
func (t *TestTask) Status() vo.TestTaskStatus { return t.status }
func (t *TestTask) DueDate() *time.Time      { return t.dueDate }
func (t *TestTask) Attachments() []FileRef   { return append([]FileRef(nil), t.attachments...) }
func (t *TestTask) Blockers() []Blocker      { return append([]Blocker(nil), t.blockers...) }
func (t *TestTask) Comments() []Comment      { return append([]Comment(nil), t.comments...) }
func (t *TestTask) History() []HistoryEntry  { return append([]HistoryEntry(nil), t.history...) }
func (t *TestTask) CreatedAt() time.Time     { return t.createdAt }
func (t *TestTask) UpdatedAt() time.Time     { return t.updatedAt }

func (t *TestTask) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("test task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("test task ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *TestTask) SetNumber(number string) error {
	if t.number != "" {
		return fmt.Errorf("test task number is already set")
	}
	if number == "" {
		return fmt.Errorf("test task number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *TestTask) recordHistory(entryType string, actorID uint, from, to, detail string) {
	t.history = append(t.history, HistoryEntry{
		Type:    entryType,
		ActorID: actorID,
		From:    from,
		To:      to,
		Detail:  detail,
		Date:    time.Now(),
	})
	t.updatedAt = time.Now()
}

func (t *TestTask) ChangeStatus(newStatus vo.TestTaskStatus, changedBy uint) (bool, error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid test task status: %s", newStatus)
	}
	if t.status == newStatus {
		return false, nil
	}

	old := t.status
	t.status = newStatus
	t.recordHistory(HistoryStatusChange, changedBy, old.String(), newStatus.String(), "")
	return true, nil
}

// Assign replaces the tester list. The use case guarantees every assignee
// holds the tester role.
func (t *TestTask) Assign(assigneeIDs []uint, assignedBy uint) {
	t.assigneeIDs = assigneeIDs
	t.recordHistory(HistoryAssigned, assignedBy, "", "", "")
}

func (t *TestTask) AddComment(comment Comment) error {
	if comment.Text == "" {
		return fmt.Errorf("comment text is required")
	}
	if comment.AuthorID == 0 {
		return fmt.Errorf("comment author is required")
	}

	comment.ID = uint(len(t.comments) + 1)
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	t.comments = append(t.comments, comment)
	t.recordHistory(HistoryCommentAdded, comment.AuthorID, "", "", "")
	return nil
}

// ReportBlocker records the impediment and always forces the blocked
// status.
func (t *TestTask) ReportBlocker(blocker Blocker) error {
	if blocker.Reason == "" {
		return fmt.Errorf("blocker reason is required")
	}
	if blocker.CreatedAt.IsZero() {
		blocker.CreatedAt = time.Now()
	}

	t.blockers = append(t.blockers, blocker)
	old := t.status
	t.status = vo.TestBlocked
	t.recordHistory(HistoryBlocked, blocker.CreatedBy, old.String(), vo.TestBlocked.String(), blocker.Reason)
	return nil
}

func (t *TestTask) ResolveBlocker(index int, resolution string, resolvedBy uint) error {
	if index < 0 || index >= len(t.blockers) {
		return fmt.Errorf("blocker %d not found", index)
	}
	if t.blockers[index].Resolved {
		return fmt.Errorf("blocker %d is already resolved", index)
	}

	now := time.Now()
	t.blockers[index].Resolved = true
	t.blockers[index].Resolution = resolution
	t.blockers[index].ResolvedBy = &resolvedBy
	t.blockers[index].ResolvedAt = &now
	t.recordHistory(HistoryUnblocked, resolvedBy, "", "", t.blockers[index].Reason)
	return nil
}

func (t *TestTask) AddAttachment(file FileRef) {
	t.attachments = append(t.attachments, file)
	t.updatedAt = time.Now()
}
