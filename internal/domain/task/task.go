package task

import (
	"fmt"
	"time"

	vo "deskflow/internal/domain/task/valueobjects"
)

type Task struct {
	id             uint
	number         string
	name           string
	description    string
	assigneeIDs    []uint
	creatorID      uint
	urgency        vo.Urgency
	priority       vo.Priority
	status         vo.TaskStatus
	dueDate        *time.Time
	startDate      *time.Time
	completionDate *time.Time
	estimatedHours float64
	actualHours    float64
	attachments    []FileRef
	blockers       []Blocker
	comments       []Comment
	parentID       *uint
	subtaskIDs     []uint
	history        []HistoryEntry
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTask(
	name, description string,
	urgency vo.Urgency,
	priority vo.Priority,
	creatorID uint,
	parentID *uint,
) (*Task, error) {
	if name == "" {
		return nil, fmt.Errorf("task name is required")
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
	t := &Task{
		name:        name,
		description: description,
		urgency:     urgency,
		priority:    priority,
		status:      vo.TaskToDo,
		creatorID:   creatorID,
		parentID:    parentID,
		createdAt:   now,
		updatedAt:   now,
	}
	t.recordHistory(HistoryCreated, creatorID, "", "", "")
	return t, nil
}

func ReconstructTask(
	id uint,
	number, name, description string,
	assigneeIDs []uint,
	creatorID uint,
	urgency vo.Urgency,
	priority vo.Priority,
	status vo.TaskStatus,
	dueDate, startDate, completionDate *time.Time,
	estimatedHours, actualHours float64,
	attachments []FileRef,
	blockers []Blocker,
	comments []Comment,
	parentID *uint,
	subtaskIDs []uint,
	history []HistoryEntry,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("task number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}

	return &Task{
		id:             id,
		number:         number,
		name:           name,
		description:    description,
		assigneeIDs:    assigneeIDs,
		creatorID:      creatorID,
		urgency:        urgency,
		priority:       priority,
		status:         status,
		dueDate:        dueDate,
		startDate:      startDate,
		completionDate: completionDate,
		estimatedHours: estimatedHours,
		actualHours:    actualHours,
		attachments:    attachments,
		blockers:       blockers,
		comments:       comments,
		parentID:       parentID,
		subtaskIDs:     subtaskIDs,
		history:        history,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Task) ID() uint                  { return t.id }
func (t *Task) Number() string            { return t.number }
func (t *Task) Name() string              { return t.name }
func (t *Task) Description() string       { return t.description }
func (t *Task) AssigneeIDs() []uint       { return append([]uint(nil), t.assigneeIDs...) }
func (t *Task) CreatorID() uint           { return t.creatorID }
func (t *Task) Urgency() vo.Urgency       { return t.urgency }
func (t *Task) Priority() vo.Priority     { return t.priority }
func (t *Task) Status() vo.TaskStatus     { return t.status }
func (t *Task) DueDate() *time.Time       { return t.dueDate }
func (t *Task) StartDate() *time.Time     { return t.startDate }
func (t *Task) CompletionDate() *time.Time { return t.completionDate }
func (t *Task) EstimatedHours() float64   { return t.estimatedHours }
func (t *Task) ActualHours() float64      { return t.actualHours }
func (t *Task) Attachments() []FileRef    { return append([]FileRef(nil), t.attachments...) }
func (t *Task) Blockers() []Blocker       { return append([]Blocker(nil), t.blockers...) }
func (t *Task) Comments() []Comment       { return append([]Comment(nil), t.comments...) }
func (t *Task) ParentID() *uint           { return t.parentID }
func (t *Task) SubtaskIDs() []uint        { return append([]uint(nil), t.subtaskIDs...) }
func (t *Task) History() []HistoryEntry   { return append([]HistoryEntry(nil), t.history...) }
func (t *Task) CreatedAt() time.Time      { return t.createdAt }
func (t *Task) UpdatedAt() time.Time      { return t.updatedAt }

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Task) SetNumber(number string) error {
	if t.number != "" {
		return fmt.Errorf("task number is already set")
	}
	if number == "" {
		return fmt.Errorf("task number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Task) recordHistory(entryType string, actorID uint, from, to, detail string) {
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

// ChangeStatus moves the task to newStatus and logs a history entry.
// Returns false when the status did not change.
func (t *Task) ChangeStatus(newStatus vo.TaskStatus, changedBy uint) (bool, error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid task status: %s", newStatus)
	}
	if t.status == newStatus {
		return false, nil
	}

	old := t.status
	t.status = newStatus

	now := time.Now()
	switch newStatus {
	case vo.TaskInProgress:
		if t.startDate == nil {
			t.startDate = &now
		}
	case vo.TaskDone:
		t.completionDate = &now
	}

	t.recordHistory(HistoryStatusChange, changedBy, old.String(), newStatus.String(), "")
	return true, nil
}

// Assign replaces the assignment list and logs a history entry. Role
// validation of the assignees happens in the use case.
func (t *Task) Assign(assigneeIDs []uint, assignedBy uint) {
	t.assigneeIDs = assigneeIDs
	t.recordHistory(HistoryAssigned, assignedBy, "", "", "")
}

func (t *Task) AddComment(comment Comment) error {
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

// ReportBlocker records the impediment and always forces the task into
// Blocked.
func (t *Task) ReportBlocker(blocker Blocker) error {
	if blocker.Reason == "" {
		return fmt.Errorf("blocker reason is required")
	}
	if blocker.CreatedAt.IsZero() {
		blocker.CreatedAt = time.Now()
	}

	t.blockers = append(t.blockers, blocker)
	old := t.status
	t.status = vo.TaskBlocked
	t.recordHistory(HistoryBlocked, blocker.CreatedBy, old.String(), vo.TaskBlocked.String(), blocker.Reason)
	return nil
}

// ResolveBlocker marks the blocker resolved. The task status is left in
// Blocked; moving it elsewhere is a separate, deliberate status change.
func (t *Task) ResolveBlocker(index int, resolution string, resolvedBy uint) error {
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

func (t *Task) AddAttachment(file FileRef) {
	t.attachments = append(t.attachments, file)
	t.updatedAt = time.Now()
}

// LinkSubtask records the child id on the parent.
func (t *Task) LinkSubtask(subtaskID, linkedBy uint) error {
	if subtaskID == 0 {
		return fmt.Errorf("subtask ID cannot be zero")
	}
	for _, id := range t.subtaskIDs {
		if id == subtaskID {
			return fmt.Errorf("subtask %d is already linked", subtaskID)
		}
	}
	t.subtaskIDs = append(t.subtaskIDs, subtaskID)
	t.recordHistory(HistorySubtaskLinked, linkedBy, "", "", fmt.Sprintf("subtask %d", subtaskID))
	return nil
}

func (t *Task) SetDueDate(due time.Time) {
	t.dueDate = &due
	t.updatedAt = time.Now()
}

func (t *Task) SetHours(estimated, actual *float64) {
	if estimated != nil {
		t.estimatedHours = *estimated
	}
	if actual != nil {
		t.actualHours = *actual
	}
	t.updatedAt = time.Now()
}
