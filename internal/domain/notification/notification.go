package notification

import (
	"fmt"
	"time"
)

// RelatedModel names the entity kind a notification points back at.
type RelatedModel string

const (
	ModelTicket   RelatedModel = "Ticket"
	ModelTask     RelatedModel = "Task"
	ModelTestTask RelatedModel = "TestTask"
	ModelCompany  RelatedModel = "Company"
)

// Notification is a per-user record created by the notification service.
// It is never deleted, only marked read.
type Notification struct {
	id           uint
	userID       uint
	message      string
	relatedID    *uint
	relatedModel RelatedModel
	read         bool
	createdAt    time.Time
}

func NewNotification(userID uint, message string, relatedID *uint, relatedModel RelatedModel) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if relatedID == nil {
		relatedModel = ""
	}

	return &Notification{
		userID:       userID,
		message:      message,
		relatedID:    relatedID,
		relatedModel: relatedModel,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructNotification(
	id, userID uint,
	message string,
	relatedID *uint,
	relatedModel RelatedModel,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Notification{
		id:           id,
		userID:       userID,
		message:      message,
		relatedID:    relatedID,
		relatedModel: relatedModel,
		read:         read,
		createdAt:    createdAt,
	}, nil
}

func (n *Notification) ID() uint                   { return n.id }
func (n *Notification) UserID() uint               { return n.userID }
func (n *Notification) Message() string            { return n.message }
func (n *Notification) RelatedID() *uint           { return n.relatedID }
func (n *Notification) RelatedModel() RelatedModel { return n.relatedModel }
func (n *Notification) IsRead() bool               { return n.read }
func (n *Notification) CreatedAt() time.Time       { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkRead() {
	n.read = true
}
