package ticket

import (
	"time"

	vo "deskflow/internal/domain/ticket/valueobjects"
)

// FileRef points at a stored attachment. Path is relative to the upload
// root; the file may have been removed from disk independently of the
// metadata.
type FileRef struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	UploadedBy uint      `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Contact is a person attached to the ticket on the client side. Email may
// or may not correspond to a registered user.
type Contact struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Availability string `json:"availability,omitempty"`
}

// Mention records a resolved @mention inside a comment.
type Mention struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
}

// Comment is an authored note on the ticket, optionally carrying files and
// mentions. AuthorName is denormalized so the comment survives author
// renames.
type Comment struct {
	ID         uint      `json:"id"`
	AuthorID   uint      `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Files      []FileRef `json:"files,omitempty"`
	Mentions   []Mention `json:"mentions,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Activity is an append-only log entry. From/To are only set for
// status_change entries.
type Activity struct {
	ID      uint            `json:"id"`
	Type    vo.ActivityType `json:"type"`
	ActorID uint            `json:"actor_id"`
	From    string          `json:"from,omitempty"`
	To      string          `json:"to,omitempty"`
	Detail  string          `json:"detail,omitempty"`
	Date    time.Time       `json:"date"`
}

// Meeting is a scheduled session between the ticket participants.
type Meeting struct {
	Subject     string    `json:"subject"`
	ScheduledAt time.Time `json:"scheduled_at"`
	DurationMin int       `json:"duration_min"`
	Location    string    `json:"location,omitempty"`
	CreatedBy   uint      `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Blocker records an impediment. Resolving it keeps the record with the
// resolution details filled in.
type Blocker struct {
	Reason     string     `json:"reason"`
	CreatedBy  uint       `json:"created_by"`
	CreatedAt  time.Time  `json:"created_at"`
	Resolved   bool       `json:"resolved"`
	Resolution string     `json:"resolution,omitempty"`
	ResolvedBy *uint      `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// Intervention is a unit of work performed against the ticket, carrying its
// own blockers and validation state.
type Intervention struct {
	ID                  uint       `json:"id"`
	Description         string     `json:"description"`
	PerformedBy         uint       `json:"performed_by"`
	StartedAt           time.Time  `json:"started_at"`
	Hours               float64    `json:"hours"`
	Blockers            []Blocker  `json:"blockers,omitempty"`
	ValidationRequested bool       `json:"validation_requested"`
	Validated           *bool      `json:"validated,omitempty"`
	ValidatedAt         *time.Time `json:"validated_at,omitempty"`
	ValidatedBy         *uint      `json:"validated_by,omitempty"`
	RejectionNote       string     `json:"rejection_note,omitempty"`
}

// Transfer records a hand-off of the ticket to another team or system.
type Transfer struct {
	Target        string    `json:"target"`
	Reason        string    `json:"reason,omitempty"`
	TransferredBy uint      `json:"transferred_by"`
	TransferredAt time.Time `json:"transferred_at"`
}

// RoleAssignments holds the relationship fields linking users to the
// ticket. Client is the only mandatory slot.
type RoleAssignments struct {
	Client            uint  `json:"client"`
	ResponsibleClient *uint `json:"responsible_client,omitempty"`
	AgentCommercial   *uint `json:"agent_commercial,omitempty"`
	ProjectManager    *uint `json:"project_manager,omitempty"`
	GroupLeader       *uint `json:"group_leader,omitempty"`
	ResponsibleTester *uint `json:"responsible_tester,omitempty"`
}

// RelatedUserIDs returns the distinct user ids holding any relationship to
// the ticket.
func (ra RoleAssignments) RelatedUserIDs() []uint {
	seen := map[uint]bool{}
	var ids []uint
	add := func(id uint) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	add(ra.Client)
	for _, p := range []*uint{ra.ResponsibleClient, ra.AgentCommercial, ra.ProjectManager, ra.GroupLeader, ra.ResponsibleTester} {
		if p != nil {
			add(*p)
		}
	}
	return ids
}

// Holds reports whether the user occupies any relationship slot.
func (ra RoleAssignments) Holds(userID uint) bool {
	for _, id := range ra.RelatedUserIDs() {
		if id == userID {
			return true
		}
	}
	return false
}
