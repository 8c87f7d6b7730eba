package ticket

import (
	"fmt"
	"time"

	"deskflow/internal/domain/ticket/valueobjects"
	"deskflow/internal/shared/authorization"
)

type Ticket struct {
	id              uint
	number          string
	title           string
	application     string
	environment     string
	requestType     string
	urgency         valueobjects.Urgency
	description     string
	status          valueobjects.TicketStatus
	financialStatus valueobjects.FinancialStatus
	estimatedHours  float64
	actualHours     float64
	assignments     RoleAssignments
	attachments     []FileRef
	links           []string
	contacts        []Contact
	comments        []Comment
	activities      []Activity
	meetings        []Meeting
	interventions   []Intervention
	blockers        []Blocker
	transfers       []Transfer
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTicket creates a ticket for the given client. Draft tickets stay in
// Draft until the explicit send action; submitted tickets start in Sent.
func NewTicket(
	title, application, environment, requestType, description string,
	urgency valueobjects.Urgency,
	clientID uint,
	draft bool,
) (*Ticket, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if application == "" {
		return nil, fmt.Errorf("application is required")
	}
	if environment == "" {
		return nil, fmt.Errorf("environment is required")
	}
	if requestType == "" {
		return nil, fmt.Errorf("request type is required")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency: %s", urgency)
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	status := valueobjects.StatusSent
	if draft {
		status = valueobjects.StatusDraft
	}

	now := time.Now()
	return &Ticket{
		title:           title,
		application:     application,
		environment:     environment,
		requestType:     requestType,
		description:     description,
		urgency:         urgency,
		status:          status,
		financialStatus: valueobjects.FinancialToQualify,
		assignments:     RoleAssignments{Client: clientID},
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title, application, environment, requestType, description string,
	urgency valueobjects.Urgency,
	status valueobjects.TicketStatus,
	financialStatus valueobjects.FinancialStatus,
	estimatedHours, actualHours float64,
	assignments RoleAssignments,
	attachments []FileRef,
	links []string,
	contacts []Contact,
	comments []Comment,
	activities []Activity,
	meetings []Meeting,
	interventions []Intervention,
	blockers []Blocker,
	transfers []Transfer,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !financialStatus.IsValid() {
		return nil, fmt.Errorf("invalid financial status: %s", financialStatus)
	}
	if assignments.Client == 0 {
		return nil, fmt.Errorf("client assignment is required")
	}

	return &Ticket{
		id:              id,
		number:          number,
		title:           title,
		application:     application,
		environment:     environment,
		requestType:     requestType,
		description:     description,
		urgency:         urgency,
		status:          status,
		financialStatus: financialStatus,
		estimatedHours:  estimatedHours,
		actualHours:     actualHours,
		assignments:     assignments,
		attachments:     attachments,
		links:           links,
		contacts:        contacts,
		comments:        comments,
		activities:      activities,
		meetings:        meetings,
		interventions:   interventions,
		blockers:        blockers,
		transfers:       transfers,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                                       { return t.id }
func (t *Ticket) Number() string                                 { return t.number }
func (t *Ticket) Title() string                                  { return t.title }
func (t *Ticket) Application() string                            { return t.application }
func (t *Ticket) Environment() string                            { return t.environment }
func (t *Ticket) RequestType() string                            { return t.requestType }
func (t *Ticket) Urgency() valueobjects.Urgency                  { return t.urgency }
func (t *Ticket) Description() string                            { return t.description }
func (t *Ticket) Status() valueobjects.TicketStatus              { return t.status }
func (t *Ticket) FinancialStatus() valueobjects.FinancialStatus  { return t.financialStatus }
func (t *Ticket) EstimatedHours() float64                        { return t.estimatedHours }
func (t *Ticket) ActualHours() float64                           { return t.actualHours }
func (t *Ticket) Assignments() RoleAssignments                   { return t.assignments }
func (t *Ticket) Links() []string                                { return append([]string(nil), t.links...) }
func (t *Ticket) Contacts() []Contact                            { return append([]Contact(nil), t.contacts...) }
func (t *Ticket) Attachments() []FileRef                         { return append([]FileRef(nil), t.attachments...) }
func (t *Ticket) Comments() []Comment                            { return append([]Comment(nil), t.comments...) }
func (t *Ticket) Activities() []Activity                         { return append([]Activity(nil), t.activities...) }
func (t *Ticket) Meetings() []Meeting                            { return append([]Meeting(nil), t.meetings...) }
func (t *Ticket) Interventions() []Intervention                  { return append([]Intervention(nil), t.interventions...) }
func (t *Ticket) Blockers() []Blocker                            { return append([]Blocker(nil), t.blockers...) }
func (t *Ticket) Transfers() []Transfer                          { return append([]Transfer(nil), t.transfers...) }
func (t *Ticket) CreatedAt() time.Time                           { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time                           { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber assigns the generated ticket number. The number is immutable
// once set.
func (t *Ticket) SetNumber(number string) error {
	if t.number != "" {
		return fmt.Errorf("ticket number is already set")
	}
	if number == "" {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Ticket) recordActivity(activityType valueobjects.ActivityType, actorID uint, from, to, detail string) {
	t.activities = append(t.activities, Activity{
		Type:    activityType,
		ActorID: actorID,
		From:    from,
		To:      to,
		Detail:  detail,
		Date:    time.Now(),
	})
	t.updatedAt = time.Now()
}

// ChangeStatus moves the ticket to newStatus and appends a status_change
// activity carrying the previous value. Any valid enum value is accepted;
// the canonical flow is not enforced. Returns false when the status did
// not change.
func (t *Ticket) ChangeStatus(newStatus valueobjects.TicketStatus, changedBy uint) (bool, error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return false, nil
	}

	oldStatus := t.status
	t.status = newStatus
	t.recordActivity(valueobjects.ActivityStatusChange, changedBy, oldStatus.String(), newStatus.String(), "")
	return true, nil
}

// Send submits a draft. Only a ticket in Draft may be sent.
func (t *Ticket) Send(sentBy uint) error {
	if !t.status.IsDraft() {
		return fmt.Errorf("only a draft ticket can be sent, current status is %s", t.status)
	}
	t.status = valueobjects.StatusSent
	t.recordActivity(valueobjects.ActivityTicketSent, sentBy, valueobjects.StatusDraft.String(), valueobjects.StatusSent.String(), "")
	return nil
}

// UpdateFinancial updates the financial fields. An activity entry is logged
// only when the financial status actually changes. Returns true when it did.
func (t *Ticket) UpdateFinancial(status *valueobjects.FinancialStatus, estimatedHours, actualHours *float64, updatedBy uint) (bool, error) {
	changed := false
	if status != nil {
		if !status.IsValid() {
			return false, fmt.Errorf("invalid financial status: %s", *status)
		}
		if t.financialStatus != *status {
			old := t.financialStatus
			t.financialStatus = *status
			t.recordActivity(valueobjects.ActivityFinancialUpdated, updatedBy, old.String(), status.String(), "")
			changed = true
		}
	}
	if estimatedHours != nil {
		t.estimatedHours = *estimatedHours
		t.updatedAt = time.Now()
	}
	if actualHours != nil {
		t.actualHours = *actualHours
		t.updatedAt = time.Now()
	}
	return changed, nil
}

// AddComment appends the comment and a comment_added activity carrying the
// file metadata.
func (t *Ticket) AddComment(comment Comment) error {
	if comment.Text == "" && len(comment.Files) == 0 {
		return fmt.Errorf("comment text or files are required")
	}
	if comment.AuthorID == 0 {
		return fmt.Errorf("comment author is required")
	}

	comment.ID = uint(len(t.comments) + 1)
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	t.comments = append(t.comments, comment)

	detail := ""
	for i, f := range comment.Files {
		if i > 0 {
			detail += ", "
		}
		detail += f.Name
	}
	t.recordActivity(valueobjects.ActivityCommentAdded, comment.AuthorID, "", "", detail)
	return nil
}

func (t *Ticket) AddAttachment(file FileRef) {
	t.attachments = append(t.attachments, file)
	t.updatedAt = time.Now()
}

func (t *Ticket) AddLink(link string) {
	if link == "" {
		return
	}
	t.links = append(t.links, link)
	t.updatedAt = time.Now()
}

func (t *Ticket) AddContact(contact Contact) {
	if contact.Name == "" && contact.Email == "" {
		return
	}
	t.contacts = append(t.contacts, contact)
	t.updatedAt = time.Now()
}

func (t *Ticket) AddMeeting(meeting Meeting) error {
	if meeting.Subject == "" {
		return fmt.Errorf("meeting subject is required")
	}
	if meeting.ScheduledAt.IsZero() {
		return fmt.Errorf("meeting schedule is required")
	}
	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = time.Now()
	}
	t.meetings = append(t.meetings, meeting)
	t.recordActivity(valueobjects.ActivityMeetingScheduled, meeting.CreatedBy, "", "", meeting.Subject)
	return nil
}

func (t *Ticket) AddIntervention(intervention Intervention) (uint, error) {
	if intervention.Description == "" {
		return 0, fmt.Errorf("intervention description is required")
	}
	if intervention.PerformedBy == 0 {
		return 0, fmt.Errorf("intervention performer is required")
	}
	if intervention.StartedAt.IsZero() {
		intervention.StartedAt = time.Now()
	}
	intervention.ID = uint(len(t.interventions) + 1)
	t.interventions = append(t.interventions, intervention)
	t.recordActivity(valueobjects.ActivityInterventionCreated, intervention.PerformedBy, "", "", intervention.Description)
	return intervention.ID, nil
}

func (t *Ticket) findIntervention(interventionID uint) (*Intervention, error) {
	for i := range t.interventions {
		if t.interventions[i].ID == interventionID {
			return &t.interventions[i], nil
		}
	}
	return nil, fmt.Errorf("intervention %d not found", interventionID)
}

// RequestValidation flags the intervention as awaiting client validation.
func (t *Ticket) RequestValidation(interventionID, requestedBy uint) error {
	iv, err := t.findIntervention(interventionID)
	if err != nil {
		return err
	}
	if iv.ValidationRequested {
		return fmt.Errorf("validation already requested for intervention %d", interventionID)
	}
	iv.ValidationRequested = true
	t.recordActivity(valueobjects.ActivityInterventionStarted, requestedBy, "", "", iv.Description)
	return nil
}

// ValidateIntervention records the validation outcome on the intervention
// and moves the ticket to ClientValidation (accepted) or Revision
// (rejected).
func (t *Ticket) ValidateIntervention(interventionID uint, accepted bool, validatedBy uint, note string) error {
	iv, err := t.findIntervention(interventionID)
	if err != nil {
		return err
	}
	if iv.Validated != nil {
		return fmt.Errorf("intervention %d is already validated", interventionID)
	}

	now := time.Now()
	iv.Validated = &accepted
	iv.ValidatedAt = &now
	iv.ValidatedBy = &validatedBy

	oldStatus := t.status
	if accepted {
		t.status = valueobjects.StatusClientValidation
		t.recordActivity(valueobjects.ActivityInterventionValidated, validatedBy, oldStatus.String(), t.status.String(), iv.Description)
	} else {
		iv.RejectionNote = note
		t.status = valueobjects.StatusRevision
		t.recordActivity(valueobjects.ActivityInterventionRejected, validatedBy, oldStatus.String(), t.status.String(), note)
	}
	return nil
}

// AddBlocker records an impediment. interventionID zero targets the ticket
// itself; non-zero targets the intervention's own blocker list.
func (t *Ticket) AddBlocker(interventionID uint, blocker Blocker) error {
	if blocker.Reason == "" {
		return fmt.Errorf("blocker reason is required")
	}
	if blocker.CreatedAt.IsZero() {
		blocker.CreatedAt = time.Now()
	}

	if interventionID == 0 {
		t.blockers = append(t.blockers, blocker)
	} else {
		iv, err := t.findIntervention(interventionID)
		if err != nil {
			return err
		}
		iv.Blockers = append(iv.Blockers, blocker)
	}
	t.recordActivity(valueobjects.ActivityBlockerAdded, blocker.CreatedBy, "", "", blocker.Reason)
	return nil
}

// ResolveBlocker resolves the blocker at the given index on the ticket
// (interventionID zero) or on an intervention.
func (t *Ticket) ResolveBlocker(interventionID uint, index int, resolution string, resolvedBy uint) error {
	var list []Blocker
	if interventionID == 0 {
		list = t.blockers
	} else {
		iv, err := t.findIntervention(interventionID)
		if err != nil {
			return err
		}
		list = iv.Blockers
	}

	if index < 0 || index >= len(list) {
		return fmt.Errorf("blocker %d not found", index)
	}
	if list[index].Resolved {
		return fmt.Errorf("blocker %d is already resolved", index)
	}

	now := time.Now()
	list[index].Resolved = true
	list[index].Resolution = resolution
	list[index].ResolvedBy = &resolvedBy
	list[index].ResolvedAt = &now

	t.recordActivity(valueobjects.ActivityBlockerResolved, resolvedBy, "", "", list[index].Reason)
	return nil
}

// SlotAssignment is a requested role-slot change passed to AssignRoles.
type SlotAssignment struct {
	Slot   authorization.TicketRoleSlot
	UserID uint
}

// AssignRoles applies the requested assignments, skipping any slot the
// caller's role may not set. It returns the user ids that were newly
// assigned (diff against the previous values). An Expired ticket
// transitions back to Sent as a side effect of any applied assignment.
func (t *Ticket) AssignRoles(callerRole authorization.UserRole, requests []SlotAssignment, assignedBy uint) []uint {
	var newlyAssigned []uint
	applied := false

	for _, req := range requests {
		if !authorization.CanAssignSlot(callerRole, req.Slot) {
			continue
		}

		var slot **uint
		switch req.Slot {
		case authorization.SlotResponsibleClient:
			slot = &t.assignments.ResponsibleClient
		case authorization.SlotAgentCommercial:
			slot = &t.assignments.AgentCommercial
		case authorization.SlotProjectManager:
			slot = &t.assignments.ProjectManager
		case authorization.SlotGroupLeader:
			slot = &t.assignments.GroupLeader
		case authorization.SlotResponsibleTester:
			slot = &t.assignments.ResponsibleTester
		default:
			continue
		}

		previous := *slot
		if previous != nil && *previous == req.UserID {
			continue
		}

		id := req.UserID
		*slot = &id
		newlyAssigned = append(newlyAssigned, id)
		applied = true
	}

	if applied {
		if t.status.IsExpired() {
			t.status = valueobjects.StatusSent
			t.recordActivity(valueobjects.ActivityStatusChange, assignedBy,
				valueobjects.StatusExpired.String(), valueobjects.StatusSent.String(), "reactivated by assignment")
		}
		t.recordActivity(valueobjects.ActivityAssignmentUpdated, assignedBy, "", "", "")
	}

	return newlyAssigned
}

// Transfer hands the ticket off and parks it in the Transferred status.
func (t *Ticket) Transfer(target, reason string, transferredBy uint) error {
	if target == "" {
		return fmt.Errorf("transfer target is required")
	}

	oldStatus := t.status
	t.transfers = append(t.transfers, Transfer{
		Target:        target,
		Reason:        reason,
		TransferredBy: transferredBy,
		TransferredAt: time.Now(),
	})
	t.status = valueobjects.StatusTransferred
	t.recordActivity(valueobjects.ActivityTicketTransferred, transferredBy, oldStatus.String(), t.status.String(), target)
	return nil
}

// CanBeViewedBy reports whether the user may read the ticket: admins always,
// everyone else only through a relationship slot.
func (t *Ticket) CanBeViewedBy(userID uint, role authorization.UserRole) bool {
	if role.IsAdmin() {
		return true
	}
	return t.assignments.Holds(userID)
}
