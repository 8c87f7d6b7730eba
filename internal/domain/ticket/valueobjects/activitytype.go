package valueobjects

type ActivityType string

const (
	ActivityStatusChange          ActivityType = "status_change"
	ActivityCommentAdded          ActivityType = "comment_added"
	ActivityMeetingScheduled      ActivityType = "meeting_scheduled"
	ActivityInterventionCreated   ActivityType = "intervention_created"
	ActivityInterventionStarted   ActivityType = "intervention_started"
	ActivityInterventionValidated ActivityType = "intervention_validated"
	ActivityInterventionRejected  ActivityType = "intervention_rejected"
	ActivityBlockerAdded          ActivityType = "blocker_added"
	ActivityBlockerResolved       ActivityType = "blocker_resolved"
	ActivityAssignmentUpdated     ActivityType = "assignment_updated"
	ActivityFinancialUpdated      ActivityType = "financial_updated"
	ActivityTicketTransferred     ActivityType = "ticket_transferred"
	ActivityTicketSent            ActivityType = "ticket_sent"
)

func (a ActivityType) String() string {
	return string(a)
}
