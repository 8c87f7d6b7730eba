package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusDraft               TicketStatus = "Draft"
	StatusRegistered          TicketStatus = "Registered"
	StatusSent                TicketStatus = "Sent"
	StatusInProgress          TicketStatus = "InProgress"
	StatusTechnicalValidation TicketStatus = "TechnicalValidation"
	StatusRevision            TicketStatus = "Revision"
	StatusClientValidation    TicketStatus = "ClientValidation"
	StatusValidated           TicketStatus = "Validated"
	StatusClosed              TicketStatus = "Closed"
	StatusTransferred         TicketStatus = "Transferred"
	StatusExpired             TicketStatus = "Expired"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusDraft:               true,
	StatusRegistered:          true,
	StatusSent:                true,
	StatusInProgress:          true,
	StatusTechnicalValidation: true,
	StatusRevision:            true,
	StatusClientValidation:    true,
	StatusValidated:           true,
	StatusClosed:              true,
	StatusTransferred:         true,
	StatusExpired:             true,
}

// ticketStatusFlow describes the canonical lifecycle. UpdateStatus does not
// enforce adjacency; any valid enum value is accepted. The map documents
// the expected flow and backs IsCanonicalTransition for reporting.
var ticketStatusFlow = map[TicketStatus][]TicketStatus{
	StatusDraft:               {StatusSent, StatusTransferred, StatusExpired},
	StatusRegistered:          {StatusSent, StatusTransferred, StatusExpired},
	StatusSent:                {StatusInProgress, StatusTransferred, StatusExpired},
	StatusInProgress:          {StatusTechnicalValidation, StatusRevision, StatusTransferred, StatusExpired},
	StatusTechnicalValidation: {StatusClientValidation, StatusRevision, StatusTransferred, StatusExpired},
	StatusRevision:            {StatusInProgress, StatusTransferred, StatusExpired},
	StatusClientValidation:    {StatusValidated, StatusRevision, StatusTransferred, StatusExpired},
	StatusValidated:           {StatusClosed, StatusTransferred, StatusExpired},
	StatusClosed:              {},
	StatusTransferred:         {},
	StatusExpired:             {StatusSent},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusClosed || ts == StatusTransferred
}

func (ts TicketStatus) IsDraft() bool {
	return ts == StatusDraft
}

func (ts TicketStatus) IsExpired() bool {
	return ts == StatusExpired
}

// IsCanonicalTransition reports whether moving to newStatus follows the
// documented lifecycle. Informational only.
func (ts TicketStatus) IsCanonicalTransition(newStatus TicketStatus) bool {
	for _, next := range ticketStatusFlow[ts] {
		if next == newStatus {
			return true
		}
	}
	return false
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
