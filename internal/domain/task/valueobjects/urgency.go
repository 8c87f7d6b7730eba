package valueobjects

import "fmt"

type Urgency string

const (
	UrgencyCritical Urgency = "Critical"
	UrgencyHigh     Urgency = "High"
	UrgencyMedium   Urgency = "Medium"
	UrgencyLow      Urgency = "Low"
)

var validUrgencies = map[Urgency]bool{
	UrgencyCritical: true,
	UrgencyHigh:     true,
	UrgencyMedium:   true,
	UrgencyLow:      true,
}

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	return validUrgencies[u]
}

func NewUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency: %s", s)
	}
	return u, nil
}

// Priority is the 1 (highest) to 5 (lowest) numeric ranking carried next
// to the urgency label.
type Priority int

func (p Priority) IsValid() bool {
	return p >= 1 && p <= 5
}

func (p Priority) Int() int {
	return int(p)
}

func NewPriority(n int) (Priority, error) {
	p := Priority(n)
	if !p.IsValid() {
		return 0, fmt.Errorf("priority must be between 1 and 5, got %d", n)
	}
	return p, nil
}
