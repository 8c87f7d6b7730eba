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
