package valueobjects

import "fmt"

type FinancialStatus string

const (
	FinancialToQualify           FinancialStatus = "ToQualify"
	FinancialSubscription        FinancialStatus = "Subscription"
	FinancialQuote               FinancialStatus = "Quote"
	FinancialFlexSubscription    FinancialStatus = "FlexSubscription"
	FinancialExcessHours         FinancialStatus = "ExcessHours"
	FinancialExcessInterventions FinancialStatus = "ExcessInterventions"
	FinancialExtraOn             FinancialStatus = "ExtraOn"
)

var validFinancialStatuses = map[FinancialStatus]bool{
	FinancialToQualify:           true,
	FinancialSubscription:        true,
	FinancialQuote:               true,
	FinancialFlexSubscription:    true,
	FinancialExcessHours:         true,
	FinancialExcessInterventions: true,
	FinancialExtraOn:             true,
}

func (fs FinancialStatus) String() string {
	return string(fs)
}

func (fs FinancialStatus) IsValid() bool {
	return validFinancialStatuses[fs]
}

func NewFinancialStatus(s string) (FinancialStatus, error) {
	fs := FinancialStatus(s)
	if !fs.IsValid() {
		return "", fmt.Errorf("invalid financial status: %s", s)
	}
	return fs, nil
}
