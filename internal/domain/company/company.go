package company

import (
	"fmt"
	"time"
)

type BillingMethod string

const (
	BillingHourly       BillingMethod = "hourly"
	BillingPerTask      BillingMethod = "perTask"
	BillingSubscription BillingMethod = "subscription"
)

func (b BillingMethod) IsValid() bool {
	return b == BillingHourly || b == BillingPerTask || b == BillingSubscription
}

// Contact is a named person reachable at the company.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// AvailabilitySlot is a weekly window during which the company accepts
// meetings or interventions.
type AvailabilitySlot struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Document is a file stored against the company. Path is relative to the
// upload root.
type Document struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Path       string    `json:"path"`
	UploadedBy uint      `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Company struct {
	id               uint
	name             string
	address          string
	primaryContact   Contact
	secondaryContact *Contact
	availability     []AvailabilitySlot
	documents        []Document
	billingMethod    BillingMethod
	agentID          uint
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCompany(name, address string, primary Contact, billing BillingMethod, agentID uint) (*Company, error) {
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if primary.Name == "" || primary.Email == "" {
		return nil, fmt.Errorf("primary contact name and email are required")
	}
	if !billing.IsValid() {
		return nil, fmt.Errorf("invalid billing method: %s", billing)
	}
	if agentID == 0 {
		return nil, fmt.Errorf("commercial agent is required")
	}

	now := time.Now()
	return &Company{
		name:           name,
		address:        address,
		primaryContact: primary,
		billingMethod:  billing,
		agentID:        agentID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructCompany(
	id uint,
	name, address string,
	primary Contact,
	secondary *Contact,
	availability []AvailabilitySlot,
	documents []Document,
	billing BillingMethod,
	agentID uint,
	createdAt, updatedAt time.Time,
) (*Company, error) {
	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if !billing.IsValid() {
		return nil, fmt.Errorf("invalid billing method: %s", billing)
	}

	return &Company{
		id:               id,
		name:             name,
		address:          address,
		primaryContact:   primary,
		secondaryContact: secondary,
		availability:     availability,
		documents:        documents,
		billingMethod:    billing,
		agentID:          agentID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Company) ID() uint                         { return c.id }
func (c *Company) Name() string                     { return c.name }
func (c *Company) Address() string                  { return c.address }
func (c *Company) PrimaryContact() Contact          { return c.primaryContact }
func (c *Company) SecondaryContact() *Contact       { return c.secondaryContact }
func (c *Company) Availability() []AvailabilitySlot { return append([]AvailabilitySlot(nil), c.availability...) }
func (c *Company) Documents() []Document            { return append([]Document(nil), c.documents...) }
func (c *Company) BillingMethod() BillingMethod     { return c.billingMethod }
func (c *Company) AgentID() uint                    { return c.agentID }
func (c *Company) CreatedAt() time.Time             { return c.createdAt }
func (c *Company) UpdatedAt() time.Time             { return c.updatedAt }

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Company) SetSecondaryContact(contact Contact) {
	c.secondaryContact = &contact
	c.updatedAt = time.Now()
}

func (c *Company) SetAvailability(slots []AvailabilitySlot) {
	c.availability = slots
	c.updatedAt = time.Now()
}

func (c *Company) AddDocument(doc Document) error {
	if doc.Name == "" || doc.Path == "" {
		return fmt.Errorf("document name and path are required")
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}
	c.documents = append(c.documents, doc)
	c.updatedAt = time.Now()
	return nil
}

func (c *Company) RemoveDocument(path string) error {
	for i, d := range c.documents {
		if d.Path == path {
			c.documents = append(c.documents[:i], c.documents[i+1:]...)
			c.updatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("document %s not found", path)
}

func (c *Company) ChangeBillingMethod(billing BillingMethod) error {
	if !billing.IsValid() {
		return fmt.Errorf("invalid billing method: %s", billing)
	}
	c.billingMethod = billing
	c.updatedAt = time.Now()
	return nil
}
