package models

type TicketModel struct {
	ID              uint    `gorm:"primaryKey"`
	Number          string  `gorm:"uniqueIndex;size:60;not null"`
	Title           string  `gorm:"size:200;not null"`
	Application     string  `gorm:"size:100;not null"`
	Environment     string  `gorm:"size:100;not null"`
	RequestType     string  `gorm:"size:100;not null"`
	Urgency         string  `gorm:"size:20;not null;index"`
	Description     string  `gorm:"type:text;not null"`
	Status          string  `gorm:"size:30;not null;index"`
	FinancialStatus string  `gorm:"size:30;not null;index"`
	EstimatedHours  float64 `gorm:"not null;default:0"`
	ActualHours     float64 `gorm:"not null;default:0"`

	ClientID            uint  `gorm:"not null;index"`
	ResponsibleClientID *uint `gorm:"index"`
	AgentCommercialID   *uint `gorm:"index"`
	ProjectManagerID    *uint `gorm:"index"`
	GroupLeaderID       *uint `gorm:"index"`
	ResponsibleTesterID *uint `gorm:"index"`

	Attachments   string `gorm:"type:json"`
	Links         string `gorm:"type:json"`
	Contacts      string `gorm:"type:json"`
	Meetings      string `gorm:"type:json"`
	Interventions string `gorm:"type:json"`
	Blockers      string `gorm:"type:json"`
	Transfers     string `gorm:"type:json"`

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketCommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	CommentID  uint   `gorm:"not null"`
	AuthorID   uint   `gorm:"not null;index"`
	AuthorName string `gorm:"size:200;not null"`
	Text       string `gorm:"type:text"`
	Files      string `gorm:"type:json"`
	Mentions   string `gorm:"type:json"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketCommentModel) TableName() string {
	return "ticket_comments"
}

type TicketActivityModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	ActivityType string `gorm:"size:50;not null"`
	ActorID      uint   `gorm:"not null;index"`
	FromValue    string `gorm:"size:100"`
	ToValue      string `gorm:"size:100"`
	Detail       string `gorm:"type:text"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketActivityModel) TableName() string {
	return "ticket_activities"
}
