package models

type TaskModel struct {
	ID             uint    `gorm:"primaryKey"`
	Number         string  `gorm:"uniqueIndex;size:60;not null"`
	Name           string  `gorm:"size:200;not null"`
	Description    string  `gorm:"type:text"`
	AssigneeIDs    string  `gorm:"type:json"`
	CreatorID      uint    `gorm:"not null;index"`
	Urgency        string  `gorm:"size:20;not null;index"`
	Priority       int     `gorm:"not null;default:3"`
	Status         string  `gorm:"size:30;not null;index"`
	DueDate        *int64  `gorm:"index"`
	StartDate      *int64
	CompletionDate *int64
	EstimatedHours float64 `gorm:"not null;default:0"`
	ActualHours    float64 `gorm:"not null;default:0"`
	Attachments    string  `gorm:"type:json"`
	Blockers       string  `gorm:"type:json"`
	Comments       string  `gorm:"type:json"`
	ParentID       *uint   `gorm:"index"`
	SubtaskIDs     string  `gorm:"type:json"`
	History        string  `gorm:"type:json"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

type TestTaskModel struct {
	ID          uint   `gorm:"primaryKey"`
	Number      string `gorm:"uniqueIndex;size:60;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	AssigneeIDs string `gorm:"type:json"`
	CreatorID   uint   `gorm:"not null;index"`
	Urgency     string `gorm:"size:20;not null;index"`
	Priority    int    `gorm:"not null;default:3"`
	Status      string `gorm:"size:30;not null;index"`
	DueDate     *int64 `gorm:"index"`
	Attachments string `gorm:"type:json"`
	Blockers    string `gorm:"type:json"`
	Comments    string `gorm:"type:json"`
	History     string `gorm:"type:json"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TestTaskModel) TableName() string {
	return "test_tasks"
}
