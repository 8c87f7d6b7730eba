package models

type CompanyModel struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"uniqueIndex;size:200;not null"`
	Address          string `gorm:"size:500"`
	PrimaryContact   string `gorm:"type:json;not null"`
	SecondaryContact string `gorm:"type:json"`
	Availability     string `gorm:"type:json"`
	Documents        string `gorm:"type:json"`
	BillingMethod    string `gorm:"size:20;not null"`
	AgentID          uint   `gorm:"not null;index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CompanyModel) TableName() string {
	return "companies"
}
