package models

import (
	"time"

	"gorm.io/gorm"
)

type Bike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Brand     string    `json:"brand" gorm:"not null;size:100"`
	Model     string    `json:"model" gorm:"not null;size:100"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	UsageRecords         []UsageRecord              `json:"usageRecords" gorm:"foreignKey:BikeID;constraint:OnDelete:CASCADE"`
	MaintenanceAlerts    []MaintenanceAlert         `json:"maintenanceAlerts" gorm:"foreignKey:BikeID;constraint:OnDelete:CASCADE"`
	MaintenanceChecklist []MaintenanceChecklistItem `json:"maintenanceChecklist" gorm:"foreignKey:BikeID;constraint:OnDelete:CASCADE"`
}

// AfterFind keeps child collections non-nil so they serialize as empty
// arrays rather than null.
func (b *Bike) AfterFind(*gorm.DB) error {
	if b.UsageRecords == nil {
		b.UsageRecords = []UsageRecord{}
	}
	if b.MaintenanceAlerts == nil {
		b.MaintenanceAlerts = []MaintenanceAlert{}
	}
	if b.MaintenanceChecklist == nil {
		b.MaintenanceChecklist = []MaintenanceChecklistItem{}
	}
	return nil
}
