package models

import (
	"time"
)

type MaintenanceChecklistItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BikeID    uint      `json:"bikeId" gorm:"not null;index"`
	Item      string    `json:"item" gorm:"not null;size:255"`
	Status    string    `json:"status" gorm:"size:50;default:'pending'"`
	CreatedAt time.Time `json:"createdAt"`
}

func (MaintenanceChecklistItem) TableName() string {
	return "maintenance_checklist"
}
