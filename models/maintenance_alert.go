package models

import (
	"time"
)

// StatusPending is the initial status for maintenance alerts and
// checklist items. Alert type and status are otherwise free-form strings
// supplied by the client and stored verbatim.
const StatusPending = "pending"

type MaintenanceAlert struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BikeID           uint      `json:"bikeId" gorm:"not null;index"`
	Type             string    `json:"type" gorm:"not null;size:100"`
	ThresholdValue   float64   `json:"thresholdValue"`
	Status           string    `json:"status" gorm:"size:50;default:'pending'"`
	AlertTriggeredAt time.Time `json:"alertTriggeredAt"`
	CreatedAt        time.Time `json:"createdAt"`
}
