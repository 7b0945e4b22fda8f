package models

import (
	"time"
)

type UsageRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	BikeID      uint      `json:"bikeId" gorm:"not null;index"`
	KmTravelled float64   `json:"kmTravelled" gorm:"not null"`
	RecordedAt  time.Time `json:"recordedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
