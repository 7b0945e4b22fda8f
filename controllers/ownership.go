package controllers

import (
	"gorm.io/gorm"
	"pedaltrack-api/models"
)

// findOwnedBike resolves a bike by id and owner in a single lookup. A bike
// that belongs to someone else is indistinguishable from one that does not
// exist, so callers never learn about other users' bikes. Every bike-scoped
// write goes through this check.
func findOwnedBike(db *gorm.DB, bikeID, userID uint) (*models.Bike, error) {
	var bike models.Bike
	if err := db.First(&bike, "id = ? AND user_id = ?", bikeID, userID).Error; err != nil {
		return nil, err
	}
	return &bike, nil
}
