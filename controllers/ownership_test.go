package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"pedaltrack-api/config"
	"pedaltrack-api/database"
	"pedaltrack-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Initialize(&config.Config{DBDriver: "sqlite", DatabaseURL: ":memory:"})
	require.NoError(t, err)

	// An in-memory SQLite database exists per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestFindOwnedBike(t *testing.T) {
	db := setupTestDB(t)

	owner := models.User{Name: "Ana", Email: "a@x.com", Password: "hash"}
	other := models.User{Name: "Bruno", Email: "b@x.com", Password: "hash"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&other).Error)

	bike := models.Bike{UserID: owner.ID, Brand: "Trek", Model: "Domane"}
	require.NoError(t, db.Create(&bike).Error)

	t.Run("owner finds the bike", func(t *testing.T) {
		found, err := findOwnedBike(db, bike.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, bike.ID, found.ID)
		assert.Equal(t, owner.ID, found.UserID)
	})

	t.Run("foreign bike reads as absent", func(t *testing.T) {
		_, err := findOwnedBike(db, bike.ID, other.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("unknown bike reads as absent", func(t *testing.T) {
		_, err := findOwnedBike(db, 9999, owner.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestCascadeDeleteUserRemovesBikesAndChildren(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Ana", Email: "a@x.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	bike := models.Bike{UserID: user.ID, Brand: "Trek", Model: "Domane"}
	require.NoError(t, db.Create(&bike).Error)
	require.NoError(t, db.Create(&models.UsageRecord{BikeID: bike.ID, KmTravelled: 12.5}).Error)
	require.NoError(t, db.Create(&models.MaintenanceChecklistItem{BikeID: bike.ID, Item: "chain", Status: models.StatusPending}).Error)

	require.NoError(t, db.Delete(&user).Error)

	var bikes, records, items int64
	db.Model(&models.Bike{}).Count(&bikes)
	db.Model(&models.UsageRecord{}).Count(&records)
	db.Model(&models.MaintenanceChecklistItem{}).Count(&items)

	assert.Zero(t, bikes)
	assert.Zero(t, records)
	assert.Zero(t, items)
}
