package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"pedaltrack-api/models"
	"pedaltrack-api/utils"
)

type UsageRecordController struct {
	db *gorm.DB
}

func NewUsageRecordController(db *gorm.DB) *UsageRecordController {
	return &UsageRecordController{db: db}
}

type CreateUsageRecordRequest struct {
	BikeID      uint    `json:"bikeId" binding:"required"`
	KmTravelled float64 `json:"kmTravelled"`
}

func (uc *UsageRecordController) CreateUsageRecord(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateUsageRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := findOwnedBike(uc.db, req.BikeID, userID); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Bike not found")
		return
	}

	record := models.UsageRecord{
		BikeID:      req.BikeID,
		KmTravelled: req.KmTravelled,
		RecordedAt:  time.Now().UTC(),
	}

	if err := uc.db.Create(&record).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create usage record")
		return
	}

	c.JSON(http.StatusCreated, record)
}
