package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"pedaltrack-api/models"
	"pedaltrack-api/utils"
)

type MaintenanceController struct {
	db *gorm.DB
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{db: db}
}

type CreateMaintenanceAlertRequest struct {
	BikeID           uint      `json:"bikeId" binding:"required"`
	Type             string    `json:"type" binding:"required"`
	ThresholdValue   float64   `json:"thresholdValue"`
	Status           string    `json:"status"`
	AlertTriggeredAt time.Time `json:"alertTriggeredAt"`
}

type CreateChecklistItemRequest struct {
	BikeID uint   `json:"bikeId" binding:"required"`
	Item   string `json:"item" binding:"required"`
}

// CreateMaintenanceAlert records a client-asserted alert. Thresholds are
// never evaluated against usage here; status and trigger time are stored
// verbatim.
func (mc *MaintenanceController) CreateMaintenanceAlert(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateMaintenanceAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := findOwnedBike(mc.db, req.BikeID, userID); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Bike not found")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	alert := models.MaintenanceAlert{
		BikeID:           req.BikeID,
		Type:             req.Type,
		ThresholdValue:   req.ThresholdValue,
		Status:           status,
		AlertTriggeredAt: req.AlertTriggeredAt,
	}

	if err := mc.db.Create(&alert).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create maintenance alert")
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// CreateChecklistItem attaches a to-do entry to an owned bike. Status always
// starts as pending regardless of the payload.
func (mc *MaintenanceController) CreateChecklistItem(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := findOwnedBike(mc.db, req.BikeID, userID); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Bike not found")
		return
	}

	item := models.MaintenanceChecklistItem{
		BikeID: req.BikeID,
		Item:   req.Item,
		Status: models.StatusPending,
	}

	if err := mc.db.Create(&item).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create checklist item")
		return
	}

	c.JSON(http.StatusCreated, item)
}
