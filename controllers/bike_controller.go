package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"pedaltrack-api/models"
	"pedaltrack-api/utils"
)

type BikeController struct {
	db *gorm.DB
}

func NewBikeController(db *gorm.DB) *BikeController {
	return &BikeController{db: db}
}

type CreateBikeRequest struct {
	Brand string `json:"brand" binding:"required"`
	Model string `json:"model" binding:"required"`
}

// withAssociations eagerly loads the owner and all child collections, the
// response shape every bike read uses.
func (bc *BikeController) withAssociations() *gorm.DB {
	return bc.db.
		Preload("User").
		Preload("UsageRecords").
		Preload("MaintenanceAlerts").
		Preload("MaintenanceChecklist")
}

func (bc *BikeController) CreateBike(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bike := models.Bike{
		UserID: userID,
		Brand:  req.Brand,
		Model:  req.Model,
	}

	if err := bc.db.Create(&bike).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create bike")
		return
	}

	// Reload with owner and (initially empty) child collections
	var created models.Bike
	if err := bc.withAssociations().First(&created, bike.ID).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to load bike")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (bc *BikeController) GetBikes(c *gin.Context) {
	userID := c.GetUint("user_id")

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	if pageStr == "" && limitStr == "" {
		var bikes []models.Bike
		if err := bc.withAssociations().Where("user_id = ?", userID).Find(&bikes).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bikes")
			return
		}
		if bikes == nil {
			bikes = []models.Bike{}
		}
		c.JSON(http.StatusOK, bikes)
		return
	}

	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(limitStr)
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	var total int64
	if err := bc.db.Model(&models.Bike{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bikes")
		return
	}

	var bikes []models.Bike
	if err := bc.withAssociations().
		Where("user_id = ?", userID).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bikes).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bikes")
		return
	}
	if bikes == nil {
		bikes = []models.Bike{}
	}

	utils.SendPaginated(c, bikes, page, limit, total)
}

func (bc *BikeController) GetBike(c *gin.Context) {
	userID := c.GetUint("user_id")

	bikeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Bike not found")
		return
	}

	bike, err := findOwnedBike(bc.withAssociations(), uint(bikeID), userID)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Bike not found")
		return
	}

	c.JSON(http.StatusOK, bike)
}
