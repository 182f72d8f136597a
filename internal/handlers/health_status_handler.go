package handlers

import (
	"fmt"
	"net/http"
	"time"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health readings are append-only: there is no update or delete.

func GetHealthStatusByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var status models.HealthStatus
	if err := config.DB.First(&status, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load health status")
		return
	}

	c.JSON(http.StatusOK, status.ToDTO())
}

// GetHealthStatusByOrderDetails returns one fish's readings, oldest first.
func GetHealthStatusByOrderDetails(c *gin.Context) {
	detailID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var detail models.OrderDetails
	if err := config.DB.Select("order_details_id").First(&detail, detailID).Error; err != nil {
		handleLookupError(c, err, "Failed to load order details")
		return
	}

	var readings []models.HealthStatus
	err := config.DB.
		Where("order_details_id = ?", detailID).
		Order("date, health_status_id").
		Find(&readings).Error
	if err != nil {
		serverError(c, err, "Failed to load health status")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(readings, models.HealthStatus.ToDTO))
}

// GetLatestHealthByOrder returns the newest reading of every fish in the
// order, for the tracking screen.
func GetLatestHealthByOrder(c *gin.Context) {
	orderID, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	var order models.Order
	if err := config.DB.Select("order_id").First(&order, orderID).Error; err != nil {
		handleLookupError(c, err, "Failed to load order")
		return
	}

	var details []models.OrderDetails
	err := config.DB.
		Preload("FishProfile").
		Preload("HealthStatus", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("date, health_status_id")
		}).
		Where("order_id = ?", orderID).
		Order("order_details_id").
		Find(&details).Error
	if err != nil {
		serverError(c, err, "Failed to load health status")
		return
	}

	c.JSON(http.StatusOK, models.LatestByFish(details))
}

func CreateHealthStatus(c *gin.Context) {
	var input models.HealthStatusInput
	if !bindInput(c, &input) {
		return
	}

	var detail models.OrderDetails
	if !requireRef(c, &detail, input.OrderDetailsID, "order details") {
		return
	}

	status := input.ToModel(time.Now())
	if err := config.DB.Create(&status).Error; err != nil {
		serverError(c, err, "Failed to save health status")
		return
	}

	created(c, fmt.Sprintf("/api/healthstatus/%d", status.HealthStatusID), status.ToDTO())
}
