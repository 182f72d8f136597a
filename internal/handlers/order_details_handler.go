package handlers

import (
	"fmt"
	"net/http"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// withDetailTree preloads the fish, its species and the health history in
// reading order.
func withDetailTree(db *gorm.DB) *gorm.DB {
	return db.
		Preload("FishProfile.KoiFish").
		Preload("HealthStatus", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("date, health_status_id")
		})
}

func GetAllOrderDetails(c *gin.Context) {
	var details []models.OrderDetails
	if err := withDetailTree(config.DB).Order("order_details_id").Find(&details).Error; err != nil {
		serverError(c, err, "Failed to load order details")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(details, models.OrderDetails.ToDTO))
}

func GetOrderDetailsByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var detail models.OrderDetails
	if err := withDetailTree(config.DB).First(&detail, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load order details")
		return
	}

	c.JSON(http.StatusOK, detail.ToDTO())
}

// GetOrderDetailsByOrder lists every fish line of one order.
func GetOrderDetailsByOrder(c *gin.Context) {
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
	err := withDetailTree(config.DB).
		Where("order_id = ?", orderID).
		Order("order_details_id").
		Find(&details).Error
	if err != nil {
		serverError(c, err, "Failed to load order details")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(details, models.OrderDetails.ToDTO))
}

// orderDetailsRefs checks the order and fish exist and that the fish
// belongs to the customer who placed the order.
func orderDetailsRefs(c *gin.Context, input models.OrderDetailsInput) (*models.FishProfile, bool) {
	var order models.Order
	if !requireRef(c, &order, input.OrderID, "order") {
		return nil, false
	}
	var fish models.FishProfile
	if !requireRef(c, &fish, input.FishProfileID, "fish profile") {
		return nil, false
	}
	if fish.CustomerID != order.CustomerID {
		utils.APIResponse(c, http.StatusBadRequest, false,
			fmt.Sprintf("fish profile %d does not belong to the customer of order %d", fish.FishProfileID, order.OrderID), nil)
		return nil, false
	}
	return &fish, true
}

func CreateOrderDetails(c *gin.Context) {
	var input models.OrderDetailsInput
	if !bindInput(c, &input) {
		return
	}

	if _, ok := orderDetailsRefs(c, input); !ok {
		return
	}

	var detail models.OrderDetails
	input.ApplyTo(&detail)

	if err := config.DB.Create(&detail).Error; err != nil {
		serverError(c, err, "Failed to save order details")
		return
	}

	if err := withDetailTree(config.DB).First(&detail, detail.OrderDetailsID).Error; err != nil {
		serverError(c, err, "Failed to load order details")
		return
	}

	created(c, fmt.Sprintf("/api/orderdetails/%d", detail.OrderDetailsID), detail.ToDTO())
}

func UpdateOrderDetails(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.OrderDetailsInput
	if !bindInput(c, &input) {
		return
	}

	var detail models.OrderDetails
	if err := config.DB.First(&detail, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load order details")
		return
	}

	if _, ok := orderDetailsRefs(c, input); !ok {
		return
	}

	input.ApplyTo(&detail)
	if err := config.DB.Save(&detail).Error; err != nil {
		serverError(c, err, "Failed to update order details")
		return
	}

	// reload so the response carries the current fish and history
	if err := withDetailTree(config.DB).First(&detail, id).Error; err != nil {
		serverError(c, err, "Failed to load order details")
		return
	}

	c.JSON(http.StatusOK, detail.ToDTO())
}

func DeleteOrderDetails(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var detail models.OrderDetails
	if err := withDetailTree(config.DB).First(&detail, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load order details")
		return
	}

	if err := config.DB.Delete(&models.OrderDetails{}, id).Error; err != nil {
		deleteFailed(c, err, "Failed to delete order details")
		return
	}

	c.JSON(http.StatusOK, detail.ToDTO())
}
