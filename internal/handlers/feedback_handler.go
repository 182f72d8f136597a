package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAllFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := config.DB.Order("created_at desc, feedback_id desc").Find(&feedback).Error; err != nil {
		serverError(c, err, "Failed to load feedback")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(feedback, models.Feedback.ToDTO))
}

func GetFeedbackByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var feedback models.Feedback
	if err := config.DB.First(&feedback, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load feedback")
		return
	}

	c.JSON(http.StatusOK, feedback.ToDTO())
}

func GetFeedbackByOrder(c *gin.Context) {
	orderID, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	var feedback models.Feedback
	if err := config.DB.Where("order_id = ?", orderID).First(&feedback).Error; err != nil {
		handleLookupError(c, err, "Failed to load feedback")
		return
	}

	c.JSON(http.StatusOK, feedback.ToDTO())
}

// CreateFeedback accepts one rating per order, only after delivery and
// only from the customer who placed it.
func CreateFeedback(c *gin.Context) {
	var input models.FeedbackInput
	if !bindInput(c, &input) {
		return
	}

	var order models.Order
	if !requireRef(c, &order, input.OrderID, "order") {
		return
	}

	if order.CustomerID != input.CustomerID {
		utils.APIResponse(c, http.StatusBadRequest, false,
			fmt.Sprintf("order %d was not placed by customer %d", order.OrderID, input.CustomerID), nil)
		return
	}

	if order.DeliveryStatus != models.OrderDelivered {
		utils.APIResponse(c, http.StatusBadRequest, false, "Feedback is only accepted for delivered orders", nil)
		return
	}

	var existing models.Feedback
	err := config.DB.Select("feedback_id").Where("order_id = ?", order.OrderID).Take(&existing).Error
	switch {
	case err == nil:
		utils.APIResponse(c, http.StatusConflict, false, "Feedback already submitted for this order", nil)
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		serverError(c, err, "Failed to load feedback")
		return
	}

	feedback := input.ToModel()
	if err := config.DB.Create(&feedback).Error; err != nil {
		// lost a race with a concurrent submit; the unique index decides
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.APIResponse(c, http.StatusConflict, false, "Feedback already submitted for this order", nil)
			return
		}
		serverError(c, err, "Failed to save feedback")
		return
	}

	created(c, fmt.Sprintf("/api/feedback/%d", feedback.FeedbackID), feedback.ToDTO())
}

func DeleteFeedback(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var feedback models.Feedback
	if err := config.DB.First(&feedback, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load feedback")
		return
	}

	if err := config.DB.Delete(&feedback).Error; err != nil {
		deleteFailed(c, err, "Failed to delete feedback")
		return
	}

	c.JSON(http.StatusOK, feedback.ToDTO())
}
