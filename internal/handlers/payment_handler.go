package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MidtransNotification holds the webhook fields we act on. Midtrans sends
// many more.
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
}

// paymentStatusFromMidtrans maps a Midtrans transaction status onto ours.
// A capture still under fraud review stays pending.
func paymentStatusFromMidtrans(transactionStatus, fraudStatus string) models.PaymentStatus {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return models.PaymentPaid
		}
		return models.PaymentPending
	case "settlement":
		return models.PaymentPaid
	case "deny", "cancel", "expire", "failure":
		return models.PaymentFailed
	default:
		return models.PaymentPending
	}
}

func HandleMidtransNotification(c *gin.Context) {
	var notification MidtransNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid JSON", nil)
		return
	}

	if !utils.VerifyNotificationSignature(notification.OrderID, notification.StatusCode,
		notification.GrossAmount, notification.SignatureKey) {
		utils.Log.WithField("code", notification.OrderID).Warn("Midtrans notification with bad signature")
		utils.APIResponse(c, http.StatusForbidden, false, "Invalid signature", nil)
		return
	}

	status := paymentStatusFromMidtrans(notification.TransactionStatus, notification.FraudStatus)
	log := utils.Log.WithFields(logrus.Fields{
		"code":               notification.OrderID,
		"transaction_status": notification.TransactionStatus,
		"fraud_status":       notification.FraudStatus,
		"payment_status":     status,
	})
	log.Info("Midtrans notification received")

	var order models.Order
	if err := config.DB.Where("code = ?", notification.OrderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("Midtrans notification for unknown order")
			utils.APIResponse(c, http.StatusNotFound, false, "Order not found", nil)
			return
		}
		serverError(c, err, "Failed to load order")
		return
	}

	if order.PaymentStatus == status {
		log.Debug("Payment status unchanged")
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	previous := order.PaymentStatus
	updates := map[string]any{"payment_status": status}
	if notification.PaymentType != "" {
		updates["payment_method"] = notification.PaymentType
	}
	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		serverError(c, err, "Failed to update order")
		return
	}
	log.WithField("previous", previous).Info("Payment status updated")

	data := map[string]string{"order_id": fmt.Sprint(order.OrderID)}
	switch status {
	case models.PaymentPaid:
		data["type"] = "payment_success"
		notifyCustomer(order.CustomerID, "Payment received",
			fmt.Sprintf("We got your payment for order %s. Your koi will be on their way soon.", order.Code), data)
	case models.PaymentFailed:
		data["type"] = "payment_failed"
		notifyCustomer(order.CustomerID, "Payment failed",
			fmt.Sprintf("The payment for order %s did not go through.", order.Code), data)
	}

	// Midtrans retries until it gets a 200
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
