package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// newOrderCode returns the public order code, e.g. KDOS-3F9A0C1B. Midtrans
// sees this code as its order_id.
func newOrderCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "KDOS-" + strings.ToUpper(hex[:8])
}

func GetAllOrders(c *gin.Context) {
	query := config.DB.Order("created_at desc, order_id desc")

	// optional filter: ?status=DELIVERED
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseOrderStatus(raw)
		if err != nil {
			utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		query = query.Where("delivery_status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		serverError(c, err, "Failed to load orders")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(orders, models.Order.ToDTO))
}

func GetOrderByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load order")
		return
	}

	c.JSON(http.StatusOK, order.ToDTO())
}

// GetOrdersByCustomer is the customer's order history, newest first.
func GetOrdersByCustomer(c *gin.Context) {
	customerID, ok := paramID(c, "customerId")
	if !ok {
		return
	}

	var orders []models.Order
	err := config.DB.
		Where("customer_id = ?", customerID).
		Order("created_at desc, order_id desc").
		Find(&orders).Error
	if err != nil {
		serverError(c, err, "Failed to load orders")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(orders, models.Order.ToDTO))
}

func orderRefsExist(c *gin.Context, input models.OrderInput) bool {
	var customer models.Customer
	if !requireRef(c, &customer, input.CustomerID, "customer") {
		return false
	}
	if input.TransportID != nil {
		var transport models.Transport
		if !requireRef(c, &transport, *input.TransportID, "transport") {
			return false
		}
	}
	return true
}

func CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if !bindInput(c, &input) {
		return
	}
	if !orderRefsExist(c, input) {
		return
	}

	order := models.Order{Code: newOrderCode()}
	input.ApplyTo(&order)

	if err := config.DB.Create(&order).Error; err != nil {
		serverError(c, err, "Failed to save order")
		return
	}

	utils.Log.WithFields(logrus.Fields{
		"order_id": order.OrderID,
		"code":     order.Code,
	}).Info("Order created")

	created(c, fmt.Sprintf("/api/order/%d", order.OrderID), order.ToDTO())
}

func UpdateOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.OrderInput
	if !bindInput(c, &input) {
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load order")
		return
	}

	if !orderRefsExist(c, input) {
		return
	}
	if input.CustomerID != order.CustomerID && !customerChangeAllowed(c, order.OrderID, input.CustomerID) {
		return
	}

	previous := order.DeliveryStatus
	input.ApplyTo(&order)
	if err := config.DB.Save(&order).Error; err != nil {
		serverError(c, err, "Failed to update order")
		return
	}

	if previous != models.OrderDelivered && order.DeliveryStatus == models.OrderDelivered {
		notifyCustomer(order.CustomerID,
			"Your koi have arrived",
			fmt.Sprintf("Order %s was delivered. Tell us how the trip went!", order.Code),
			map[string]string{"order_id": fmt.Sprint(order.OrderID), "type": "order_delivered"},
		)
	}

	c.JSON(http.StatusOK, order.ToDTO())
}

// customerChangeAllowed refuses to move an order to customerID while its
// fish or feedback still belong to someone else.
func customerChangeAllowed(c *gin.Context, orderID, customerID uint) bool {
	var foreignFish int64
	err := config.DB.Model(&models.OrderDetails{}).
		Joins("JOIN fish_profiles ON fish_profiles.fish_profile_id = order_details.fish_profile_id").
		Where("order_details.order_id = ? AND fish_profiles.customer_id <> ?", orderID, customerID).
		Count(&foreignFish).Error
	if err != nil {
		serverError(c, err, "Failed to check order details")
		return false
	}
	if foreignFish > 0 {
		utils.APIResponse(c, http.StatusBadRequest, false,
			fmt.Sprintf("order %d carries fish of another customer", orderID), nil)
		return false
	}

	var foreignFeedback int64
	err = config.DB.Model(&models.Feedback{}).
		Where("order_id = ? AND customer_id <> ?", orderID, customerID).
		Count(&foreignFeedback).Error
	if err != nil {
		serverError(c, err, "Failed to check feedback")
		return false
	}
	if foreignFeedback > 0 {
		utils.APIResponse(c, http.StatusBadRequest, false,
			fmt.Sprintf("order %d has feedback from another customer", orderID), nil)
		return false
	}
	return true
}

func DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load order")
		return
	}

	if err := config.DB.Delete(&order).Error; err != nil {
		deleteFailed(c, err, "Failed to delete order")
		return
	}

	c.JSON(http.StatusOK, order.ToDTO())
}

// CreateOrderPayment opens a Midtrans Snap transaction for the order total.
func CreateOrderPayment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := config.DB.Preload("Customer").First(&order, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load order")
		return
	}

	if order.PaymentStatus == models.PaymentPaid {
		utils.APIResponse(c, http.StatusBadRequest, false, "Order is already paid", nil)
		return
	}

	amount := int64(math.Round(order.TotalCost))
	if amount <= 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Order total must be greater than zero", nil)
		return
	}

	payer := utils.PaymentCustomer{
		Name:  order.SenderName,
		Email: order.RecipientEmail,
		Phone: order.SenderPhoneNumber,
	}
	if order.Customer != nil {
		payer.Name = order.Customer.CustomerName
		if order.Customer.Email != "" {
			payer.Email = order.Customer.Email
		}
		if order.Customer.PhoneNumber != "" {
			payer.Phone = order.Customer.PhoneNumber
		}
	}

	resp, err := utils.CreatePayment(order.Code, amount, "Koi transport "+order.Code, payer)
	if err != nil {
		if errors.Is(err, utils.ErrPaymentDisabled) {
			utils.APIResponse(c, http.StatusServiceUnavailable, false, "Payments are not available", nil)
			return
		}
		utils.Log.WithError(err).WithField("code", order.Code).Error("Midtrans transaction failed")
		utils.APIResponse(c, http.StatusBadGateway, false, "Payment gateway error", err.Error())
		return
	}

	if order.PaymentMethod == "" {
		if err := config.DB.Model(&order).Update("payment_method", "MIDTRANS").Error; err != nil {
			serverError(c, err, "Failed to update order")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       resp.Token,
		"redirectUrl": resp.RedirectURL,
	})
}

// notifyCustomer pushes to the account linked to customerID. The lookup
// runs on the request; the send does not block it.
func notifyCustomer(customerID uint, title, body string, data map[string]string) {
	var account models.Account
	err := config.DB.Select("account_id", "fcm_token").
		Where("customer_id = ? AND fcm_token <> ''", customerID).
		Take(&account).Error
	if err != nil {
		// no account or no device registered
		return
	}

	go func(token string) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		utils.SendNotification(ctx, token, title, body, data)
	}(account.FCMToken)
}
