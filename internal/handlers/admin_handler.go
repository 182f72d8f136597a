package handlers

import (
	"net/http"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardStats is the summary shown on the admin home screen.
type DashboardStats struct {
	OrdersByStatus   map[models.OrderStatus]int64 `json:"ordersByStatus"`
	TotalOrders      int64                        `json:"totalOrders"`
	PaidRevenue      float64                      `json:"paidRevenue"`
	Customers        int64                        `json:"customers"`
	Staff            int64                        `json:"staff"`
	ActiveTransports int64                        `json:"activeTransports"`
}

func GetDashboardStats(c *gin.Context) {
	stats := DashboardStats{
		OrdersByStatus: map[models.OrderStatus]int64{
			models.OrderPending:    0,
			models.OrderProcessing: 0,
			models.OrderDelivered:  0,
			models.OrderCancelled:  0,
		},
	}

	var rows []struct {
		DeliveryStatus string
		Total          int64
	}
	if err := config.DB.Model(&models.Order{}).
		Select("delivery_status, COUNT(*) AS total").
		Group("delivery_status").
		Scan(&rows).Error; err != nil {
		serverError(c, err, "Failed to count orders")
		return
	}
	for _, row := range rows {
		status, err := models.ParseOrderStatus(row.DeliveryStatus)
		if err != nil {
			utils.Log.WithField("status", row.DeliveryStatus).Warn("Unknown delivery status in orders table")
			continue
		}
		stats.OrdersByStatus[status] = row.Total
		stats.TotalOrders += row.Total
	}

	var revenue struct{ Total float64 }
	// COALESCE keeps the sum at 0 when nothing is paid yet
	if err := config.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_cost), 0) AS total").
		Where("payment_status = ?", models.PaymentPaid).
		Scan(&revenue).Error; err != nil {
		serverError(c, err, "Failed to sum revenue")
		return
	}
	stats.PaidRevenue = revenue.Total

	if err := config.DB.Model(&models.Customer{}).Count(&stats.Customers).Error; err != nil {
		serverError(c, err, "Failed to count customers")
		return
	}
	if err := config.DB.Model(&models.Staff{}).Count(&stats.Staff).Error; err != nil {
		serverError(c, err, "Failed to count staff")
		return
	}
	if err := config.DB.Model(&models.Transport{}).
		Where("status = ?", models.TransportProcessing).
		Count(&stats.ActiveTransports).Error; err != nil {
		serverError(c, err, "Failed to count transports")
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Admin dashboard", stats)
}
