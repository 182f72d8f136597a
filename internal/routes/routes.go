package routes

import (
	"kdos-backend/internal/config"
	"kdos-backend/internal/handlers"
	"kdos-backend/internal/middleware"
	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func SetupRoutes(r *gin.Engine, cfg config.Config) {
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	r.Use(middleware.RateLimitMiddleware(rate.Limit(cfg.RateLimit), cfg.RateBurst))

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	api := r.Group("/api")
	{
		// Auth
		api.POST("/account/register", handlers.Register)
		api.POST("/login", handlers.Login)
		api.POST("/login/google", handlers.GoogleLogin)
		api.GET("/account/profile", middleware.AuthMiddleware(), handlers.GetAccountProfile)

		// Midtrans calls this; it is authenticated by signature, not JWT
		api.POST("/payment/notification", handlers.HandleMidtransNotification)

		customers := api.Group("/customer")
		{
			customers.GET("", handlers.GetAllCustomers)
			customers.GET("/:id", handlers.GetCustomerByID)
			customers.POST("", handlers.CreateCustomer)
			customers.PUT("/:id", handlers.UpdateCustomer)
			customers.DELETE("/:id", handlers.DeleteCustomer)
		}

		koi := api.Group("/koifish")
		{
			koi.GET("", handlers.GetAllKoiFishes)
			koi.GET("/:id", handlers.GetKoiFishByID)
			koi.POST("", handlers.CreateKoiFish)
			koi.PUT("/:id", handlers.UpdateKoiFish)
			koi.DELETE("/:id", handlers.DeleteKoiFish)
		}

		fish := api.Group("/fishprofile")
		{
			fish.GET("", handlers.GetAllFishProfiles)
			fish.GET("/:id", handlers.GetFishProfileByID)
			fish.GET("/customer/:customerId", handlers.GetFishProfilesByCustomer)
			fish.GET("/customer/:customerId/search", handlers.SearchCustomerFishProfiles)
			fish.POST("", handlers.CreateFishProfile)
			fish.PUT("/:id", handlers.UpdateFishProfile)
			fish.DELETE("/:id", handlers.DeleteFishProfile)
		}

		orders := api.Group("/order")
		{
			orders.GET("", handlers.GetAllOrders)
			orders.GET("/:id", handlers.GetOrderByID)
			orders.GET("/customer/:customerId", handlers.GetOrdersByCustomer)
			orders.POST("", handlers.CreateOrder)
			orders.PUT("/:id", handlers.UpdateOrder)
			orders.DELETE("/:id", handlers.DeleteOrder)
			orders.POST("/:id/payment", middleware.AuthMiddleware(), handlers.CreateOrderPayment)
		}

		details := api.Group("/orderdetails")
		{
			details.GET("", handlers.GetAllOrderDetails)
			details.GET("/:id", handlers.GetOrderDetailsByID)
			details.GET("/order/:orderId", handlers.GetOrderDetailsByOrder)
			details.POST("", handlers.CreateOrderDetails)
			details.PUT("/:id", handlers.UpdateOrderDetails)
			details.DELETE("/:id", handlers.DeleteOrderDetails)
		}

		health := api.Group("/healthstatus")
		{
			health.GET("/:id", handlers.GetHealthStatusByID)
			health.GET("/orderdetails/:id", handlers.GetHealthStatusByOrderDetails)
			health.GET("/order/:orderId/latest", handlers.GetLatestHealthByOrder)
			health.POST("", handlers.CreateHealthStatus)
		}

		feedback := api.Group("/feedback")
		{
			feedback.GET("", handlers.GetAllFeedback)
			feedback.GET("/:id", handlers.GetFeedbackByID)
			feedback.GET("/order/:orderId", handlers.GetFeedbackByOrder)
			feedback.POST("", handlers.CreateFeedback)
			feedback.DELETE("/:id", handlers.DeleteFeedback)
		}

		// Operations: staff and admins only
		ops := api.Group("/")
		ops.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin, models.RoleStaff))
		{
			staff := ops.Group("/staff")
			{
				staff.GET("", handlers.GetAllStaff)
				staff.GET("/search", handlers.SearchStaff)
				staff.POST("/searchbyname", handlers.SearchStaffByName)
				staff.GET("/:id", handlers.GetStaffByID)
				staff.POST("", handlers.CreateStaff)
				staff.PUT("/:id", handlers.UpdateStaff)
				staff.DELETE("/:id", handlers.DeleteStaff)
			}

			transports := ops.Group("/transport")
			{
				transports.GET("", handlers.GetAllTransports)
				transports.GET("/:id", handlers.GetTransportByID)
				transports.POST("", handlers.CreateTransport)
				transports.PUT("/:id", handlers.UpdateTransport)
				transports.DELETE("/:id", handlers.DeleteTransport)
			}
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/dashboard", handlers.GetDashboardStats)
		}
	}
}
