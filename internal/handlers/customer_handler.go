package handlers

import (
	"fmt"
	"net/http"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("customer_id").Find(&customers).Error; err != nil {
		serverError(c, err, "Failed to load customers")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(customers, models.Customer.ToDTO))
}

func GetCustomerByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load customer")
		return
	}

	c.JSON(http.StatusOK, customer.ToDTO())
}

// CreateCustomer stores a new customer; the id comes from the database.
func CreateCustomer(c *gin.Context) {
	var input models.CustomerInput
	if !bindInput(c, &input) {
		return
	}

	var customer models.Customer
	input.ApplyTo(&customer)

	if err := config.DB.Create(&customer).Error; err != nil {
		serverError(c, err, "Failed to save customer")
		return
	}

	created(c, fmt.Sprintf("/api/customer/%d", customer.CustomerID), customer.ToDTO())
}

// UpdateCustomer overwrites every field of an existing customer.
func UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.CustomerInput
	if !bindInput(c, &input) {
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load customer")
		return
	}

	input.ApplyTo(&customer)
	if err := config.DB.Save(&customer).Error; err != nil {
		serverError(c, err, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer.ToDTO())
}

// DeleteCustomer removes the customer and echoes what was deleted.
func DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load customer")
		return
	}

	if stillReferenced(c, id, reference{&models.Order{}, "customer_id"}) {
		return
	}

	if err := config.DB.Delete(&customer).Error; err != nil {
		deleteFailed(c, err, "Failed to delete customer")
		return
	}

	c.JSON(http.StatusOK, customer.ToDTO())
}
