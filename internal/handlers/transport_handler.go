package handlers

import (
	"fmt"
	"net/http"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func GetAllTransports(c *gin.Context) {
	var transports []models.Transport
	if err := config.DB.Order("transport_id").Find(&transports).Error; err != nil {
		serverError(c, err, "Failed to load transports")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(transports, models.Transport.ToDTO))
}

func GetTransportByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var transport models.Transport
	if err := config.DB.First(&transport, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load transport")
		return
	}

	c.JSON(http.StatusOK, transport.ToDTO())
}

// staffRefsExist checks the three staff ids of a transport.
func staffRefsExist(c *gin.Context, input models.TransportInput) bool {
	for _, staffID := range input.StaffIDs() {
		var staff models.Staff
		if !requireRef(c, &staff, staffID, "staff") {
			return false
		}
	}
	return true
}

func CreateTransport(c *gin.Context) {
	var input models.TransportInput
	if !bindInput(c, &input) {
		return
	}
	if !staffRefsExist(c, input) {
		return
	}

	var transport models.Transport
	input.ApplyTo(&transport)

	if err := config.DB.Create(&transport).Error; err != nil {
		serverError(c, err, "Failed to save transport")
		return
	}

	created(c, fmt.Sprintf("/api/transport/%d", transport.TransportID), transport.ToDTO())
}

func UpdateTransport(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.TransportInput
	if !bindInput(c, &input) {
		return
	}

	var transport models.Transport
	if err := config.DB.First(&transport, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load transport")
		return
	}

	if !staffRefsExist(c, input) {
		return
	}

	input.ApplyTo(&transport)
	if err := config.DB.Save(&transport).Error; err != nil {
		serverError(c, err, "Failed to update transport")
		return
	}

	c.JSON(http.StatusOK, transport.ToDTO())
}

func DeleteTransport(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var transport models.Transport
	if err := config.DB.First(&transport, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load transport")
		return
	}

	if err := config.DB.Delete(&transport).Error; err != nil {
		deleteFailed(c, err, "Failed to delete transport")
		return
	}

	c.JSON(http.StatusOK, transport.ToDTO())
}
