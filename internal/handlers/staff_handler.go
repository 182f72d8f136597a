package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func GetAllStaff(c *gin.Context) {
	var staff []models.Staff
	if err := config.DB.Order("staff_id").Find(&staff).Error; err != nil {
		serverError(c, err, "Failed to load staff")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(staff, models.Staff.ToDTO))
}

func GetStaffByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load staff")
		return
	}

	c.JSON(http.StatusOK, staff.ToDTO())
}

// SearchStaffByName takes the name as a bare JSON string body, e.g. "Minh".
func SearchStaffByName(c *gin.Context) {
	var name string
	if err := c.ShouldBindJSON(&name); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Body must be a JSON string", err.Error())
		return
	}
	findStaffByName(c, name)
}

// SearchStaff is the query-string form: GET /api/staff/search?name=Minh
func SearchStaff(c *gin.Context) {
	findStaffByName(c, c.Query("name"))
}

func findStaffByName(c *gin.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "Name is required", nil)
		return
	}

	var staff []models.Staff
	err := config.DB.
		Where("LOWER(staff_name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("staff_name").
		Find(&staff).Error
	if err != nil {
		serverError(c, err, "Failed to search staff")
		return
	}

	if len(staff) == 0 {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, mapDTOs(staff, models.Staff.ToDTO))
}

func CreateStaff(c *gin.Context) {
	var input models.StaffInput
	if !bindInput(c, &input) {
		return
	}

	var staff models.Staff
	input.ApplyTo(&staff)

	if err := config.DB.Create(&staff).Error; err != nil {
		serverError(c, err, "Failed to save staff")
		return
	}

	created(c, fmt.Sprintf("/api/staff/%d", staff.StaffID), staff.ToDTO())
}

func UpdateStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.StaffInput
	if !bindInput(c, &input) {
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load staff")
		return
	}

	input.ApplyTo(&staff)
	if err := config.DB.Save(&staff).Error; err != nil {
		serverError(c, err, "Failed to update staff")
		return
	}

	c.JSON(http.StatusOK, staff.ToDTO())
}

func DeleteStaff(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load staff")
		return
	}

	if stillReferenced(c, id,
		reference{&models.Transport{}, "staff_id"},
		reference{&models.Transport{}, "health_care_staff_id"},
		reference{&models.Transport{}, "delivery_staff_id"},
	) {
		return
	}

	if err := config.DB.Delete(&staff).Error; err != nil {
		deleteFailed(c, err, "Failed to delete staff")
		return
	}

	c.JSON(http.StatusOK, staff.ToDTO())
}
