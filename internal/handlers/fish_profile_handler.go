package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func GetAllFishProfiles(c *gin.Context) {
	var profiles []models.FishProfile
	if err := config.DB.Preload("KoiFish").Order("fish_profile_id").Find(&profiles).Error; err != nil {
		serverError(c, err, "Failed to load fish profiles")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(profiles, models.FishProfile.ToDTO))
}

func GetFishProfileByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var profile models.FishProfile
	if err := config.DB.Preload("KoiFish").First(&profile, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load fish profile")
		return
	}

	c.JSON(http.StatusOK, profile.ToDTO())
}

// GetFishProfilesByCustomer answers 404 when the customer owns no fish.
func GetFishProfilesByCustomer(c *gin.Context) {
	customerID, ok := paramID(c, "customerId")
	if !ok {
		return
	}

	var profiles []models.FishProfile
	err := config.DB.Preload("KoiFish").
		Where("customer_id = ?", customerID).
		Order("fish_profile_id").
		Find(&profiles).Error
	if err != nil {
		serverError(c, err, "Failed to load fish profiles")
		return
	}

	if len(profiles) == 0 {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, mapDTOs(profiles, models.FishProfile.ToDTO))
}

// SearchCustomerFishProfiles filters one customer's fish by a name fragment.
func SearchCustomerFishProfiles(c *gin.Context) {
	customerID, ok := paramID(c, "customerId")
	if !ok {
		return
	}

	query := config.DB.Preload("KoiFish").Where("customer_id = ?", customerID)
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var profiles []models.FishProfile
	if err := query.Order("name").Find(&profiles).Error; err != nil {
		serverError(c, err, "Failed to search fish profiles")
		return
	}

	if len(profiles) == 0 {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, mapDTOs(profiles, models.FishProfile.ToDTO))
}

// fishProfileRefs loads the species and owner named by input. The species
// is returned so the response can carry fishType without a second query.
func fishProfileRefs(c *gin.Context, input models.FishProfileInput) (*models.KoiFish, bool) {
	var customer models.Customer
	if !requireRef(c, &customer, input.CustomerID, "customer") {
		return nil, false
	}
	var species models.KoiFish
	if !requireRef(c, &species, input.KoiFishID, "koi fish") {
		return nil, false
	}
	return &species, true
}

func CreateFishProfile(c *gin.Context) {
	var input models.FishProfileInput
	if !bindInput(c, &input) {
		return
	}

	species, ok := fishProfileRefs(c, input)
	if !ok {
		return
	}

	var profile models.FishProfile
	input.ApplyTo(&profile)

	if err := config.DB.Create(&profile).Error; err != nil {
		serverError(c, err, "Failed to save fish profile")
		return
	}

	profile.KoiFish = species
	created(c, fmt.Sprintf("/api/fishprofile/%d", profile.FishProfileID), profile.ToDTO())
}

func UpdateFishProfile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.FishProfileInput
	if !bindInput(c, &input) {
		return
	}

	var profile models.FishProfile
	if err := config.DB.First(&profile, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load fish profile")
		return
	}

	species, ok := fishProfileRefs(c, input)
	if !ok {
		return
	}

	input.ApplyTo(&profile)
	if err := config.DB.Save(&profile).Error; err != nil {
		serverError(c, err, "Failed to update fish profile")
		return
	}

	profile.KoiFish = species
	c.JSON(http.StatusOK, profile.ToDTO())
}

func DeleteFishProfile(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var profile models.FishProfile
	if err := config.DB.Preload("KoiFish").First(&profile, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load fish profile")
		return
	}

	if stillReferenced(c, id, reference{&models.OrderDetails{}, "fish_profile_id"}) {
		return
	}

	if err := config.DB.Delete(&profile).Error; err != nil {
		deleteFailed(c, err, "Failed to delete fish profile")
		return
	}

	c.JSON(http.StatusOK, profile.ToDTO())
}
