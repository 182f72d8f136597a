package handlers

import (
	"fmt"
	"net/http"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetAllKoiFishes lists the species catalogue used by the fish form.
func GetAllKoiFishes(c *gin.Context) {
	var fishes []models.KoiFish
	if err := config.DB.Order("fish_type").Find(&fishes).Error; err != nil {
		serverError(c, err, "Failed to load koi species")
		return
	}

	c.JSON(http.StatusOK, mapDTOs(fishes, models.KoiFish.ToDTO))
}

func GetKoiFishByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var fish models.KoiFish
	if err := config.DB.First(&fish, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load koi species")
		return
	}

	c.JSON(http.StatusOK, fish.ToDTO())
}

func CreateKoiFish(c *gin.Context) {
	var input models.KoiFishInput
	if !bindInput(c, &input) {
		return
	}

	var fish models.KoiFish
	input.ApplyTo(&fish)

	if err := config.DB.Create(&fish).Error; err != nil {
		serverError(c, err, "Failed to save koi species")
		return
	}

	created(c, fmt.Sprintf("/api/koifish/%d", fish.KoiFishID), fish.ToDTO())
}

func UpdateKoiFish(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.KoiFishInput
	if !bindInput(c, &input) {
		return
	}

	var fish models.KoiFish
	if err := config.DB.First(&fish, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load koi species")
		return
	}

	input.ApplyTo(&fish)
	if err := config.DB.Save(&fish).Error; err != nil {
		serverError(c, err, "Failed to update koi species")
		return
	}

	c.JSON(http.StatusOK, fish.ToDTO())
}

func DeleteKoiFish(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var fish models.KoiFish
	if err := config.DB.First(&fish, id).Error; err != nil {
		handleLookupError(c, err, "Failed to load koi species")
		return
	}

	if stillReferenced(c, id, reference{&models.FishProfile{}, "koi_fish_id"}) {
		return
	}

	if err := config.DB.Delete(&fish).Error; err != nil {
		deleteFailed(c, err, "Failed to delete koi species")
		return
	}

	c.JSON(http.StatusOK, fish.ToDTO())
}
