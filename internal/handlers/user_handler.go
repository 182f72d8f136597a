package handlers

import (
	"net/http"

	"kdos-backend/internal/config"
	"kdos-backend/internal/middleware"
	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetAccountProfile returns the account behind the bearer token.
func GetAccountProfile(c *gin.Context) {
	accountID := c.GetUint(middleware.ContextAccountID)
	if accountID == 0 {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}

	var account models.Account
	if err := config.DB.Preload("Customer").Preload("Staff").First(&account, accountID).Error; err != nil {
		handleLookupError(c, err, "Failed to load account")
		return
	}

	c.JSON(http.StatusOK, account.ToDTO())
}
