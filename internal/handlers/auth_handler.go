package handlers

import (
	"errors"
	"net/http"
	"strings"

	"kdos-backend/internal/config"
	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errAccountTaken = errors.New("user name or email already registered")

// Register signs up a customer. The account and its Customer row are
// written in one transaction.
func Register(c *gin.Context) {
	var input models.RegisterInput
	if !bindInput(c, &input) {
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		serverError(c, err, "Failed to process password")
		return
	}

	account := models.Account{
		UserName:     strings.TrimSpace(input.UserName),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hashedPassword,
		Role:         models.RoleCustomer,
	}
	customer := models.Customer{
		CustomerName: input.CustomerName,
		Address:      input.Address,
		Age:          input.Age,
		Email:        account.Email,
		Gender:       input.Gender,
		PhoneNumber:  input.PhoneNumber,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Account{}).Unscoped().
			Where("user_name = ? OR email = ?", account.UserName, account.Email).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return errAccountTaken
		}

		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
		account.CustomerID = &customer.CustomerID
		return tx.Create(&account).Error
	})
	if errors.Is(err, errAccountTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
		utils.APIResponse(c, http.StatusBadRequest, false, errAccountTaken.Error(), nil)
		return
	}
	if err != nil {
		serverError(c, err, "Failed to register account")
		return
	}

	account.Customer = &customer
	utils.Log.WithField("account_id", account.AccountID).Info("Account registered")
	created(c, "/api/account/profile", account.ToDTO())
}

func Login(c *gin.Context) {
	var input models.LoginInput
	if !bindInput(c, &input) {
		return
	}

	ident := strings.TrimSpace(input.UsernameOrEmail)
	var account models.Account
	err := config.DB.Preload("Customer").Preload("Staff").
		Where("user_name = ? OR email = ?", ident, strings.ToLower(ident)).
		First(&account).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		serverError(c, err, "Failed to load account")
		return
	}
	if err != nil || !utils.CheckPassword(input.Password, account.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid username or password", nil)
		return
	}

	completeLogin(c, &account, input.FCMToken)
}

// GoogleLogin exchanges a Google access token for our JWT. Only accounts
// already registered with the same email can sign in this way.
func GoogleLogin(c *gin.Context) {
	var input models.GoogleLoginInput
	if !bindInput(c, &input) {
		return
	}

	guser, err := utils.FetchGoogleUser(c.Request.Context(), input.AccessToken)
	if err != nil {
		utils.Log.WithError(err).Warn("Google login rejected")
		utils.APIResponse(c, http.StatusUnauthorized, false, "Google sign-in failed", nil)
		return
	}

	var account models.Account
	err = config.DB.Preload("Customer").Preload("Staff").
		Where("email = ?", strings.ToLower(guser.Email)).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "No account for "+guser.Email, nil)
		return
	}
	if err != nil {
		serverError(c, err, "Failed to load account")
		return
	}

	completeLogin(c, &account, input.FCMToken)
}

// completeLogin stores the device token, if any, and issues the JWT.
func completeLogin(c *gin.Context, account *models.Account, fcmToken string) {
	if fcmToken != "" && fcmToken != account.FCMToken {
		if err := config.DB.Model(account).Update("fcm_token", fcmToken).Error; err != nil {
			serverError(c, err, "Failed to save device token")
			return
		}
	}

	token, err := utils.GenerateToken(account.AccountID, account.Role.String())
	if err != nil {
		serverError(c, err, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"account": account.ToDTO(),
	})
}
