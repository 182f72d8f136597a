package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"kdos-backend/internal/config"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// notifyTimeout bounds one push notification send.
const notifyTimeout = 10 * time.Second

// paramID reads a positive id from the named path parameter. It writes a
// 400 and returns false when the value is not a valid id.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return 0, false
	}
	return id, true
}

func bindInput(c *gin.Context, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return false
	}
	return true
}

// notFound answers 404 with an empty body.
func notFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

func serverError(c *gin.Context, err error, message string) {
	utils.Log.WithError(err).
		WithField("request_id", c.GetString("requestID")).
		Error(message)
	_ = c.Error(err)
	utils.APIResponse(c, http.StatusInternalServerError, false, message, nil)
}

// handleLookupError turns a failed First/Take into 404 or 500.
func handleLookupError(c *gin.Context, err error, message string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c)
		return
	}
	serverError(c, err, message)
}

// deleteFailed reports a failed delete. Rows still referenced elsewhere
// answer 409.
func deleteFailed(c *gin.Context, err error, message string) {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		conflictReferenced(c)
		return
	}
	serverError(c, err, message)
}

// reference names a column in another table that points at a row.
type reference struct {
	model  any
	column string
}

// stillReferenced answers 409 when any reference still points at id and
// reports whether the delete must stop.
func stillReferenced(c *gin.Context, id uint, refs ...reference) bool {
	for _, ref := range refs {
		var n int64
		if err := config.DB.Model(ref.model).Where(ref.column+" = ?", id).Count(&n).Error; err != nil {
			serverError(c, err, "Failed to check references")
			return true
		}
		if n > 0 {
			conflictReferenced(c)
			return true
		}
	}
	return false
}

func conflictReferenced(c *gin.Context) {
	utils.APIResponse(c, http.StatusConflict, false, "Record is still referenced by other data", nil)
}

func created(c *gin.Context, location string, body any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}

// requireRef loads the row with primary key id into dest. A missing row is
// a client error: 400 naming the reference.
func requireRef(c *gin.Context, dest any, id uint, name string) bool {
	err := config.DB.Take(dest, id).Error
	if err == nil {
		return true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.APIResponse(c, http.StatusBadRequest, false, fmt.Sprintf("%s %d not found", name, id), nil)
		return false
	}
	serverError(c, err, "Failed to load "+name)
	return false
}

func mapDTOs[M any, D any](items []M, fn func(M) D) []D {
	out := make([]D, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
