package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-system/services"
	"github.com/yeremiapane/restaurant-system/utils"
)

var (
	ErrInvalidTableID = errors.New("invalid table_id")
	ErrInvalidStatus  = errors.New("status must be available or reserved")
	ErrInvalidView    = errors.New("view must be all, kitchen or floor")
	errInternal       = errors.New("internal server error")
)

// statusFor maps a service error to the HTTP status it is answered with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes the error envelope. Store failures are logged and
// answered without leaking their details.
func respondServiceError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.ErrorLogger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		utils.RespondError(c, code, errInternal)
		return
	}
	utils.RespondError(c, code, err)
}

// parseID reads a positive numeric id. Empty input yields 0.
func parseID(raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidTableID
	}
	return uint(id), nil
}
