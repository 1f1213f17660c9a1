package handlers

import (
	"database/sql"
	"net/http"

	"campusride/internal/config"
	"campusride/internal/domain"
	"campusride/internal/http/middleware"
	"campusride/internal/notify"
	"campusride/internal/otp"

	"github.com/gin-gonic/gin"
)

// API bundles the dependencies every handler needs. Everything is injected
// at startup; handlers never reach for process globals.
type API struct {
	Env      config.Env
	DB       *sql.DB
	Notifier *notify.Notifier
	OTP      otp.Store
}

// respondError emits the standard failure payload. Internal detail is only
// attached outside production.
func (a API) respondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"success":    false,
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil && !a.Env.IsProduction() {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// respondDomainError maps domain errors to HTTP statuses in one place.
func (a API) respondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		a.respondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		a.respondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		a.respondError(c, http.StatusConflict, err.Error(), nil)
	default:
		a.respondError(c, http.StatusInternalServerError, "internal server error", err)
	}
}

// bindJSON ensures body is present and parsable.
func (a API) bindJSON(c *gin.Context, dst any) bool {
	if c.Request.Body == nil {
		a.respondError(c, http.StatusBadRequest, "empty request body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		a.respondError(c, http.StatusBadRequest, "invalid request payload", err)
		return false
	}
	return true
}
