package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (a API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}

// GET /api/db-check
func (a API) DBCheck(c *gin.Context) {
	if err := a.DB.PingContext(c.Request.Context()); err != nil {
		a.respondError(c, http.StatusServiceUnavailable, "database unreachable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "database": "ok"})
}
