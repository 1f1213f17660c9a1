package handlers

import (
	"net/http"

	"campusride/internal/http/middleware"
	"campusride/internal/repositories"
	"campusride/internal/services"

	"github.com/gin-gonic/gin"
)

func (a API) adminService(c *gin.Context) services.AdminService {
	return services.AdminService{
		DB:         a.DB,
		DriverRepo: repositories.DriverRepo{DB: a.DB},
		UserRepo:   repositories.UserRepo{DB: a.DB},
		PNRRepo:    repositories.PNRRepo{DB: a.DB},
		Notifier:   a.Notifier,
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/admin/drivers
func (a API) ListDrivers(c *gin.Context) {
	drivers, err := a.adminService(c).ListDrivers()
	if err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "drivers": drivers})
}

// GET /api/admin/users
func (a API) ListUsers(c *gin.Context) {
	users, err := a.adminService(c).ListUsers()
	if err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// PATCH /api/admin/drivers/:id/verify
func (a API) VerifyDriver(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if !a.bindJSON(c, &in) {
		return
	}

	driver, err := a.adminService(c).VerifyDriver(c.Param("id"), in.Status)
	if err != nil {
		a.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Driver status updated successfully",
		"driver": gin.H{
			"id":     driver.ID,
			"status": driver.Status,
		},
	})
}

// GET /api/admin/dashboard/stats
func (a API) DashboardStats(c *gin.Context) {
	stats, err := a.adminService(c).GetDashboardStats()
	if err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
