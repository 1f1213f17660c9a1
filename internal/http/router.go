package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"campusride/internal/http/handlers"
	"campusride/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(a handlers.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	// Booking core
	booking := r.Group("/booking")
	{
		booking.POST("/create", a.CreateBooking)
		booking.GET("/pnr/:pnr", a.GetBooking)
		booking.GET("/pnr/:pnr/e-ticket", a.GetBookingETicket)
		booking.GET("/user/:userId", a.ListUserBookings)
		booking.POST("/rate", a.RateDriver)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", a.Health)
		apiGroup.GET("/db-check", a.DBCheck)

		auth := apiGroup.Group("/auth")
		auth.POST("/signup", a.Signup)
		auth.GET("/user-exists/:email", a.CheckUserExistence)
		auth.POST("/login", a.AdminLogin)

		schedules := apiGroup.Group("/schedules")
		schedules.POST("", a.AddSchedule)
		schedules.GET("/driver/:driverId", a.ListDriverSchedules)
		schedules.POST("/reserve", a.ReserveSchedule)
		schedules.PUT("/:scheduleId/cancel", a.CancelSchedule)
		schedules.POST("/:scheduleId/send-otp", a.SendBoardingOTP)
		schedules.POST("/:scheduleId/verify-otp", a.VerifyBoardingOTP)

		apiGroup.POST("/booking/check-availability", a.CheckAvailability)
		apiGroup.GET("/pnr/schedule/:scheduleId", a.GetPNRBySchedule)

		admin := apiGroup.Group("/admin", middleware.RequireAdmin(a.Env.JWTSecret))
		admin.GET("/drivers", a.ListDrivers)
		admin.GET("/users", a.ListUsers)
		admin.PATCH("/drivers/:id/verify", a.VerifyDriver)
		admin.GET("/dashboard/stats", a.DashboardStats)
	}

	return r
}
