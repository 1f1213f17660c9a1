package handlers

import (
	"net/http"

	"campusride/internal/http/middleware"
	"campusride/internal/repositories"
	"campusride/internal/services"

	"github.com/gin-gonic/gin"
)

func (a API) scheduleService(c *gin.Context) services.ScheduleService {
	return services.ScheduleService{
		DB:           a.DB,
		ScheduleRepo: repositories.ScheduleRepo{DB: a.DB},
		PNRRepo:      repositories.PNRRepo{DB: a.DB},
		DriverRepo:   repositories.DriverRepo{DB: a.DB},
		OTP:          a.OTP,
		Notifier:     a.Notifier,
		RequestID:    middleware.GetRequestID(c),
	}
}

// POST /api/schedules
func (a API) AddSchedule(c *gin.Context) {
	var in services.ScheduleInput
	if !a.bindJSON(c, &in) {
		return
	}

	sched, err := a.scheduleService(c).AddSchedule(in)
	if err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "schedule": sched})
}

// GET /api/schedules/driver/:driverId
func (a API) ListDriverSchedules(c *gin.Context) {
	schedules, err := a.scheduleService(c).ListDriverSchedules(c.Param("driverId"))
	if err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "schedules": schedules})
}

// POST /api/schedules/reserve
func (a API) ReserveSchedule(c *gin.Context) {
	var in struct {
		ScheduleID string `json:"scheduleId"`
	}
	if !a.bindJSON(c, &in) {
		return
	}

	if err := a.scheduleService(c).ReserveSchedule(in.ScheduleID); err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule reserved"})
}

// PUT /api/schedules/:scheduleId/cancel
func (a API) CancelSchedule(c *gin.Context) {
	if err := a.scheduleService(c).CancelSchedule(c.Param("scheduleId")); err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule cancelled"})
}

// POST /api/booking/check-availability
func (a API) CheckAvailability(c *gin.Context) {
	var in struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if !a.bindJSON(c, &in) {
		return
	}

	drivers, err := a.scheduleService(c).CheckAvailability(in.Date, in.Time)
	if err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "drivers": drivers})
}

// GET /api/pnr/schedule/:scheduleId
func (a API) GetPNRBySchedule(c *gin.Context) {
	pnrs, err := a.scheduleService(c).GetPNRBySchedule(c.Param("scheduleId"))
	if err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pnrs": pnrs})
}

// POST /api/schedules/:scheduleId/send-otp
func (a API) SendBoardingOTP(c *gin.Context) {
	if err := a.scheduleService(c).SendBoardingOTP(c.Request.Context(), c.Param("scheduleId")); err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Boarding code sent"})
}

// POST /api/schedules/:scheduleId/verify-otp
func (a API) VerifyBoardingOTP(c *gin.Context) {
	var in struct {
		OTP string `json:"otp"`
	}
	if !a.bindJSON(c, &in) {
		return
	}

	if err := a.scheduleService(c).VerifyBoardingOTP(c.Request.Context(), c.Param("scheduleId"), in.OTP); err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Boarding code verified"})
}
