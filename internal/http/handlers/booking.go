package handlers

import (
	"net/http"

	"campusride/internal/http/middleware"
	"campusride/internal/repositories"
	"campusride/internal/services"

	"github.com/gin-gonic/gin"
)

func (a API) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		DB:        a.DB,
		PNRRepo:   repositories.PNRRepo{DB: a.DB},
		Notifier:  a.Notifier,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /booking/create
func (a API) CreateBooking(c *gin.Context) {
	var in services.BookingInput
	if !a.bindJSON(c, &in) {
		return
	}

	pnr, err := a.bookingService(c).CreateBooking(in)
	if err != nil {
		a.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"pnr":     pnr,
	})
}

// GET /booking/pnr/:pnr
func (a API) GetBooking(c *gin.Context) {
	detail, err := a.bookingService(c).GetBooking(c.Param("pnr"))
	if err != nil {
		a.respondDomainError(c, err)
		return
	}

	booking := gin.H{
		"pnr":          detail.PNR.PNRID,
		"locationFrom": detail.PNR.LocationFrom,
		"locationTo":   detail.PNR.LocationTo,
		"date":         detail.PNR.Date,
		"time":         detail.PNR.Time,
		"distance":     detail.PNR.Distance,
		"price":        detail.PNR.Price,
		"status":       detail.PNR.Status,
	}
	if detail.Driver != nil {
		booking["driver"] = gin.H{
			"name":          detail.Driver.Name,
			"vehicleNumber": detail.Driver.VehicleNumber,
			"vehicleType":   detail.Driver.VehicleType,
			"phoneNumber":   detail.Driver.PhoneNumber,
		}
	} else {
		booking["driver"] = nil
	}
	if detail.User != nil {
		booking["user"] = gin.H{
			"name":        detail.User.Name,
			"phoneNumber": detail.User.PhoneNumber,
		}
	} else {
		booking["user"] = nil
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// GET /booking/user/:userId
func (a API) ListUserBookings(c *gin.Context) {
	details, err := a.bookingService(c).ListUserBookings(c.Param("userId"))
	if err != nil {
		a.respondDomainError(c, err)
		return
	}

	bookings := make([]gin.H, 0, len(details))
	for _, d := range details {
		item := gin.H{
			"pnr":          d.PNR.PNRID,
			"locationFrom": d.PNR.LocationFrom,
			"locationTo":   d.PNR.LocationTo,
			"date":         d.PNR.Date,
			"time":         d.PNR.Time,
			"distance":     d.PNR.Distance,
			"price":        d.PNR.Price,
			"status":       d.PNR.Status,
		}
		if d.Driver != nil {
			item["driver"] = gin.H{
				"name":          d.Driver.Name,
				"vehicleNumber": d.Driver.VehicleNumber,
				"vehicleType":   d.Driver.VehicleType,
				"phoneNumber":   d.Driver.PhoneNumber,
			}
		} else {
			item["driver"] = nil
		}
		bookings = append(bookings, item)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}

// POST /booking/rate
func (a API) RateDriver(c *gin.Context) {
	var in services.RatingInput
	if !a.bindJSON(c, &in) {
		return
	}

	svc := services.RatingService{
		DB:         a.DB,
		DriverRepo: repositories.DriverRepo{DB: a.DB},
		RequestID:  middleware.GetRequestID(c),
	}
	newRating, err := svc.RateDriver(in)
	if err != nil {
		a.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Driver rated successfully",
		"newRating": newRating,
	})
}

// GET /booking/pnr/:pnr/e-ticket
func (a API) GetBookingETicket(c *gin.Context) {
	svc := services.TicketService{
		PNRRepo:   repositories.PNRRepo{DB: a.DB},
		RequestID: middleware.GetRequestID(c),
	}
	data, filename, err := svc.GenerateETicket(c.Param("pnr"))
	if err != nil {
		a.respondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
