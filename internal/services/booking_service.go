package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"campusride/internal/domain"
	"campusride/internal/domain/models"
	"campusride/internal/notify"
	"campusride/internal/repositories"
	"campusride/internal/utils"

	"github.com/google/uuid"
)

type BookingService struct {
	DB        *sql.DB
	PNRRepo   repositories.PNRRepo
	Notifier  *notify.Notifier
	RequestID string
}

type BookingInput struct {
	ScheduleID   string  `json:"scheduleId"`
	UserID       string  `json:"userId"`
	DriverID     string  `json:"driverId"`
	LocationFrom string  `json:"locationFrom"`
	LocationTo   string  `json:"locationTo"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Distance     float64 `json:"distance"`
	Price        float64 `json:"price"`
}

func (in BookingInput) missingFields() []string {
	missing := []string{}
	text := []struct {
		name  string
		value string
	}{
		{"scheduleId", in.ScheduleID},
		{"userId", in.UserID},
		{"driverId", in.DriverID},
		{"locationFrom", in.LocationFrom},
		{"locationTo", in.LocationTo},
		{"date", in.Date},
		{"time", in.Time},
	}
	for _, f := range text {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if in.Distance <= 0 {
		missing = append(missing, "distance")
	}
	if in.Price <= 0 {
		missing = append(missing, "price")
	}
	return missing
}

// CreateBooking runs the booking transaction: insert the PNR, transition the
// schedule reserved→drivery, debit the user's wallet, then resolve both
// parties. All of it commits together or not at all. Emails go out only
// after a successful commit and never change the result.
func (s BookingService) CreateBooking(in BookingInput) (string, error) {
	if missing := in.missingFields(); len(missing) > 0 {
		return "", domain.ValidationError{
			Field: strings.Join(missing, ", "),
			Msg:   "missing or empty required fields",
		}
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return "", domain.InternalError{Msg: "failed to start transaction", Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	pnrID := uuid.NewString()

	if _, err := tx.Exec(`
		INSERT INTO pnrs (pnr_id, schedule_id, user_id, driver_id, location_from, location_to,
			date, time, distance, price, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pnrID, in.ScheduleID, in.UserID, in.DriverID, in.LocationFrom, in.LocationTo,
		in.Date, in.Time, in.Distance, in.Price, models.PNRStatusActive,
	); err != nil {
		return "", domain.InternalError{Msg: "failed to create booking record", Err: err}
	}

	// Conditional transition: only a reserved schedule may accept a booking.
	// Zero affected rows aborts the whole transaction, so a losing concurrent
	// caller leaves no PNR and no wallet debit behind.
	res, err := tx.Exec(`UPDATE schedules SET status = ? WHERE id = ? AND status = ?`,
		models.ScheduleStatusDrivery, in.ScheduleID, models.ScheduleStatusReserved)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to update schedule", Err: err}
	}
	if n, err := res.RowsAffected(); err != nil {
		return "", domain.InternalError{Err: err}
	} else if n == 0 {
		return "", domain.ConflictError{Resource: "schedule", Msg: "not in reserved status"}
	}

	// Relative debit, not read-modify-write.
	res, err = tx.Exec(`UPDATE users SET wallet = wallet - ? WHERE id = ?`, in.Price, in.UserID)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to debit wallet", Err: err}
	}
	if n, err := res.RowsAffected(); err != nil {
		return "", domain.InternalError{Err: err}
	} else if n == 0 {
		return "", domain.NotFoundError{Resource: "user"}
	}

	driver, user, err := resolveParties(tx, in.DriverID, in.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.NotFoundError{Resource: "driver or user"}
		}
		return "", domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return "", domain.InternalError{Msg: "failed to commit booking", Err: err}
	}
	committed = true

	pnr := models.PNR{
		PNRID:        pnrID,
		ScheduleID:   in.ScheduleID,
		UserID:       in.UserID,
		DriverID:     in.DriverID,
		LocationFrom: in.LocationFrom,
		LocationTo:   in.LocationTo,
		Date:         in.Date,
		Time:         in.Time,
		Distance:     in.Distance,
		Price:        in.Price,
		Status:       models.PNRStatusActive,
	}

	utils.LogEvent(s.RequestID, "booking", "created",
		fmt.Sprintf("pnr=%s schedule=%s user=%s", pnrID, in.ScheduleID, in.UserID))

	if s.Notifier != nil {
		go s.dispatchBookingEmails(pnr, driver, user)
	}

	return pnrID, nil
}

func resolveParties(tx *sql.Tx, driverID, userID string) (models.Driver, models.User, error) {
	var d models.Driver
	err := tx.QueryRow(`
		SELECT id, first_name, last_name, email, phone_number, vehicle_number, vehicle_type
		FROM drivers WHERE id = ?`, driverID).
		Scan(&d.ID, &d.FirstName, &d.LastName, &d.Email, &d.PhoneNumber, &d.VehicleNumber, &d.VehicleType)
	if err != nil {
		return models.Driver{}, models.User{}, err
	}

	var u models.User
	err = tx.QueryRow(`
		SELECT id, first_name, last_name, email, phone_number
		FROM users WHERE id = ?`, userID).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber)
	if err != nil {
		return models.Driver{}, models.User{}, err
	}
	return d, u, nil
}

// dispatchBookingEmails sends both notifications concurrently and logs each
// outcome on its own. Failures here never touch the committed booking.
func (s BookingService) dispatchBookingEmails(pnr models.PNR, driver models.Driver, user models.User) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.Notifier.Send(s.RequestID, user.Email, notify.BookingConfirmation(pnr, driver)); err != nil {
			utils.LogError(s.RequestID, "booking", "user_email", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.Notifier.Send(s.RequestID, driver.Email, notify.DriverTripNotice(pnr, user)); err != nil {
			utils.LogError(s.RequestID, "booking", "driver_email", err)
		}
	}()

	wg.Wait()
}

// GetBooking looks up a PNR by its opaque reference.
func (s BookingService) GetBooking(pnrID string) (models.BookingDetail, error) {
	detail, err := s.pnrs().GetByReference(strings.TrimSpace(pnrID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingDetail{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.BookingDetail{}, domain.InternalError{Err: err}
	}
	return detail, nil
}

// ListUserBookings returns the user's bookings newest first. No bookings is
// an empty list, not an error.
func (s BookingService) ListUserBookings(userID string) ([]models.BookingDetail, error) {
	out, err := s.pnrs().ListByUser(strings.TrimSpace(userID))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s BookingService) pnrs() repositories.PNRRepo {
	if s.PNRRepo.DB != nil {
		return s.PNRRepo
	}
	return repositories.PNRRepo{DB: s.DB}
}
