package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campusride/internal/domain"
	"campusride/internal/domain/models"
	"campusride/internal/notify"
	"campusride/internal/otp"
	"campusride/internal/repositories"
	"campusride/internal/utils"

	"github.com/google/uuid"
)

type ScheduleService struct {
	DB           *sql.DB
	ScheduleRepo repositories.ScheduleRepo
	PNRRepo      repositories.PNRRepo
	DriverRepo   repositories.DriverRepo
	OTP          otp.Store
	Notifier     *notify.Notifier
	RequestID    string
}

type ScheduleInput struct {
	DriverID string `json:"driverId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// AddSchedule creates an open run for a driver.
func (s ScheduleService) AddSchedule(in ScheduleInput) (models.Schedule, error) {
	missing := []string{}
	for _, f := range []struct{ name, value string }{
		{"driverId", in.DriverID}, {"date", in.Date}, {"time", in.Time},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return models.Schedule{}, domain.ValidationError{
			Field: strings.Join(missing, ", "),
			Msg:   "missing or empty required fields",
		}
	}

	if _, err := s.drivers().GetByID(in.DriverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Schedule{}, domain.NotFoundError{Resource: "driver"}
		}
		return models.Schedule{}, domain.InternalError{Err: err}
	}

	sched := models.Schedule{
		ID:       uuid.NewString(),
		DriverID: in.DriverID,
		Date:     strings.TrimSpace(in.Date),
		Time:     strings.TrimSpace(in.Time),
		Status:   models.ScheduleStatusAvailable,
	}
	if err := s.schedules().Insert(sched); err != nil {
		return models.Schedule{}, domain.InternalError{Msg: "failed to create schedule", Err: err}
	}

	utils.LogEvent(s.RequestID, "schedule", "created",
		fmt.Sprintf("schedule=%s driver=%s date=%s time=%s", sched.ID, sched.DriverID, sched.Date, sched.Time))
	return sched, nil
}

func (s ScheduleService) ListDriverSchedules(driverID string) ([]models.Schedule, error) {
	out, err := s.schedules().ListByDriver(strings.TrimSpace(driverID))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// ReserveSchedule moves an available schedule into reserved status, the
// precondition for booking creation. A zero-row update means the slot was
// taken or the schedule does not exist.
func (s ScheduleService) ReserveSchedule(scheduleID string) error {
	n, err := s.schedules().TransitionStatus(strings.TrimSpace(scheduleID),
		models.ScheduleStatusAvailable, models.ScheduleStatusReserved)
	if err != nil {
		return domain.InternalError{Msg: "failed to reserve schedule", Err: err}
	}
	if n == 0 {
		return domain.ConflictError{Resource: "schedule", Msg: "not available for reservation"}
	}
	utils.LogEvent(s.RequestID, "schedule", "reserved", "schedule="+scheduleID)
	return nil
}

func (s ScheduleService) CancelSchedule(scheduleID string) error {
	n, err := s.schedules().Cancel(strings.TrimSpace(scheduleID))
	if err != nil {
		return domain.InternalError{Msg: "failed to cancel schedule", Err: err}
	}
	if n == 0 {
		// distinguish absent from terminal for the caller
		if _, err := s.schedules().GetByID(scheduleID); errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "schedule"}
		}
		return domain.ConflictError{Resource: "schedule", Msg: "already in a terminal status"}
	}
	utils.LogEvent(s.RequestID, "schedule", "cancelled", "schedule="+scheduleID)
	return nil
}

// CheckAvailability lists verified drivers with an open slot at date/time.
func (s ScheduleService) CheckAvailability(date, tm string) ([]models.Driver, error) {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(tm) == "" {
		return nil, domain.ValidationError{Field: "date, time", Msg: "missing or empty required fields"}
	}
	out, err := s.schedules().AvailableDrivers(strings.TrimSpace(date), strings.TrimSpace(tm))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s ScheduleService) GetPNRBySchedule(scheduleID string) ([]models.PNR, error) {
	out, err := s.pnrs().ListBySchedule(strings.TrimSpace(scheduleID))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// SendBoardingOTP issues a single-use boarding code for a schedule and mails
// it to the booking user.
func (s ScheduleService) SendBoardingOTP(ctx context.Context, scheduleID string) error {
	sched, err := s.schedules().GetByID(strings.TrimSpace(scheduleID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "schedule"}
		}
		return domain.InternalError{Err: err}
	}

	bookings, err := s.pnrs().ListBySchedule(sched.ID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if len(bookings) == 0 {
		return domain.ConflictError{Resource: "schedule", Msg: "no booking to verify"}
	}

	code, err := s.OTP.Generate(ctx, sched.ID)
	if err != nil {
		return domain.InternalError{Msg: "failed to issue boarding code", Err: err}
	}

	var email string
	err = s.DB.QueryRow(`SELECT email FROM users WHERE id = ?`, bookings[0].UserID).Scan(&email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "user"}
		}
		return domain.InternalError{Err: err}
	}

	if s.Notifier != nil {
		msg := notify.Message{
			Subject: "Your Boarding Code",
			HTML: fmt.Sprintf(`<p>Your boarding code is <strong>%s</strong>. It expires in %s.</p>`,
				code, otp.TTL),
		}
		go func() {
			if err := s.Notifier.Send(s.RequestID, email, msg); err != nil {
				utils.LogError(s.RequestID, "schedule", "otp_email", err)
			}
		}()
	}

	utils.LogEvent(s.RequestID, "schedule", "otp_issued", "schedule="+sched.ID)
	return nil
}

// VerifyBoardingOTP checks a boarding code. Codes are single use; a second
// verification with the same code fails.
func (s ScheduleService) VerifyBoardingOTP(ctx context.Context, scheduleID, code string) error {
	if strings.TrimSpace(code) == "" {
		return domain.ValidationError{Field: "otp", Msg: "missing or empty required fields"}
	}
	err := s.OTP.Verify(ctx, strings.TrimSpace(scheduleID), strings.TrimSpace(code))
	switch {
	case errors.Is(err, otp.ErrNotFound):
		return domain.ConflictError{Resource: "otp", Msg: "no active code for schedule"}
	case errors.Is(err, otp.ErrMismatch):
		return domain.ValidationError{Field: "otp", Msg: "incorrect code"}
	case err != nil:
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "schedule", "otp_verified", "schedule="+scheduleID)
	return nil
}

func (s ScheduleService) schedules() repositories.ScheduleRepo {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepo{DB: s.DB}
}

func (s ScheduleService) pnrs() repositories.PNRRepo {
	if s.PNRRepo.DB != nil {
		return s.PNRRepo
	}
	return repositories.PNRRepo{DB: s.DB}
}

func (s ScheduleService) drivers() repositories.DriverRepo {
	if s.DriverRepo.DB != nil {
		return s.DriverRepo
	}
	return repositories.DriverRepo{DB: s.DB}
}
