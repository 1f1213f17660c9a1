package services

import (
	"database/sql"
	"errors"
	"strings"

	"campusride/internal/domain"
	"campusride/internal/domain/models"
	"campusride/internal/notify"
	"campusride/internal/repositories"
	"campusride/internal/utils"
)

type AdminService struct {
	DB         *sql.DB
	DriverRepo repositories.DriverRepo
	UserRepo   repositories.UserRepo
	PNRRepo    repositories.PNRRepo
	Notifier   *notify.Notifier
	RequestID  string
}

func (s AdminService) ListDrivers() ([]models.Driver, error) {
	out, err := s.DriverRepo.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s AdminService) ListUsers() ([]models.User, error) {
	out, err := s.UserRepo.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// VerifyDriver updates a driver's status and sends a best-effort
// notification email; the status change stands regardless of delivery.
func (s AdminService) VerifyDriver(driverID, status string) (models.Driver, error) {
	status = strings.TrimSpace(status)
	if status != models.DriverStatusActive && status != models.DriverStatusInactive {
		return models.Driver{}, domain.ValidationError{Field: "status", Msg: "must be active or inactive"}
	}

	n, err := s.DriverRepo.UpdateStatus(strings.TrimSpace(driverID), status)
	if err != nil {
		return models.Driver{}, domain.InternalError{Msg: "failed to update driver status", Err: err}
	}
	if n == 0 {
		// re-read to tell absent apart from a no-op update
		if _, err := s.DriverRepo.GetByID(driverID); errors.Is(err, sql.ErrNoRows) {
			return models.Driver{}, domain.NotFoundError{Resource: "driver"}
		}
	}

	driver, err := s.DriverRepo.GetByID(driverID)
	if err != nil {
		return models.Driver{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "admin", "driver_verified", "driver="+driver.ID+" status="+driver.Status)

	if s.Notifier != nil {
		go func() {
			if err := s.Notifier.Send(s.RequestID, driver.Email, notify.DriverVerification(driver)); err != nil {
				utils.LogError(s.RequestID, "admin", "verification_email", err)
			}
		}()
	}
	return driver, nil
}

// DashboardStats aggregates the counters the admin dashboard shows.
type DashboardStats struct {
	TotalDrivers      int64 `json:"totalDrivers"`
	ActiveDrivers     int64 `json:"activeDrivers"`
	PendingDrivers    int64 `json:"pendingDrivers"`
	TotalUsers        int64 `json:"totalUsers"`
	ActiveUsers       int64 `json:"activeUsers"`
	TotalBookings     int64 `json:"totalBookings"`
	ActiveBookings    int64 `json:"activeBookings"`
	CompletedBookings int64 `json:"completedBookings"`
}

func (s AdminService) GetDashboardStats() (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalDrivers, err = s.DriverRepo.CountByStatus(""); err != nil {
		return stats, domain.InternalError{Err: err}
	}
	if stats.ActiveDrivers, err = s.DriverRepo.CountByStatus(models.DriverStatusActive); err != nil {
		return stats, domain.InternalError{Err: err}
	}
	if stats.PendingDrivers, err = s.DriverRepo.CountByStatus(models.DriverStatusInactive); err != nil {
		return stats, domain.InternalError{Err: err}
	}
	if stats.TotalUsers, err = s.UserRepo.CountByStatus(""); err != nil {
		return stats, domain.InternalError{Err: err}
	}
	if stats.ActiveUsers, err = s.UserRepo.CountByStatus(models.UserStatusActive); err != nil {
		return stats, domain.InternalError{Err: err}
	}
	if stats.TotalBookings, err = s.PNRRepo.CountByStatus(""); err != nil {
		return stats, domain.InternalError{Err: err}
	}
	if stats.ActiveBookings, err = s.PNRRepo.CountByStatus(models.PNRStatusActive); err != nil {
		return stats, domain.InternalError{Err: err}
	}
	if stats.CompletedBookings, err = s.PNRRepo.CountByStatus(models.PNRStatusCompleted); err != nil {
		return stats, domain.InternalError{Err: err}
	}
	return stats, nil
}
