package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"campusride/internal/domain"
	"campusride/internal/domain/models"
	"campusride/internal/repositories"
	"campusride/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	DB         *sql.DB
	DriverRepo repositories.DriverRepo
	UserRepo   repositories.UserRepo
	AdminRepo  repositories.AdminRepo
	JWTSecret  string
	RequestID  string
}

type SignupInput struct {
	UserType        string `json:"userType"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DateOfBirth     string `json:"dateOfBirth"`
	PhoneNumber     string `json:"phoneNumber"`
	Gender          string `json:"gender"`
	LicenseNumber   string `json:"licenseNumber"`
	LicenseValidity string `json:"licenseValidity"`
	VehicleNumber   string `json:"vehicleNumber"`
	VehicleType     string `json:"vehicleType"`
	IsAvailable     bool   `json:"isAvailable"`
}

// SignupResult reports what was created and as which account type.
type SignupResult struct {
	UserType string
	Driver   *models.Driver
	User     *models.User
}

// Signup registers either a driver or a user account. Drivers start inactive
// (pending admin verification) with the 5.0 baseline rating; users start
// active.
func (s AuthService) Signup(in SignupInput) (SignupResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || strings.TrimSpace(in.FirstName) == "" {
		return SignupResult{}, domain.ValidationError{Field: "email, firstName", Msg: "missing or empty required fields"}
	}

	switch strings.ToLower(strings.TrimSpace(in.UserType)) {
	case "driver":
		if strings.TrimSpace(in.LicenseNumber) == "" || strings.TrimSpace(in.VehicleNumber) == "" {
			return SignupResult{}, domain.ValidationError{
				Field: "licenseNumber, vehicleNumber",
				Msg:   "missing or empty required fields",
			}
		}
		if _, err := s.DriverRepo.GetByEmail(email); err == nil {
			return SignupResult{}, domain.ConflictError{Resource: "driver", Msg: "email already registered"}
		} else if !errors.Is(err, sql.ErrNoRows) {
			return SignupResult{}, domain.InternalError{Err: err}
		}

		d := models.Driver{
			ID:              uuid.NewString(),
			FirstName:       strings.TrimSpace(in.FirstName),
			LastName:        strings.TrimSpace(in.LastName),
			Email:           email,
			PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
			DateOfBirth:     strings.TrimSpace(in.DateOfBirth),
			Gender:          strings.TrimSpace(in.Gender),
			LicenseNumber:   strings.TrimSpace(in.LicenseNumber),
			LicenseValidity: strings.TrimSpace(in.LicenseValidity),
			VehicleNumber:   strings.TrimSpace(in.VehicleNumber),
			VehicleType:     strings.TrimSpace(in.VehicleType),
			IsAvailable:     in.IsAvailable,
			Status:          models.DriverStatusInactive,
			Rating:          5.0,
		}
		if err := s.DriverRepo.Insert(d); err != nil {
			return SignupResult{}, domain.InternalError{Msg: "failed to register driver", Err: err}
		}
		utils.LogEvent(s.RequestID, "auth", "driver_registered", "driver="+d.ID)
		return SignupResult{UserType: "driver", Driver: &d}, nil

	case "user":
		if _, err := s.UserRepo.GetByEmail(email); err == nil {
			return SignupResult{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
		} else if !errors.Is(err, sql.ErrNoRows) {
			return SignupResult{}, domain.InternalError{Err: err}
		}

		u := models.User{
			ID:          uuid.NewString(),
			FirstName:   strings.TrimSpace(in.FirstName),
			LastName:    strings.TrimSpace(in.LastName),
			Email:       email,
			PhoneNumber: strings.TrimSpace(in.PhoneNumber),
			Gender:      strings.TrimSpace(in.Gender),
			Status:      models.UserStatusActive,
		}
		if err := s.UserRepo.Insert(u); err != nil {
			return SignupResult{}, domain.InternalError{Msg: "failed to register user", Err: err}
		}
		utils.LogEvent(s.RequestID, "auth", "user_registered", "user="+u.ID)
		return SignupResult{UserType: "user", User: &u}, nil

	default:
		return SignupResult{}, domain.ValidationError{Field: "userType", Msg: "must be driver or user"}
	}
}

// Existence describes which account type an email belongs to, if any.
type Existence struct {
	Exists   bool   `json:"exists"`
	UserType string `json:"userType,omitempty"`
	UserName string `json:"userName,omitempty"`
	ID       string `json:"id,omitempty"`
	Status   string `json:"status,omitempty"`
}

// CheckUser resolves an email against both account tables.
func (s AuthService) CheckUser(email string) (Existence, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Existence{}, domain.ValidationError{Field: "email", Msg: "missing or empty required fields"}
	}

	if d, err := s.DriverRepo.GetByEmail(email); err == nil {
		return Existence{Exists: true, UserType: "driver", UserName: d.FullName(), ID: d.ID, Status: d.Status}, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return Existence{}, domain.InternalError{Err: err}
	}

	if u, err := s.UserRepo.GetByEmail(email); err == nil {
		return Existence{Exists: true, UserType: "user", UserName: u.FullName(), ID: u.ID}, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return Existence{}, domain.InternalError{Err: err}
	}

	return Existence{Exists: false}, nil
}

// AdminLogin verifies credentials and issues a signed 24h token.
func (s AuthService) AdminLogin(adminName, password string) (string, models.Admin, error) {
	admin, err := s.AdminRepo.GetByName(strings.TrimSpace(adminName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.Admin{}, domain.ValidationError{Msg: "invalid credentials"}
		}
		return "", models.Admin{}, domain.InternalError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", models.Admin{}, domain.ValidationError{Msg: "invalid credentials"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.AdminID,
		"role":     "admin",
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(s.JWTSecret))
	if err != nil {
		return "", models.Admin{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "admin_login", "admin="+admin.AdminName)
	return signed, admin, nil
}
