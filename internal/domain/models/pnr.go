package models

import "time"

// PNR statuses. A booking record is never deleted; it moves from active to a
// terminal status and keeps serving as the audit trail.
const (
	PNRStatusActive    = "active"
	PNRStatusCompleted = "completed"
	PNRStatusCancelled = "cancelled"
)

// PNR is one trip reservation. PNRID is the opaque reference handed to the
// user, distinct from the numeric primary key.
type PNR struct {
	ID           int64     `json:"id"`
	PNRID        string    `json:"pnr"`
	ScheduleID   string    `json:"schedule_id"`
	UserID       string    `json:"user_id"`
	DriverID     string    `json:"driver_id"`
	LocationFrom string    `json:"location_from"`
	LocationTo   string    `json:"location_to"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Distance     float64   `json:"distance"`
	Price        float64   `json:"price"`
	Status       string    `json:"status"`
	IsRated      bool      `json:"is_rated"`
	CreatedAt    time.Time `json:"created_at"`
}

// DriverSummary is the limited driver view embedded in booking responses.
type DriverSummary struct {
	Name          string `json:"name"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
	PhoneNumber   string `json:"phone_number"`
}

// UserSummary is the limited user view embedded in booking responses.
type UserSummary struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// BookingDetail is a PNR enriched with display fields for both parties.
type BookingDetail struct {
	PNR    PNR
	Driver *DriverSummary
	User   *UserSummary
}
