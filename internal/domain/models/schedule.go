package models

import "time"

// Schedule statuses. A booking may only be created against a reserved
// schedule; the reserved→drivery transition is a conditional update owned by
// the booking transaction.
const (
	ScheduleStatusAvailable = "available"
	ScheduleStatusReserved  = "reserved"
	ScheduleStatusDrivery   = "drivery"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
)

type Schedule struct {
	ID        string    `json:"id"`
	DriverID  string    `json:"driverId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TerminalScheduleStatus reports whether a schedule can still change state.
func TerminalScheduleStatus(status string) bool {
	return status == ScheduleStatusCompleted || status == ScheduleStatusCancelled
}
