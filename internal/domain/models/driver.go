package models

import "time"

const (
	DriverStatusInactive = "inactive"
	DriverStatusActive   = "active"
)

type Driver struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	DateOfBirth     string    `json:"dateOfBirth"`
	Gender          string    `json:"gender"`
	LicenseNumber   string    `json:"licenseNumber"`
	LicenseValidity string    `json:"licenseValidity"`
	VehicleNumber   string    `json:"vehicleNumber"`
	VehicleType     string    `json:"vehicleType"`
	IsAvailable     bool      `json:"isAvailable"`
	Status          string    `json:"status"`
	Rating          float64   `json:"rating"`
	TotalRatings    int64     `json:"totalRatings"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (d Driver) FullName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}
