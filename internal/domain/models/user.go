package models

import "time"

const (
	UserStatusActive = "active"
)

type User struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Gender      string    `json:"gender"`
	Status      string    `json:"status"`
	Wallet      float64   `json:"wallet"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Admin is the dashboard operator account. Password is stored as a bcrypt hash.
type Admin struct {
	AdminID      int64  `json:"admin_id"`
	AdminName    string `json:"admin_name"`
	PasswordHash string `json:"-"`
}
