package repositories

import (
	"database/sql"

	"campusride/internal/domain/models"
)

type DriverRepo struct {
	DB *sql.DB
}

const driverColumns = `id, first_name, last_name, email, phone_number, date_of_birth, gender,
	license_number, license_validity, vehicle_number, vehicle_type, is_available, status,
	rating, total_ratings, created_at`

func scanDriver(row interface{ Scan(...any) error }) (models.Driver, error) {
	var d models.Driver
	err := row.Scan(
		&d.ID, &d.FirstName, &d.LastName, &d.Email, &d.PhoneNumber, &d.DateOfBirth, &d.Gender,
		&d.LicenseNumber, &d.LicenseValidity, &d.VehicleNumber, &d.VehicleType, &d.IsAvailable,
		&d.Status, &d.Rating, &d.TotalRatings, &d.CreatedAt,
	)
	return d, err
}

func (r DriverRepo) GetByID(id string) (models.Driver, error) {
	row := r.DB.QueryRow(`SELECT `+driverColumns+` FROM drivers WHERE id = ?`, id)
	return scanDriver(row)
}

func (r DriverRepo) GetByVehicleNumber(vehicleNumber string) (models.Driver, error) {
	row := r.DB.QueryRow(`SELECT `+driverColumns+` FROM drivers WHERE vehicle_number = ?`, vehicleNumber)
	return scanDriver(row)
}

func (r DriverRepo) GetByEmail(email string) (models.Driver, error) {
	row := r.DB.QueryRow(`SELECT `+driverColumns+` FROM drivers WHERE email = ?`, email)
	return scanDriver(row)
}

func (r DriverRepo) List() ([]models.Driver, error) {
	rows, err := r.DB.Query(`SELECT ` + driverColumns + ` FROM drivers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DriverRepo) Insert(d models.Driver) error {
	_, err := r.DB.Exec(`
		INSERT INTO drivers (id, first_name, last_name, email, phone_number, date_of_birth, gender,
			license_number, license_validity, vehicle_number, vehicle_type, is_available, status,
			rating, total_ratings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.FirstName, d.LastName, d.Email, d.PhoneNumber, d.DateOfBirth, d.Gender,
		d.LicenseNumber, d.LicenseValidity, d.VehicleNumber, d.VehicleType, d.IsAvailable,
		d.Status, d.Rating, d.TotalRatings,
	)
	return err
}

// UpdateStatus returns the number of rows changed so callers can detect a
// missing driver without a second lookup.
func (r DriverRepo) UpdateStatus(id, status string) (int64, error) {
	res, err := r.DB.Exec(`UPDATE drivers SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r DriverRepo) CountByStatus(status string) (int64, error) {
	var n int64
	var err error
	if status == "" {
		err = r.DB.QueryRow(`SELECT COUNT(*) FROM drivers`).Scan(&n)
	} else {
		err = r.DB.QueryRow(`SELECT COUNT(*) FROM drivers WHERE status = ?`, status).Scan(&n)
	}
	return n, err
}
