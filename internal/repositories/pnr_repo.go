package repositories

import (
	"database/sql"

	"campusride/internal/domain/models"
)

type PNRRepo struct {
	DB *sql.DB
}

const pnrColumns = `p.id, p.pnr_id, p.schedule_id, p.user_id, p.driver_id, p.location_from,
	p.location_to, p.date, p.time, p.distance, p.price, p.status, p.is_rated, p.created_at`

func scanPNR(row interface{ Scan(...any) error }, extra ...any) (models.PNR, error) {
	var p models.PNR
	dest := []any{
		&p.ID, &p.PNRID, &p.ScheduleID, &p.UserID, &p.DriverID, &p.LocationFrom,
		&p.LocationTo, &p.Date, &p.Time, &p.Distance, &p.Price, &p.Status, &p.IsRated, &p.CreatedAt,
	}
	dest = append(dest, extra...)
	err := row.Scan(dest...)
	return p, err
}

// GetByReference resolves a booking by its opaque reference, joining the
// limited driver and user display fields the booking detail response needs.
func (r PNRRepo) GetByReference(pnrID string) (models.BookingDetail, error) {
	row := r.DB.QueryRow(`
		SELECT `+pnrColumns+`,
			d.first_name, d.last_name, d.vehicle_number, d.vehicle_type, d.phone_number,
			u.first_name, u.last_name, u.phone_number
		FROM pnrs p
		LEFT JOIN drivers d ON d.id = p.driver_id
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.pnr_id = ?`, pnrID)

	var (
		dFirst, dLast, dVehicle, dType, dPhone sql.NullString
		uFirst, uLast, uPhone                  sql.NullString
	)
	p, err := scanPNR(row, &dFirst, &dLast, &dVehicle, &dType, &dPhone, &uFirst, &uLast, &uPhone)
	if err != nil {
		return models.BookingDetail{}, err
	}

	detail := models.BookingDetail{PNR: p}
	if dFirst.Valid {
		detail.Driver = &models.DriverSummary{
			Name:          joinName(dFirst.String, dLast.String),
			VehicleNumber: dVehicle.String,
			VehicleType:   dType.String,
			PhoneNumber:   dPhone.String,
		}
	}
	if uFirst.Valid {
		detail.User = &models.UserSummary{
			Name:        joinName(uFirst.String, uLast.String),
			PhoneNumber: uPhone.String,
		}
	}
	return detail, nil
}

// ListByUser returns a user's bookings newest first, each with the driver
// display fields. An empty result is a valid empty slice, not an error.
func (r PNRRepo) ListByUser(userID string) ([]models.BookingDetail, error) {
	rows, err := r.DB.Query(`
		SELECT `+pnrColumns+`,
			d.first_name, d.last_name, d.vehicle_number, d.vehicle_type, d.phone_number
		FROM pnrs p
		LEFT JOIN drivers d ON d.id = p.driver_id
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingDetail{}
	for rows.Next() {
		var dFirst, dLast, dVehicle, dType, dPhone sql.NullString
		p, err := scanPNR(rows, &dFirst, &dLast, &dVehicle, &dType, &dPhone)
		if err != nil {
			return nil, err
		}
		detail := models.BookingDetail{PNR: p}
		if dFirst.Valid {
			detail.Driver = &models.DriverSummary{
				Name:          joinName(dFirst.String, dLast.String),
				VehicleNumber: dVehicle.String,
				VehicleType:   dType.String,
				PhoneNumber:   dPhone.String,
			}
		}
		out = append(out, detail)
	}
	return out, rows.Err()
}

func (r PNRRepo) ListBySchedule(scheduleID string) ([]models.PNR, error) {
	rows, err := r.DB.Query(`
		SELECT `+pnrColumns+`
		FROM pnrs p
		WHERE p.schedule_id = ?
		ORDER BY p.created_at DESC`, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PNR{}
	for rows.Next() {
		p, err := scanPNR(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PNRRepo) CountByStatus(status string) (int64, error) {
	var n int64
	var err error
	if status == "" {
		err = r.DB.QueryRow(`SELECT COUNT(*) FROM pnrs`).Scan(&n)
	} else {
		err = r.DB.QueryRow(`SELECT COUNT(*) FROM pnrs WHERE status = ?`, status).Scan(&n)
	}
	return n, err
}

func joinName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}
