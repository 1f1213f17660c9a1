package repositories

import (
	"database/sql"

	"campusride/internal/domain/models"
)

type ScheduleRepo struct {
	DB *sql.DB
}

func (r ScheduleRepo) GetByID(id string) (models.Schedule, error) {
	var s models.Schedule
	err := r.DB.QueryRow(`
		SELECT id, driver_id, date, time, status, created_at
		FROM schedules WHERE id = ?`, id).
		Scan(&s.ID, &s.DriverID, &s.Date, &s.Time, &s.Status, &s.CreatedAt)
	return s, err
}

func (r ScheduleRepo) Insert(s models.Schedule) error {
	_, err := r.DB.Exec(`
		INSERT INTO schedules (id, driver_id, date, time, status)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.DriverID, s.Date, s.Time, s.Status,
	)
	return err
}

func (r ScheduleRepo) ListByDriver(driverID string) ([]models.Schedule, error) {
	rows, err := r.DB.Query(`
		SELECT id, driver_id, date, time, status, created_at
		FROM schedules WHERE driver_id = ?
		ORDER BY created_at DESC`, driverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Schedule{}
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(&s.ID, &s.DriverID, &s.Date, &s.Time, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TransitionStatus moves a schedule from one status to another only when the
// current status matches. The affected-row count is the caller's signal that
// the precondition held; zero rows means the schedule was absent or in a
// different state.
func (r ScheduleRepo) TransitionStatus(id, from, to string) (int64, error) {
	res, err := r.DB.Exec(`UPDATE schedules SET status = ? WHERE id = ? AND status = ?`, to, id, from)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Cancel marks a schedule cancelled unless it already reached a terminal state.
func (r ScheduleRepo) Cancel(id string) (int64, error) {
	res, err := r.DB.Exec(`
		UPDATE schedules SET status = ?
		WHERE id = ? AND status NOT IN (?, ?)`,
		models.ScheduleStatusCancelled, id,
		models.ScheduleStatusCompleted, models.ScheduleStatusCancelled,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// AvailableDrivers returns verified drivers that still have an open schedule
// slot on the given date and time.
func (r ScheduleRepo) AvailableDrivers(date, tm string) ([]models.Driver, error) {
	rows, err := r.DB.Query(`
		SELECT `+driverColumns+`
		FROM drivers d
		WHERE d.is_available = 1 AND d.status = ?
		  AND EXISTS (
			SELECT 1 FROM schedules s
			WHERE s.driver_id = d.id AND s.date = ? AND s.time = ? AND s.status = ?
		  )
		ORDER BY d.rating DESC`,
		models.DriverStatusActive, date, tm, models.ScheduleStatusAvailable)
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
