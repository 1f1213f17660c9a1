package repositories

import (
	"database/sql"

	"campusride/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

const userColumns = `id, first_name, last_name, email, phone_number, gender, status, wallet, created_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber, &u.Gender,
		&u.Status, &u.Wallet, &u.CreatedAt,
	)
	return u, err
}

func (r UserRepo) GetByID(id string) (models.User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r UserRepo) GetByEmail(email string) (models.User, error) {
	row := r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r UserRepo) List() ([]models.User, error) {
	rows, err := r.DB.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepo) Insert(u models.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users (id, first_name, last_name, email, phone_number, gender, status, wallet)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.PhoneNumber, u.Gender, u.Status, u.Wallet,
	)
	return err
}

func (r UserRepo) CountByStatus(status string) (int64, error) {
	var n int64
	var err error
	if status == "" {
		err = r.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	} else {
		err = r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE status = ?`, status).Scan(&n)
	}
	return n, err
}
