package repositories

import (
	"database/sql"

	"campusride/internal/domain/models"
)

type AdminRepo struct {
	DB *sql.DB
}

func (r AdminRepo) GetByName(adminName string) (models.Admin, error) {
	var a models.Admin
	err := r.DB.QueryRow(`
		SELECT admin_id, admin_name, password_hash
		FROM admins WHERE admin_name = ?`, adminName).
		Scan(&a.AdminID, &a.AdminName, &a.PasswordHash)
	return a, err
}
