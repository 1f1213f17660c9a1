package db

import "database/sql"

// Migrate creates the schema when missing. Statements are idempotent so the
// server can run them on every start.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS drivers (
			id CHAR(36) PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL,
			phone_number VARCHAR(50) NOT NULL,
			date_of_birth VARCHAR(20) NOT NULL DEFAULT '',
			gender VARCHAR(20) NOT NULL DEFAULT '',
			license_number VARCHAR(100) NOT NULL,
			license_validity VARCHAR(20) NOT NULL DEFAULT '',
			vehicle_number VARCHAR(50) NOT NULL,
			vehicle_type VARCHAR(50) NOT NULL DEFAULT '',
			is_available TINYINT(1) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'inactive',
			rating DECIMAL(3,2) NOT NULL DEFAULT 5.00,
			total_ratings INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_driver_email (email),
			UNIQUE KEY uniq_driver_license (license_number),
			UNIQUE KEY uniq_driver_vehicle (vehicle_number)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS users (
			id CHAR(36) PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL,
			phone_number VARCHAR(50) NOT NULL DEFAULT '',
			gender VARCHAR(20) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			wallet DECIMAL(10,2) NOT NULL DEFAULT 0.00,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_user_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS admins (
			admin_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			admin_name VARCHAR(100) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_admin_name (admin_name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS schedules (
			id CHAR(36) PRIMARY KEY,
			driver_id CHAR(36) NOT NULL,
			date VARCHAR(20) NOT NULL,
			time VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'available',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_schedule_driver (driver_id),
			KEY idx_schedule_status (status)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
		`CREATE TABLE IF NOT EXISTS pnrs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			pnr_id CHAR(36) NOT NULL,
			schedule_id CHAR(36) NOT NULL,
			user_id CHAR(36) NOT NULL,
			driver_id CHAR(36) NOT NULL,
			location_from VARCHAR(255) NOT NULL,
			location_to VARCHAR(255) NOT NULL,
			date VARCHAR(20) NOT NULL,
			time VARCHAR(20) NOT NULL,
			distance DECIMAL(7,2) NOT NULL DEFAULT 0.00,
			price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			is_rated TINYINT(1) NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_pnr_reference (pnr_id),
			KEY idx_pnr_user (user_id),
			KEY idx_pnr_driver (driver_id),
			KEY idx_pnr_schedule (schedule_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, ddl := range stmts {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
