package config

import (
	"os"
	"strconv"
	"strings"
)

// SMTP carries the outbound mail transport settings. Built once at startup
// and handed to the notification layer; nothing reads the process env after
// LoadEnv returns.
type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type Env struct {
	AppAddr string
	AppEnv  string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	RedisAddr string
	JWTSecret string

	SMTP SMTP
}

func LoadEnv() Env {
	return Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		AppEnv:    getenv("APP_ENV", "development"),
		GinMode:   getenv("GIN_MODE", ""),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    getenv("DB_PASS", ""),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "campusride"),
		RedisAddr: getenv("REDIS_ADDR", "127.0.0.1:6379"),
		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),
		SMTP: SMTP{
			Host:     getenv("SMTP_HOST", ""),
			Port:     getenvInt("SMTP_PORT", 587),
			User:     getenv("SMTP_USER", ""),
			Password: getenv("SMTP_PASSWORD", ""),
			From:     getenv("SMTP_FROM_EMAIL", "no-reply@campusride.local"),
		},
	}
}

// IsProduction gates how much error detail leaves the process.
func (e Env) IsProduction() bool {
	return strings.EqualFold(e.AppEnv, "production")
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
