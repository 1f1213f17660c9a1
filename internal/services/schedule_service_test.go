package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"campusride/internal/domain"
	"campusride/internal/otp"

	"github.com/DATA-DOG/go-sqlmock"
)

func newScheduleService(t *testing.T) (ScheduleService, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return ScheduleService{DB: db, OTP: otp.NewMemoryStore(), RequestID: "req-test"}, mock, db
}

func TestAddScheduleRejectsMissingFields(t *testing.T) {
	svc, _, db := newScheduleService(t)
	defer db.Close()

	_, err := svc.AddSchedule(ScheduleInput{DriverID: "driver-3"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReserveScheduleTakesAvailableSlot(t *testing.T) {
	svc, mock, db := newScheduleService(t)
	defer db.Close()

	mock.ExpectExec("UPDATE schedules SET status").
		WithArgs("reserved", "sched-1", "available").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.ReserveSchedule("sched-1"); err != nil {
		t.Fatalf("ReserveSchedule error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReserveScheduleConflictsWhenSlotTaken(t *testing.T) {
	svc, mock, db := newScheduleService(t)
	defer db.Close()

	mock.ExpectExec("UPDATE schedules SET status").
		WithArgs("reserved", "sched-1", "available").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.ReserveSchedule("sched-1")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCancelScheduleDistinguishesAbsentFromTerminal(t *testing.T) {
	svc, mock, db := newScheduleService(t)
	defer db.Close()

	// absent: zero rows updated and no row to read back
	mock.ExpectExec("UPDATE schedules SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM schedules WHERE id").
		WithArgs("sched-gone").
		WillReturnError(sql.ErrNoRows)

	if err := svc.CancelSchedule("sched-gone"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	// present but already terminal
	mock.ExpectExec("UPDATE schedules SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM schedules WHERE id").
		WithArgs("sched-done").
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id", "date", "time", "status", "created_at"}).
			AddRow("sched-done", "driver-3", "2025-03-10", "08:30", "completed", time.Now()))

	if err := svc.CancelSchedule("sched-done"); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestVerifyBoardingOTPRoundTrip(t *testing.T) {
	svc, _, db := newScheduleService(t)
	defer db.Close()

	ctx := context.Background()
	code, err := svc.OTP.Generate(ctx, "sched-1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if err := svc.VerifyBoardingOTP(ctx, "sched-1", "000000"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for wrong code, got %v", err)
	}
	if err := svc.VerifyBoardingOTP(ctx, "sched-1", code); err != nil {
		t.Fatalf("VerifyBoardingOTP error: %v", err)
	}
	// single use
	if err := svc.VerifyBoardingOTP(ctx, "sched-1", code); !domain.IsConflict(err) {
		t.Fatalf("expected conflict after code consumed, got %v", err)
	}
	if err := svc.VerifyBoardingOTP(ctx, "sched-2", "123456"); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for schedule without code, got %v", err)
	}
}
