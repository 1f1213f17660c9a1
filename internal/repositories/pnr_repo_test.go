package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var pnrJoinedCols = []string{
	"id", "pnr_id", "schedule_id", "user_id", "driver_id", "location_from",
	"location_to", "date", "time", "distance", "price", "status", "is_rated", "created_at",
	"d_first_name", "d_last_name", "d_vehicle_number", "d_vehicle_type", "d_phone_number",
	"u_first_name", "u_last_name", "u_phone_number",
}

func TestGetByReferenceJoinsDisplayFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM pnrs p").
		WithArgs("ref-1").
		WillReturnRows(sqlmock.NewRows(pnrJoinedCols).AddRow(
			int64(1), "ref-1", "sched-1", "user-7", "driver-3", "North Campus Gate",
			"Central Library", "2025-03-10", "08:30", 4.2, 150.0, "active", false, time.Now(),
			"Ravi", "Kumar", "KA-01-1234", "minibus", "555-0101",
			"Asha", "Menon", "555-0102",
		))

	detail, err := PNRRepo{DB: db}.GetByReference("ref-1")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if detail.PNR.PNRID != "ref-1" {
		t.Fatalf("wrong reference: %s", detail.PNR.PNRID)
	}
	if detail.Driver == nil || detail.Driver.Name != "Ravi Kumar" {
		t.Fatalf("driver display fields not joined: %#v", detail.Driver)
	}
	if detail.User == nil || detail.User.Name != "Asha Menon" {
		t.Fatalf("user display fields not joined: %#v", detail.User)
	}
}

func TestGetByReferenceAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM pnrs p").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	if _, err := (PNRRepo{DB: db}).GetByReference("nope"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestGetByReferenceMissingDriverLeavesNilSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM pnrs p").
		WithArgs("ref-2").
		WillReturnRows(sqlmock.NewRows(pnrJoinedCols).AddRow(
			int64(2), "ref-2", "sched-1", "user-7", "driver-gone", "A",
			"B", "2025-03-10", "08:30", 1.0, 50.0, "active", false, time.Now(),
			nil, nil, nil, nil, nil,
			"Asha", "Menon", "555-0102",
		))

	detail, err := PNRRepo{DB: db}.GetByReference("ref-2")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if detail.Driver != nil {
		t.Fatalf("expected nil driver summary, got %#v", detail.Driver)
	}
	if detail.User == nil {
		t.Fatalf("expected user summary")
	}
}

func TestListByUserEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := pnrJoinedCols[:len(pnrJoinedCols)-3]
	mock.ExpectQuery("FROM pnrs p").
		WithArgs("user-0").
		WillReturnRows(sqlmock.NewRows(cols))

	out, err := PNRRepo{DB: db}.ListByUser("user-0")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %#v", out)
	}
}
