package services

import (
	"strings"
	"testing"
	"time"

	"campusride/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func ratingInput(score int) RatingInput {
	return RatingInput{
		VehicleNumber:       "KA-01-1234",
		PNR:                 "pnr-ref-1",
		DriverBehavior:      score,
		DrivingSkill:        score,
		VehicleCleanliness:  score,
		Punctuality:         score,
		OverallSatisfaction: score,
	}
}

func expectDriverLookup(mock sqlmock.Sqlmock, driverID string, rating float64, totalRatings int64) {
	mock.ExpectQuery("FROM drivers WHERE vehicle_number").
		WithArgs("KA-01-1234").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "phone_number", "date_of_birth", "gender",
			"license_number", "license_validity", "vehicle_number", "vehicle_type", "is_available",
			"status", "rating", "total_ratings", "created_at",
		}).AddRow(driverID, "Ravi", "Kumar", "ravi@example.com", "555-0101", "1990-01-01", "male",
			"LIC-9", "2027-01-01", "KA-01-1234", "minibus", true,
			"active", rating, totalRatings, time.Now()))
}

func TestRateDriverFirstRatingReplacesBaseline(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectDriverLookup(mock, "driver-3", 5.0, 0)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_rated FROM pnrs").
		WithArgs("pnr-ref-1", "driver-3").
		WillReturnRows(sqlmock.NewRows([]string{"is_rated"}).AddRow(false))
	mock.ExpectQuery("SELECT rating, total_ratings FROM drivers").
		WithArgs("driver-3").
		WillReturnRows(sqlmock.NewRows([]string{"rating", "total_ratings"}).AddRow(5.0, 0))
	mock.ExpectExec("UPDATE drivers SET rating").
		WithArgs(4.0, int64(1), "driver-3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE pnrs SET is_rated").
		WithArgs("pnr-ref-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := RatingService{DB: db}
	newRating, err := svc.RateDriver(ratingInput(4))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if newRating != 4.0 {
		t.Fatalf("expected new rating 4.0, got %v", newRating)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRateDriverWeightedMean(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectDriverLookup(mock, "driver-3", 4.0, 1)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_rated FROM pnrs").
		WillReturnRows(sqlmock.NewRows([]string{"is_rated"}).AddRow(false))
	mock.ExpectQuery("SELECT rating, total_ratings FROM drivers").
		WillReturnRows(sqlmock.NewRows([]string{"rating", "total_ratings"}).AddRow(4.0, 1))
	mock.ExpectExec("UPDATE drivers SET rating").
		WithArgs(4.5, int64(2), "driver-3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE pnrs SET is_rated").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := RatingService{DB: db}
	newRating, err := svc.RateDriver(ratingInput(5))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if newRating != 4.5 {
		t.Fatalf("expected new rating 4.5, got %v", newRating)
	}
}

func TestRateDriverScoresOutOfRange(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	svc := RatingService{DB: db}

	fields := []struct {
		name   string
		mutate func(*RatingInput)
	}{
		{"driverBehavior", func(in *RatingInput) { in.DriverBehavior = 0 }},
		{"drivingSkill", func(in *RatingInput) { in.DrivingSkill = 6 }},
		{"vehicleCleanliness", func(in *RatingInput) { in.VehicleCleanliness = -1 }},
		{"punctuality", func(in *RatingInput) { in.Punctuality = 0 }},
		{"overallSatisfaction", func(in *RatingInput) { in.OverallSatisfaction = 99 }},
	}
	for _, f := range fields {
		in := ratingInput(3)
		f.mutate(&in)
		_, err := svc.RateDriver(in)
		if !domain.IsValidation(err) {
			t.Fatalf("%s: expected ValidationError, got %v", f.name, err)
		}
		if !strings.Contains(err.Error(), f.name) {
			t.Fatalf("%s: expected field name in error, got %q", f.name, err.Error())
		}
	}
}

func TestRateDriverUnknownVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM drivers WHERE vehicle_number").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := RatingService{DB: db}
	if _, err := svc.RateDriver(ratingInput(4)); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRateDriverBookingNotCompleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectDriverLookup(mock, "driver-3", 5.0, 0)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_rated FROM pnrs").
		WillReturnRows(sqlmock.NewRows([]string{"is_rated"}))
	mock.ExpectRollback()

	svc := RatingService{DB: db}
	if _, err := svc.RateDriver(ratingInput(4)); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError for non-completed booking, got %v", err)
	}
}

func TestRateDriverAlreadyRated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectDriverLookup(mock, "driver-3", 4.0, 1)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_rated FROM pnrs").
		WillReturnRows(sqlmock.NewRows([]string{"is_rated"}).AddRow(true))
	mock.ExpectRollback()

	svc := RatingService{DB: db}
	if _, err := svc.RateDriver(ratingInput(4)); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError for already-rated booking, got %v", err)
	}
}

func TestRateDriverConcurrentSubmissionLosesFlagRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// The flag read saw false, but another transaction flipped it before our
	// conditional update ran. Zero affected rows must abort the rating.
	expectDriverLookup(mock, "driver-3", 4.0, 1)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_rated FROM pnrs").
		WillReturnRows(sqlmock.NewRows([]string{"is_rated"}).AddRow(false))
	mock.ExpectQuery("SELECT rating, total_ratings FROM drivers").
		WillReturnRows(sqlmock.NewRows([]string{"rating", "total_ratings"}).AddRow(4.0, 1))
	mock.ExpectExec("UPDATE drivers SET rating").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE pnrs SET is_rated").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	svc := RatingService{DB: db}
	if _, err := svc.RateDriver(ratingInput(4)); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError when flag race is lost, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
