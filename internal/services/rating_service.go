package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campusride/internal/domain"
	"campusride/internal/repositories"
	"campusride/internal/utils"
)

type RatingService struct {
	DB         *sql.DB
	DriverRepo repositories.DriverRepo
	RequestID  string
}

type RatingInput struct {
	VehicleNumber       string `json:"vehicleNumber"`
	PNR                 string `json:"pnr"`
	DriverBehavior      int    `json:"driverBehavior"`
	DrivingSkill        int    `json:"drivingSkill"`
	VehicleCleanliness  int    `json:"vehicleCleanliness"`
	Punctuality         int    `json:"punctuality"`
	OverallSatisfaction int    `json:"overallSatisfaction"`
}

func (in RatingInput) invalidFields() []string {
	invalid := []string{}
	if strings.TrimSpace(in.VehicleNumber) == "" {
		invalid = append(invalid, "vehicleNumber")
	}
	if strings.TrimSpace(in.PNR) == "" {
		invalid = append(invalid, "pnr")
	}
	scores := []struct {
		name  string
		value int
	}{
		{"driverBehavior", in.DriverBehavior},
		{"drivingSkill", in.DrivingSkill},
		{"vehicleCleanliness", in.VehicleCleanliness},
		{"punctuality", in.Punctuality},
		{"overallSatisfaction", in.OverallSatisfaction},
	}
	for _, s := range scores {
		if s.value < 1 || s.value > 5 {
			invalid = append(invalid, s.name)
		}
	}
	return invalid
}

func (in RatingInput) tripAverage() float64 {
	sum := in.DriverBehavior + in.DrivingSkill + in.VehicleCleanliness + in.Punctuality + in.OverallSatisfaction
	return float64(sum) / 5.0
}

// RateDriver accepts post-trip feedback for a completed booking and folds it
// into the driver's running average. The read-recompute-write runs under one
// transaction with row locks so concurrent submissions cannot lose an update,
// and the is_rated flag flips at most once.
func (s RatingService) RateDriver(in RatingInput) (float64, error) {
	if invalid := in.invalidFields(); len(invalid) > 0 {
		return 0, domain.ValidationError{
			Field: strings.Join(invalid, ", "),
			Msg:   "invalid or missing fields",
		}
	}

	driver, err := s.drivers().GetByVehicleNumber(strings.TrimSpace(in.VehicleNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.NotFoundError{Resource: "driver"}
		}
		return 0, domain.InternalError{Err: err}
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to start transaction", Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// The booking must be completed, belong to the resolved driver, and not
	// have been rated yet.
	var isRated bool
	err = tx.QueryRow(`
		SELECT is_rated FROM pnrs
		WHERE pnr_id = ? AND driver_id = ? AND status = 'completed'
		FOR UPDATE`, in.PNR, driver.ID).Scan(&isRated)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ConflictError{Resource: "booking", Msg: "invalid booking for rating"}
	}
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	if isRated {
		return 0, domain.ConflictError{Resource: "booking", Msg: "already rated"}
	}

	var (
		currentRating float64
		totalRatings  int64
	)
	err = tx.QueryRow(`SELECT rating, total_ratings FROM drivers WHERE id = ? FOR UPDATE`, driver.ID).
		Scan(&currentRating, &totalRatings)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	tripAverage := in.tripAverage()
	newTotal := totalRatings + 1
	newRating := utils.Round2((currentRating*float64(totalRatings) + tripAverage) / float64(newTotal))

	if _, err := tx.Exec(`UPDATE drivers SET rating = ?, total_ratings = ? WHERE id = ?`,
		newRating, newTotal, driver.ID); err != nil {
		return 0, domain.InternalError{Msg: "failed to update driver rating", Err: err}
	}

	res, err := tx.Exec(`UPDATE pnrs SET is_rated = 1 WHERE pnr_id = ? AND is_rated = 0`, in.PNR)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to mark booking rated", Err: err}
	}
	if n, err := res.RowsAffected(); err != nil {
		return 0, domain.InternalError{Err: err}
	} else if n == 0 {
		// a concurrent submission won the flag
		return 0, domain.ConflictError{Resource: "booking", Msg: "already rated"}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.InternalError{Msg: "failed to commit rating", Err: err}
	}
	committed = true

	utils.LogEvent(s.RequestID, "rating", "driver_rated",
		fmt.Sprintf("vehicle=%s pnr=%s trip_avg=%.2f new_rating=%.2f", in.VehicleNumber, in.PNR, tripAverage, newRating))

	return newRating, nil
}

func (s RatingService) drivers() repositories.DriverRepo {
	if s.DriverRepo.DB != nil {
		return s.DriverRepo
	}
	return repositories.DriverRepo{DB: s.DB}
}
