package custom

import (
	"fmt"
	"time"

	"github.com/2beens/gymweeks/internal/workouts/templates"
	"github.com/2beens/gymweeks/pkg"
)

var (
	ErrCustomDayNotFound      = fmt.Errorf("custom workout day %w", pkg.ErrNotFound)
	ErrCustomExerciseNotFound = fmt.Errorf("custom exercise config %w", pkg.ErrNotFound)
)

// Day is a user's own pick of a day template for one position of the week.
type Day struct {
	ID           int                    `json:"id"`
	UserID       int                    `json:"userId"`
	WorkoutDayID int                    `json:"workoutDayId"`
	DayOrder     int                    `json:"dayOrder"`
	IsActive     bool                   `json:"isActive"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
	WorkoutDay   *templates.DayTemplate `json:"workoutDay,omitempty"`
}

// ExerciseConfig overrides the number of sets of a day template exercise entry.
type ExerciseConfig struct {
	ID                   int       `json:"id"`
	UserID               int       `json:"userId"`
	WorkoutDayExerciseID int       `json:"workoutDayExerciseId"`
	NumberOfSets         int       `json:"numberOfSets"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type SetDayRequest struct {
	WorkoutDayID int `json:"workoutDayId"`
	DayOrder     int `json:"dayOrder"`
}

type SetExerciseRequest struct {
	WorkoutDayExerciseID int `json:"workoutDayExerciseId"`
	NumberOfSets         int `json:"numberOfSets"`
}

func (r SetExerciseRequest) Validate() error {
	if r.WorkoutDayExerciseID <= 0 {
		return pkg.NewValidationError("workout day exercise id missing")
	}
	return templates.ValidateNumberOfSets(r.NumberOfSets)
}
