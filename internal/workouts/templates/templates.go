package templates

import (
	"fmt"
	"time"

	"github.com/2beens/gymweeks/internal/workouts/exercises"
	"github.com/2beens/gymweeks/pkg"
)

const (
	DefaultNumberOfSets = 3
	MaxNumberOfSets     = 10
	MaxDayOrder         = 7
)

var (
	ErrDayNotFound         = fmt.Errorf("workout day %w", pkg.ErrNotFound)
	ErrWeekNotFound        = fmt.Errorf("workout week %w", pkg.ErrNotFound)
	ErrWeekExists          = fmt.Errorf("workout week with that name already exists: %w", pkg.ErrConflict)
	ErrDayExerciseNotFound = fmt.Errorf("workout day exercise %w", pkg.ErrNotFound)
	ErrDayExerciseExists   = fmt.Errorf("exercise already added to workout day: %w", pkg.ErrConflict)
	ErrWeekDayNotFound     = fmt.Errorf("workout week day %w", pkg.ErrNotFound)
	ErrWeekDayExists       = fmt.Errorf("day order already taken in workout week: %w", pkg.ErrConflict)
)

type DayTemplate struct {
	ID        int           `json:"id"`
	Type      DayType       `json:"type"`
	Name      string        `json:"name"`
	IsActive  bool          `json:"isActive"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Exercises []DayExercise `json:"exercises,omitempty"`
}

func (d DayTemplate) Validate() error {
	if d.Name == "" {
		return pkg.NewValidationError("workout day name empty")
	}
	if !d.Type.IsValid() {
		return pkg.NewValidationError("invalid day type [%s]", d.Type)
	}
	return nil
}

// DayExercise is one ordered exercise entry of a day template.
type DayExercise struct {
	ID           int                 `json:"id"`
	WorkoutDayID int                 `json:"workoutDayId"`
	ExerciseID   int                 `json:"exerciseId"`
	Order        int                 `json:"order"`
	NumberOfSets int                 `json:"numberOfSets"`
	IsActive     bool                `json:"isActive"`
	Exercise     *exercises.Exercise `json:"exercise,omitempty"`
}

type WeekTemplate struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Days        []WeekDay `json:"days"`
}

func (w WeekTemplate) Validate() error {
	if w.Name == "" {
		return pkg.NewValidationError("workout week name empty")
	}
	return nil
}

// WeekDay places a day template at a position (1..7) of a week template.
type WeekDay struct {
	ID             int          `json:"id"`
	WeekTemplateID int          `json:"weekTemplateId"`
	WorkoutDayID   int          `json:"workoutDayId"`
	DayOrder       int          `json:"dayOrder"`
	IsActive       bool         `json:"isActive"`
	Day            *DayTemplate `json:"day,omitempty"`
}

type AddDayExerciseRequest struct {
	ExerciseID   int `json:"exerciseId"`
	Order        int `json:"order"`
	NumberOfSets int `json:"numberOfSets"`
}

type AddWeekDayRequest struct {
	WorkoutDayID int `json:"workoutDayId"`
	DayOrder     int `json:"dayOrder"`
}

func ValidateDayOrder(dayOrder int) error {
	if dayOrder < 1 || dayOrder > MaxDayOrder {
		return pkg.NewValidationError("day order must be between 1 and %d", MaxDayOrder)
	}
	return nil
}

func ValidateNumberOfSets(sets int) error {
	if sets < 1 || sets > MaxNumberOfSets {
		return pkg.NewValidationError("number of sets must be between 1 and %d", MaxNumberOfSets)
	}
	return nil
}
