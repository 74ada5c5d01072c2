package tracking

import (
	"fmt"
	"math"
	"time"

	"github.com/2beens/gymweeks/internal/workouts/templates"
	"github.com/2beens/gymweeks/pkg"
)

var (
	ErrLogNotFound          = fmt.Errorf("workout log %w", pkg.ErrNotFound)
	ErrLogReferenceNotFound = fmt.Errorf("workout day or week assignment %w", pkg.ErrNotFound)
	ErrSetNotFound          = fmt.Errorf("set log %w", pkg.ErrNotFound)
	ErrSetExists            = fmt.Errorf("set already logged for this exercise: %w", pkg.ErrConflict)
)

// WorkoutLog records a user doing (or not) a workout day on a date. The day
// order tells apart the same day template used twice in one week.
type WorkoutLog struct {
	ID               int                    `json:"id"`
	UserID           int                    `json:"userId"`
	WorkoutDayID     int                    `json:"workoutDayId"`
	DayOrder         int                    `json:"dayOrder"`
	WeekAssignmentID *int                   `json:"weekAssignmentId"`
	Date             pkg.Date               `json:"date"`
	Completed        bool                   `json:"completed"`
	Notes            string                 `json:"notes"`
	IsActive         bool                   `json:"isActive"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
	WorkoutDay       *templates.DayTemplate `json:"workoutDay,omitempty"`
	Sets             []SetLog               `json:"sets,omitempty"`
}

type SetLog struct {
	ID           int       `json:"id"`
	WorkoutLogID int       `json:"workoutLogId"`
	ExerciseID   int       `json:"exerciseId"`
	SetNumber    int       `json:"setNumber"`
	Reps         int       `json:"reps"`
	Weight       *float64  `json:"weight"`
	Notes        string    `json:"notes"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ToggleRequest struct {
	WorkoutDayID     int       `json:"workoutDayId"`
	DayOrder         int       `json:"dayOrder"`
	Date             *pkg.Date `json:"date,omitempty"`
	WeekAssignmentID *int      `json:"weekAssignmentId,omitempty"`
}

type ToggleResponse struct {
	WorkoutLog
	Created bool `json:"created"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type AddSetRequest struct {
	ExerciseID int      `json:"exerciseId"`
	SetNumber  int      `json:"setNumber"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight,omitempty"`
	Notes      string   `json:"notes"`
}

func (r AddSetRequest) Validate() error {
	if r.ExerciseID <= 0 {
		return pkg.NewValidationError("exercise id missing")
	}
	if r.SetNumber < 1 {
		return pkg.NewValidationError("set number must be at least 1")
	}
	if r.Reps < 0 {
		return pkg.NewValidationError("reps cannot be negative")
	}
	if r.Weight != nil && *r.Weight < 0 {
		return pkg.NewValidationError("weight cannot be negative")
	}
	return nil
}

type ListParams struct {
	Date      *time.Time
	Completed bool
}

type WeeklySummary struct {
	WeekStart         pkg.Date `json:"weekStart"`
	WeekEnd           pkg.Date `json:"weekEnd"`
	TotalWorkouts     int      `json:"totalWorkouts"`
	CompletedWorkouts int      `json:"completedWorkouts"`
	CompletionRate    float64  `json:"completionRate"`
}

// NewWeeklySummary builds the summary of a 7 day window; the rate is a
// percentage rounded to one decimal.
func NewWeeklySummary(weekStart time.Time, total, completed int) WeeklySummary {
	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(completed)/float64(total)*1000) / 10
	}
	return WeeklySummary{
		WeekStart:         pkg.NewDate(weekStart),
		WeekEnd:           pkg.NewDate(pkg.AddDays(weekStart, 6)),
		TotalWorkouts:     total,
		CompletedWorkouts: completed,
		CompletionRate:    rate,
	}
}
