package exercises

import (
	"fmt"
	"time"

	"github.com/2beens/gymweeks/pkg"
)

var (
	ErrExerciseNotFound = fmt.Errorf("exercise %w", pkg.ErrNotFound)
	ErrExerciseExists   = fmt.Errorf("exercise with that name already exists: %w", pkg.ErrConflict)
)

type Exercise struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	ImageURL    string      `json:"imageUrl"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (e Exercise) Validate() error {
	if e.Name == "" {
		return pkg.NewValidationError("exercise name empty")
	}
	if !e.MuscleGroup.IsValid() {
		return pkg.NewValidationError("invalid muscle group [%s]", e.MuscleGroup)
	}
	return nil
}
