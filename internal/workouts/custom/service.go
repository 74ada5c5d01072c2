package custom

import (
	"context"

	"github.com/2beens/gymweeks/internal/workouts/templates"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=custom_mocks_test.go -package=custom_test

type customRepo interface {
	ListDays(ctx context.Context, userID int) ([]Day, error)
	UpsertDay(ctx context.Context, userID, workoutDayID, dayOrder int) (*Day, error)
	RemoveDay(ctx context.Context, userID, dayOrder int) error
	ListExercises(ctx context.Context, userID int) ([]ExerciseConfig, error)
	UpsertExercise(ctx context.Context, userID, workoutDayExerciseID, numberOfSets int) (*ExerciseConfig, error)
	RemoveExercise(ctx context.Context, userID, id int) error
}

type dayGetter interface {
	GetDay(ctx context.Context, id int) (*templates.DayTemplate, error)
}

type Service struct {
	repo customRepo
	days dayGetter
}

func NewService(repo customRepo, days dayGetter) *Service {
	return &Service{
		repo: repo,
		days: days,
	}
}

func (s *Service) ListDays(ctx context.Context, userID int) ([]Day, error) {
	return s.repo.ListDays(ctx, userID)
}

// SetDay picks the day template for a day order, replacing an earlier pick.
func (s *Service) SetDay(ctx context.Context, userID int, req SetDayRequest) (*Day, error) {
	if err := templates.ValidateDayOrder(req.DayOrder); err != nil {
		return nil, err
	}

	day, err := s.days.GetDay(ctx, req.WorkoutDayID)
	if err != nil {
		return nil, err
	}

	cd, err := s.repo.UpsertDay(ctx, userID, day.ID, req.DayOrder)
	if err != nil {
		return nil, err
	}
	day.Exercises = nil
	cd.WorkoutDay = day

	log.Debugf("user %d set custom day %d at order %d", userID, day.ID, req.DayOrder)
	return cd, nil
}

func (s *Service) RemoveDay(ctx context.Context, userID, dayOrder int) error {
	if err := templates.ValidateDayOrder(dayOrder); err != nil {
		return err
	}
	return s.repo.RemoveDay(ctx, userID, dayOrder)
}

func (s *Service) ListExercises(ctx context.Context, userID int) ([]ExerciseConfig, error) {
	return s.repo.ListExercises(ctx, userID)
}

func (s *Service) SetExercise(ctx context.Context, userID int, req SetExerciseRequest) (*ExerciseConfig, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpsertExercise(ctx, userID, req.WorkoutDayExerciseID, req.NumberOfSets)
}

func (s *Service) RemoveExercise(ctx context.Context, userID, id int) error {
	return s.repo.RemoveExercise(ctx, userID, id)
}
