package templates

import (
	"context"
	"errors"

	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/internal/workouts/exercises"
	"github.com/2beens/gymweeks/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=templates_mocks_test.go -package=templates_test

type templatesRepo interface {
	AddDay(ctx context.Context, day DayTemplate) (*DayTemplate, error)
	GetDay(ctx context.Context, id int) (*DayTemplate, error)
	ListDays(ctx context.Context) ([]DayTemplate, error)
	DeactivateDay(ctx context.Context, id int) error
	AddDayExercise(ctx context.Context, de DayExercise) (*DayExercise, error)
	RemoveDayExercise(ctx context.Context, dayID, exerciseID int) error
	AddWeek(ctx context.Context, week WeekTemplate) (*WeekTemplate, error)
	GetWeek(ctx context.Context, id int) (*WeekTemplate, error)
	ListWeeks(ctx context.Context) ([]WeekTemplate, error)
	DeactivateWeek(ctx context.Context, id int) error
	AddWeekDay(ctx context.Context, wd WeekDay) (*WeekDay, error)
	RemoveWeekDay(ctx context.Context, weekID, dayOrder int) error
}

type exerciseGetter interface {
	Get(ctx context.Context, id int) (*exercises.Exercise, error)
}

type Service struct {
	repo      templatesRepo
	exercises exerciseGetter
	weekCache *WeekCache
}

func NewService(repo templatesRepo, exercises exerciseGetter, weekCache *WeekCache) *Service {
	return &Service{
		repo:      repo,
		exercises: exercises,
		weekCache: weekCache,
	}
}

func (s *Service) AddDay(ctx context.Context, day DayTemplate) (*DayTemplate, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}
	return s.repo.AddDay(ctx, day)
}

func (s *Service) GetDay(ctx context.Context, id int) (*DayTemplate, error) {
	return s.repo.GetDay(ctx, id)
}

func (s *Service) ListDays(ctx context.Context) ([]DayTemplate, error) {
	return s.repo.ListDays(ctx)
}

func (s *Service) DeactivateDay(ctx context.Context, id int) error {
	if err := s.repo.DeactivateDay(ctx, id); err != nil {
		return err
	}
	s.weekCache.Clear()
	return nil
}

// AddExerciseToDay attaches an exercise to a day template, after checking the
// exercise's muscle group is compatible with the day type.
func (s *Service) AddExerciseToDay(ctx context.Context, dayID int, req AddDayExerciseRequest) (_ *DayExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.addExerciseToDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("day.id", dayID),
		attribute.Int("exercise.id", req.ExerciseID),
	)

	if req.Order < 1 {
		return nil, pkg.NewValidationError("exercise order must be at least 1")
	}
	if req.NumberOfSets == 0 {
		req.NumberOfSets = DefaultNumberOfSets
	}
	if err := ValidateNumberOfSets(req.NumberOfSets); err != nil {
		return nil, err
	}

	day, err := s.repo.GetDay(ctx, dayID)
	if err != nil {
		return nil, err
	}

	exercise, err := s.exercises.Get(ctx, req.ExerciseID)
	if err != nil {
		return nil, err
	}

	if err := ValidateExercise(day.Type, *exercise); err != nil {
		log.Tracef("exercise %d rejected for day %d: %s", exercise.ID, day.ID, err)
		return nil, err
	}

	added, err := s.repo.AddDayExercise(ctx, DayExercise{
		WorkoutDayID: dayID,
		ExerciseID:   exercise.ID,
		Order:        req.Order,
		NumberOfSets: req.NumberOfSets,
	})
	if err != nil {
		return nil, err
	}
	added.Exercise = exercise
	s.weekCache.Clear()

	return added, nil
}

func (s *Service) RemoveExerciseFromDay(ctx context.Context, dayID, exerciseID int) error {
	if err := s.repo.RemoveDayExercise(ctx, dayID, exerciseID); err != nil {
		return err
	}
	s.weekCache.Clear()
	return nil
}

func (s *Service) AddWeek(ctx context.Context, week WeekTemplate) (*WeekTemplate, error) {
	if err := week.Validate(); err != nil {
		return nil, err
	}
	added, err := s.repo.AddWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	s.weekCache.Clear()
	return added, nil
}

func (s *Service) GetWeek(ctx context.Context, id int) (*WeekTemplate, error) {
	if week, ok := s.weekCache.Get(id); ok {
		log.Tracef("week %d found in cache", id)
		return week, nil
	}

	week, err := s.repo.GetWeek(ctx, id)
	if err != nil {
		return nil, err
	}
	s.weekCache.Set(week)
	return week, nil
}

func (s *Service) ListWeeks(ctx context.Context) ([]WeekTemplate, error) {
	if weeks, ok := s.weekCache.GetList(); ok {
		log.Trace("weeks list found in cache")
		return weeks, nil
	}

	weeks, err := s.repo.ListWeeks(ctx)
	if err != nil {
		return nil, err
	}
	s.weekCache.SetList(weeks)
	return weeks, nil
}

func (s *Service) DeactivateWeek(ctx context.Context, id int) error {
	if err := s.repo.DeactivateWeek(ctx, id); err != nil {
		return err
	}
	s.weekCache.Clear()
	return nil
}

func (s *Service) AddDayToWeek(ctx context.Context, weekID int, req AddWeekDayRequest) (_ *WeekDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.addDayToWeek")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("week.id", weekID),
		attribute.Int("day.id", req.WorkoutDayID),
	)

	if err := ValidateDayOrder(req.DayOrder); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetWeek(ctx, weekID); err != nil {
		return nil, err
	}
	day, err := s.repo.GetDay(ctx, req.WorkoutDayID)
	if err != nil {
		return nil, err
	}

	added, err := s.repo.AddWeekDay(ctx, WeekDay{
		WeekTemplateID: weekID,
		WorkoutDayID:   day.ID,
		DayOrder:       req.DayOrder,
	})
	if err != nil {
		return nil, err
	}
	day.Exercises = nil
	added.Day = day
	s.weekCache.Clear()

	return added, nil
}

func (s *Service) RemoveDayFromWeek(ctx context.Context, weekID, dayOrder int) error {
	if err := ValidateDayOrder(dayOrder); err != nil {
		return err
	}
	if err := s.repo.RemoveWeekDay(ctx, weekID, dayOrder); err != nil {
		return err
	}
	s.weekCache.Clear()
	return nil
}

// DayExists reports whether an active day template exists.
func (s *Service) DayExists(ctx context.Context, id int) (bool, error) {
	if _, err := s.repo.GetDay(ctx, id); err != nil {
		if errors.Is(err, ErrDayNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
