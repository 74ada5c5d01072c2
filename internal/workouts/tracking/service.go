package tracking

import (
	"context"
	"time"

	"github.com/2beens/gymweeks/internal/telemetry/metrics"
	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/internal/workouts/templates"
	"github.com/2beens/gymweeks/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=tracking_mocks_test.go -package=tracking_test

type trackingRepo interface {
	Toggle(ctx context.Context, userID, workoutDayID, dayOrder int, date time.Time, weekAssignmentID *int) (*WorkoutLog, bool, error)
	AssignmentOwnedBy(ctx context.Context, userID, assignmentID int) (bool, error)
	List(ctx context.Context, userID int, params ListParams) ([]WorkoutLog, error)
	Get(ctx context.Context, userID, id int) (*WorkoutLog, error)
	UpdateNotes(ctx context.Context, userID, id int, notes string) error
	WeekCounts(ctx context.Context, userID int, start, end time.Time) (int, int, error)
	ListSets(ctx context.Context, logID int) ([]SetLog, error)
	AddSet(ctx context.Context, set SetLog) (*SetLog, error)
	DeactivateSet(ctx context.Context, userID, setID int) error
}

type dayGetter interface {
	GetDay(ctx context.Context, id int) (*templates.DayTemplate, error)
}

type Service struct {
	repo           trackingRepo
	days           dayGetter
	metricsManager *metrics.Manager
	// ability to inject the clock (for unit and dev testing)
	NowFunc func() time.Time
}

func NewService(repo trackingRepo, days dayGetter, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		days:           days,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func (s *Service) today() time.Time {
	return pkg.Day(s.NowFunc().UTC())
}

// ToggleCompletion marks a workout day instance completed, or flips completion
// if it was logged before. Completion and visibility are kept apart: an
// uncompleted log stays active.
func (s *Service) ToggleCompletion(ctx context.Context, userID int, req ToggleRequest) (_ *ToggleResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracking.toggleCompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if req.WorkoutDayID <= 0 {
		return nil, pkg.NewValidationError("workout day id missing")
	}
	if err := templates.ValidateDayOrder(req.DayOrder); err != nil {
		return nil, err
	}

	day, err := s.days.GetDay(ctx, req.WorkoutDayID)
	if err != nil {
		return nil, err
	}

	if req.WeekAssignmentID != nil {
		owned, err := s.repo.AssignmentOwnedBy(ctx, userID, *req.WeekAssignmentID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrLogReferenceNotFound
		}
	}

	date := s.today()
	if req.Date != nil && !req.Date.IsZero() {
		date = req.Date.Time
	}

	l, created, err := s.repo.Toggle(ctx, userID, req.WorkoutDayID, req.DayOrder, date, req.WeekAssignmentID)
	if err != nil {
		return nil, err
	}
	l.WorkoutDay = day

	sets, err := s.repo.ListSets(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	l.Sets = sets

	result := "uncompleted"
	if l.Completed {
		result = "completed"
	}
	s.metricsManager.CounterCompletionToggles.WithLabelValues(result).Inc()
	log.Debugf("user %d toggled day %d/%d on %s: completed=%t created=%t",
		userID, req.WorkoutDayID, req.DayOrder, l.Date, l.Completed, created)

	return &ToggleResponse{
		WorkoutLog: *l,
		Created:    created,
	}, nil
}

// MyLogs lists the user's logs of one date, today unless params.Date is set.
func (s *Service) MyLogs(ctx context.Context, userID int, params ListParams) ([]WorkoutLog, error) {
	if params.Date == nil {
		today := s.today()
		params.Date = &today
	}
	return s.repo.List(ctx, userID, params)
}

// WeeklySummary aggregates the user's logs of the week starting at weekStart,
// or of the current Monday based week if weekStart is nil.
func (s *Service) WeeklySummary(ctx context.Context, userID int, weekStart *time.Time) (*WeeklySummary, error) {
	start := pkg.MondayOf(s.today())
	if weekStart != nil {
		start = pkg.Day(*weekStart)
	}

	total, completed, err := s.repo.WeekCounts(ctx, userID, start, pkg.AddDays(start, 6))
	if err != nil {
		return nil, err
	}

	summary := NewWeeklySummary(start, total, completed)
	return &summary, nil
}

// Get returns one of the user's logs with its sets.
func (s *Service) Get(ctx context.Context, userID, id int) (*WorkoutLog, error) {
	l, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	sets, err := s.repo.ListSets(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	l.Sets = sets
	return l, nil
}

func (s *Service) UpdateNotes(ctx context.Context, userID, id int, notes string) (*WorkoutLog, error) {
	if err := s.repo.UpdateNotes(ctx, userID, id, notes); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *Service) ListSets(ctx context.Context, userID, logID int) ([]SetLog, error) {
	if _, err := s.repo.Get(ctx, userID, logID); err != nil {
		return nil, err
	}
	return s.repo.ListSets(ctx, logID)
}

func (s *Service) AddSet(ctx context.Context, userID, logID int, req AddSetRequest) (*SetLog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, userID, logID); err != nil {
		return nil, err
	}
	return s.repo.AddSet(ctx, SetLog{
		WorkoutLogID: logID,
		ExerciseID:   req.ExerciseID,
		SetNumber:    req.SetNumber,
		Reps:         req.Reps,
		Weight:       req.Weight,
		Notes:        req.Notes,
	})
}

func (s *Service) DeleteSet(ctx context.Context, userID, setID int) error {
	return s.repo.DeactivateSet(ctx, userID, setID)
}
