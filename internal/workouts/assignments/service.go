package assignments

import (
	"context"
	"time"

	"github.com/2beens/gymweeks/internal/telemetry/metrics"
	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=assignments_mocks_test.go -package=assignments_test

type assignmentsRepo interface {
	Current(ctx context.Context, userID int) (*Assignment, error)
	Assign(ctx context.Context, userID, weekTemplateID int, startDate time.Time) (*Assignment, error)
	Renew(ctx context.Context, userID int, startDate *time.Time) (*Assignment, error)
	TotalDays(ctx context.Context, weekTemplateID int) (int, error)
	CountCompleted(ctx context.Context, userID int, start, end time.Time) (int, error)
}

type Service struct {
	repo           assignmentsRepo
	metricsManager *metrics.Manager
	// ability to inject the clock (for unit and dev testing)
	NowFunc func() time.Time
}

func NewService(repo assignmentsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func (s *Service) today() time.Time {
	return pkg.Day(s.NowFunc().UTC())
}

func (s *Service) Current(ctx context.Context, userID int) (*Assignment, error) {
	return s.repo.Current(ctx, userID)
}

// WeekProgress computes the progress of the user's current assignment as of today.
func (s *Service) WeekProgress(ctx context.Context, userID int) (_ *WeekProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.assignments.weekProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	a, err := s.repo.Current(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalDays, err := s.repo.TotalDays(ctx, a.WeekTemplateID)
	if err != nil {
		return nil, err
	}

	start := a.StartDate.Time
	completed, err := s.repo.CountCompleted(ctx, userID, start, WeekEnd(start))
	if err != nil {
		return nil, err
	}

	progress := ComputeWeekProgress(*a, totalDays, completed, s.today())
	return &progress, nil
}

// Renew starts a new week of the current assignment. Earlier start dates are
// accepted as well.
func (s *Service) Renew(ctx context.Context, userID int, startDate *pkg.Date) (*Assignment, error) {
	var start *time.Time
	if startDate != nil && !startDate.IsZero() {
		start = &startDate.Time
	}

	renewed, err := s.repo.Renew(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterAssignments.WithLabelValues("renew").Inc()
	log.Debugf("user %d renewed week assignment, new start: %s", userID, renewed.StartDate)
	return renewed, nil
}

// Assign replaces the user's active assignment. The start date defaults to today.
func (s *Service) Assign(ctx context.Context, userID int, req AssignWeekRequest) (*Assignment, error) {
	if req.WeekTemplateID <= 0 {
		return nil, pkg.NewValidationError("week template id missing")
	}

	start := s.today()
	if req.StartDate != nil && !req.StartDate.IsZero() {
		start = req.StartDate.Time
	}

	assigned, err := s.repo.Assign(ctx, userID, req.WeekTemplateID, start)
	if err != nil {
		return nil, err
	}

	s.metricsManager.CounterAssignments.WithLabelValues("admin").Inc()
	log.Debugf("user %d assigned week template %d from %s", userID, req.WeekTemplateID, assigned.StartDate)
	return assigned, nil
}
