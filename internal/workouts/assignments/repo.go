package assignments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/internal/workouts/templates"
	"github.com/2beens/gymweeks/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Current returns the user's active assignment.
func (r *Repo) Current(ctx context.Context, userID int) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assignments.current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	a, err := scanAssignment(r.db.QueryRow(
		ctx,
		`SELECT uwa.id, uwa.user_id, uwa.week_template_id, wwt.name, uwa.start_date, uwa.is_active, uwa.created_at
		FROM user_week_assignment uwa
			JOIN workout_week_template wwt ON wwt.id = uwa.week_template_id
		WHERE uwa.user_id = $1 AND uwa.is_active
		ORDER BY uwa.created_at DESC
		LIMIT 1`,
		userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveAssignment
		}
		return nil, err
	}
	return a, nil
}

// Assign makes the week template the user's only active assignment.
func (r *Repo) Assign(ctx context.Context, userID, weekTemplateID int, startDate time.Time) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assignments.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("week.id", weekTemplateID),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err := lockUser(ctx, tx, userID); err != nil {
		return nil, err
	}

	var weekName string
	if err := tx.QueryRow(
		ctx,
		`SELECT name FROM workout_week_template WHERE id = $1 AND is_active`,
		weekTemplateID,
	).Scan(&weekName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, templates.ErrWeekNotFound
		}
		return nil, err
	}

	return replaceActive(ctx, tx, userID, weekTemplateID, weekName, startDate)
}

// Renew rolls the user's active assignment forward onto a new start date, keeping
// the same week template. A nil startDate means previous start + 7 days.
func (r *Repo) Renew(ctx context.Context, userID int, startDate *time.Time) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assignments.renew")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err := lockUser(ctx, tx, userID); err != nil {
		return nil, err
	}

	current, err := scanAssignment(tx.QueryRow(
		ctx,
		`SELECT uwa.id, uwa.user_id, uwa.week_template_id, wwt.name, uwa.start_date, uwa.is_active, uwa.created_at
		FROM user_week_assignment uwa
			JOIN workout_week_template wwt ON wwt.id = uwa.week_template_id
		WHERE uwa.user_id = $1 AND uwa.is_active`,
		userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveAssignment
		}
		return nil, err
	}

	newStart := pkg.AddDays(current.StartDate.Time, WeekLength)
	if startDate != nil {
		newStart = pkg.Day(*startDate)
	}
	span.SetAttributes(attribute.String("start_date", pkg.FormatDate(newStart)))

	return replaceActive(ctx, tx, userID, current.WeekTemplateID, current.WeekTemplateName, newStart)
}

// TotalDays counts the active days of a week template.
func (r *Repo) TotalDays(ctx context.Context, weekTemplateID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assignments.totalDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("week.id", weekTemplateID))

	var total int
	if err := r.db.QueryRow(
		ctx,
		`SELECT count(*)
		FROM workout_week_day wwd
			JOIN workout_day_template d ON d.id = wwd.workout_day_id
		WHERE wwd.week_template_id = $1 AND wwd.is_active AND d.is_active`,
		weekTemplateID,
	).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// CountCompleted counts the user's completed logs dated within [start, end].
func (r *Repo) CountCompleted(ctx context.Context, userID int, start, end time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.assignments.countCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var completed int
	if err := r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM workout_log
		WHERE user_id = $1 AND completed AND is_active AND date BETWEEN $2 AND $3`,
		userID, pkg.NewDate(start), pkg.NewDate(end),
	).Scan(&completed); err != nil {
		return 0, err
	}
	return completed, nil
}

// lockUser serializes assignment writes for one user.
func lockUser(ctx context.Context, tx pgx.Tx, userID int) error {
	var id int
	if err := tx.QueryRow(
		ctx,
		`SELECT id FROM app_user WHERE id = $1 AND is_active FOR UPDATE`,
		userID,
	).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func replaceActive(ctx context.Context, tx pgx.Tx, userID, weekTemplateID int, weekName string, startDate time.Time) (*Assignment, error) {
	if _, err := tx.Exec(
		ctx,
		`UPDATE user_week_assignment SET is_active = FALSE, updated_at = now() WHERE user_id = $1 AND is_active`,
		userID,
	); err != nil {
		return nil, fmt.Errorf("deactivate current assignment: %w", err)
	}

	a := Assignment{
		UserID:           userID,
		WeekTemplateID:   weekTemplateID,
		WeekTemplateName: weekName,
	}
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO user_week_assignment (user_id, week_template_id, start_date)
			VALUES ($1, $2, $3)
		RETURNING id, start_date, is_active, created_at`,
		userID, weekTemplateID, pkg.NewDate(startDate),
	).Scan(&a.ID, &a.StartDate, &a.IsActive, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert assignment: %w", err)
	}

	return &a, nil
}

func scanAssignment(row pgx.Row) (*Assignment, error) {
	var a Assignment
	if err := row.Scan(
		&a.ID, &a.UserID, &a.WeekTemplateID, &a.WeekTemplateName, &a.StartDate, &a.IsActive, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
