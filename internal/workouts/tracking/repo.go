package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymweeks/internal/telemetry/tracing"
	"github.com/2beens/gymweeks/internal/workouts/exercises"
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

const logColumns = `wl.id, wl.user_id, wl.workout_day_id, wl.day_order, wl.week_assignment_id,
	wl.date, wl.completed, wl.notes, wl.is_active, wl.created_at, wl.updated_at, d.type, d.name`

// Toggle creates the log as completed, or flips completion of the existing one.
// The unique key (user, day, day order, date) makes concurrent toggles safe.
func (r *Repo) Toggle(
	ctx context.Context,
	userID, workoutDayID, dayOrder int,
	date time.Time,
	weekAssignmentID *int,
) (_ *WorkoutLog, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("day.id", workoutDayID),
		attribute.Int("day.order", dayOrder),
		attribute.String("date", pkg.FormatDate(date)),
	)

	var created bool
	row := r.db.QueryRow(
		ctx,
		`WITH upserted AS (
			INSERT INTO workout_log AS wl (user_id, workout_day_id, day_order, date, week_assignment_id, completed)
				VALUES ($1, $2, $3, $4, $5, TRUE)
			ON CONFLICT (user_id, workout_day_id, day_order, date) DO UPDATE
				SET completed = NOT wl.completed,
					week_assignment_id = COALESCE(EXCLUDED.week_assignment_id, wl.week_assignment_id),
					updated_at = now()
			RETURNING wl.*, (xmax = 0) AS created
		)
		SELECT `+logColumns+`, wl.created
		FROM upserted wl
			JOIN workout_day_template d ON d.id = wl.workout_day_id`,
		userID, workoutDayID, dayOrder, pkg.NewDate(date), weekAssignmentID,
	)
	l, err := scanLog(row, &created)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, false, ErrLogReferenceNotFound
		}
		return nil, false, err
	}

	span.SetAttributes(
		attribute.Bool("created", created),
		attribute.Bool("completed", l.Completed),
	)
	return l, created, nil
}

// AssignmentOwnedBy reports whether the week assignment exists and belongs to the user.
func (r *Repo) AssignmentOwnedBy(ctx context.Context, userID, assignmentID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.assignmentOwnedBy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("assignment.id", assignmentID),
	)

	var owned bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM user_week_assignment WHERE id = $1 AND user_id = $2)`,
		assignmentID, userID,
	).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

func (r *Repo) List(ctx context.Context, userID int, params ListParams) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Bool("completed", params.Completed),
	)

	var date *pkg.Date
	if params.Date != nil {
		d := pkg.NewDate(*params.Date)
		date = &d
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+logColumns+`
		FROM workout_log wl
			JOIN workout_day_template d ON d.id = wl.workout_day_id
		WHERE wl.user_id = $1 AND wl.is_active AND wl.completed = $2
			AND ($3::date IS NULL OR wl.date = $3)
		ORDER BY wl.date DESC, wl.day_order`,
		userID, params.Completed, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]WorkoutLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// Get returns the user's own log; logs of other users are not found.
func (r *Repo) Get(ctx context.Context, userID, id int) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("id", id),
	)

	l, err := scanLog(r.db.QueryRow(
		ctx,
		`SELECT `+logColumns+`
		FROM workout_log wl
			JOIN workout_day_template d ON d.id = wl.workout_day_id
		WHERE wl.id = $1 AND wl.user_id = $2 AND wl.is_active`,
		id, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *Repo) UpdateNotes(ctx context.Context, userID, id int, notes string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.updateNotes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_log SET notes = $1, updated_at = now()
			WHERE id = $2 AND user_id = $3 AND is_active`,
		notes, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

// WeekCounts counts the user's logs dated within [start, end], and how many of them are completed.
func (r *Repo) WeekCounts(ctx context.Context, userID int, start, end time.Time) (total int, completed int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.weekCounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := r.db.QueryRow(
		ctx,
		`SELECT count(*), count(*) FILTER (WHERE completed)
		FROM workout_log
		WHERE user_id = $1 AND is_active AND date BETWEEN $2 AND $3`,
		userID, pkg.NewDate(start), pkg.NewDate(end),
	).Scan(&total, &completed); err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

const setColumns = `id, workout_log_id, exercise_id, set_number, reps, weight, notes, is_active, created_at`

func (r *Repo) ListSets(ctx context.Context, logID int) (_ []SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.listSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", logID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+setColumns+` FROM set_log
		WHERE workout_log_id = $1 AND is_active
		ORDER BY exercise_id, set_number`,
		logID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := make([]SetLog, 0)
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}

// AddSet logs a set. A removed set with the same number is brought back with
// the new values, an active one is a conflict.
func (r *Repo) AddSet(ctx context.Context, set SetLog) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("log.id", set.WorkoutLogID),
		attribute.Int("exercise.id", set.ExerciseID),
		attribute.Int("set.number", set.SetNumber),
	)

	added, err := scanSet(r.db.QueryRow(
		ctx,
		`INSERT INTO set_log (workout_log_id, exercise_id, set_number, reps, weight, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (workout_log_id, exercise_id, set_number) DO UPDATE
			SET reps = EXCLUDED.reps,
				weight = EXCLUDED.weight,
				notes = EXCLUDED.notes,
				is_active = TRUE,
				updated_at = now()
			WHERE set_log.is_active = FALSE
		RETURNING `+setColumns,
		set.WorkoutLogID, set.ExerciseID, set.SetNumber, set.Reps, set.Weight, set.Notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetExists
		}
		if pkg.IsForeignKeyViolationError(err) {
			return nil, exercises.ErrExerciseNotFound
		}
		return nil, err
	}
	return added, nil
}

// DeactivateSet removes a set, if it belongs to one of the user's logs.
func (r *Repo) DeactivateSet(ctx context.Context, userID, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracking.deactivateSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", setID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE set_log s SET is_active = FALSE, updated_at = now()
		FROM workout_log wl
		WHERE s.id = $1 AND s.is_active AND wl.id = s.workout_log_id AND wl.user_id = $2`,
		setID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

// scanLog reads logColumns, plus any extra trailing columns into extra.
func scanLog(row pgx.Row, extra ...any) (*WorkoutLog, error) {
	var l WorkoutLog
	day := templates.DayTemplate{IsActive: true}
	dest := []any{
		&l.ID, &l.UserID, &l.WorkoutDayID, &l.DayOrder, &l.WeekAssignmentID,
		&l.Date, &l.Completed, &l.Notes, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
		&day.Type, &day.Name,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	day.ID = l.WorkoutDayID
	l.WorkoutDay = &day
	return &l, nil
}

func scanSet(row pgx.Row) (*SetLog, error) {
	var s SetLog
	if err := row.Scan(
		&s.ID, &s.WorkoutLogID, &s.ExerciseID, &s.SetNumber, &s.Reps, &s.Weight, &s.Notes, &s.IsActive, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
