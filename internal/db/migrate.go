package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const Schema = `
CREATE TABLE IF NOT EXISTS app_user
(
    id            SERIAL PRIMARY KEY,
    email         VARCHAR     NOT NULL UNIQUE,
    username      VARCHAR     NOT NULL,
    password_hash VARCHAR     NOT NULL,
    first_name    VARCHAR     NOT NULL DEFAULT '',
    last_name     VARCHAR     NOT NULL DEFAULT '',
    role          VARCHAR     NOT NULL DEFAULT 'USER' CHECK (role IN ('ADMIN', 'USER')),
    is_active     BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercise
(
    id           SERIAL PRIMARY KEY,
    name         VARCHAR     NOT NULL UNIQUE,
    muscle_group VARCHAR     NOT NULL,
    image_url    VARCHAR     NOT NULL DEFAULT '',
    description  TEXT        NOT NULL DEFAULT '',
    is_active    BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_exercise_muscle_group ON exercise (muscle_group);

CREATE TABLE IF NOT EXISTS workout_day_template
(
    id         SERIAL PRIMARY KEY,
    type       VARCHAR     NOT NULL,
    name       VARCHAR     NOT NULL,
    is_active  BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_day_exercise
(
    id             SERIAL PRIMARY KEY,
    workout_day_id INTEGER     NOT NULL REFERENCES workout_day_template (id),
    exercise_id    INTEGER     NOT NULL REFERENCES exercise (id),
    exercise_order INTEGER     NOT NULL CHECK (exercise_order >= 1),
    number_of_sets INTEGER     NOT NULL DEFAULT 3 CHECK (number_of_sets BETWEEN 1 AND 10),
    is_active      BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (workout_day_id, exercise_id)
);

CREATE TABLE IF NOT EXISTS workout_week_template
(
    id          SERIAL PRIMARY KEY,
    name        VARCHAR     NOT NULL UNIQUE,
    description TEXT        NOT NULL DEFAULT '',
    is_active   BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workout_week_day
(
    id               SERIAL PRIMARY KEY,
    week_template_id INTEGER     NOT NULL REFERENCES workout_week_template (id),
    workout_day_id   INTEGER     NOT NULL REFERENCES workout_day_template (id),
    day_order        INTEGER     NOT NULL CHECK (day_order BETWEEN 1 AND 7),
    is_active        BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (week_template_id, day_order)
);

CREATE TABLE IF NOT EXISTS user_week_assignment
(
    id               SERIAL PRIMARY KEY,
    user_id          INTEGER     NOT NULL REFERENCES app_user (id),
    week_template_id INTEGER     NOT NULL REFERENCES workout_week_template (id),
    start_date       DATE        NOT NULL,
    is_active        BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
-- at most one active assignment per user
CREATE UNIQUE INDEX IF NOT EXISTS ux_user_week_assignment_active
    ON user_week_assignment (user_id) WHERE is_active;

CREATE TABLE IF NOT EXISTS user_custom_workout_day
(
    id             SERIAL PRIMARY KEY,
    user_id        INTEGER     NOT NULL REFERENCES app_user (id),
    workout_day_id INTEGER     NOT NULL REFERENCES workout_day_template (id),
    day_order      INTEGER     NOT NULL CHECK (day_order BETWEEN 1 AND 7),
    is_active      BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (user_id, day_order)
);

CREATE TABLE IF NOT EXISTS user_custom_exercise_config
(
    id                      SERIAL PRIMARY KEY,
    user_id                 INTEGER     NOT NULL REFERENCES app_user (id),
    workout_day_exercise_id INTEGER     NOT NULL REFERENCES workout_day_exercise (id),
    number_of_sets          INTEGER     NOT NULL CHECK (number_of_sets BETWEEN 1 AND 10),
    is_active               BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (user_id, workout_day_exercise_id)
);

CREATE TABLE IF NOT EXISTS workout_log
(
    id                 SERIAL PRIMARY KEY,
    user_id            INTEGER     NOT NULL REFERENCES app_user (id),
    workout_day_id     INTEGER     NOT NULL REFERENCES workout_day_template (id),
    day_order          INTEGER     NOT NULL CHECK (day_order BETWEEN 1 AND 7),
    week_assignment_id INTEGER REFERENCES user_week_assignment (id),
    date               DATE        NOT NULL,
    completed          BOOLEAN     NOT NULL DEFAULT FALSE,
    notes              TEXT        NOT NULL DEFAULT '',
    is_active          BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (user_id, workout_day_id, day_order, date)
);
CREATE INDEX IF NOT EXISTS ix_workout_log_user_date ON workout_log (user_id, date);

CREATE TABLE IF NOT EXISTS set_log
(
    id             SERIAL PRIMARY KEY,
    workout_log_id INTEGER     NOT NULL REFERENCES workout_log (id) ON DELETE CASCADE,
    exercise_id    INTEGER     NOT NULL REFERENCES exercise (id),
    set_number     INTEGER     NOT NULL CHECK (set_number >= 1),
    reps           INTEGER     NOT NULL CHECK (reps >= 0),
    weight         NUMERIC(6, 2),
    notes          TEXT        NOT NULL DEFAULT '',
    is_active      BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (workout_log_id, exercise_id, set_number)
);
`

// Migrate ensures all tables exist. Safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
