package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx connection pool and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Migrate creates the schema if it does not exist yet. Child tables cascade
// on parent deletion so removing a workout, template or exercise cleans up
// its whole row tree.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT,
			full_name TEXT,
			disabled BOOLEAN NOT NULL DEFAULT FALSE,
			hashed_password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS muscles (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS exercises (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			username TEXT,
			description TEXT,
			weight BOOLEAN NOT NULL DEFAULT FALSE,
			reps BOOLEAN NOT NULL DEFAULT FALSE,
			time BOOLEAN NOT NULL DEFAULT FALSE,
			media_key TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS exercise_muscles (
			exercise_id BIGINT NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
			muscle_id BIGINT NOT NULL REFERENCES muscles (id),
			is_primary_muscle BOOLEAN NOT NULL,
			PRIMARY KEY (exercise_id, muscle_id)
		)`,
		`CREATE TABLE IF NOT EXISTS workouts (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			username TEXT NOT NULL,
			description TEXT,
			workout_date INTEGER NOT NULL,
			start_time TEXT NOT NULL,
			duration TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS workout_exercise_entries (
			id BIGSERIAL PRIMARY KEY,
			workout_id BIGINT NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
			exercise_id BIGINT NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
			description TEXT,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS workout_set_entries (
			id BIGSERIAL PRIMARY KEY,
			exercise_entry_id BIGINT NOT NULL REFERENCES workout_exercise_entries (id) ON DELETE CASCADE,
			weight DOUBLE PRECISION,
			reps INTEGER,
			t TEXT,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS template_workouts (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			username TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS template_exercises (
			id BIGSERIAL PRIMARY KEY,
			workout_template_id BIGINT NOT NULL REFERENCES template_workouts (id) ON DELETE CASCADE,
			exercise_id BIGINT NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
			routine_note TEXT,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS template_sets (
			id BIGSERIAL PRIMARY KEY,
			exercise_template_id BIGINT NOT NULL REFERENCES template_exercises (id) ON DELETE CASCADE,
			reps INTEGER,
			rep_range_start INTEGER,
			rep_range_end INTEGER,
			time_range_start TEXT,
			time_range_end TEXT,
			position INTEGER NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
