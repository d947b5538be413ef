package postgres

import (
	"context"
	"errors"

	"liftinglog/lifting-log/internal/calendar"
	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgWorkoutRepository implements repository.WorkoutRepository.
type pgWorkoutRepository struct {
	pool *pgxpool.Pool
}

func NewWorkoutRepository(pool *pgxpool.Pool) repository.WorkoutRepository {
	return &pgWorkoutRepository{pool: pool}
}

// Create persists the workout tree in a single transaction. Generated ids are
// written back onto the passed workout so the caller can return them.
func (r *pgWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = tx.QueryRow(ctx,
		`INSERT INTO workouts (name, username, description, workout_date, start_time, duration)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		workout.Name, workout.Username, workout.Description,
		int(workout.Date), workout.StartTime, workout.Duration,
	).Scan(&workout.ID); err != nil {
		return err
	}

	if err = insertWorkoutEntries(ctx, tx, workout); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// insertWorkoutEntries writes the child tree in submitted order; positions
// are 0-based so reloads preserve array order.
func insertWorkoutEntries(ctx context.Context, tx pgx.Tx, workout *domain.Workout) error {
	for pos := range workout.Entries {
		entry := &workout.Entries[pos]
		if err := tx.QueryRow(ctx,
			`INSERT INTO workout_exercise_entries (workout_id, exercise_id, description, position)
				VALUES ($1, $2, $3, $4) RETURNING id`,
			workout.ID, entry.ExerciseID, entry.Description, pos,
		).Scan(&entry.ID); err != nil {
			return err
		}

		for setPos, set := range entry.SetEntries {
			if _, err := tx.Exec(ctx,
				`INSERT INTO workout_set_entries (exercise_entry_id, weight, reps, t, position)
					VALUES ($1, $2, $3, $4, $5)`,
				entry.ID, set.Weight, set.Reps, set.Time, setPos,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *pgWorkoutRepository) GetByID(ctx context.Context, id int64, username string) (*domain.Workout, error) {
	var workout domain.Workout
	var date int
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, username, description, workout_date, start_time, duration
			FROM workouts WHERE id = $1 AND username = $2`,
		id, username,
	).Scan(&workout.ID, &workout.Name, &workout.Username, &workout.Description,
		&date, &workout.StartTime, &workout.Duration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	workout.Date = calendar.Date(date)

	if err := r.loadEntries(ctx, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *pgWorkoutRepository) ListByUsername(ctx context.Context, username string, since *calendar.Date) ([]domain.Workout, error) {
	query := `SELECT id, name, username, description, workout_date, start_time, duration
		FROM workouts WHERE username = $1 ORDER BY workout_date, id`
	args := []any{username}
	if since != nil {
		query = `SELECT id, name, username, description, workout_date, start_time, duration
			FROM workouts WHERE username = $1 AND workout_date >= $2 ORDER BY workout_date, id`
		args = append(args, int(*since))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var workout domain.Workout
		var date int
		if err := rows.Scan(&workout.ID, &workout.Name, &workout.Username, &workout.Description,
			&date, &workout.StartTime, &workout.Duration); err != nil {
			return nil, err
		}
		workout.Date = calendar.Date(date)
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workouts {
		if err := r.loadEntries(ctx, &workouts[i]); err != nil {
			return nil, err
		}
	}
	return workouts, nil
}

// loadEntries attaches the entry/set tree, position-ordered, with exercise
// names resolved in the same query.
func (r *pgWorkoutRepository) loadEntries(ctx context.Context, workout *domain.Workout) error {
	rows, err := r.pool.Query(ctx,
		`SELECT wee.id, wee.exercise_id, e.name, wee.description
			FROM workout_exercise_entries wee
			JOIN exercises e ON e.id = wee.exercise_id
			WHERE wee.workout_id = $1
			ORDER BY wee.position`,
		workout.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	workout.Entries = nil
	for rows.Next() {
		var entry domain.ExerciseEntry
		if err := rows.Scan(&entry.ID, &entry.ExerciseID, &entry.ExerciseName, &entry.Description); err != nil {
			return err
		}
		workout.Entries = append(workout.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range workout.Entries {
		entry := &workout.Entries[i]
		setRows, err := r.pool.Query(ctx,
			`SELECT weight, reps, t FROM workout_set_entries
				WHERE exercise_entry_id = $1 ORDER BY position`,
			entry.ID,
		)
		if err != nil {
			return err
		}
		for setRows.Next() {
			var set domain.SetEntry
			if err := setRows.Scan(&set.Weight, &set.Reps, &set.Time); err != nil {
				setRows.Close()
				return err
			}
			entry.SetEntries = append(entry.SetEntries, set)
		}
		if err := setRows.Err(); err != nil {
			setRows.Close()
			return err
		}
		setRows.Close()
	}
	return nil
}

// Update rewrites the parent row and fully replaces the child tree, all in
// one transaction. Cascade takes the old set entries with the old entries.
func (r *pgWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE workouts SET name = $1, description = $2, workout_date = $3, start_time = $4, duration = $5
			WHERE id = $6 AND username = $7`,
		workout.Name, workout.Description, int(workout.Date), workout.StartTime, workout.Duration,
		workout.ID, workout.Username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = repository.ErrNotFound
		return err
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM workout_exercise_entries WHERE workout_id = $1`, workout.ID,
	); err != nil {
		return err
	}

	if err = insertWorkoutEntries(ctx, tx, workout); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgWorkoutRepository) Delete(ctx context.Context, id int64, username string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM workouts WHERE id = $1 AND username = $2`, id, username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
