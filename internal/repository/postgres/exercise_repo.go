package postgres

import (
	"context"
	"errors"

	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgExerciseRepository implements repository.ExerciseRepository.
type pgExerciseRepository struct {
	pool *pgxpool.Pool
}

func NewExerciseRepository(pool *pgxpool.Pool) repository.ExerciseRepository {
	return &pgExerciseRepository{pool: pool}
}

// Create inserts the exercise and its muscle links in one transaction.
func (r *pgExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (_ int64, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var id int64
	if err = tx.QueryRow(ctx,
		`INSERT INTO exercises (name, username, description, weight, reps, time)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		exercise.Name, exercise.Username, exercise.Description,
		exercise.Weight, exercise.Reps, exercise.Time,
	).Scan(&id); err != nil {
		return 0, err
	}

	if err = insertExerciseMuscles(ctx, tx, id, exercise.PrimaryMuscles, true); err != nil {
		return 0, err
	}
	if err = insertExerciseMuscles(ctx, tx, id, exercise.SecondaryMuscles, false); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func insertExerciseMuscles(ctx context.Context, tx pgx.Tx, exerciseID int64, muscles []string, primary bool) error {
	for _, muscle := range muscles {
		if _, err := tx.Exec(ctx,
			`INSERT INTO exercise_muscles (exercise_id, muscle_id, is_primary_muscle)
				SELECT $1, id, $3 FROM muscles WHERE name = $2`,
			exerciseID, muscle, primary,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *pgExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, username, description, weight, reps, time, media_key
			FROM exercises WHERE id = $1`,
		id,
	).Scan(&exercise.ID, &exercise.Name, &exercise.Username, &exercise.Description,
		&exercise.Weight, &exercise.Reps, &exercise.Time, &exercise.MediaKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadMuscles(ctx, &exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *pgExerciseRepository) ListByOwner(ctx context.Context, username *string) ([]domain.Exercise, error) {
	query := `SELECT id, name, username, description, weight, reps, time, media_key
		FROM exercises WHERE username IS NULL ORDER BY id`
	args := []any{}
	if username != nil {
		query = `SELECT id, name, username, description, weight, reps, time, media_key
			FROM exercises WHERE username = $1 ORDER BY id`
		args = append(args, *username)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var exercise domain.Exercise
		if err := rows.Scan(&exercise.ID, &exercise.Name, &exercise.Username, &exercise.Description,
			&exercise.Weight, &exercise.Reps, &exercise.Time, &exercise.MediaKey); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range exercises {
		if err := r.loadMuscles(ctx, &exercises[i]); err != nil {
			return nil, err
		}
	}
	return exercises, nil
}

func (r *pgExerciseRepository) loadMuscles(ctx context.Context, exercise *domain.Exercise) error {
	rows, err := r.pool.Query(ctx,
		`SELECT m.name, em.is_primary_muscle
			FROM exercise_muscles em
			JOIN muscles m ON m.id = em.muscle_id
			WHERE em.exercise_id = $1
			ORDER BY m.id`,
		exercise.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	exercise.PrimaryMuscles = nil
	exercise.SecondaryMuscles = nil
	for rows.Next() {
		var name string
		var primary bool
		if err := rows.Scan(&name, &primary); err != nil {
			return err
		}
		if primary {
			exercise.PrimaryMuscles = append(exercise.PrimaryMuscles, name)
		} else {
			exercise.SecondaryMuscles = append(exercise.SecondaryMuscles, name)
		}
	}
	return rows.Err()
}

func (r *pgExerciseRepository) ExistsByName(ctx context.Context, name, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM exercises WHERE name = $1 AND username = $2)`,
		name, username,
	).Scan(&exists)
	return exists, err
}

// Update rewrites the exercise row and fully replaces its muscle links.
func (r *pgExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) (err error) {
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
		`UPDATE exercises SET name = $1, description = $2, weight = $3, reps = $4, time = $5
			WHERE id = $6`,
		exercise.Name, exercise.Description, exercise.Weight, exercise.Reps, exercise.Time,
		exercise.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = repository.ErrNotFound
		return err
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM exercise_muscles WHERE exercise_id = $1`, exercise.ID,
	); err != nil {
		return err
	}
	if err = insertExerciseMuscles(ctx, tx, exercise.ID, exercise.PrimaryMuscles, true); err != nil {
		return err
	}
	if err = insertExerciseMuscles(ctx, tx, exercise.ID, exercise.SecondaryMuscles, false); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgExerciseRepository) Delete(ctx context.Context, id int64, username string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM exercises WHERE id = $1 AND username = $2`, id, username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgExerciseRepository) SetMediaKey(ctx context.Context, id int64, username, key string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE exercises SET media_key = $1 WHERE id = $2 AND username = $3`,
		key, id, username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgExerciseRepository) Muscles(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM muscles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var muscles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		muscles = append(muscles, name)
	}
	return muscles, rows.Err()
}

func (r *pgExerciseRepository) MuscleExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM muscles WHERE name = $1)`, name,
	).Scan(&exists)
	return exists, err
}
