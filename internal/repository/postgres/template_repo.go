package postgres

import (
	"context"
	"errors"

	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgTemplateRepository implements repository.TemplateRepository.
type pgTemplateRepository struct {
	pool *pgxpool.Pool
}

func NewTemplateRepository(pool *pgxpool.Pool) repository.TemplateRepository {
	return &pgTemplateRepository{pool: pool}
}

func (r *pgTemplateRepository) Create(ctx context.Context, template *domain.WorkoutTemplate) (err error) {
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
		`INSERT INTO template_workouts (name, username) VALUES ($1, $2) RETURNING id`,
		template.Name, template.Username,
	).Scan(&template.ID); err != nil {
		return err
	}

	if err = insertTemplateEntries(ctx, tx, template); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertTemplateEntries(ctx context.Context, tx pgx.Tx, template *domain.WorkoutTemplate) error {
	for pos := range template.ExerciseTemplates {
		entry := &template.ExerciseTemplates[pos]
		if err := tx.QueryRow(ctx,
			`INSERT INTO template_exercises (workout_template_id, exercise_id, routine_note, position)
				VALUES ($1, $2, $3, $4) RETURNING id`,
			template.ID, entry.ExerciseID, entry.RoutineNote, pos,
		).Scan(&entry.ID); err != nil {
			return err
		}

		for setPos, set := range entry.SetTemplates {
			if _, err := tx.Exec(ctx,
				`INSERT INTO template_sets
					(exercise_template_id, reps, rep_range_start, rep_range_end, time_range_start, time_range_end, position)
					VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				entry.ID, set.Reps, set.RepRangeStart, set.RepRangeEnd,
				set.TimeRangeStart, set.TimeRangeEnd, setPos,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *pgTemplateRepository) GetByID(ctx context.Context, id int64, username string) (*domain.WorkoutTemplate, error) {
	var template domain.WorkoutTemplate
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, username FROM template_workouts WHERE id = $1 AND username = $2`,
		id, username,
	).Scan(&template.ID, &template.Name, &template.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadEntries(ctx, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *pgTemplateRepository) ListByUsername(ctx context.Context, username string) ([]domain.WorkoutTemplate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, username FROM template_workouts WHERE username = $1 ORDER BY id`,
		username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []domain.WorkoutTemplate
	for rows.Next() {
		var template domain.WorkoutTemplate
		if err := rows.Scan(&template.ID, &template.Name, &template.Username); err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range templates {
		if err := r.loadEntries(ctx, &templates[i]); err != nil {
			return nil, err
		}
	}
	return templates, nil
}

func (r *pgTemplateRepository) loadEntries(ctx context.Context, template *domain.WorkoutTemplate) error {
	rows, err := r.pool.Query(ctx,
		`SELECT te.id, te.exercise_id, e.name, te.routine_note
			FROM template_exercises te
			JOIN exercises e ON e.id = te.exercise_id
			WHERE te.workout_template_id = $1
			ORDER BY te.position`,
		template.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	template.ExerciseTemplates = nil
	for rows.Next() {
		var entry domain.ExerciseTemplate
		if err := rows.Scan(&entry.ID, &entry.ExerciseID, &entry.ExerciseName, &entry.RoutineNote); err != nil {
			return err
		}
		template.ExerciseTemplates = append(template.ExerciseTemplates, entry)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range template.ExerciseTemplates {
		entry := &template.ExerciseTemplates[i]
		setRows, err := r.pool.Query(ctx,
			`SELECT reps, rep_range_start, rep_range_end, time_range_start, time_range_end
				FROM template_sets WHERE exercise_template_id = $1 ORDER BY position`,
			entry.ID,
		)
		if err != nil {
			return err
		}
		for setRows.Next() {
			var set domain.SetTemplate
			if err := setRows.Scan(&set.Reps, &set.RepRangeStart, &set.RepRangeEnd,
				&set.TimeRangeStart, &set.TimeRangeEnd); err != nil {
				setRows.Close()
				return err
			}
			entry.SetTemplates = append(entry.SetTemplates, set)
		}
		if err := setRows.Err(); err != nil {
			setRows.Close()
			return err
		}
		setRows.Close()
	}
	return nil
}

func (r *pgTemplateRepository) ExistsByName(ctx context.Context, name, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM template_workouts WHERE name = $1 AND username = $2)`,
		name, username,
	).Scan(&exists)
	return exists, err
}

// Update rewrites the template row and fully replaces its exercise/set tree.
func (r *pgTemplateRepository) Update(ctx context.Context, template *domain.WorkoutTemplate) (err error) {
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
		`UPDATE template_workouts SET name = $1 WHERE id = $2 AND username = $3`,
		template.Name, template.ID, template.Username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = repository.ErrNotFound
		return err
	}

	if _, err = tx.Exec(ctx,
		`DELETE FROM template_exercises WHERE workout_template_id = $1`, template.ID,
	); err != nil {
		return err
	}

	if err = insertTemplateEntries(ctx, tx, template); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgTemplateRepository) Delete(ctx context.Context, id int64, username string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM template_workouts WHERE id = $1 AND username = $2`, id, username,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
