package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultMuscles is the fixed muscle enumeration. End users never extend it.
var defaultMuscles = []string{
	"Chest",
	"Triceps",
	"Biceps",
	"Forearms",
	"Abdominals",
	"Front Delts",
	"Side Delts",
	"Rear Delts",
	"Lats",
	"Lower Back",
	"Upper Back",
	"Quadriceps",
	"Glutes",
	"Hamstrings",
	"Calves",
	"Adductors",
	"Abductors",
	"Neck",
}

type defaultExercise struct {
	name             string
	description      string
	weight           bool
	reps             bool
	time             bool
	primaryMuscles   []string
	secondaryMuscles []string
}

// TODO: move the default exercises into a data file once the catalog grows
// beyond the pressing/pulling basics.
var defaultExercises = []defaultExercise{
	{
		name:             "Bench Press(Barbell)",
		description:      "Lie horizontally on a weight training bench. Begin by holding the barbell over your head. One rep is completed by lowering the bar to your chest and then pressing it back upwards back to its original position.",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Bench Press(Dumbbell)",
		description:      "Lie horizontally on a weight training bench. Begin by holding dumbbells up with straight arms. One rep is completed by lowering dumbbells besides chest while bending elbows and then pressing it back upwards back to its original position.",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Incline Bench Press(Barbell)",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Incline Bench Press(Dumbell)",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Chest Dips",
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Chest Dips(Weighted)",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Chest Dips(Assisted)",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Triceps Dips",
		reps:             true,
		primaryMuscles:   []string{"Triceps"},
		secondaryMuscles: []string{"Chest", "Front Delts"},
	},
	{
		name:             "Triceps Dips(Weighted)",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Triceps"},
		secondaryMuscles: []string{"Chest", "Front Delts"},
	},
	{
		name:             "Triceps Dips(Assisted)",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Triceps"},
		secondaryMuscles: []string{"Chest", "Front Delts"},
	},
	{
		name:             "Push Ups",
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Push Ups(Weighted)",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Incline Push Ups",
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Decline Push Ups",
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Diamond Push Ups",
		reps:             true,
		primaryMuscles:   []string{"Triceps"},
		secondaryMuscles: []string{"Chest", "Front Delts"},
	},
	{
		name:             "Archer Push Ups",
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "One Arm Push Ups",
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Pike Push Ups",
		reps:             true,
		primaryMuscles:   []string{"Front Delts"},
		secondaryMuscles: []string{"Triceps", "Chest", "Side Delts"},
	},
	{
		name:             "Ring Push Ups",
		reps:             true,
		primaryMuscles:   []string{"Chest"},
		secondaryMuscles: []string{"Triceps", "Front Delts"},
	},
	{
		name:             "Pull Ups",
		description:      "Begin by gripping an overhead bar shoulder-width or a little wider and enter into a dead hang. One rep is completed by pulling chin over the bar and returning to initial hang.",
		reps:             true,
		primaryMuscles:   []string{"Lats"},
		secondaryMuscles: []string{"Biceps", "Forearms", "Upper Back"},
	},
	{
		name:             "Pull Ups(Weighted)",
		description:      "Begin by gripping an overhead bar shoulder-width or a little wider and enter into a dead hang. One rep is completed by pulling chin over the bar and returning to initial hang.",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Lats"},
		secondaryMuscles: []string{"Biceps", "Forearms", "Upper Back"},
	},
	{
		name:             "Pull Ups(Assisted)",
		description:      "Using a resistance band or pull up assisted station, begin by gripping an overhead bar shoulder-width or a little wider and enter into a dead hang. One rep is completed by pulling chin over the bar and returning to initial hang.",
		weight:           true,
		reps:             true,
		primaryMuscles:   []string{"Lats"},
		secondaryMuscles: []string{"Biceps", "Forearms", "Upper Back"},
	},
}

// SeedDefaults loads the muscle enumeration and the default exercise catalog
// on first start. A populated muscles table means seeding already happened.
func SeedDefaults(ctx context.Context, pool *pgxpool.Pool) error {
	var muscleCount int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM muscles`).Scan(&muscleCount); err != nil {
		return err
	}
	if muscleCount > 0 {
		return nil
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	muscleIDs := make(map[string]int64, len(defaultMuscles))
	for _, muscle := range defaultMuscles {
		var id int64
		if err = tx.QueryRow(ctx,
			`INSERT INTO muscles (name) VALUES ($1) RETURNING id`, muscle,
		).Scan(&id); err != nil {
			return err
		}
		muscleIDs[muscle] = id
	}

	for _, exercise := range defaultExercises {
		var description *string
		if exercise.description != "" {
			description = &exercise.description
		}

		var exerciseID int64
		if err = tx.QueryRow(ctx,
			`INSERT INTO exercises (name, username, description, weight, reps, time)
				VALUES ($1, NULL, $2, $3, $4, $5) RETURNING id`,
			exercise.name, description, exercise.weight, exercise.reps, exercise.time,
		).Scan(&exerciseID); err != nil {
			return err
		}

		for _, muscle := range exercise.primaryMuscles {
			if _, err = tx.Exec(ctx,
				`INSERT INTO exercise_muscles (exercise_id, muscle_id, is_primary_muscle) VALUES ($1, $2, TRUE)`,
				exerciseID, muscleIDs[muscle],
			); err != nil {
				return err
			}
		}
		for _, muscle := range exercise.secondaryMuscles {
			if _, err = tx.Exec(ctx,
				`INSERT INTO exercise_muscles (exercise_id, muscle_id, is_primary_muscle) VALUES ($1, $2, FALSE)`,
				exerciseID, muscleIDs[muscle],
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}
