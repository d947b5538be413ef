package stats

import (
	"context"
	"testing"

	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog map[int64]*domain.Exercise

func (c stubCatalog) GetByID(_ context.Context, id int64) (*domain.Exercise, error) {
	exercise, ok := c[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return exercise, nil
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestAnalyzeEmpty(t *testing.T) {
	analyzer := NewAnalyzer(stubCatalog{})

	s, err := analyzer.Analyze(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, s.ExerciseCount)
	assert.Zero(t, s.Sets)
	assert.Zero(t, s.Reps)
	assert.Zero(t, s.Volume)
	assert.Empty(t, s.Distributions.SetDistribution)
	assert.Empty(t, s.Distributions.MuscleDistribution)
}

func TestAnalyzeSinglePrimaryMuscle(t *testing.T) {
	catalog := stubCatalog{
		1: {ID: 1, Name: "Barbell Squat", Weight: true, Reps: true, PrimaryMuscles: []string{"Quadriceps"}},
	}
	analyzer := NewAnalyzer(catalog)

	workout := domain.Workout{
		Entries: []domain.ExerciseEntry{{
			ExerciseID: 1,
			SetEntries: []domain.SetEntry{
				{Weight: floatPtr(100), Reps: intPtr(10)},
				{Weight: floatPtr(100), Reps: intPtr(10)},
				{Weight: floatPtr(100), Reps: intPtr(10)},
			},
		}},
	}

	s, err := analyzer.Analyze(context.Background(), []domain.Workout{workout})
	require.NoError(t, err)

	assert.Equal(t, 1, s.ExerciseCount)
	assert.Equal(t, 3, s.Sets)
	assert.Equal(t, 30, s.Reps)
	assert.Equal(t, 3000.0, s.Volume)

	assert.Equal(t, domain.MuscleSets{Primary: 3}, s.Distributions.SetDistribution["Quadriceps"])
	pct, ok := s.Distributions.MuscleDistribution.Percentage("Quadriceps")
	require.True(t, ok)
	assert.Equal(t, 100, pct)
}

func TestAnalyzeSecondaryMuscleHalfWeight(t *testing.T) {
	catalog := stubCatalog{
		2: {ID: 2, Name: "Bench Press", Weight: true, Reps: true,
			PrimaryMuscles: []string{"Chest"}, SecondaryMuscles: []string{"Triceps"}},
	}
	analyzer := NewAnalyzer(catalog)

	workout := domain.Workout{
		Entries: []domain.ExerciseEntry{{
			ExerciseID: 2,
			SetEntries: []domain.SetEntry{
				{Weight: floatPtr(80), Reps: intPtr(5)},
				{Weight: floatPtr(80), Reps: intPtr(5)},
			},
		}},
	}

	s, err := analyzer.Analyze(context.Background(), []domain.Workout{workout})
	require.NoError(t, err)

	// 2 primary chest sets vs 1.0 weighted triceps set: 2/3 and 1/3,
	// truncated toward zero.
	assert.Equal(t, domain.MuscleSets{Primary: 2}, s.Distributions.SetDistribution["Chest"])
	assert.Equal(t, domain.MuscleSets{Secondary: 1}, s.Distributions.SetDistribution["Triceps"])

	chest, _ := s.Distributions.MuscleDistribution.Percentage("Chest")
	triceps, _ := s.Distributions.MuscleDistribution.Percentage("Triceps")
	assert.Equal(t, 66, chest)
	assert.Equal(t, 33, triceps)
}

func TestAnalyzeOrderingAndTies(t *testing.T) {
	catalog := stubCatalog{
		1: {ID: 1, PrimaryMuscles: []string{"Quadriceps"}},
		2: {ID: 2, PrimaryMuscles: []string{"Chest"}},
		3: {ID: 3, PrimaryMuscles: []string{"Lats"}},
	}
	analyzer := NewAnalyzer(catalog)

	set := domain.SetEntry{}
	workout := domain.Workout{
		Entries: []domain.ExerciseEntry{
			{ExerciseID: 1, SetEntries: []domain.SetEntry{set, set}},
			{ExerciseID: 2, SetEntries: []domain.SetEntry{set}},
			{ExerciseID: 3, SetEntries: []domain.SetEntry{set}},
		},
	}

	s, err := analyzer.Analyze(context.Background(), []domain.Workout{workout})
	require.NoError(t, err)

	dist := s.Distributions.MuscleDistribution
	require.Len(t, dist, 3)
	// Largest share first, then alphabetical among ties.
	assert.Equal(t, "Quadriceps", dist[0].Muscle)
	assert.Equal(t, 50, dist[0].Percentage)
	assert.Equal(t, "Chest", dist[1].Muscle)
	assert.Equal(t, "Lats", dist[2].Muscle)
	assert.Equal(t, 25, dist[1].Percentage)
	assert.Equal(t, 25, dist[2].Percentage)
}

func TestAnalyzeUnknownExercise(t *testing.T) {
	analyzer := NewAnalyzer(stubCatalog{})

	workout := domain.Workout{
		Entries: []domain.ExerciseEntry{{ExerciseID: 42, SetEntries: []domain.SetEntry{{}}}},
	}

	_, err := analyzer.Analyze(context.Background(), []domain.Workout{workout})
	assert.Error(t, err)
}

func TestAnalyzeAcrossWorkouts(t *testing.T) {
	catalog := stubCatalog{
		1: {ID: 1, PrimaryMuscles: []string{"Chest"}},
	}
	analyzer := NewAnalyzer(catalog)

	workoutA := domain.Workout{
		Entries: []domain.ExerciseEntry{{
			ExerciseID: 1,
			SetEntries: []domain.SetEntry{{Reps: intPtr(8)}},
		}},
	}
	workoutB := domain.Workout{
		Entries: []domain.ExerciseEntry{{
			ExerciseID: 1,
			SetEntries: []domain.SetEntry{{Reps: intPtr(12)}},
		}},
	}

	s, err := analyzer.Analyze(context.Background(), []domain.Workout{workoutA, workoutB})
	require.NoError(t, err)

	assert.Equal(t, 2, s.ExerciseCount)
	assert.Equal(t, 2, s.Sets)
	assert.Equal(t, 20, s.Reps)
	assert.Equal(t, domain.MuscleSets{Primary: 2}, s.Distributions.SetDistribution["Chest"])
}
