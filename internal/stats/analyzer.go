// Package stats computes derived workout statistics: totals and the weighted
// muscle-group distribution.
package stats

import (
	"context"
	"fmt"
	"sort"

	"liftinglog/lifting-log/internal/domain"
)

// ExerciseCatalog resolves exercise ids to their records, muscle tags
// included. Workout entries may reference default exercises as well as the
// caller's own, so lookups are by bare id.
type ExerciseCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
}

// Analyzer aggregates statistics over loaded workouts.
type Analyzer struct {
	catalog ExerciseCatalog
}

func NewAnalyzer(catalog ExerciseCatalog) *Analyzer {
	return &Analyzer{catalog: catalog}
}

// Analyze computes the summary stats for the given workouts, which must
// already carry their exercise and set entries. An empty slice yields zero
// counts and empty distributions.
func (a *Analyzer) Analyze(ctx context.Context, workouts []domain.Workout) (*domain.WorkoutStats, error) {
	s := &domain.WorkoutStats{}

	for _, workout := range workouts {
		s.ExerciseCount += len(workout.Entries)
		for _, entry := range workout.Entries {
			s.Sets += len(entry.SetEntries)
			for _, set := range entry.SetEntries {
				if set.Reps != nil {
					s.Reps += *set.Reps
				}
				if set.Weight != nil && set.Reps != nil {
					s.Volume += *set.Weight * float64(*set.Reps)
				}
			}
		}
	}

	distributions, err := a.distributions(ctx, workouts)
	if err != nil {
		return nil, err
	}
	s.Distributions = *distributions

	return s, nil
}

// distributions walks every exercise entry and credits each of its exercise's
// muscles once per performed set: full weight for primary movers, half for
// secondary.
func (a *Analyzer) distributions(ctx context.Context, workouts []domain.Workout) (*domain.Distributions, error) {
	setDistribution := make(map[string]domain.MuscleSets)
	var totalMuscleSets float64

	for _, workout := range workouts {
		for _, entry := range workout.Entries {
			exercise, err := a.catalog.GetByID(ctx, entry.ExerciseID)
			if err != nil {
				return nil, fmt.Errorf("resolve exercise %d: %w", entry.ExerciseID, err)
			}

			sets := float64(len(entry.SetEntries))
			for _, muscle := range exercise.PrimaryMuscles {
				ms := setDistribution[muscle]
				ms.Primary += primaryWeight * sets
				setDistribution[muscle] = ms
				totalMuscleSets += primaryWeight * sets
			}
			for _, muscle := range exercise.SecondaryMuscles {
				ms := setDistribution[muscle]
				ms.Secondary += secondaryWeight * sets
				setDistribution[muscle] = ms
				totalMuscleSets += secondaryWeight * sets
			}
		}
	}

	muscleDistribution := domain.MuscleDistribution{}
	if totalMuscleSets > 0 {
		for muscle, sets := range setDistribution {
			pct := int(100 * (sets.Primary + sets.Secondary) / totalMuscleSets)
			muscleDistribution = append(muscleDistribution, domain.MusclePercentage{
				Muscle:     muscle,
				Percentage: pct,
			})
		}
		// Descending by share; name order breaks ties so output is stable.
		sort.Slice(muscleDistribution, func(i, j int) bool {
			if muscleDistribution[i].Percentage != muscleDistribution[j].Percentage {
				return muscleDistribution[i].Percentage > muscleDistribution[j].Percentage
			}
			return muscleDistribution[i].Muscle < muscleDistribution[j].Muscle
		})
	}

	return &domain.Distributions{
		SetDistribution:    setDistribution,
		MuscleDistribution: muscleDistribution,
	}, nil
}

const (
	primaryWeight   = 1.0
	secondaryWeight = 0.5
)
