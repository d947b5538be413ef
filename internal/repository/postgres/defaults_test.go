package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMusclesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, muscle := range defaultMuscles {
		assert.False(t, seen[muscle], "duplicate muscle %q", muscle)
		seen[muscle] = true
	}
	assert.Len(t, defaultMuscles, 18)
}

func TestDefaultExercisesReferenceKnownMuscles(t *testing.T) {
	known := make(map[string]bool, len(defaultMuscles))
	for _, muscle := range defaultMuscles {
		known[muscle] = true
	}

	names := make(map[string]bool)
	for _, exercise := range defaultExercises {
		require.NotEmpty(t, exercise.name)
		assert.False(t, names[exercise.name], "duplicate exercise %q", exercise.name)
		names[exercise.name] = true

		// Every exercise has to track at least one measure.
		assert.True(t, exercise.weight || exercise.reps || exercise.time,
			"%q tracks nothing", exercise.name)

		for _, muscle := range append(append([]string{}, exercise.primaryMuscles...), exercise.secondaryMuscles...) {
			assert.True(t, known[muscle], "%q references unknown muscle %q", exercise.name, muscle)
		}
	}
}
