package service

import (
	"context"
	"testing"

	"liftinglog/lifting-log/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseCreate(t *testing.T) {
	repo := newStubExerciseRepo("Chest", "Triceps")
	svc := NewExerciseService(repo, nil)
	ctx := context.Background()

	exercise, err := svc.Create(ctx, "ada", &domain.Exercise{
		Name:             "Close-Grip Bench",
		Weight:           true,
		Reps:             true,
		PrimaryMuscles:   []string{"Triceps"},
		SecondaryMuscles: []string{"Chest"},
	})
	require.NoError(t, err)
	assert.NotZero(t, exercise.ID)
	require.NotNil(t, exercise.Username)
	assert.Equal(t, "ada", *exercise.Username)
}

func TestExerciseCreateValidation(t *testing.T) {
	repo := newStubExerciseRepo("Chest")
	svc := NewExerciseService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "ada", &domain.Exercise{Weight: true})
	assert.ErrorIs(t, err, ErrInvalidExercise)

	// At least one tracked measure is required.
	_, err = svc.Create(ctx, "ada", &domain.Exercise{Name: "Posing"})
	assert.ErrorIs(t, err, ErrInvalidExercise)

	_, err = svc.Create(ctx, "ada", &domain.Exercise{
		Name:           "Made Up",
		Weight:         true,
		PrimaryMuscles: []string{"Wings"},
	})
	assert.ErrorIs(t, err, ErrUnknownMuscle)
}

func TestExerciseCreateDuplicateName(t *testing.T) {
	repo := newStubExerciseRepo("Chest")
	svc := NewExerciseService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "ada", &domain.Exercise{Name: "Bench", Weight: true})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "ada", &domain.Exercise{Name: "Bench", Weight: true})
	assert.ErrorIs(t, err, ErrExerciseExists)

	// A different user may reuse the name.
	_, err = svc.Create(ctx, "grace", &domain.Exercise{Name: "Bench", Weight: true})
	assert.NoError(t, err)
}

func TestExerciseVisibility(t *testing.T) {
	repo := newStubExerciseRepo("Chest")
	svc := NewExerciseService(repo, nil)
	ctx := context.Background()

	defaultEx := repo.add(domain.Exercise{Name: "Push Up", Reps: true})
	adaEx := repo.add(domain.Exercise{Name: "Ada Special", Weight: true, Username: strPtr("ada")})

	got, err := svc.GetVisible(ctx, "grace", defaultEx.ID)
	require.NoError(t, err)
	assert.Equal(t, "Push Up", got.Name)

	_, err = svc.GetVisible(ctx, "grace", adaEx.ID)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = svc.GetVisible(ctx, "ada", adaEx.ID)
	assert.NoError(t, err)

	_, err = svc.GetVisible(ctx, "ada", 999)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestExerciseUpdateOwnershipRules(t *testing.T) {
	repo := newStubExerciseRepo("Chest")
	svc := NewExerciseService(repo, nil)
	ctx := context.Background()

	defaultEx := repo.add(domain.Exercise{Name: "Push Up", Reps: true})
	adaEx := repo.add(domain.Exercise{Name: "Ada Special", Weight: true, Username: strPtr("ada")})

	// Defaults cannot be modified.
	_, err := svc.Update(ctx, "ada", defaultEx.ID, &domain.Exercise{Name: "Hijacked", Weight: true})
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	// Another user's exercise is invisible.
	_, err = svc.Update(ctx, "grace", adaEx.ID, &domain.Exercise{Name: "Hijacked", Weight: true})
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	updated, err := svc.Update(ctx, "ada", adaEx.ID, &domain.Exercise{Name: "Renamed", Weight: true})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, adaEx.ID, updated.ID)
}

func TestExerciseDelete(t *testing.T) {
	repo := newStubExerciseRepo("Chest")
	svc := NewExerciseService(repo, nil)
	ctx := context.Background()

	adaEx := repo.add(domain.Exercise{Name: "Ada Special", Weight: true, Username: strPtr("ada")})

	assert.ErrorIs(t, svc.Delete(ctx, "grace", adaEx.ID), ErrExerciseNotFound)
	assert.NoError(t, svc.Delete(ctx, "ada", adaEx.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "ada", adaEx.ID), ErrExerciseNotFound)
}

func TestExerciseMediaWithoutStorage(t *testing.T) {
	repo := newStubExerciseRepo("Chest")
	svc := NewExerciseService(repo, nil)
	ctx := context.Background()

	adaEx := repo.add(domain.Exercise{Name: "Ada Special", Weight: true, Username: strPtr("ada")})

	_, err := svc.MediaUploadURL(ctx, "ada", adaEx.ID, "image/png")
	assert.ErrorIs(t, err, ErrNoMedia)

	_, err = svc.MediaDownloadURL(ctx, "ada", adaEx.ID)
	assert.ErrorIs(t, err, ErrNoMedia)
}
