package service

import (
	"context"

	"liftinglog/lifting-log/internal/calendar"
	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/repository"
)

// In-memory repository stubs used across the service tests.

type stubUserRepo struct {
	users  map[string]domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = *user
	return r.nextID, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := user
	return &copied, nil
}

type stubExerciseRepo struct {
	exercises map[int64]domain.Exercise
	muscles   []string
	nextID    int64
}

func newStubExerciseRepo(muscles ...string) *stubExerciseRepo {
	return &stubExerciseRepo{
		exercises: make(map[int64]domain.Exercise),
		muscles:   muscles,
	}
}

func (r *stubExerciseRepo) add(exercise domain.Exercise) domain.Exercise {
	r.nextID++
	exercise.ID = r.nextID
	r.exercises[exercise.ID] = exercise
	return exercise
}

func (r *stubExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (int64, error) {
	r.nextID++
	exercise.ID = r.nextID
	r.exercises[exercise.ID] = *exercise
	return exercise.ID, nil
}

func (r *stubExerciseRepo) GetByID(_ context.Context, id int64) (*domain.Exercise, error) {
	exercise, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := exercise
	return &copied, nil
}

func (r *stubExerciseRepo) ListByOwner(_ context.Context, username *string) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, exercise := range r.exercises {
		if username == nil && exercise.Username == nil {
			out = append(out, exercise)
		} else if username != nil && exercise.Username != nil && *exercise.Username == *username {
			out = append(out, exercise)
		}
	}
	return out, nil
}

func (r *stubExerciseRepo) ExistsByName(_ context.Context, name, username string) (bool, error) {
	for _, exercise := range r.exercises {
		if exercise.Name == name && exercise.Username != nil && *exercise.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.exercises[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	r.exercises[exercise.ID] = *exercise
	return nil
}

func (r *stubExerciseRepo) Delete(_ context.Context, id int64, username string) error {
	exercise, ok := r.exercises[id]
	if !ok || exercise.Username == nil || *exercise.Username != username {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

func (r *stubExerciseRepo) SetMediaKey(_ context.Context, id int64, username, key string) error {
	exercise, ok := r.exercises[id]
	if !ok || exercise.Username == nil || *exercise.Username != username {
		return repository.ErrNotFound
	}
	exercise.MediaKey = &key
	r.exercises[id] = exercise
	return nil
}

func (r *stubExerciseRepo) Muscles(_ context.Context) ([]string, error) {
	return r.muscles, nil
}

func (r *stubExerciseRepo) MuscleExists(_ context.Context, name string) (bool, error) {
	for _, muscle := range r.muscles {
		if muscle == name {
			return true, nil
		}
	}
	return false, nil
}

type stubWorkoutRepo struct {
	workouts map[int64]domain.Workout
	nextID   int64
}

func newStubWorkoutRepo() *stubWorkoutRepo {
	return &stubWorkoutRepo{workouts: make(map[int64]domain.Workout)}
}

func (r *stubWorkoutRepo) Create(_ context.Context, workout *domain.Workout) error {
	r.nextID++
	workout.ID = r.nextID
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *stubWorkoutRepo) GetByID(_ context.Context, id int64, username string) (*domain.Workout, error) {
	workout, ok := r.workouts[id]
	if !ok || workout.Username != username {
		return nil, repository.ErrNotFound
	}
	copied := workout
	return &copied, nil
}

func (r *stubWorkoutRepo) ListByUsername(_ context.Context, username string, since *calendar.Date) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, workout := range r.workouts {
		if workout.Username != username {
			continue
		}
		if since != nil && workout.Date < *since {
			continue
		}
		out = append(out, workout)
	}
	return out, nil
}

func (r *stubWorkoutRepo) Update(_ context.Context, workout *domain.Workout) error {
	current, ok := r.workouts[workout.ID]
	if !ok || current.Username != workout.Username {
		return repository.ErrNotFound
	}
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *stubWorkoutRepo) Delete(_ context.Context, id int64, username string) error {
	workout, ok := r.workouts[id]
	if !ok || workout.Username != username {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

type stubTemplateRepo struct {
	templates map[int64]domain.WorkoutTemplate
	nextID    int64
}

func newStubTemplateRepo() *stubTemplateRepo {
	return &stubTemplateRepo{templates: make(map[int64]domain.WorkoutTemplate)}
}

func (r *stubTemplateRepo) Create(_ context.Context, template *domain.WorkoutTemplate) error {
	r.nextID++
	template.ID = r.nextID
	r.templates[template.ID] = *template
	return nil
}

func (r *stubTemplateRepo) GetByID(_ context.Context, id int64, username string) (*domain.WorkoutTemplate, error) {
	template, ok := r.templates[id]
	if !ok || template.Username != username {
		return nil, repository.ErrNotFound
	}
	copied := template
	return &copied, nil
}

func (r *stubTemplateRepo) ListByUsername(_ context.Context, username string) ([]domain.WorkoutTemplate, error) {
	var out []domain.WorkoutTemplate
	for _, template := range r.templates {
		if template.Username == username {
			out = append(out, template)
		}
	}
	return out, nil
}

func (r *stubTemplateRepo) ExistsByName(_ context.Context, name, username string) (bool, error) {
	for _, template := range r.templates {
		if template.Name == name && template.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTemplateRepo) Update(_ context.Context, template *domain.WorkoutTemplate) error {
	current, ok := r.templates[template.ID]
	if !ok || current.Username != template.Username {
		return repository.ErrNotFound
	}
	r.templates[template.ID] = *template
	return nil
}

func (r *stubTemplateRepo) Delete(_ context.Context, id int64, username string) error {
	template, ok := r.templates[id]
	if !ok || template.Username != username {
		return repository.ErrNotFound
	}
	delete(r.templates, id)
	return nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
