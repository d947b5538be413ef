package service

import (
	"context"
	"errors"

	"liftinglog/lifting-log/internal/calendar"
	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/observability"
	"liftinglog/lifting-log/internal/repository"
	"liftinglog/lifting-log/internal/stats"
)

var (
	ErrWorkoutNotFound      = errors.New("workout not found")
	ErrUnnamedWorkout       = errors.New("unnamed workout")
	ErrBadDate              = errors.New("incorrectly formatted date")
	ErrBadStartTime         = errors.New("incorrectly formatted start time")
	ErrBadDuration          = errors.New("incorrectly formatted duration")
	ErrEmptyExerciseEntries = errors.New("empty exercise entries array")
	ErrEmptySetEntries      = errors.New("empty set entries array")
	ErrInvalidExerciseID    = errors.New("invalid exercise(id) submitted")
	ErrInvalidSetEntries    = errors.New("invalid set entries")
	ErrBadSetEntryTime      = errors.New("incorrectly formatted set entry times")
)

// WorkoutService owns logged workouts and the statistics derived from them.
type WorkoutService interface {
	Create(ctx context.Context, username string, workout *domain.Workout) (*domain.Workout, error)
	Get(ctx context.Context, username string, id int64) (*domain.Workout, error)
	List(ctx context.Context, username string) ([]domain.Workout, error)
	// Update fully replaces the stored workout, entries and sets included.
	Update(ctx context.Context, username string, id int64, workout *domain.Workout) (*domain.Workout, error)
	Delete(ctx context.Context, username string, id int64) error

	// Aggregate statistics over all workouts in the current calendar period.
	StatsThisWeek(ctx context.Context, username string) (*domain.WorkoutStats, error)
	StatsThisMonth(ctx context.Context, username string) (*domain.WorkoutStats, error)
	StatsThisYear(ctx context.Context, username string) (*domain.WorkoutStats, error)
}

type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	analyzer     *stats.Analyzer
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository, exerciseRepo repository.ExerciseRepository, analyzer *stats.Analyzer) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		analyzer:     analyzer,
	}
}

func (s *workoutService) Create(ctx context.Context, username string, workout *domain.Workout) (*domain.Workout, error) {
	if err := s.validate(ctx, workout); err != nil {
		return nil, err
	}

	workout.Username = username
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	observability.MarkWorkoutPersisted()

	if err := s.attachStats(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) Get(ctx context.Context, username string, id int64) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if err := s.attachStats(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) List(ctx context.Context, username string) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.ListByUsername(ctx, username, nil)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if err := s.attachStats(ctx, &workouts[i]); err != nil {
			return nil, err
		}
	}
	return workouts, nil
}

func (s *workoutService) Update(ctx context.Context, username string, id int64, workout *domain.Workout) (*domain.Workout, error) {
	if err := s.validate(ctx, workout); err != nil {
		return nil, err
	}

	workout.ID = id
	workout.Username = username
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if err := s.attachStats(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) Delete(ctx context.Context, username string, id int64) error {
	if err := s.workoutRepo.Delete(ctx, id, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

func (s *workoutService) StatsThisWeek(ctx context.Context, username string) (*domain.WorkoutStats, error) {
	return s.statsSince(ctx, username, calendar.Today().StartOfWeek())
}

func (s *workoutService) StatsThisMonth(ctx context.Context, username string) (*domain.WorkoutStats, error) {
	return s.statsSince(ctx, username, calendar.Today().StartOfMonth())
}

func (s *workoutService) StatsThisYear(ctx context.Context, username string) (*domain.WorkoutStats, error) {
	return s.statsSince(ctx, username, calendar.Today().StartOfYear())
}

func (s *workoutService) statsSince(ctx context.Context, username string, since calendar.Date) (*domain.WorkoutStats, error) {
	workouts, err := s.workoutRepo.ListByUsername(ctx, username, &since)
	if err != nil {
		return nil, err
	}
	return s.analyzer.Analyze(ctx, workouts)
}

func (s *workoutService) attachStats(ctx context.Context, workout *domain.Workout) error {
	workoutStats, err := s.analyzer.Analyze(ctx, []domain.Workout{*workout})
	if err != nil {
		return err
	}
	workout.Stats = workoutStats
	return nil
}

// validate checks the workout top to bottom: header fields, then each
// exercise entry against the catalog, then each set entry against the
// exercise's tracked measures. Exercise names are resolved as a side effect.
func (s *workoutService) validate(ctx context.Context, workout *domain.Workout) error {
	if workout.Name == "" {
		return ErrUnnamedWorkout
	}
	if !workout.Date.Valid() {
		return ErrBadDate
	}
	if !calendar.ValidClock(workout.StartTime) {
		return ErrBadStartTime
	}
	if !calendar.ValidClock(workout.Duration) {
		return ErrBadDuration
	}
	if len(workout.Entries) == 0 {
		return ErrEmptyExerciseEntries
	}

	for i := range workout.Entries {
		entry := &workout.Entries[i]

		exercise, err := s.exerciseRepo.GetByID(ctx, entry.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrInvalidExerciseID
			}
			return err
		}
		entry.ExerciseName = exercise.Name

		if len(entry.SetEntries) == 0 {
			return ErrEmptySetEntries
		}
		for _, set := range entry.SetEntries {
			if err := validateSetEntry(exercise, set); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateSetEntry requires the populated measures of a set to exactly match
// the measures the exercise tracks.
func validateSetEntry(exercise *domain.Exercise, set domain.SetEntry) error {
	if (set.Weight != nil) != exercise.Weight ||
		(set.Reps != nil) != exercise.Reps ||
		(set.Time != nil) != exercise.Time {
		return ErrInvalidSetEntries
	}
	if set.Time != nil && !calendar.ValidClock(*set.Time) {
		return ErrBadSetEntryTime
	}
	return nil
}
