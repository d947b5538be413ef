package repository

import (
	"context"

	"liftinglog/lifting-log/internal/calendar"
	"liftinglog/lifting-log/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ExerciseRepository defines the interface for interacting with the exercise
// catalog and the fixed muscle enumeration.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (int64, error)
	// GetByID returns the exercise regardless of owner; visibility rules
	// live in the service layer.
	GetByID(ctx context.Context, id int64) (*domain.Exercise, error)
	// ListByOwner returns default exercises when username is nil, otherwise
	// the exercises owned by that user.
	ListByOwner(ctx context.Context, username *string) ([]domain.Exercise, error)
	ExistsByName(ctx context.Context, name, username string) (bool, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id int64, username string) error
	SetMediaKey(ctx context.Context, id int64, username, key string) error

	Muscles(ctx context.Context) ([]string, error)
	MuscleExists(ctx context.Context, name string) (bool, error)
}

// WorkoutRepository persists workouts as a tree of rows (workout -> exercise
// entries -> set entries) inside a single transaction per call.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, id int64, username string) (*domain.Workout, error)
	// ListByUsername returns the user's workouts, restricted to dates on or
	// after since when it is non-nil.
	ListByUsername(ctx context.Context, username string, since *calendar.Date) ([]domain.Workout, error)
	// Update fully replaces the child tree of an existing workout.
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id int64, username string) error
}

// TemplateRepository mirrors WorkoutRepository for planned routines.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.WorkoutTemplate) error
	GetByID(ctx context.Context, id int64, username string) (*domain.WorkoutTemplate, error)
	ListByUsername(ctx context.Context, username string) ([]domain.WorkoutTemplate, error)
	ExistsByName(ctx context.Context, name, username string) (bool, error)
	Update(ctx context.Context, template *domain.WorkoutTemplate) error
	Delete(ctx context.Context, id int64, username string) error
}
