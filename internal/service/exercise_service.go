package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/repository"
	"liftinglog/lifting-log/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("exercise already exists")
	ErrInvalidExercise  = errors.New("invalid exercise")
	ErrUnknownMuscle    = errors.New("muscle does not exist")
	ErrNoMedia          = errors.New("exercise has no media")
)

// ExerciseService owns the exercise catalog: the shared defaults plus each
// user's own definitions.
type ExerciseService interface {
	Create(ctx context.Context, username string, exercise *domain.Exercise) (*domain.Exercise, error)
	// GetVisible returns the exercise only if it is a default or owned by the
	// caller.
	GetVisible(ctx context.Context, username string, id int64) (*domain.Exercise, error)
	ListMine(ctx context.Context, username string) ([]domain.Exercise, error)
	ListDefaults(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, username string, id int64, exercise *domain.Exercise) (*domain.Exercise, error)
	Delete(ctx context.Context, username string, id int64) error
	Muscles(ctx context.Context) ([]string, error)
	MediaUploadURL(ctx context.Context, username string, id int64, contentType string) (string, error)
	MediaDownloadURL(ctx context.Context, username string, id int64) (string, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
	urlExpiry    time.Duration
}

// NewExerciseService creates a new instance of exerciseService. fileStorage
// may be nil when media handling is not configured; the media endpoints then
// fail with ErrNoMedia.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
		urlExpiry:    15 * time.Minute,
	}
}

func (s *exerciseService) Create(ctx context.Context, username string, exercise *domain.Exercise) (*domain.Exercise, error) {
	if err := s.validate(ctx, exercise); err != nil {
		return nil, err
	}

	exists, err := s.exerciseRepo.ExistsByName(ctx, exercise.Name, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrExerciseExists
	}

	exercise.Username = &username
	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = id
	return exercise, nil
}

func (s *exerciseService) GetVisible(ctx context.Context, username string, id int64) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if !exercise.IsDefault() && *exercise.Username != username {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}

func (s *exerciseService) ListMine(ctx context.Context, username string) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListByOwner(ctx, &username)
}

func (s *exerciseService) ListDefaults(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListByOwner(ctx, nil)
}

// Update modifies one of the caller's own exercises. Defaults and other
// users' exercises are invisible here.
func (s *exerciseService) Update(ctx context.Context, username string, id int64, exercise *domain.Exercise) (*domain.Exercise, error) {
	current, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if current.IsDefault() || *current.Username != username {
		return nil, ErrExerciseNotFound
	}

	if err := s.validate(ctx, exercise); err != nil {
		return nil, err
	}

	exercise.ID = id
	exercise.Username = &username
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) Delete(ctx context.Context, username string, id int64) error {
	if err := s.exerciseRepo.Delete(ctx, id, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}

func (s *exerciseService) Muscles(ctx context.Context) ([]string, error) {
	return s.exerciseRepo.Muscles(ctx)
}

// MediaUploadURL mints a presigned upload URL and records the object key on
// the exercise so later downloads can find it.
func (s *exerciseService) MediaUploadURL(ctx context.Context, username string, id int64, contentType string) (string, error) {
	if s.fileStorage == nil {
		return "", ErrNoMedia
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrExerciseNotFound
		}
		return "", err
	}
	if exercise.IsDefault() || *exercise.Username != username {
		return "", ErrExerciseNotFound
	}

	key := fmt.Sprintf("exercises/%s/%d/%s", username, id, uuid.NewString())
	url, err := s.fileStorage.GenerateUploadURL(ctx, key, contentType, s.urlExpiry)
	if err != nil {
		return "", err
	}

	if err := s.exerciseRepo.SetMediaKey(ctx, id, username, key); err != nil {
		return "", err
	}
	return url, nil
}

func (s *exerciseService) MediaDownloadURL(ctx context.Context, username string, id int64) (string, error) {
	if s.fileStorage == nil {
		return "", ErrNoMedia
	}

	exercise, err := s.GetVisible(ctx, username, id)
	if err != nil {
		return "", err
	}
	if exercise.MediaKey == nil {
		return "", ErrNoMedia
	}
	return s.fileStorage.GenerateDownloadURL(ctx, *exercise.MediaKey, s.urlExpiry)
}

// validate enforces the catalog invariants shared by create and update.
func (s *exerciseService) validate(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.Name == "" {
		return fmt.Errorf("%w: unnamed exercise", ErrInvalidExercise)
	}
	if !exercise.HasAxis() {
		return fmt.Errorf("%w: at least one of weight, reps or time must be tracked", ErrInvalidExercise)
	}

	for _, muscle := range append(append([]string{}, exercise.PrimaryMuscles...), exercise.SecondaryMuscles...) {
		ok, err := s.exerciseRepo.MuscleExists(ctx, muscle)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownMuscle, muscle)
		}
	}
	return nil
}
