package service

import (
	"context"
	"errors"
	"fmt"

	"liftinglog/lifting-log/internal/calendar"
	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/repository"
)

var (
	ErrTemplateNotFound         = errors.New("template not found")
	ErrUnnamedTemplate          = errors.New("unnamed template")
	ErrTemplateNameInUse        = errors.New("template name is currently in use")
	ErrTemplateMissingExercises = errors.New("template missing exercises")
	ErrEmptySetTemplates        = errors.New("empty or null set templates array")
	ErrTemplateRepsUnsupported  = errors.New("rep targets given for an exercise that does not track reps")
	ErrTemplateTimeUnsupported  = errors.New("time range given for an exercise that does not track time")
	ErrBadTemplateTimeRange     = errors.New("incorrectly formatted time range")
	ErrTemplateExerciseNotFound = errors.New("template exercise not found")
)

// TemplateService owns reusable workout templates: planned exercises with
// target reps, rep ranges or time ranges.
type TemplateService interface {
	Create(ctx context.Context, username string, template *domain.WorkoutTemplate) (*domain.WorkoutTemplate, error)
	Get(ctx context.Context, username string, id int64) (*domain.WorkoutTemplate, error)
	List(ctx context.Context, username string) ([]domain.WorkoutTemplate, error)
	// Update fully replaces the stored template and its exercise/set tree.
	Update(ctx context.Context, username string, id int64, template *domain.WorkoutTemplate) (*domain.WorkoutTemplate, error)
	Delete(ctx context.Context, username string, id int64) error
}

type templateService struct {
	templateRepo repository.TemplateRepository
	exerciseRepo repository.ExerciseRepository
}

func NewTemplateService(templateRepo repository.TemplateRepository, exerciseRepo repository.ExerciseRepository) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *templateService) Create(ctx context.Context, username string, template *domain.WorkoutTemplate) (*domain.WorkoutTemplate, error) {
	if err := s.validate(ctx, template); err != nil {
		return nil, err
	}

	inUse, err := s.templateRepo.ExistsByName(ctx, template.Name, username)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, ErrTemplateNameInUse
	}

	template.Username = username
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *templateService) Get(ctx context.Context, username string, id int64) (*domain.WorkoutTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *templateService) List(ctx context.Context, username string) ([]domain.WorkoutTemplate, error) {
	return s.templateRepo.ListByUsername(ctx, username)
}

func (s *templateService) Update(ctx context.Context, username string, id int64, template *domain.WorkoutTemplate) (*domain.WorkoutTemplate, error) {
	if err := s.validate(ctx, template); err != nil {
		return nil, err
	}

	template.ID = id
	template.Username = username
	if err := s.templateRepo.Update(ctx, template); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

func (s *templateService) Delete(ctx context.Context, username string, id int64) error {
	if err := s.templateRepo.Delete(ctx, id, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	return nil
}

// validate checks the template tree and resolves exercise names. Set targets
// must fit the measures the referenced exercise tracks.
func (s *templateService) validate(ctx context.Context, template *domain.WorkoutTemplate) error {
	if template.Name == "" {
		return ErrUnnamedTemplate
	}
	if len(template.ExerciseTemplates) == 0 {
		return ErrTemplateMissingExercises
	}

	for i := range template.ExerciseTemplates {
		entry := &template.ExerciseTemplates[i]

		exercise, err := s.exerciseRepo.GetByID(ctx, entry.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: exercise with id %d not found", ErrTemplateExerciseNotFound, entry.ExerciseID)
			}
			return err
		}
		entry.ExerciseName = exercise.Name

		if len(entry.SetTemplates) == 0 {
			return ErrEmptySetTemplates
		}
		for _, set := range entry.SetTemplates {
			if err := validateSetTemplate(exercise, set); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateSetTemplate(exercise *domain.Exercise, set domain.SetTemplate) error {
	hasReps := set.Reps != nil || set.RepRangeStart != nil || set.RepRangeEnd != nil
	if hasReps && !exercise.Reps {
		return ErrTemplateRepsUnsupported
	}

	hasTime := set.TimeRangeStart != nil || set.TimeRangeEnd != nil
	if hasTime {
		if !exercise.Time {
			return ErrTemplateTimeUnsupported
		}
		if set.TimeRangeStart == nil || set.TimeRangeEnd == nil ||
			!calendar.ValidClock(*set.TimeRangeStart) || !calendar.ValidClock(*set.TimeRangeEnd) {
			return ErrBadTemplateTimeRange
		}
	}
	return nil
}
