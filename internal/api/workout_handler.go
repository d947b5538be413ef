package api

import (
	"context"
	"errors"
	"net/http"

	"liftinglog/lifting-log/internal/calendar"
	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// WorkoutRequest defines the JSON body for logging or replacing a workout.
// The date is a yyyymmdd integer; times are HH:MM:SS strings.
type WorkoutRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description *string                `json:"description"`
	Date        int                    `json:"date" binding:"required"`
	StartTime   string                 `json:"start_time" binding:"required"`
	Duration    string                 `json:"duration" binding:"required"`
	Entries     []ExerciseEntryRequest `json:"exercise_entries"`
}

type ExerciseEntryRequest struct {
	ExerciseID  int64             `json:"exercise_id" binding:"required"`
	Description *string           `json:"description"`
	SetEntries  []SetEntryRequest `json:"set_entries"`
}

// SetEntryRequest carries one performed set. Which fields must be present
// depends on the measures the referenced exercise tracks.
type SetEntryRequest struct {
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
	Time   *string  `json:"time"`
}

func (r WorkoutRequest) toDomain() *domain.Workout {
	workout := &domain.Workout{
		Name:        r.Name,
		Description: r.Description,
		Date:        calendar.Date(r.Date),
		StartTime:   r.StartTime,
		Duration:    r.Duration,
	}
	for _, entry := range r.Entries {
		domainEntry := domain.ExerciseEntry{
			ExerciseID:  entry.ExerciseID,
			Description: entry.Description,
		}
		for _, set := range entry.SetEntries {
			domainEntry.SetEntries = append(domainEntry.SetEntries, domain.SetEntry{
				Weight: set.Weight,
				Reps:   set.Reps,
				Time:   set.Time,
			})
		}
		workout.Entries = append(workout.Entries, domainEntry)
	}
	return workout
}

// --- Handler Methods ---

func (h *WorkoutHandler) Create(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), username, req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (h *WorkoutHandler) Get(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	workout, err := h.workoutService.Get(c.Request.Context(), username, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) List(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	workouts, err := h.workoutService.List(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), username, id, req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), username, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StatsWeek aggregates all workouts since the start of the current week.
func (h *WorkoutHandler) StatsWeek(c *gin.Context) {
	h.stats(c, h.workoutService.StatsThisWeek)
}

func (h *WorkoutHandler) StatsMonth(c *gin.Context) {
	h.stats(c, h.workoutService.StatsThisMonth)
}

func (h *WorkoutHandler) StatsYear(c *gin.Context) {
	h.stats(c, h.workoutService.StatsThisYear)
}

func (h *WorkoutHandler) stats(c *gin.Context, fetch func(ctx context.Context, username string) (*domain.WorkoutStats, error)) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	workoutStats, err := fetch(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workoutStats)
}

// respondError maps service errors onto HTTP statuses. All validation
// failures come back as sentinel errors from the service layer.
func (h *WorkoutHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnnamedWorkout),
		errors.Is(err, service.ErrBadDate),
		errors.Is(err, service.ErrBadStartTime),
		errors.Is(err, service.ErrBadDuration),
		errors.Is(err, service.ErrEmptyExerciseEntries),
		errors.Is(err, service.ErrEmptySetEntries),
		errors.Is(err, service.ErrInvalidExerciseID),
		errors.Is(err, service.ErrInvalidSetEntries),
		errors.Is(err, service.ErrBadSetEntryTime):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
