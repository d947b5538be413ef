package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubWorkoutService returns canned results so the handler's binding and
// error mapping can be exercised in isolation.
type stubWorkoutService struct {
	createErr error
	getErr    error
}

func (s *stubWorkoutService) Create(_ context.Context, username string, workout *domain.Workout) (*domain.Workout, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	workout.ID = 1
	workout.Username = username
	workout.Stats = &domain.WorkoutStats{}
	return workout, nil
}

func (s *stubWorkoutService) Get(_ context.Context, username string, id int64) (*domain.Workout, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &domain.Workout{ID: id, Username: username, Name: "Push Day"}, nil
}

func (s *stubWorkoutService) List(context.Context, string) ([]domain.Workout, error) {
	return nil, nil
}

func (s *stubWorkoutService) Update(_ context.Context, username string, id int64, workout *domain.Workout) (*domain.Workout, error) {
	return workout, nil
}

func (s *stubWorkoutService) Delete(context.Context, string, int64) error { return nil }

func (s *stubWorkoutService) StatsThisWeek(context.Context, string) (*domain.WorkoutStats, error) {
	return &domain.WorkoutStats{}, nil
}

func (s *stubWorkoutService) StatsThisMonth(context.Context, string) (*domain.WorkoutStats, error) {
	return &domain.WorkoutStats{}, nil
}

func (s *stubWorkoutService) StatsThisYear(context.Context, string) (*domain.WorkoutStats, error) {
	return &domain.WorkoutStats{}, nil
}

func newWorkoutTestRouter(svc service.WorkoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Inject a fixed identity instead of running the real auth middleware.
	router.Use(func(c *gin.Context) { c.Set(ContextUsernameKey, "ada") })

	handler := NewWorkoutHandler(svc)
	router.POST("/workouts/me/", handler.Create)
	router.GET("/workouts/me/:id", handler.Get)
	router.GET("/workouts/me/stats/this-week", handler.StatsWeek)
	return router
}

const validWorkoutBody = `{
	"name": "Push Day",
	"date": 20250901,
	"start_time": "07:30:00",
	"duration": "01:00:00",
	"exercise_entries": [
		{"exercise_id": 1, "set_entries": [{"weight": 80, "reps": 5}]}
	]
}`

func TestWorkoutCreateEndpoint(t *testing.T) {
	router := newWorkoutTestRouter(&stubWorkoutService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workouts/me/", strings.NewReader(validWorkoutBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Push Day"`)
	assert.Contains(t, rec.Body.String(), `"stats"`)
}

func TestWorkoutCreateEndpointMissingFields(t *testing.T) {
	router := newWorkoutTestRouter(&stubWorkoutService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workouts/me/", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkoutCreateEndpointValidationMapping(t *testing.T) {
	validationErrs := []error{
		service.ErrBadDate,
		service.ErrEmptyExerciseEntries,
		service.ErrInvalidExerciseID,
		service.ErrInvalidSetEntries,
		service.ErrBadSetEntryTime,
	}
	for _, svcErr := range validationErrs {
		router := newWorkoutTestRouter(&stubWorkoutService{createErr: svcErr})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/workouts/me/", strings.NewReader(validWorkoutBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, svcErr.Error())
		assert.Contains(t, rec.Body.String(), svcErr.Error())
	}
}

func TestWorkoutGetEndpoint(t *testing.T) {
	router := newWorkoutTestRouter(&stubWorkoutService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/me/7", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Bad id parameter.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/me/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkoutGetEndpointNotFound(t *testing.T) {
	router := newWorkoutTestRouter(&stubWorkoutService{getErr: service.ErrWorkoutNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/me/7", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkoutStatsEndpoint(t *testing.T) {
	router := newWorkoutTestRouter(&stubWorkoutService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts/me/stats/this-week", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"muscle_distribution"`)
}
