package api

import (
	"errors"
	"net/http"
	"strconv"

	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// ExerciseRequest defines the JSON body for creating or updating an
// exercise. The three booleans declare which measures sets will record.
type ExerciseRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      *string  `json:"description"`
	Weight           bool     `json:"weight"`
	Reps             bool     `json:"reps"`
	Time             bool     `json:"time"`
	PrimaryMuscles   []string `json:"primary_muscles"`
	SecondaryMuscles []string `json:"secondary_muscles"`
}

func (r ExerciseRequest) toDomain() *domain.Exercise {
	return &domain.Exercise{
		Name:             r.Name,
		Description:      r.Description,
		Weight:           r.Weight,
		Reps:             r.Reps,
		Time:             r.Time,
		PrimaryMuscles:   r.PrimaryMuscles,
		SecondaryMuscles: r.SecondaryMuscles,
	}
}

type MediaUploadURLRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

type MediaURLResponse struct {
	URL string `json:"url"`
}

// --- Handler Methods ---

func (h *ExerciseHandler) Create(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), username, req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

func (h *ExerciseHandler) Get(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	exercise, err := h.exerciseService.GetVisible(c.Request.Context(), username, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// ListMine returns only the caller's own exercises, not the defaults.
func (h *ExerciseHandler) ListMine(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	exercises, err := h.exerciseService.ListMine(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *ExerciseHandler) ListDefaults(c *gin.Context) {
	exercises, err := h.exerciseService.ListDefaults(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *ExerciseHandler) Update(c *gin.Context) {
	var req ExerciseRequest
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
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), username, id, req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHandler) Delete(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	if err := h.exerciseService.Delete(c.Request.Context(), username, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Muscles returns the muscle catalog exercises may reference.
func (h *ExerciseHandler) Muscles(c *gin.Context) {
	muscles, err := h.exerciseService.Muscles(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, muscles)
}

// MediaUploadURL returns a presigned URL the client PUTs media bytes to.
func (h *ExerciseHandler) MediaUploadURL(c *gin.Context) {
	var req MediaUploadURLRequest
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
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	url, err := h.exerciseService.MediaUploadURL(c.Request.Context(), username, id, req.ContentType)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MediaURLResponse{URL: url})
}

func (h *ExerciseHandler) MediaDownloadURL(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	url, err := h.exerciseService.MediaDownloadURL(c.Request.Context(), username, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MediaURLResponse{URL: url})
}

// respondError maps service errors onto HTTP statuses.
func (h *ExerciseHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExerciseNotFound), errors.Is(err, service.ErrNoMedia):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrExerciseExists),
		errors.Is(err, service.ErrInvalidExercise),
		errors.Is(err, service.ErrUnknownMuscle):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
