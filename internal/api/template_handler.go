package api

import (
	"errors"
	"net/http"

	"liftinglog/lifting-log/internal/domain"
	"liftinglog/lifting-log/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler holds the template service dependency.
type TemplateHandler struct {
	templateService service.TemplateService
}

func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// --- DTOs ---

type TemplateRequest struct {
	Name              string                    `json:"name" binding:"required"`
	ExerciseTemplates []ExerciseTemplateRequest `json:"exercise_templates"`
}

type ExerciseTemplateRequest struct {
	ExerciseID   int64                `json:"exercise_id" binding:"required"`
	RoutineNote  *string              `json:"routine_note"`
	SetTemplates []SetTemplateRequest `json:"set_templates"`
}

// SetTemplateRequest carries one planned set: either a fixed rep target, a
// rep range, or a time range, depending on what the exercise tracks.
type SetTemplateRequest struct {
	Reps           *int    `json:"reps"`
	RepRangeStart  *int    `json:"rep_range_start"`
	RepRangeEnd    *int    `json:"rep_range_end"`
	TimeRangeStart *string `json:"time_range_start"`
	TimeRangeEnd   *string `json:"time_range_end"`
}

func (r TemplateRequest) toDomain() *domain.WorkoutTemplate {
	template := &domain.WorkoutTemplate{Name: r.Name}
	for _, entry := range r.ExerciseTemplates {
		domainEntry := domain.ExerciseTemplate{
			ExerciseID:  entry.ExerciseID,
			RoutineNote: entry.RoutineNote,
		}
		for _, set := range entry.SetTemplates {
			domainEntry.SetTemplates = append(domainEntry.SetTemplates, domain.SetTemplate{
				Reps:           set.Reps,
				RepRangeStart:  set.RepRangeStart,
				RepRangeEnd:    set.RepRangeEnd,
				TimeRangeStart: set.TimeRangeStart,
				TimeRangeEnd:   set.TimeRangeEnd,
			})
		}
		template.ExerciseTemplates = append(template.ExerciseTemplates, domainEntry)
	}
	return template
}

// --- Handler Methods ---

func (h *TemplateHandler) Create(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	template, err := h.templateService.Create(c.Request.Context(), username, req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	template, err := h.templateService.Get(c.Request.Context(), username, id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) List(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	templates, err := h.templateService.List(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	var req TemplateRequest
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
		abortWithError(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	template, err := h.templateService.Update(c.Request.Context(), username, id, req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	username, err := getUsernameFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), username, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, service.ErrTemplateExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnnamedTemplate),
		errors.Is(err, service.ErrTemplateNameInUse),
		errors.Is(err, service.ErrTemplateMissingExercises),
		errors.Is(err, service.ErrEmptySetTemplates),
		errors.Is(err, service.ErrTemplateRepsUnsupported),
		errors.Is(err, service.ErrTemplateTimeUnsupported),
		errors.Is(err, service.ErrBadTemplateTimeRange):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
