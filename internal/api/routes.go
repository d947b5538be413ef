package api

import (
	"net/http"

	"liftinglog/lifting-log/internal/observability"
	"liftinglog/lifting-log/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	templateService service.TemplateService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)
	templateHandler := NewTemplateHandler(templateService)

	authMiddleware := AuthMiddleware(jwtSecret, authService)

	router.Use(observability.Middleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The default catalogs are readable without an account.
	router.GET("/muscles/defaults", exerciseHandler.Muscles)
	router.GET("/exercises/defaults", exerciseHandler.ListDefaults)

	userGroup := router.Group("/users")
	{
		userGroup.POST("/", authHandler.Register)
		userGroup.POST("/token", authHandler.Token)
		userGroup.GET("/me", authMiddleware, authHandler.Me)
	}

	exerciseGroup := router.Group("/exercises/me")
	exerciseGroup.Use(authMiddleware)
	{
		exerciseGroup.POST("/", exerciseHandler.Create)
		exerciseGroup.GET("/", exerciseHandler.ListMine)
		exerciseGroup.GET("/:id", exerciseHandler.Get)
		exerciseGroup.PUT("/:id", exerciseHandler.Update)
		exerciseGroup.DELETE("/:id", exerciseHandler.Delete)
		exerciseGroup.POST("/:id/media-url", exerciseHandler.MediaUploadURL)
		exerciseGroup.GET("/:id/media-url", exerciseHandler.MediaDownloadURL)
	}

	workoutGroup := router.Group("/workouts/me")
	workoutGroup.Use(authMiddleware)
	{
		workoutGroup.POST("/", workoutHandler.Create)
		workoutGroup.GET("/", workoutHandler.List)
		workoutGroup.GET("/stats/this-week", workoutHandler.StatsWeek)
		workoutGroup.GET("/stats/this-month", workoutHandler.StatsMonth)
		workoutGroup.GET("/stats/this-year", workoutHandler.StatsYear)
		workoutGroup.GET("/:id", workoutHandler.Get)
		workoutGroup.PUT("/:id", workoutHandler.Update)
		workoutGroup.DELETE("/:id", workoutHandler.Delete)
	}

	templateGroup := router.Group("/templates/me")
	templateGroup.Use(authMiddleware)
	{
		templateGroup.POST("/", templateHandler.Create)
		templateGroup.GET("/", templateHandler.List)
		templateGroup.GET("/:id", templateHandler.Get)
		templateGroup.PUT("/:id", templateHandler.Update)
		templateGroup.DELETE("/:id", templateHandler.Delete)
	}
}
