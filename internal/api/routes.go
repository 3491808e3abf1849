package api

import (
	"alcyxob/fitness-tracker/internal/logger"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/storage"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services is everything the routes delegate to. Storage is optional; the
// media routes are only mounted when it is set.
type Services struct {
	Auth      service.AuthService
	Creators  service.CreatorService
	Diets     service.DietPlanService
	Workouts  service.WorkoutPlanService
	Progress  service.ProgressService
	Reminders service.ReminderService

	Storage       storage.FileStorage
	PresignExpiry time.Duration
}

// NewRouter builds a gin engine with the shared middleware chain and the
// {message} fallbacks for unknown routes and panics.
func NewRouter(log *zap.Logger, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		CORS(corsOrigins),
	)
	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "Not Found - "+c.Request.URL.Path)
	})
	return router
}

func SetupRoutes(router *gin.Engine, jwtSecret string, svcs Services) {
	authHandler := NewAuthHandler(svcs.Auth)
	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running")
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")

	users := apiGroup.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.GET("/me", authMiddleware, authHandler.Me)
	}

	// Plans are readable by anyone; progress and reminders are private.
	NewDietPlanHandler(svcs.Diets, svcs.Creators).register(apiGroup.Group("/diets"), authMiddleware, true)
	NewWorkoutPlanHandler(svcs.Workouts, svcs.Creators).register(apiGroup.Group("/workouts"), authMiddleware, true)
	NewProgressHandler(svcs.Progress).register(apiGroup.Group("/progress"), authMiddleware, false)
	NewReminderHandler(svcs.Reminders).register(apiGroup.Group("/reminders"), authMiddleware, false)

	if svcs.Storage != nil {
		mediaHandler := NewMediaHandler(svcs.Storage, svcs.PresignExpiry)
		media := apiGroup.Group("/media", authMiddleware)
		{
			media.POST("/videos", mediaHandler.CreateVideoUpload)
			media.DELETE("/videos/*key", mediaHandler.DeleteVideo)
		}
	}
}
