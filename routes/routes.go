package routes

import (
	"fitapi/config"
	"fitapi/controllers"
	"fitapi/middlewares"
	"fitapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the services and controllers onto a Gin engine.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	authCtl := controllers.NewAuthController(services.NewAuthService(db, cfg.JWTSecret))
	workoutCtl := controllers.NewWorkoutController(services.NewWorkoutService(db))
	routineCtl := controllers.NewRoutineController(services.NewRoutineService(db))

	r.GET("/", controllers.HealthCheck)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/token", authCtl.Token)
		auth.POST("/login", authCtl.Login)
	}

	// Protected workout routes
	workouts := r.Group("/workouts")
	workouts.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		workouts.GET("/", workoutCtl.Get)
		workouts.GET("/all", workoutCtl.GetAll)
		workouts.POST("/", workoutCtl.Create)
		workouts.DELETE("/", workoutCtl.Delete)
	}

	// Protected routine routes
	routines := r.Group("/routines")
	routines.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		routines.GET("/", routineCtl.GetAll)
		routines.POST("/", routineCtl.Create)
		routines.DELETE("/", routineCtl.Delete)
	}

	return r
}
