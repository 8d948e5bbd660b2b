package route

import (
	"net/http"
	"time"

	"ExpenseAPI/controllers"
	"ExpenseAPI/handlers"
	"ExpenseAPI/middleware"
	"ExpenseAPI/repositories"
	"ExpenseAPI/services"
	"ExpenseAPI/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options configures the router.
type Options struct {
	Production  bool
	CORSOrigins []string
	Users       repositories.UserRepository
	Expenses    repositories.ExpenseRepository
	Tokens      *utils.TokenManager
}

// NewRouter builds the services and controllers and returns the engine.
func NewRouter(opts Options) *gin.Engine {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.RegisterValidators()

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RecoveryMiddleware(opts.Production))
	r.Use(middleware.ErrorHandlerMiddleware(opts.Production))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	authController := controllers.NewAuthController(services.NewAuthService(opts.Users, opts.Tokens))
	userController := controllers.NewUserController(services.NewUserService(opts.Users))
	expenseController := controllers.NewExpenseController(services.NewExpenseService(opts.Expenses))

	RegisterRoutes(r, authController, userController, expenseController, middleware.AuthMiddleware(opts.Tokens))
	return r
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, authController *controllers.AuthController, userController *controllers.UserController, expenseController *controllers.ExpenseController, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api")
	{
		handlers.RegisterAuthRoutes(api, authController)
		handlers.RegisterUserRoutes(api, userController, authMiddleware)
		handlers.RegisterExpenseRoutes(api, expenseController, authMiddleware)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
