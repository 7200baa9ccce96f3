package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	appsvc "statusboard/internal/app"
	"statusboard/internal/bootstrap"
	"statusboard/internal/metrics"
	"statusboard/internal/transport/http/handler"
	"statusboard/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(log.Logger), middleware.Metrics(app.Metrics), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(metrics.Handler(app.Registry)))

	authService := appsvc.NewAuthService(
		app.Users,
		app.Tokens,
		app.Config.Auth.BcryptCost,
		app.Activity,
		app.Clock,
	)
	userService := appsvc.NewUserService(app.Users, app.Statuses, app.Activities, app.Activity)
	statusService := appsvc.NewStatusService(
		app.Statuses,
		app.Activity,
		app.Metrics,
		app.Clock,
		app.Config.Status.MaxContentLength,
	)
	pokemonService := appsvc.NewPokemonService(app.Pokemon)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	statusHandler := handler.NewStatusHandler(statusService)
	pokemonHandler := handler.NewPokemonHandler(pokemonService)
	requireAuth := middleware.AuthJWT(app.Tokens)

	api := router.Group("/api")

	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.GET("/:id/activity", userHandler.Activity)
	users.PUT("/:id/description", requireAuth, userHandler.UpdateDescription)

	statuses := api.Group("/statuses")
	statuses.GET("", statusHandler.List)
	statuses.POST("", requireAuth, statusHandler.Create)
	statuses.PUT("/:id", requireAuth, statusHandler.Update)
	statuses.DELETE("/:id", requireAuth, statusHandler.Delete)
	statuses.POST("/:id/like", requireAuth, statusHandler.ToggleLike)

	pokemon := api.Group("/pokemon")
	pokemon.GET("", pokemonHandler.List)
	pokemon.GET("/:id", pokemonHandler.Get)
	pokemon.POST("", pokemonHandler.Create)

	return router
}
