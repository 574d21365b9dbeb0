package server

import (
	"log/slog"

	"github.com/treeplant/event-manager/internal/middleware"
	"github.com/treeplant/event-manager/pkg/event"
	"github.com/treeplant/event-manager/pkg/eventjoin"
	"github.com/treeplant/event-manager/pkg/health"
	"github.com/treeplant/event-manager/pkg/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redocMiddleware "github.com/go-openapi/runtime/middleware"
)

func GetEngine(logger *slog.Logger, userHandler user.Handler, eventHandler event.Handler, eventJoinHandler eventjoin.Handler) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	redoc(r)

	r.GET("/", health.Health)

	user.Routes(r, userHandler)
	event.Routes(r, eventHandler)
	eventjoin.Routes(r, eventJoinHandler)

	return r
}

func redoc(r *gin.Engine) {
	r.StaticFile("/swagger.yaml", "./swagger/swagger.yaml")

	redocOpts := redocMiddleware.RedocOpts{
		SpecURL: "./swagger.yaml",
	}
	r.GET("/docs", func(c *gin.Context) {
		redocHandler := redocMiddleware.Redoc(redocOpts, nil)
		redocHandler.ServeHTTP(c.Writer, c.Request)
	})
}
