package main

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_teams/environment"
	"github.com/unicsmcr/hs_teams/routers"
	"github.com/unicsmcr/hs_teams/services"
	"go.uber.org/zap"
)

const defaultPort = "8000"

// Server is the gin engine serving the API together with the port to serve it on
type Server struct {
	*gin.Engine
	Port string

	logger      *zap.Logger
	lockService services.LockService
}

// NewServer creates a Server with all routes of the main router registered
func NewServer(logger *zap.Logger, env *environment.Env, mainRouter routers.MainRouter, lockService services.LockService) Server {
	engine := gin.Default()

	mainRouter.RegisterRoutes(engine.Group("/"))

	port := env.Get(environment.Port)
	if len(port) == 0 {
		port = defaultPort
	}

	return Server{
		Engine:      engine,
		Port:        port,
		logger:      logger,
		lockService: lockService,
	}
}

// Close tears down the open lock views, ending all lock status streams
func (s Server) Close() error {
	s.logger.Info("closing lock views")
	return s.lockService.Close()
}
