package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_teams/routers/api/models"
	v1 "github.com/unicsmcr/hs_teams/routers/api/v1"
	"go.uber.org/zap"
)

// MainRouter is the root router of the service
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger      *zap.Logger
	apiV1Router v1.APIV1Router
}

// NewMainRouter creates a new MainRouter
func NewMainRouter(logger *zap.Logger, apiV1Router v1.APIV1Router) MainRouter {
	return &mainRouter{
		logger:      logger,
		apiV1Router: apiV1Router,
	}
}

// RegisterRoutes registers the heartbeat and all of the API's routes to the given router group
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	apiV1 := routerGroup.Group("/api/v1")
	r.apiV1Router.RegisterRoutes(apiV1)
	r.logger.Debug("routes registered", zap.String("api", apiV1.BasePath()))
}
