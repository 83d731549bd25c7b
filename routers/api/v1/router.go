package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_teams/authorization"
	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/routers/api/models"
	"github.com/unicsmcr/hs_teams/services"
	"github.com/unicsmcr/hs_teams/utils"
	"go.uber.org/zap"
)

const resourcePath = "hs:hs_teams:api:v1"
const authTokenHeader = "Authorization"

// APIV1Router is the router for v1 of the API
type APIV1Router interface {
	models.Router
	GetResourcePath() string
	GetAuthToken(ctx *gin.Context) string
	HandleUnauthorized(ctx *gin.Context)

	OpenLockView(ctx *gin.Context)
	CloseLockView(ctx *gin.Context)
	GetLockStatus(ctx *gin.Context)
	StreamLockStatus(ctx *gin.Context)

	CreateTeam(ctx *gin.Context)
	GetMyTeams(ctx *gin.Context)
	GetHackathonTeams(ctx *gin.Context)
	GetTeam(ctx *gin.Context)
	RequestJoin(ctx *gin.Context)
	AcceptRequest(ctx *gin.Context)
	DeclineRequest(ctx *gin.Context)
	LeaveTeam(ctx *gin.Context)
	GetTeamWithJoinCode(ctx *gin.Context)
	JoinTeamWithCode(ctx *gin.Context)

	StartSession(ctx *gin.Context)
	SubmitProject(ctx *gin.Context)
	GetWorkspace(ctx *gin.Context)
	StreamWorkspace(ctx *gin.Context)
}

type apiV1Router struct {
	models.BaseRouter
	logger         *zap.Logger
	cfg            *config.AppConfig
	authorizer     authorization.Authorizer
	teamService    services.TeamService
	sessionService services.SessionService
	lockService    services.LockService
	timeProvider   utils.TimeProvider

	lockLoadingWait time.Duration
}

// NewAPIV1Router creates a APIV1Router
func NewAPIV1Router(logger *zap.Logger, cfg *config.AppConfig, authorizer authorization.Authorizer,
	teamService services.TeamService, sessionService services.SessionService, lockService services.LockService,
	timeProvider utils.TimeProvider) APIV1Router {
	return &apiV1Router{
		logger:         logger,
		cfg:            cfg,
		authorizer:     authorizer,
		teamService:    teamService,
		sessionService: sessionService,
		lockService:    lockService,
		timeProvider:   timeProvider,

		lockLoadingWait: defaultLockLoadingWait,
	}
}

// RegisterRoutes registers all of the API's (v1) routes to the given router group
func (r *apiV1Router) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	// always reachable, even while the user is locked into a team
	routerGroup.POST("/session", r.authorizer.WithAuthMiddleware(r, r.OpenLockView))
	routerGroup.DELETE("/session", r.authorizer.WithAuthMiddleware(r, r.CloseLockView))
	routerGroup.GET("/lock", r.authorizer.WithAuthMiddleware(r, r.GetLockStatus))
	routerGroup.GET("/lock/stream", r.authorizer.WithAuthMiddleware(r, r.StreamLockStatus))

	routerGroup.GET("/users/me/teams", r.guarded(r.GetMyTeams))
	routerGroup.GET("/hackathons/:hackathonId/teams", r.guarded(r.GetHackathonTeams))

	teamsGroup := routerGroup.Group("/teams")
	teamsGroup.POST("/", r.guarded(r.CreateTeam))
	teamsGroup.GET("/:id", r.guarded(r.GetTeam))
	teamsGroup.POST("/:id/requests", r.guarded(r.RequestJoin))
	teamsGroup.PUT("/:id/requests/:userId", r.guarded(r.AcceptRequest))
	teamsGroup.DELETE("/:id/requests/:userId", r.guarded(r.DeclineRequest))
	teamsGroup.DELETE("/:id/members/me", r.guarded(r.LeaveTeam))
	teamsGroup.POST("/:id/session", r.guarded(r.StartSession))
	teamsGroup.POST("/:id/submission", r.guarded(r.SubmitProject))
	teamsGroup.GET("/:id/workspace", r.guarded(r.GetWorkspace))
	teamsGroup.GET("/:id/workspace/stream", r.guarded(r.StreamWorkspace))

	joinGroup := routerGroup.Group("/join")
	joinGroup.GET("/:code", r.guarded(r.GetTeamWithJoinCode))
	joinGroup.POST("/:code", r.guarded(r.JoinTeamWithCode))
}

// guarded wraps the handler with authorization and the lock guard
func (r *apiV1Router) guarded(handler gin.HandlerFunc) gin.HandlerFunc {
	return r.authorizer.WithAuthMiddleware(r, r.withLockGuard(handler))
}

func (r *apiV1Router) GetResourcePath() string {
	return resourcePath
}

func (r *apiV1Router) GetAuthToken(ctx *gin.Context) string {
	return ctx.GetHeader(authTokenHeader)
}

func (r *apiV1Router) HandleUnauthorized(ctx *gin.Context) {
	models.SendAPIError(ctx, http.StatusUnauthorized, "you are not authorized to use this operation")
}
