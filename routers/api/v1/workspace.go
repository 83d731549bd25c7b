package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_teams/authorization"
	"github.com/unicsmcr/hs_teams/routers/api/models"
	"go.uber.org/zap"
)

// POST: /api/v1/teams/:id/session
// x-www-form-urlencoded
// Request:  durationHours int
//           projectName string
// Response: status int
//           error string
//           team entities.Team + is_full bool + state string
// Headers:  Authorization -> token
func (r *apiV1Router) StartSession(ctx *gin.Context) {
	var req startSessionReq
	if err := ctx.ShouldBind(&req); err != nil {
		r.logger.Debug("could not parse start session request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "request must include the session's duration in hours")
		return
	}

	team, err := r.sessionService.StartSession(ctx, ctx.Param("id"), authorization.GetUserIDFromCtx(ctx), req.DurationHours, req.ProjectName)
	if err != nil {
		r.sendServiceError(ctx, err, "start session")
		return
	}

	r.sendTeam(ctx, *team)
}

// POST: /api/v1/teams/:id/submission
// x-www-form-urlencoded
// Request:  projectLink string
//           finalDescription string
// Response: status int
//           error string
//           team entities.Team + is_full bool + state string
// Headers:  Authorization -> token
func (r *apiV1Router) SubmitProject(ctx *gin.Context) {
	var req submitProjectReq
	if err := ctx.ShouldBind(&req); err != nil {
		r.logger.Debug("could not parse submit project request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "failed to parse request")
		return
	}

	team, err := r.sessionService.SubmitProject(ctx, ctx.Param("id"), authorization.GetUserIDFromCtx(ctx), req.ProjectLink, req.FinalDescription)
	if err != nil {
		r.sendServiceError(ctx, err, "submit project")
		return
	}

	r.sendTeam(ctx, *team)
}

// GET: /api/v1/teams/:id/workspace
// Response: status int
//           error string
//           workspace {teamId string, state string, isReadOnly bool, endsAt time, remainingSeconds int}
// Headers:  Authorization -> token
func (r *apiV1Router) GetWorkspace(ctx *gin.Context) {
	workspace, err := r.sessionService.GetWorkspace(ctx, ctx.Param("id"), authorization.GetUserIDFromCtx(ctx))
	if err != nil {
		r.sendServiceError(ctx, err, "fetch workspace")
		return
	}

	ctx.JSON(http.StatusOK, workspaceRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Workspace: newWorkspace(*workspace),
	})
}

// GET: /api/v1/teams/:id/workspace/stream
// Response: text/event-stream of "workspace" events, sent on every change of the team and on every tick
//           data: {teamId string, state string, isReadOnly bool, endsAt time, remainingSeconds int}
// Headers:  Authorization -> token
func (r *apiV1Router) StreamWorkspace(ctx *gin.Context) {
	workspaces, err := r.sessionService.WatchWorkspace(ctx.Request.Context(), ctx.Param("id"), authorization.GetUserIDFromCtx(ctx))
	if err != nil {
		r.sendServiceError(ctx, err, "watch workspace")
		return
	}

	startEventStream(ctx)
	for workspace := range workspaces {
		if !r.sendEvent(ctx, workspaceEvent, newWorkspace(workspace)) {
			return
		}
	}
}
