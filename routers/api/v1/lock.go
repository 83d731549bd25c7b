package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_teams/authorization"
	"github.com/unicsmcr/hs_teams/routers/api/models"
)

// POST: /api/v1/session
// Response: status int
//           error string
//           isLocked bool
//           lockedTeamId string
//           lockLoading bool
// Headers:  Authorization -> token
func (r *apiV1Router) OpenLockView(ctx *gin.Context) {
	view, err := r.lockService.OpenLockView(authorization.GetUserIDFromCtx(ctx))
	if err != nil {
		r.sendServiceError(ctx, err, "open lock view")
		return
	}

	ctx.JSON(http.StatusOK, lockStatusRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		lockStatus: newLockStatus(view.Status()),
	})
}

// DELETE: /api/v1/session
// Response: status int
//           error string
// Headers:  Authorization -> token
func (r *apiV1Router) CloseLockView(ctx *gin.Context) {
	err := r.lockService.CloseLockView(authorization.GetUserIDFromCtx(ctx))
	if err != nil {
		r.sendServiceError(ctx, err, "close lock view")
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Status: http.StatusOK,
	})
}

// GET: /api/v1/lock
// Response: status int
//           error string
//           isLocked bool
//           lockedTeamId string
//           lockLoading bool
// Headers:  Authorization -> token
func (r *apiV1Router) GetLockStatus(ctx *gin.Context) {
	r.OpenLockView(ctx)
}

// GET: /api/v1/lock/stream
// Response: text/event-stream of "lock" events, one per lock status change
//           data: {isLocked bool, lockedTeamId string, lockLoading bool}
// Headers:  Authorization -> token
func (r *apiV1Router) StreamLockStatus(ctx *gin.Context) {
	view, err := r.lockService.OpenLockView(authorization.GetUserIDFromCtx(ctx))
	if err != nil {
		r.sendServiceError(ctx, err, "open lock view")
		return
	}
	release := view.Hold()
	defer release()

	startEventStream(ctx)
	status, changed := view.Updates()
	for {
		if !r.sendEvent(ctx, lockStatusEvent, newLockStatus(status)) {
			return
		}

		select {
		case <-changed:
			status, changed = view.Updates()
		case <-view.Done():
			return
		case <-ctx.Request.Context().Done():
			return
		}
	}
}
