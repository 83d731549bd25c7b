package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_teams/authorization"
	"github.com/unicsmcr/hs_teams/routers/api/models"
	"go.uber.org/zap"
)

const defaultLockLoadingWait = 2 * time.Second

// withLockGuard confines a locked user to the team they are locked into.
// Requests outside of that team are refused with 423 Locked and a Location header pointing
// at the team's workspace. While the lock status is loading, the guard waits for the first
// decision for up to lockLoadingWait and refuses the request with 503 if there still is none.
func (r *apiV1Router) withLockGuard(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := authorization.GetUserIDFromCtx(ctx)
		view, err := r.lockService.OpenLockView(userID)
		if err != nil {
			r.sendServiceError(ctx, err, "open lock view")
			return
		}

		status, changed := view.Updates()
		if status.LockLoading {
			timer := time.NewTimer(r.lockLoadingWait)
			select {
			case <-changed:
				status = view.Status()
			case <-timer.C:
			case <-ctx.Request.Context().Done():
			}
			timer.Stop()
		}

		switch {
		case status.LockLoading:
			r.logger.Debug("lock status is loading", zap.String("user", userID))
			ctx.Header("Retry-After", "1")
			models.SendAPIError(ctx, http.StatusServiceUnavailable, "lock status is not known yet")
			return
		case status.IsLocked && ctx.Param("id") != status.LockedTeamID:
			r.logger.Debug("request outside of locked team refused",
				zap.String("user", userID),
				zap.String("locked_team", status.LockedTeamID),
				zap.String("path", ctx.Request.URL.Path))
			ctx.Header("Location", "/team/"+status.LockedTeamID)
			ctx.JSON(http.StatusLocked, lockedRes{
				Response: models.Response{
					Status: http.StatusLocked,
					Err:    "user is locked into their team's workspace",
				},
				LockedTeamID: status.LockedTeamID,
			})
			ctx.Abort()
			return
		}

		handler(ctx)
	}
}
