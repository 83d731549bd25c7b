package v1

import (
	"net/http"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	lockStatusEvent = "lock"
	workspaceEvent  = "workspace"
)

func startEventStream(ctx *gin.Context) {
	ctx.Header("Content-Type", sse.ContentType)
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Status(http.StatusOK)
}

// sendEvent writes a server-sent event and flushes it to the client.
// Returns false when the client cannot be written to anymore.
func (r *apiV1Router) sendEvent(ctx *gin.Context, event string, data interface{}) bool {
	err := sse.Encode(ctx.Writer, sse.Event{
		Event: event,
		Data:  data,
	})
	if err != nil {
		r.logger.Debug("could not write event", zap.String("event", event), zap.Error(err))
		return false
	}

	ctx.Writer.Flush()
	return true
}
