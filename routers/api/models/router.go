package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is a router which can register its routes on a router group
type Router interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
	Heartbeat(ctx *gin.Context)
}

// BaseRouter implements the handlers shared by all routers
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Heartbeat responds to every request with a 200 and the requested URL
func (r *BaseRouter) Heartbeat(ctx *gin.Context) {
	message := fmt.Sprintf("request to %s received", ctx.Request.URL.String())

	ctx.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
