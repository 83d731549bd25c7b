package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/routers/api/models"
	"github.com/unicsmcr/hs_teams/services"
	"go.uber.org/zap"
)

type apiErrorMapping struct {
	status  int
	message string
}

// serviceErrors are the service errors caused by the request itself.
// Capacity and state races get their own 409 message each.
var serviceErrors = map[error]apiErrorMapping{
	services.ErrInvalidID:           {http.StatusBadRequest, "invalid team id"},
	services.ErrInvalidTeam:         {http.StatusBadRequest, "invalid team details"},
	services.ErrEmptyProjectName:    {http.StatusBadRequest, "project name must be provided"},
	services.ErrUnsupportedDuration: {http.StatusBadRequest, "unsupported session duration"},
	services.ErrInvalidURL:          {http.StatusBadRequest, "project link must be an absolute url"},
	services.ErrDescriptionTooShort: {http.StatusBadRequest, "final description is too short"},

	services.ErrNotCreator:         {http.StatusForbidden, "only the team's creator can perform this operation"},
	services.ErrNotMember:          {http.StatusForbidden, "user is not a member of the team"},
	services.ErrCreatorCannotLeave: {http.StatusForbidden, "the team's creator cannot leave the team"},

	services.ErrNotFound:      {http.StatusNotFound, "team not found"},
	services.ErrNoJoinRequest: {http.StatusNotFound, "user has not requested to join the team"},

	services.ErrTeamFull:          {http.StatusConflict, "team is full"},
	services.ErrAlreadyMember:     {http.StatusConflict, "user is already a member of the team"},
	services.ErrAlreadyRequested:  {http.StatusConflict, "user has already requested to join the team"},
	services.ErrAlreadyStarted:    {http.StatusConflict, "team's session has already started"},
	services.ErrSessionNotActive:  {http.StatusConflict, "team's session is not active"},
	services.ErrSessionFrozen:     {http.StatusConflict, "team's session is over, the team is read-only"},
	services.ErrConcurrentUpdate:  {http.StatusConflict, "team was modified by another request, try again"},
	services.ErrJoinCodeExhausted: {http.StatusServiceUnavailable, "could not generate a join code, try again"},
	services.ErrLockViewClosed:    {http.StatusServiceUnavailable, "service is shutting down"},
}

// sendServiceError responds with the API error matching the service error.
// Unknown errors are logged and reported as 500.
func (r *apiV1Router) sendServiceError(ctx *gin.Context, err error, operation string) {
	mapping, ok := serviceErrors[errors.Cause(err)]
	if !ok {
		r.logger.Error("could not "+operation, zap.Error(err))
		models.SendAPIError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	r.logger.Debug("could not "+operation, zap.Error(err))
	models.SendAPIError(ctx, mapping.status, mapping.message)
}
