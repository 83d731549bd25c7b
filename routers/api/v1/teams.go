package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_teams/authorization"
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/routers/api/models"
	"github.com/unicsmcr/hs_teams/services"
	"go.uber.org/zap"
)

// POST: /api/v1/teams
// x-www-form-urlencoded
// Request:  hackathonId string
//           hackathonName string
//           postTitle string
//           ideaDescription string
//           maxTeamSize int
// Response: status int
//           error string
//           team entities.Team + is_full bool + state string
//           joinLink string
// Headers:  Authorization -> token
func (r *apiV1Router) CreateTeam(ctx *gin.Context) {
	var req createTeamReq
	if err := ctx.ShouldBind(&req); err != nil {
		r.logger.Debug("could not parse create team request", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "request must include the hackathon's id and the post's title")
		return
	}

	team, err := r.teamService.CreateTeam(ctx, authorization.GetUserIDFromCtx(ctx), services.CreateTeamParams{
		HackathonID:     req.HackathonID,
		HackathonName:   req.HackathonName,
		PostTitle:       req.PostTitle,
		IdeaDescription: req.IdeaDescription,
		MaxTeamSize:     req.MaxTeamSize,
	})
	if err != nil {
		r.sendServiceError(ctx, err, "create team")
		return
	}

	r.sendTeam(ctx, *team)
}

// GET: /api/v1/users/me/teams
// Response: status int
//           error string
//           teams []entities.Team + is_full bool + state string
// Headers:  Authorization -> token
func (r *apiV1Router) GetMyTeams(ctx *gin.Context) {
	userID := authorization.GetUserIDFromCtx(ctx)
	teams, err := r.teamService.GetTeamsForUser(ctx, userID)
	if err != nil {
		r.sendServiceError(ctx, err, "fetch teams of user")
		return
	}

	r.sendTeams(ctx, userID, teams)
}

// GET: /api/v1/hackathons/:hackathonId/teams
// Response: status int
//           error string
//           teams []entities.Team + is_full bool + state string
// Headers:  Authorization -> token
func (r *apiV1Router) GetHackathonTeams(ctx *gin.Context) {
	teams, err := r.teamService.GetTeamsForHackathon(ctx, ctx.Param("hackathonId"))
	if err != nil {
		r.sendServiceError(ctx, err, "fetch teams of hackathon")
		return
	}

	r.sendTeams(ctx, authorization.GetUserIDFromCtx(ctx), teams)
}

// GET: /api/v1/teams/:id
// Response: status int
//           error string
//           team entities.Team + is_full bool + state string
//           joinLink string
// Headers:  Authorization -> token
func (r *apiV1Router) GetTeam(ctx *gin.Context) {
	team, err := r.teamService.GetTeamWithID(ctx, ctx.Param("id"))
	if err != nil {
		r.sendServiceError(ctx, err, "fetch team")
		return
	}

	r.sendTeam(ctx, *team)
}

// POST: /api/v1/teams/:id/requests
// Response: status int
//           error string
// Headers:  Authorization -> token
func (r *apiV1Router) RequestJoin(ctx *gin.Context) {
	err := r.teamService.RequestJoin(ctx, ctx.Param("id"), authorization.GetUserIDFromCtx(ctx))
	if err != nil {
		r.sendServiceError(ctx, err, "request to join team")
		return
	}

	sendOK(ctx)
}

// PUT: /api/v1/teams/:id/requests/:userId
// Response: status int
//           error string
// Headers:  Authorization -> token
func (r *apiV1Router) AcceptRequest(ctx *gin.Context) {
	err := r.teamService.AcceptRequest(ctx, ctx.Param("id"), authorization.GetUserIDFromCtx(ctx), ctx.Param("userId"))
	if err != nil {
		r.sendServiceError(ctx, err, "accept join request")
		return
	}

	sendOK(ctx)
}

// DELETE: /api/v1/teams/:id/requests/:userId
// Response: status int
//           error string
// Headers:  Authorization -> token
func (r *apiV1Router) DeclineRequest(ctx *gin.Context) {
	err := r.teamService.DeclineRequest(ctx, ctx.Param("id"), authorization.GetUserIDFromCtx(ctx), ctx.Param("userId"))
	if err != nil {
		r.sendServiceError(ctx, err, "decline join request")
		return
	}

	sendOK(ctx)
}

// DELETE: /api/v1/teams/:id/members/me
// Response: status int
//           error string
// Headers:  Authorization -> token
func (r *apiV1Router) LeaveTeam(ctx *gin.Context) {
	err := r.teamService.LeaveTeam(ctx, ctx.Param("id"), authorization.GetUserIDFromCtx(ctx))
	if err != nil {
		r.sendServiceError(ctx, err, "leave team")
		return
	}

	sendOK(ctx)
}

// GET: /api/v1/join/:code
// Response: status int
//           error string
//           team entities.Team + is_full bool + state string
// Headers:  Authorization -> token
func (r *apiV1Router) GetTeamWithJoinCode(ctx *gin.Context) {
	team, err := r.teamService.GetTeamWithJoinCode(ctx, ctx.Param("code"))
	if err != nil {
		r.sendServiceError(ctx, err, "fetch team with join code")
		return
	}

	r.sendTeam(ctx, *team)
}

// POST: /api/v1/join/:code
// Response: status int
//           error string
//           team entities.Team + is_full bool + state string
// Headers:  Authorization -> token
func (r *apiV1Router) JoinTeamWithCode(ctx *gin.Context) {
	team, err := r.teamService.JoinByCode(ctx, ctx.Param("code"), authorization.GetUserIDFromCtx(ctx))
	if err != nil {
		r.sendServiceError(ctx, err, "join team with code")
		return
	}

	r.sendTeam(ctx, *team)
}

// sendTeam responds with the team as seen by the requesting user.
// Only the creator gets to see the join code and the shareable join link.
func (r *apiV1Router) sendTeam(ctx *gin.Context, t entities.Team) {
	userID := authorization.GetUserIDFromCtx(ctx)
	res := teamRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Team: newTeam(teamForUser(t, userID), r.timeProvider.Now()),
	}
	if t.CreatorID == userID {
		res.JoinLink = r.joinLink(t.JoinCode)
	}

	ctx.JSON(http.StatusOK, res)
}

func (r *apiV1Router) sendTeams(ctx *gin.Context, userID string, teams []entities.Team) {
	now := r.timeProvider.Now()
	visible := make([]team, len(teams))
	for i, t := range teams {
		visible[i] = newTeam(teamForUser(t, userID), now)
	}

	ctx.JSON(http.StatusOK, teamsRes{
		Response: models.Response{
			Status: http.StatusOK,
		},
		Teams: visible,
	})
}

func (r *apiV1Router) joinLink(code string) string {
	return fmt.Sprintf("%s/join/%s", r.cfg.BaseURL, code)
}

func teamForUser(team entities.Team, userID string) entities.Team {
	if team.CreatorID != userID {
		team.JoinCode = ""
	}
	return team
}

func sendOK(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.Response{
		Status: http.StatusOK,
	})
}
