package v1

import (
	"time"

	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/routers/api/models"
)

type createTeamReq struct {
	HackathonID     string `form:"hackathonId" binding:"required"`
	HackathonName   string `form:"hackathonName"`
	PostTitle       string `form:"postTitle" binding:"required"`
	IdeaDescription string `form:"ideaDescription"`
	MaxTeamSize     int    `form:"maxTeamSize"`
}

type startSessionReq struct {
	DurationHours int    `form:"durationHours" binding:"required"`
	ProjectName   string `form:"projectName"`
}

type submitProjectReq struct {
	ProjectLink      string `form:"projectLink"`
	FinalDescription string `form:"finalDescription"`
}

// team is a stored team together with the fields derived from it
type team struct {
	entities.Team
	IsFull bool                  `json:"is_full"`
	State  entities.SessionState `json:"state"`
}

type teamRes struct {
	models.Response
	Team team `json:"team"`
	// JoinLink is only sent to the team's creator
	JoinLink string `json:"joinLink,omitempty"`
}

type teamsRes struct {
	models.Response
	Teams []team `json:"teams"`
}

type lockStatus struct {
	IsLocked     bool   `json:"isLocked"`
	LockedTeamID string `json:"lockedTeamId,omitempty"`
	LockLoading  bool   `json:"lockLoading"`
}

type lockStatusRes struct {
	models.Response
	lockStatus
}

type lockedRes struct {
	models.Response
	LockedTeamID string `json:"lockedTeamId"`
}

type workspace struct {
	TeamID           string                `json:"teamId"`
	State            entities.SessionState `json:"state"`
	IsReadOnly       bool                  `json:"isReadOnly"`
	EndsAt           *time.Time            `json:"endsAt,omitempty"`
	RemainingSeconds int64                 `json:"remainingSeconds"`
}

type workspaceRes struct {
	models.Response
	Workspace workspace `json:"workspace"`
}

func newTeam(t entities.Team, now time.Time) team {
	return team{
		Team:   t,
		IsFull: t.IsFull(),
		State:  entities.ComputeState(t, now),
	}
}

func newLockStatus(status entities.LockStatus) lockStatus {
	return lockStatus{
		IsLocked:     status.IsLocked,
		LockedTeamID: status.LockedTeamID,
		LockLoading:  status.LockLoading,
	}
}

func newWorkspace(w entities.Workspace) workspace {
	return workspace{
		TeamID:           w.TeamID,
		State:            w.State,
		IsReadOnly:       w.IsReadOnly,
		EndsAt:           w.EndsAt,
		RemainingSeconds: int64(w.Remaining / time.Second),
	}
}
