package entities

import "time"

// Workspace is the view of a team handed to the workspace collaborators
type Workspace struct {
	TeamID     string
	State      SessionState
	IsReadOnly bool
	EndsAt     *time.Time
	// Remaining is the time left in an active session, zero otherwise
	Remaining time.Duration
}

// NewWorkspace derives the workspace view of the team at the given time
func NewWorkspace(team Team, now time.Time) Workspace {
	state := ComputeState(team, now)

	workspace := Workspace{
		TeamID:     team.ID.Hex(),
		State:      state,
		IsReadOnly: state.IsFrozen(),
		EndsAt:     team.HackathonEndsAt,
	}
	if state == Active {
		workspace.Remaining = team.HackathonEndsAt.Sub(now)
	}

	return workspace
}
