package entities

import "time"

// SessionState is the state of a team's hackathon session
type SessionState string

const (
	// Forming is the state of a team which has not started its session yet
	Forming SessionState = "forming"
	// Active is the state of a team whose session is running
	Active SessionState = "active"
	// Expired is the state of a team whose session ran out of time without a submission
	Expired SessionState = "expired"
	// Submitted is the state of a team which submitted its project
	Submitted SessionState = "submitted"
)

// ComputeState classifies the team's session at the given time.
// Submitted takes precedence over every time based check.
func ComputeState(team Team, now time.Time) SessionState {
	switch {
	case team.IsSubmitted:
		return Submitted
	case team.HackathonStartedAt == nil:
		return Forming
	case team.HackathonEndsAt == nil || !team.HackathonEndsAt.After(now):
		return Expired
	default:
		return Active
	}
}

// IsFrozen checks whether the state is terminal, in which case the team is read-only
func (s SessionState) IsFrozen() bool {
	return s == Expired || s == Submitted
}
