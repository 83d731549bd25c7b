package repositories

import (
	"context"
	"time"

	"github.com/unicsmcr/hs_teams/entities"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamStore is a document store for teams. All serialisation of concurrent
// writes happens inside the store: UpdateTeam evaluates its condition against
// the stored team at commit time and applies the update atomically.
type TeamStore interface {
	// InsertTeam stores a new team. Returns ErrDuplicateJoinCode when the
	// team's join code is already assigned.
	InsertTeam(ctx context.Context, team entities.Team) error

	// GetTeamByID returns the team with the given ID or ErrNotFound.
	GetTeamByID(ctx context.Context, id primitive.ObjectID) (*entities.Team, error)
	// FindTeamsWithField returns the teams whose field equals value, newest first.
	FindTeamsWithField(ctx context.Context, field entities.TeamField, value string) ([]entities.Team, error)
	// FindTeamsWithArrayContaining returns the teams whose array field contains value, newest first.
	FindTeamsWithArrayContaining(ctx context.Context, field entities.TeamField, value string) ([]entities.Team, error)

	// UpdateTeam applies update to the team if it satisfies cond at commit time and
	// returns the team as it is after the update.
	// Returns ErrConditionFailed when the team does not exist or the condition does not hold.
	UpdateTeam(ctx context.Context, id primitive.ObjectID, cond TeamCondition, update TeamUpdate) (*entities.Team, error)

	// SubscribeToTeam streams snapshots of the team until ctx is cancelled.
	// Only the latest undelivered snapshot is kept.
	SubscribeToTeam(ctx context.Context, id primitive.ObjectID) <-chan TeamSnapshot
	// SubscribeToTeamsWithArrayContaining streams the result of FindTeamsWithArrayContaining
	// every time it may have changed, until ctx is cancelled. Only the latest undelivered
	// snapshot is kept.
	SubscribeToTeamsWithArrayContaining(ctx context.Context, field entities.TeamField, value string) <-chan TeamsSnapshot
}

// TeamCondition is a predicate over a stored team. Zero valued fields are not checked.
type TeamCondition struct {
	CreatorID    string
	NotCreatorID string

	Member        string
	NotMember     string
	JoinRequest   string
	NoJoinRequest string

	// HasCapacity requires fewer members than the team's max size
	HasCapacity bool

	NotStarted   bool
	NotSubmitted bool
	// ActiveAt requires the session to be Active at the given time
	ActiveAt *time.Time
	// NotFrozenAt requires the session to be neither Expired nor Submitted at the given time
	NotFrozenAt *time.Time
}

// Matches evaluates the condition against the team
func (c TeamCondition) Matches(team entities.Team) bool {
	switch {
	case c.CreatorID != "" && team.CreatorID != c.CreatorID:
		return false
	case c.NotCreatorID != "" && team.CreatorID == c.NotCreatorID:
		return false
	case c.Member != "" && !team.HasMember(c.Member):
		return false
	case c.NotMember != "" && team.HasMember(c.NotMember):
		return false
	case c.JoinRequest != "" && !team.HasJoinRequest(c.JoinRequest):
		return false
	case c.NoJoinRequest != "" && team.HasJoinRequest(c.NoJoinRequest):
		return false
	case c.HasCapacity && team.IsFull():
		return false
	case c.NotStarted && team.HackathonStartedAt != nil:
		return false
	case c.NotSubmitted && team.IsSubmitted:
		return false
	case c.ActiveAt != nil && entities.ComputeState(team, *c.ActiveAt) != entities.Active:
		return false
	case c.NotFrozenAt != nil && entities.ComputeState(team, *c.NotFrozenAt).IsFrozen():
		return false
	}
	return true
}

// TeamUpdate describes the changes applied by UpdateTeam
type TeamUpdate struct {
	// Set overwrites the given fields
	Set map[entities.TeamField]interface{}
	// AddToSet adds a value to an array field unless it is already present
	AddToSet map[entities.TeamField]string
	// Pull removes a value from an array field
	Pull map[entities.TeamField]string
}

// TeamSnapshot is a snapshot of a single team. Team is nil when the team does not exist.
// Err is set when the store could not observe the team; a later snapshot follows once it recovers.
type TeamSnapshot struct {
	Team *entities.Team
	Err  error
}

// TeamsSnapshot is a snapshot of a query result.
// Err is set when the store could not run the query; a later snapshot follows once it recovers.
type TeamsSnapshot struct {
	Teams []entities.Team
	Err   error
}

// normalizeTimes converts the team's timestamps to UTC so that teams read
// back from a store compare equal to the ones written
func normalizeTimes(team *entities.Team) {
	team.CreatedAt = team.CreatedAt.UTC()
	for _, t := range []**time.Time{&team.HackathonStartedAt, &team.HackathonEndsAt, &team.SubmittedAt} {
		if *t != nil {
			utc := (**t).UTC()
			*t = &utc
		}
	}
}
