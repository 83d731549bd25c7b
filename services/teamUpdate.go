package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxUpdateAttempts = 3

// errAlreadyApplied is returned by a classifier when the team is already in
// the state the update would have produced
var errAlreadyApplied = errors.New("update already applied")

// classifier explains why a team failed the condition of an update. It returns
// nil when the team satisfies the condition, in which case the update is retried.
type classifier func(team entities.Team) error

// updateTeam applies the conditional update and returns the updated team. The team
// is only read after the store rejected the update, to turn the rejection into a
// specific error.
func updateTeam(ctx context.Context, store repositories.TeamStore, id primitive.ObjectID,
	cond repositories.TeamCondition, update repositories.TeamUpdate, classify classifier) (*entities.Team, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		updated, err := store.UpdateTeam(ctx, id, cond, update)
		if err == nil {
			return updated, nil
		} else if err != repositories.ErrConditionFailed {
			return nil, errors.Wrap(err, "could not update team")
		}

		team, err := store.GetTeamByID(ctx, id)
		if err == repositories.ErrNotFound {
			return nil, ErrNotFound
		} else if err != nil {
			return nil, errors.Wrap(err, "could not query for team with ID")
		}

		err = classify(*team)
		if err == errAlreadyApplied {
			return team, nil
		} else if err != nil {
			return nil, err
		}
	}

	return nil, ErrConcurrentUpdate
}
