package repositories

import (
	"context"

	"github.com/unicsmcr/hs_teams/entities"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx"
)

const teamCollection = "teams"

// TeamRepository is the repository for Team objects
type TeamRepository struct {
	*mongo.Collection
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *mongo.Database) (*TeamRepository, error) {
	_, err := db.Collection(teamCollection).Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bsonx.Doc{{Key: string(entities.TeamJoinCode), Value: bsonx.Int32(1)}},
				Options: options.Index().SetUnique(true),
			},
			{
				// multikey index serving the membership queries of the lock views
				Keys: bsonx.Doc{{Key: string(entities.TeamMembers), Value: bsonx.Int32(1)}},
			},
			{
				Keys: bsonx.Doc{{Key: string(entities.TeamHackathonID), Value: bsonx.Int32(1)}},
			},
		},
	)

	if err != nil {
		return nil, err
	}

	return &TeamRepository{
		Collection: db.Collection(teamCollection),
	}, nil
}
