package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/environment"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// NewDatabase connects to the MongoDB database described by the environment
func NewDatabase(logger *zap.Logger, env *environment.Env) (*mongo.Database, error) {
	for _, name := range []string{environment.MongoUser, environment.MongoPassword, environment.MongoHost, environment.MongoDatabase} {
		if len(env.Get(name)) == 0 {
			return nil, errors.Errorf("environment variable %s must be set to connect to the database", name)
		}
	}

	connectionURL := fmt.Sprintf(`mongodb://%s:%s@%s/%s`, env.Get(environment.MongoUser), env.Get(environment.MongoPassword),
		env.Get(environment.MongoHost), env.Get(environment.MongoDatabase))

	client, err := mongo.NewClient(options.Client().ApplyURI(connectionURL))
	if err != nil {
		return nil, errors.Wrap(err, "could not create database client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to database")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not ping database")
	}
	logger.Info("connected to database", zap.String("database", env.Get(environment.MongoDatabase)))

	return client.Database(env.Get(environment.MongoDatabase)), nil
}
