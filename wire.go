//+build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/hs_teams/authorization"
	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/environment"
	"github.com/unicsmcr/hs_teams/repositories"
	"github.com/unicsmcr/hs_teams/routers"
	v1 "github.com/unicsmcr/hs_teams/routers/api/v1"
	"github.com/unicsmcr/hs_teams/services"
	"github.com/unicsmcr/hs_teams/utils"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		v1.NewAPIV1Router,
		services.NewTeamService,
		services.NewSessionService,
		services.NewLockService,
		repositories.NewMongoTeamStore,
		repositories.NewTeamRepository,
		authorization.NewAuthorizer,
		utils.NewDatabase,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
