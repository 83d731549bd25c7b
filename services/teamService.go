package services

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/repositories"
	"github.com/unicsmcr/hs_teams/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TeamService is the service forming teams. Every mutation is a single conditional
// update of one team, evaluated by the store against the live record.
type TeamService interface {
	// GenerateJoinCode returns a join code which is not assigned to any team yet
	GenerateJoinCode(ctx context.Context) (string, error)
	CreateTeam(ctx context.Context, creatorID string, params CreateTeamParams) (*entities.Team, error)

	GetTeamWithID(ctx context.Context, teamID string) (*entities.Team, error)
	GetTeamWithJoinCode(ctx context.Context, code string) (*entities.Team, error)
	GetTeamsForUser(ctx context.Context, userID string) ([]entities.Team, error)
	GetTeamsForHackathon(ctx context.Context, hackathonID string) ([]entities.Team, error)

	RequestJoin(ctx context.Context, teamID, userID string) error
	AcceptRequest(ctx context.Context, teamID, callerID, userID string) error
	DeclineRequest(ctx context.Context, teamID, callerID, userID string) error
	// JoinByCode adds the user to the team with the given join code, bypassing the request queue.
	// Joining a team the user is already a member of succeeds without changes.
	JoinByCode(ctx context.Context, code, userID string) (*entities.Team, error)
	LeaveTeam(ctx context.Context, teamID, userID string) error
}

// CreateTeamParams are the user provided fields of a new team
type CreateTeamParams struct {
	HackathonID     string
	HackathonName   string
	PostTitle       string
	IdeaDescription string
	// MaxTeamSize defaults to the configured maximum when zero
	MaxTeamSize int
}

type teamService struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	store        repositories.TeamStore
	timeProvider utils.TimeProvider
	newJoinCode  func(length int) (string, error)
}

// NewTeamService creates a new TeamService
func NewTeamService(logger *zap.Logger, cfg *config.AppConfig, store repositories.TeamStore, timeProvider utils.TimeProvider) TeamService {
	return &teamService{
		logger:       logger,
		cfg:          cfg,
		store:        store,
		timeProvider: timeProvider,
		newJoinCode:  utils.NewJoinCode,
	}
}

func (s *teamService) GenerateJoinCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.cfg.Teams.JoinCodeAttempts; attempt++ {
		code, err := s.newJoinCode(s.cfg.Teams.JoinCodeLength)
		if err != nil {
			return "", errors.Wrap(err, "could not generate join code")
		}

		teams, err := s.store.FindTeamsWithField(ctx, entities.TeamJoinCode, code)
		if err != nil {
			return "", errors.Wrap(err, "could not query for teams with join code")
		}
		if len(teams) == 0 {
			return code, nil
		}

		s.logger.Debug("generated join code is taken", zap.Int("attempt", attempt+1))
	}

	return "", ErrJoinCodeExhausted
}

func (s *teamService) CreateTeam(ctx context.Context, creatorID string, params CreateTeamParams) (*entities.Team, error) {
	maxTeamSize := params.MaxTeamSize
	if maxTeamSize == 0 {
		maxTeamSize = s.cfg.Teams.MaxTeamSize
	}
	if maxTeamSize > s.cfg.Teams.MaxTeamSize {
		return nil, ErrInvalidTeam
	}

	team := entities.Team{
		ID:              primitive.NewObjectID(),
		CreatorID:       creatorID,
		HackathonID:     params.HackathonID,
		HackathonName:   strings.TrimSpace(params.HackathonName),
		PostTitle:       strings.TrimSpace(params.PostTitle),
		IdeaDescription: strings.TrimSpace(params.IdeaDescription),
		TeamMembers:     []string{creatorID},
		MaxTeamSize:     maxTeamSize,
		JoinRequests:    []string{},
		CreatedAt:       s.timeProvider.Now().UTC().Truncate(time.Millisecond),
	}

	code, err := s.GenerateJoinCode(ctx)
	if err != nil {
		return nil, err
	}
	team.JoinCode = code

	if err := validateTeam(team); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		err = s.store.InsertTeam(ctx, team)
		if err == nil {
			break
		} else if err != repositories.ErrDuplicateJoinCode {
			return nil, errors.Wrap(err, "could not create team")
		} else if attempt >= s.cfg.Teams.JoinCodeAttempts {
			return nil, ErrJoinCodeExhausted
		}

		s.logger.Debug("join code was taken before insert", zap.Int("attempt", attempt))
		team.JoinCode, err = s.GenerateJoinCode(ctx)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("team created",
		zap.String("team", team.ID.Hex()),
		zap.String("creator", creatorID),
		zap.String("hackathon", team.HackathonID))
	return &team, nil
}

func (s *teamService) GetTeamWithID(ctx context.Context, teamID string) (*entities.Team, error) {
	id, err := parseTeamID(teamID)
	if err != nil {
		return nil, err
	}

	team, err := s.store.GetTeamByID(ctx, id)
	if err == repositories.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for team with ID")
	}

	return team, nil
}

func (s *teamService) GetTeamWithJoinCode(ctx context.Context, code string) (*entities.Team, error) {
	code = normalizeJoinCode(code)
	if len(code) == 0 {
		return nil, ErrNotFound
	}

	teams, err := s.store.FindTeamsWithField(ctx, entities.TeamJoinCode, code)
	if err != nil {
		return nil, errors.Wrap(err, "could not query for team with join code")
	} else if len(teams) == 0 {
		return nil, ErrNotFound
	}

	return &teams[0], nil
}

func (s *teamService) GetTeamsForUser(ctx context.Context, userID string) ([]entities.Team, error) {
	teams, err := s.store.FindTeamsWithArrayContaining(ctx, entities.TeamMembers, userID)
	if err != nil {
		return nil, errors.Wrap(err, "could not query for teams of user")
	}

	return teams, nil
}

func (s *teamService) GetTeamsForHackathon(ctx context.Context, hackathonID string) ([]entities.Team, error) {
	teams, err := s.store.FindTeamsWithField(ctx, entities.TeamHackathonID, hackathonID)
	if err != nil {
		return nil, errors.Wrap(err, "could not query for teams of hackathon")
	}

	return teams, nil
}

func (s *teamService) RequestJoin(ctx context.Context, teamID, userID string) error {
	id, err := parseTeamID(teamID)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	_, err = updateTeam(ctx, s.store, id, repositories.TeamCondition{
		NotMember:     userID,
		NoJoinRequest: userID,
		HasCapacity:   true,
		NotFrozenAt:   &now,
	}, repositories.TeamUpdate{
		AddToSet: map[entities.TeamField]string{entities.TeamJoinRequests: userID},
	}, func(team entities.Team) error {
		switch {
		case entities.ComputeState(team, now).IsFrozen():
			return ErrSessionFrozen
		case team.HasMember(userID):
			return ErrAlreadyMember
		case team.HasJoinRequest(userID):
			return ErrAlreadyRequested
		case team.IsFull():
			return ErrTeamFull
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("join requested", zap.String("team", teamID), zap.String("user", userID))
	return nil
}

func (s *teamService) AcceptRequest(ctx context.Context, teamID, callerID, userID string) error {
	id, err := parseTeamID(teamID)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	_, err = updateTeam(ctx, s.store, id, repositories.TeamCondition{
		CreatorID:   callerID,
		JoinRequest: userID,
		NotMember:   userID,
		HasCapacity: true,
		NotFrozenAt: &now,
	}, repositories.TeamUpdate{
		AddToSet: map[entities.TeamField]string{entities.TeamMembers: userID},
		Pull:     map[entities.TeamField]string{entities.TeamJoinRequests: userID},
	}, func(team entities.Team) error {
		switch {
		case entities.ComputeState(team, now).IsFrozen():
			return ErrSessionFrozen
		case team.CreatorID != callerID:
			return ErrNotCreator
		case team.HasMember(userID):
			return ErrAlreadyMember
		case !team.HasJoinRequest(userID):
			return ErrNoJoinRequest
		case team.IsFull():
			return ErrTeamFull
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("join request accepted", zap.String("team", teamID), zap.String("user", userID))
	return nil
}

func (s *teamService) DeclineRequest(ctx context.Context, teamID, callerID, userID string) error {
	id, err := parseTeamID(teamID)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	_, err = updateTeam(ctx, s.store, id, repositories.TeamCondition{
		CreatorID:   callerID,
		NotFrozenAt: &now,
	}, repositories.TeamUpdate{
		Pull: map[entities.TeamField]string{entities.TeamJoinRequests: userID},
	}, func(team entities.Team) error {
		switch {
		case entities.ComputeState(team, now).IsFrozen():
			return ErrSessionFrozen
		case team.CreatorID != callerID:
			return ErrNotCreator
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("join request declined", zap.String("team", teamID), zap.String("user", userID))
	return nil
}

func (s *teamService) JoinByCode(ctx context.Context, code, userID string) (*entities.Team, error) {
	team, err := s.GetTeamWithJoinCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if team.HasMember(userID) {
		return team, nil
	}

	now := s.timeProvider.Now()
	joined, err := updateTeam(ctx, s.store, team.ID, repositories.TeamCondition{
		NotMember:   userID,
		HasCapacity: true,
		NotFrozenAt: &now,
	}, repositories.TeamUpdate{
		AddToSet: map[entities.TeamField]string{entities.TeamMembers: userID},
		Pull:     map[entities.TeamField]string{entities.TeamJoinRequests: userID},
	}, func(current entities.Team) error {
		switch {
		case current.HasMember(userID):
			return errAlreadyApplied
		case entities.ComputeState(current, now).IsFrozen():
			return ErrSessionFrozen
		case current.IsFull():
			return ErrTeamFull
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("team joined with code", zap.String("team", team.ID.Hex()), zap.String("user", userID))
	return joined, nil
}

func (s *teamService) LeaveTeam(ctx context.Context, teamID, userID string) error {
	id, err := parseTeamID(teamID)
	if err != nil {
		return err
	}

	now := s.timeProvider.Now()
	_, err = updateTeam(ctx, s.store, id, repositories.TeamCondition{
		Member:       userID,
		NotCreatorID: userID,
		NotFrozenAt:  &now,
	}, repositories.TeamUpdate{
		Pull: map[entities.TeamField]string{entities.TeamMembers: userID},
	}, func(team entities.Team) error {
		switch {
		case entities.ComputeState(team, now).IsFrozen():
			return ErrSessionFrozen
		case !team.HasMember(userID):
			return ErrNotMember
		case team.CreatorID == userID:
			return ErrCreatorCannotLeave
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("team left", zap.String("team", teamID), zap.String("user", userID))
	return nil
}
