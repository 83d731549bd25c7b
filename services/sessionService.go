package services

import (
	"context"
	"time"

	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/repositories"
	"github.com/unicsmcr/hs_teams/utils"
	"go.uber.org/zap"
)

// SessionService is the service driving the hackathon session of a team
type SessionService interface {
	// StartSession starts the team's session for the given number of hours. Only the creator can start it.
	StartSession(ctx context.Context, teamID, callerID string, durationHours int, projectName string) (*entities.Team, error)
	// SubmitProject submits the team's project and ends the session. Only the creator can submit.
	SubmitProject(ctx context.Context, teamID, callerID, projectLink, finalDescription string) (*entities.Team, error)

	GetWorkspace(ctx context.Context, teamID, userID string) (*entities.Workspace, error)
	// WatchWorkspace streams the workspace of the team every time the team changes and on
	// every tick of the lock interval. The channel is closed when ctx is cancelled or the
	// user stops being a member of the team.
	WatchWorkspace(ctx context.Context, teamID, userID string) (<-chan entities.Workspace, error)
}

type sessionService struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	store        repositories.TeamStore
	timeProvider utils.TimeProvider
	teamService  TeamService
}

// NewSessionService creates a new SessionService
func NewSessionService(logger *zap.Logger, cfg *config.AppConfig, store repositories.TeamStore, timeProvider utils.TimeProvider, teamService TeamService) SessionService {
	return &sessionService{
		logger:       logger,
		cfg:          cfg,
		store:        store,
		timeProvider: timeProvider,
		teamService:  teamService,
	}
}

func (s *sessionService) StartSession(ctx context.Context, teamID, callerID string, durationHours int, projectName string) (*entities.Team, error) {
	id, err := parseTeamID(teamID)
	if err != nil {
		return nil, err
	}
	projectName, err = validateProjectName(projectName)
	if err != nil {
		return nil, err
	}
	if err := validateDuration(durationHours, s.cfg.Session.AllowedDurations); err != nil {
		return nil, err
	}

	now := s.now()
	team, err := updateTeam(ctx, s.store, id, repositories.TeamCondition{
		CreatorID:    callerID,
		NotStarted:   true,
		NotSubmitted: true,
	}, repositories.TeamUpdate{
		Set: map[entities.TeamField]interface{}{
			entities.TeamHackathonStartedAt: now,
			entities.TeamHackathonEndsAt:    now.Add(time.Duration(durationHours) * time.Hour),
			entities.TeamHackathonDuration:  durationHours,
			entities.TeamProjectName:        projectName,
		},
	}, func(team entities.Team) error {
		state := entities.ComputeState(team, now)
		switch {
		case state.IsFrozen():
			return ErrSessionFrozen
		case team.CreatorID != callerID:
			return ErrNotCreator
		case state == entities.Active:
			return ErrAlreadyStarted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("session started",
		zap.String("team", teamID),
		zap.Int("duration_hours", durationHours),
		zap.Time("ends_at", now.Add(time.Duration(durationHours)*time.Hour)))
	return team, nil
}

func (s *sessionService) SubmitProject(ctx context.Context, teamID, callerID, projectLink, finalDescription string) (*entities.Team, error) {
	id, err := parseTeamID(teamID)
	if err != nil {
		return nil, err
	}
	projectLink, err = validateProjectLink(projectLink)
	if err != nil {
		return nil, err
	}
	finalDescription, err = validateFinalDescription(finalDescription, s.cfg.Session.MinDescriptionLength)
	if err != nil {
		return nil, err
	}

	now := s.now()
	team, err := updateTeam(ctx, s.store, id, repositories.TeamCondition{
		CreatorID: callerID,
		ActiveAt:  &now,
	}, repositories.TeamUpdate{
		Set: map[entities.TeamField]interface{}{
			entities.TeamIsSubmitted:      true,
			entities.TeamSubmittedAt:      now,
			entities.TeamHackathonEndsAt:  now,
			entities.TeamProjectLink:      projectLink,
			entities.TeamFinalDescription: finalDescription,
		},
	}, func(team entities.Team) error {
		state := entities.ComputeState(team, now)
		switch {
		case state.IsFrozen():
			return ErrSessionFrozen
		case team.CreatorID != callerID:
			return ErrNotCreator
		case state == entities.Forming:
			return ErrSessionNotActive
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project submitted", zap.String("team", teamID), zap.String("link", projectLink))
	return team, nil
}

func (s *sessionService) GetWorkspace(ctx context.Context, teamID, userID string) (*entities.Workspace, error) {
	team, err := s.teamService.GetTeamWithID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.HasMember(userID) {
		return nil, ErrNotMember
	}

	workspace := entities.NewWorkspace(*team, s.timeProvider.Now())
	return &workspace, nil
}

func (s *sessionService) WatchWorkspace(ctx context.Context, teamID, userID string) (<-chan entities.Workspace, error) {
	if _, err := s.GetWorkspace(ctx, teamID, userID); err != nil {
		return nil, err
	}
	id, err := parseTeamID(teamID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	snapshots := s.store.SubscribeToTeam(ctx, id)
	ticks, stopTicker := s.timeProvider.NewTicker(tickInterval(s.cfg))
	out := make(chan entities.Workspace, 1)

	go func() {
		defer close(out)
		defer stopTicker()
		defer cancel()

		var team *entities.Team
		for {
			select {
			case <-ctx.Done():
				return
			case snapshot, ok := <-snapshots:
				if !ok {
					return
				}
				if snapshot.Err != nil {
					s.logger.Debug("workspace subscription failed", zap.String("team", teamID), zap.Error(snapshot.Err))
					continue
				}
				if snapshot.Team == nil || !snapshot.Team.HasMember(userID) {
					return
				}
				team = snapshot.Team
			case <-ticks:
				if team == nil {
					continue
				}
			}

			sendWorkspace(out, entities.NewWorkspace(*team, s.timeProvider.Now()))
		}
	}()

	return out, nil
}

// now returns the current time as stored by the team store
func (s *sessionService) now() time.Time {
	return s.timeProvider.Now().UTC().Truncate(time.Millisecond)
}

// sendWorkspace delivers the workspace, replacing an undelivered older one
func sendWorkspace(out chan entities.Workspace, workspace entities.Workspace) {
	for {
		select {
		case out <- workspace:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
