package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/entities"
	mock_repositories "github.com/unicsmcr/hs_teams/mocks/repositories"
	"github.com/unicsmcr/hs_teams/repositories"
	"github.com/unicsmcr/hs_teams/testutils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var testTime = time.Date(2020, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestConfig() *config.AppConfig {
	return &config.AppConfig{
		Teams: config.TeamsConfig{
			MaxTeamSize:      4,
			JoinCodeLength:   6,
			JoinCodeAttempts: 3,
		},
		Session: config.SessionConfig{
			AllowedDurations:     []int{6, 12, 24, 36, 48},
			MinDescriptionLength: 20,
		},
		Lock: config.LockConfig{
			TickIntervalSeconds:     30,
			ResubscribeDelaySeconds: 1,
			IdleTimeoutMinutes:      24 * 60,
		},
	}
}

type teamServiceTestSetup struct {
	cfg     *config.AppConfig
	store   repositories.TeamStore
	clock   *testutils.FakeTimeProvider
	service *teamService
}

func setupTeamServiceTest(t *testing.T) teamServiceTestSetup {
	cfg := newTestConfig()
	store := repositories.NewMemoryTeamStore()
	clock := testutils.NewFakeTimeProvider(testTime)

	return teamServiceTestSetup{
		cfg:     cfg,
		store:   store,
		clock:   clock,
		service: NewTeamService(zap.NewNop(), cfg, store, clock).(*teamService),
	}
}

type testTeamOptions struct {
	members      []string
	joinRequests []string
	maxTeamSize  int
	startedAt    *time.Time
	duration     int
	submitted    bool
}

// insertTestTeam stores a team created by creatorID. Members and join requests
// are added on top of the creator.
func insertTestTeam(t *testing.T, store repositories.TeamStore, creatorID string, opts testTeamOptions) entities.Team {
	maxTeamSize := opts.maxTeamSize
	if maxTeamSize == 0 {
		maxTeamSize = 2
	}
	joinRequests := opts.joinRequests
	if joinRequests == nil {
		joinRequests = []string{}
	}

	id := primitive.NewObjectID()
	team := entities.Team{
		ID:           id,
		CreatorID:    creatorID,
		HackathonID:  "hackathon",
		PostTitle:    "looking for a backend dev",
		TeamMembers:  append([]string{creatorID}, opts.members...),
		MaxTeamSize:  maxTeamSize,
		JoinCode:     strings.ToUpper(id.Hex()[18:]),
		JoinRequests: joinRequests,
		CreatedAt:    testTime,
		IsSubmitted:  opts.submitted,
	}
	if opts.startedAt != nil {
		endsAt := opts.startedAt.Add(time.Duration(opts.duration) * time.Hour)
		team.HackathonStartedAt = opts.startedAt
		team.HackathonEndsAt = &endsAt
		team.HackathonDuration = opts.duration
		team.ProjectName = "project"
	}

	assert.NoError(t, store.InsertTeam(context.Background(), team))
	return team
}

func getTestTeam(t *testing.T, store repositories.TeamStore, id primitive.ObjectID) entities.Team {
	team, err := store.GetTeamByID(context.Background(), id)
	assert.NoError(t, err)
	if team == nil {
		t.FailNow()
	}
	return *team
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func activeSince(d time.Duration) *time.Time {
	return timePtr(testTime.Add(-d))
}

func Test_GenerateJoinCode__should_return_code_with_configured_length(t *testing.T) {
	setup := setupTeamServiceTest(t)

	code, err := setup.service.GenerateJoinCode(context.Background())

	assert.NoError(t, err)
	assert.Len(t, code, setup.cfg.Teams.JoinCodeLength)
	assert.Regexp(t, "^[A-Z0-9]+$", code)
}

func Test_GenerateJoinCode__should_skip_codes_which_are_taken(t *testing.T) {
	setup := setupTeamServiceTest(t)
	taken := insertTestTeam(t, setup.store, "creator", testTeamOptions{})

	codes := []string{taken.JoinCode, "FREE01"}
	setup.service.newJoinCode = func(int) (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	code, err := setup.service.GenerateJoinCode(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "FREE01", code)
}

func Test_GenerateJoinCode__should_return_ErrJoinCodeExhausted_when_every_code_is_taken(t *testing.T) {
	setup := setupTeamServiceTest(t)
	taken := insertTestTeam(t, setup.store, "creator", testTeamOptions{})

	calls := 0
	setup.service.newJoinCode = func(int) (string, error) {
		calls++
		return taken.JoinCode, nil
	}

	_, err := setup.service.GenerateJoinCode(context.Background())

	assert.Equal(t, ErrJoinCodeExhausted, err)
	assert.Equal(t, setup.cfg.Teams.JoinCodeAttempts, calls)
}

func Test_GenerateJoinCode__should_return_error_when_generator_fails(t *testing.T) {
	setup := setupTeamServiceTest(t)
	testErr := errors.New("no entropy")
	setup.service.newJoinCode = func(int) (string, error) {
		return "", testErr
	}

	_, err := setup.service.GenerateJoinCode(context.Background())

	assert.Equal(t, testErr, errors.Cause(err))
}

func Test_CreateTeam__should_create_team_with_creator_as_only_member(t *testing.T) {
	setup := setupTeamServiceTest(t)

	team, err := setup.service.CreateTeam(context.Background(), "creator", CreateTeamParams{
		HackathonID:     "hackathon",
		HackathonName:   "  HackTheBurgh  ",
		PostTitle:       "looking for a designer",
		IdeaDescription: "an app",
		MaxTeamSize:     3,
	})
	assert.NoError(t, err)

	assert.Equal(t, []string{"creator"}, team.TeamMembers)
	assert.Empty(t, team.JoinRequests)
	assert.Equal(t, 3, team.MaxTeamSize)
	assert.Equal(t, "HackTheBurgh", team.HackathonName)
	assert.Equal(t, testTime, team.CreatedAt)
	assert.Len(t, team.JoinCode, setup.cfg.Teams.JoinCodeLength)
	assert.Equal(t, entities.Forming, entities.ComputeState(*team, testTime))

	stored := getTestTeam(t, setup.store, team.ID)
	assert.Equal(t, *team, stored)
}

func Test_CreateTeam__should_use_configured_max_team_size_by_default(t *testing.T) {
	setup := setupTeamServiceTest(t)

	team, err := setup.service.CreateTeam(context.Background(), "creator", CreateTeamParams{
		HackathonID: "hackathon",
		PostTitle:   "looking for a designer",
	})

	assert.NoError(t, err)
	assert.Equal(t, setup.cfg.Teams.MaxTeamSize, team.MaxTeamSize)
}

func Test_CreateTeam__should_return_ErrInvalidTeam(t *testing.T) {
	tests := []struct {
		name      string
		creatorID string
		params    CreateTeamParams
	}{
		{
			name:      "when creator is missing",
			creatorID: "",
			params:    CreateTeamParams{HackathonID: "hackathon", PostTitle: "title"},
		},
		{
			name:      "when hackathon is missing",
			creatorID: "creator",
			params:    CreateTeamParams{PostTitle: "title"},
		},
		{
			name:      "when post title is blank",
			creatorID: "creator",
			params:    CreateTeamParams{HackathonID: "hackathon", PostTitle: "   "},
		},
		{
			name:      "when max team size is negative",
			creatorID: "creator",
			params:    CreateTeamParams{HackathonID: "hackathon", PostTitle: "title", MaxTeamSize: -1},
		},
		{
			name:      "when max team size exceeds the configured maximum",
			creatorID: "creator",
			params:    CreateTeamParams{HackathonID: "hackathon", PostTitle: "title", MaxTeamSize: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTeamServiceTest(t)

			team, err := setup.service.CreateTeam(context.Background(), tt.creatorID, tt.params)

			assert.Equal(t, ErrInvalidTeam, err)
			assert.Nil(t, team)
		})
	}
}

func Test_CreateTeam__should_retry_with_new_code_when_code_was_taken_before_insert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mock_repositories.NewMockTeamStore(ctrl)
	cfg := newTestConfig()
	service := NewTeamService(zap.NewNop(), cfg, mockStore, testutils.NewFakeTimeProvider(testTime)).(*teamService)

	codes := []string{"FIRST1", "SECOND"}
	service.newJoinCode = func(int) (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	mockStore.EXPECT().FindTeamsWithField(gomock.Any(), entities.TeamJoinCode, gomock.Any()).
		Return([]entities.Team{}, nil).Times(2)
	mockStore.EXPECT().InsertTeam(gomock.Any(), gomock.Any()).
		Return(repositories.ErrDuplicateJoinCode).Times(1)
	mockStore.EXPECT().InsertTeam(gomock.Any(), gomock.Any()).
		Return(nil).Times(1)

	team, err := service.CreateTeam(context.Background(), "creator", CreateTeamParams{
		HackathonID: "hackathon",
		PostTitle:   "title",
	})

	assert.NoError(t, err)
	assert.Equal(t, "SECOND", team.JoinCode)
}

func Test_CreateTeam__should_return_ErrJoinCodeExhausted_when_every_insert_collides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mock_repositories.NewMockTeamStore(ctrl)
	cfg := newTestConfig()
	service := NewTeamService(zap.NewNop(), cfg, mockStore, testutils.NewFakeTimeProvider(testTime))

	mockStore.EXPECT().FindTeamsWithField(gomock.Any(), entities.TeamJoinCode, gomock.Any()).
		Return([]entities.Team{}, nil).AnyTimes()
	mockStore.EXPECT().InsertTeam(gomock.Any(), gomock.Any()).
		Return(repositories.ErrDuplicateJoinCode).Times(cfg.Teams.JoinCodeAttempts)

	team, err := service.CreateTeam(context.Background(), "creator", CreateTeamParams{
		HackathonID: "hackathon",
		PostTitle:   "title",
	})

	assert.Equal(t, ErrJoinCodeExhausted, err)
	assert.Nil(t, team)
}

func Test_CreateTeam__should_return_error_when_store_fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mock_repositories.NewMockTeamStore(ctrl)
	service := NewTeamService(zap.NewNop(), newTestConfig(), mockStore, testutils.NewFakeTimeProvider(testTime))
	testErr := errors.New("connection refused")

	mockStore.EXPECT().FindTeamsWithField(gomock.Any(), entities.TeamJoinCode, gomock.Any()).
		Return([]entities.Team{}, nil).Times(1)
	mockStore.EXPECT().InsertTeam(gomock.Any(), gomock.Any()).Return(testErr).Times(1)

	_, err := service.CreateTeam(context.Background(), "creator", CreateTeamParams{
		HackathonID: "hackathon",
		PostTitle:   "title",
	})

	assert.Equal(t, testErr, errors.Cause(err))
}

func Test_GetTeamWithID(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{})

	stored, err := setup.service.GetTeamWithID(context.Background(), team.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, team.ID, stored.ID)

	_, err = setup.service.GetTeamWithID(context.Background(), "invalid id")
	assert.Equal(t, ErrInvalidID, err)

	_, err = setup.service.GetTeamWithID(context.Background(), primitive.NewObjectID().Hex())
	assert.Equal(t, ErrNotFound, err)
}

func Test_GetTeamWithJoinCode__should_ignore_case_and_whitespace(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{})

	stored, err := setup.service.GetTeamWithJoinCode(context.Background(), "  "+strings.ToLower(team.JoinCode)+" ")

	assert.NoError(t, err)
	assert.Equal(t, team.ID, stored.ID)
}

func Test_GetTeamWithJoinCode__should_return_ErrNotFound(t *testing.T) {
	setup := setupTeamServiceTest(t)
	insertTestTeam(t, setup.store, "creator", testTeamOptions{})

	_, err := setup.service.GetTeamWithJoinCode(context.Background(), "ZZZZZZ")
	assert.Equal(t, ErrNotFound, err)

	_, err = setup.service.GetTeamWithJoinCode(context.Background(), "  ")
	assert.Equal(t, ErrNotFound, err)
}

func Test_GetTeamsForUser__should_return_teams_the_user_is_member_of(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team1 := insertTestTeam(t, setup.store, "creator1", testTeamOptions{members: []string{"user"}})
	insertTestTeam(t, setup.store, "creator2", testTeamOptions{joinRequests: []string{"user"}})
	team3 := insertTestTeam(t, setup.store, "user", testTeamOptions{})

	teams, err := setup.service.GetTeamsForUser(context.Background(), "user")

	assert.NoError(t, err)
	var ids []primitive.ObjectID
	for _, team := range teams {
		ids = append(ids, team.ID)
	}
	assert.ElementsMatch(t, []primitive.ObjectID{team1.ID, team3.ID}, ids)
}

func Test_GetTeamsForHackathon(t *testing.T) {
	setup := setupTeamServiceTest(t)
	insertTestTeam(t, setup.store, "creator1", testTeamOptions{})
	insertTestTeam(t, setup.store, "creator2", testTeamOptions{})

	teams, err := setup.service.GetTeamsForHackathon(context.Background(), "hackathon")
	assert.NoError(t, err)
	assert.Len(t, teams, 2)

	teams, err = setup.service.GetTeamsForHackathon(context.Background(), "other")
	assert.NoError(t, err)
	assert.Empty(t, teams)
}

type membershipTestCase struct {
	name    string
	prep    func(t *testing.T, store repositories.TeamStore) entities.Team
	teamID  func(team entities.Team) string
	wantErr error
}

func runMembershipTests(t *testing.T, tests []membershipTestCase, op func(setup teamServiceTestSetup, teamID string) error) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTeamServiceTest(t)
			team := tt.prep(t, setup.store)

			teamID := team.ID.Hex()
			if tt.teamID != nil {
				teamID = tt.teamID(team)
			}

			err := op(setup, teamID)
			assert.Equal(t, tt.wantErr, errors.Cause(err))

			if tt.wantErr != nil && tt.wantErr != ErrInvalidID && tt.wantErr != ErrNotFound {
				assert.Equal(t, team, getTestTeam(t, setup.store, team.ID), "team must be left unmodified")
			}
		})
	}
}

func Test_RequestJoin__should_add_join_request(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{joinRequests: []string{"other"}})

	err := setup.service.RequestJoin(context.Background(), team.ID.Hex(), "user")

	assert.NoError(t, err)
	stored := getTestTeam(t, setup.store, team.ID)
	assert.Equal(t, []string{"other", "user"}, stored.JoinRequests)
	assert.Equal(t, []string{"creator"}, stored.TeamMembers)
}

func Test_RequestJoin__should_return_error(t *testing.T) {
	runMembershipTests(t, []membershipTestCase{
		{
			name: "when team id is invalid",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{})
			},
			teamID:  func(entities.Team) string { return "invalid id" },
			wantErr: ErrInvalidID,
		},
		{
			name: "when team does not exist",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{})
			},
			teamID:  func(entities.Team) string { return primitive.NewObjectID().Hex() },
			wantErr: ErrNotFound,
		},
		{
			name: "when user is already a member",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{members: []string{"user"}, maxTeamSize: 3})
			},
			wantErr: ErrAlreadyMember,
		},
		{
			name: "when user is the creator",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "user", testTeamOptions{})
			},
			wantErr: ErrAlreadyMember,
		},
		{
			name: "when user already requested to join",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{joinRequests: []string{"user"}})
			},
			wantErr: ErrAlreadyRequested,
		},
		{
			name: "when team is full",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{members: []string{"member"}})
			},
			wantErr: ErrTeamFull,
		},
		{
			name: "when session expired",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{startedAt: activeSince(7 * time.Hour), duration: 6})
			},
			wantErr: ErrSessionFrozen,
		},
		{
			name: "when project was submitted",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{startedAt: activeSince(time.Hour), duration: 6, submitted: true})
			},
			wantErr: ErrSessionFrozen,
		},
	}, func(setup teamServiceTestSetup, teamID string) error {
		return setup.service.RequestJoin(context.Background(), teamID, "user")
	})
}

func Test_RequestJoin__should_be_allowed_while_session_is_active(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{startedAt: activeSince(time.Hour), duration: 6})

	assert.NoError(t, setup.service.RequestJoin(context.Background(), team.ID.Hex(), "user"))
}

func Test_AcceptRequest__should_move_user_from_join_requests_to_members(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{joinRequests: []string{"user", "other"}, maxTeamSize: 3})

	err := setup.service.AcceptRequest(context.Background(), team.ID.Hex(), "creator", "user")

	assert.NoError(t, err)
	stored := getTestTeam(t, setup.store, team.ID)
	assert.Equal(t, []string{"creator", "user"}, stored.TeamMembers)
	assert.Equal(t, []string{"other"}, stored.JoinRequests)
}

func Test_AcceptRequest__should_return_error(t *testing.T) {
	runMembershipTests(t, []membershipTestCase{
		{
			name: "when team id is invalid",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{joinRequests: []string{"user"}})
			},
			teamID:  func(entities.Team) string { return "" },
			wantErr: ErrInvalidID,
		},
		{
			name: "when team does not exist",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{joinRequests: []string{"user"}})
			},
			teamID:  func(entities.Team) string { return primitive.NewObjectID().Hex() },
			wantErr: ErrNotFound,
		},
		{
			name: "when caller is not the creator",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "someone", testTeamOptions{joinRequests: []string{"user"}})
			},
			wantErr: ErrNotCreator,
		},
		{
			name: "when user is already a member",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{members: []string{"user"}, maxTeamSize: 3})
			},
			wantErr: ErrAlreadyMember,
		},
		{
			name: "when user did not request to join",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{joinRequests: []string{"other"}})
			},
			wantErr: ErrNoJoinRequest,
		},
		{
			name: "when team is full",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{members: []string{"member"}, joinRequests: []string{"user"}})
			},
			wantErr: ErrTeamFull,
		},
		{
			name: "when session expired",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{
					joinRequests: []string{"user"},
					startedAt:    activeSince(12 * time.Hour),
					duration:     6,
				})
			},
			wantErr: ErrSessionFrozen,
		},
	}, func(setup teamServiceTestSetup, teamID string) error {
		return setup.service.AcceptRequest(context.Background(), teamID, "creator", "user")
	})
}

func Test_DeclineRequest__should_remove_join_request(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{joinRequests: []string{"user", "other"}})

	err := setup.service.DeclineRequest(context.Background(), team.ID.Hex(), "creator", "user")

	assert.NoError(t, err)
	stored := getTestTeam(t, setup.store, team.ID)
	assert.Equal(t, []string{"other"}, stored.JoinRequests)
	assert.Equal(t, []string{"creator"}, stored.TeamMembers)
}

func Test_DeclineRequest__should_be_idempotent(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{joinRequests: []string{"user"}})

	assert.NoError(t, setup.service.DeclineRequest(context.Background(), team.ID.Hex(), "creator", "user"))
	assert.NoError(t, setup.service.DeclineRequest(context.Background(), team.ID.Hex(), "creator", "user"))
	assert.NoError(t, setup.service.DeclineRequest(context.Background(), team.ID.Hex(), "creator", "never-requested"))

	assert.Empty(t, getTestTeam(t, setup.store, team.ID).JoinRequests)
}

func Test_DeclineRequest__should_return_error(t *testing.T) {
	runMembershipTests(t, []membershipTestCase{
		{
			name: "when team does not exist",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{joinRequests: []string{"user"}})
			},
			teamID:  func(entities.Team) string { return primitive.NewObjectID().Hex() },
			wantErr: ErrNotFound,
		},
		{
			name: "when caller is not the creator",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "someone", testTeamOptions{joinRequests: []string{"user"}})
			},
			wantErr: ErrNotCreator,
		},
		{
			name: "when project was submitted",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{
					joinRequests: []string{"user"},
					startedAt:    activeSince(time.Hour),
					duration:     6,
					submitted:    true,
				})
			},
			wantErr: ErrSessionFrozen,
		},
	}, func(setup teamServiceTestSetup, teamID string) error {
		return setup.service.DeclineRequest(context.Background(), teamID, "creator", "user")
	})
}

func Test_JoinByCode__should_add_user_to_members_bypassing_requests(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{joinRequests: []string{"user"}})

	joined, err := setup.service.JoinByCode(context.Background(), team.JoinCode, "user")

	assert.NoError(t, err)
	assert.Equal(t, []string{"creator", "user"}, joined.TeamMembers)
	assert.Empty(t, joined.JoinRequests)
	assert.Equal(t, *joined, getTestTeam(t, setup.store, team.ID))
}

func Test_JoinByCode__should_return_team_from_conditional_update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mock_repositories.NewMockTeamStore(ctrl)
	service := NewTeamService(zap.NewNop(), newTestConfig(), mockStore, testutils.NewFakeTimeProvider(testTime))
	team := entities.Team{ID: primitive.NewObjectID(), CreatorID: "creator", TeamMembers: []string{"creator"}, MaxTeamSize: 4, JoinCode: "K3Y9QZ"}
	joined := team
	joined.TeamMembers = []string{"creator", "user"}

	mockStore.EXPECT().FindTeamsWithField(gomock.Any(), entities.TeamJoinCode, "K3Y9QZ").
		Return([]entities.Team{team}, nil).Times(1)
	mockStore.EXPECT().UpdateTeam(gomock.Any(), team.ID, gomock.Any(), gomock.Any()).Return(&joined, nil).Times(1)
	mockStore.EXPECT().GetTeamByID(gomock.Any(), gomock.Any()).Times(0)

	res, err := service.JoinByCode(context.Background(), "k3y9qz", "user")

	assert.NoError(t, err)
	assert.Equal(t, &joined, res)
}

func Test_JoinByCode__should_succeed_without_changes_when_user_is_already_member(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{members: []string{"user"}})

	joined, err := setup.service.JoinByCode(context.Background(), team.JoinCode, "user")

	assert.NoError(t, err)
	assert.Equal(t, team, *joined)
	assert.Equal(t, team, getTestTeam(t, setup.store, team.ID))
}

func Test_JoinByCode__should_succeed_when_user_is_member_of_a_frozen_team(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{
		members:   []string{"user"},
		startedAt: activeSince(7 * time.Hour),
		duration:  6,
	})

	_, err := setup.service.JoinByCode(context.Background(), team.JoinCode, "user")

	assert.NoError(t, err)
}

func Test_JoinByCode__should_return_error(t *testing.T) {
	tests := []struct {
		name    string
		prep    func(t *testing.T, store repositories.TeamStore) entities.Team
		code    func(team entities.Team) string
		wantErr error
	}{
		{
			name: "when join code is unknown",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{})
			},
			code:    func(entities.Team) string { return "UNKNWN" },
			wantErr: ErrNotFound,
		},
		{
			name: "when team is full",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{members: []string{"member"}})
			},
			wantErr: ErrTeamFull,
		},
		{
			name: "when session expired",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{startedAt: activeSince(6 * time.Hour), duration: 6})
			},
			wantErr: ErrSessionFrozen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTeamServiceTest(t)
			team := tt.prep(t, setup.store)
			code := team.JoinCode
			if tt.code != nil {
				code = tt.code(team)
			}

			joined, err := setup.service.JoinByCode(context.Background(), code, "user")

			assert.Equal(t, tt.wantErr, err)
			assert.Nil(t, joined)
			assert.Equal(t, team, getTestTeam(t, setup.store, team.ID))
		})
	}
}

func Test_LeaveTeam__should_remove_user_from_members(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{members: []string{"user", "other"}, maxTeamSize: 3})

	err := setup.service.LeaveTeam(context.Background(), team.ID.Hex(), "user")

	assert.NoError(t, err)
	assert.Equal(t, []string{"creator", "other"}, getTestTeam(t, setup.store, team.ID).TeamMembers)
}

func Test_LeaveTeam__should_return_error(t *testing.T) {
	tests := []membershipTestCase{
		{
			name: "when user is not a member",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{joinRequests: []string{"user"}})
			},
			wantErr: ErrNotMember,
		},
		{
			name: "when user is the creator",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "user", testTeamOptions{members: []string{"other"}})
			},
			wantErr: ErrCreatorCannotLeave,
		},
		{
			name: "when session expired",
			prep: func(t *testing.T, store repositories.TeamStore) entities.Team {
				return insertTestTeam(t, store, "creator", testTeamOptions{
					members:   []string{"user"},
					startedAt: activeSince(48 * time.Hour),
					duration:  24,
				})
			},
			wantErr: ErrSessionFrozen,
		},
	}

	runMembershipTests(t, tests, func(setup teamServiceTestSetup, teamID string) error {
		return setup.service.LeaveTeam(context.Background(), teamID, "user")
	})
}

func Test_TeamService__request_accept_and_capacity_scenario(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team, err := setup.service.CreateTeam(context.Background(), "A", CreateTeamParams{
		HackathonID: "hackathon",
		PostTitle:   "title",
		MaxTeamSize: 2,
	})
	assert.NoError(t, err)
	teamID := team.ID.Hex()

	assert.NoError(t, setup.service.RequestJoin(context.Background(), teamID, "B"))
	assert.Equal(t, []string{"B"}, getTestTeam(t, setup.store, team.ID).JoinRequests)

	assert.NoError(t, setup.service.AcceptRequest(context.Background(), teamID, "A", "B"))
	stored := getTestTeam(t, setup.store, team.ID)
	assert.Equal(t, []string{"A", "B"}, stored.TeamMembers)
	assert.Empty(t, stored.JoinRequests)

	assert.Equal(t, ErrTeamFull, setup.service.RequestJoin(context.Background(), teamID, "C"))
}

func Test_AcceptRequest__should_add_member_once_when_called_concurrently(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{joinRequests: []string{"user"}})

	const callers = 8
	errs := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- setup.service.AcceptRequest(context.Background(), team.ID.Hex(), "creator", "user")
		}()
	}
	wg.Wait()
	close(errs)

	successes := 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.Contains(t, []error{ErrAlreadyMember, ErrTeamFull}, err)
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, []string{"creator", "user"}, getTestTeam(t, setup.store, team.ID).TeamMembers)
}

func Test_JoinByCode__should_never_exceed_max_team_size_when_called_concurrently(t *testing.T) {
	setup := setupTeamServiceTest(t)
	team := insertTestTeam(t, setup.store, "creator", testTeamOptions{maxTeamSize: 3})

	const joiners = 10
	errs := make(chan error, joiners)
	var wg sync.WaitGroup
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, err := setup.service.JoinByCode(context.Background(), team.JoinCode, userID)
			errs <- err
		}(fmt.Sprintf("user%d", i))
	}
	wg.Wait()
	close(errs)

	successes := 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.Equal(t, ErrTeamFull, err)
	}
	assert.Equal(t, 2, successes)

	stored := getTestTeam(t, setup.store, team.ID)
	assert.Len(t, stored.TeamMembers, 3)
	assert.Contains(t, stored.TeamMembers, "creator")
}

func Test_updateTeam__should_return_ErrConcurrentUpdate_when_condition_keeps_failing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mock_repositories.NewMockTeamStore(ctrl)
	id := primitive.NewObjectID()

	mockStore.EXPECT().UpdateTeam(gomock.Any(), id, gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrConditionFailed).Times(maxUpdateAttempts)
	mockStore.EXPECT().GetTeamByID(gomock.Any(), id).
		Return(&entities.Team{ID: id}, nil).Times(maxUpdateAttempts)

	team, err := updateTeam(context.Background(), mockStore, id, repositories.TeamCondition{}, repositories.TeamUpdate{},
		func(entities.Team) error { return nil })

	assert.Equal(t, ErrConcurrentUpdate, err)
	assert.Nil(t, team)
}

func Test_updateTeam__should_retry_when_condition_holds_on_reread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mock_repositories.NewMockTeamStore(ctrl)
	id := primitive.NewObjectID()

	mockStore.EXPECT().UpdateTeam(gomock.Any(), id, gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrConditionFailed).Times(1)
	mockStore.EXPECT().GetTeamByID(gomock.Any(), id).Return(&entities.Team{ID: id}, nil).Times(1)
	mockStore.EXPECT().UpdateTeam(gomock.Any(), id, gomock.Any(), gomock.Any()).
		Return(&entities.Team{ID: id, ProjectName: "updated"}, nil).Times(1)

	team, err := updateTeam(context.Background(), mockStore, id, repositories.TeamCondition{}, repositories.TeamUpdate{},
		func(entities.Team) error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, &entities.Team{ID: id, ProjectName: "updated"}, team)
}

func Test_updateTeam__should_return_updated_team_without_reading_it(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mock_repositories.NewMockTeamStore(ctrl)
	id := primitive.NewObjectID()
	updated := &entities.Team{ID: id, TeamMembers: []string{"creator", "member"}}

	mockStore.EXPECT().UpdateTeam(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(updated, nil).Times(1)
	mockStore.EXPECT().GetTeamByID(gomock.Any(), gomock.Any()).Times(0)

	team, err := updateTeam(context.Background(), mockStore, id, repositories.TeamCondition{}, repositories.TeamUpdate{},
		func(entities.Team) error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, updated, team)
}

func Test_updateTeam__should_return_stored_team_when_update_was_already_applied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStore := mock_repositories.NewMockTeamStore(ctrl)
	id := primitive.NewObjectID()
	stored := &entities.Team{ID: id, TeamMembers: []string{"creator", "member"}}

	mockStore.EXPECT().UpdateTeam(gomock.Any(), id, gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrConditionFailed).Times(1)
	mockStore.EXPECT().GetTeamByID(gomock.Any(), id).Return(stored, nil).Times(1)

	team, err := updateTeam(context.Background(), mockStore, id, repositories.TeamCondition{}, repositories.TeamUpdate{},
		func(entities.Team) error { return errAlreadyApplied })

	assert.NoError(t, err)
	assert.Equal(t, stored, team)
}

func Test_updateTeam__should_return_error(t *testing.T) {
	testErr := errors.New("connection refused")
	id := primitive.NewObjectID()

	tests := []struct {
		name     string
		prep     func(mockStore *mock_repositories.MockTeamStore)
		classify classifier
		wantErr  error
	}{
		{
			name: "when update fails",
			prep: func(mockStore *mock_repositories.MockTeamStore) {
				mockStore.EXPECT().UpdateTeam(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, testErr).Times(1)
			},
			wantErr: testErr,
		},
		{
			name: "when team cannot be read after rejected update",
			prep: func(mockStore *mock_repositories.MockTeamStore) {
				mockStore.EXPECT().UpdateTeam(gomock.Any(), id, gomock.Any(), gomock.Any()).
					Return(nil, repositories.ErrConditionFailed).Times(1)
				mockStore.EXPECT().GetTeamByID(gomock.Any(), id).Return(nil, testErr).Times(1)
			},
			wantErr: testErr,
		},
		{
			name: "when team no longer exists",
			prep: func(mockStore *mock_repositories.MockTeamStore) {
				mockStore.EXPECT().UpdateTeam(gomock.Any(), id, gomock.Any(), gomock.Any()).
					Return(nil, repositories.ErrConditionFailed).Times(1)
				mockStore.EXPECT().GetTeamByID(gomock.Any(), id).Return(nil, repositories.ErrNotFound).Times(1)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "when classifier explains the rejection",
			prep: func(mockStore *mock_repositories.MockTeamStore) {
				mockStore.EXPECT().UpdateTeam(gomock.Any(), id, gomock.Any(), gomock.Any()).
					Return(nil, repositories.ErrConditionFailed).Times(1)
				mockStore.EXPECT().GetTeamByID(gomock.Any(), id).Return(&entities.Team{ID: id}, nil).Times(1)
			},
			classify: func(entities.Team) error { return ErrTeamFull },
			wantErr:  ErrTeamFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockStore := mock_repositories.NewMockTeamStore(ctrl)
			tt.prep(mockStore)

			classify := tt.classify
			if classify == nil {
				classify = func(entities.Team) error { return nil }
			}

			_, err := updateTeam(context.Background(), mockStore, id, repositories.TeamCondition{}, repositories.TeamUpdate{}, classify)

			assert.Equal(t, tt.wantErr, errors.Cause(err))
		})
	}
}

// Test_TeamService__should_preserve_team_invariants drives a team through random
// membership and session operations and checks the invariants after every step
func Test_TeamService__should_preserve_team_invariants(t *testing.T) {
	setup := setupTeamServiceTest(t)
	sessionService := NewSessionService(zap.NewNop(), setup.cfg, setup.store, setup.clock, setup.service)
	random := rand.New(rand.NewSource(42))
	users := []string{"A", "B", "C", "D", "E"}

	team, err := setup.service.CreateTeam(context.Background(), "A", CreateTeamParams{
		HackathonID: "hackathon",
		PostTitle:   "title",
		MaxTeamSize: 3,
	})
	assert.NoError(t, err)
	teamID := team.ID.Hex()

	frozen := false
	for step := 0; step < 300; step++ {
		user := users[random.Intn(len(users))]
		other := users[random.Intn(len(users))]

		switch random.Intn(9) {
		case 0, 1:
			_ = setup.service.RequestJoin(context.Background(), teamID, user)
		case 2:
			_ = setup.service.AcceptRequest(context.Background(), teamID, user, other)
		case 3:
			_ = setup.service.DeclineRequest(context.Background(), teamID, user, other)
		case 4:
			_, _ = setup.service.JoinByCode(context.Background(), team.JoinCode, user)
		case 5:
			_ = setup.service.LeaveTeam(context.Background(), teamID, user)
		case 6:
			if random.Intn(20) == 0 {
				_, _ = sessionService.StartSession(context.Background(), teamID, user, 6, "project")
			}
		case 7:
			if random.Intn(10) == 0 {
				_, _ = sessionService.SubmitProject(context.Background(), teamID, user,
					"https://github.com/unicsmcr/project", "a project which does many things")
			}
		case 8:
			setup.clock.Advance(time.Duration(random.Intn(60)) * time.Minute)
		}

		stored := getTestTeam(t, setup.store, team.ID)
		state := entities.ComputeState(stored, setup.clock.Now())

		assert.LessOrEqual(t, len(stored.TeamMembers), stored.MaxTeamSize)
		assert.True(t, stored.HasMember("A"), "creator must stay a member")
		assert.Equal(t, "A", stored.CreatorID)
		for _, userID := range stored.JoinRequests {
			assert.False(t, stored.HasMember(userID), "member must not have a pending join request")
		}
		if frozen {
			assert.True(t, state.IsFrozen(), "frozen team must stay frozen")
		}
		frozen = state.IsFrozen()
	}
}
