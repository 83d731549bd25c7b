package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_teams/entities"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testTime = time.Date(2020, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestTeam(creatorID, joinCode string, createdAt time.Time) entities.Team {
	return entities.Team{
		ID:           primitive.NewObjectID(),
		CreatorID:    creatorID,
		HackathonID:  "hackathon",
		PostTitle:    "looking for a frontend dev",
		TeamMembers:  []string{creatorID},
		MaxTeamSize:  2,
		JoinCode:     joinCode,
		JoinRequests: []string{},
		CreatedAt:    createdAt,
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// testTeamStore runs the behaviour shared by every TeamStore implementation.
// newStore must return an empty store.
func testTeamStore(t *testing.T, newStore func(t *testing.T) TeamStore) {
	t.Run("GetTeamByID returns inserted team", func(t *testing.T) {
		store := newStore(t)
		team := newTestTeam("creator", "AAAAAA", testTime)

		assert.NoError(t, store.InsertTeam(context.Background(), team))

		stored, err := store.GetTeamByID(context.Background(), team.ID)
		assert.NoError(t, err)
		assert.Equal(t, team, *stored)
	})

	t.Run("GetTeamByID returns ErrNotFound for unknown team", func(t *testing.T) {
		store := newStore(t)

		_, err := store.GetTeamByID(context.Background(), primitive.NewObjectID())
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("InsertTeam rejects duplicate join code", func(t *testing.T) {
		store := newStore(t)

		assert.NoError(t, store.InsertTeam(context.Background(), newTestTeam("creator1", "AAAAAA", testTime)))
		err := store.InsertTeam(context.Background(), newTestTeam("creator2", "AAAAAA", testTime))
		assert.Equal(t, ErrDuplicateJoinCode, err)
	})

	t.Run("FindTeamsWithField returns matching teams newest first", func(t *testing.T) {
		store := newStore(t)
		older := newTestTeam("creator1", "AAAAAA", testTime)
		newer := newTestTeam("creator2", "BBBBBB", testTime.Add(time.Hour))
		other := newTestTeam("creator3", "CCCCCC", testTime)
		other.HackathonID = "other hackathon"
		for _, team := range []entities.Team{older, newer, other} {
			assert.NoError(t, store.InsertTeam(context.Background(), team))
		}

		teams, err := store.FindTeamsWithField(context.Background(), entities.TeamHackathonID, "hackathon")
		assert.NoError(t, err)
		assert.Equal(t, []entities.Team{newer, older}, teams)

		teams, err = store.FindTeamsWithField(context.Background(), entities.TeamJoinCode, "ZZZZZZ")
		assert.NoError(t, err)
		assert.Empty(t, teams)
	})

	t.Run("FindTeamsWithArrayContaining returns teams with the member", func(t *testing.T) {
		store := newStore(t)
		team1 := newTestTeam("creator1", "AAAAAA", testTime)
		team1.TeamMembers = []string{"creator1", "member"}
		team2 := newTestTeam("creator2", "BBBBBB", testTime)
		for _, team := range []entities.Team{team1, team2} {
			assert.NoError(t, store.InsertTeam(context.Background(), team))
		}

		teams, err := store.FindTeamsWithArrayContaining(context.Background(), entities.TeamMembers, "member")
		assert.NoError(t, err)
		assert.Equal(t, []entities.Team{team1}, teams)
	})

	t.Run("UpdateTeam applies update when condition holds", func(t *testing.T) {
		store := newStore(t)
		team := newTestTeam("creator", "AAAAAA", testTime)
		team.JoinRequests = []string{"requester"}
		assert.NoError(t, store.InsertTeam(context.Background(), team))

		_, err := store.UpdateTeam(context.Background(), team.ID, TeamCondition{
			CreatorID:   "creator",
			JoinRequest: "requester",
			NotMember:   "requester",
			HasCapacity: true,
		}, TeamUpdate{
			AddToSet: map[entities.TeamField]string{entities.TeamMembers: "requester"},
			Pull:     map[entities.TeamField]string{entities.TeamJoinRequests: "requester"},
		})
		assert.NoError(t, err)

		stored, err := store.GetTeamByID(context.Background(), team.ID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"creator", "requester"}, stored.TeamMembers)
		assert.Equal(t, []string{}, stored.JoinRequests)
	})

	t.Run("UpdateTeam returns the team after the update", func(t *testing.T) {
		store := newStore(t)
		team := newTestTeam("creator", "AAAAAA", testTime)
		assert.NoError(t, store.InsertTeam(context.Background(), team))

		updated, err := store.UpdateTeam(context.Background(), team.ID, TeamCondition{
			CreatorID:  "creator",
			NotStarted: true,
		}, TeamUpdate{
			Set: map[entities.TeamField]interface{}{
				entities.TeamHackathonStartedAt: testTime,
				entities.TeamHackathonEndsAt:    testTime.Add(6 * time.Hour),
				entities.TeamProjectName:        "project",
			},
			AddToSet: map[entities.TeamField]string{entities.TeamMembers: "member"},
		})
		assert.NoError(t, err)

		stored, err := store.GetTeamByID(context.Background(), team.ID)
		assert.NoError(t, err)
		assert.Equal(t, stored, updated)
		assert.Equal(t, timePtr(testTime), updated.HackathonStartedAt)
		assert.Equal(t, "project", updated.ProjectName)
		assert.Equal(t, []string{"creator", "member"}, updated.TeamMembers)
	})

	t.Run("UpdateTeam returns nil team when the condition fails", func(t *testing.T) {
		store := newStore(t)
		team := newTestTeam("creator", "AAAAAA", testTime)
		assert.NoError(t, store.InsertTeam(context.Background(), team))

		updated, err := store.UpdateTeam(context.Background(), team.ID, TeamCondition{CreatorID: "member"}, TeamUpdate{
			Set: map[entities.TeamField]interface{}{entities.TeamProjectName: "changed"},
		})
		assert.Equal(t, ErrConditionFailed, err)
		assert.Nil(t, updated)
	})

	t.Run("UpdateTeam AddToSet does not duplicate values", func(t *testing.T) {
		store := newStore(t)
		team := newTestTeam("creator", "AAAAAA", testTime)
		assert.NoError(t, store.InsertTeam(context.Background(), team))

		update := TeamUpdate{AddToSet: map[entities.TeamField]string{entities.TeamJoinRequests: "requester"}}
		for i := 0; i < 2; i++ {
			_, err := store.UpdateTeam(context.Background(), team.ID, TeamCondition{}, update)
			assert.NoError(t, err)
		}

		stored, err := store.GetTeamByID(context.Background(), team.ID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"requester"}, stored.JoinRequests)
	})

	t.Run("UpdateTeam sets session fields", func(t *testing.T) {
		store := newStore(t)
		team := newTestTeam("creator", "AAAAAA", testTime)
		assert.NoError(t, store.InsertTeam(context.Background(), team))

		_, err := store.UpdateTeam(context.Background(), team.ID, TeamCondition{
			CreatorID:    "creator",
			NotStarted:   true,
			NotSubmitted: true,
		}, TeamUpdate{
			Set: map[entities.TeamField]interface{}{
				entities.TeamHackathonStartedAt: testTime,
				entities.TeamHackathonEndsAt:    testTime.Add(6 * time.Hour),
				entities.TeamHackathonDuration:  6,
				entities.TeamProjectName:        "project",
			},
		})
		assert.NoError(t, err)

		stored, err := store.GetTeamByID(context.Background(), team.ID)
		assert.NoError(t, err)
		assert.Equal(t, timePtr(testTime), stored.HackathonStartedAt)
		assert.Equal(t, timePtr(testTime.Add(6*time.Hour)), stored.HackathonEndsAt)
		assert.Equal(t, 6, stored.HackathonDuration)
		assert.Equal(t, "project", stored.ProjectName)
	})

	t.Run("UpdateTeam returns ErrConditionFailed for unknown team", func(t *testing.T) {
		store := newStore(t)

		_, err := store.UpdateTeam(context.Background(), primitive.NewObjectID(), TeamCondition{}, TeamUpdate{
			AddToSet: map[entities.TeamField]string{entities.TeamMembers: "user"},
		})
		assert.Equal(t, ErrConditionFailed, err)
	})

	full := newTestTeam("creator", "FULL00", testTime)
	full.TeamMembers = []string{"creator", "member"}
	full.JoinRequests = []string{"requester"}
	active := newTestTeam("creator", "ACTIVE", testTime)
	active.HackathonStartedAt = timePtr(testTime)
	active.HackathonEndsAt = timePtr(testTime.Add(time.Hour))
	submitted := newTestTeam("creator", "SUBMIT", testTime)
	submitted.HackathonStartedAt = timePtr(testTime)
	submitted.HackathonEndsAt = timePtr(testTime.Add(time.Minute))
	submitted.IsSubmitted = true

	failingConditions := []struct {
		name string
		team entities.Team
		cond TeamCondition
	}{
		{name: "CreatorID", team: full, cond: TeamCondition{CreatorID: "member"}},
		{name: "NotCreatorID", team: full, cond: TeamCondition{NotCreatorID: "creator"}},
		{name: "Member", team: full, cond: TeamCondition{Member: "requester"}},
		{name: "NotMember", team: full, cond: TeamCondition{NotMember: "member"}},
		{name: "JoinRequest", team: full, cond: TeamCondition{JoinRequest: "member"}},
		{name: "NoJoinRequest", team: full, cond: TeamCondition{NoJoinRequest: "requester"}},
		{name: "HasCapacity", team: full, cond: TeamCondition{HasCapacity: true}},
		{name: "NotStarted", team: active, cond: TeamCondition{NotStarted: true}},
		{name: "NotSubmitted", team: submitted, cond: TeamCondition{NotSubmitted: true}},
		{name: "ActiveAt before start", team: full, cond: TeamCondition{ActiveAt: timePtr(testTime)}},
		{name: "ActiveAt after end", team: active, cond: TeamCondition{ActiveAt: timePtr(testTime.Add(time.Hour))}},
		{name: "ActiveAt submitted", team: submitted, cond: TeamCondition{ActiveAt: timePtr(testTime)}},
		{name: "NotFrozenAt expired", team: active, cond: TeamCondition{NotFrozenAt: timePtr(testTime.Add(2 * time.Hour))}},
		{name: "NotFrozenAt submitted", team: submitted, cond: TeamCondition{NotFrozenAt: timePtr(testTime)}},
	}
	for _, tt := range failingConditions {
		t.Run("UpdateTeam returns ErrConditionFailed when "+tt.name+" does not hold", func(t *testing.T) {
			store := newStore(t)
			assert.NoError(t, store.InsertTeam(context.Background(), tt.team))

			_, err := store.UpdateTeam(context.Background(), tt.team.ID, tt.cond, TeamUpdate{
				Set: map[entities.TeamField]interface{}{entities.TeamProjectName: "changed"},
			})
			assert.Equal(t, ErrConditionFailed, err)

			stored, err := store.GetTeamByID(context.Background(), tt.team.ID)
			assert.NoError(t, err)
			assert.Equal(t, tt.team, *stored)
		})
	}

	passingConditions := []struct {
		name string
		team entities.Team
		cond TeamCondition
	}{
		{name: "ActiveAt during session", team: active, cond: TeamCondition{ActiveAt: timePtr(testTime.Add(time.Minute))}},
		{name: "NotFrozenAt forming", team: full, cond: TeamCondition{NotFrozenAt: timePtr(testTime.Add(time.Hour))}},
		{name: "NotFrozenAt active", team: active, cond: TeamCondition{NotFrozenAt: timePtr(testTime)}},
	}
	for _, tt := range passingConditions {
		t.Run("UpdateTeam applies update when "+tt.name+" holds", func(t *testing.T) {
			store := newStore(t)
			assert.NoError(t, store.InsertTeam(context.Background(), tt.team))

			_, err := store.UpdateTeam(context.Background(), tt.team.ID, tt.cond, TeamUpdate{
				Set: map[entities.TeamField]interface{}{entities.TeamProjectName: "changed"},
			})
			assert.NoError(t, err)
		})
	}
}

// testTeamStoreSubscriptions runs the subscription behaviour shared by every TeamStore implementation
func testTeamStoreSubscriptions(t *testing.T, newStore func(t *testing.T) TeamStore) {
	t.Run("SubscribeToTeam delivers current and updated team", func(t *testing.T) {
		store := newStore(t)
		team := newTestTeam("creator", "AAAAAA", testTime)
		assert.NoError(t, store.InsertTeam(context.Background(), team))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		snapshots := store.SubscribeToTeam(ctx, team.ID)

		snapshot := receiveTeamSnapshot(t, snapshots)
		assert.NoError(t, snapshot.Err)
		assert.Equal(t, team, *snapshot.Team)

		_, err := store.UpdateTeam(context.Background(), team.ID, TeamCondition{}, TeamUpdate{
			AddToSet: map[entities.TeamField]string{entities.TeamMembers: "member"},
		})
		assert.NoError(t, err)

		assert.Eventually(t, func() bool {
			select {
			case snapshot := <-snapshots:
				return snapshot.Team != nil && snapshot.Team.HasMember("member")
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("SubscribeToTeam delivers nil team for unknown team", func(t *testing.T) {
		store := newStore(t)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		snapshot := receiveTeamSnapshot(t, store.SubscribeToTeam(ctx, primitive.NewObjectID()))
		assert.NoError(t, snapshot.Err)
		assert.Nil(t, snapshot.Team)
	})

	t.Run("SubscribeToTeamsWithArrayContaining follows membership changes", func(t *testing.T) {
		store := newStore(t)
		team := newTestTeam("creator", "AAAAAA", testTime)
		assert.NoError(t, store.InsertTeam(context.Background(), team))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		snapshots := store.SubscribeToTeamsWithArrayContaining(ctx, entities.TeamMembers, "member")

		snapshot := receiveTeamsSnapshot(t, snapshots)
		assert.NoError(t, snapshot.Err)
		assert.Empty(t, snapshot.Teams)

		membership := map[entities.TeamField]string{entities.TeamMembers: "member"}
		_, err := store.UpdateTeam(context.Background(), team.ID, TeamCondition{}, TeamUpdate{AddToSet: membership})
		assert.NoError(t, err)
		assert.Eventually(t, func() bool {
			select {
			case snapshot := <-snapshots:
				return len(snapshot.Teams) == 1 && snapshot.Teams[0].ID == team.ID
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)

		_, err = store.UpdateTeam(context.Background(), team.ID, TeamCondition{}, TeamUpdate{Pull: membership})
		assert.NoError(t, err)
		assert.Eventually(t, func() bool {
			select {
			case snapshot := <-snapshots:
				return snapshot.Err == nil && len(snapshot.Teams) == 0
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("SubscribeToTeamsWithArrayContaining sees value leave a team it was in when subscribed", func(t *testing.T) {
		store := newStore(t)
		team := newTestTeam("creator", "AAAAAA", testTime)
		team.TeamMembers = []string{"creator", "member"}
		other := newTestTeam("other", "BBBBBB", testTime)
		for _, tm := range []entities.Team{team, other} {
			assert.NoError(t, store.InsertTeam(context.Background(), tm))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		snapshots := store.SubscribeToTeamsWithArrayContaining(ctx, entities.TeamMembers, "member")

		snapshot := receiveTeamsSnapshot(t, snapshots)
		assert.NoError(t, snapshot.Err)
		assert.Equal(t, []entities.Team{team}, snapshot.Teams)

		_, err := store.UpdateTeam(context.Background(), other.ID, TeamCondition{}, TeamUpdate{
			Set: map[entities.TeamField]interface{}{entities.TeamProjectName: "unrelated"},
		})
		assert.NoError(t, err)
		_, err = store.UpdateTeam(context.Background(), team.ID, TeamCondition{}, TeamUpdate{
			Pull: map[entities.TeamField]string{entities.TeamMembers: "member"},
		})
		assert.NoError(t, err)

		assert.Eventually(t, func() bool {
			select {
			case snapshot := <-snapshots:
				return snapshot.Err == nil && len(snapshot.Teams) == 0
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("subscriptions are closed when ctx is cancelled", func(t *testing.T) {
		store := newStore(t)

		ctx, cancel := context.WithCancel(context.Background())
		teamSnapshots := store.SubscribeToTeam(ctx, primitive.NewObjectID())
		teamsSnapshots := store.SubscribeToTeamsWithArrayContaining(ctx, entities.TeamMembers, "member")
		cancel()

		assert.Eventually(t, func() bool {
			select {
			case _, ok := <-teamSnapshots:
				return !ok
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)
		assert.Eventually(t, func() bool {
			select {
			case _, ok := <-teamsSnapshots:
				return !ok
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond)
	})
}

func receiveTeamSnapshot(t *testing.T, snapshots <-chan TeamSnapshot) TeamSnapshot {
	select {
	case snapshot := <-snapshots:
		return snapshot
	case <-time.After(5 * time.Second):
		t.Fatal("no team snapshot received")
		return TeamSnapshot{}
	}
}

func receiveTeamsSnapshot(t *testing.T, snapshots <-chan TeamsSnapshot) TeamsSnapshot {
	select {
	case snapshot := <-snapshots:
		return snapshot
	case <-time.After(5 * time.Second):
		t.Fatal("no teams snapshot received")
		return TeamsSnapshot{}
	}
}
