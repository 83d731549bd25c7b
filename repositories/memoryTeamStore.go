package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type teamSubscription struct {
	teamID primitive.ObjectID
	out    chan TeamSnapshot
}

type teamsSubscription struct {
	field entities.TeamField
	value string
	// IDs of the teams in the last delivered snapshot
	known map[primitive.ObjectID]bool
	out   chan TeamsSnapshot
}

type memoryTeamStore struct {
	mu        sync.Mutex
	teams     map[primitive.ObjectID]entities.Team
	nextSubID uint64
	teamSubs  map[uint64]*teamSubscription
	teamsSubs map[uint64]*teamsSubscription
}

// NewMemoryTeamStore creates a TeamStore which keeps teams in memory.
// Updates are applied through the same BSON documents the Mongo store uses.
func NewMemoryTeamStore() TeamStore {
	return &memoryTeamStore{
		teams:     map[primitive.ObjectID]entities.Team{},
		teamSubs:  map[uint64]*teamSubscription{},
		teamsSubs: map[uint64]*teamsSubscription{},
	}
}

func (s *memoryTeamStore) InsertTeam(ctx context.Context, team entities.Team) error {
	team, err := roundTrip(team, TeamUpdate{})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.teams[team.ID]; exists {
		return errors.Errorf("team with id %s already exists", team.ID.Hex())
	}
	for _, stored := range s.teams {
		if stored.JoinCode == team.JoinCode {
			return ErrDuplicateJoinCode
		}
	}

	s.teams[team.ID] = team
	s.notify(nil, &team)
	return nil
}

func (s *memoryTeamStore) GetTeamByID(ctx context.Context, id primitive.ObjectID) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, exists := s.teams[id]
	if !exists {
		return nil, ErrNotFound
	}

	team = cloneTeam(team)
	return &team, nil
}

func (s *memoryTeamStore) FindTeamsWithField(ctx context.Context, field entities.TeamField, value string) ([]entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.find(func(doc bson.M) bool {
		fieldValue, ok := doc[string(field)].(string)
		return ok && fieldValue == value
	})
}

func (s *memoryTeamStore) FindTeamsWithArrayContaining(ctx context.Context, field entities.TeamField, value string) ([]entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findWithArrayContaining(field, value)
}

func (s *memoryTeamStore) UpdateTeam(ctx context.Context, id primitive.ObjectID, cond TeamCondition, update TeamUpdate) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, exists := s.teams[id]
	if !exists || !cond.Matches(team) {
		return nil, ErrConditionFailed
	}

	updated, err := roundTrip(team, update)
	if err != nil {
		return nil, errors.Wrap(err, "could not apply update")
	}

	s.teams[id] = updated
	s.notify(&team, &updated)
	updated = cloneTeam(updated)
	return &updated, nil
}

func (s *memoryTeamStore) SubscribeToTeam(ctx context.Context, id primitive.ObjectID) <-chan TeamSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &teamSubscription{
		teamID: id,
		out:    make(chan TeamSnapshot, 1),
	}
	subID := s.nextSubID
	s.nextSubID++
	s.teamSubs[subID] = sub

	sendTeamSnapshot(sub.out, s.teamSnapshot(id))

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.teamSubs, subID)
		close(sub.out)
	}()

	return sub.out
}

func (s *memoryTeamStore) SubscribeToTeamsWithArrayContaining(ctx context.Context, field entities.TeamField, value string) <-chan TeamsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &teamsSubscription{
		field: field,
		value: value,
		out:   make(chan TeamsSnapshot, 1),
	}
	subID := s.nextSubID
	s.nextSubID++
	s.teamsSubs[subID] = sub

	s.refresh(sub)

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.teamsSubs, subID)
		close(sub.out)
	}()

	return sub.out
}

// notify delivers the change of a team to the subscribers. Must be called with s.mu held.
func (s *memoryTeamStore) notify(before, after *entities.Team) {
	for _, sub := range s.teamSubs {
		if sub.teamID == after.ID {
			sendTeamSnapshot(sub.out, s.teamSnapshot(after.ID))
		}
	}

	for _, sub := range s.teamsSubs {
		if sub.known[after.ID] || arrayContains(*after, sub.field, sub.value) ||
			(before != nil && arrayContains(*before, sub.field, sub.value)) {
			s.refresh(sub)
		}
	}
}

// refresh reruns the query of the subscription. Must be called with s.mu held.
func (s *memoryTeamStore) refresh(sub *teamsSubscription) {
	teams, err := s.findWithArrayContaining(sub.field, sub.value)
	if err != nil {
		sendTeamsSnapshot(sub.out, TeamsSnapshot{Err: err})
		return
	}

	sub.known = map[primitive.ObjectID]bool{}
	for _, team := range teams {
		sub.known[team.ID] = true
	}
	sendTeamsSnapshot(sub.out, TeamsSnapshot{Teams: teams})
}

func (s *memoryTeamStore) teamSnapshot(id primitive.ObjectID) TeamSnapshot {
	team, exists := s.teams[id]
	if !exists {
		return TeamSnapshot{}
	}
	team = cloneTeam(team)
	return TeamSnapshot{Team: &team}
}

func (s *memoryTeamStore) findWithArrayContaining(field entities.TeamField, value string) ([]entities.Team, error) {
	return s.find(func(doc bson.M) bool {
		return documentArrayContains(doc, field, value)
	})
}

// find returns the teams whose BSON document matches, newest first
func (s *memoryTeamStore) find(matches func(bson.M) bool) ([]entities.Team, error) {
	teams := []entities.Team{}
	for _, team := range s.teams {
		doc, err := teamDocument(team)
		if err != nil {
			return nil, err
		}
		if matches(doc) {
			teams = append(teams, cloneTeam(team))
		}
	}

	sort.Slice(teams, func(i, j int) bool {
		if !teams[i].CreatedAt.Equal(teams[j].CreatedAt) {
			return teams[i].CreatedAt.After(teams[j].CreatedAt)
		}
		return teams[i].ID.Hex() > teams[j].ID.Hex()
	})

	return teams, nil
}

func arrayContains(team entities.Team, field entities.TeamField, value string) bool {
	doc, err := teamDocument(team)
	if err != nil {
		return false
	}
	return documentArrayContains(doc, field, value)
}

func documentArrayContains(doc bson.M, field entities.TeamField, value string) bool {
	arr, ok := doc[string(field)].(primitive.A)
	if !ok {
		return false
	}
	for _, v := range arr {
		if v == value {
			return true
		}
	}
	return false
}

func teamDocument(team entities.Team) (bson.M, error) {
	raw, err := bson.Marshal(team)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode team")
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "could not decode team document")
	}
	return doc, nil
}

// roundTrip applies the update to the team's BSON document and decodes the result
func roundTrip(team entities.Team, update TeamUpdate) (entities.Team, error) {
	doc, err := teamDocument(team)
	if err != nil {
		return entities.Team{}, err
	}

	for field, value := range update.Set {
		doc[string(field)] = value
	}
	for field, value := range update.AddToSet {
		if !documentArrayContains(doc, field, value) {
			arr, _ := doc[string(field)].(primitive.A)
			doc[string(field)] = append(arr, value)
		}
	}
	for field, value := range update.Pull {
		arr, _ := doc[string(field)].(primitive.A)
		pulled := primitive.A{}
		for _, v := range arr {
			if v != value {
				pulled = append(pulled, v)
			}
		}
		doc[string(field)] = pulled
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return entities.Team{}, errors.Wrap(err, "could not encode team document")
	}

	var updated entities.Team
	if err := bson.Unmarshal(raw, &updated); err != nil {
		return entities.Team{}, errors.Wrap(err, "could not decode team")
	}
	normalizeTimes(&updated)

	return updated, nil
}

func cloneTeam(team entities.Team) entities.Team {
	clone := team
	clone.TeamMembers = append([]string{}, team.TeamMembers...)
	clone.JoinRequests = append([]string{}, team.JoinRequests...)
	for _, t := range []**time.Time{&clone.HackathonStartedAt, &clone.HackathonEndsAt, &clone.SubmittedAt} {
		if *t != nil {
			copied := **t
			*t = &copied
		}
	}
	return clone
}

// sendTeamSnapshot delivers the snapshot, replacing an undelivered older one
func sendTeamSnapshot(out chan TeamSnapshot, snapshot TeamSnapshot) {
	select {
	case out <- snapshot:
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	out <- snapshot
}

// sendTeamsSnapshot delivers the snapshot, replacing an undelivered older one
func sendTeamsSnapshot(out chan TeamsSnapshot, snapshot TeamsSnapshot) {
	select {
	case out <- snapshot:
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	out <- snapshot
}
