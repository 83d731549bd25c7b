package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const duplicateKeyErrorCode = 11000

// errResubscribe asks watch to reopen the change stream with a fresh pipeline
var errResubscribe = errors.New("change stream pipeline is outdated")

type mongoTeamStore struct {
	logger           *zap.Logger
	teamRepository   *TeamRepository
	resubscribeDelay time.Duration
}

// NewMongoTeamStore creates a TeamStore that uses MongoDB as the storage technology.
// Subscriptions are served by change streams, which require a replica set.
func NewMongoTeamStore(logger *zap.Logger, cfg *config.AppConfig, teamRepository *TeamRepository) TeamStore {
	return &mongoTeamStore{
		logger:           logger,
		teamRepository:   teamRepository,
		resubscribeDelay: time.Duration(cfg.Lock.ResubscribeDelaySeconds) * time.Second,
	}
}

func (s *mongoTeamStore) InsertTeam(ctx context.Context, team entities.Team) error {
	if team.TeamMembers == nil {
		team.TeamMembers = []string{}
	}
	if team.JoinRequests == nil {
		team.JoinRequests = []string{}
	}

	_, err := s.teamRepository.InsertOne(ctx, team)
	if isDuplicateKeyError(err) {
		return ErrDuplicateJoinCode
	} else if err != nil {
		return errors.Wrap(err, "could not insert team")
	}

	return nil
}

func (s *mongoTeamStore) GetTeamByID(ctx context.Context, id primitive.ObjectID) (*entities.Team, error) {
	res := s.teamRepository.FindOne(ctx, bson.M{
		string(entities.TeamID): id,
	})

	team, err := decodeTeamResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "could not query for team with ID")
	}

	return team, nil
}

func (s *mongoTeamStore) FindTeamsWithField(ctx context.Context, field entities.TeamField, value string) ([]entities.Team, error) {
	return s.findTeams(ctx, bson.M{
		string(field): value,
	})
}

func (s *mongoTeamStore) FindTeamsWithArrayContaining(ctx context.Context, field entities.TeamField, value string) ([]entities.Team, error) {
	// equality on an array field matches any of its elements
	return s.findTeams(ctx, bson.M{
		string(field): value,
	})
}

func (s *mongoTeamStore) UpdateTeam(ctx context.Context, id primitive.ObjectID, cond TeamCondition, update TeamUpdate) (*entities.Team, error) {
	res := s.teamRepository.FindOneAndUpdate(ctx, conditionFilter(id, cond), updateDocument(update),
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	team, err := decodeTeamResult(res)
	if errors.Cause(err) == mongo.ErrNoDocuments {
		return nil, ErrConditionFailed
	} else if err != nil {
		return nil, errors.Wrap(err, "could not update team")
	}

	return team, nil
}

func (s *mongoTeamStore) SubscribeToTeam(ctx context.Context, id primitive.ObjectID) <-chan TeamSnapshot {
	out := make(chan TeamSnapshot, 1)

	go func() {
		defer close(out)

		pipeline := mongo.Pipeline{
			{{Key: "$match", Value: bson.M{"documentKey._id": id}}},
		}

		s.watch(ctx, func() mongo.Pipeline { return pipeline }, func(err error) {
			sendTeamSnapshot(out, TeamSnapshot{Err: err})
		}, func(event *changeEvent) error {
			if event != nil && event.OperationType == "delete" {
				sendTeamSnapshot(out, TeamSnapshot{})
				return nil
			}
			if event != nil && event.FullDocument != nil {
				normalizeTimes(event.FullDocument)
				sendTeamSnapshot(out, TeamSnapshot{Team: event.FullDocument})
				return nil
			}

			team, err := s.GetTeamByID(ctx, id)
			if err == ErrNotFound {
				sendTeamSnapshot(out, TeamSnapshot{})
				return nil
			} else if err != nil {
				return err
			}
			sendTeamSnapshot(out, TeamSnapshot{Team: team})
			return nil
		})
	}()

	return out
}

func (s *mongoTeamStore) SubscribeToTeamsWithArrayContaining(ctx context.Context, field entities.TeamField, value string) <-chan TeamsSnapshot {
	out := make(chan TeamsSnapshot, 1)

	go func() {
		defer close(out)

		// IDs of the teams in the last delivered snapshot
		known := map[primitive.ObjectID]bool{}
		// IDs the open change stream is filtered on
		var watched map[primitive.ObjectID]bool

		pipeline := func() mongo.Pipeline {
			watched = known
			return arrayContainingPipeline(field, value, known)
		}

		s.watch(ctx, pipeline, func(err error) {
			sendTeamsSnapshot(out, TeamsSnapshot{Err: err})
		}, func(event *changeEvent) error {
			if event != nil && !known[event.DocumentKey.ID] &&
				(event.FullDocument == nil || !containsValue(*event.FullDocument, field, value)) {
				return nil
			}

			teams, err := s.FindTeamsWithArrayContaining(ctx, field, value)
			if err != nil {
				return err
			}

			known = map[primitive.ObjectID]bool{}
			for _, team := range teams {
				known[team.ID] = true
			}
			sendTeamsSnapshot(out, TeamsSnapshot{Teams: teams})

			// the stream has to follow the new result to see its teams being left or deleted
			if !sameIDs(watched, known) {
				return errResubscribe
			}
			return nil
		})
	}()

	return out
}

type changeEvent struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID primitive.ObjectID `bson:"_id"`
	} `bson:"documentKey"`
	FullDocument *entities.Team `bson:"fullDocument"`
}

// watch opens a change stream on the teams collection and calls handle once with a nil
// event after the stream is open, then for every event. When the stream or handle fails,
// onErr is called and the stream is reopened after the resubscribe delay. When handle
// returns errResubscribe the stream is reopened right away.
// The pipeline is built every time the stream is opened. Returns when ctx is cancelled.
func (s *mongoTeamStore) watch(ctx context.Context, pipeline func() mongo.Pipeline, onErr func(error), handle func(*changeEvent) error) {
	for {
		err := s.watchOnce(ctx, pipeline(), handle)
		if ctx.Err() != nil {
			return
		}
		if errors.Cause(err) == errResubscribe {
			continue
		}

		s.logger.Warn("team subscription failed, resubscribing", zap.Duration("delay", s.resubscribeDelay), zap.Error(err))
		onErr(err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.resubscribeDelay):
		}
	}
}

func (s *mongoTeamStore) watchOnce(ctx context.Context, pipeline mongo.Pipeline, handle func(*changeEvent) error) error {
	stream, err := s.teamRepository.Watch(ctx, pipeline, options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return errors.Wrap(err, "could not open change stream")
	}
	defer stream.Close(context.Background())

	// the initial snapshot is read after the stream is open so no change is missed
	if err := handle(nil); err != nil {
		return err
	}

	for stream.Next(ctx) {
		var event changeEvent
		if err := stream.Decode(&event); err != nil {
			return errors.Wrap(err, "could not decode change event")
		}
		if err := handle(&event); err != nil {
			return err
		}
	}

	if err := stream.Err(); err != nil {
		return errors.Wrap(err, "change stream failed")
	}
	return errors.New("change stream closed")
}

func (s *mongoTeamStore) findTeams(ctx context.Context, filter bson.M) ([]entities.Team, error) {
	cur, err := s.teamRepository.Find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: string(entities.TeamCreatedAt), Value: -1},
		{Key: string(entities.TeamID), Value: -1},
	}))
	if err != nil {
		return nil, errors.Wrap(err, "could not query for teams")
	}
	defer cur.Close(ctx)

	teams, err := decodeTeamsResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return teams, nil
}

// conditionFilter translates the condition into a filter evaluated by MongoDB
// against the stored document at commit time
func conditionFilter(id primitive.ObjectID, cond TeamCondition) bson.M {
	clauses := bson.A{
		bson.M{string(entities.TeamID): id},
	}

	if cond.CreatorID != "" {
		clauses = append(clauses, bson.M{string(entities.TeamCreatorID): cond.CreatorID})
	}
	if cond.NotCreatorID != "" {
		clauses = append(clauses, bson.M{string(entities.TeamCreatorID): bson.M{"$ne": cond.NotCreatorID}})
	}
	if cond.Member != "" {
		clauses = append(clauses, bson.M{string(entities.TeamMembers): cond.Member})
	}
	if cond.NotMember != "" {
		clauses = append(clauses, bson.M{string(entities.TeamMembers): bson.M{"$ne": cond.NotMember}})
	}
	if cond.JoinRequest != "" {
		clauses = append(clauses, bson.M{string(entities.TeamJoinRequests): cond.JoinRequest})
	}
	if cond.NoJoinRequest != "" {
		clauses = append(clauses, bson.M{string(entities.TeamJoinRequests): bson.M{"$ne": cond.NoJoinRequest}})
	}
	if cond.HasCapacity {
		clauses = append(clauses, bson.M{"$expr": bson.M{
			"$lt": bson.A{
				bson.M{"$size": "$" + string(entities.TeamMembers)},
				"$" + string(entities.TeamMaxTeamSize),
			},
		}})
	}
	if cond.NotStarted {
		clauses = append(clauses, bson.M{string(entities.TeamHackathonStartedAt): nil})
	}
	if cond.NotSubmitted || cond.ActiveAt != nil || cond.NotFrozenAt != nil {
		clauses = append(clauses, bson.M{string(entities.TeamIsSubmitted): bson.M{"$ne": true}})
	}
	if cond.ActiveAt != nil {
		clauses = append(clauses,
			bson.M{string(entities.TeamHackathonStartedAt): bson.M{"$ne": nil}},
			bson.M{string(entities.TeamHackathonEndsAt): bson.M{"$gt": *cond.ActiveAt}},
		)
	}
	if cond.NotFrozenAt != nil {
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{string(entities.TeamHackathonStartedAt): nil},
			bson.M{string(entities.TeamHackathonEndsAt): bson.M{"$gt": *cond.NotFrozenAt}},
		}})
	}

	return bson.M{"$and": clauses}
}

func updateDocument(update TeamUpdate) bson.M {
	doc := bson.M{}

	if len(update.Set) > 0 {
		set := bson.M{}
		for field, value := range update.Set {
			set[string(field)] = value
		}
		doc["$set"] = set
	}
	if len(update.AddToSet) > 0 {
		addToSet := bson.M{}
		for field, value := range update.AddToSet {
			addToSet[string(field)] = value
		}
		doc["$addToSet"] = addToSet
	}
	if len(update.Pull) > 0 {
		pull := bson.M{}
		for field, value := range update.Pull {
			pull[string(field)] = value
		}
		doc["$pull"] = pull
	}

	return doc
}

// arrayContainingPipeline only passes the events of teams whose array field contains
// value and of the given teams, which may have just lost value or been deleted
func arrayContainingPipeline(field entities.TeamField, value string, ids map[primitive.ObjectID]bool) mongo.Pipeline {
	known := make([]primitive.ObjectID, 0, len(ids))
	for id := range ids {
		known = append(known, id)
	}
	sort.Slice(known, func(i, j int) bool {
		return known[i].Hex() < known[j].Hex()
	})

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"fullDocument." + string(field): value},
			bson.M{"documentKey._id": bson.M{"$in": known}},
		}}}},
	}
}

func sameIDs(a, b map[primitive.ObjectID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}

func containsValue(team entities.Team, field entities.TeamField, value string) bool {
	switch field {
	case entities.TeamMembers:
		return team.HasMember(value)
	case entities.TeamJoinRequests:
		return team.HasJoinRequest(value)
	default:
		return arrayContains(team, field, value)
	}
}

func isDuplicateKeyError(err error) bool {
	var writeErrors mongo.WriteErrors
	switch e := err.(type) {
	case mongo.WriteException:
		writeErrors = e.WriteErrors
	case *mongo.WriteException:
		writeErrors = e.WriteErrors
	default:
		return false
	}

	for _, writeErr := range writeErrors {
		if writeErr.Code == duplicateKeyErrorCode {
			return true
		}
	}
	return false
}

func decodeTeamResult(res *mongo.SingleResult) (*entities.Team, error) {
	err := res.Err()
	if err != nil {
		return nil, errors.Wrap(err, "query returned error")
	}

	var team entities.Team
	err = res.Decode(&team)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode team")
	}
	normalizeTimes(&team)

	return &team, nil
}

func decodeTeamsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Team, error) {
	teams := []entities.Team{}
	for cur.Next(ctx) {
		var team entities.Team
		err := cur.Decode(&team)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode team")
		}
		normalizeTimes(&team)
		teams = append(teams, team)
	}

	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "cursor failed")
	}

	return teams, nil
}
