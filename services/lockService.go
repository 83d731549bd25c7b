package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/unicsmcr/hs_teams/config"
	"github.com/unicsmcr/hs_teams/entities"
	"github.com/unicsmcr/hs_teams/repositories"
	"github.com/unicsmcr/hs_teams/utils"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	defaultTickInterval = 30 * time.Second
	defaultIdleTimeout  = time.Hour
)

// LockService keeps one LockView per signed in user. A view which is neither
// opened nor held for the configured idle timeout is closed on its next tick.
type LockService interface {
	// OpenLockView returns the user's open lock view, opening one if there is none.
	// It marks the view as used.
	OpenLockView(userID string) (LockView, error)
	// CloseLockView tears down the user's lock view, if any
	CloseLockView(userID string) error
	// Close tears down every open lock view. No view can be opened afterwards.
	Close() error
}

// LockView tracks the teams of one user and derives their lock status.
// The status is recomputed on every change of the user's teams and on every tick.
type LockView interface {
	ID() string
	UserID() string
	// Status returns the current lock status without blocking
	Status() entities.LockStatus
	// Updates returns the current lock status and a channel which is closed
	// when the status changes
	Updates() (entities.LockStatus, <-chan struct{})
	// Hold keeps the view from being closed for idleness until release is called
	Hold() (release func())
	// Done is closed when the view has been torn down
	Done() <-chan struct{}
	// Close tears down the view. No status is published after Close returns.
	Close() error
}

// ComputeLockStatus derives the lock status from the user's teams. If more than one team is
// active, the one whose session started first is picked, then the one with the smallest ID.
func ComputeLockStatus(teams []entities.Team, now time.Time) entities.LockStatus {
	var active []entities.Team
	for _, team := range teams {
		if entities.ComputeState(team, now) == entities.Active {
			active = append(active, team)
		}
	}
	if len(active) == 0 {
		return entities.LockStatus{}
	}

	sort.Slice(active, func(i, j int) bool {
		if !active[i].HackathonStartedAt.Equal(*active[j].HackathonStartedAt) {
			return active[i].HackathonStartedAt.Before(*active[j].HackathonStartedAt)
		}
		return active[i].ID.Hex() < active[j].ID.Hex()
	})

	return entities.LockStatus{
		IsLocked:     true,
		LockedTeamID: active[0].ID.Hex(),
	}
}

type lockService struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	store        repositories.TeamStore
	timeProvider utils.TimeProvider

	mu     sync.Mutex
	views  map[string]*lockView
	closed bool
}

// NewLockService creates a new LockService
func NewLockService(logger *zap.Logger, cfg *config.AppConfig, store repositories.TeamStore, timeProvider utils.TimeProvider) LockService {
	return &lockService{
		logger:       logger,
		cfg:          cfg,
		store:        store,
		timeProvider: timeProvider,
		views:        map[string]*lockView{},
	}
}

func (s *lockService) OpenLockView(userID string) (LockView, error) {
	if len(userID) == 0 {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrLockViewClosed
	}

	if view, ok := s.views[userID]; ok {
		select {
		case <-view.Done():
		default:
			view.touch()
			return view, nil
		}
	}

	view := s.newLockView(userID)
	s.views[userID] = view
	s.logger.Info("lock view opened", zap.String("user", userID), zap.String("view", view.id))

	return view, nil
}

func (s *lockService) CloseLockView(userID string) error {
	s.mu.Lock()
	view, ok := s.views[userID]
	delete(s.views, userID)
	s.mu.Unlock()

	if !ok {
		return nil
	}

	s.logger.Info("lock view closed", zap.String("user", userID), zap.String("view", view.id))
	return view.Close()
}

func (s *lockService) Close() error {
	s.mu.Lock()
	views := s.views
	s.views = map[string]*lockView{}
	s.closed = true
	s.mu.Unlock()

	var err error
	for _, view := range views {
		err = multierr.Append(err, view.Close())
	}
	s.logger.Info("lock views closed", zap.Int("count", len(views)))

	return err
}

// evictIdle removes the view from the open views if it is still idle at now.
// Returns false when the view is in use or already closed.
func (s *lockService) evictIdle(view *lockView, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !view.isIdle(now) || !view.closed.CAS(false, true) {
		return false
	}
	if s.views[view.userID] == view {
		delete(s.views, view.userID)
	}

	s.logger.Info("idle lock view closed", zap.String("user", view.userID), zap.String("view", view.id))
	return true
}

type lockState struct {
	status entities.LockStatus
	// changed is closed when the state is replaced
	changed chan struct{}
}

type lockView struct {
	id           string
	userID       string
	logger       *zap.Logger
	timeProvider utils.TimeProvider

	state  atomic.Value
	closed *atomic.Bool
	cancel context.CancelFunc
	done   chan struct{}

	idleTimeout time.Duration
	// lastUsed is the time the view was last opened or released, in unix nanoseconds
	lastUsed *atomic.Int64
	holds    *atomic.Int32
	evict    func(view *lockView, now time.Time) bool
}

func (s *lockService) newLockView(userID string) *lockView {
	ctx, cancel := context.WithCancel(context.Background())

	view := &lockView{
		id:           uuid.New().String(),
		userID:       userID,
		logger:       s.logger,
		timeProvider: s.timeProvider,
		closed:       atomic.NewBool(false),
		cancel:       cancel,
		done:         make(chan struct{}),
		idleTimeout:  idleTimeout(s.cfg),
		lastUsed:     atomic.NewInt64(s.timeProvider.Now().UnixNano()),
		holds:        atomic.NewInt32(0),
		evict:        s.evictIdle,
	}
	view.state.Store(&lockState{
		status:  entities.LockStatus{LockLoading: true},
		changed: make(chan struct{}),
	})

	snapshots := s.store.SubscribeToTeamsWithArrayContaining(ctx, entities.TeamMembers, userID)
	ticks, stopTicker := s.timeProvider.NewTicker(tickInterval(s.cfg))
	go view.run(ctx, snapshots, ticks, stopTicker)

	return view
}

func (v *lockView) ID() string {
	return v.id
}

func (v *lockView) UserID() string {
	return v.userID
}

func (v *lockView) Status() entities.LockStatus {
	return v.state.Load().(*lockState).status
}

func (v *lockView) Updates() (entities.LockStatus, <-chan struct{}) {
	state := v.state.Load().(*lockState)
	return state.status, state.changed
}

func (v *lockView) Hold() func() {
	v.holds.Inc()
	var once sync.Once
	return func() {
		once.Do(func() {
			v.touch()
			v.holds.Dec()
		})
	}
}

func (v *lockView) touch() {
	v.lastUsed.Store(v.timeProvider.Now().UnixNano())
}

func (v *lockView) isIdle(now time.Time) bool {
	return v.holds.Load() == 0 && now.Sub(time.Unix(0, v.lastUsed.Load())) >= v.idleTimeout
}

func (v *lockView) Done() <-chan struct{} {
	return v.done
}

func (v *lockView) Close() error {
	if !v.closed.CAS(false, true) {
		return ErrLockViewClosed
	}

	v.cancel()
	<-v.done

	return nil
}

func (v *lockView) run(ctx context.Context, snapshots <-chan repositories.TeamsSnapshot, ticks <-chan time.Time, stopTicker func()) {
	defer close(v.done)
	defer v.cancel()
	defer stopTicker()

	var teams []entities.Team
	loaded := false
	// healthy is false until the first snapshot and while the subscription is failing
	healthy := false

	for {
		ticked := false
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-snapshots:
			if !ok {
				return
			}
			if snapshot.Err != nil {
				v.logger.Warn("lock view subscription failed", zap.String("view", v.id), zap.Error(snapshot.Err))
				healthy = false
			} else {
				teams = snapshot.Teams
				loaded = true
				healthy = true
			}
		case <-ticks:
			ticked = true
		}

		now := v.timeProvider.Now()
		// a failing subscription keeps the last known decision
		status := entities.LockStatus{}
		if loaded {
			status = ComputeLockStatus(teams, now)
		}
		status.LockLoading = !healthy
		v.publish(status)

		if ticked && v.evict(v, now) {
			return
		}
	}
}

// publish replaces the state and wakes up everyone waiting for a change.
// Only called from run.
func (v *lockView) publish(status entities.LockStatus) {
	current := v.state.Load().(*lockState)
	if current.status == status {
		return
	}

	v.state.Store(&lockState{
		status:  status,
		changed: make(chan struct{}),
	})
	close(current.changed)

	v.logger.Debug("lock status changed",
		zap.String("view", v.id),
		zap.Bool("locked", status.IsLocked),
		zap.String("team", status.LockedTeamID),
		zap.Bool("loading", status.LockLoading))
}

func idleTimeout(cfg *config.AppConfig) time.Duration {
	if cfg.Lock.IdleTimeoutMinutes <= 0 {
		return defaultIdleTimeout
	}
	return time.Duration(cfg.Lock.IdleTimeoutMinutes) * time.Minute
}

func tickInterval(cfg *config.AppConfig) time.Duration {
	if cfg.Lock.TickIntervalSeconds <= 0 {
		return defaultTickInterval
	}
	return time.Duration(cfg.Lock.TickIntervalSeconds) * time.Second
}
