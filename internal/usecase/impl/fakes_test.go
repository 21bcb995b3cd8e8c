package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"huntlog/config"
	"huntlog/internal/domain/entity"
	"huntlog/internal/domain/repository"
	mockService "huntlog/internal/mocks/service"
	"huntlog/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Twitch:     &config.IdentityProviderConfig{Timeout: time.Second},
		Session:    &config.SessionConfig{CookieName: "huntlog_session", MaxAge: 30 * 24 * time.Hour},
		ChangeFeed: &config.ChangeFeedConfig{Channel: "hunt_changes", Timeout: 3 * time.Second},
		Relay:      &config.RelayConfig{Timeout: time.Second},
		Hunt:       &config.HuntConfig{MaxExcluded: 9},
	}
	cfg.SecretKey.Session = "test-session-secret"

	return cfg
}

// testClock is a settable clock shared by the services under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// memStore is an in-memory stand-in for Postgres. It enforces the same
// uniqueness rules as the partial unique indexes and rolls back a failed
// transaction by restoring a snapshot.
type memStore struct {
	mu         sync.Mutex
	txMu       sync.Mutex
	hunts      map[uuid.UUID]*entity.Hunt
	encounters map[uuid.UUID]*entity.Encounter
	inserted   []uuid.UUID
	grants     map[[2]entity.SubjectID]*entity.DelegateGrant

	// failCreate, when set, fails the next encounter insert.
	failCreate error
}

func newMemStore() *memStore {
	return &memStore{
		hunts:      make(map[uuid.UUID]*entity.Hunt),
		encounters: make(map[uuid.UUID]*entity.Encounter),
		grants:     make(map[[2]entity.SubjectID]*entity.DelegateGrant),
	}
}

func (s *memStore) NewHuntRepository() repository.HuntRepository {
	return &memHuntRepo{s}
}

func (s *memStore) NewEncounterRepository() repository.EncounterRepository {
	return &memEncounterRepo{s}
}

func (s *memStore) NewDelegateRepository() repository.DelegateRepository {
	return &memDelegateRepo{s}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	hunts := maps.Clone(s.hunts)
	encounters := make(map[uuid.UUID]*entity.Encounter, len(s.encounters))
	for id, e := range s.encounters {
		encounters[id] = cloneEncounter(e)
	}
	inserted := slices.Clone(s.inserted)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.hunts = hunts
		s.encounters = encounters
		s.inserted = inserted
		s.mu.Unlock()

		return err
	}

	return nil
}

func cloneEncounter(e *entity.Encounter) *entity.Encounter {
	c := *e
	if e.SlotNumber != nil {
		slot := *e.SlotNumber
		c.SlotNumber = &slot
	}
	if e.DeletedBy != nil {
		by := *e.DeletedBy
		c.DeletedBy = &by
	}
	if e.DeletedAt != nil {
		at := *e.DeletedAt
		c.DeletedAt = &at
	}

	return &c
}

func cloneHunt(h *entity.Hunt) *entity.Hunt {
	c := *h
	c.TargetEntityIDs = slices.Clone(h.TargetEntityIDs)
	c.ExcludedEntityIDs = slices.Clone(h.ExcludedEntityIDs)

	return &c
}

type memHuntRepo struct{ s *memStore }

func (r *memHuntRepo) activeConflict(h *entity.Hunt) bool {
	if h.Status != entity.HuntStatusActive {
		return false
	}
	for _, other := range r.s.hunts {
		if other.ID != h.ID && other.OwnerID == h.OwnerID && other.Status == entity.HuntStatusActive {
			return true
		}
	}

	return false
}

func (r *memHuntRepo) Create(_ context.Context, hunt *entity.Hunt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.activeConflict(hunt) {
		return repository.ErrActiveHuntExists
	}
	r.s.hunts[hunt.ID] = cloneHunt(hunt)

	return nil
}

func (r *memHuntRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Hunt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	h, ok := r.s.hunts[id]
	if !ok {
		return nil, repository.ErrHuntNotFound
	}

	return cloneHunt(h), nil
}

func (r *memHuntRepo) FindActiveByOwner(_ context.Context, ownerID entity.SubjectID) (*entity.Hunt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, h := range r.s.hunts {
		if h.OwnerID == ownerID && h.Status == entity.HuntStatusActive {
			return cloneHunt(h), nil
		}
	}

	return nil, repository.ErrHuntNotFound
}

func (r *memHuntRepo) ListByOwner(_ context.Context, ownerID entity.SubjectID) ([]*entity.Hunt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var hunts []*entity.Hunt
	for _, h := range r.s.hunts {
		if h.OwnerID == ownerID {
			hunts = append(hunts, cloneHunt(h))
		}
	}
	slices.SortFunc(hunts, func(a, b *entity.Hunt) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return hunts, nil
}

func (r *memHuntRepo) UpdateSettings(_ context.Context, hunt *entity.Hunt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.hunts[hunt.ID]
	if !ok {
		return repository.ErrHuntNotFound
	}
	updated := cloneHunt(stored)
	updated.Name = hunt.Name
	updated.TargetEntityIDs = slices.Clone(hunt.TargetEntityIDs)
	updated.ExcludedEntityIDs = slices.Clone(hunt.ExcludedEntityIDs)
	updated.BingoEnabled = hunt.BingoEnabled
	updated.UpdatedAt = hunt.UpdatedAt
	r.s.hunts[hunt.ID] = updated

	hunt.Status = updated.Status

	return nil
}

func (r *memHuntRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.HuntStatus, now time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.hunts[id]
	if !ok || stored.Status != from {
		return repository.ErrHuntStatusChanged
	}
	updated := cloneHunt(stored)
	updated.Status = to
	updated.UpdatedAt = now
	if r.activeConflict(updated) {
		return repository.ErrActiveHuntExists
	}
	r.s.hunts[id] = updated

	return nil
}

func (r *memHuntRepo) PauseActive(_ context.Context, ownerID entity.SubjectID, exceptID uuid.UUID, now time.Time) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, h := range r.s.hunts {
		if id != exceptID && h.OwnerID == ownerID && h.Status == entity.HuntStatusActive {
			paused := cloneHunt(h)
			paused.Status = entity.HuntStatusPaused
			paused.UpdatedAt = now
			r.s.hunts[id] = paused

			return id, nil
		}
	}

	return uuid.Nil, nil
}

type memEncounterRepo struct{ s *memStore }

func (r *memEncounterRepo) Create(_ context.Context, encounter *entity.Encounter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failCreate; err != nil {
		r.s.failCreate = nil

		return err
	}

	if !encounter.IsDeleted && encounter.SlotNumber != nil {
		for _, other := range r.s.encounters {
			if other.HuntID == encounter.HuntID && other.OccupiesSlot(*encounter.SlotNumber) {
				return repository.ErrSlotConflict
			}
		}
	}

	r.s.encounters[encounter.ID] = cloneEncounter(encounter)
	r.s.inserted = append(r.s.inserted, encounter.ID)

	return nil
}

func (r *memEncounterRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Encounter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.encounters[id]
	if !ok {
		return nil, repository.ErrEncounterNotFound
	}

	return cloneEncounter(e), nil
}

func (r *memEncounterRepo) FindActiveBySlot(_ context.Context, huntID uuid.UUID, slot int) (*entity.Encounter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, e := range r.s.encounters {
		if e.HuntID == huntID && e.OccupiesSlot(slot) {
			return cloneEncounter(e), nil
		}
	}

	return nil, repository.ErrEncounterNotFound
}

func (r *memEncounterRepo) ListByHunt(_ context.Context, huntID uuid.UUID, includeDeleted bool) ([]*entity.Encounter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var list []*entity.Encounter
	for _, id := range r.s.inserted {
		e := r.s.encounters[id]
		if e.HuntID != huntID || (e.IsDeleted && !includeDeleted) {
			continue
		}
		list = append(list, cloneEncounter(e))
	}

	return list, nil
}

func (r *memEncounterRepo) SoftDelete(_ context.Context, encounter *entity.Encounter) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.encounters[encounter.ID]
	if !ok || stored.IsDeleted {
		return false, nil
	}

	updated := cloneEncounter(stored)
	updated.IsDeleted = true
	updated.DeletedBy = encounter.DeletedBy
	updated.DeletedAt = encounter.DeletedAt
	updated.SlotNumber = encounter.SlotNumber
	r.s.encounters[encounter.ID] = cloneEncounter(updated)

	return true, nil
}

type memDelegateRepo struct{ s *memStore }

func (r *memDelegateRepo) Upsert(_ context.Context, grant *entity.DelegateGrant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := [2]entity.SubjectID{grant.OwnerID, grant.DelegateID}
	stored := *grant
	if existing, ok := r.s.grants[key]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	r.s.grants[key] = &stored

	return nil
}

func (r *memDelegateRepo) Find(_ context.Context, ownerID, delegateID entity.SubjectID) (*entity.DelegateGrant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	grant, ok := r.s.grants[[2]entity.SubjectID{ownerID, delegateID}]
	if !ok {
		return nil, repository.ErrDelegateNotFound
	}
	c := *grant

	return &c, nil
}

func (r *memDelegateRepo) ListByOwner(_ context.Context, ownerID entity.SubjectID) ([]*entity.DelegateGrant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var grants []*entity.DelegateGrant
	for key, grant := range r.s.grants {
		if key[0] == ownerID {
			c := *grant
			grants = append(grants, &c)
		}
	}

	return grants, nil
}

func (r *memDelegateRepo) Expire(_ context.Context, ownerID, delegateID entity.SubjectID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	grant, ok := r.s.grants[[2]entity.SubjectID{ownerID, delegateID}]
	if !ok {
		return repository.ErrDelegateNotFound
	}
	grant.ExpiresAt = at
	grant.UpdatedAt = at

	return nil
}

// recordingPropagator captures change events instead of sending them.
type recordingPropagator struct {
	mu     sync.Mutex
	events []*entity.ChangeEvent
}

func (p *recordingPropagator) Propagate(_ context.Context, event *entity.ChangeEvent) {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
}

func (p *recordingPropagator) Wait(context.Context) error {
	return nil
}

func (p *recordingPropagator) Actions() []entity.ChangeAction {
	p.mu.Lock()
	defer p.mu.Unlock()

	actions := make([]entity.ChangeAction, 0, len(p.events))
	for _, e := range p.events {
		actions = append(actions, e.Action)
	}

	return actions
}

// testEnv wires the real services over memStore.
type testEnv struct {
	store      *memStore
	clock      *testClock
	propagator *recordingPropagator
	authz      usecase.AuthorizationUsecase
	encounters usecase.EncounterUsecase
	hunts      usecase.HuntUsecase
	delegates  usecase.DelegateUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newMemStore()
	clock := newTestClock()
	propagator := &recordingPropagator{}
	cfg := newTestConfig()
	logger := newDiscardLogger()

	authz := NewAuthorizationService(store.NewHuntRepository(), store.NewDelegateRepository(), mockService.NewMockIdentityProvider(t), cfg, logger).(*authorizationService)
	authz.now = clock.Now

	encounters := NewEncounterService(store, store.NewHuntRepository(), store.NewEncounterRepository(), authz, propagator, logger).(*encounterService)
	encounters.now = clock.Now

	hunts := NewHuntService(store, store.NewHuntRepository(), authz, propagator, cfg, logger).(*huntService)
	hunts.now = clock.Now

	delegates := NewDelegateService(store.NewDelegateRepository(), logger).(*delegateService)
	delegates.now = clock.Now

	return &testEnv{
		store:      store,
		clock:      clock,
		propagator: propagator,
		authz:      authz,
		encounters: encounters,
		hunts:      hunts,
		delegates:  delegates,
	}
}

// newHunt stores an ACTIVE hunt for owner directly.
func (env *testEnv) newHunt(t *testing.T, owner entity.SubjectID) *entity.Hunt {
	t.Helper()

	hunt := entity.NewHunt(owner, "test hunt", env.clock.Now())
	if err := env.store.NewHuntRepository().Create(context.Background(), hunt); err != nil {
		t.Fatalf("seed hunt: %v", err)
	}

	return hunt
}

// sessionFor returns a session without provider tokens, so authorization
// never reaches the identity provider.
func sessionFor(id entity.SubjectID) *entity.Session {
	return &entity.Session{SubjectID: id, SubjectHandle: "user" + id.String()}
}
