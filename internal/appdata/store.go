// Package appdata holds the cached application state for the signed-in
// user and funnels every read-refresh and mutation through one place. The
// cache is a snapshot derived from the last successful refresh; it is never
// assumed consistent with the server between refreshes.
package appdata

import (
	"sync"

	"vitalog/internal/api"
	"vitalog/internal/models"
	"vitalog/internal/observability"
)

// TokenSource resolves the current auth token. An empty token means the
// session is unauthenticated.
type TokenSource interface {
	Token() string
}

// State is the cached snapshot visible to presentation code. Errors are
// recorded alongside otherwise-ready state, never as a blocking state.
type State struct {
	Profile          *models.User
	BMI              *float64
	Water            []models.WaterRecord
	Sleep            []models.SleepRecord
	Activity         []models.ActivityRecord
	CustomCategories []models.Category
	CustomData       map[string][]models.CustomItem
	Loading          bool
	LastError        string
}

// Store is the application data layer: it owns the cached state, refreshes
// it from the active API client, and notifies subscribers after every
// change. All mutation funnels through its operations; consumers only ever
// see copies.
type Store struct {
	client api.Client
	tokens TokenSource
	log    *observability.StoreLogger

	mu    sync.RWMutex
	state State

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// New creates a data layer over the given client and token source.
func New(client api.Client, tokens TokenSource) *Store {
	return &Store{
		client: client,
		tokens: tokens,
		log:    observability.NewStoreLogger(),
		state:  State{CustomData: make(map[string][]models.CustomItem)},
		subs:   make(map[int]func()),
	}
}

// Subscribe registers a callback invoked after every state change. The
// returned function cancels the subscription. Callbacks run synchronously
// on the goroutine that changed the state and should read via Snapshot.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Snapshot returns a deep copy of the cached state, so consumers never
// alias the store's internal slices or map.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	if s.state.Profile != nil {
		profile := *s.state.Profile
		out.Profile = &profile
	}
	if s.state.BMI != nil {
		bmi := *s.state.BMI
		out.BMI = &bmi
	}
	out.Water = append([]models.WaterRecord(nil), s.state.Water...)
	out.Sleep = append([]models.SleepRecord(nil), s.state.Sleep...)
	out.Activity = append([]models.ActivityRecord(nil), s.state.Activity...)
	out.CustomCategories = append([]models.Category(nil), s.state.CustomCategories...)
	out.CustomData = make(map[string][]models.CustomItem, len(s.state.CustomData))
	for id, items := range s.state.CustomData {
		out.CustomData[id] = append([]models.CustomItem(nil), items...)
	}
	return out
}

// update applies a state change under the write lock, then notifies
// subscribers with the lock released.
func (s *Store) update(apply func(*State)) {
	s.mu.Lock()
	apply(&s.state)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// requireToken resolves the token for a mutation. A missing token fails the
// mutation, unlike reads where it is benign empty state.
func (s *Store) requireToken() (string, error) {
	token := s.tokens.Token()
	if token == "" {
		return "", models.ErrNotAuthenticated
	}
	return token, nil
}
