package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/reconciler"
)

// Session aggregates all per-login dashboard state: the selected company's
// fleet state, the widget layout, the list-widget edit sessions, the
// maintenance board, and the error-banner dismissal flag. Nothing in a
// session is persisted; it disappears with the session itself.
type Session struct {
	id   string
	user models.User

	Fleet    *reconciler.Service
	Layout   *Layout
	Vehicles *ListView[models.Vehicle]
	Drivers  *ListView[models.Driver]
	Board    *Board

	mu              sync.Mutex
	bannerDismissed bool
}

// ID returns the session identifier bound into the session token.
func (s *Session) ID() string { return s.id }

// User returns the signed-in user.
func (s *Session) User() models.User { return s.user }

// SelectCompany runs a reconciliation cycle for the company and, if the
// result was committed (not superseded by a newer selection), rebuilds the
// local view-state copies from the fresh snapshot and re-arms the error
// banner. The widget layout survives company switches, matching the
// original dashboard behavior.
func (s *Session) SelectCompany(ctx context.Context, companyKey string) bool {
	if !s.Fleet.SelectCompany(ctx, companyKey) {
		return false
	}
	snap := s.Fleet.Current().Snapshot
	s.Vehicles.Reset(snap.Vehicles)
	s.Drivers.Reset(snap.Drivers)
	s.Board.Reset(snap)
	s.mu.Lock()
	s.bannerDismissed = false
	s.mu.Unlock()
	return true
}

// DismissBanner hides the API-warning banner. Dismissal is local UI state;
// it does not retry the adapters or clear the underlying errors.
func (s *Session) DismissBanner() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bannerDismissed = true
}

// BannerDismissed reports whether the user has dismissed the banner for
// the current cycle.
func (s *Session) BannerDismissed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bannerDismissed
}

// Registry is the TTL-evicted in-memory session store. Reads slide the
// expiration forward so active dashboards stay alive.
type Registry struct {
	rec      *reconciler.Reconciler
	sessions *cache.Cache
	ttl      time.Duration
}

// NewRegistry creates a registry whose sessions expire after ttl of
// inactivity.
func NewRegistry(rec *reconciler.Reconciler, ttl time.Duration) *Registry {
	return &Registry{
		rec:      rec,
		sessions: cache.New(ttl, ttl/2),
		ttl:      ttl,
	}
}

// Create starts a fresh session for a signed-in user.
func (r *Registry) Create(user models.User) *Session {
	s := &Session{
		id:       uuid.NewString(),
		user:     user,
		Fleet:    reconciler.NewService(r.rec),
		Layout:   NewLayout(),
		Vehicles: NewVehicleView(nil),
		Drivers:  NewDriverView(nil),
		Board:    NewBoard(models.FleetSnapshot{}),
	}
	r.sessions.Set(s.id, s, r.ttl)
	return s
}

// Get looks a session up by id and extends its lifetime.
func (r *Registry) Get(id string) (*Session, bool) {
	v, found := r.sessions.Get(id)
	if !found {
		return nil, false
	}
	s := v.(*Session)
	r.sessions.Set(id, s, r.ttl)
	return s, true
}

// Delete removes a session, e.g. on logout.
func (r *Registry) Delete(id string) {
	r.sessions.Delete(id)
}
