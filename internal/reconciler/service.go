package reconciler

import (
	"context"
	"sync"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// State is the snapshot view handed to presentation: one immutable
// snapshot per completed cycle plus the cycle status.
type State struct {
	Company  string
	Snapshot models.FleetSnapshot
	Loading  bool
	APIError string
}

// Service owns the current fleet state for one dashboard session. Results
// of a reconciliation cycle are committed only if no newer cycle has been
// started since, so a late result for a stale company selection can never
// overwrite the current snapshot.
type Service struct {
	rec *Reconciler

	mu         sync.Mutex
	generation uint64
	state      State
}

// NewService creates an empty per-session fleet service.
func NewService(rec *Reconciler) *Service {
	return &Service{rec: rec}
}

// SelectCompany runs a full reconciliation cycle for the company and
// commits the result unless a newer selection superseded it meanwhile.
// It reports whether the result was committed.
func (s *Service) SelectCompany(ctx context.Context, companyKey string) bool {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.Company = companyKey
	s.state.Loading = true
	s.state.APIError = ""
	s.mu.Unlock()

	snap, apiError := s.rec.LoadSnapshot(ctx, companyKey)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer cycle started while this one was in flight; discard.
		return false
	}
	s.state.Snapshot = snap
	s.state.APIError = apiError
	s.state.Loading = false
	return true
}

// Current returns the session's fleet state. The snapshot is cloned so
// callers can never share a mutable reference with the service.
func (s *Service) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Snapshot = s.state.Snapshot.Clone()
	return st
}
