package client

import "sync"

// ToggleState tracks one membership flag through an optimistic update: the
// displayed value flips immediately on user action, and the server response
// either confirms it or rolls it back. While a request is in flight further
// toggles are refused, so overlapping requests cannot flip the state twice.
type ToggleState struct {
	mu        sync.Mutex
	confirmed bool
	pending   *bool
	inFlight  bool
}

func NewToggleState(confirmed bool) *ToggleState {
	return &ToggleState{confirmed: confirmed}
}

// Value is the state to display: the pending speculative value if a toggle
// is in flight, the confirmed value otherwise.
func (s *ToggleState) Value() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return *s.pending
	}
	return s.confirmed
}

// Begin starts an optimistic toggle and returns the speculative value.
// It refuses (ok=false) while another toggle is in flight.
func (s *ToggleState) Begin() (target bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return false, false
	}

	target = !s.confirmed
	s.pending = &target
	s.inFlight = true
	return target, true
}

// Confirm adopts the server-confirmed value and clears the speculation.
func (s *ToggleState) Confirm(actual bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.confirmed = actual
	s.pending = nil
	s.inFlight = false
}

// Rollback discards the speculative value after a failed request; the
// displayed state reverts to the last confirmed value.
func (s *ToggleState) Rollback() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
	s.inFlight = false
}
