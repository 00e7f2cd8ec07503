package source

import (
	"context"
	"sync"

	"github.com/TabbycatDebate/tabbycat/types"
)

// Static implements a bootstrap source with a fixed payload.
type Static struct {
	mu      sync.RWMutex
	payload *types.Bootstrap
}

var _ types.BootstrapSource = (*Static)(nil)

// NewStatic creates a bootstrap source that always returns the given
// payload. Useful for tests and for embedding a pre-decoded payload
// delivered out of band.
//
// Parameters:
//   - payload: The bootstrap payload to serve
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(payload)
//	if err := store.LoadFrom(ctx, src); err != nil { /* handle */ }
func NewStatic(payload *types.Bootstrap) *Static {
	return &Static{payload: payload}
}

// Fetch returns the fixed payload.
//
// Returns:
//   - *types.Bootstrap: The configured payload
//   - error: Always nil (never fails)
func (s *Static) Fetch(_ context.Context) (*types.Bootstrap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.payload, nil
}

// Update replaces the served payload, letting tests simulate a changed
// bootstrap between sessions.
//
// Parameters:
//   - payload: New payload to serve
func (s *Static) Update(payload *types.Bootstrap) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payload = payload
}
