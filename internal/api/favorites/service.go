package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service keeps a per-session list of saved places. Sessions are ephemeral
// browser sessions, so the store is purely in memory and lost on restart.
type Service interface {
	Add(ctx context.Context, sessionID string, place types.PlaceCandidate) error
	List(ctx context.Context, sessionID string) []types.PlaceCandidate
	Remove(ctx context.Context, sessionID, placeID string) error
}

type ServiceImpl struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string][]types.PlaceCandidate
}

func NewService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		sessions: make(map[string][]types.PlaceCandidate),
	}
}

// Add appends a place to the session's list. Saving the same place twice is
// rejected so the list stays a set.
func (s *ServiceImpl) Add(ctx context.Context, sessionID string, place types.PlaceCandidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, saved := range s.sessions[sessionID] {
		if saved.PlaceID == place.PlaceID {
			return fmt.Errorf("place %q is already a favorite", place.PlaceID)
		}
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], place)
	s.logger.DebugContext(ctx, "Favorite added",
		slog.String("session_id", sessionID), slog.String("place_id", place.PlaceID))
	return nil
}

// List returns the session's saved places in insertion order.
func (s *ServiceImpl) List(ctx context.Context, sessionID string) []types.PlaceCandidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	saved := s.sessions[sessionID]
	out := make([]types.PlaceCandidate, len(saved))
	copy(out, saved)
	return out
}

// Remove deletes one saved place from the session's list.
func (s *ServiceImpl) Remove(ctx context.Context, sessionID, placeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.sessions[sessionID]
	for i, place := range saved {
		if place.PlaceID == placeID {
			s.sessions[sessionID] = append(saved[:i], saved[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("place %q is not a favorite", placeID)
}
