package memory

import (
	"context"

	"geoquest/internal/domain/combat"
)

type RoundEventRepo struct {
	store *Store
}

func NewRoundEventRepo(store *Store) RoundEventRepo {
	return RoundEventRepo{store: store}
}

func (r RoundEventRepo) Append(_ context.Context, sessionID string, results []combat.RoundResult) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[sessionID] = append(r.store.events[sessionID], results...)
	return nil
}

func (r RoundEventRepo) ListBySessionID(_ context.Context, sessionID string, limit int) ([]combat.RoundResult, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	events := r.store.events[sessionID]
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	out := make([]combat.RoundResult, len(events))
	copy(out, events)
	return out, nil
}
