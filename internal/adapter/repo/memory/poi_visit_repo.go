package memory

import (
	"context"
	"time"
)

type POIVisitRepo struct {
	store *Store
}

func NewPOIVisitRepo(store *Store) POIVisitRepo {
	return POIVisitRepo{store: store}
}

func (r POIVisitRepo) MarkCleared(_ context.Context, characterID, poiID string, clearedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.visits[visitKey(characterID, poiID)] = clearedAt
	return nil
}

func (r POIVisitRepo) IsCleared(_ context.Context, characterID, poiID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.visits[visitKey(characterID, poiID)]
	return ok, nil
}
