package memory

import (
	"context"

	"geoquest/internal/app/ports"
)

type CombatSessionRepo struct {
	store *Store
}

func NewCombatSessionRepo(store *Store) CombatSessionRepo {
	return CombatSessionRepo{store: store}
}

func (r CombatSessionRepo) GetByID(_ context.Context, sessionID string) (ports.CombatSessionRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.sessions[sessionID]
	if !ok {
		return ports.CombatSessionRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r CombatSessionRepo) SaveWithVersion(_ context.Context, record ports.CombatSessionRecord, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.sessions[record.SessionID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.sessions[record.SessionID] = record
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.sessions[record.SessionID] = record
	return nil
}
