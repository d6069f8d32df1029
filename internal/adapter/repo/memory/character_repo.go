package memory

import (
	"context"

	"geoquest/internal/app/ports"
)

type CharacterRepo struct {
	store *Store
}

func NewCharacterRepo(store *Store) CharacterRepo {
	return CharacterRepo{store: store}
}

func (r CharacterRepo) GetByID(_ context.Context, id string) (ports.CharacterRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.characters[id]
	if !ok {
		return ports.CharacterRecord{}, ports.ErrNotFound
	}
	return record, nil
}

func (r CharacterRepo) SaveWithVersion(_ context.Context, record ports.CharacterRecord, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.characters[record.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.characters[record.ID] = record
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.characters[record.ID] = record
	return nil
}
