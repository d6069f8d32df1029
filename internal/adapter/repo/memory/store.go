package memory

import (
	"sync"
	"time"

	"geoquest/internal/app/ports"
	"geoquest/internal/domain/combat"
)

type Store struct {
	mu         sync.RWMutex
	characters map[string]ports.CharacterRecord
	sessions   map[string]ports.CombatSessionRecord
	events     map[string][]combat.RoundResult
	visits     map[string]time.Time
}

func NewStore() *Store {
	return &Store{
		characters: make(map[string]ports.CharacterRecord),
		sessions:   make(map[string]ports.CombatSessionRecord),
		events:     make(map[string][]combat.RoundResult),
		visits:     make(map[string]time.Time),
	}
}

func visitKey(characterID, poiID string) string {
	return characterID + "::" + poiID
}

func (s *Store) SeedCharacter(record ports.CharacterRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characters[record.ID] = record
}

func (s *Store) SeedSession(record ports.CombatSessionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[record.SessionID] = record
}
