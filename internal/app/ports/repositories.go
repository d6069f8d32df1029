package ports

import (
	"context"
	"time"

	"geoquest/internal/domain/combat"
	"geoquest/internal/domain/encounter"
)

type CharacterRecord struct {
	ID          string
	Name        string
	Level       int
	AttackBonus int
	Damage      int
	Armor       int
	MaxHP       int
	CurrentHP   int
	Gold        int
	XP          int
	Version     int64
}

// Sheet projects the persistence record onto the combat-facing snapshot.
func (c CharacterRecord) Sheet() combat.CharacterSheet {
	return combat.CharacterSheet{
		Level:       c.Level,
		AttackBonus: c.AttackBonus,
		Damage:      c.Damage,
		Armor:       c.Armor,
		MaxHP:       c.MaxHP,
	}
}

type CharacterRepository interface {
	GetByID(ctx context.Context, id string) (CharacterRecord, error)
	SaveWithVersion(ctx context.Context, record CharacterRecord, expectedVersion int64) error
}

// CombatSessionRecord is the persisted form of one encounter's CombatState.
// The round log is stored separately as append-only events.
type CombatSessionRecord struct {
	SessionID   string
	CharacterID string
	POIID       string
	Character   combat.CharacterSheet
	CharacterHP int
	Monster     encounter.MonsterInstance
	MonsterHP   int
	Round       int
	Outcome     combat.Outcome
	RNGState    int64
	Version     int64
	StartedAt   time.Time
	UpdatedAt   time.Time
}

// State rebuilds the domain CombatState for the resolver.
func (r CombatSessionRecord) State() combat.CombatState {
	return combat.CombatState{
		Character:   r.Character,
		CharacterHP: r.CharacterHP,
		Monster:     r.Monster,
		MonsterHP:   r.MonsterHP,
		Round:       r.Round,
		Outcome:     r.Outcome,
		RNGState:    r.RNGState,
	}
}

// ApplyState folds an advanced CombatState back into the record.
func (r *CombatSessionRecord) ApplyState(s combat.CombatState) {
	r.Character = s.Character
	r.CharacterHP = s.CharacterHP
	r.Monster = s.Monster
	r.MonsterHP = s.MonsterHP
	r.Round = s.Round
	r.Outcome = s.Outcome
	r.RNGState = s.RNGState
}

type CombatSessionRepository interface {
	GetByID(ctx context.Context, sessionID string) (CombatSessionRecord, error)
	SaveWithVersion(ctx context.Context, record CombatSessionRecord, expectedVersion int64) error
}

type RoundEventRepository interface {
	Append(ctx context.Context, sessionID string, results []combat.RoundResult) error
	ListBySessionID(ctx context.Context, sessionID string, limit int) ([]combat.RoundResult, error)
}

type POIVisitRepository interface {
	MarkCleared(ctx context.Context, characterID, poiID string, clearedAt time.Time) error
	IsCleared(ctx context.Context, characterID, poiID string) (bool, error)
}
