package combat

import (
	"geoquest/internal/domain/encounter"
	"geoquest/internal/domain/worldgen"
)

type Action string

const (
	ActionAttack Action = "attack"
	ActionFlee   Action = "flee"
)

type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeFled    Outcome = "fled"
)

// Terminal reports whether the outcome can never change again.
func (o Outcome) Terminal() bool {
	return o == OutcomeVictory || o == OutcomeDefeat || o == OutcomeFled
}

// CharacterSheet is the combat-relevant snapshot of a character, supplied by
// the character service.
type CharacterSheet struct {
	Level       int `json:"level"`
	AttackBonus int `json:"attack_bonus"`
	Damage      int `json:"damage"`
	Armor       int `json:"armor"`
	MaxHP       int `json:"max_hp"`
}

type Actor string

const (
	ActorCharacter Actor = "character"
	ActorMonster   Actor = "monster"
)

// RoundResult is the immutable audit record of one action within a round.
type RoundResult struct {
	Round       int    `json:"round"`
	Actor       Actor  `json:"actor"`
	Action      Action `json:"action"`
	Roll        int    `json:"roll,omitempty"`
	Hit         bool   `json:"hit"`
	Critical    bool   `json:"critical,omitempty"`
	Damage      int    `json:"damage"`
	CharacterHP int    `json:"character_hp"`
	MonsterHP   int    `json:"monster_hp"`
}

// CombatState is owned by exactly one encounter. The resolver never mutates
// a passed-in state; it returns the advanced copy.
type CombatState struct {
	Character   CharacterSheet            `json:"character"`
	CharacterHP int                       `json:"character_hp"`
	Monster     encounter.MonsterInstance `json:"monster"`
	MonsterHP   int                       `json:"monster_hp"`
	Round       int                       `json:"round"`
	Outcome     Outcome                   `json:"outcome"`
	RNGState    int64                     `json:"rng_state"`
	Log         []RoundResult             `json:"log"`
}

// NewState opens an encounter at round 1. The combat stream cursor derives
// from the monster's seed so a persisted encounter replays identically.
func NewState(character CharacterSheet, monster encounter.MonsterInstance) CombatState {
	return CombatState{
		Character:   character,
		CharacterHP: character.MaxHP,
		Monster:     monster,
		MonsterHP:   monster.Health,
		Round:       1,
		Outcome:     OutcomeOngoing,
		RNGState:    int64(worldgen.Mask31(monster.Seed + combatSeedSalt)),
	}
}
