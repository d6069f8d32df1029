package combat

import (
	"errors"

	"geoquest/internal/domain/worldgen"
)

var ErrInvalidCombatState = errors.New("invalid combat state")

// ResolveRound advances one round of an ongoing encounter. The character acts
// first; a monster killed by that action does not retaliate. Calling it on a
// terminal state, or with an unknown action, fails without touching the input.
func ResolveRound(state CombatState, action Action) (CombatState, []RoundResult, error) {
	if state.Outcome != OutcomeOngoing {
		return CombatState{}, nil, ErrInvalidCombatState
	}
	if action != ActionAttack && action != ActionFlee {
		return CombatState{}, nil, ErrInvalidCombatState
	}

	next := state
	next.Log = append([]RoundResult(nil), state.Log...)
	stream := worldgen.Resume(state.RNGState)

	if action == ActionFlee {
		next.Outcome = OutcomeFled
		result := RoundResult{
			Round:       next.Round,
			Actor:       ActorCharacter,
			Action:      ActionFlee,
			CharacterHP: next.CharacterHP,
			MonsterHP:   next.MonsterHP,
		}
		next.Log = append(next.Log, result)
		next.RNGState = stream.State()
		return next, []RoundResult{result}, nil
	}

	results := make([]RoundResult, 0, 2)

	swing := resolveAttack(stream, next.Character.AttackBonus, next.Character.Damage, next.Monster.Armor)
	next.MonsterHP = clampHP(next.MonsterHP-swing.damage, next.Monster.Health)
	charResult := RoundResult{
		Round:       next.Round,
		Actor:       ActorCharacter,
		Action:      ActionAttack,
		Roll:        swing.roll,
		Hit:         swing.hit,
		Critical:    swing.critical,
		Damage:      swing.damage,
		CharacterHP: next.CharacterHP,
		MonsterHP:   next.MonsterHP,
	}
	next.Log = append(next.Log, charResult)
	results = append(results, charResult)

	if next.MonsterHP <= 0 {
		next.Outcome = OutcomeVictory
		next.RNGState = stream.State()
		return next, results, nil
	}

	// Monsters attack with their level as bonus.
	swing = resolveAttack(stream, next.Monster.Level, next.Monster.Damage, next.Character.Armor)
	next.CharacterHP = clampHP(next.CharacterHP-swing.damage, next.Character.MaxHP)
	monResult := RoundResult{
		Round:       next.Round,
		Actor:       ActorMonster,
		Action:      ActionAttack,
		Roll:        swing.roll,
		Hit:         swing.hit,
		Critical:    swing.critical,
		Damage:      swing.damage,
		CharacterHP: next.CharacterHP,
		MonsterHP:   next.MonsterHP,
	}
	next.Log = append(next.Log, monResult)
	results = append(results, monResult)

	if next.CharacterHP <= 0 {
		next.Outcome = OutcomeDefeat
		next.RNGState = stream.State()
		return next, results, nil
	}

	next.Round++
	next.RNGState = stream.State()
	return next, results, nil
}

type attackSwing struct {
	roll     int
	damage   int
	hit      bool
	critical bool
}

// resolveAttack rolls one d20 swing. A natural 20 always hits and doubles the
// damage; a natural 1 always misses. Any hit deals at least minHitDamage.
func resolveAttack(stream *worldgen.Stream, attackBonus, damage, targetArmor int) attackSwing {
	roll := stream.RollD20()
	out := attackSwing{roll: roll}
	switch {
	case roll == fumbleRoll:
		return out
	case roll == criticalRoll:
		out.hit = true
		out.critical = true
	case roll+attackBonus >= armorClass(targetArmor):
		out.hit = true
	default:
		return out
	}

	dealt := damage - targetArmor/armorMitigationDivisor
	if dealt < minHitDamage {
		dealt = minHitDamage
	}
	if out.critical {
		dealt *= criticalMultiplier
	}
	out.damage = dealt
	return out
}

func armorClass(armor int) int {
	return baseArmorClass + armor/2
}

func clampHP(hp, max int) int {
	if hp < 0 {
		return 0
	}
	if hp > max {
		return max
	}
	return hp
}
