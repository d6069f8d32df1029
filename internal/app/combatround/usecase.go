package combatround

import (
	"context"
	"errors"
	"strings"
	"time"

	"geoquest/internal/app/ports"
	"geoquest/internal/domain/combat"
	"geoquest/internal/domain/encounter"
)

var ErrInvalidRequest = errors.New("invalid combat round request")

// UseCase advances one round of a persisted combat session. Optimistic
// versioning on the session row is the mutual exclusion for "one actor
// advances an encounter": a concurrent advance loses with ErrConflict.
type UseCase struct {
	TxManager  ports.TxManager
	Characters ports.CharacterRepository
	Sessions   ports.CombatSessionRepository
	Events     ports.RoundEventRepository
	Visits     ports.POIVisitRepository
	Metrics    ports.CombatMetrics
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}

	session, err := u.Sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		return Response{}, err
	}

	next, results, err := combat.ResolveRound(session.State(), req.Action)
	if err != nil {
		u.recordFailure()
		return Response{}, err
	}

	now := u.now()
	expected := session.Version
	session.ApplyState(next)
	session.Version++
	session.UpdatedAt = now

	var reward *Reward
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Sessions.SaveWithVersion(txCtx, session, expected); err != nil {
			return err
		}
		if err := u.Events.Append(txCtx, session.SessionID, results); err != nil {
			return err
		}
		switch next.Outcome {
		case combat.OutcomeVictory:
			gold, xp := encounter.RewardFor(session.Monster)
			reward = &Reward{Gold: gold, XP: xp}
			if err := u.applyCharacterResult(txCtx, session, next, gold, xp); err != nil {
				return err
			}
			return u.Visits.MarkCleared(txCtx, session.CharacterID, session.POIID, now)
		case combat.OutcomeDefeat:
			return u.applyCharacterResult(txCtx, session, next, 0, 0)
		default:
			return nil
		}
	})
	if err != nil {
		if errors.Is(err, ports.ErrConflict) {
			u.recordConflict()
		}
		return Response{}, err
	}

	if next.Outcome.Terminal() {
		u.recordOutcome(next.Outcome)
	}

	return Response{
		SessionID:   session.SessionID,
		Round:       next.Round,
		Outcome:     next.Outcome,
		CharacterHP: next.CharacterHP,
		MonsterHP:   next.MonsterHP,
		Results:     results,
		Reward:      reward,
	}, nil
}

func (u UseCase) applyCharacterResult(ctx context.Context, session ports.CombatSessionRecord, state combat.CombatState, gold, xp int) error {
	character, err := u.Characters.GetByID(ctx, session.CharacterID)
	if err != nil {
		return err
	}
	expected := character.Version
	character.CurrentHP = state.CharacterHP
	character.Gold += gold
	character.XP += xp
	character.Version++
	return u.Characters.SaveWithVersion(ctx, character, expected)
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) recordOutcome(outcome combat.Outcome) {
	if u.Metrics != nil {
		u.Metrics.RecordOutcome(outcome)
	}
}

func (u UseCase) recordConflict() {
	if u.Metrics != nil {
		u.Metrics.RecordConflict()
	}
}

func (u UseCase) recordFailure() {
	if u.Metrics != nil {
		u.Metrics.RecordFailure()
	}
}
