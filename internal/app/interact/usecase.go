package interact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"geoquest/internal/app/ports"
	"geoquest/internal/domain/combat"
	"geoquest/internal/domain/encounter"
)

var (
	ErrInvalidRequest = errors.New("invalid interact request")
	ErrAlreadyCleared = errors.New("poi already cleared")
)

// UseCase materializes a POI for a character. Monsters open a combat session;
// treasure is claimed immediately.
type UseCase struct {
	TxManager  ports.TxManager
	Characters ports.CharacterRepository
	Sessions   ports.CombatSessionRepository
	Visits     ports.POIVisitRepository
	WorldSeed  int
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" || strings.TrimSpace(req.POI.ID) == "" {
		return Response{}, ErrInvalidRequest
	}

	cleared, err := u.Visits.IsCleared(ctx, req.CharacterID, req.POI.ID)
	if err != nil {
		return Response{}, err
	}
	if cleared {
		return Response{}, ErrAlreadyCleared
	}

	character, err := u.Characters.GetByID(ctx, req.CharacterID)
	if err != nil {
		return Response{}, err
	}

	enc, err := encounter.Materialize(req.POI, u.WorldSeed)
	if err != nil {
		return Response{}, err
	}

	now := u.now()
	switch enc.Category {
	case encounter.CategoryMonster:
		return u.openCombatSession(ctx, character, req.POI, *enc.Monster, now)
	case encounter.CategoryTreasure:
		return u.claimTreasure(ctx, character, req.POI, *enc.Treasure, now)
	default:
		return Response{}, fmt.Errorf("%w: %q", encounter.ErrUnsupportedCategory, enc.Category)
	}
}

func (u UseCase) openCombatSession(ctx context.Context, character ports.CharacterRecord, poi encounter.POI, monster encounter.MonsterInstance, now time.Time) (Response, error) {
	state := combat.NewState(character.Sheet(), monster)
	record := ports.CombatSessionRecord{
		SessionID:   fmt.Sprintf("cmb_%s_%s_%d", character.ID, poi.ID, now.UnixNano()),
		CharacterID: character.ID,
		POIID:       poi.ID,
		Version:     1,
		StartedAt:   now,
		UpdatedAt:   now,
	}
	record.ApplyState(state)
	if err := u.Sessions.SaveWithVersion(ctx, record, 0); err != nil {
		return Response{}, err
	}
	return Response{
		Category: encounter.CategoryMonster,
		Session: &SessionInfo{
			SessionID:   record.SessionID,
			Round:       record.Round,
			Outcome:     record.Outcome,
			CharacterHP: record.CharacterHP,
			Monster:     monster,
		},
	}, nil
}

func (u UseCase) claimTreasure(ctx context.Context, character ports.CharacterRecord, poi encounter.POI, treasure encounter.TreasureInstance, now time.Time) (Response, error) {
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := u.Characters.GetByID(txCtx, character.ID)
		if err != nil {
			return err
		}
		expected := current.Version
		current.Gold += treasure.Gold
		current.XP += treasure.XP
		current.Version++
		if err := u.Characters.SaveWithVersion(txCtx, current, expected); err != nil {
			return err
		}
		return u.Visits.MarkCleared(txCtx, character.ID, poi.ID, now)
	})
	if err != nil {
		return Response{}, err
	}
	return Response{
		Category: encounter.CategoryTreasure,
		Treasure: &TreasureInfo{Gold: treasure.Gold, XP: treasure.XP},
	}, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
