package gormrepo

import (
	"context"
	"time"

	"geoquest/internal/adapter/repo/gorm/model"
	"geoquest/internal/domain/combat"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoundEventRepo struct {
	db *gorm.DB
}

func NewRoundEventRepo(db *gorm.DB) RoundEventRepo {
	return RoundEventRepo{db: db}
}

func (r RoundEventRepo) Append(ctx context.Context, sessionID string, results []combat.RoundResult) error {
	if len(results) == 0 {
		return nil
	}
	rows := make([]model.CombatRoundEvent, 0, len(results))
	for _, result := range results {
		rows = append(rows, model.CombatRoundEvent{
			SessionID:   sessionID,
			Round:       int32(result.Round),
			Actor:       string(result.Actor),
			Action:      string(result.Action),
			Roll:        int32(result.Roll),
			Hit:         result.Hit,
			Critical:    result.Critical,
			Damage:      int32(result.Damage),
			CharacterHp: int32(result.CharacterHP),
			MonsterHp:   int32(result.MonsterHP),
			CreatedAt:   time.Now(),
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r RoundEventRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]combat.RoundResult, error) {
	rows := []model.CombatRoundEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.CombatRoundEvent{SessionID: sessionID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]combat.RoundResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, combat.RoundResult{
			Round:       int(row.Round),
			Actor:       combat.Actor(row.Actor),
			Action:      combat.Action(row.Action),
			Roll:        int(row.Roll),
			Hit:         row.Hit,
			Critical:    row.Critical,
			Damage:      int(row.Damage),
			CharacterHP: int(row.CharacterHp),
			MonsterHP:   int(row.MonsterHp),
		})
	}
	return out, nil
}
