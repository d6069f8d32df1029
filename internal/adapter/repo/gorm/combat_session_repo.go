package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"geoquest/internal/adapter/repo/gorm/model"
	"geoquest/internal/app/ports"
	"geoquest/internal/domain/combat"
	"geoquest/internal/domain/encounter"

	"gorm.io/gorm"
)

type CombatSessionRepo struct {
	db *gorm.DB
}

func NewCombatSessionRepo(db *gorm.DB) CombatSessionRepo {
	return CombatSessionRepo{db: db}
}

func (r CombatSessionRepo) GetByID(ctx context.Context, sessionID string) (ports.CombatSessionRecord, error) {
	var m model.CombatSession
	if err := getDBFromCtx(ctx, r.db).Where("session_id = ?", sessionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CombatSessionRecord{}, ports.ErrNotFound
		}
		return ports.CombatSessionRecord{}, err
	}

	var sheet combat.CharacterSheet
	if len(m.CharacterSheet) > 0 {
		if err := json.Unmarshal(m.CharacterSheet, &sheet); err != nil {
			return ports.CombatSessionRecord{}, err
		}
	}
	var monster encounter.MonsterInstance
	if len(m.Monster) > 0 {
		if err := json.Unmarshal(m.Monster, &monster); err != nil {
			return ports.CombatSessionRecord{}, err
		}
	}

	return ports.CombatSessionRecord{
		SessionID:   m.SessionID,
		CharacterID: m.CharacterID,
		POIID:       m.PoiID,
		Character:   sheet,
		CharacterHP: int(m.CharacterHp),
		Monster:     monster,
		MonsterHP:   int(m.MonsterHp),
		Round:       int(m.Round),
		Outcome:     combat.Outcome(m.Outcome),
		RNGState:    m.RngState,
		Version:     m.Version,
		StartedAt:   m.StartedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

func (r CombatSessionRepo) SaveWithVersion(ctx context.Context, record ports.CombatSessionRecord, expectedVersion int64) error {
	sheet, err := json.Marshal(record.Character)
	if err != nil {
		return err
	}
	monster, err := json.Marshal(record.Monster)
	if err != nil {
		return err
	}

	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := model.CombatSession{
			SessionID:      record.SessionID,
			CharacterID:    record.CharacterID,
			PoiID:          record.POIID,
			CharacterSheet: sheet,
			CharacterHp:    int32(record.CharacterHP),
			Monster:        monster,
			MonsterHp:      int32(record.MonsterHP),
			Round:          int32(record.Round),
			Outcome:        string(record.Outcome),
			RngState:       record.RNGState,
			Version:        record.Version,
			StartedAt:      record.StartedAt,
			UpdatedAt:      record.UpdatedAt,
		}
		return db.Create(&m).Error
	}

	updates := map[string]any{
		"character_sheet": sheet,
		"character_hp":    int32(record.CharacterHP),
		"monster":         monster,
		"monster_hp":      int32(record.MonsterHP),
		"round":           int32(record.Round),
		"outcome":         string(record.Outcome),
		"rng_state":       record.RNGState,
		"version":         record.Version,
		"updated_at":      record.UpdatedAt,
	}

	res := db.Model(&model.CombatSession{}).
		Where("session_id = ? AND version = ?", record.SessionID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
