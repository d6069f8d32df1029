package gormrepo

import (
	"context"
	"errors"
	"time"

	"geoquest/internal/adapter/repo/gorm/model"
	"geoquest/internal/app/ports"

	"gorm.io/gorm"
)

type CharacterRepo struct {
	db *gorm.DB
}

func NewCharacterRepo(db *gorm.DB) CharacterRepo {
	return CharacterRepo{db: db}
}

func (r CharacterRepo) GetByID(ctx context.Context, id string) (ports.CharacterRecord, error) {
	var m model.Character
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CharacterRecord{}, ports.ErrNotFound
		}
		return ports.CharacterRecord{}, err
	}
	return ports.CharacterRecord{
		ID:          m.ID,
		Name:        m.Name,
		Level:       int(m.Level),
		AttackBonus: int(m.AttackBonus),
		Damage:      int(m.Damage),
		Armor:       int(m.Armor),
		MaxHP:       int(m.MaxHp),
		CurrentHP:   int(m.CurrentHp),
		Gold:        int(m.Gold),
		XP:          int(m.Xp),
		Version:     m.Version,
	}, nil
}

func (r CharacterRepo) SaveWithVersion(ctx context.Context, record ports.CharacterRecord, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := model.Character{
			ID:          record.ID,
			Name:        record.Name,
			Level:       int32(record.Level),
			AttackBonus: int32(record.AttackBonus),
			Damage:      int32(record.Damage),
			Armor:       int32(record.Armor),
			MaxHp:       int32(record.MaxHP),
			CurrentHp:   int32(record.CurrentHP),
			Gold:        int32(record.Gold),
			Xp:          int32(record.XP),
			Version:     record.Version,
			UpdatedAt:   time.Now(),
		}
		return db.Create(&m).Error
	}

	updates := map[string]any{
		"level":        int32(record.Level),
		"attack_bonus": int32(record.AttackBonus),
		"damage":       int32(record.Damage),
		"armor":        int32(record.Armor),
		"max_hp":       int32(record.MaxHP),
		"current_hp":   int32(record.CurrentHP),
		"gold":         int32(record.Gold),
		"xp":           int32(record.XP),
		"version":      record.Version,
		"updated_at":   time.Now(),
	}

	res := db.Model(&model.Character{}).
		Where("id = ? AND version = ?", record.ID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
