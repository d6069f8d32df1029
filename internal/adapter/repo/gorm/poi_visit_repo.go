package gormrepo

import (
	"context"
	"errors"
	"time"

	"geoquest/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type POIVisitRepo struct {
	db *gorm.DB
}

func NewPOIVisitRepo(db *gorm.DB) POIVisitRepo {
	return POIVisitRepo{db: db}
}

func (r POIVisitRepo) MarkCleared(ctx context.Context, characterID, poiID string, clearedAt time.Time) error {
	row := model.POIVisit{
		CharacterID: characterID,
		PoiID:       poiID,
		ClearedAt:   clearedAt,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "character_id"}, {Name: "poi_id"}},
		DoNothing: true,
	}).Create(&row).Error
}

func (r POIVisitRepo) IsCleared(ctx context.Context, characterID, poiID string) (bool, error) {
	var row model.POIVisit
	err := getDBFromCtx(ctx, r.db).
		Where("character_id = ? AND poi_id = ?", characterID, poiID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
