package model

import "time"

type Character struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	Level       int32
	AttackBonus int32
	Damage      int32
	Armor       int32
	MaxHp       int32
	CurrentHp   int32
	Gold        int32
	Xp          int32
	Version     int64
	UpdatedAt   time.Time
}

func (Character) TableName() string { return "characters" }

type CombatSession struct {
	SessionID      string `gorm:"primaryKey"`
	CharacterID    string
	PoiID          string
	CharacterSheet []byte
	CharacterHp    int32
	Monster        []byte
	MonsterHp      int32
	Round          int32
	Outcome        string
	RngState       int64
	Version        int64
	StartedAt      time.Time
	UpdatedAt      time.Time
}

func (CombatSession) TableName() string { return "combat_sessions" }

type CombatRoundEvent struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	SessionID   string
	Round       int32
	Actor       string
	Action      string
	Roll        int32
	Hit         bool
	Critical    bool
	Damage      int32
	CharacterHp int32
	MonsterHp   int32
	CreatedAt   time.Time
}

func (CombatRoundEvent) TableName() string { return "combat_round_events" }

type WorldChunk struct {
	Seed      int64 `gorm:"primaryKey;autoIncrement:false"`
	ChunkX    int32 `gorm:"primaryKey;autoIncrement:false"`
	ChunkY    int32 `gorm:"primaryKey;autoIncrement:false"`
	Tiles     []byte
	UpdatedAt time.Time
}

func (WorldChunk) TableName() string { return "world_chunks" }

type POIVisit struct {
	CharacterID string `gorm:"primaryKey"`
	PoiID       string `gorm:"primaryKey"`
	ClearedAt   time.Time
}

func (POIVisit) TableName() string { return "poi_visits" }
