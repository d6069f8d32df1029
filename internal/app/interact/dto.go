package interact

import (
	"geoquest/internal/domain/combat"
	"geoquest/internal/domain/encounter"
)

type Request struct {
	CharacterID string
	POI         encounter.POI
}

type SessionInfo struct {
	SessionID   string                    `json:"session_id"`
	Round       int                       `json:"round"`
	Outcome     combat.Outcome            `json:"outcome"`
	CharacterHP int                       `json:"character_hp"`
	Monster     encounter.MonsterInstance `json:"monster"`
}

type TreasureInfo struct {
	Gold int `json:"gold"`
	XP   int `json:"xp"`
}

type Response struct {
	Category encounter.Category `json:"category"`
	Session  *SessionInfo       `json:"session,omitempty"`
	Treasure *TreasureInfo      `json:"treasure,omitempty"`
}
