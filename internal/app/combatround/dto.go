package combatround

import "geoquest/internal/domain/combat"

type Request struct {
	SessionID string
	Action    combat.Action
}

type Reward struct {
	Gold int `json:"gold"`
	XP   int `json:"xp"`
}

type Response struct {
	SessionID   string               `json:"session_id"`
	Round       int                  `json:"round"`
	Outcome     combat.Outcome       `json:"outcome"`
	CharacterHP int                  `json:"character_hp"`
	MonsterHP   int                  `json:"monster_hp"`
	Results     []combat.RoundResult `json:"results"`
	Reward      *Reward              `json:"reward,omitempty"`
}
