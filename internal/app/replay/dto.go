package replay

import "geoquest/internal/domain/combat"

type Request struct {
	SessionID string
	Limit     int
}

type Response struct {
	SessionID string               `json:"session_id"`
	Round     int                  `json:"round"`
	Outcome   combat.Outcome       `json:"outcome"`
	Results   []combat.RoundResult `json:"results"`
}
