package ports

import "geoquest/internal/domain/combat"

type CombatMetrics interface {
	RecordOutcome(outcome combat.Outcome)
	RecordConflict()
	RecordFailure()
}
