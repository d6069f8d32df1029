package inmemory

import (
	"sync"

	"geoquest/internal/domain/combat"
)

type Snapshot struct {
	CombatTotal    uint64            `json:"combat_total"`
	CombatConflict uint64            `json:"combat_conflict"`
	CombatFailure  uint64            `json:"combat_failure"`
	ByOutcome      map[string]uint64 `json:"by_outcome"`
}

type Recorder struct {
	mu        sync.Mutex
	conflict  uint64
	failure   uint64
	byOutcome map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome: map[string]uint64{},
	}
}

func (r *Recorder) RecordOutcome(outcome combat.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byOutcome[string(outcome)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		CombatConflict: r.conflict,
		CombatFailure:  r.failure,
		ByOutcome:      make(map[string]uint64, len(r.byOutcome)),
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
		out.CombatTotal += v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
