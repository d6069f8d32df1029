package replay

import (
	"context"
	"errors"
	"testing"

	"geoquest/internal/app/ports"
	"geoquest/internal/domain/combat"
)

func TestExecute_ReturnsSessionSummaryAndLog(t *testing.T) {
	results := []combat.RoundResult{
		{Round: 1, Actor: combat.ActorCharacter, Action: combat.ActionAttack, Roll: 15, Hit: true, Damage: 4},
		{Round: 1, Actor: combat.ActorMonster, Action: combat.ActionAttack, Roll: 3, Hit: false},
	}
	uc := UseCase{
		Sessions: replaySessions{record: ports.CombatSessionRecord{
			SessionID: "cmb-1",
			Round:     7,
			Outcome:   combat.OutcomeVictory,
		}},
		Events: &replayEvents{results: results},
	}

	resp, err := uc.Execute(context.Background(), Request{SessionID: "cmb-1"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.SessionID != "cmb-1" || resp.Round != 7 || resp.Outcome != combat.OutcomeVictory {
		t.Fatalf("unexpected summary %+v", resp)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
}

func TestExecute_LimitDefaultsAndCaps(t *testing.T) {
	events := &replayEvents{}
	uc := UseCase{Sessions: replaySessions{}, Events: events}

	if _, err := uc.Execute(context.Background(), Request{SessionID: "cmb-1"}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if events.lastLimit != defaultLimit {
		t.Fatalf("expected default limit %d, got %d", defaultLimit, events.lastLimit)
	}

	if _, err := uc.Execute(context.Background(), Request{SessionID: "cmb-1", Limit: maxLimit * 3}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if events.lastLimit != maxLimit {
		t.Fatalf("expected capped limit %d, got %d", maxLimit, events.lastLimit)
	}
}

func TestExecute_RejectsBlankSessionID(t *testing.T) {
	uc := UseCase{}
	if _, err := uc.Execute(context.Background(), Request{SessionID: "   "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestExecute_PropagatesUnknownSession(t *testing.T) {
	uc := UseCase{
		Sessions: replaySessions{err: ports.ErrNotFound},
		Events:   &replayEvents{},
	}
	if _, err := uc.Execute(context.Background(), Request{SessionID: "ghost"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

type replaySessions struct {
	record ports.CombatSessionRecord
	err    error
}

func (s replaySessions) GetByID(_ context.Context, sessionID string) (ports.CombatSessionRecord, error) {
	if s.err != nil {
		return ports.CombatSessionRecord{}, s.err
	}
	record := s.record
	if record.SessionID == "" {
		record.SessionID = sessionID
	}
	return record, nil
}

func (s replaySessions) SaveWithVersion(_ context.Context, _ ports.CombatSessionRecord, _ int64) error {
	return nil
}

type replayEvents struct {
	results   []combat.RoundResult
	lastLimit int
}

func (e *replayEvents) Append(_ context.Context, _ string, _ []combat.RoundResult) error {
	return nil
}

func (e *replayEvents) ListBySessionID(_ context.Context, _ string, limit int) ([]combat.RoundResult, error) {
	e.lastLimit = limit
	return e.results, nil
}

var _ ports.CombatSessionRepository = replaySessions{}
var _ ports.RoundEventRepository = (*replayEvents)(nil)
