package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"geoquest/internal/app/ports"
	"geoquest/internal/domain/combat"
	"geoquest/internal/domain/encounter"
	"geoquest/internal/domain/world"
	"geoquest/internal/domain/worldgen"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("GEOQUEST_DB_DSN")
	if dsn == "" {
		t.Skip("GEOQUEST_DB_DSN is required for integration test")
	}
	return dsn
}

func TestCharacterRepo_RoundTripAndVersioning(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	id := "it-character-roundtrip"
	_ = db.Exec("DELETE FROM characters WHERE id = ?", id).Error

	repo := NewCharacterRepo(db)
	seed := ports.CharacterRecord{
		ID:          id,
		Name:        "Integration Hero",
		Level:       4,
		AttackBonus: 4,
		Damage:      6,
		Armor:       12,
		MaxHP:       60,
		CurrentHP:   41,
		Gold:        77,
		XP:          230,
		Version:     1,
	}
	if err := repo.SaveWithVersion(ctx, seed, 0); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentHP != 41 || got.Gold != 77 || got.XP != 230 {
		t.Fatalf("round trip lost fields: %+v", got)
	}

	got.Gold += 10
	got.Version = 2
	if err := repo.SaveWithVersion(ctx, got, 1); err != nil {
		t.Fatalf("versioned update: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, got, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}
}

func TestCombatSessionRepo_PersistLifecycle(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	sessionID := "it-session-lifecycle"
	_ = db.Exec("DELETE FROM combat_sessions WHERE session_id = ?", sessionID).Error
	_ = db.Exec("DELETE FROM combat_round_events WHERE session_id = ?", sessionID).Error

	sessionRepo := NewCombatSessionRepo(db)
	eventRepo := NewRoundEventRepo(db)

	monster := encounter.MonsterInstance{
		ID: "mon-it-1", Name: "Harbor Ghoul", Tier: encounter.TierRare,
		Level: 3, Seed: 4242, Health: 80, Damage: 12, Armor: 14,
	}
	sheet := combat.CharacterSheet{Level: 4, AttackBonus: 4, Damage: 6, Armor: 12, MaxHP: 60}
	record := ports.CombatSessionRecord{
		SessionID:   sessionID,
		CharacterID: "it-character-roundtrip",
		POIID:       "it-poi-1",
		Version:     1,
		StartedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	record.ApplyState(combat.NewState(sheet, monster))

	if err := sessionRepo.SaveWithVersion(ctx, record, 0); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Monster.Name != "Harbor Ghoul" || got.MonsterHP != 80 {
		t.Fatalf("monster did not round trip: %+v", got.Monster)
	}
	if got.Character.MaxHP != 60 || got.CharacterHP != 60 {
		t.Fatalf("character sheet did not round trip: %+v", got.Character)
	}
	if got.RNGState != record.RNGState {
		t.Fatalf("rng cursor changed: %d vs %d", got.RNGState, record.RNGState)
	}

	next, results, err := combat.ResolveRound(got.State(), combat.ActionAttack)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	expected := got.Version
	got.ApplyState(next)
	got.Version++
	if err := sessionRepo.SaveWithVersion(ctx, got, expected); err != nil {
		t.Fatalf("advance session: %v", err)
	}
	if err := sessionRepo.SaveWithVersion(ctx, got, expected); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on repeated advance, got %v", err)
	}

	if err := eventRepo.Append(ctx, sessionID, results); err != nil {
		t.Fatalf("append events: %v", err)
	}
	events, err := eventRepo.ListBySessionID(ctx, sessionID, 100)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != len(results) {
		t.Fatalf("expected %d events, got %d", len(results), len(events))
	}
	if len(events) > 0 && events[0].Round != 1 {
		t.Fatalf("expected first event from round 1, got %+v", events[0])
	}
}

func TestWorldChunkRepo_UpsertRoundTrip(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	seed := 987654
	_ = db.Exec("DELETE FROM world_chunks WHERE seed = ?", seed).Error

	repo := NewWorldChunkRepo(db)
	coord := world.ChunkCoord{X: -2, Y: 5}

	if _, ok, err := repo.GetChunk(ctx, seed, coord); err != nil || ok {
		t.Fatalf("expected cache miss, got ok=%v err=%v", ok, err)
	}

	tiles := make([]world.Tile, 0, 4)
	for i := 0; i < 4; i++ {
		tile, err := worldgen.Classify(seed, coord.X*8+i, coord.Y*8)
		if err != nil {
			t.Fatalf("classify: %v", err)
		}
		tiles = append(tiles, tile)
	}
	chunk := world.Chunk{Coord: coord, Tiles: tiles}
	if err := repo.SaveChunk(ctx, seed, chunk); err != nil {
		t.Fatalf("save chunk: %v", err)
	}
	// Second save of the same key must upsert, not fail.
	if err := repo.SaveChunk(ctx, seed, chunk); err != nil {
		t.Fatalf("upsert chunk: %v", err)
	}

	got, ok, err := repo.GetChunk(ctx, seed, coord)
	if err != nil || !ok {
		t.Fatalf("expected cache hit, got ok=%v err=%v", ok, err)
	}
	if len(got.Tiles) != len(tiles) || got.Tiles[0] != tiles[0] {
		t.Fatalf("tiles did not round trip: %+v", got.Tiles)
	}
}

func TestPOIVisitRepo_MarkIsIdempotent(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	characterID := "it-visit-character"
	_ = db.Exec("DELETE FROM poi_visits WHERE character_id = ?", characterID).Error

	repo := NewPOIVisitRepo(db)
	cleared, err := repo.IsCleared(ctx, characterID, "poi-x")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if cleared {
		t.Fatal("expected uncleared poi")
	}

	now := time.Now()
	if err := repo.MarkCleared(ctx, characterID, "poi-x", now); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := repo.MarkCleared(ctx, characterID, "poi-x", now.Add(time.Hour)); err != nil {
		t.Fatalf("second mark must be a no-op: %v", err)
	}

	cleared, err = repo.IsCleared(ctx, characterID, "poi-x")
	if err != nil {
		t.Fatalf("recheck: %v", err)
	}
	if !cleared {
		t.Fatal("expected cleared poi")
	}
}
