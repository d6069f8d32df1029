package runtime

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"geoquest/internal/domain/world"
	"geoquest/internal/domain/worldgen"
)

func TestProvider_WindowCoversEveryCoordinate(t *testing.T) {
	p := NewProvider(Config{Seed: 9001, ViewRadius: 5})

	center := world.Point{X: -3, Y: 17}
	radius := 4
	snapshot, err := p.SnapshotAround(context.Background(), center, radius)
	if err != nil {
		t.Fatalf("SnapshotAround error: %v", err)
	}

	side := radius*2 + 1
	if len(snapshot.VisibleTiles) != side*side {
		t.Fatalf("expected %d tiles, got %d", side*side, len(snapshot.VisibleTiles))
	}

	seen := map[world.Point]bool{}
	for _, tile := range snapshot.VisibleTiles {
		if tile.X < center.X-radius || tile.X > center.X+radius || tile.Y < center.Y-radius || tile.Y > center.Y+radius {
			t.Fatalf("tile (%d,%d) outside window", tile.X, tile.Y)
		}
		seen[world.Point{X: tile.X, Y: tile.Y}] = true
	}
	if len(seen) != side*side {
		t.Fatalf("expected %d distinct coordinates, got %d", side*side, len(seen))
	}
}

func TestProvider_SnapshotsAreDeterministic(t *testing.T) {
	pA := NewProvider(Config{Seed: 31337})
	pB := NewProvider(Config{Seed: 31337})

	center := world.Point{X: 100, Y: -40}
	a, err := pA.SnapshotAround(context.Background(), center, 6)
	if err != nil {
		t.Fatalf("first snapshot error: %v", err)
	}
	b, err := pB.SnapshotAround(context.Background(), center, 6)
	if err != nil {
		t.Fatalf("second snapshot error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed and window produced different snapshots")
	}
}

func TestProvider_TileClassificationMatchesGenerator(t *testing.T) {
	seed := 777
	p := NewProvider(Config{Seed: seed})

	snapshot, err := p.SnapshotAround(context.Background(), world.Point{X: 12, Y: 12}, 3)
	if err != nil {
		t.Fatalf("SnapshotAround error: %v", err)
	}
	for _, tile := range snapshot.VisibleTiles {
		want, err := worldgen.Classify(seed, tile.X, tile.Y)
		if err != nil {
			t.Fatalf("Classify(%d,%d): %v", tile.X, tile.Y, err)
		}
		if tile != want {
			t.Fatalf("tile (%d,%d) diverged from generator: %+v vs %+v", tile.X, tile.Y, tile, want)
		}
	}
}

func TestProvider_DefaultRadiusWhenUnset(t *testing.T) {
	p := NewProvider(Config{Seed: 1})
	snapshot, err := p.SnapshotAround(context.Background(), world.Point{}, 0)
	if err != nil {
		t.Fatalf("SnapshotAround error: %v", err)
	}
	if snapshot.ViewRadius != DefaultConfig().ViewRadius {
		t.Fatalf("expected default radius %d, got %d", DefaultConfig().ViewRadius, snapshot.ViewRadius)
	}
}

func TestProvider_RejectsInvalidSeed(t *testing.T) {
	p := NewProvider(Config{Seed: -1})
	if _, err := p.SnapshotAround(context.Background(), world.Point{}, 1); !errors.Is(err, worldgen.ErrSeedOutOfRange) {
		t.Fatalf("expected ErrSeedOutOfRange, got %v", err)
	}
}
