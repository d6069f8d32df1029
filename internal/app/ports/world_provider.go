package ports

import (
	"context"

	"geoquest/internal/domain/world"
)

type WorldProvider interface {
	SnapshotAround(ctx context.Context, center world.Point, radius int) (world.Snapshot, error)
}
