package mock

import (
	"context"

	"geoquest/internal/domain/world"
)

type Provider struct {
	Snapshot world.Snapshot
	Err      error
}

func (p Provider) SnapshotAround(_ context.Context, center world.Point, radius int) (world.Snapshot, error) {
	if p.Err != nil {
		return world.Snapshot{}, p.Err
	}
	s := p.Snapshot
	s.Center = center
	s.ViewRadius = radius
	if len(s.VisibleTiles) == 0 {
		s.VisibleTiles = []world.Tile{{
			X:        center.X,
			Y:        center.Y,
			Kind:     world.TileGrass,
			Walkable: true,
		}}
	}
	return s, nil
}
