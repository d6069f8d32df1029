package worldgen

import (
	"math"

	"geoquest/internal/domain/world"
)

// Classify maps a world coordinate to a tile. It is a pure function of
// (seed, x, y): queries may arrive in any order, from any goroutine, and the
// result never changes. Nothing is cached or stored.
func Classify(seed, x, y int) (world.Tile, error) {
	if seed < 0 || int64(seed) > seedMask {
		return world.Tile{}, ErrSeedOutOfRange
	}
	stream, err := NewStream(coordSeed(seed, x, y))
	if err != nil {
		return world.Tile{}, err
	}
	kind := kindForScalar(terrainScalar(x, y, stream.Next()))
	attrs := world.AttributesOf(kind)
	return world.Tile{
		X:               x,
		Y:               y,
		Kind:            kind,
		Walkable:        attrs.Walkable,
		HazardPerStep:   attrs.HazardPerStep,
		MovementPenalty: attrs.MovementPenalty,
	}, nil
}

func coordSeed(seed, x, y int) int {
	return Mask31(seed + x*CoordHashX + y)
}

// terrainScalar blends two phase-shifted waves over the scaled coordinates
// with the per-coordinate draw, normalized into [0,1).
func terrainScalar(x, y int, draw float64) float64 {
	wave := math.Sin(float64(x)*waveFrequency) + math.Cos(float64(y)*waveFrequency)
	normalized := (wave + 2) / 4
	v := waveWeight*normalized + drawWeight*draw
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	if v < 0 {
		v = 0
	}
	return v
}

// kindForScalar maps the normalized scalar through the ascending threshold
// table. The final arm guarantees every value lands on exactly one kind.
func kindForScalar(v float64) world.TileKind {
	switch {
	case v < thresholdGrass:
		return world.TileGrass
	case v < thresholdForest:
		return world.TileForest
	case v < thresholdRoad:
		return world.TileRoad
	case v < thresholdSand:
		return world.TileSand
	case v < thresholdWater:
		return world.TileWater
	case v < thresholdMountain:
		return world.TileMountain
	case v < thresholdSwamp:
		return world.TileSwamp
	case v < thresholdSnow:
		return world.TileSnow
	case v < thresholdLava:
		return world.TileLava
	default:
		return world.TileDungeon
	}
}
