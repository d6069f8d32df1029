package runtime

import (
	"context"

	"geoquest/internal/domain/world"
	"geoquest/internal/domain/worldgen"
)

type Config struct {
	Seed       int
	ViewRadius int
	ChunkStore ChunkStore
}

// ChunkStore caches generated chunks. Generation is canonical; the cache only
// skips recomputation and can be dropped at any time without changing output.
type ChunkStore interface {
	GetChunk(ctx context.Context, seed int, coord world.ChunkCoord) (world.Chunk, bool, error)
	SaveChunk(ctx context.Context, seed int, chunk world.Chunk) error
}

type Provider struct {
	cfg       Config
	chunkSize int
}

func DefaultConfig() Config {
	return Config{
		Seed:       12345,
		ViewRadius: 5,
	}
}

func NewProvider(cfg Config) Provider {
	def := DefaultConfig()
	if cfg.ViewRadius <= 0 {
		cfg.ViewRadius = def.ViewRadius
	}
	return Provider{cfg: cfg, chunkSize: 8}
}

func (p Provider) SnapshotAround(ctx context.Context, center world.Point, radius int) (world.Snapshot, error) {
	if radius <= 0 {
		radius = p.cfg.ViewRadius
	}
	chunks, err := p.loadChunksForWindow(ctx, center, radius)
	if err != nil {
		return world.Snapshot{}, err
	}

	tiles := make([]world.Tile, 0, (radius*2+1)*(radius*2+1))
	for _, chunk := range chunks {
		for _, t := range chunk.Tiles {
			if t.X < center.X-radius || t.X > center.X+radius || t.Y < center.Y-radius || t.Y > center.Y+radius {
				continue
			}
			tiles = append(tiles, t)
		}
	}

	return world.Snapshot{
		Seed:         p.cfg.Seed,
		Center:       center,
		ViewRadius:   radius,
		VisibleTiles: tiles,
	}, nil
}

func (p Provider) loadChunksForWindow(ctx context.Context, center world.Point, radius int) ([]world.Chunk, error) {
	minX := floorDiv(center.X-radius, p.chunkSize)
	maxX := floorDiv(center.X+radius, p.chunkSize)
	minY := floorDiv(center.Y-radius, p.chunkSize)
	maxY := floorDiv(center.Y+radius, p.chunkSize)

	out := make([]world.Chunk, 0, (maxX-minX+1)*(maxY-minY+1))
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			coord := world.ChunkCoord{X: cx, Y: cy}
			if p.cfg.ChunkStore != nil {
				if cached, ok, err := p.cfg.ChunkStore.GetChunk(ctx, p.cfg.Seed, coord); err != nil {
					return nil, err
				} else if ok {
					out = append(out, cached)
					continue
				}
			}
			chunk, err := p.generateChunk(coord)
			if err != nil {
				return nil, err
			}
			if p.cfg.ChunkStore != nil {
				if err := p.cfg.ChunkStore.SaveChunk(ctx, p.cfg.Seed, chunk); err != nil {
					return nil, err
				}
			}
			out = append(out, chunk)
		}
	}
	return out, nil
}

func (p Provider) generateChunk(coord world.ChunkCoord) (world.Chunk, error) {
	tiles := make([]world.Tile, 0, p.chunkSize*p.chunkSize)
	baseX := coord.X * p.chunkSize
	baseY := coord.Y * p.chunkSize
	for y := 0; y < p.chunkSize; y++ {
		for x := 0; x < p.chunkSize; x++ {
			tile, err := worldgen.Classify(p.cfg.Seed, baseX+x, baseY+y)
			if err != nil {
				return world.Chunk{}, err
			}
			tiles = append(tiles, tile)
		}
	}
	return world.Chunk{Coord: coord, Tiles: tiles}, nil
}

func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return -(((-a) + b - 1) / b)
}
