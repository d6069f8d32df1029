package worldgen

// Coordinate hashing constants. Large odd multipliers keep nearby coordinates
// from colliding onto the same per-tile stream.
const (
	CoordHashX = 73856093
	CoordHashY = 19349663
)

const (
	waveFrequency = 0.15
	waveWeight    = 0.45
	drawWeight    = 0.55
)

// Ascending thresholds partitioning [0,1] onto the tile set. The bands are
// tuned so grass/forest/road dominate and lava/dungeon stay rare.
const (
	thresholdGrass    = 0.30
	thresholdForest   = 0.45
	thresholdRoad     = 0.52
	thresholdSand     = 0.60
	thresholdWater    = 0.68
	thresholdMountain = 0.76
	thresholdSwamp    = 0.84
	thresholdSnow     = 0.91
	thresholdLava     = 0.97
)
