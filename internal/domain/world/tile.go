package world

type TileKind string

const (
	TileGrass    TileKind = "grass"
	TileWater    TileKind = "water"
	TileLava     TileKind = "lava"
	TileMountain TileKind = "mountain"
	TileForest   TileKind = "forest"
	TileSand     TileKind = "sand"
	TileSnow     TileKind = "snow"
	TileSwamp    TileKind = "swamp"
	TileRoad     TileKind = "road"
	TileDungeon  TileKind = "dungeon"
)

type Tile struct {
	X               int      `json:"x"`
	Y               int      `json:"y"`
	Kind            TileKind `json:"kind"`
	Walkable        bool     `json:"walkable"`
	HazardPerStep   int      `json:"hazard_per_step,omitempty"`
	MovementPenalty bool     `json:"movement_penalty,omitempty"`
}

type TileAttributes struct {
	Walkable        bool
	HazardPerStep   int
	MovementPenalty bool
}

// AttributesOf returns the static movement rules for a tile kind.
// Unknown kinds are treated as impassable.
func AttributesOf(kind TileKind) TileAttributes {
	switch kind {
	case TileGrass, TileRoad, TileSand, TileDungeon:
		return TileAttributes{Walkable: true}
	case TileForest, TileSnow:
		return TileAttributes{Walkable: true, MovementPenalty: true}
	case TileSwamp:
		return TileAttributes{Walkable: true, HazardPerStep: 1, MovementPenalty: true}
	case TileLava:
		return TileAttributes{Walkable: true, HazardPerStep: 5}
	case TileWater, TileMountain:
		return TileAttributes{Walkable: false}
	default:
		return TileAttributes{Walkable: false}
	}
}
