package world

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Snapshot struct {
	Seed         int    `json:"seed"`
	Center       Point  `json:"center"`
	ViewRadius   int    `json:"view_radius"`
	VisibleTiles []Tile `json:"visible_tiles"`
}
