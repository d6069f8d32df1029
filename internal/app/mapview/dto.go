package mapview

import "geoquest/internal/domain/world"

type Request struct {
	CenterX int
	CenterY int
	Radius  int
}

type Response struct {
	Seed   int          `json:"seed"`
	Center world.Point  `json:"center"`
	Radius int          `json:"radius"`
	Tiles  []world.Tile `json:"tiles"`
}
