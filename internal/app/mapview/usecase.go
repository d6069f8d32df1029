package mapview

import (
	"context"
	"errors"

	"geoquest/internal/app/ports"
	"geoquest/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid mapview request")

const (
	DefaultRadius = 5
	MaxRadius     = 24
)

type UseCase struct {
	World ports.WorldProvider
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	radius := req.Radius
	if radius == 0 {
		radius = DefaultRadius
	}
	if radius < 0 || radius > MaxRadius {
		return Response{}, ErrInvalidRequest
	}
	snapshot, err := u.World.SnapshotAround(ctx, world.Point{X: req.CenterX, Y: req.CenterY}, radius)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Seed:   snapshot.Seed,
		Center: snapshot.Center,
		Radius: snapshot.ViewRadius,
		Tiles:  snapshot.VisibleTiles,
	}, nil
}
