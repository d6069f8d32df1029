package replay

import (
	"context"
	"errors"
	"strings"

	"geoquest/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const (
	defaultLimit = 100
	maxLimit     = 500
)

type UseCase struct {
	Sessions ports.CombatSessionRepository
	Events   ports.RoundEventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	session, err := u.Sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		return Response{}, err
	}
	results, err := u.Events.ListBySessionID(ctx, req.SessionID, limit)
	if err != nil {
		return Response{}, err
	}
	return Response{
		SessionID: session.SessionID,
		Round:     session.Round,
		Outcome:   session.Outcome,
		Results:   results,
	}, nil
}
