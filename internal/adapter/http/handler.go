package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"geoquest/internal/app/combatround"
	"geoquest/internal/app/interact"
	"geoquest/internal/app/mapview"
	"geoquest/internal/app/ports"
	"geoquest/internal/app/replay"
	"geoquest/internal/domain/combat"
	"geoquest/internal/domain/encounter"
	"geoquest/internal/domain/world"
	"geoquest/internal/domain/worldgen"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	MapUC      mapview.UseCase
	InteractUC interact.UseCase
	RoundUC    combatround.UseCase
	ReplayUC   replay.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/map/window", h.mapWindow)
	api.POST("/encounter", h.encounter)
	api.POST("/combat/round", h.combatRound)
	api.GET("/combat/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type encounterRequest struct {
	CharacterID string   `json:"character_id"`
	POI         poiInput `json:"poi"`
}

type poiInput struct {
	ID       string      `json:"id"`
	Name     string      `json:"name,omitempty"`
	Category string      `json:"category"`
	Pos      world.Point `json:"pos"`
	Seed     *int        `json:"seed,omitempty"`
}

type combatRoundRequest struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
}

func (h Handler) mapWindow(c context.Context, ctx *app.RequestContext) {
	x, _ := strconv.Atoi(string(ctx.Query("x")))
	y, _ := strconv.Atoi(string(ctx.Query("y")))
	radius, _ := strconv.Atoi(string(ctx.Query("radius")))

	resp, err := h.MapUC.Execute(c, mapview.Request{CenterX: x, CenterY: y, Radius: radius})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) encounter(c context.Context, ctx *app.RequestContext) {
	var body encounterRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.InteractUC.Execute(c, interact.Request{
		CharacterID: body.CharacterID,
		POI: encounter.POI{
			ID:       body.POI.ID,
			Name:     body.POI.Name,
			Category: encounter.Category(body.POI.Category),
			Pos:      body.POI.Pos,
			Seed:     body.POI.Seed,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) combatRound(c context.Context, ctx *app.RequestContext) {
	var body combatRoundRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.RoundUC.Execute(c, combatround.Request{
		SessionID: body.SessionID,
		Action:    combat.Action(body.Action),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		SessionID: string(ctx.Query("session_id")),
		Limit:     limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, worldgen.ErrSeedOutOfRange):
		writeErrorBody(ctx, consts.StatusBadRequest, "seed_out_of_range", err.Error())
	case errors.Is(err, encounter.ErrUnsupportedCategory):
		writeErrorBody(ctx, consts.StatusBadRequest, "unsupported_category", err.Error())
	case errors.Is(err, combat.ErrInvalidCombatState):
		writeErrorBody(ctx, consts.StatusConflict, "invalid_combat_state", err.Error())
	case errors.Is(err, interact.ErrAlreadyCleared):
		writeErrorBody(ctx, consts.StatusConflict, "poi_already_cleared", err.Error())
	case errors.Is(err, mapview.ErrInvalidRequest),
		errors.Is(err, interact.ErrInvalidRequest),
		errors.Is(err, combatround.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]string{
		"error":   code,
		"message": message,
	})
}
